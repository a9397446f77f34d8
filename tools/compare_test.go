package tools

import (
	"context"
	"testing"
	"time"

	"foodscout/openfoodfacts"
	"foodscout/sampling"
	"foodscout/sampling/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// barrierResolver blocks every Resolve until released, so a test can prove
// that both resolutions were issued before either was awaited.
type barrierResolver struct {
	arrived  chan string
	release  chan struct{}
	products map[string]openfoodfacts.Product
}

func newBarrierResolver(products map[string]openfoodfacts.Product) *barrierResolver {
	return &barrierResolver{
		arrived:  make(chan string, 2),
		release:  make(chan struct{}),
		products: products,
	}
}

func (b *barrierResolver) Resolve(ctx context.Context, identifier string) openfoodfacts.Product {
	b.arrived <- identifier
	<-b.release
	return b.products[identifier]
}

func TestCompareProducts_ResolvesConcurrently(t *testing.T) {
	res := newBarrierResolver(map[string]openfoodfacts.Product{
		"nutella": nutella(),
		"oatly":   oatMilk(),
	})
	gw := mock.New("side by side", nil)
	tool := NewCompareProducts(res, sampling.NewBuilder(sampling.Config{}))

	done := make(chan Result, 1)
	go func() {
		result, _ := tool.Run(context.Background(), gw, map[string]any{
			"nameOrBarcode1": "nutella",
			"nameOrBarcode2": "oatly",
		})
		done <- result
	}()

	// Both resolutions must be in flight while neither has completed. If the
	// tool resolved sequentially, the second arrival would never happen.
	seen := map[string]bool{}
	for i := 0; i < 2; i++ {
		select {
		case id := <-res.arrived:
			seen[id] = true
		case <-time.After(2 * time.Second):
			t.Fatal("expected both resolutions to be issued concurrently")
		}
	}
	assert.True(t, seen["nutella"] && seen["oatly"])
	close(res.release)

	result := <-done
	assert.False(t, result.IsError)
	assert.Contains(t, result.Text, "# Product Comparison: Nutella by Ferrero vs Oat Drink by Oatly")
	assert.Contains(t, result.Text, "side by side")
}

func TestCompareProducts_BlankInput(t *testing.T) {
	res := &mockResolver{}
	gw := mock.New("", nil)
	tool := NewCompareProducts(res, sampling.NewBuilder(sampling.Config{}))

	result, err := tool.Run(context.Background(), gw, map[string]any{"nameOrBarcode1": "nutella"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Empty(t, res.calls)
}

func TestCompareProducts_SecondNotFound(t *testing.T) {
	res := &mockResolver{products: map[string]openfoodfacts.Product{"nutella": nutella()}}
	gw := mock.New("", nil)
	tool := NewCompareProducts(res, sampling.NewBuilder(sampling.Config{}))

	result, err := tool.Run(context.Background(), gw, map[string]any{
		"nameOrBarcode1": "nutella",
		"nameOrBarcode2": "9999999999999",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, notFoundMessage("9999999999999"), result.Text)
	assert.Empty(t, gw.Requests, "no sampling request may be built when a side is missing")
}

func TestCompareProducts_BothNotFound_NamesFirst(t *testing.T) {
	res := &mockResolver{}
	gw := mock.New("", nil)
	tool := NewCompareProducts(res, sampling.NewBuilder(sampling.Config{}))

	result, err := tool.Run(context.Background(), gw, map[string]any{
		"nameOrBarcode1": "first-miss",
		"nameOrBarcode2": "second-miss",
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, notFoundMessage("first-miss"), result.Text)
}

func TestCompareProducts_SamplingFailureFallsBack(t *testing.T) {
	res := &mockResolver{products: map[string]openfoodfacts.Product{
		"nutella": nutella(),
		"oatly":   oatMilk(),
	}}
	gw := mock.New("", errGatewayDown)
	tool := NewCompareProducts(res, sampling.NewBuilder(sampling.Config{}))

	result, err := tool.Run(context.Background(), gw, map[string]any{
		"nameOrBarcode1": "nutella",
		"nameOrBarcode2": "oatly",
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, result.Text, "Product 1: Nutella by Ferrero")
	assert.Contains(t, result.Text, "Product 2: Oat Drink by Oatly")
	assert.Contains(t, result.Text, "Nutri-Score: E")
	assert.Contains(t, result.Text, "Nutri-Score: B")

	require.Len(t, gw.Requests, 1)
	assert.Equal(t, 0.2, gw.Requests[0].Temperature)
	assert.Equal(t, 2000, gw.Requests[0].MaxTokens)
}
