package tools

import (
	"context"
	"testing"

	"foodscout/openfoodfacts"
	"foodscout/sampling"
	"foodscout/sampling/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeProduct_BlankInput(t *testing.T) {
	res := &mockResolver{}
	gw := mock.New("", nil)
	tool := NewAnalyzeProduct(res, sampling.NewBuilder(sampling.Config{}))

	for _, input := range []map[string]any{
		{},
		{"nameOrBarcode": ""},
		{"nameOrBarcode": "   "},
	} {
		result, err := tool.Run(context.Background(), gw, input)
		require.NoError(t, err)
		assert.True(t, result.IsError)
	}
	assert.Empty(t, res.calls, "blank input must not reach the resolver")
	assert.Empty(t, gw.Requests, "blank input must not reach the gateway")
}

func TestAnalyzeProduct_NotFound(t *testing.T) {
	res := &mockResolver{}
	gw := mock.New("", nil)
	tool := NewAnalyzeProduct(res, sampling.NewBuilder(sampling.Config{}))

	result, err := tool.Run(context.Background(), gw, map[string]any{"nameOrBarcode": "unobtainium"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, notFoundMessage("unobtainium"), result.Text)
	assert.Empty(t, gw.Requests, "not-found must not trigger sampling")
}

func TestAnalyzeProduct_Success(t *testing.T) {
	res := &mockResolver{products: map[string]openfoodfacts.Product{"nutella": nutella()}}
	gw := mock.New("1. Overview\nA hazelnut spread.", nil)
	tool := NewAnalyzeProduct(res, sampling.NewBuilder(sampling.Config{}))

	result, err := tool.Run(context.Background(), gw, map[string]any{"nameOrBarcode": "nutella"})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, result.Text, "# Product Analysis: Nutella by Ferrero")
	assert.Contains(t, result.Text, "A hazelnut spread.")

	require.Len(t, gw.Requests, 1)
	assert.Equal(t, 0.3, gw.Requests[0].Temperature)
	assert.Equal(t, 1500, gw.Requests[0].MaxTokens)
}

func TestAnalyzeProduct_SamplingFailureFallsBack(t *testing.T) {
	res := &mockResolver{products: map[string]openfoodfacts.Product{"nutella": nutella()}}
	gw := mock.New("", errGatewayDown)
	tool := NewAnalyzeProduct(res, sampling.NewBuilder(sampling.Config{}))

	result, err := tool.Run(context.Background(), gw, map[string]any{"nameOrBarcode": "nutella"})
	require.NoError(t, err)

	// Fallback is a degraded success, never an error.
	assert.False(t, result.IsError)
	assert.Contains(t, result.Text, "Nutella")
	assert.Contains(t, result.Text, "Ferrero")
	assert.Contains(t, result.Text, "Nutri-Score: E")
	assert.Contains(t, result.Text, "hazelnuts")
	assert.Contains(t, result.Text, "unavailable")
}
