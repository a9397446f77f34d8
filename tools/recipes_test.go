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

func TestSuggestRecipes_Success(t *testing.T) {
	res := &mockResolver{products: map[string]openfoodfacts.Product{"nutella": nutella()}}
	gw := mock.New("1. Hazelnut crepes ...", nil)
	tool := NewSuggestRecipes(res, sampling.NewBuilder(sampling.Config{}))

	result, err := tool.Run(context.Background(), gw, map[string]any{"nameOrBarcode": "nutella"})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, result.Text, "# Recipe Suggestions: Nutella by Ferrero")
	assert.Contains(t, result.Text, "Hazelnut crepes")

	require.Len(t, gw.Requests, 1)
	assert.Equal(t, 0.7, gw.Requests[0].Temperature)
}

func TestSuggestRecipes_SamplingFailureIsAnError(t *testing.T) {
	res := &mockResolver{products: map[string]openfoodfacts.Product{"nutella": nutella()}}
	gw := mock.New("", errGatewayDown)
	tool := NewSuggestRecipes(res, sampling.NewBuilder(sampling.Config{}))

	result, err := tool.Run(context.Background(), gw, map[string]any{"nameOrBarcode": "nutella"})
	require.NoError(t, err)

	// Unlike analysis and comparison, recipes have no local fallback.
	assert.True(t, result.IsError)
	assert.Contains(t, result.Text, "Failed to generate recipe suggestions")
	assert.Contains(t, result.Text, errGatewayDown.Error())
}

func TestSuggestRecipes_NotFound(t *testing.T) {
	res := &mockResolver{}
	gw := mock.New("", nil)
	tool := NewSuggestRecipes(res, sampling.NewBuilder(sampling.Config{}))

	result, err := tool.Run(context.Background(), gw, map[string]any{"nameOrBarcode": "unobtainium"})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Equal(t, notFoundMessage("unobtainium"), result.Text)
	assert.Empty(t, gw.Requests)
}
