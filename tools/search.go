package tools

import (
	"context"
	"encoding/json"

	"foodscout/openfoodfacts"
	"foodscout/sampling"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

// SearchProducts is the pass-through free-text search tool.
type SearchProducts struct{ catalog openfoodfacts.Catalog }

func NewSearchProducts(catalog openfoodfacts.Catalog) *SearchProducts {
	return &SearchProducts{catalog: catalog}
}

func (t *SearchProducts) Name() string  { return "search_products" }
func (t *SearchProducts) Title() string { return "Search Food Products" }
func (t *SearchProducts) Description() string {
	return "Searches the Open Food Facts database by product name or keywords and returns one page of matches."
}

func (t *SearchProducts) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"query": {
				Type:        "string",
				Description: "Free-text search terms, e.g. a product or brand name.",
			},
			"page": {
				Type:        "integer",
				Description: "Result page, starting at 1.",
			},
			"pageSize": {
				Type:        "integer",
				Description: "Results per page (default 10).",
			},
		},
		Required: []string{"query"},
	}
}

func (t *SearchProducts) Run(ctx context.Context, _ sampling.Gateway, input map[string]any) (Result, error) {
	query := strArg(input, "query")
	page := intArg(input, "page", 1)
	pageSize := intArg(input, "pageSize", 10)

	sp, err := t.catalog.Search(ctx, query, page, pageSize)
	if err != nil {
		return errorResult(err.Error()), nil
	}

	payload, err := json.MarshalIndent(sp, "", "  ")
	if err != nil {
		return Result{}, err
	}
	return Result{Text: string(payload)}, nil
}
