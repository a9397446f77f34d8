package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"foodscout/openfoodfacts"
	"foodscout/sampling"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

// GetProduct is the pass-through direct barcode lookup tool.
type GetProduct struct{ catalog openfoodfacts.Catalog }

func NewGetProduct(catalog openfoodfacts.Catalog) *GetProduct {
	return &GetProduct{catalog: catalog}
}

func (t *GetProduct) Name() string  { return "get_product" }
func (t *GetProduct) Title() string { return "Get Product by Barcode" }
func (t *GetProduct) Description() string {
	return "Fetches the full Open Food Facts record for an exact barcode (EAN/UPC)."
}

func (t *GetProduct) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"barcode": {
				Type:        "string",
				Description: "The product barcode, digits only.",
			},
		},
		Required: []string{"barcode"},
	}
}

func (t *GetProduct) Run(ctx context.Context, _ sampling.Gateway, input map[string]any) (Result, error) {
	barcode := strArg(input, "barcode")

	p, err := t.catalog.GetByBarcode(ctx, barcode)
	if err != nil {
		return errorResult(err.Error()), nil
	}
	if p == nil {
		return Result{Text: fmt.Sprintf("No product found for barcode %q.", barcode)}, nil
	}

	payload, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return Result{}, err
	}
	return Result{Text: string(payload)}, nil
}
