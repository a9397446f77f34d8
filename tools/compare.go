package tools

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"foodscout/openfoodfacts"
	"foodscout/sampling"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

// CompareProducts resolves two identifiers concurrently and produces an AI
// comparison report, degrading to local summaries when sampling is
// unavailable.
type CompareProducts struct {
	resolver ProductResolver
	builder  *sampling.Builder
}

func NewCompareProducts(resolver ProductResolver, builder *sampling.Builder) *CompareProducts {
	return &CompareProducts{resolver: resolver, builder: builder}
}

func (t *CompareProducts) Name() string  { return "compare_products" }
func (t *CompareProducts) Title() string { return "Compare Food Products" }
func (t *CompareProducts) Description() string {
	return "Resolves two products by name or barcode and produces a side-by-side comparison report."
}

func (t *CompareProducts) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"nameOrBarcode1": {
				Type:        "string",
				Description: "The first product, by name or exact barcode.",
			},
			"nameOrBarcode2": {
				Type:        "string",
				Description: "The second product, by name or exact barcode.",
			},
		},
		Required: []string{"nameOrBarcode1", "nameOrBarcode2"},
	}
}

func (t *CompareProducts) Run(ctx context.Context, sampler sampling.Gateway, input map[string]any) (Result, error) {
	id1 := strings.TrimSpace(strArg(input, "nameOrBarcode1"))
	id2 := strings.TrimSpace(strArg(input, "nameOrBarcode2"))
	if id1 == "" || id2 == "" {
		return errorResult("Two product names or barcodes are required."), nil
	}

	// Both resolutions run concurrently and both are awaited before any
	// outcome is surfaced; a miss on one side does not cancel the other.
	var (
		wg       sync.WaitGroup
		products [2]openfoodfacts.Product
	)
	for i, id := range []string{id1, id2} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			products[i] = t.resolver.Resolve(ctx, id)
		}()
	}
	wg.Wait()

	// Deterministic check order: identifier 1 before identifier 2.
	if products[0] == nil {
		return errorResult(notFoundMessage(id1)), nil
	}
	if products[1] == nil {
		return errorResult(notFoundMessage(id2)), nil
	}

	p1, p2 := products[0], products[1]
	body := sampleOrFallback(ctx, sampler, t.builder.ComparisonRequest(p1, p2), func() string {
		return comparisonFallback(p1, p2)
	})
	title := fmt.Sprintf("%s vs %s", productTitle(p1), productTitle(p2))
	return Result{Text: renderReport("Product Comparison", title, body)}, nil
}
