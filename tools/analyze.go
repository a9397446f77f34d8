package tools

import (
	"context"
	"strings"

	"foodscout/sampling"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

// AnalyzeProduct resolves one identifier and produces an AI nutrition
// analysis, degrading to a local summary when sampling is unavailable.
type AnalyzeProduct struct {
	resolver ProductResolver
	builder  *sampling.Builder
}

func NewAnalyzeProduct(resolver ProductResolver, builder *sampling.Builder) *AnalyzeProduct {
	return &AnalyzeProduct{resolver: resolver, builder: builder}
}

func (t *AnalyzeProduct) Name() string  { return "analyze_product" }
func (t *AnalyzeProduct) Title() string { return "Analyze Food Product" }
func (t *AnalyzeProduct) Description() string {
	return "Resolves a product by name or barcode and produces a nutritional analysis report."
}

func (t *AnalyzeProduct) InputSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"nameOrBarcode": {
				Type:        "string",
				Description: "A product name to search for, or an exact barcode.",
			},
		},
		Required: []string{"nameOrBarcode"},
	}
}

func (t *AnalyzeProduct) Run(ctx context.Context, sampler sampling.Gateway, input map[string]any) (Result, error) {
	identifier := strings.TrimSpace(strArg(input, "nameOrBarcode"))
	if identifier == "" {
		return errorResult("A product name or barcode is required."), nil
	}

	p := t.resolver.Resolve(ctx, identifier)
	if p == nil {
		return errorResult(notFoundMessage(identifier)), nil
	}

	body := sampleOrFallback(ctx, sampler, t.builder.AnalysisRequest(p), func() string {
		return analysisFallback(p)
	})
	return Result{Text: renderReport("Product Analysis", productTitle(p), body)}, nil
}
