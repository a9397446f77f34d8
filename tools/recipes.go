package tools

import (
	"context"
	"fmt"
	"strings"

	"foodscout/sampling"

	"github.com/modelcontextprotocol/go-sdk/jsonschema"
)

// SuggestRecipes resolves one identifier and asks the model for recipe
// suggestions. There is no meaningful local fallback for generated recipes,
// so a sampling failure surfaces as an error result.
type SuggestRecipes struct {
	resolver ProductResolver
	builder  *sampling.Builder
}

func NewSuggestRecipes(resolver ProductResolver, builder *sampling.Builder) *SuggestRecipes {
	return &SuggestRecipes{resolver: resolver, builder: builder}
}

func (t *SuggestRecipes) Name() string  { return "suggest_recipes" }
func (t *SuggestRecipes) Title() string { return "Suggest Recipes" }
func (t *SuggestRecipes) Description() string {
	return "Resolves a product by name or barcode and suggests recipes that feature it."
}

func (t *SuggestRecipes) InputSchema() *jsonschema.Schema {
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

func (t *SuggestRecipes) Run(ctx context.Context, sampler sampling.Gateway, input map[string]any) (Result, error) {
	identifier := strings.TrimSpace(strArg(input, "nameOrBarcode"))
	if identifier == "" {
		return errorResult("A product name or barcode is required."), nil
	}

	p := t.resolver.Resolve(ctx, identifier)
	if p == nil {
		return errorResult(notFoundMessage(identifier)), nil
	}

	text, err := sampler.RequestSampling(ctx, t.builder.RecipeRequest(p))
	if err != nil {
		return errorResult(fmt.Sprintf("Failed to generate recipe suggestions: %s", err)), nil
	}
	return Result{Text: renderReport("Recipe Suggestions", productTitle(p), text)}, nil
}
