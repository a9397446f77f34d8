package sampling

import (
	"encoding/json"
	"fmt"

	"foodscout/openfoodfacts"
)

const analysisSystemPrompt = `You are a nutrition expert analyzing food products.

Write a clear, factual report with exactly these six sections:

1. Overview — what the product is and who makes it.
2. Nutritional Analysis — key nutrients, Nutri-Score, serving considerations.
3. Ingredients Assessment — notable ingredients, additives, processing level.
4. Allergen Information — declared allergens and likely traces.
5. Health Assessment — strengths and concerns for a typical diet.
6. Recommendations — who should enjoy, limit, or avoid this product.

Base every statement on the product data provided. If a field is missing,
say so rather than guessing.`

const comparisonSystemPrompt = `You are a nutrition expert comparing two food products.

Write a comparative report with exactly these five sections:

1. Overview — both products in one or two sentences each.
2. Nutritional Comparison — nutrients, Nutri-Scores, portion sizes side by side.
3. Ingredients Comparison — meaningful differences in composition and additives.
4. Health Considerations — which trade-offs matter and for whom.
5. Recommendation — which product to prefer, and under what circumstances.

Base every statement on the product data provided. If a field is missing for
either product, say so rather than guessing.`

const recipeSystemPrompt = `You are a creative home cook suggesting recipes.

Given one food product, suggest three recipes that feature it. For each
recipe give a name, a short description, the main ingredients, and simple
preparation steps. Prefer everyday ingredients and keep the steps practical.
Mention how the product's character (sweetness, saltiness, texture) shapes
each dish.`

// AnalysisRequest builds the single-product nutrition analysis request.
func (b *Builder) AnalysisRequest(p openfoodfacts.Product) Request {
	user := fmt.Sprintf("Please analyze this food product:\n\n%s", serializeProduct(p))
	return b.request(analysisSystemPrompt, user, 0.3, 1500)
}

// ComparisonRequest builds the two-product comparison request. The products
// are labeled 1 and 2 so the report can refer to them unambiguously.
func (b *Builder) ComparisonRequest(p1, p2 openfoodfacts.Product) Request {
	user := fmt.Sprintf(
		"Please compare these two food products:\n\nProduct 1:\n%s\n\nProduct 2:\n%s",
		serializeProduct(p1), serializeProduct(p2),
	)
	return b.request(comparisonSystemPrompt, user, 0.2, 2000)
}

// RecipeRequest builds the recipe suggestion request.
func (b *Builder) RecipeRequest(p openfoodfacts.Product) Request {
	user := fmt.Sprintf("Please suggest recipes using this food product:\n\n%s", serializeProduct(p))
	return b.request(recipeSystemPrompt, user, 0.7, 1500)
}

// serializeProduct renders the product record as indented JSON. Records are
// open-schema, so everything the catalog returned goes into the prompt.
func serializeProduct(p openfoodfacts.Product) string {
	b, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", map[string]any(p))
	}
	return string(b)
}
