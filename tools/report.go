package tools

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"foodscout/openfoodfacts"
	"foodscout/sampling"
)

func notFoundMessage(identifier string) string {
	return fmt.Sprintf("No product found matching %q. Try a different name or an exact barcode.", identifier)
}

// productTitle derives a human-readable title from the name and brand fields,
// falling back to the barcode when both are missing.
func productTitle(p openfoodfacts.Product) string {
	name := p.Name()
	if name == "" {
		if code := p.Code(); code != "" {
			return "Product " + code
		}
		return "Unknown product"
	}
	if brands := p.Brands(); brands != "" {
		return name + " by " + brands
	}
	return name
}

func renderReport(heading, title, body string) string {
	return fmt.Sprintf("# %s: %s\n\n%s", heading, title, strings.TrimSpace(body))
}

// sampleOrFallback tries the sampling gateway and, when it fails, degrades to
// the deterministic locally-built report. The fallback is a degraded success,
// not an error: the caller still gets a usable report built from the already
// resolved product fields.
func sampleOrFallback(ctx context.Context, sampler sampling.Gateway, req sampling.Request, fallback func() string) string {
	text, err := sampler.RequestSampling(ctx, req)
	if err != nil {
		slog.Warn("TOOLS: Sampling unavailable, using local fallback", "error", err)
		return fallback()
	}
	return text
}

// productSummaryLines renders the deterministic fallback body for one
// product from its own fields.
func productSummaryLines(p openfoodfacts.Product) string {
	var sb strings.Builder
	if brands := p.Brands(); brands != "" {
		fmt.Fprintf(&sb, "Brand: %s\n", brands)
	}
	if code := p.Code(); code != "" {
		fmt.Fprintf(&sb, "Barcode: %s\n", code)
	}
	if grade := p.NutriScore(); grade != "" {
		fmt.Fprintf(&sb, "Nutri-Score: %s\n", strings.ToUpper(grade))
	}
	if ingredients := p.IngredientsText(); ingredients != "" {
		fmt.Fprintf(&sb, "Ingredients: %s\n", ingredients)
	}
	if sb.Len() == 0 {
		sb.WriteString("No further details available for this product.\n")
	}
	return sb.String()
}

func analysisFallback(p openfoodfacts.Product) string {
	return fmt.Sprintf(
		"%s\n%s\nAI analysis is currently unavailable; the summary above was built from the product record.",
		p.Name(), productSummaryLines(p),
	)
}

func comparisonFallback(p1, p2 openfoodfacts.Product) string {
	return fmt.Sprintf(
		"Product 1: %s\n%s\nProduct 2: %s\n%s\nAI comparison is currently unavailable; the summaries above were built from the product records.",
		productTitle(p1), productSummaryLines(p1),
		productTitle(p2), productSummaryLines(p2),
	)
}
