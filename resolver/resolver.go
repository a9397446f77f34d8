// Package resolver turns a free-form identifier (barcode or product name)
// into a full product record.
package resolver

import (
	"context"
	"log/slog"
	"strings"

	"foodscout/openfoodfacts"
)

// stageOutcome is the result of one resolution stage. A stage that errors is
// treated like not-found for control flow, but stays visible in the logs.
type stageOutcome int

const (
	outcomeFound stageOutcome = iota
	outcomeNotFound
	outcomeErrored
)

// Resolver disambiguates identifiers against the product catalog using a
// two-stage strategy: a direct barcode lookup for all-digit identifiers,
// then a search-then-fetch fallback for everything, in that order.
type Resolver struct {
	catalog openfoodfacts.Catalog
}

func New(catalog openfoodfacts.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve returns the full product record for an identifier, or nil when no
// product could be identified. Catalog errors never propagate: each stage
// logs its failure and resolution falls through to the next stage.
func (r *Resolver) Resolve(ctx context.Context, identifier string) openfoodfacts.Product {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil
	}

	if isBarcode(identifier) {
		if p, outcome := r.lookupStage(ctx, identifier); outcome == outcomeFound {
			return p
		}
	}

	p, _ := r.searchStage(ctx, identifier)
	return p
}

// lookupStage tries a direct barcode fetch.
func (r *Resolver) lookupStage(ctx context.Context, code string) (openfoodfacts.Product, stageOutcome) {
	p, err := r.catalog.GetByBarcode(ctx, code)
	if err != nil {
		slog.Warn("RESOLVER: Barcode lookup failed, falling back to search", "code", code, "error", err)
		return nil, outcomeErrored
	}
	if p == nil {
		return nil, outcomeNotFound
	}
	return p, outcomeFound
}

// searchStage searches for the identifier as free text, then fetches the full
// record for the first hit. Search results are summaries, so the second
// barcode fetch is always needed.
func (r *Resolver) searchStage(ctx context.Context, identifier string) (openfoodfacts.Product, stageOutcome) {
	page, err := r.catalog.Search(ctx, identifier, 1, 1)
	if err != nil {
		slog.Warn("RESOLVER: Search failed", "query", identifier, "error", err)
		return nil, outcomeErrored
	}
	if len(page.Products) == 0 {
		return nil, outcomeNotFound
	}

	code := page.Products[0].Code()
	p, err := r.catalog.GetByBarcode(ctx, code)
	if err != nil {
		slog.Warn("RESOLVER: Full record fetch failed", "code", code, "error", err)
		return nil, outcomeErrored
	}
	if p == nil {
		return nil, outcomeNotFound
	}
	return p, outcomeFound
}

// isBarcode reports whether the identifier is all decimal digits. The test is
// purely syntactic: no checksum or length validation against EAN/UPC, so a
// digit-only search term simply costs one extra lookup before the search
// fallback kicks in.
func isBarcode(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
