package tools

import (
	"context"
	"errors"
	"sync"

	"foodscout/openfoodfacts"
)

// mockResolver resolves from a fixed map and records the identifiers it saw.
// Locked because compare_products resolves both sides concurrently.
type mockResolver struct {
	mu       sync.Mutex
	products map[string]openfoodfacts.Product
	calls    []string
}

func (m *mockResolver) Resolve(ctx context.Context, identifier string) openfoodfacts.Product {
	m.mu.Lock()
	m.calls = append(m.calls, identifier)
	m.mu.Unlock()
	return m.products[identifier]
}

// mockCatalog scripts the pass-through tools' collaborator.
type mockCatalog struct {
	searchPage openfoodfacts.SearchPage
	searchErr  error
	product    openfoodfacts.Product
	barcodeErr error
}

func (m *mockCatalog) Search(ctx context.Context, query string, page, pageSize int) (openfoodfacts.SearchPage, error) {
	if m.searchErr != nil {
		return openfoodfacts.SearchPage{}, m.searchErr
	}
	return m.searchPage, nil
}

func (m *mockCatalog) GetByBarcode(ctx context.Context, code string) (openfoodfacts.Product, error) {
	if m.barcodeErr != nil {
		return nil, m.barcodeErr
	}
	return m.product, nil
}

var errGatewayDown = errors.New("sampling gateway unavailable")

func nutella() openfoodfacts.Product {
	return openfoodfacts.Product{
		"code":             "3017620422003",
		"product_name":     "Nutella",
		"brands":           "Ferrero",
		"nutriscore_grade": "e",
		"ingredients_text": "Sugar, palm oil, hazelnuts 13%, skimmed milk powder, cocoa",
	}
}

func oatMilk() openfoodfacts.Product {
	return openfoodfacts.Product{
		"code":             "7394376616808",
		"product_name":     "Oat Drink",
		"brands":           "Oatly",
		"nutriscore_grade": "b",
		"ingredients_text": "Water, oats 10%, rapeseed oil, salt",
	}
}
