package openfoodfacts

// Product is a product record as returned by the Open Food Facts API. The
// API's schema is large and loosely specified, so records are kept open and
// passed through verbatim; accessors below read the handful of fields this
// service cares about and tolerate their absence.
type Product map[string]any

func (p Product) str(key string) string {
	s, _ := p[key].(string)
	return s
}

// Code returns the product barcode, if present.
func (p Product) Code() string { return p.str("code") }

// Name returns the product name, if present.
func (p Product) Name() string { return p.str("product_name") }

// Brands returns the comma-separated brand list, if present.
func (p Product) Brands() string { return p.str("brands") }

// NutriScore returns the Nutri-Score grade (a to e), if present.
func (p Product) NutriScore() string { return p.str("nutriscore_grade") }

// IngredientsText returns the free-text ingredient list, if present.
func (p Product) IngredientsText() string { return p.str("ingredients_text") }

// SearchPage is one page of search results. Search results are summaries;
// callers that need the full record fetch it by barcode afterwards.
type SearchPage struct {
	Count    int       `json:"count"`
	Page     int       `json:"page"`
	PageSize int       `json:"page_size"`
	Products []Product `json:"products"`
}
