package openfoodfacts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/cgi/search.pl", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "nutella", q.Get("search_terms"))
		assert.Equal(t, "1", q.Get("page"))
		assert.Equal(t, "1", q.Get("page_size"))
		assert.Equal(t, "1", q.Get("json"))
		w.Write([]byte(`{"count":42,"page":1,"page_size":1,"products":[{"code":"3017620422003","product_name":"Nutella"}]}`))
	}))
	defer srv.Close()

	c := NewClient(ClientOpts{BaseURL: srv.URL})
	sp, err := c.Search(context.Background(), "nutella", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 42, sp.Count)
	require.Len(t, sp.Products, 1)
	assert.Equal(t, "3017620422003", sp.Products[0].Code())
	assert.Equal(t, "Nutella", sp.Products[0].Name())
}

func TestSearch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(ClientOpts{BaseURL: srv.URL})
	_, err := c.Search(context.Background(), "nutella", 1, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}

func TestGetByBarcode(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantProduct bool
		wantErr     bool
	}{
		{
			name:        "found",
			status:      http.StatusOK,
			body:        `{"status":1,"product":{"code":"3017620422003","product_name":"Nutella","brands":"Ferrero","nutriscore_grade":"e"}}`,
			wantProduct: true,
		},
		{
			name:   "status zero means absent",
			status: http.StatusOK,
			body:   `{"status":0,"status_verbose":"product not found"}`,
		},
		{
			name:   "http 404 means absent",
			status: http.StatusNotFound,
			body:   `not found`,
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			body:    `boom`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/v2/product/3017620422003.json", r.URL.Path)
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(ClientOpts{BaseURL: srv.URL})
			p, err := c.GetByBarcode(context.Background(), "3017620422003")

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tt.wantProduct {
				require.NotNil(t, p)
				assert.Equal(t, "Nutella", p.Name())
				assert.Equal(t, "Ferrero", p.Brands())
				assert.Equal(t, "e", p.NutriScore())
			} else {
				assert.Nil(t, p)
			}
		})
	}
}

func TestProductAccessors_TolerateAbsence(t *testing.T) {
	p := Product{"product_name": "Oat Milk", "nova_group": 4.0}
	assert.Equal(t, "Oat Milk", p.Name())
	assert.Equal(t, "", p.Brands())
	assert.Equal(t, "", p.NutriScore())
	assert.Equal(t, "", p.IngredientsText())
	assert.Equal(t, "", p.Code())
}
