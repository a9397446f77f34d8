package openfoodfacts

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const userAgent = "foodscout/0.1 (https://github.com/foodscout)"

// Catalog is the product database capability consumed by the resolver and
// the pass-through tools.
type Catalog interface {
	Search(ctx context.Context, query string, page, pageSize int) (SearchPage, error)
	GetByBarcode(ctx context.Context, code string) (Product, error)
}

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the Open Food Facts API.
type Client struct {
	baseURL    string
	httpClient doer
	limiter    *rate.Limiter
}

type ClientOpts struct {
	BaseURL    string
	HTTPClient doer
	Timeout    time.Duration
}

// NewClient creates an Open Food Facts client. Requests are rate limited as a
// courtesy to the public API (it asks bulk consumers to stay under ~100
// req/min for reads).
func NewClient(opts ClientOpts) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = "https://world.openfoodfacts.org"
	}
	if opts.HTTPClient == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = 30 * time.Second
		}
		opts.HTTPClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(1.5), 5),
	}
}

// Search runs a free-text product search and returns one page of summaries.
func (c *Client) Search(ctx context.Context, query string, page, pageSize int) (SearchPage, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page", strconv.Itoa(page))
	params.Set("page_size", strconv.Itoa(pageSize))

	body, err := c.get(ctx, c.baseURL+"/cgi/search.pl?"+params.Encode())
	if err != nil {
		return SearchPage{}, err
	}

	var sp SearchPage
	if err := json.Unmarshal(body, &sp); err != nil {
		return SearchPage{}, fmt.Errorf("decode search response: %w", err)
	}
	if sp.Page == 0 {
		sp.Page = page
	}
	if sp.PageSize == 0 {
		sp.PageSize = pageSize
	}
	return sp, nil
}

// GetByBarcode fetches the full record for a barcode. A missing product is
// not an error: it returns (nil, nil).
func (c *Client) GetByBarcode(ctx context.Context, code string) (Product, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	reqURL := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(code))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("product lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product lookup: %s: %s", resp.Status, string(body))
	}

	var wire struct {
		Status  int     `json:"status"`
		Product Product `json:"product"`
	}
	if err := json.Unmarshal(body, &wire); err != nil {
		return nil, fmt.Errorf("decode product response: %w", err)
	}
	if wire.Status != 1 || len(wire.Product) == 0 {
		slog.Info("OFF_CLIENT: Barcode not in database", "code", code)
		return nil, nil
	}
	return wire.Product, nil
}

func (c *Client) get(ctx context.Context, reqURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("product search: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("product search: %s: %s", resp.Status, string(body))
	}
	return body, nil
}
