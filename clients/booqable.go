package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// BooqableProduct is the raw upstream product shape. Transformation into the
// API-facing Club model happens in the catalogue service.
type BooqableProduct struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	SKU         string   `json:"sku"`
	Description string   `json:"description"`
	Photo       string   `json:"photo_url"`
	Brand       string   `json:"brand"`
	Archived    bool     `json:"archived"`
	Tags        []string `json:"tag_list"`
	CreatedAt   string   `json:"created_at"`
}

// ProductsPage is one page of the product catalogue plus the total count
// Booqable reports for the whole collection.
type ProductsPage struct {
	Products []BooqableProduct
	Total    int
}

// BooqableLocation is the raw upstream location shape.
type BooqableLocation struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address1 string `json:"address_line_1"`
	Address2 string `json:"address_line_2"`
	City     string `json:"city"`
}

type productsResponse struct {
	Products []BooqableProduct `json:"products"`
	Meta     struct {
		TotalCount int `json:"total_count"`
	} `json:"meta"`
}

type locationsResponse struct {
	Locations []BooqableLocation `json:"locations"`
}

type availabilityResponse struct {
	Available bool `json:"available"`
}

// BooqableClient talks to the Booqable REST API. It holds no state beyond
// connection configuration; every call carries the bearer token it was
// constructed with.
type BooqableClient struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewBooqableClient(baseURL, token string, timeout time.Duration) *BooqableClient {
	return &BooqableClient{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}
}

// GetProductsPage fetches one page of the product catalogue. A non-2xx
// response is returned as an error; callers must treat it as fatal for the
// whole aggregation.
func (b *BooqableClient) GetProductsPage(ctx context.Context, page, perPage int) (*ProductsPage, error) {
	query := url.Values{}
	query.Set("page", fmt.Sprintf("%d", page))
	query.Set("per", fmt.Sprintf("%d", perPage))

	var body productsResponse
	if err := b.getJSON(ctx, "/products", query, &body); err != nil {
		return nil, err
	}
	return &ProductsPage{Products: body.Products, Total: body.Meta.TotalCount}, nil
}

// GetLocations fetches every location. A non-2xx response is an error.
func (b *BooqableClient) GetLocations(ctx context.Context) ([]BooqableLocation, error) {
	var body locationsResponse
	if err := b.getJSON(ctx, "/locations", nil, &body); err != nil {
		return nil, err
	}
	return body.Locations, nil
}

// CheckAvailability asks whether one product is rentable at a location on a
// date. The date parts are forwarded verbatim; Booqable owns calendar
// validation. Errors here are per-item and the availability resolver
// fail-opens on them.
func (b *BooqableClient) CheckAvailability(ctx context.Context, productID, locationID, year, month, day string) (bool, error) {
	date := year + "-" + month + "-" + day
	query := url.Values{}
	query.Set("from", date)
	query.Set("till", date)
	if locationID != "" {
		query.Set("location_id", locationID)
	}

	var body availabilityResponse
	if err := b.getJSON(ctx, "/products/"+productID+"/availability", query, &body); err != nil {
		return false, err
	}
	return body.Available, nil
}

func (b *BooqableClient) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	u := b.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+b.token)
	req.Header.Set("Accept", "application/json")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("booqable request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		// Upstream error bodies are logged here and never forwarded to API
		// clients.
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		zap.L().Error("booqable returned error status",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", raw),
		)
		return fmt.Errorf("booqable: unexpected status %d for %s", resp.StatusCode, path)
	}

	return json.NewDecoder(resp.Body).Decode(out)
}
