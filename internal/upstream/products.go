package upstream

import (
	"context"
	"net/http"
	"net/url"

	"raynott-storefront/internal/domain"
)

// ListProducts fetches the catalog, optionally filtered by category
// and/or a search term.
func (c *Client) ListProducts(ctx context.Context, category, search string) ([]domain.Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if search != "" {
		query.Set("search", search)
	}
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products", "", query, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FeaturedProducts fetches the homepage featured selection.
func (c *Client) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/featured", "", nil, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct fetches a single product including its stock count.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, http.MethodGet, "/products/"+id, "", nil, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a catalog entry. Admin token required.
func (c *Client) CreateProduct(ctx context.Context, token string, p domain.Product) (*domain.Product, error) {
	var created domain.Product
	if err := c.do(ctx, http.MethodPost, "/products", token, nil, p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// UpdateProduct replaces a catalog entry. Admin token required.
func (c *Client) UpdateProduct(ctx context.Context, token, id string, p domain.Product) (*domain.Product, error) {
	var updated domain.Product
	if err := c.do(ctx, http.MethodPut, "/products/"+id, token, nil, p, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteProduct removes a catalog entry. Admin token required.
func (c *Client) DeleteProduct(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/products/"+id, token, nil, nil, nil)
}
