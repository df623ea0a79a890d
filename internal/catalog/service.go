// Package catalog exposes the upstream product catalog to the
// storefront, with degraded price data normalized on the way in.
package catalog

import (
	"context"

	"raynott-storefront/internal/domain"
	"raynott-storefront/internal/pricing"
)

type upstreamClient interface {
	ListProducts(ctx context.Context, category, search string) ([]domain.Product, error)
	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

type Service struct {
	client upstreamClient
}

func New(client upstreamClient) *Service {
	return &Service{client: client}
}

// List returns the catalog filtered by category and/or search term.
func (s *Service) List(ctx context.Context, category, search string) ([]domain.Product, error) {
	products, err := s.client.ListProducts(ctx, category, search)
	if err != nil {
		return nil, err
	}
	for i := range products {
		sanitize(&products[i])
	}
	return products, nil
}

// Featured returns the homepage featured selection.
func (s *Service) Featured(ctx context.Context) ([]domain.Product, error) {
	products, err := s.client.FeaturedProducts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		sanitize(&products[i])
	}
	return products, nil
}

// Get returns a single product with its stock count.
func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	product, err := s.client.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}
	sanitize(product)
	return product, nil
}

// sanitize applies the lenient-display policy: an unusable unit price
// becomes zero so no downstream consumer branches on bad data.
func sanitize(p *domain.Product) {
	p.PriceUSD = pricing.UnitPrice(*p, domain.CurrencyUSD)
	p.PriceINR = pricing.UnitPrice(*p, domain.CurrencyINR)
}
