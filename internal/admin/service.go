// Package admin backs the administrative console. Mutations follow an
// explicit two-phase shape: apply to the locally cached view first,
// then reconcile with the upstream response or roll the view back on
// failure. The cache only serves the console's list views; it is never
// an authority.
package admin

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"raynott-storefront/internal/domain"
)

type upstreamClient interface {
	ListProducts(ctx context.Context, category, search string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, token string, p domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, token, id string, p domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, token, id string) error
	ListOrders(ctx context.Context, token string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, token, id, status string) (*domain.Order, error)
	ListUsers(ctx context.Context, token string) ([]domain.User, error)
	DeleteUser(ctx context.Context, token, id string) error
	Stats(ctx context.Context, token string) (map[string]interface{}, error)
}

type Service struct {
	client upstreamClient
	logger *zap.Logger

	mu       sync.RWMutex
	products []domain.Product
	orders   []domain.Order
	users    []domain.User
}

func New(client upstreamClient, logger *zap.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// Products refreshes and returns the product view.
func (s *Service) Products(ctx context.Context) ([]domain.Product, error) {
	products, err := s.client.ListProducts(ctx, "", "")
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
	return s.snapshotProducts(), nil
}

// CreateProduct: phase one appends the provisional entry to the view,
// phase two reconciles it with the upstream-assigned record, or removes
// it again when the upstream call fails. Phase two re-locates the entry
// rather than trusting its old position: a concurrent refresh may have
// replaced the slice while the upstream call was in flight. Gone
// already means nothing to reconcile or roll back.
func (s *Service) CreateProduct(ctx context.Context, token string, p domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	s.products = append(s.products, p)
	s.mu.Unlock()

	created, err := s.client.CreateProduct(ctx, token, p)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		for i := range s.products {
			if s.products[i] == p {
				s.products = append(s.products[:i], s.products[i+1:]...)
				break
			}
		}
		s.logger.Warn("product create rolled back", zap.String("name", p.Name), zap.Error(err))
		return nil, err
	}
	for i := range s.products {
		if s.products[i] == p {
			s.products[i] = *created
			return created, nil
		}
	}
	if s.productIndex(created.ID) < 0 {
		s.products = append(s.products, *created)
	}
	return created, nil
}

// UpdateProduct: phase one swaps the cached entry, phase two reconciles
// with the upstream record or restores the previous entry, re-locating
// it by id in case a concurrent refresh moved or dropped it.
func (s *Service) UpdateProduct(ctx context.Context, token, id string, p domain.Product) (*domain.Product, error) {
	s.mu.Lock()
	swapped := false
	var prev domain.Product
	if i := s.productIndex(id); i >= 0 {
		swapped = true
		prev = s.products[i]
		s.products[i] = p
		s.products[i].ID = id
	}
	s.mu.Unlock()

	updated, err := s.client.UpdateProduct(ctx, token, id, p)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if swapped {
			if i := s.productIndex(id); i >= 0 {
				s.products[i] = prev
			}
		}
		s.logger.Warn("product update rolled back", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if i := s.productIndex(id); i >= 0 {
		s.products[i] = *updated
	}
	return updated, nil
}

// DeleteProduct: phase one drops the entry from the view, phase two
// confirms upstream or reinserts it at its old position, clamped in
// case a concurrent refresh shrank the view. A refresh that already
// restored the entry wins.
func (s *Service) DeleteProduct(ctx context.Context, token, id string) error {
	s.mu.Lock()
	var removed domain.Product
	at := s.productIndex(id)
	if at >= 0 {
		removed = s.products[at]
		s.products = append(s.products[:at], s.products[at+1:]...)
	}
	s.mu.Unlock()

	if err := s.client.DeleteProduct(ctx, token, id); err != nil {
		s.mu.Lock()
		if at >= 0 && s.productIndex(id) < 0 {
			if at > len(s.products) {
				at = len(s.products)
			}
			s.products = append(s.products[:at], append([]domain.Product{removed}, s.products[at:]...)...)
		}
		s.mu.Unlock()
		s.logger.Warn("product delete rolled back", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Orders refreshes and returns the order view.
func (s *Service) Orders(ctx context.Context, token string) ([]domain.Order, error) {
	orders, err := s.client.ListOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()
	return s.snapshotOrders(), nil
}

// SetOrderStatus: phase one updates the cached status, phase two
// reconciles or restores it, re-locating the order by id.
func (s *Service) SetOrderStatus(ctx context.Context, token, id, status string) (*domain.Order, error) {
	s.mu.Lock()
	changed := false
	prev := ""
	if i := s.orderIndex(id); i >= 0 {
		changed = true
		prev = s.orders[i].Status
		s.orders[i].Status = status
	}
	s.mu.Unlock()

	updated, err := s.client.UpdateOrderStatus(ctx, token, id, status)
	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		if changed {
			if i := s.orderIndex(id); i >= 0 {
				s.orders[i].Status = prev
			}
		}
		s.logger.Warn("order status rolled back", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if i := s.orderIndex(id); i >= 0 {
		s.orders[i] = *updated
	}
	return updated, nil
}

// Users refreshes and returns the user view.
func (s *Service) Users(ctx context.Context, token string) ([]domain.User, error) {
	users, err := s.client.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.users = users
	s.mu.Unlock()
	return s.snapshotUsers(), nil
}

// DeleteUser: phase one drops the entry from the view, phase two
// confirms upstream or reinserts it, clamped like DeleteProduct.
func (s *Service) DeleteUser(ctx context.Context, token, id string) error {
	s.mu.Lock()
	var removed domain.User
	at := s.userIndex(id)
	if at >= 0 {
		removed = s.users[at]
		s.users = append(s.users[:at], s.users[at+1:]...)
	}
	s.mu.Unlock()

	if err := s.client.DeleteUser(ctx, token, id); err != nil {
		s.mu.Lock()
		if at >= 0 && s.userIndex(id) < 0 {
			if at > len(s.users) {
				at = len(s.users)
			}
			s.users = append(s.users[:at], append([]domain.User{removed}, s.users[at:]...)...)
		}
		s.mu.Unlock()
		s.logger.Warn("user delete rolled back", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// Stats passes the dashboard aggregates straight through.
func (s *Service) Stats(ctx context.Context, token string) (map[string]interface{}, error) {
	return s.client.Stats(ctx, token)
}

// index helpers assume the caller holds s.mu.

func (s *Service) productIndex(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) orderIndex(id string) int {
	for i := range s.orders {
		if s.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) userIndex(id string) int {
	for i := range s.users {
		if s.users[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Service) snapshotProducts() []domain.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Service) snapshotOrders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Service) snapshotUsers() []domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.User, len(s.users))
	copy(out, s.users)
	return out
}
