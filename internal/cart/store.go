// Package cart holds the per-session cart state: an ordered sequence of
// lines plus the selected display currency.
package cart

import (
	"sync"

	"raynott-storefront/internal/domain"
	"raynott-storefront/internal/pricing"
)

// Store owns one session's cart lines. Lines keep insertion order and
// hold at most one entry per product id. All methods are safe for
// concurrent use; each is atomic with respect to the others.
type Store struct {
	mu       sync.RWMutex
	lines    []domain.CartLine
	currency domain.Currency
}

// New returns an empty store displaying USD.
func New() *Store {
	return &Store{currency: domain.CurrencyUSD}
}

// Add merges the product into the cart: an existing line for the same
// product id has its quantity incremented, otherwise a new line is
// appended. A qty below 1 is treated as 1. Stock is informational only
// and not checked here.
func (s *Store) Add(p domain.Product, qty int) {
	if qty < 1 {
		qty = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ID == p.ID {
			s.lines[i].Quantity += qty
			return
		}
	}
	s.lines = append(s.lines, domain.CartLine{Product: p, Quantity: qty})
}

// Remove drops the line with the given product id. Removing an absent
// id is a no-op.
func (s *Store) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the line's quantity. A qty of zero or below
// removes the line, keeping the quantity >= 1 invariant at this layer.
// Setting an absent id is a no-op.
func (s *Store) SetQuantity(productID string, qty int) {
	if qty <= 0 {
		s.Remove(productID)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = qty
			return
		}
	}
}

// Clear empties the line sequence. The currency selection is unaffected.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// SetCurrency changes the display currency. Stored quantities and
// prices are untouched. An unsupported value is ignored.
func (s *Store) SetCurrency(c domain.Currency) {
	if !c.Valid() {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currency = c
}

// Currency returns the active display currency.
func (s *Store) Currency() domain.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currency
}

// Lines returns a copy of the current lines in insertion order.
func (s *Store) Lines() []domain.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.CartLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the current number of lines.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.lines)
}

// Totals recomputes the aggregate amounts from the current lines on
// every call. It is a pure function of the line state; nothing is
// cached across mutations.
func (s *Store) Totals() domain.Totals {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var t domain.Totals
	for _, line := range s.lines {
		t.ItemsPriceUSD += pricing.LineAmount(line, domain.CurrencyUSD)
		t.ItemsPriceINR += pricing.LineAmount(line, domain.CurrencyINR)
	}
	return t
}
