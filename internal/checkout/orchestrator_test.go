package checkout

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"raynott-storefront/internal/cart"
	"raynott-storefront/internal/domain"
)

type stubPlacer struct {
	mu       sync.Mutex
	order    *domain.Order
	err      error
	calls    int
	lastSub  domain.OrderSubmission
	block    chan struct{} // when set, CreateOrder waits until closed
	started  chan struct{} // when set, closed once CreateOrder is entered
	lastTok  string
	failOnce bool
}

func (s *stubPlacer) CreateOrder(_ context.Context, token string, sub domain.OrderSubmission) (*domain.Order, error) {
	s.mu.Lock()
	s.calls++
	s.lastSub = sub
	s.lastTok = token
	started := s.started
	block := s.block
	s.mu.Unlock()
	if started != nil {
		close(started)
		s.mu.Lock()
		s.started = nil
		s.mu.Unlock()
	}
	if block != nil {
		<-block
	}
	if s.failOnce {
		s.failOnce = false
		return nil, errors.New("upstream boom")
	}
	return s.order, s.err
}

func (s *stubPlacer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func filledShipping() domain.ShippingAddress {
	return domain.ShippingAddress{
		FullName:   "Ada Lovelace",
		Address:    "12 Analytical Way",
		City:       "London",
		PostalCode: "N1 7AA",
		Country:    "UK",
	}
}

func testUser() *domain.User {
	return &domain.User{ID: "u1", Username: "ada", Email: "ada@example.com"}
}

func seededCart() *cart.Store {
	c := cart.New()
	c.Add(domain.Product{ID: "p1", Name: "Mug", PriceUSD: 9.99, PriceINR: 830, Image: "mug.png"}, 2)
	c.Add(domain.Product{ID: "p2", Name: "Pen", PriceUSD: 1.5, PriceINR: 125}, 1)
	return c
}

func TestEmptyCartFailsWithoutUpstreamCall(t *testing.T) {
	placer := &stubPlacer{}
	o := New(placer, cart.New(), 0, zap.NewNop())
	_, err := o.Submit(context.Background(), "tok", testUser(), filledShipping())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if placer.callCount() != 0 {
		t.Fatalf("upstream called %d times for empty cart", placer.callCount())
	}
	status, msg := o.Status()
	if status != StatusFailed || msg != ErrEmptyCart.Error() {
		t.Fatalf("unexpected status %s %q", status, msg)
	}
}

func TestGuestFailsWithoutUpstreamCall(t *testing.T) {
	placer := &stubPlacer{}
	o := New(placer, seededCart(), 0, zap.NewNop())
	_, err := o.Submit(context.Background(), "", nil, filledShipping())
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if placer.callCount() != 0 {
		t.Fatalf("upstream called for guest checkout")
	}
}

func TestIncompleteShippingFailsWithoutUpstreamCall(t *testing.T) {
	placer := &stubPlacer{}
	c := seededCart()
	o := New(placer, c, 0, zap.NewNop())

	shipping := filledShipping()
	shipping.City = "   "
	_, err := o.Submit(context.Background(), "tok", testUser(), shipping)
	if !errors.Is(err, ErrIncompleteShipping) {
		t.Fatalf("expected ErrIncompleteShipping, got %v", err)
	}
	if placer.callCount() != 0 {
		t.Fatalf("upstream called for incomplete shipping")
	}
	if c.Len() != 2 {
		t.Fatalf("validation failure touched the cart: %d lines", c.Len())
	}
}

func TestSuccessSubmitsOnceAndClearsCart(t *testing.T) {
	placer := &stubPlacer{order: &domain.Order{ID: "o1"}}
	c := seededCart()
	o := New(placer, c, 1500*time.Millisecond, zap.NewNop())

	res, err := o.Submit(context.Background(), "tok-1", testUser(), filledShipping())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if placer.callCount() != 1 {
		t.Fatalf("expected exactly one upstream call, got %d", placer.callCount())
	}
	if placer.lastTok != "tok-1" {
		t.Fatalf("token not forwarded: %q", placer.lastTok)
	}
	if c.Len() != 0 {
		t.Fatalf("cart not cleared on success: %d lines", c.Len())
	}
	if res.Order.ID != "o1" || res.RedirectAfter != 1500*time.Millisecond {
		t.Fatalf("unexpected result: %+v", res)
	}
	if status, _ := o.Status(); status != StatusSucceeded {
		t.Fatalf("expected SUCCEEDED, got %s", status)
	}
}

func TestSubmissionPayloadSnapshot(t *testing.T) {
	placer := &stubPlacer{order: &domain.Order{ID: "o1"}}
	o := New(placer, seededCart(), 0, zap.NewNop())

	if _, err := o.Submit(context.Background(), "tok", testUser(), filledShipping()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sub := placer.lastSub
	if len(sub.OrderItems) != 2 {
		t.Fatalf("expected 2 order items, got %d", len(sub.OrderItems))
	}
	first := sub.OrderItems[0]
	if first.Product != "p1" || first.Name != "Mug" || first.Qty != 2 || first.PriceUSD != 9.99 || first.PriceINR != 830 || first.Image != "mug.png" {
		t.Fatalf("unexpected first item: %+v", first)
	}
	if sub.PaymentMethod != PaymentMethod {
		t.Fatalf("unexpected payment method: %q", sub.PaymentMethod)
	}
	wantUSD := 9.99*2 + 1.5
	wantINR := 830.0*2 + 125
	if sub.ItemsPriceUSD != wantUSD || sub.TotalPriceUSD != wantUSD {
		t.Fatalf("unexpected USD totals: %+v", sub)
	}
	if sub.ItemsPriceINR != wantINR || sub.TotalPriceINR != wantINR {
		t.Fatalf("unexpected INR totals: %+v", sub)
	}
	if sub.ShippingAddress != filledShipping() {
		t.Fatalf("shipping address not carried: %+v", sub.ShippingAddress)
	}
}

func TestFailureKeepsCartAndReportsFailed(t *testing.T) {
	placer := &stubPlacer{err: errors.New("upstream boom")}
	c := seededCart()
	o := New(placer, c, 0, zap.NewNop())

	_, err := o.Submit(context.Background(), "tok", testUser(), filledShipping())
	if err == nil {
		t.Fatalf("expected error")
	}
	if c.Len() != 2 {
		t.Fatalf("cart mutated on failure: %d lines", c.Len())
	}
	status, msg := o.Status()
	if status != StatusFailed {
		t.Fatalf("expected FAILED, got %s", status)
	}
	// Transport failures surface a generic message, not upstream detail.
	if msg != "failed to place order" {
		t.Fatalf("unexpected failure message: %q", msg)
	}
}

func TestRetryAfterFailureSucceeds(t *testing.T) {
	placer := &stubPlacer{order: &domain.Order{ID: "o2"}, failOnce: true}
	c := seededCart()
	o := New(placer, c, 0, zap.NewNop())

	if _, err := o.Submit(context.Background(), "tok", testUser(), filledShipping()); err == nil {
		t.Fatalf("expected first attempt to fail")
	}
	res, err := o.Submit(context.Background(), "tok", testUser(), filledShipping())
	if err != nil {
		t.Fatalf("retry failed: %v", err)
	}
	if res.Order.ID != "o2" {
		t.Fatalf("unexpected order: %+v", res.Order)
	}
	if placer.callCount() != 2 {
		t.Fatalf("expected 2 upstream calls, got %d", placer.callCount())
	}
}

func TestConcurrentSubmitIsRejected(t *testing.T) {
	placer := &stubPlacer{
		order:   &domain.Order{ID: "o1"},
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	o := New(placer, seededCart(), 0, zap.NewNop())

	done := make(chan error, 1)
	go func() {
		_, err := o.Submit(context.Background(), "tok", testUser(), filledShipping())
		done <- err
	}()

	<-placer.started
	if status, _ := o.Status(); status != StatusSubmitting {
		t.Fatalf("expected SUBMITTING while in flight, got %s", status)
	}

	_, err := o.Submit(context.Background(), "tok", testUser(), filledShipping())
	if !errors.Is(err, ErrSubmissionInFlight) {
		t.Fatalf("expected ErrSubmissionInFlight, got %v", err)
	}

	close(placer.block)
	if err := <-done; err != nil {
		t.Fatalf("in-flight attempt failed: %v", err)
	}
	if placer.callCount() != 1 {
		t.Fatalf("duplicate submission reached upstream: %d calls", placer.callCount())
	}
}
