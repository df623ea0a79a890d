// Package checkout drives a single order submission from cart snapshot
// to upstream confirmation.
package checkout

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"raynott-storefront/internal/domain"
	"raynott-storefront/internal/pricing"
)

// PaymentMethod is the only payment option the storefront offers.
const PaymentMethod = "COD"

type orderPlacer interface {
	CreateOrder(ctx context.Context, token string, sub domain.OrderSubmission) (*domain.Order, error)
}

type cartStore interface {
	Lines() []domain.CartLine
	Clear()
}

// Orchestrator runs checkout attempts for one session's cart. An
// attempt moves Idle -> Validating -> Submitting -> Succeeded or
// Failed. Validation failures never produce an upstream call, and the
// cart survives every failure untouched so the user can retry without
// re-entering anything.
type Orchestrator struct {
	placer        orderPlacer
	cart          cartStore
	redirectAfter time.Duration
	logger        *zap.Logger

	// submitMu is held for the whole attempt; statusMu only guards the
	// status fields so Status never blocks behind a slow upstream call.
	submitMu sync.Mutex
	statusMu sync.Mutex
	status   Status
	message  string
}

// New returns an idle orchestrator. redirectAfter is the fixed delay
// the UI waits after success before navigating away.
func New(placer orderPlacer, cart cartStore, redirectAfter time.Duration, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		placer:        placer,
		cart:          cart,
		redirectAfter: redirectAfter,
		logger:        logger,
		status:        StatusIdle,
	}
}

// Result reports a successful attempt.
type Result struct {
	Order         *domain.Order
	RedirectAfter time.Duration
}

// Submit runs one checkout attempt. user is nil for guests. At most one
// submission is outstanding; a concurrent trigger gets
// ErrSubmissionInFlight without affecting the running attempt.
func (o *Orchestrator) Submit(ctx context.Context, token string, user *domain.User, shipping domain.ShippingAddress) (*Result, error) {
	if !o.submitMu.TryLock() {
		return nil, ErrSubmissionInFlight
	}
	defer o.submitMu.Unlock()

	o.setStatus(StatusValidating, "")

	lines := o.cart.Lines()
	if err := o.validate(lines, user, shipping); err != nil {
		o.setStatus(StatusFailed, err.Error())
		return nil, err
	}

	sub := buildSubmission(lines, shipping)
	o.setStatus(StatusSubmitting, "placing order")

	order, err := o.placer.CreateOrder(ctx, token, sub)
	if err != nil {
		o.logger.Warn("order submission failed", zap.Error(err))
		o.setStatus(StatusFailed, "failed to place order")
		return nil, err
	}

	o.cart.Clear()
	o.setStatus(StatusSucceeded, "order placed successfully")
	o.logger.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("items", len(sub.OrderItems)),
		zap.Float64("total_usd", sub.TotalPriceUSD))

	return &Result{Order: order, RedirectAfter: o.redirectAfter}, nil
}

// validate applies the entry guards in a fixed order: empty cart, then
// identity, then shipping completeness.
func (o *Orchestrator) validate(lines []domain.CartLine, user *domain.User, shipping domain.ShippingAddress) error {
	if len(lines) == 0 {
		return ErrEmptyCart
	}
	if user == nil {
		return ErrAuthRequired
	}
	for _, field := range []string{
		shipping.FullName,
		shipping.Address,
		shipping.City,
		shipping.PostalCode,
		shipping.Country,
	} {
		if strings.TrimSpace(field) == "" {
			return ErrIncompleteShipping
		}
	}
	return nil
}

// buildSubmission freezes the cart snapshot into a write-once payload.
// Totals are recomputed from the same snapshot so they can never drift
// from the submitted lines.
func buildSubmission(lines []domain.CartLine, shipping domain.ShippingAddress) domain.OrderSubmission {
	items := make([]domain.OrderItem, 0, len(lines))
	var totalUSD, totalINR float64
	for _, line := range lines {
		items = append(items, domain.OrderItem{
			Product:  line.Product.ID,
			Name:     line.Product.Name,
			Qty:      line.Quantity,
			PriceUSD: line.Product.PriceUSD,
			PriceINR: line.Product.PriceINR,
			Image:    line.Product.Image,
		})
		totalUSD += pricing.LineAmount(line, domain.CurrencyUSD)
		totalINR += pricing.LineAmount(line, domain.CurrencyINR)
	}
	return domain.OrderSubmission{
		OrderItems:      items,
		ShippingAddress: shipping,
		PaymentMethod:   PaymentMethod,
		ItemsPriceUSD:   totalUSD,
		ItemsPriceINR:   totalINR,
		TotalPriceUSD:   totalUSD,
		TotalPriceINR:   totalINR,
	}
}

// Status returns the current attempt status and its user-facing
// message.
func (o *Orchestrator) Status() (Status, string) {
	o.statusMu.Lock()
	defer o.statusMu.Unlock()
	return o.status, o.message
}

func (o *Orchestrator) setStatus(s Status, message string) {
	o.statusMu.Lock()
	o.status = s
	o.message = message
	o.statusMu.Unlock()
}
