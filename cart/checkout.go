// SPDX-License-Identifier: MIT

package cart

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type checkoutConfig struct {
	logger *zap.Logger
	newID  func() uuid.UUID
}

// Option customises Checkout.
type Option func(*checkoutConfig)

// WithLogger routes checkout logs to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("cart: WithLogger(nil)")
	}

	return func(c *checkoutConfig) { c.logger = l }
}

// WithIDFunc overrides order ID generation. Panics on nil.
func WithIDFunc(fn func() uuid.UUID) Option {
	if fn == nil {
		panic("cart: WithIDFunc(nil)")
	}

	return func(c *checkoutConfig) { c.newID = fn }
}

// Checkout charges customer for cart after applying discounts in order.
//
// Stage 1: validate inputs.
// Stage 2: apply each discount, clamping the running total at zero.
// Stage 3: reject if the balance cannot cover the undiscounted total.
// Stage 4: debit the balance and issue the order.
//
// The customer's balance is only modified on success.
func Checkout(customer *Customer, c *Cart, discounts []Discount, opts ...Option) (*Order, error) {
	cfg := checkoutConfig{logger: zap.NewNop(), newID: uuid.New}
	for _, opt := range opts {
		opt(&cfg)
	}
	log := cfg.logger

	if customer == nil {
		return nil, ErrNilCustomer
	}
	if c == nil {
		return nil, ErrNilCart
	}

	undiscounted := c.Total()
	total := undiscounted
	log.Info("price before discount", zap.String("customer", customer.Name), zap.Float64("total", undiscounted))
	for _, d := range discounts {
		applied, ok := d(c)
		if !ok {
			continue
		}
		log.Info("applying discount",
			zap.String("description", applied.Description),
			zap.Float64("amount", applied.Amount))
		total = max(0, total-applied.Amount)
	}
	log.Info("price after discount", zap.Float64("total", total))

	// the balance must cover the full price even when discounts apply
	if customer.Balance < undiscounted {
		log.Info("insufficient balance",
			zap.Float64("balance", customer.Balance),
			zap.Float64("total", undiscounted))

		return nil, fmt.Errorf("%w: %.2f < %.2f", ErrInsufficientBalance, customer.Balance, undiscounted)
	}

	customer.Balance -= total
	order := &Order{ID: cfg.newID(), Customer: customer, Cart: c, Total: total}
	log.Info("order created",
		zap.String("customer", customer.Name),
		zap.Stringer("order_id", order.ID),
		zap.Float64("charged", total))

	return order, nil
}
