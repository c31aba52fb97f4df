// SPDX-License-Identifier: MIT

// Package cart is a small shopping-cart checkout.
//
// A Cart collects Products. Checkout applies a list of Discount strategies
// in order, clamps the total at zero, debits the Customer's balance and
// returns an Order with a fresh UUID. Every step is logged at info level
// through the *zap.Logger supplied with WithLogger (a no-op logger by
// default).
//
//	order, err := cart.Checkout(alice, c, []cart.Discount{cart.TenPercent},
//		cart.WithLogger(logger))
//	if errors.Is(err, cart.ErrInsufficientBalance) { ... }
package cart
