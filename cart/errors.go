// SPDX-License-Identifier: MIT

package cart

import "errors"

var (
	// ErrInsufficientBalance indicates the customer cannot pay the discounted total.
	ErrInsufficientBalance = errors.New("cart: insufficient balance")

	// ErrNilCustomer indicates Checkout was called without a customer.
	ErrNilCustomer = errors.New("cart: nil customer")

	// ErrNilCart indicates Checkout was called without a cart.
	ErrNilCart = errors.New("cart: nil cart")
)
