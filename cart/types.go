// SPDX-License-Identifier: MIT

package cart

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Category groups products.
type Category int

const (
	Electronics Category = iota
	Clothing
	Groceries
)

func (c Category) String() string {
	switch c {
	case Electronics:
		return "electronics"
	case Clothing:
		return "clothing"
	case Groceries:
		return "groceries"
	}

	return fmt.Sprintf("Category(%d)", int(c))
}

// Product is something that can be bought. Products compare by value.
type Product struct {
	Name     string
	Price    float64
	Category Category
}

// Customer pays for orders out of Balance.
type Customer struct {
	Name    string
	Email   string
	Balance float64
}

// Cart is an ordered list of products. The zero value is empty and usable.
type Cart struct {
	products []Product
}

// Add appends p.
func (c *Cart) Add(p ...Product) { c.products = append(c.products, p...) }

// Len returns the number of products.
func (c *Cart) Len() int { return len(c.products) }

// Products returns a copy of the cart's contents.
func (c *Cart) Products() []Product {
	return append([]Product(nil), c.products...)
}

// Total is the undiscounted sum of prices.
func (c *Cart) Total() float64 {
	var sum float64
	for _, p := range c.products {
		sum += p.Price
	}

	return sum
}

// String lists the cart one product per line.
func (c *Cart) String() string {
	var b strings.Builder
	b.WriteString("ShoppingCart")
	for _, p := range c.products {
		fmt.Fprintf(&b, "\n  - %s - £%.2f", p.Name, p.Price)
	}

	return b.String()
}

// Order is a completed checkout.
type Order struct {
	ID       uuid.UUID
	Customer *Customer
	Cart     *Cart
	Total    float64 // amount charged after discounts
}
