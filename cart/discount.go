// SPDX-License-Identifier: MIT

package cart

// Applied describes a discount that took effect.
type Applied struct {
	Description string
	Amount      float64
}

// Discount inspects a cart and reports the discount it grants, if any.
type Discount func(c *Cart) (Applied, bool)

// tenPercentRate is the TenPercent discount fraction.
const tenPercentRate = 0.1

// TenPercent grants 10% off the undiscounted total.
func TenPercent(c *Cart) (Applied, bool) {
	return Applied{Description: "10% discount", Amount: c.Total() * tenPercentRate}, true
}

// BuyOneGetOneFree makes every second unit of p free.
func BuyOneGetOneFree(p Product) Discount {
	return func(c *Cart) (Applied, bool) {
		n := 0
		for _, q := range c.products {
			if q == p {
				n++
			}
		}
		amount := float64(n/2) * p.Price
		if amount <= 0 {
			return Applied{}, false
		}

		return Applied{Description: "Buy one get one free " + p.Name, Amount: amount}, true
	}
}
