// SPDX-License-Identifier: MIT

package carpark

import "fmt"

// Colour is a car's paint colour.
type Colour int

const (
	Red Colour = iota
	Green
	Blue
	Black
	Silver
)

var colourNames = [...]string{"Red", "Green", "Blue", "Black", "Silver"}

func (c Colour) String() string {
	if c < Red || c > Silver {
		return fmt.Sprintf("Colour(%d)", int(c))
	}

	return colourNames[c]
}

// Car is a single vehicle.
type Car struct {
	NumberPlate string
	Age         int
	Colour      Colour
}

func (c Car) String() string {
	return fmt.Sprintf("%s (%s, %d years)", c.NumberPlate, c.Colour, c.Age)
}

// CarPark holds parked cars in arrival order.
type CarPark struct {
	Cars []Car
}

// Park adds c at the end.
func (p *CarPark) Park(c Car) { p.Cars = append(p.Cars, c) }

// Count returns the number of parked cars.
func (p *CarPark) Count() int { return len(p.Cars) }

// FilterOld keeps only cars younger than maxAge. Order is preserved and the
// backing array is reused; removed slots are zeroed.
func (p *CarPark) FilterOld(maxAge int) {
	kept := p.Cars[:0]
	for _, c := range p.Cars {
		if c.Age < maxAge {
			kept = append(kept, c)
		}
	}
	clear(p.Cars[len(kept):])
	p.Cars = kept
}
