// SPDX-License-Identifier: MIT

package shake

// Flavour is a milkshake flavour.
type Flavour int

const (
	Chocolate Flavour = iota
	Vanilla
	Strawberry
)

func (f Flavour) String() string {
	switch f {
	case Chocolate:
		return "chocolate"
	case Vanilla:
		return "vanilla"
	case Strawberry:
		return "strawberry"
	}

	return "unknown"
}

const (
	defaultVolume = 500 // ml
	defaultPrice  = 650 // pence
)

// Shake is a milkshake. Volume is in ml and price in pence.
type Shake struct {
	Flavour Flavour
	Volume  int
	price   int
}

func newShake(f Flavour) Shake {
	return Shake{Flavour: f, Volume: defaultVolume, price: defaultPrice}
}

// ChocolateShake returns a full chocolate shake at the standard price.
func ChocolateShake() Shake { return newShake(Chocolate) }

// Price returns the price in pence.
func (s Shake) Price() int { return s.price }

// Drink takes sips of the given size until the shake is empty and returns
// how many sips it took. The last sip may be smaller. A non-positive sip
// drinks nothing.
func (s *Shake) Drink(sip int) int {
	if sip <= 0 {
		return 0
	}
	glugs := 0
	for s.Volume > 0 {
		s.Volume = max(0, s.Volume-sip)
		glugs++
	}

	return glugs
}
