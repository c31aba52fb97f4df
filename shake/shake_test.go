package shake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChocolateShake(t *testing.T) {
	s := ChocolateShake()
	assert.Equal(t, Chocolate, s.Flavour)
	assert.Equal(t, 500, s.Volume)
	assert.Equal(t, 650, s.Price())
	assert.Equal(t, "chocolate", s.Flavour.String())
}

func TestDrink(t *testing.T) {
	s := ChocolateShake()
	assert.Equal(t, 5, s.Drink(100))
	assert.Equal(t, 0, s.Volume)
	assert.Equal(t, 0, s.Drink(100), "an empty shake takes no sips")

	s = ChocolateShake()
	assert.Equal(t, 3, s.Drink(200), "last sip is partial")

	s = ChocolateShake()
	assert.Equal(t, 0, s.Drink(0))
	assert.Equal(t, 500, s.Volume)
}

// TestPriceIsPackagePrivate documents that only this package can change price.
func TestPriceIsPackagePrivate(t *testing.T) {
	s := newShake(Strawberry)
	s.price = 350
	assert.Equal(t, 350, s.Price())
	assert.Equal(t, "unknown", Flavour(9).String())
}
