// SPDX-License-Identifier: MIT

package shapes

import (
	"fmt"
	"strings"
)

// Bed is a standard mattress size.
type Bed int

const (
	Single Bed = iota
	// Queen is also sold as a small double.
	Queen
	Double
	King
	SuperKing
)

// Dimensions are a bed's width and length in centimetres.
type Dimensions struct {
	Width  int
	Length int
}

// Area returns Width × Length in cm².
func (d Dimensions) Area() int { return d.Width * d.Length }

var bedSizes = [...]Dimensions{
	Single:    {Width: 90, Length: 190},
	Queen:     {Width: 120, Length: 190},
	Double:    {Width: 135, Length: 190},
	King:      {Width: 150, Length: 200},
	SuperKing: {Width: 180, Length: 200},
}

var bedNames = [...]string{
	Single:    "Single",
	Queen:     "Queen",
	Double:    "Double",
	King:      "King",
	SuperKing: "SuperKing",
}

func (b Bed) valid() bool { return b >= Single && b <= SuperKing }

// Size returns the bed's dimensions.
func (b Bed) Size() (Dimensions, error) {
	if !b.valid() {
		return Dimensions{}, fmt.Errorf("Size(%d): %w", int(b), ErrUnknownBed)
	}

	return bedSizes[b], nil
}

// Area returns the bed's area in cm².
func (b Bed) Area() (int, error) {
	d, err := b.Size()
	if err != nil {
		return 0, err
	}

	return d.Area(), nil
}

func (b Bed) String() string {
	if !b.valid() {
		return fmt.Sprintf("Bed(%d)", int(b))
	}

	return bedNames[b]
}

// ParseBed resolves a bed name case-insensitively; "super-king" and
// "super_king" are accepted for SuperKing.
func ParseBed(s string) (Bed, error) {
	key := strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.ToLower(s))
	for b, name := range bedNames {
		if strings.ToLower(name) == key {
			return Bed(b), nil
		}
	}

	return 0, fmt.Errorf("ParseBed(%q): %w", s, ErrUnknownBed)
}
