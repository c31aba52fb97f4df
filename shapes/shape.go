// SPDX-License-Identifier: MIT

package shapes

import (
	"fmt"
	"math"
)

// Shape is a plane figure with an area.
type Shape interface {
	Area() float64
	String() string
	sealed()
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	Height int
	Width  int
}

// Circle is a circle of integer radius.
type Circle struct {
	Radius int
}

// UnknownPolygon stands for a shape whose area is not known; it reports 0.
type UnknownPolygon struct{}

// Area returns Height × Width.
func (r Rectangle) Area() float64 { return float64(r.Height) * float64(r.Width) }

func (r Rectangle) String() string {
	return fmt.Sprintf("Rectangle{height: %d, width: %d}", r.Height, r.Width)
}

// Area returns π·r².
func (c Circle) Area() float64 {
	rr := float64(c.Radius)

	return math.Pi * rr * rr
}

func (c Circle) String() string { return fmt.Sprintf("Circle(%d)", c.Radius) }

// Area is always 0 for an unknown polygon.
func (UnknownPolygon) Area() float64 { return 0 }

func (UnknownPolygon) String() string { return "UnknownPolygon" }

func (Rectangle) sealed()      {}
func (Circle) sealed()         {}
func (UnknownPolygon) sealed() {}

// RadiusOf returns the radius when s is a Circle.
func RadiusOf(s Shape) (int, bool) {
	if c, ok := s.(Circle); ok {
		return c.Radius, true
	}

	return 0, false
}
