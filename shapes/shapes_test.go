package shapes_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/drills/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShape_Area(t *testing.T) {
	cases := []struct {
		shape shapes.Shape
		want  float64
		str   string
	}{
		{shapes.Rectangle{Height: 10, Width: 10}, 100, "Rectangle{height: 10, width: 10}"},
		{shapes.Circle{Radius: 10}, 100 * math.Pi, "Circle(10)"},
		{shapes.UnknownPolygon{}, 0, "UnknownPolygon"},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, tc.shape.Area(), 1e-9, tc.str)
		assert.Equal(t, tc.str, tc.shape.String())
	}
}

func TestRadiusOf(t *testing.T) {
	r, ok := shapes.RadiusOf(shapes.Circle{Radius: 3})
	assert.True(t, ok)
	assert.Equal(t, 3, r)

	_, ok = shapes.RadiusOf(shapes.Rectangle{})
	assert.False(t, ok)
}

func TestBed_Sizes(t *testing.T) {
	cases := map[shapes.Bed]shapes.Dimensions{
		shapes.Single:    {Width: 90, Length: 190},
		shapes.Queen:     {Width: 120, Length: 190},
		shapes.Double:    {Width: 135, Length: 190},
		shapes.King:      {Width: 150, Length: 200},
		shapes.SuperKing: {Width: 180, Length: 200},
	}
	for bed, want := range cases {
		got, err := bed.Size()
		require.NoError(t, err, bed.String())
		assert.Equal(t, want, got)

		area, err := bed.Area()
		require.NoError(t, err)
		assert.Equal(t, want.Width*want.Length, area)
	}
}

func TestBed_Unknown(t *testing.T) {
	_, err := shapes.Bed(42).Size()
	assert.ErrorIs(t, err, shapes.ErrUnknownBed)
	_, err = shapes.Bed(-1).Area()
	assert.ErrorIs(t, err, shapes.ErrUnknownBed)
	assert.Equal(t, "Bed(42)", shapes.Bed(42).String())
}

func TestParseBed(t *testing.T) {
	for in, want := range map[string]shapes.Bed{
		"single":     shapes.Single,
		"QUEEN":      shapes.Queen,
		"super-king": shapes.SuperKing,
		"SuperKing":  shapes.SuperKing,
	} {
		got, err := shapes.ParseBed(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := shapes.ParseBed("hammock")
	assert.ErrorIs(t, err, shapes.ErrUnknownBed)
}

func TestDirectionAndCompare(t *testing.T) {
	assert.Equal(t, "North", shapes.North.String())
	assert.Equal(t, "West", shapes.West.String())
	assert.Equal(t, "Direction(9)", shapes.Direction(9).String())

	assert.Equal(t, shapes.Less, shapes.Compare(10, 11))
	assert.Equal(t, shapes.Equal, shapes.Compare(11, 11))
	assert.Equal(t, shapes.Greater, shapes.Compare(12, 11))
	assert.Equal(t, "Less", shapes.Compare(1, 2).String())
}
