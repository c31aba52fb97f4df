package carpark_test

import (
	"testing"

	"github.com/katalvlaran/drills/carpark"
	"github.com/stretchr/testify/assert"
)

func demoPark() *carpark.CarPark {
	return &carpark.CarPark{Cars: []carpark.Car{
		{NumberPlate: "RG54 1PQ", Age: 0, Colour: carpark.Black},
		{NumberPlate: "RG54 3PQ", Age: 0, Colour: carpark.Blue},
		{NumberPlate: "RG54 2PQ", Age: 0, Colour: carpark.Green},
		{NumberPlate: "RG54 4PQ", Age: 10, Colour: carpark.Silver},
	}}
}

func TestFilterOld(t *testing.T) {
	lot := demoPark()
	assert.Equal(t, 4, lot.Count())

	lot.FilterOld(5)
	assert.Equal(t, 3, lot.Count())
	plates := make([]string, 0, lot.Count())
	for _, c := range lot.Cars {
		plates = append(plates, c.NumberPlate)
	}
	assert.Equal(t, []string{"RG54 1PQ", "RG54 3PQ", "RG54 2PQ"}, plates)

	lot.FilterOld(0)
	assert.Equal(t, 0, lot.Count())
}

func TestFilterOld_EmptyAndPark(t *testing.T) {
	var lot carpark.CarPark
	lot.FilterOld(3)
	assert.Equal(t, 0, lot.Count())

	lot.Park(carpark.Car{NumberPlate: "AB12 CDE", Age: 2, Colour: carpark.Red})
	lot.FilterOld(3)
	assert.Equal(t, 1, lot.Count())
}

func TestStrings(t *testing.T) {
	c := carpark.Car{NumberPlate: "RG54 4PQ", Age: 10, Colour: carpark.Silver}
	assert.Equal(t, "RG54 4PQ (Silver, 10 years)", c.String())
	assert.Equal(t, "Colour(7)", carpark.Colour(7).String())
}
