package units

import (
	"testing"

	"github.com/tj/assert"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	cases := []struct {
		celsius    float64
		fahrenheit float64
	}{
		{celsius: 0, fahrenheit: 32},
		{celsius: 100, fahrenheit: 212},
		{celsius: -40, fahrenheit: -40},
		{celsius: 37, fahrenheit: 98.6},
	}

	for _, tc := range cases {
		assert.InDelta(t, tc.fahrenheit, CelsiusToFahrenheit(tc.celsius), 1e-9)
		assert.InDelta(t, tc.celsius, FahrenheitToCelsius(tc.fahrenheit), 1e-9)
	}
}

func TestMetersPerSecondToMph(t *testing.T) {
	assert.InDelta(t, 22.3694, MetersPerSecondToMph(10), 1e-3)
	assert.Equal(t, 0.0, MetersPerSecondToMph(0))
	assert.InDelta(t, 10, MphToMetersPerSecond(MetersPerSecondToMph(10)), 1e-9)
}

func TestVisibility(t *testing.T) {
	assert.Equal(t, 10.0, MetersToKilometers(10000))
	assert.InDelta(t, 6.2137, MetersToMiles(10000), 1e-4)
}

func TestRound(t *testing.T) {
	cases := []struct {
		value    float64
		places   int
		expected float64
	}{
		{value: 15.37, places: 1, expected: 15.4},
		{value: 15.34, places: 1, expected: 15.3},
		{value: -2.25, places: 1, expected: -2.2},
		{value: 15.25, places: 1, expected: 15.2},
		{value: 15.45, places: 1, expected: 15.4},
		{value: 1.15, places: 1, expected: 1.1},
		{value: 20.35, places: 1, expected: 20.4},
		{value: 2.5, places: 0, expected: 2},
		{value: 22.3694, places: 1, expected: 22.4},
		{value: 7, places: 0, expected: 7},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.expected, Round(tc.value, tc.places))
	}
}

func TestRoundTripWithinDisplayPrecision(t *testing.T) {
	for _, c := range []float64{-12.3, 0, 15.4, 36.6} {
		back := FahrenheitToCelsius(Round(CelsiusToFahrenheit(c), 1))
		assert.Equal(t, c, Round(back, 1))
	}
}
