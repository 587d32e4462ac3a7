// Package units converts between metric and imperial measurements.
// Conversions never round; rounding is left to display code.
package units

import "strconv"

const (
	mphPerMeterPerSecond = 2.23694
	metersPerMile        = 1609.344
)

// CelsiusToFahrenheit converts °C to °F.
func CelsiusToFahrenheit(c float64) float64 {
	return c*9/5 + 32
}

// FahrenheitToCelsius converts °F to °C.
func FahrenheitToCelsius(f float64) float64 {
	return (f - 32) * 5 / 9
}

// MetersPerSecondToMph converts m/s to miles per hour.
func MetersPerSecondToMph(mps float64) float64 {
	return mps * mphPerMeterPerSecond
}

// MphToMetersPerSecond converts miles per hour to m/s.
func MphToMetersPerSecond(mph float64) float64 {
	return mph / mphPerMeterPerSecond
}

// MetersToKilometers converts meters to kilometers.
func MetersToKilometers(m float64) float64 {
	return m / 1000
}

// MetersToMiles converts meters to statute miles.
func MetersToMiles(m float64) float64 {
	return m / metersPerMile
}

// Round rounds the exact binary value of v to the given number of decimal
// places. Exact ties go to the even digit, so 15.25 becomes 15.2 and 1.15,
// stored just below 1.15, becomes 1.1.
func Round(v float64, places int) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return r
}
