// Package display formats weather reports for a chosen unit system.
package display

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/katiamach/weathercast/internal/model"
	"github.com/katiamach/weathercast/internal/units"
)

const iconURLFormat = "https://openweathermap.org/img/wn/%s@2x.png"

// Render formats the report for the given unit system. The report is not modified.
func Render(r *model.WeatherReport, u model.UnitSystem) *model.Display {
	if r == nil {
		return nil
	}

	temp := func(c float64) string { return decimal(c) + "°C" }
	speed := decimal(r.WindSpeed) + " m/s"
	visibility := decimal(units.MetersToKilometers(float64(r.Visibility))) + " km"

	if u == model.Imperial {
		temp = func(c float64) string { return decimal(units.CelsiusToFahrenheit(c)) + "°F" }
		speed = decimal(units.MetersPerSecondToMph(r.WindSpeed)) + " mph"
		visibility = decimal(units.MetersToMiles(float64(r.Visibility))) + " mi"
	}

	return &model.Display{
		Location:    fmt.Sprintf("%s, %s", r.City, r.Country),
		Temperature: temp(r.Temperature),
		FeelsLike:   temp(r.FeelsLike),
		TempMin:     temp(r.TempMin),
		TempMax:     temp(r.TempMax),
		Condition:   Capitalize(r.Condition),
		Humidity:    strconv.Itoa(r.Humidity) + "%",
		Wind:        fmt.Sprintf("%s, %d°", speed, r.WindDeg),
		Pressure:    strconv.Itoa(r.Pressure) + " hPa",
		Visibility:  visibility,
		Cloudiness:  strconv.Itoa(r.Cloudiness) + "%",
		Sunrise:     LocalClock(r.Sunrise, r.Timezone),
		Sunset:      LocalClock(r.Sunset, r.Timezone),
		IconURL:     IconURL(r.Icon),
	}
}

// Capitalize upper-cases the first letter and lower-cases the rest.
func Capitalize(s string) string {
	if s == "" {
		return s
	}

	// casers are stateful, so a fresh pair per call
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

// LocalClock formats a Unix timestamp as HH:MM at the given UTC offset.
func LocalClock(unix int64, offset int) string {
	zone := time.FixedZone("", offset)
	return time.Unix(unix, 0).In(zone).Format("15:04")
}

// IconURL returns the provider image for an icon identifier.
func IconURL(icon string) string {
	if icon == "" {
		return ""
	}
	return fmt.Sprintf(iconURLFormat, icon)
}

func decimal(v float64) string {
	v = units.Round(v, 1)
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
