package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// WeatherReport is a normalized snapshot of current conditions for a city.
// Temperatures are in degrees Celsius, wind speed in m/s, visibility in meters.
type WeatherReport struct {
	City        string  `json:"city" bson:"city"`
	Country     string  `json:"country" bson:"country"`
	Temperature float64 `json:"temperature" bson:"temperature"`
	FeelsLike   float64 `json:"feels_like" bson:"feels_like"`
	TempMin     float64 `json:"temp_min" bson:"temp_min"`
	TempMax     float64 `json:"temp_max" bson:"temp_max"`
	Condition   string  `json:"condition" bson:"condition"`
	Icon        string  `json:"icon" bson:"icon"`
	Humidity    int     `json:"humidity" bson:"humidity"`
	Pressure    int     `json:"pressure" bson:"pressure"`
	WindSpeed   float64 `json:"wind_speed" bson:"wind_speed"`
	WindDeg     int     `json:"wind_deg" bson:"wind_deg"`
	Cloudiness  int     `json:"cloudiness" bson:"cloudiness"`
	Visibility  int     `json:"visibility" bson:"visibility"`
	Sunrise     int64   `json:"sunrise" bson:"sunrise"`
	Sunset      int64   `json:"sunset" bson:"sunset"`
	Timezone    int     `json:"timezone" bson:"timezone"`
}

// ArchivedReport is a report as recorded by the archive.
type ArchivedReport struct {
	ID        string         `json:"id,omitempty" bson:"_id,omitempty"`
	FetchedAt time.Time      `json:"fetched_at" bson:"fetched_at"`
	Report    *WeatherReport `json:"report" bson:"report"`
}

// UnitSystem selects how numbers are displayed. It never changes stored values.
type UnitSystem string

// Supported unit systems.
const (
	Metric   UnitSystem = "metric"
	Imperial UnitSystem = "imperial"
)

// ErrUnknownUnitSystem is returned for unsupported unit system names.
var ErrUnknownUnitSystem = errors.New("unknown unit system")

// ParseUnitSystem parses a unit system name. Empty input means metric.
func ParseUnitSystem(s string) (UnitSystem, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Metric):
		return Metric, nil
	case string(Imperial):
		return Imperial, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUnitSystem, s)
	}
}

// Toggle returns the other unit system.
func (u UnitSystem) Toggle() UnitSystem {
	if u == Imperial {
		return Metric
	}
	return Imperial
}

func (u UnitSystem) String() string {
	return string(u)
}

// Display contains report values formatted for a unit system.
type Display struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feels_like"`
	TempMin     string `json:"temp_min"`
	TempMax     string `json:"temp_max"`
	Condition   string `json:"condition"`
	Humidity    string `json:"humidity"`
	Wind        string `json:"wind"`
	Pressure    string `json:"pressure"`
	Visibility  string `json:"visibility"`
	Cloudiness  string `json:"cloudiness"`
	Sunrise     string `json:"sunrise"`
	Sunset      string `json:"sunset"`
	IconURL     string `json:"icon_url"`
}

// View is the state shown to the user after every interaction.
type View struct {
	Units   UnitSystem     `json:"units"`
	Report  *WeatherReport `json:"report,omitempty"`
	Display *Display       `json:"display,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// SearchRequest contains search request parameters.
type SearchRequest struct {
	City string `json:"city"`
}

// UnitsRequest contains unit change request parameters.
type UnitsRequest struct {
	Units string `json:"units"`
}
