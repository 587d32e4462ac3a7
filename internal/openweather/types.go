package openweather

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// statusCode is the "cod" field. The provider sends it as a number on
// success and as a string on most failures.
type statusCode int

func (c *statusCode) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*c = 0
		return nil
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid status code %s: %w", data, err)
	}

	*c = statusCode(n)
	return nil
}

type conditions struct {
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type mainInfo struct {
	Temp      *float64 `json:"temp"`
	FeelsLike *float64 `json:"feels_like"`
	TempMin   *float64 `json:"temp_min"`
	TempMax   *float64 `json:"temp_max"`
	Humidity  *int     `json:"humidity"`
	Pressure  *int     `json:"pressure"`
}

type wind struct {
	Speed *float64 `json:"speed"`
	Deg   *int     `json:"deg"`
}

type clouds struct {
	All *int `json:"all"`
}

type sys struct {
	Country *string `json:"country"`
	Sunrise *int64  `json:"sunrise"`
	Sunset  *int64  `json:"sunset"`
}

// currentWeatherResponse is the current weather endpoint payload.
// Pointer fields distinguish a missing key from a zero value.
type currentWeatherResponse struct {
	Cod        statusCode      `json:"cod"`
	Message    json.RawMessage `json:"message"`
	Name       *string         `json:"name"`
	Sys        *sys            `json:"sys"`
	Main       *mainInfo       `json:"main"`
	Weather    []conditions    `json:"weather"`
	Wind       *wind           `json:"wind"`
	Clouds     *clouds         `json:"clouds"`
	Visibility *int            `json:"visibility"`
	Timezone   *int            `json:"timezone"`
}

// message returns the provider message as plain text. It is usually a
// string but some endpoints send a number.
func (r *currentWeatherResponse) message() string {
	var s string
	if err := json.Unmarshal(r.Message, &s); err == nil {
		return s
	}
	return string(r.Message)
}
