// Package openweather fetches current conditions from the OpenWeather API.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/katiamach/weathercast/internal/logger"
	"github.com/katiamach/weathercast/internal/model"
	"github.com/katiamach/weathercast/internal/units"
)

const (
	// DefaultBaseURL is the current weather by city name endpoint.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

	successCode   = 200
	redactedValue = "REDACTED"
)

var (
	ErrEmptyCity          = errors.New("city name is empty")
	ErrIncompleteResponse = errors.New("incomplete provider response")
)

// ProviderError is returned when the provider answers with a non-success status.
// Its message is the provider's own text.
type ProviderError struct {
	Code    int
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// TransportError is returned when the request could not be completed or the
// response could not be decoded. Its message is the underlying error text,
// except that the appid value in a request URL is replaced with REDACTED.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// Client is an OpenWeather current weather client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// WithAPIKey sets the credential sent as the appid parameter.
func WithAPIKey(apiKey string) ClientOption {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithBaseURL overrides the endpoint URL.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// New creates new Client.
func New(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch returns current conditions for the given city.
// It returns ErrEmptyCity without issuing a request when city is blank,
// *ProviderError when the provider rejects the request and *TransportError
// for everything else.
func (c *Client) Fetch(ctx context.Context, city string) (*model.WeatherReport, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	resp, err := c.get(ctx, city)
	if err != nil {
		logger.ErrorWithFields(err, map[string]interface{}{"city": city})
		return nil, &TransportError{Err: err}
	}

	if resp.Cod != successCode {
		return nil, &ProviderError{Code: int(resp.Cod), Message: providerMessage(resp)}
	}

	report, err := toReport(resp)
	if err != nil {
		logger.ErrorWithFields(err, map[string]interface{}{"city": city})
		return nil, &TransportError{Err: err}
	}

	return report, nil
}

func (c *Client) get(ctx context.Context, city string) (*currentWeatherResponse, error) {
	reqURL, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, err
	}

	q := reqURL.Query()
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	reqURL.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, redact(err)
	}
	defer resp.Body.Close()

	var res currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return nil, err
	}

	return &res, nil
}

// redact hides the credential in URLs carried by transport errors.
func redact(err error) error {
	var urlErr *url.Error
	if !errors.As(err, &urlErr) {
		return err
	}

	u, parseErr := url.Parse(urlErr.URL)
	if parseErr != nil {
		return err
	}

	q := u.Query()
	if q.Get("appid") == "" {
		return err
	}
	q.Set("appid", redactedValue)
	u.RawQuery = q.Encode()

	return &url.Error{Op: urlErr.Op, URL: u.String(), Err: urlErr.Err}
}

func toReport(res *currentWeatherResponse) (*model.WeatherReport, error) {
	switch {
	case res.Name == nil:
		return nil, missing("name")
	case res.Sys == nil:
		return nil, missing("sys")
	case res.Sys.Country == nil:
		return nil, missing("sys.country")
	case res.Sys.Sunrise == nil:
		return nil, missing("sys.sunrise")
	case res.Sys.Sunset == nil:
		return nil, missing("sys.sunset")
	case res.Main == nil:
		return nil, missing("main")
	case res.Main.Temp == nil:
		return nil, missing("main.temp")
	case res.Main.FeelsLike == nil:
		return nil, missing("main.feels_like")
	case res.Main.TempMin == nil:
		return nil, missing("main.temp_min")
	case res.Main.TempMax == nil:
		return nil, missing("main.temp_max")
	case res.Main.Humidity == nil:
		return nil, missing("main.humidity")
	case res.Main.Pressure == nil:
		return nil, missing("main.pressure")
	case len(res.Weather) == 0:
		return nil, missing("weather")
	case res.Wind == nil:
		return nil, missing("wind")
	case res.Wind.Speed == nil:
		return nil, missing("wind.speed")
	case res.Wind.Deg == nil:
		return nil, missing("wind.deg")
	case res.Clouds == nil || res.Clouds.All == nil:
		return nil, missing("clouds.all")
	case res.Visibility == nil:
		return nil, missing("visibility")
	case res.Timezone == nil:
		return nil, missing("timezone")
	}

	return &model.WeatherReport{
		City:        *res.Name,
		Country:     *res.Sys.Country,
		Temperature: units.Round(*res.Main.Temp, 1),
		FeelsLike:   units.Round(*res.Main.FeelsLike, 1),
		TempMin:     units.Round(*res.Main.TempMin, 1),
		TempMax:     units.Round(*res.Main.TempMax, 1),
		Condition:   res.Weather[0].Description,
		Icon:        res.Weather[0].Icon,
		Humidity:    *res.Main.Humidity,
		Pressure:    *res.Main.Pressure,
		WindSpeed:   *res.Wind.Speed,
		WindDeg:     *res.Wind.Deg,
		Cloudiness:  *res.Clouds.All,
		Visibility:  *res.Visibility,
		Sunrise:     *res.Sys.Sunrise,
		Sunset:      *res.Sys.Sunset,
		Timezone:    *res.Timezone,
	}, nil
}

// providerMessage never returns an empty string, so a failure always has
// something to show.
func providerMessage(res *currentWeatherResponse) string {
	if msg := res.message(); msg != "" {
		return msg
	}
	if text := http.StatusText(int(res.Cod)); text != "" {
		return text
	}
	return fmt.Sprintf("provider returned status %d", int(res.Cod))
}

func missing(field string) error {
	return fmt.Errorf("%w: missing %s", ErrIncompleteResponse, field)
}
