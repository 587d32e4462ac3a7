package openweather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/katiamach/weathercast/internal/model"
	"github.com/tj/assert"
)

const testAPIKey = "test-key"

const londonResponse = `{
	"coord": {"lon": -0.1257, "lat": 51.5085},
	"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
	"base": "stations",
	"main": {"temp": 15.37, "feels_like": 14.96, "temp_min": 13.84, "temp_max": 16.55, "pressure": 1012, "humidity": 72},
	"visibility": 10000,
	"wind": {"speed": 3.6, "deg": 250},
	"clouds": {"all": 40},
	"dt": 1697702400,
	"sys": {"type": 2, "id": 2075535, "country": "GB", "sunrise": 1697697000, "sunset": 1697734800},
	"timezone": 3600,
	"id": 2643743,
	"name": "London",
	"cod": 200
}`

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newStub(t *testing.T, status int, body string) (*httptest.Server, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func TestFetchSuccess(t *testing.T) {
	srv, calls := newStub(t, http.StatusOK, londonResponse)
	c := New(WithAPIKey(testAPIKey), WithBaseURL(srv.URL))

	report, err := c.Fetch(context.Background(), "London")
	assert.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(calls))

	expected := &model.WeatherReport{
		City:        "London",
		Country:     "GB",
		Temperature: 15.4,
		FeelsLike:   15,
		TempMin:     13.8,
		TempMax:     16.6,
		Condition:   "light rain",
		Icon:        "10d",
		Humidity:    72,
		Pressure:    1012,
		WindSpeed:   3.6,
		WindDeg:     250,
		Cloudiness:  40,
		Visibility:  10000,
		Sunrise:     1697697000,
		Sunset:      1697734800,
		Timezone:    3600,
	}
	assert.Equal(t, expected, report)
}

func TestFetchRoundsTemperatures(t *testing.T) {
	cases := []struct {
		temp     string
		expected float64
	}{
		{temp: "15.37", expected: 15.4},
		{temp: "15.25", expected: 15.2},
		{temp: "15.45", expected: 15.4},
		{temp: "-2.25", expected: -2.2},
		{temp: "1.15", expected: 1.1},
		{temp: "20.35", expected: 20.4},
	}

	for _, tc := range cases {
		t.Run(tc.temp, func(t *testing.T) {
			body := strings.Replace(londonResponse, `"temp": 15.37,`, `"temp": `+tc.temp+`,`, 1)
			srv, _ := newStub(t, http.StatusOK, body)
			c := New(WithAPIKey(testAPIKey), WithBaseURL(srv.URL))

			report, err := c.Fetch(context.Background(), "London")
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, report.Temperature)
		})
	}
}

func TestFetchRequestParams(t *testing.T) {
	var (
		method string
		query  map[string][]string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		query = r.URL.Query()
		_, _ = w.Write([]byte(londonResponse))
	}))
	defer srv.Close()

	c := New(WithAPIKey(testAPIKey), WithBaseURL(srv.URL))

	_, err := c.Fetch(context.Background(), "  São Paulo ")
	assert.NoError(t, err)

	assert.Equal(t, http.MethodGet, method)
	assert.Equal(t, []string{"São Paulo"}, query["q"])
	assert.Equal(t, []string{testAPIKey}, query["appid"])
	assert.Equal(t, []string{"metric"}, query["units"])
}

func TestFetchProviderError(t *testing.T) {
	cases := []struct {
		name         string
		status       int
		body         string
		expectedCode int
		expectedMsg  string
	}{
		{
			name:         "city not found, string code",
			status:       http.StatusNotFound,
			body:         `{"cod":"404","message":"city not found"}`,
			expectedCode: 404,
			expectedMsg:  "city not found",
		},
		{
			name:         "invalid key, numeric code",
			status:       http.StatusUnauthorized,
			body:         `{"cod":401, "message": "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info."}`,
			expectedCode: 401,
			expectedMsg:  "Invalid API key. Please see https://openweathermap.org/faq#error401 for more info.",
		},
		{
			name:         "success http status, failure code",
			status:       http.StatusOK,
			body:         `{"cod":"400","message":"Nothing to geocode"}`,
			expectedCode: 400,
			expectedMsg:  "Nothing to geocode",
		},
		{
			name:         "no message, known status",
			status:       http.StatusNotFound,
			body:         `{"cod":"404"}`,
			expectedCode: 404,
			expectedMsg:  "Not Found",
		},
		{
			name:         "no message, unknown status",
			status:       http.StatusOK,
			body:         `{}`,
			expectedCode: 0,
			expectedMsg:  "provider returned status 0",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newStub(t, tc.status, tc.body)
			c := New(WithAPIKey(testAPIKey), WithBaseURL(srv.URL))

			report, err := c.Fetch(context.Background(), "Nowhere")
			assert.Nil(t, report)
			assert.EqualError(t, err, tc.expectedMsg)

			var provErr *ProviderError
			assert.True(t, errors.As(err, &provErr))
			assert.Equal(t, tc.expectedCode, provErr.Code)
		})
	}
}

func TestFetchEmptyCity(t *testing.T) {
	srv, calls := newStub(t, http.StatusOK, londonResponse)
	c := New(WithAPIKey(testAPIKey), WithBaseURL(srv.URL))

	for _, city := range []string{"", "   ", "\t\n"} {
		report, err := c.Fetch(context.Background(), city)
		assert.Nil(t, report)
		assert.True(t, errors.Is(err, ErrEmptyCity))
	}

	assert.Equal(t, int32(0), atomic.LoadInt32(calls))
}

func TestFetchTransportError(t *testing.T) {
	errStub := errors.New("connection reset by peer")
	httpClient := &http.Client{
		Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
			return nil, errStub
		}),
	}
	c := New(WithAPIKey(testAPIKey), WithBaseURL(DefaultBaseURL), WithHTTPClient(httpClient))

	report, err := c.Fetch(context.Background(), "London")
	assert.Nil(t, report)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
	assert.True(t, errors.Is(err, errStub))
	assert.Equal(t, transportErr.Err.Error(), err.Error())
	assert.True(t, strings.HasSuffix(err.Error(), "connection reset by peer"))
	assert.False(t, strings.Contains(err.Error(), testAPIKey))
	assert.Contains(t, err.Error(), "appid=REDACTED")
}

func TestFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := New(WithAPIKey(testAPIKey), WithBaseURL(url))

	_, err := c.Fetch(context.Background(), "London")

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
	assert.NotEmpty(t, err.Error())
}

func TestFetchMalformedResponse(t *testing.T) {
	cases := []struct {
		name       string
		body       string
		incomplete bool
		errSubstr  string
	}{
		{
			name:      "not json",
			body:      `<html>Bad Gateway</html>`,
			errSubstr: "invalid character",
		},
		{
			name:       "missing main",
			body:       `{"cod":200,"name":"London","sys":{"country":"GB","sunrise":1,"sunset":2},"weather":[{"description":"x","icon":"01d"}]}`,
			incomplete: true,
			errSubstr:  "missing main",
		},
		{
			name:       "empty weather list",
			body:       strings.Replace(londonResponse, `[{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}]`, `[]`, 1),
			incomplete: true,
			errSubstr:  "missing weather",
		},
		{
			name:       "missing wind direction",
			body:       strings.Replace(londonResponse, `"wind": {"speed": 3.6, "deg": 250}`, `"wind": {"speed": 3.6}`, 1),
			incomplete: true,
			errSubstr:  "missing wind.deg",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newStub(t, http.StatusOK, tc.body)
			c := New(WithAPIKey(testAPIKey), WithBaseURL(srv.URL))

			report, err := c.Fetch(context.Background(), "London")
			assert.Nil(t, report)

			var transportErr *TransportError
			assert.True(t, errors.As(err, &transportErr))
			assert.Equal(t, tc.incomplete, errors.Is(err, ErrIncompleteResponse))
			assert.Contains(t, err.Error(), tc.errSubstr)
		})
	}
}

func TestRedactKeepsOtherErrors(t *testing.T) {
	err := errors.New("plain")
	assert.Equal(t, err, redact(err))
}
