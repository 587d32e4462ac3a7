package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/katiamach/weathercast/internal/logger"
	"github.com/katiamach/weathercast/internal/model"
	"github.com/katiamach/weathercast/internal/openweather"
	"github.com/katiamach/weathercast/internal/service"
)

//go:generate mockgen -source=handlers.go -destination=mock/mock.go WeatherService

var (
	errCityNotProvided = errors.New("city parameter not provided")
	errInvalidLimit    = errors.New("limit should be a positive number")
	errInvalidBody     = errors.New("invalid request body")
)

// WeatherService provides weather service methods.
type WeatherService interface {
	Search(ctx context.Context, city string) (*model.View, error)
	ToggleUnits() *model.View
	SetUnits(u model.UnitSystem) *model.View
	View() *model.View
	History(ctx context.Context, city string, limit int) ([]*model.ArchivedReport, error)
}

// WeatherServer is a server for weather search and display.
type WeatherServer struct {
	service WeatherService
}

// NewWeatherServer creates new WeatherServer.
func NewWeatherServer(service WeatherService) *WeatherServer {
	return &WeatherServer{service}
}

// SearchHandler handles Search request. The city comes from the query
// string on GET and from a JSON body otherwise.
func (s *WeatherServer) SearchHandler(w http.ResponseWriter, r *http.Request) {
	city, err := cityFromRequest(r)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	view, err := s.service.Search(r.Context(), city)
	if errors.Is(err, service.ErrEmptyCity) {
		respondErr(w, http.StatusBadRequest, errCityNotProvided)
		return
	}
	if err != nil {
		respond(w, searchErrStatus(err), view)
		return
	}

	respond(w, http.StatusOK, view)
}

// ViewHandler returns the current view.
func (s *WeatherServer) ViewHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.service.View())
}

// ToggleUnitsHandler switches between metric and imperial units.
func (s *WeatherServer) ToggleUnitsHandler(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, s.service.ToggleUnits())
}

// SetUnitsHandler selects a unit system.
func (s *WeatherServer) SetUnitsHandler(w http.ResponseWriter, r *http.Request) {
	var req model.UnitsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondErr(w, http.StatusBadRequest, errInvalidBody)
		return
	}

	u, err := model.ParseUnitSystem(req.Units)
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	respond(w, http.StatusOK, s.service.SetUnits(u))
}

// HistoryHandler handles History request.
func (s *WeatherServer) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	city, limit, err := validateHistoryParams(r.URL.Query())
	if err != nil {
		respondErr(w, http.StatusBadRequest, err)
		return
	}

	reports, err := s.service.History(r.Context(), city, limit)
	if errors.Is(err, service.ErrArchiveDisabled) {
		respondErr(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		logger.Error(fmt.Errorf("failed to get history: %v", err))
		respondErr(w, http.StatusInternalServerError, err)
		return
	}

	respond(w, http.StatusOK, reports)
}

func cityFromRequest(r *http.Request) (string, error) {
	if r.Method == http.MethodGet {
		return r.URL.Query().Get("city"), nil
	}

	var req model.SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return "", errInvalidBody
	}

	return req.City, nil
}

func validateHistoryParams(params url.Values) (string, int, error) {
	city := params.Get("city")

	limitStr := params.Get("limit")
	if limitStr == "" {
		return city, 0, nil
	}

	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		return "", 0, errInvalidLimit
	}

	return city, limit, nil
}

// searchErrStatus maps a failed search to a response status.
func searchErrStatus(err error) int {
	var provErr *openweather.ProviderError
	if errors.As(err, &provErr) {
		if provErr.Code >= 400 && provErr.Code <= 599 {
			return provErr.Code
		}
		return http.StatusBadGateway
	}

	var transportErr *openweather.TransportError
	if errors.As(err, &transportErr) {
		logger.Error(fmt.Errorf("failed to fetch weather: %v", err))
		return http.StatusBadGateway
	}

	logger.Error(fmt.Errorf("failed to search: %v", err))
	return http.StatusInternalServerError
}
