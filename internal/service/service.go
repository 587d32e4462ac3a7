package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/katiamach/weathercast/internal/display"
	"github.com/katiamach/weathercast/internal/logger"
	"github.com/katiamach/weathercast/internal/model"
	"github.com/katiamach/weathercast/internal/openweather"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go Fetcher,Archive

var (
	ErrEmptyCity       = openweather.ErrEmptyCity
	ErrArchiveDisabled = errors.New("report archive is not configured")
)

// Fetcher fetches current conditions for a city.
type Fetcher interface {
	Fetch(ctx context.Context, city string) (*model.WeatherReport, error)
}

// Archive records successful fetches.
type Archive interface {
	InsertReport(ctx context.Context, rec *model.ArchivedReport) error
	ListReports(ctx context.Context, city string, limit int) ([]*model.ArchivedReport, error)
}

// WeatherService keeps the state the user sees: the last successful report,
// the last error and the chosen unit system.
type WeatherService struct {
	fetcher Fetcher
	archive Archive
	now     func() time.Time

	// search serializes fetches; mu guards the fields below.
	search  sync.Mutex
	mu      sync.RWMutex
	units   model.UnitSystem
	last    *model.WeatherReport
	lastErr string
}

// New creates new WeatherService. archive may be nil.
func New(fetcher Fetcher, archive Archive, units model.UnitSystem) *WeatherService {
	return &WeatherService{
		fetcher: fetcher,
		archive: archive,
		now:     time.Now,
		units:   units,
	}
}

// Search fetches conditions for city and makes them the current report.
// A blank city returns the current view with ErrEmptyCity and changes nothing.
// On failure the current report is cleared and the error is kept for display.
func (ws *WeatherService) Search(ctx context.Context, city string) (*model.View, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return ws.View(), ErrEmptyCity
	}

	ws.search.Lock()
	defer ws.search.Unlock()

	report, err := ws.fetcher.Fetch(ctx, city)
	if err != nil {
		ws.mu.Lock()
		ws.last = nil
		ws.lastErr = display.Capitalize(err.Error())
		view := ws.viewLocked()
		ws.mu.Unlock()

		return view, err
	}

	ws.mu.Lock()
	ws.last = report
	ws.lastErr = ""
	view := ws.viewLocked()
	ws.mu.Unlock()

	ws.archiveReport(ctx, report)

	return view, nil
}

// ToggleUnits switches between metric and imperial and re-renders the
// current report without fetching.
func (ws *WeatherService) ToggleUnits() *model.View {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.units = ws.units.Toggle()
	return ws.viewLocked()
}

// SetUnits selects the unit system and re-renders the current report.
func (ws *WeatherService) SetUnits(u model.UnitSystem) *model.View {
	ws.mu.Lock()
	defer ws.mu.Unlock()

	ws.units = u
	return ws.viewLocked()
}

// View returns the current state.
func (ws *WeatherService) View() *model.View {
	ws.mu.RLock()
	defer ws.mu.RUnlock()

	return ws.viewLocked()
}

// History returns archived reports for city, newest first.
func (ws *WeatherService) History(ctx context.Context, city string, limit int) ([]*model.ArchivedReport, error) {
	if ws.archive == nil {
		return nil, ErrArchiveDisabled
	}

	reports, err := ws.archive.ListReports(ctx, strings.TrimSpace(city), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list archived reports: %w", err)
	}

	return reports, nil
}

func (ws *WeatherService) viewLocked() *model.View {
	return &model.View{
		Units:   ws.units,
		Report:  ws.last,
		Display: display.Render(ws.last, ws.units),
		Error:   ws.lastErr,
	}
}

func (ws *WeatherService) archiveReport(ctx context.Context, report *model.WeatherReport) {
	if ws.archive == nil {
		return
	}

	rec := &model.ArchivedReport{
		FetchedAt: ws.now().UTC(),
		Report:    report,
	}

	if err := ws.archive.InsertReport(ctx, rec); err != nil {
		logger.ErrorWithFields(fmt.Errorf("failed to archive report: %w", err), map[string]interface{}{"city": report.City})
	}
}
