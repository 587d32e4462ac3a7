package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/katiamach/weathercast/internal/config"
	"github.com/katiamach/weathercast/internal/logger"
	"github.com/katiamach/weathercast/internal/model"
	"github.com/katiamach/weathercast/internal/openweather"
	"github.com/katiamach/weathercast/internal/repository"
	"github.com/katiamach/weathercast/internal/service"
	"github.com/katiamach/weathercast/internal/transport/rest/handler"
)

// RunAPI runs weathercast API.
func RunAPI(cfg *config.Config) error {
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	units, err := model.ParseUnitSystem(cfg.Units)
	if err != nil {
		return fmt.Errorf("invalid UNITS setting: %w", err)
	}

	if cfg.APIKey == "" {
		logger.Warn("OPENWEATHER_API_KEY is empty, provider requests will be rejected")
	}

	client := openweather.New(
		openweather.WithAPIKey(cfg.APIKey),
		openweather.WithBaseURL(cfg.ProviderURL),
	)

	var archive service.Archive
	if cfg.ArchiveEnabled() {
		repo, err := repository.New(context.Background(), cfg.DBConnString, cfg.DBName)
		if err != nil {
			return fmt.Errorf("failed to create repository: %w", err)
		}
		defer func() {
			if err := repo.Close(); err != nil {
				logger.Error(err)
			}
		}()

		archive = repo
		logger.Info(fmt.Sprintf("Archiving reports to database %s", cfg.DBName))
	}

	ws := service.New(client, archive, units)
	server := handler.NewWeatherServer(ws)

	logger.Info(fmt.Sprintf("Starting weathercast api at port %s", cfg.Port))

	var h http.Handler = NewRouter(server)
	if cfg.Origin != "" {
		h = handlers.CORS(setupCorsOptions(cfg.Origin)...)(h)
	}

	return http.ListenAndServe(":"+cfg.Port, h)
}

// NewRouter registers weathercast routes.
func NewRouter(server *handler.WeatherServer) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/weather", server.SearchHandler).Methods("GET", "POST")
	r.HandleFunc("/view", server.ViewHandler).Methods("GET")
	r.HandleFunc("/units/toggle", server.ToggleUnitsHandler).Methods("POST")
	r.HandleFunc("/units", server.SetUnitsHandler).Methods("PUT")
	r.HandleFunc("/history", server.HistoryHandler).Methods("GET")

	r.HandleFunc("/", server.PageHandler).Methods("GET")
	r.HandleFunc("/ui/search", server.UISearchHandler).Methods("POST")
	r.HandleFunc("/ui/toggle", server.UIToggleHandler).Methods("POST")

	return r
}
