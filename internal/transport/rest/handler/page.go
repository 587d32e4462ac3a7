package handler

import (
	"errors"
	"fmt"
	"net/http"

	"golang.org/x/net/html"

	"github.com/katiamach/weathercast/internal/logger"
	"github.com/katiamach/weathercast/internal/model"
	"github.com/katiamach/weathercast/internal/service"
)

const pageTitle = "weathercast"

// PageHandler renders the current view as an HTML page.
func (s *WeatherServer) PageHandler(w http.ResponseWriter, r *http.Request) {
	doc := renderPage(s.service.View())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := html.Render(w, doc); err != nil {
		logger.Error(fmt.Errorf("failed to render page: %w", err))
	}
}

// UISearchHandler handles the page search form and redirects back to the page.
func (s *WeatherServer) UISearchHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	// failures are shown on the page
	_, err := s.service.Search(r.Context(), r.FormValue("city"))
	if err != nil && !errors.Is(err, service.ErrEmptyCity) {
		logger.Warn(fmt.Sprintf("search from page failed: %v", err))
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UIToggleHandler toggles units from the page and redirects back to it.
func (s *WeatherServer) UIToggleHandler(w http.ResponseWriter, r *http.Request) {
	s.service.ToggleUnits()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func renderPage(view *model.View) *html.Node {
	body := element("body", nil,
		element("h1", nil, text(pageTitle)),
		element("form", attrs("method", "post", "action", "/ui/search"),
			element("input", attrs("type", "text", "name", "city", "placeholder", "Enter city name")),
			element("button", attrs("type", "submit"), text("Search")),
		),
		element("form", attrs("method", "post", "action", "/ui/toggle"),
			element("button", attrs("type", "submit"), text(toggleLabel(view.Units))),
		),
	)

	if view.Error != "" {
		body.AppendChild(element("p", attrs("class", "error"), text(view.Error)))
	}

	if d := view.Display; d != nil {
		weather := element("div", attrs("class", "weather"),
			element("h2", attrs("class", "city"), text(d.Location)),
		)
		if d.IconURL != "" {
			weather.AppendChild(element("img", attrs("src", d.IconURL, "alt", d.Condition)))
		}
		weather.AppendChild(element("p", attrs("class", "temperature"), text(d.Temperature)))
		weather.AppendChild(element("p", attrs("class", "condition"), text(d.Condition)))
		weather.AppendChild(element("p", attrs("class", "details"),
			text(fmt.Sprintf("Feels like: %s  |  Min: %s  |  Max: %s", d.FeelsLike, d.TempMin, d.TempMax)),
			element("br", nil),
			text(fmt.Sprintf("Humidity: %s  |  Wind: %s", d.Humidity, d.Wind)),
			element("br", nil),
			text(fmt.Sprintf("Pressure: %s  |  Visibility: %s", d.Pressure, d.Visibility)),
			element("br", nil),
			text(fmt.Sprintf("Clouds: %s  |  Sunrise: %s  |  Sunset: %s", d.Cloudiness, d.Sunrise, d.Sunset)),
		))
		body.AppendChild(weather)
	}

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element("html", attrs("lang", "en"),
		element("head", nil,
			element("meta", attrs("charset", "utf-8")),
			element("title", nil, text(pageTitle)),
		),
		body,
	))

	return doc
}

func toggleLabel(u model.UnitSystem) string {
	if u == model.Imperial {
		return "Show metric"
	}
	return "Show imperial"
}

func element(tag string, attr []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag, Attr: attr}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// attrs builds attributes from key, value pairs.
func attrs(kv ...string) []html.Attribute {
	out := make([]html.Attribute, 0, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		out = append(out, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return out
}
