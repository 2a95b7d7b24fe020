// Package ui serves the interactive dashboard: indicator pages, correlation
// view, chart images and filtered-data export.
package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"oceandash/domain/indicator"
	"oceandash/internal"
	"oceandash/internal/errors"
	"oceandash/internal/loader"
)

//go:embed templates/* static/* about.md
var embeddedFiles embed.FS

// App is the dashboard web application.
type App struct {
	router    *chi.Mux
	registry  *indicator.Registry
	cache     *loader.Cache
	templates *template.Template
	about     template.HTML
	logger    *internal.Logger
	port      string
}

// Config holds UI application configuration
type Config struct {
	Port    string
	DataDir string
}

// NewApp wires the registry, the load cache and the HTTP routes.
func NewApp(config Config) (*App, error) {
	registry := indicator.NewRegistry()
	cache := loader.NewCache(loader.New(registry, config.DataDir))

	funcMap := template.FuncMap{
		"fmt2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
		"fmt3": func(v float64) string { return fmt.Sprintf("%.3f", v) },
		"pct1": func(v float64) string { return fmt.Sprintf("%.1f%%", v) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	about, err := renderAboutHTML()
	if err != nil {
		return nil, err
	}

	app := &App{
		router:    chi.NewRouter(),
		registry:  registry,
		cache:     cache,
		templates: templates,
		about:     about,
		logger:    internal.NewDefaultLogger(),
		port:      config.Port,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Pages
	a.router.Get("/", a.handleDashboard)
	a.router.Get("/correlation", a.handleCorrelation)
	a.router.Get("/about", a.handleAbout)

	// Chart images
	a.router.Get("/charts/trend", a.handleTrendChart)
	a.router.Get("/charts/ranking", a.handleRankingChart)
	a.router.Get("/charts/progress", a.handleProgressChart)
	a.router.Get("/charts/scatter", a.handleScatterChart)

	// Export
	a.router.Get("/export", a.handleExportCSV)
	a.router.Get("/export.xlsx", a.handleExportXLSX)
}

// Handler exposes the router, mainly for tests.
func (a *App) Handler() http.Handler {
	return a.router
}

// Start starts the HTTP server
func (a *App) Start() error {
	addr := ":" + a.port
	a.logger.Info("starting oceandash UI server on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// renderTemplate writes one named page template.
func (a *App) renderTemplate(w http.ResponseWriter, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := a.templates.ExecuteTemplate(w, templateName, data); err != nil {
		a.logger.Error("template %s: %v", templateName, err)
		http.Error(w, "Template error", http.StatusInternalServerError)
	}
}

// httpStatus maps typed load failures to status codes. Failures only affect
// the view that triggered them; the process keeps serving.
func httpStatus(err error) int {
	switch errors.GetCode(err) {
	case errors.CodeUnknownIndicator, errors.CodeDataSourceMissing:
		return http.StatusNotFound
	case errors.CodeMalformedInput, errors.CodeSchemaMismatch:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// renderError shows a failure as a user-facing page.
func (a *App) renderError(w http.ResponseWriter, err error) {
	a.logger.Error("request failed: %v", err)
	w.WriteHeader(httpStatus(err))
	a.renderTemplate(w, "error.html", map[string]string{
		"Code":    errors.GetCode(err),
		"Message": err.Error(),
	})
}

// failPlain reports a failure on non-page endpoints (charts, export).
func (a *App) failPlain(w http.ResponseWriter, err error) {
	a.logger.Error("request failed: %v", err)
	http.Error(w, err.Error(), httpStatus(err))
}
