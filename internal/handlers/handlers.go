package handlers

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"dconn.dev/portfolio/internal/middleware"
	"dconn.dev/portfolio/internal/services"
	"dconn.dev/portfolio/internal/views"
)

// Dependencies are built once at startup and shared by every request
type Dependencies struct {
	Projects    *services.ProjectService
	Contact     *services.ContactService
	Logger      *zap.Logger
	StaticDir   string
	ResumeBotID string
}

// SetupRoutes configures all routes and returns the router
func SetupRoutes(deps Dependencies) http.Handler {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	images := availableImages(deps.StaticDir, logger)
	pageHandler := NewPageHandler(deps.Projects, logger, deps.ResumeBotID, images)
	contactHandler := NewContactHandler(deps.Contact, logger)
	projectHandler := NewProjectHandler(deps.Projects, logger)

	r := chi.NewRouter()

	// Middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger, pageHandler.InternalError))
	r.Use(chimw.GetHead)

	r.NotFound(pageHandler.NotFound)
	r.MethodNotAllowed(pageHandler.MethodNotAllowed)

	// Pages
	r.Get("/", pageHandler.Home)
	r.Get("/about", pageHandler.About)
	r.Get("/projects", pageHandler.Projects)
	r.Get("/contact", pageHandler.Contact)
	r.Post("/contact", contactHandler.Submit)
	r.Get("/app/{id}", pageHandler.App)
	r.Get("/resume-bot", pageHandler.ResumeBot)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	if deps.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(deps.StaticDir))
		r.Handle("/static/*", http.StripPrefix("/static", fileServer))
	}

	return r
}

// renderPage renders body inside the layout. The page is buffered by
// templ.Handler, so a failing view falls back to the plain status text.
func renderPage(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, page views.Page, body templ.Component) {
	templ.Handler(views.Layout(page, body),
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			logger.Error("render page",
				zap.String("path", r.URL.Path),
				zap.String("request_id", chimw.GetReqID(r.Context())),
				zap.Error(err),
			)
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, http.StatusText(status), status)
			})
		}),
	).ServeHTTP(w, r)
}

// availableImages lists the files under <staticDir>/images once at startup
func availableImages(staticDir string, logger *zap.Logger) views.ImageSet {
	images := views.ImageSet{}
	if staticDir == "" {
		return images
	}
	dir := filepath.Join(staticDir, "images")
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Warn("project images unavailable", zap.String("dir", dir), zap.Error(err))
		return images
	}
	for _, e := range entries {
		if e.Type().IsRegular() {
			images[e.Name()] = true
		}
	}
	return images
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, logger *zap.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("encode json", zap.Error(err))
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, logger *zap.Logger, status int, message string) {
	respondJSON(w, logger, status, map[string]string{"error": message})
}
