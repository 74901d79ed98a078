package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dconn.dev/portfolio/internal/services"
	"dconn.dev/portfolio/internal/views"
)

// PageHandler serves the HTML pages
type PageHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
	resumeBotID    string
	images         views.ImageSet
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(ps *services.ProjectService, logger *zap.Logger, resumeBotID string, images views.ImageSet) *PageHandler {
	return &PageHandler{projectService: ps, logger: logger, resumeBotID: resumeBotID, images: images}
}

// Home handles GET /
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	featured := h.projectService.FeaturedForHome(services.DefaultFeaturedCount)
	renderPage(w, r, h.logger, http.StatusOK, views.Page{Path: "/"}, views.Home(featured, h.images))
}

// About handles GET /about
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.logger, http.StatusOK, views.Page{Title: "About", Path: "/about"}, views.About())
}

// Projects handles GET /projects
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	page := h.projectService.ProjectsPage()
	renderPage(w, r, h.logger, http.StatusOK, views.Page{Title: "Projects", Path: "/projects"}, views.Projects(views.ProjectsView{
		Featured:      page.Featured,
		Projects:      page.Projects,
		Categories:    page.Categories,
		CategoryLabel: h.projectService.CategoryLabel,
		Images:        h.images,
	}))
}

// Contact handles GET /contact
func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.logger, http.StatusOK, views.Page{Title: "Contact", Path: "/contact"}, views.Contact())
}

// App handles GET /app/{id}
func (h *PageHandler) App(w http.ResponseWriter, r *http.Request) {
	h.renderApp(w, r, chi.URLParam(r, "id"), r.URL.Path)
}

// ResumeBot handles GET /resume-bot
func (h *PageHandler) ResumeBot(w http.ResponseWriter, r *http.Request) {
	h.renderApp(w, r, h.resumeBotID, "/resume-bot")
}

func (h *PageHandler) renderApp(w http.ResponseWriter, r *http.Request, id, path string) {
	project, err := h.projectService.EmbeddedApp(id)
	if err != nil {
		h.logger.Debug("app unavailable", zap.String("id", id))
		h.NotFound(w, r)
		return
	}
	renderPage(w, r, h.logger, http.StatusOK, views.Page{Title: project.Name, Path: path}, views.App(project))
}

// NotFound renders the 404 page
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.logger, http.StatusNotFound, views.Page{Title: "Not Found", Path: r.URL.Path}, views.NotFound())
}

// MethodNotAllowed renders the 405 page
func (h *PageHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.logger, http.StatusMethodNotAllowed, views.Page{Title: "Method Not Allowed", Path: r.URL.Path},
		views.ErrorPage(http.StatusMethodNotAllowed, "Method not allowed", "This page does not accept that kind of request."))
}

// InternalError renders the 500 page
func (h *PageHandler) InternalError(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, h.logger, http.StatusInternalServerError, views.Page{Title: "Error", Path: r.URL.Path},
		views.ErrorPage(http.StatusInternalServerError, "Something went wrong", "Please try again in a moment."))
}
