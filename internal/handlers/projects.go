package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"dconn.dev/portfolio/internal/services"
)

// ProjectHandler handles the JSON project endpoints
type ProjectHandler struct {
	projectService *services.ProjectService
	logger         *zap.Logger
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(ps *services.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{projectService: ps, logger: logger}
}

// ListProjects handles GET /api/projects - the projects page view
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, h.logger, http.StatusOK, h.projectService.ProjectsPage())
}

// GetProject handles GET /api/projects/{id}
func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	project, err := h.projectService.GetByID(id)
	if err != nil {
		respondError(w, h.logger, http.StatusNotFound, "Project not found")
		return
	}

	respondJSON(w, h.logger, http.StatusOK, project)
}
