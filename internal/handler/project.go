package handler

import (
	"log/slog"
	"net/http"

	"github.com/portfolio/portfolio/internal/handler/dto"
	"github.com/portfolio/portfolio/internal/service"
)

// ProjectHandler handles HTTP requests for portfolio projects.
type ProjectHandler struct {
	svc    *service.ProjectService
	logger *slog.Logger
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc *service.ProjectService, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/projects.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.svc.ListProjects(r.Context())
	if err != nil {
		writeStoreError(w, h.logger, service.OpListProjects, err)
		return
	}

	writeJSON(w, http.StatusOK, projects)
}

// Create handles POST /api/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	project, err := h.svc.CreateProject(r.Context(), service.CreateProjectInput{
		Title:        string(req.Title),
		Description:  string(req.Description),
		Link:         string(req.Link),
		Technologies: req.Technologies,
	})
	if err != nil {
		writeStoreError(w, h.logger, service.OpCreateProject, err)
		return
	}

	h.logger.Info("project_created",
		"project_id", project.ID,
		"technologies", len(project.Technologies),
	)

	writeJSON(w, http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: dto.MessageProjectCreated,
	})
}
