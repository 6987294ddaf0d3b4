package handler

import (
	"net/http"

	"github.com/portfolio/portfolio/internal/service"
)

// SkillHandler serves the fixed skills list.
type SkillHandler struct {
	svc *service.SkillService
}

// NewSkillHandler creates a new SkillHandler.
func NewSkillHandler(svc *service.SkillService) *SkillHandler {
	return &SkillHandler{svc: svc}
}

// List handles GET /api/skills. It never fails.
func (h *SkillHandler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.svc.ListSkills())
}
