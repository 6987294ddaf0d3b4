package handler

import (
	"log/slog"
	"net/http"

	"github.com/portfolio/portfolio/internal/handler/dto"
	"github.com/portfolio/portfolio/internal/service"
)

// ContactHandler handles HTTP requests for contact messages.
type ContactHandler struct {
	svc    *service.ContactService
	logger *slog.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(svc *service.ContactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		svc:    svc,
		logger: logger,
	}
}

// List handles GET /api/contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.svc.ListContacts(r.Context())
	if err != nil {
		writeStoreError(w, h.logger, service.OpListContacts, err)
		return
	}

	writeJSON(w, http.StatusOK, contacts)
}

// Create handles POST /api/contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContactRequest
	if !decodeBody(w, r, h.logger, &req) {
		return
	}

	contact, err := h.svc.CreateContact(r.Context(), service.CreateContactInput{
		Name:    string(req.Name),
		Email:   string(req.Email),
		Message: string(req.Message),
	})
	if err != nil {
		writeStoreError(w, h.logger, service.OpCreateContact, err)
		return
	}

	h.logger.Info("contact_created", "contact_id", contact.ID)

	writeJSON(w, http.StatusOK, dto.SuccessResponse{
		Success: true,
		Message: dto.MessageContactCreated,
	})
}
