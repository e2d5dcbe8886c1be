package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/edustream/backend/internal/models"
)

// TermsService is the interface that wraps methods for term management.
type TermsService interface {
	// GetTerms retrieves terms with lesson counts, optionally for one program.
	GetTerms(ctx context.Context, programID string) ([]models.TermListItem, error)
	// GetTerm retrieves a term together with its lessons.
	GetTerm(ctx context.Context, id string) (*models.TermDetail, error)
	// CreateTerm creates a term inside an existing program.
	CreateTerm(ctx context.Context, req *models.CreateTermRequest) (*models.Term, error)
	// UpdateTerm applies a partial update.
	UpdateTerm(ctx context.Context, id string, req *models.UpdateTermRequest) (*models.Term, error)
	// DeleteTerm removes a term with its lessons.
	DeleteTerm(ctx context.Context, id string) error
}

// TermsHandler handles HTTP requests for term management
type TermsHandler struct {
	BaseHandler
	service TermsService
}

// NewTermsHandler creates a new terms handler
func NewTermsHandler(svc TermsService, logger *zap.Logger) *TermsHandler {
	return &TermsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all term handler routes
func (h *TermsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/terms", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// GetAll handles GET /api/v1/terms
// @Summary List terms
// @Description Get terms with lesson counts, optionally filtered by program
// @Tags terms
// @Accept json
// @Produce json
// @Param program_id query string false "Filter by program ID"
// @Success 200 {array} models.TermListItem
// @Failure 500 {object} map[string]string
// @Router /api/v1/terms [get]
func (h *TermsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	terms, err := h.service.GetTerms(r.Context(), r.URL.Query().Get("program_id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, terms)
}

// GetByID handles GET /api/v1/terms/{id}
// @Summary Get term by ID
// @Description Get a term together with its lessons
// @Tags terms
// @Accept json
// @Produce json
// @Param id path string true "Term ID"
// @Success 200 {object} models.TermDetail
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/terms/{id} [get]
func (h *TermsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	term, err := h.service.GetTerm(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, term)
}

// Create handles POST /api/v1/terms
// @Summary Create term
// @Description Create a term inside an existing program
// @Tags terms
// @Accept json
// @Produce json
// @Param term body models.CreateTermRequest true "Term to create"
// @Success 201 {object} models.Term
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/terms [post]
func (h *TermsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTermRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	term, err := h.service.CreateTerm(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, term)
}

// Update handles PATCH /api/v1/terms/{id}
// @Summary Update term
// @Description Apply a partial update to a term
// @Tags terms
// @Accept json
// @Produce json
// @Param id path string true "Term ID"
// @Param term body models.UpdateTermRequest true "Fields to update"
// @Success 200 {object} models.Term
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/terms/{id} [patch]
func (h *TermsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTermRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	term, err := h.service.UpdateTerm(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, term)
}

// Delete handles DELETE /api/v1/terms/{id}
// @Summary Delete term
// @Description Delete a term together with its lessons
// @Tags terms
// @Accept json
// @Produce json
// @Param id path string true "Term ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/terms/{id} [delete]
func (h *TermsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTerm(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
