package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/edustream/backend/internal/models"
)

// ProgramsService is the interface that wraps methods for program management.
type ProgramsService interface {
	// GetPrograms retrieves programs with topics and posters attached,
	// optionally filtered by status, language or topic.
	GetPrograms(ctx context.Context, filter models.ProgramFilter) ([]models.Program, error)
	// GetProgram retrieves a program with topics, posters and term summaries.
	GetProgram(ctx context.Context, id string) (*models.ProgramDetail, error)
	// CreateProgram creates a program in the draft state. Programs become
	// published only through the lesson publish cascade.
	CreateProgram(ctx context.Context, req *models.CreateProgramRequest) (*models.ProgramDetail, error)
	// UpdateProgram applies a partial update to editable fields.
	UpdateProgram(ctx context.Context, id string, req *models.UpdateProgramRequest) (*models.ProgramDetail, error)
	// DeleteProgram removes a program with its terms and lessons.
	DeleteProgram(ctx context.Context, id string) error
}

// ProgramsHandler handles HTTP requests for program management
type ProgramsHandler struct {
	BaseHandler
	service ProgramsService
}

// NewProgramsHandler creates a new programs handler
func NewProgramsHandler(svc ProgramsService, logger *zap.Logger) *ProgramsHandler {
	return &ProgramsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all program handler routes
func (h *ProgramsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/programs", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// GetAll handles GET /api/v1/programs
// @Summary List programs
// @Description Get programs across all statuses with optional filters
// @Tags programs
// @Accept json
// @Produce json
// @Param status query string false "Filter by status: draft, published or archived"
// @Param language query string false "Filter by available language"
// @Param topic_id query string false "Filter by topic ID"
// @Param limit query int false "Page size, default 50"
// @Param offset query int false "Page offset, default 0"
// @Success 200 {array} models.Program
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/programs [get]
func (h *ProgramsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := models.ProgramFilter{
		Language: r.URL.Query().Get("language"),
		TopicID:  r.URL.Query().Get("topic_id"),
	}
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status := models.ProgramStatus(statusParam)
		if status != models.ProgramStatusDraft && status != models.ProgramStatusPublished && status != models.ProgramStatusArchived {
			h.respondError(w, http.StatusBadRequest, "invalid status parameter")
			return
		}
		filter.Status = &status
	}
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	filter.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	programs, err := h.service.GetPrograms(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, programs)
}

// GetByID handles GET /api/v1/programs/{id}
// @Summary Get program by ID
// @Description Get a program with topics, posters and term summaries
// @Tags programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} models.ProgramDetail
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/programs/{id} [get]
func (h *ProgramsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	program, err := h.service.GetProgram(r.Context(), id)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, program)
}

// Create handles POST /api/v1/programs
// @Summary Create program
// @Description Create a new program in the draft state
// @Tags programs
// @Accept json
// @Produce json
// @Param program body models.CreateProgramRequest true "Program to create"
// @Success 201 {object} models.ProgramDetail
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/programs [post]
func (h *ProgramsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProgramRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	program, err := h.service.CreateProgram(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, program)
}

// Update handles PATCH /api/v1/programs/{id}
// @Summary Update program
// @Description Apply a partial update to a program; status is not editable
// @Tags programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param program body models.UpdateProgramRequest true "Fields to update"
// @Success 200 {object} models.ProgramDetail
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/programs/{id} [patch]
func (h *ProgramsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req models.UpdateProgramRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	program, err := h.service.UpdateProgram(r.Context(), id, &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, program)
}

// Delete handles DELETE /api/v1/programs/{id}
// @Summary Delete program
// @Description Delete a program together with its terms and lessons
// @Tags programs
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/programs/{id} [delete]
func (h *ProgramsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.service.DeleteProgram(r.Context(), id); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
