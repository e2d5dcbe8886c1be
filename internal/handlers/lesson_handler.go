package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// LessonsService is the interface that wraps methods for lesson management.
type LessonsService interface {
	// GetLessons retrieves lessons with optional filters.
	GetLessons(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error)
	// GetLesson retrieves a lesson with its thumbnails.
	GetLesson(ctx context.Context, id string) (*models.Lesson, error)
	// CreateLesson creates a lesson in the draft or scheduled state.
	CreateLesson(ctx context.Context, req *models.CreateLessonRequest) (*models.Lesson, error)
	// UpdateLesson applies a partial update subject to lifecycle rules.
	UpdateLesson(ctx context.Context, id string, req *models.UpdateLessonRequest) (*models.Lesson, error)
	// ScheduleLesson moves a lesson to scheduled with the given publish time.
	ScheduleLesson(ctx context.Context, id string, publishAt time.Time) (*models.Lesson, error)
	// ArchiveLesson moves a lesson to archived from any non-archived state.
	ArchiveLesson(ctx context.Context, id string) (*models.Lesson, error)
	// DeleteLesson removes a lesson.
	DeleteLesson(ctx context.Context, id string) error
}

// LessonPublisher is the interface that wraps the manual publish action.
type LessonPublisher interface {
	// PublishNow publishes a draft or scheduled lesson immediately,
	// cascading program promotion when needed.
	PublishNow(ctx context.Context, id string) (*models.PublishOutcome, error)
}

// scheduleRequest is the body of the schedule action
type scheduleRequest struct {
	PublishAt time.Time `json:"publishAt"`
}

// LessonsHandler handles HTTP requests for lesson management
type LessonsHandler struct {
	BaseHandler
	service   LessonsService
	publisher LessonPublisher
}

// NewLessonsHandler creates a new lessons handler
func NewLessonsHandler(svc LessonsService, publisher LessonPublisher, logger *zap.Logger) *LessonsHandler {
	return &LessonsHandler{
		service:     svc,
		publisher:   publisher,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all lesson handler routes
func (h *LessonsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/lessons", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Get("/{id}", h.GetByID)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
		r.Post("/{id}/schedule", h.Schedule)
		r.Post("/{id}/publish", h.Publish)
		r.Post("/{id}/archive", h.Archive)
	})
}

// GetAll handles GET /api/v1/lessons
// @Summary List lessons
// @Description Get lessons across all statuses with optional filters
// @Tags lessons
// @Accept json
// @Produce json
// @Param term_id query string false "Filter by term ID"
// @Param status query string false "Filter by status: draft, scheduled, published or archived"
// @Param content_type query string false "Filter by content type: video or article"
// @Param limit query int false "Page size, default 50"
// @Param offset query int false "Page offset, default 0"
// @Success 200 {array} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons [get]
func (h *LessonsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	filter := models.LessonFilter{
		TermID: r.URL.Query().Get("term_id"),
	}
	if statusParam := r.URL.Query().Get("status"); statusParam != "" {
		status := models.LessonStatus(statusParam)
		switch status {
		case models.LessonStatusDraft, models.LessonStatusScheduled, models.LessonStatusPublished, models.LessonStatusArchived:
			filter.Status = &status
		default:
			h.respondError(w, http.StatusBadRequest, "invalid status parameter")
			return
		}
	}
	if contentTypeParam := r.URL.Query().Get("content_type"); contentTypeParam != "" {
		contentType := models.ContentType(contentTypeParam)
		if contentType != models.ContentTypeVideo && contentType != models.ContentTypeArticle {
			h.respondError(w, http.StatusBadRequest, "invalid content_type parameter")
			return
		}
		filter.ContentType = &contentType
	}
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	filter.Offset, _ = strconv.Atoi(r.URL.Query().Get("offset"))

	lessons, err := h.service.GetLessons(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, lessons)
}

// GetByID handles GET /api/v1/lessons/{id}
// @Summary Get lesson by ID
// @Description Get a lesson with its thumbnails
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id} [get]
func (h *LessonsHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.service.GetLesson(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// Create handles POST /api/v1/lessons
// @Summary Create lesson
// @Description Create a lesson in the draft state, or scheduled when publishAt is set
// @Tags lessons
// @Accept json
// @Produce json
// @Param lesson body models.CreateLessonRequest true "Lesson to create"
// @Success 201 {object} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons [post]
func (h *LessonsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLessonRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	lesson, err := h.service.CreateLesson(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, lesson)
}

// Update handles PATCH /api/v1/lessons/{id}
// @Summary Update lesson
// @Description Apply a partial update to a lesson subject to lifecycle rules
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param lesson body models.UpdateLessonRequest true "Fields to update"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id} [patch]
func (h *LessonsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateLessonRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	lesson, err := h.service.UpdateLesson(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// Schedule handles POST /api/v1/lessons/{id}/schedule
// @Summary Schedule lesson
// @Description Move a lesson to scheduled with the given publish time; rescheduling updates the time
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param body body scheduleRequest true "Publish time"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id}/schedule [post]
func (h *LessonsHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req scheduleRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}
	if req.PublishAt.IsZero() {
		h.respondServiceError(w, apperrors.Validation("publishAt is required"))
		return
	}

	lesson, err := h.service.ScheduleLesson(r.Context(), chi.URLParam(r, "id"), req.PublishAt)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// Publish handles POST /api/v1/lessons/{id}/publish
// @Summary Publish lesson now
// @Description Publish a draft or scheduled lesson immediately; an already published lesson is a no-op
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.PublishOutcome
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id}/publish [post]
func (h *LessonsHandler) Publish(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.publisher.PublishNow(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, outcome)
}

// Archive handles POST /api/v1/lessons/{id}/archive
// @Summary Archive lesson
// @Description Move a lesson to archived; archived lessons leave the public catalog
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.Lesson
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id}/archive [post]
func (h *LessonsHandler) Archive(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.service.ArchiveLesson(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}

// Delete handles DELETE /api/v1/lessons/{id}
// @Summary Delete lesson
// @Description Delete a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id} [delete]
func (h *LessonsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteLesson(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
