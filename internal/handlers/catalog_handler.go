package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/edustream/backend/internal/models"
)

// CatalogService is the interface that wraps the public, published-only
// read side of the catalog.
type CatalogService interface {
	// ListPublishedPrograms retrieves a page of visible programs ordered by
	// publication time, newest first, with cursor pagination.
	ListPublishedPrograms(ctx context.Context, filter models.CatalogFilter) (*models.CatalogProgramPage, error)
	// GetPublishedProgram retrieves the nested public view of a program.
	GetPublishedProgram(ctx context.Context, id string) (*models.CatalogProgramDetail, error)
	// GetPublishedLesson retrieves the public view of a published lesson.
	GetPublishedLesson(ctx context.Context, id string) (*models.CatalogLesson, error)
}

// CatalogHandler handles public catalog requests. No draft, scheduled or
// archived content is ever reachable through these routes.
type CatalogHandler struct {
	BaseHandler
	service CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(svc CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all catalog handler routes
func (h *CatalogHandler) RegisterRoutes(r chi.Router) {
	r.Route("/catalog", func(r chi.Router) {
		r.Get("/programs", h.ListPrograms)
		r.Get("/programs/{id}", h.GetProgram)
		r.Get("/lessons/{id}", h.GetLesson)
	})
}

// ListPrograms handles GET /api/v1/catalog/programs
// @Summary List published programs
// @Description Get published programs ordered by publication time, newest first
// @Tags catalog
// @Accept json
// @Produce json
// @Param language query string false "Filter by available language"
// @Param topic_id query string false "Filter by topic ID"
// @Param cursor query string false "Opaque pagination cursor from a previous page"
// @Param limit query int false "Page size, default 20, max 100"
// @Success 200 {object} models.CatalogProgramPage
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/catalog/programs [get]
func (h *CatalogHandler) ListPrograms(w http.ResponseWriter, r *http.Request) {
	filter := models.CatalogFilter{
		Language: r.URL.Query().Get("language"),
		TopicID:  r.URL.Query().Get("topic_id"),
		Cursor:   r.URL.Query().Get("cursor"),
	}
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	page, err := h.service.ListPublishedPrograms(r.Context(), filter)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, page)
}

// GetProgram handles GET /api/v1/catalog/programs/{id}
// @Summary Get published program
// @Description Get a published program with topics, posters, terms and published lessons
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {object} models.CatalogProgramDetail
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/catalog/programs/{id} [get]
func (h *CatalogHandler) GetProgram(w http.ResponseWriter, r *http.Request) {
	program, err := h.service.GetPublishedProgram(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, program)
}

// GetLesson handles GET /api/v1/catalog/lessons/{id}
// @Summary Get published lesson
// @Description Get a published lesson with its thumbnails
// @Tags catalog
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {object} models.CatalogLesson
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/catalog/lessons/{id} [get]
func (h *CatalogHandler) GetLesson(w http.ResponseWriter, r *http.Request) {
	lesson, err := h.service.GetPublishedLesson(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, lesson)
}
