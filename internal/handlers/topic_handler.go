package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/edustream/backend/internal/models"
)

// TopicsService is the interface that wraps methods for topic management.
type TopicsService interface {
	// GetTopics retrieves all topics ordered by name.
	GetTopics(ctx context.Context) ([]models.Topic, error)
	// CreateTopic creates a topic with a unique name.
	CreateTopic(ctx context.Context, req *models.CreateTopicRequest) (*models.Topic, error)
	// UpdateTopic renames a topic.
	UpdateTopic(ctx context.Context, id string, req *models.UpdateTopicRequest) error
	// DeleteTopic removes a topic and its program attachments.
	DeleteTopic(ctx context.Context, id string) error
}

// TopicsHandler handles HTTP requests for topic management
type TopicsHandler struct {
	BaseHandler
	service TopicsService
}

// NewTopicsHandler creates a new topics handler
func NewTopicsHandler(svc TopicsService, logger *zap.Logger) *TopicsHandler {
	return &TopicsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all topic handler routes
func (h *TopicsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/topics", func(r chi.Router) {
		r.Get("/", h.GetAll)
		r.Post("/", h.Create)
		r.Patch("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// GetAll handles GET /api/v1/topics
// @Summary List topics
// @Description Get all topics ordered by name
// @Tags topics
// @Accept json
// @Produce json
// @Success 200 {array} models.Topic
// @Failure 500 {object} map[string]string
// @Router /api/v1/topics [get]
func (h *TopicsHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	topics, err := h.service.GetTopics(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, topics)
}

// Create handles POST /api/v1/topics
// @Summary Create topic
// @Description Create a topic with a unique name
// @Tags topics
// @Accept json
// @Produce json
// @Param topic body models.CreateTopicRequest true "Topic to create"
// @Success 201 {object} models.Topic
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/topics [post]
func (h *TopicsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTopicRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	topic, err := h.service.CreateTopic(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, topic)
}

// Update handles PATCH /api/v1/topics/{id}
// @Summary Rename topic
// @Description Rename an existing topic
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Param topic body models.UpdateTopicRequest true "New name"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/topics/{id} [patch]
func (h *TopicsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateTopicRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	if err := h.service.UpdateTopic(r.Context(), chi.URLParam(r, "id"), &req); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete handles DELETE /api/v1/topics/{id}
// @Summary Delete topic
// @Description Delete a topic and detach it from programs
// @Tags topics
// @Accept json
// @Produce json
// @Param id path string true "Topic ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/topics/{id} [delete]
func (h *TopicsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteTopic(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
