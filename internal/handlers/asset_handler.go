package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/edustream/backend/internal/models"
)

// AssetsService is the interface that wraps methods for poster and
// thumbnail management.
type AssetsService interface {
	// GetProgramAssets retrieves the posters of a program.
	GetProgramAssets(ctx context.Context, programID string) ([]models.Asset, error)
	// CreateProgramAsset attaches a poster to a program.
	CreateProgramAsset(ctx context.Context, req *models.CreateAssetRequest) (*models.Asset, error)
	// DeleteProgramAsset removes a program poster.
	DeleteProgramAsset(ctx context.Context, id string) error
	// GetLessonAssets retrieves the thumbnails of a lesson.
	GetLessonAssets(ctx context.Context, lessonID string) ([]models.Asset, error)
	// CreateLessonAsset attaches a thumbnail to a lesson.
	CreateLessonAsset(ctx context.Context, req *models.CreateAssetRequest) (*models.Asset, error)
	// DeleteLessonAsset removes a lesson thumbnail.
	DeleteLessonAsset(ctx context.Context, id string) error
}

// AssetsHandler handles HTTP requests for program posters and lesson thumbnails
type AssetsHandler struct {
	BaseHandler
	service AssetsService
}

// NewAssetsHandler creates a new assets handler
func NewAssetsHandler(svc AssetsService, logger *zap.Logger) *AssetsHandler {
	return &AssetsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all asset handler routes
func (h *AssetsHandler) RegisterRoutes(r chi.Router) {
	r.Get("/programs/{id}/posters", h.GetProgramPosters)
	r.Post("/programs/{id}/posters", h.CreateProgramPoster)
	r.Delete("/programs/{id}/posters/{assetId}", h.DeleteProgramPoster)
	r.Get("/lessons/{id}/thumbnails", h.GetLessonThumbnails)
	r.Post("/lessons/{id}/thumbnails", h.CreateLessonThumbnail)
	r.Delete("/lessons/{id}/thumbnails/{assetId}", h.DeleteLessonThumbnail)
}

// GetProgramPosters handles GET /api/v1/programs/{id}/posters
// @Summary List program posters
// @Description Get the poster assets of a program
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Success 200 {array} models.Asset
// @Failure 500 {object} map[string]string
// @Router /api/v1/programs/{id}/posters [get]
func (h *AssetsHandler) GetProgramPosters(w http.ResponseWriter, r *http.Request) {
	assets, err := h.service.GetProgramAssets(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, assets)
}

// CreateProgramPoster handles POST /api/v1/programs/{id}/posters
// @Summary Attach program poster
// @Description Attach a poster image to a program for one language and variant
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param asset body models.CreateAssetRequest true "Poster to attach"
// @Success 201 {object} models.Asset
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/programs/{id}/posters [post]
func (h *AssetsHandler) CreateProgramPoster(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAssetRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}
	req.OwnerID = chi.URLParam(r, "id")

	asset, err := h.service.CreateProgramAsset(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, asset)
}

// DeleteProgramPoster handles DELETE /api/v1/programs/{id}/posters/{assetId}
// @Summary Delete program poster
// @Description Remove a poster from a program
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Program ID"
// @Param assetId path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/programs/{id}/posters/{assetId} [delete]
func (h *AssetsHandler) DeleteProgramPoster(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteProgramAsset(r.Context(), chi.URLParam(r, "assetId")); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetLessonThumbnails handles GET /api/v1/lessons/{id}/thumbnails
// @Summary List lesson thumbnails
// @Description Get the thumbnail assets of a lesson
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Success 200 {array} models.Asset
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id}/thumbnails [get]
func (h *AssetsHandler) GetLessonThumbnails(w http.ResponseWriter, r *http.Request) {
	assets, err := h.service.GetLessonAssets(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, assets)
}

// CreateLessonThumbnail handles POST /api/v1/lessons/{id}/thumbnails
// @Summary Attach lesson thumbnail
// @Description Attach a thumbnail image to a lesson for one language and variant
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param asset body models.CreateAssetRequest true "Thumbnail to attach"
// @Success 201 {object} models.Asset
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id}/thumbnails [post]
func (h *AssetsHandler) CreateLessonThumbnail(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAssetRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondServiceError(w, err)
		return
	}
	req.OwnerID = chi.URLParam(r, "id")

	asset, err := h.service.CreateLessonAsset(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, asset)
}

// DeleteLessonThumbnail handles DELETE /api/v1/lessons/{id}/thumbnails/{assetId}
// @Summary Delete lesson thumbnail
// @Description Remove a thumbnail from a lesson
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Lesson ID"
// @Param assetId path string true "Asset ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/v1/lessons/{id}/thumbnails/{assetId} [delete]
func (h *AssetsHandler) DeleteLessonThumbnail(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteLessonAsset(r.Context(), chi.URLParam(r, "assetId")); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
