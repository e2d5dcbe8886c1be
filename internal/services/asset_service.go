package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// AssetRepository defines methods for poster and thumbnail data access
type AssetRepository interface {
	// GetProgramAssets retrieves the poster assets of a program
	GetProgramAssets(ctx context.Context, programID string) ([]models.Asset, error)
	// CreateProgramAsset attaches a poster asset to a program
	CreateProgramAsset(ctx context.Context, asset *models.Asset) error
	// DeleteProgramAsset removes a program poster by asset ID
	DeleteProgramAsset(ctx context.Context, id string) error
	// GetLessonAssets retrieves the thumbnail assets of a lesson
	GetLessonAssets(ctx context.Context, lessonID string) ([]models.Asset, error)
	// CreateLessonAsset attaches a thumbnail asset to a lesson
	CreateLessonAsset(ctx context.Context, asset *models.Asset) error
	// DeleteLessonAsset removes a lesson thumbnail by asset ID
	DeleteLessonAsset(ctx context.Context, id string) error
}

type assetService struct {
	assetRepo AssetRepository
}

// NewAssetService creates a new asset service
func NewAssetService(assetRepo AssetRepository) *assetService {
	return &assetService{
		assetRepo: assetRepo,
	}
}

func validateAssetRequest(req *models.CreateAssetRequest) error {
	if req.OwnerID == "" || req.Language == "" || req.URL == "" {
		return apperrors.Validation("ownerId, language and url are required")
	}
	if !slices.Contains(models.ValidAssetVariants, req.Variant) {
		return apperrors.Validation(fmt.Sprintf("invalid asset variant %q", req.Variant))
	}
	return nil
}

// GetProgramAssets retrieves the posters of a program
func (s *assetService) GetProgramAssets(ctx context.Context, programID string) ([]models.Asset, error) {
	return s.assetRepo.GetProgramAssets(ctx, programID)
}

// CreateProgramAsset validates and attaches a poster to a program
func (s *assetService) CreateProgramAsset(ctx context.Context, req *models.CreateAssetRequest) (*models.Asset, error) {
	if err := validateAssetRequest(req); err != nil {
		return nil, err
	}

	asset := &models.Asset{
		OwnerID:  req.OwnerID,
		Language: req.Language,
		Variant:  req.Variant,
		URL:      req.URL,
	}
	if err := s.assetRepo.CreateProgramAsset(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// DeleteProgramAsset removes a program poster
func (s *assetService) DeleteProgramAsset(ctx context.Context, id string) error {
	return s.assetRepo.DeleteProgramAsset(ctx, id)
}

// GetLessonAssets retrieves the thumbnails of a lesson
func (s *assetService) GetLessonAssets(ctx context.Context, lessonID string) ([]models.Asset, error) {
	return s.assetRepo.GetLessonAssets(ctx, lessonID)
}

// CreateLessonAsset validates and attaches a thumbnail to a lesson
func (s *assetService) CreateLessonAsset(ctx context.Context, req *models.CreateAssetRequest) (*models.Asset, error) {
	if err := validateAssetRequest(req); err != nil {
		return nil, err
	}

	asset := &models.Asset{
		OwnerID:  req.OwnerID,
		Language: req.Language,
		Variant:  req.Variant,
		URL:      req.URL,
	}
	if err := s.assetRepo.CreateLessonAsset(ctx, asset); err != nil {
		return nil, err
	}

	return asset, nil
}

// DeleteLessonAsset removes a lesson thumbnail
func (s *assetService) DeleteLessonAsset(ctx context.Context, id string) error {
	return s.assetRepo.DeleteLessonAsset(ctx, id)
}
