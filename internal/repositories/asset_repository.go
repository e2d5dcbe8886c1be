package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// assetRepository manages program posters and lesson thumbnails. The two
// tables share a shape, so the owner column and asset type are parameterized
// per call.
type assetRepository struct {
	db *sql.DB
}

// NewAssetRepository creates a new asset repository
func NewAssetRepository(db *sql.DB) *assetRepository {
	return &assetRepository{
		db: db,
	}
}

type assetTable struct {
	table       string
	ownerColumn string
	assetType   models.AssetType
}

var (
	programAssets = assetTable{table: "program_assets", ownerColumn: "program_id", assetType: models.AssetTypePoster}
	lessonAssets  = assetTable{table: "lesson_assets", ownerColumn: "lesson_id", assetType: models.AssetTypeThumbnail}
)

func (r *assetRepository) getByOwner(ctx context.Context, t assetTable, ownerID string) ([]models.Asset, error) {
	query := fmt.Sprintf(`
		SELECT id, %s, language, variant, asset_type, url, created_at
		FROM %s
		WHERE %s = ?
		ORDER BY language, variant
	`, t.ownerColumn, t.table, t.ownerColumn)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", t.table, err)
	}
	defer rows.Close()

	var assets []models.Asset
	for rows.Next() {
		var asset models.Asset
		err := rows.Scan(&asset.ID, &asset.OwnerID, &asset.Language, &asset.Variant,
			&asset.AssetType, &asset.URL, &asset.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset: %w", err)
		}
		assets = append(assets, asset)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return assets, nil
}

func (r *assetRepository) create(ctx context.Context, t assetTable, asset *models.Asset) error {
	asset.ID = uuid.New().String()
	asset.AssetType = t.assetType

	query := fmt.Sprintf(`
		INSERT INTO %s (id, %s, language, variant, asset_type, url)
		VALUES (?, ?, ?, ?, ?, ?)
	`, t.table, t.ownerColumn)

	_, err := r.db.ExecContext(ctx, query,
		asset.ID, asset.OwnerID, asset.Language, string(asset.Variant),
		string(asset.AssetType), asset.URL)
	if err != nil {
		return fmt.Errorf("failed to create asset: %w", apperrors.FromSQL(err))
	}

	return nil
}

func (r *assetRepository) delete(ctx context.Context, t assetTable, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, t.table)

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("asset")
	}

	return nil
}

// GetProgramAssets retrieves the poster assets of a program
func (r *assetRepository) GetProgramAssets(ctx context.Context, programID string) ([]models.Asset, error) {
	return r.getByOwner(ctx, programAssets, programID)
}

// CreateProgramAsset attaches a poster asset to a program
func (r *assetRepository) CreateProgramAsset(ctx context.Context, asset *models.Asset) error {
	return r.create(ctx, programAssets, asset)
}

// DeleteProgramAsset removes a program poster by asset ID
func (r *assetRepository) DeleteProgramAsset(ctx context.Context, id string) error {
	return r.delete(ctx, programAssets, id)
}

// GetLessonAssets retrieves the thumbnail assets of a lesson
func (r *assetRepository) GetLessonAssets(ctx context.Context, lessonID string) ([]models.Asset, error) {
	return r.getByOwner(ctx, lessonAssets, lessonID)
}

// CreateLessonAsset attaches a thumbnail asset to a lesson
func (r *assetRepository) CreateLessonAsset(ctx context.Context, asset *models.Asset) error {
	return r.create(ctx, lessonAssets, asset)
}

// DeleteLessonAsset removes a lesson thumbnail by asset ID
func (r *assetRepository) DeleteLessonAsset(ctx context.Context, id string) error {
	return r.delete(ctx, lessonAssets, id)
}
