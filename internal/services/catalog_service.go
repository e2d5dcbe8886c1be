package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// catalog pagination bounds
const (
	defaultCatalogLimit = 20
	maxCatalogLimit     = 100
)

// CatalogRepository defines the read-only queries behind the public catalog
type CatalogRepository interface {
	// ListPublished retrieves a page of visible programs, newest first
	ListPublished(ctx context.Context, language, topicID string, cursorPublishedAt *time.Time, cursorID string, limit int) ([]models.CatalogProgram, error)
	// GetPublishedProgram retrieves a single visible program
	GetPublishedProgram(ctx context.Context, id string) (*models.CatalogProgram, error)
	// GetTerms retrieves the terms of a program ordered by term number
	GetTerms(ctx context.Context, programID string) ([]models.CatalogTerm, error)
	// GetPublishedLessonsByTerm retrieves the published lessons of a term
	GetPublishedLessonsByTerm(ctx context.Context, termID string) ([]models.CatalogLesson, error)
	// GetPublishedLesson retrieves a single published lesson
	GetPublishedLesson(ctx context.Context, id string) (*models.CatalogLesson, error)
}

// CatalogTopicRepository defines the topic lookups the catalog needs
type CatalogTopicRepository interface {
	// GetByProgramID retrieves the topics attached to a program
	GetByProgramID(ctx context.Context, programID string) ([]models.Topic, error)
}

// CatalogAssetRepository defines the asset lookups the catalog needs
type CatalogAssetRepository interface {
	// GetProgramAssets retrieves the poster assets of a program
	GetProgramAssets(ctx context.Context, programID string) ([]models.Asset, error)
	// GetLessonAssets retrieves the thumbnail assets of a lesson
	GetLessonAssets(ctx context.Context, lessonID string) ([]models.Asset, error)
}

// CatalogCache is a best-effort read cache in front of catalog queries.
// Implementations must treat misses and errors the same way: ok=false.
type CatalogCache interface {
	// Get loads a cached value into dest, reporting whether it was present
	Get(ctx context.Context, key string, dest any) bool
	// Set stores a value under the key with the cache's TTL
	Set(ctx context.Context, key string, value any)
}

type catalogService struct {
	catalogRepo CatalogRepository
	topicRepo   CatalogTopicRepository
	assetRepo   CatalogAssetRepository
	cache       CatalogCache
}

// NewCatalogService creates a new catalog service. The cache may be nil, in
// which case every read goes to the store.
func NewCatalogService(catalogRepo CatalogRepository, topicRepo CatalogTopicRepository, assetRepo CatalogAssetRepository, cache CatalogCache) *catalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		topicRepo:   topicRepo,
		assetRepo:   assetRepo,
		cache:       cache,
	}
}

// encodeCursor packs the composite pagination position (published_at, id)
// into an opaque token
func encodeCursor(publishedAt time.Time, id string) string {
	raw := publishedAt.UTC().Format(time.RFC3339Nano) + "|" + id
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

// decodeCursor unpacks a pagination token produced by encodeCursor
func decodeCursor(cursor string) (time.Time, string, error) {
	raw, err := base64.URLEncoding.DecodeString(cursor)
	if err != nil {
		return time.Time{}, "", apperrors.Validation("invalid cursor")
	}
	parts := strings.SplitN(string(raw), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, "", apperrors.Validation("invalid cursor")
	}
	publishedAt, err := time.Parse(time.RFC3339Nano, parts[0])
	if err != nil {
		return time.Time{}, "", apperrors.Validation("invalid cursor")
	}
	return publishedAt, parts[1], nil
}

// ListPublishedPrograms retrieves a page of visible programs with cursor
// pagination, newest publication first
func (s *catalogService) ListPublishedPrograms(ctx context.Context, filter models.CatalogFilter) (*models.CatalogProgramPage, error) {
	if filter.Limit < 1 {
		filter.Limit = defaultCatalogLimit
	}
	if filter.Limit > maxCatalogLimit {
		filter.Limit = maxCatalogLimit
	}

	var cursorPublishedAt *time.Time
	var cursorID string
	if filter.Cursor != "" {
		publishedAt, id, err := decodeCursor(filter.Cursor)
		if err != nil {
			return nil, err
		}
		cursorPublishedAt = &publishedAt
		cursorID = id
	}

	cacheKey := fmt.Sprintf("catalog:programs:%s:%s:%s:%d",
		filter.Language, filter.TopicID, filter.Cursor, filter.Limit)
	if s.cache != nil {
		var page models.CatalogProgramPage
		if s.cache.Get(ctx, cacheKey, &page) {
			return &page, nil
		}
	}

	programs, err := s.catalogRepo.ListPublished(ctx, filter.Language, filter.TopicID, cursorPublishedAt, cursorID, filter.Limit)
	if err != nil {
		return nil, err
	}

	page := &models.CatalogProgramPage{
		Data: programs,
	}
	// A full page means there may be more; the cursor points at the last row
	if len(programs) == filter.Limit {
		last := programs[len(programs)-1]
		page.Pagination.HasMore = true
		page.Pagination.NextCursor = encodeCursor(last.PublishedAt, last.ID)
	}

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, page)
	}

	return page, nil
}

// GetPublishedProgram retrieves the fully nested public view of a program:
// topics, posters, terms and their published lessons with thumbnails.
// Programs that exist but are not visible are indistinguishable from absent
// ones.
func (s *catalogService) GetPublishedProgram(ctx context.Context, id string) (*models.CatalogProgramDetail, error) {
	cacheKey := "catalog:program:" + id
	if s.cache != nil {
		var detail models.CatalogProgramDetail
		if s.cache.Get(ctx, cacheKey, &detail) {
			return &detail, nil
		}
	}

	program, err := s.catalogRepo.GetPublishedProgram(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &models.CatalogProgramDetail{CatalogProgram: *program}

	topics, err := s.topicRepo.GetByProgramID(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Topics = topics

	assets, err := s.assetRepo.GetProgramAssets(ctx, id)
	if err != nil {
		return nil, err
	}
	detail.Posters = models.BuildAssetMap(assets, models.AssetTypePoster)

	terms, err := s.catalogRepo.GetTerms(ctx, id)
	if err != nil {
		return nil, err
	}
	for i := range terms {
		lessons, err := s.catalogRepo.GetPublishedLessonsByTerm(ctx, terms[i].ID)
		if err != nil {
			return nil, err
		}
		for j := range lessons {
			thumbnails, err := s.assetRepo.GetLessonAssets(ctx, lessons[j].ID)
			if err != nil {
				return nil, err
			}
			lessons[j].Thumbnails = models.BuildAssetMap(thumbnails, models.AssetTypeThumbnail)
		}
		terms[i].Lessons = lessons
	}
	detail.Terms = terms

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, detail)
	}

	return detail, nil
}

// GetPublishedLesson retrieves the public view of a single published lesson
func (s *catalogService) GetPublishedLesson(ctx context.Context, id string) (*models.CatalogLesson, error) {
	cacheKey := "catalog:lesson:" + id
	if s.cache != nil {
		var lesson models.CatalogLesson
		if s.cache.Get(ctx, cacheKey, &lesson) {
			return &lesson, nil
		}
	}

	lesson, err := s.catalogRepo.GetPublishedLesson(ctx, id)
	if err != nil {
		return nil, err
	}

	thumbnails, err := s.assetRepo.GetLessonAssets(ctx, id)
	if err != nil {
		return nil, err
	}
	lesson.Thumbnails = models.BuildAssetMap(thumbnails, models.AssetTypeThumbnail)

	if s.cache != nil {
		s.cache.Set(ctx, cacheKey, lesson)
	}

	return lesson, nil
}
