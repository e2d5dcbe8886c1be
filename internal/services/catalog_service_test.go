package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// mockCatalogRepo is a mock implementation of CatalogRepository
type mockCatalogRepo struct {
	programs    []models.CatalogProgram
	program     *models.CatalogProgram
	terms       []models.CatalogTerm
	termLessons map[string][]models.CatalogLesson
	lesson      *models.CatalogLesson
	err         error

	lastLanguage          string
	lastTopicID           string
	lastCursorPublishedAt *time.Time
	lastCursorID          string
	lastLimit             int
	listCalls             int
}

func (m *mockCatalogRepo) ListPublished(ctx context.Context, language, topicID string, cursorPublishedAt *time.Time, cursorID string, limit int) ([]models.CatalogProgram, error) {
	m.listCalls++
	m.lastLanguage = language
	m.lastTopicID = topicID
	m.lastCursorPublishedAt = cursorPublishedAt
	m.lastCursorID = cursorID
	m.lastLimit = limit
	if m.err != nil {
		return nil, m.err
	}
	return m.programs, nil
}

func (m *mockCatalogRepo) GetPublishedProgram(ctx context.Context, id string) (*models.CatalogProgram, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.program == nil {
		return nil, apperrors.NotFound("program")
	}
	return m.program, nil
}

func (m *mockCatalogRepo) GetTerms(ctx context.Context, programID string) ([]models.CatalogTerm, error) {
	return m.terms, nil
}

func (m *mockCatalogRepo) GetPublishedLessonsByTerm(ctx context.Context, termID string) ([]models.CatalogLesson, error) {
	return m.termLessons[termID], nil
}

func (m *mockCatalogRepo) GetPublishedLesson(ctx context.Context, id string) (*models.CatalogLesson, error) {
	if m.lesson == nil {
		return nil, apperrors.NotFound("lesson")
	}
	copied := *m.lesson
	return &copied, nil
}

// mockCatalogTopicRepo is a mock implementation of CatalogTopicRepository
type mockCatalogTopicRepo struct {
	topics []models.Topic
}

func (m *mockCatalogTopicRepo) GetByProgramID(ctx context.Context, programID string) ([]models.Topic, error) {
	return m.topics, nil
}

// mockCatalogAssetRepo is a mock implementation of CatalogAssetRepository
type mockCatalogAssetRepo struct {
	programAssets []models.Asset
	lessonAssets  map[string][]models.Asset
}

func (m *mockCatalogAssetRepo) GetProgramAssets(ctx context.Context, programID string) ([]models.Asset, error) {
	return m.programAssets, nil
}

func (m *mockCatalogAssetRepo) GetLessonAssets(ctx context.Context, lessonID string) ([]models.Asset, error) {
	return m.lessonAssets[lessonID], nil
}

// mapCache is an in-memory CatalogCache for tests
type mapCache struct {
	entries map[string]any
	gets    int
	hits    int
	sets    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: map[string]any{}}
}

func (c *mapCache) Get(ctx context.Context, key string, dest any) bool {
	c.gets++
	value, ok := c.entries[key]
	if !ok {
		return false
	}
	c.hits++
	switch d := dest.(type) {
	case *models.CatalogProgramPage:
		*d = *value.(*models.CatalogProgramPage)
	case *models.CatalogProgramDetail:
		*d = *value.(*models.CatalogProgramDetail)
	case *models.CatalogLesson:
		*d = *value.(*models.CatalogLesson)
	default:
		return false
	}
	return true
}

func (c *mapCache) Set(ctx context.Context, key string, value any) {
	c.sets++
	c.entries[key] = value
}

// walkCatalogRepo applies the composite cursor predicate in memory so cursor
// walks behave like the SQL ordering
type walkCatalogRepo struct {
	mockCatalogRepo
	all []models.CatalogProgram
}

func (m *walkCatalogRepo) ListPublished(ctx context.Context, language, topicID string, cursorPublishedAt *time.Time, cursorID string, limit int) ([]models.CatalogProgram, error) {
	var page []models.CatalogProgram
	for _, program := range m.all {
		if cursorPublishedAt != nil {
			after := program.PublishedAt.Before(*cursorPublishedAt) ||
				(program.PublishedAt.Equal(*cursorPublishedAt) && program.ID < cursorID)
			if !after {
				continue
			}
		}
		page = append(page, program)
		if len(page) == limit {
			break
		}
	}
	return page, nil
}

func TestCursorCodec(t *testing.T) {
	publishedAt := time.Date(2026, 3, 15, 12, 30, 45, 123456789, time.UTC)

	token := encodeCursor(publishedAt, "550e8400-e29b-41d4-a716-446655440000")
	decodedAt, decodedID, err := decodeCursor(token)

	assert.NoError(t, err)
	assert.True(t, publishedAt.Equal(decodedAt))
	assert.Equal(t, "550e8400-e29b-41d4-a716-446655440000", decodedID)
}

func TestCursorCodec_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		cursor string
	}{
		{name: "not base64", cursor: "%%%"},
		{name: "missing separator", cursor: "bm90LWEtY3Vyc29y"},
		{name: "bad timestamp", cursor: "bm90YXRpbWV8aWQ="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := decodeCursor(tt.cursor)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestCatalogService_ListPublishedPrograms(t *testing.T) {
	makePrograms := func(n int) []models.CatalogProgram {
		programs := make([]models.CatalogProgram, n)
		base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
		for i := range programs {
			programs[i] = models.CatalogProgram{
				ID:          string(rune('a' + i)),
				Title:       "Program",
				PublishedAt: base.Add(-time.Duration(i) * time.Hour),
			}
		}
		return programs
	}

	t.Run("applies default limit", func(t *testing.T) {
		repo := &mockCatalogRepo{}
		svc := NewCatalogService(repo, &mockCatalogTopicRepo{}, &mockCatalogAssetRepo{}, nil)

		_, err := svc.ListPublishedPrograms(context.Background(), models.CatalogFilter{})

		assert.NoError(t, err)
		assert.Equal(t, 20, repo.lastLimit)
	})

	t.Run("caps oversized limit", func(t *testing.T) {
		repo := &mockCatalogRepo{}
		svc := NewCatalogService(repo, &mockCatalogTopicRepo{}, &mockCatalogAssetRepo{}, nil)

		_, err := svc.ListPublishedPrograms(context.Background(), models.CatalogFilter{Limit: 500})

		assert.NoError(t, err)
		assert.Equal(t, 100, repo.lastLimit)
	})

	t.Run("full page yields next cursor", func(t *testing.T) {
		repo := &mockCatalogRepo{programs: makePrograms(2)}
		svc := NewCatalogService(repo, &mockCatalogTopicRepo{}, &mockCatalogAssetRepo{}, nil)

		page, err := svc.ListPublishedPrograms(context.Background(), models.CatalogFilter{Limit: 2})

		assert.NoError(t, err)
		assert.True(t, page.Pagination.HasMore)
		assert.NotEmpty(t, page.Pagination.NextCursor)

		// The cursor must point at the last item of the page
		cursorAt, cursorID, err := decodeCursor(page.Pagination.NextCursor)
		assert.NoError(t, err)
		last := repo.programs[1]
		assert.True(t, last.PublishedAt.Equal(cursorAt))
		assert.Equal(t, last.ID, cursorID)
	})

	t.Run("short page has no next cursor", func(t *testing.T) {
		repo := &mockCatalogRepo{programs: makePrograms(1)}
		svc := NewCatalogService(repo, &mockCatalogTopicRepo{}, &mockCatalogAssetRepo{}, nil)

		page, err := svc.ListPublishedPrograms(context.Background(), models.CatalogFilter{Limit: 2})

		assert.NoError(t, err)
		assert.False(t, page.Pagination.HasMore)
		assert.Empty(t, page.Pagination.NextCursor)
	})

	t.Run("cursor is decoded and passed through", func(t *testing.T) {
		publishedAt := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
		cursor := encodeCursor(publishedAt, "p42")
		repo := &mockCatalogRepo{}
		svc := NewCatalogService(repo, &mockCatalogTopicRepo{}, &mockCatalogAssetRepo{}, nil)

		_, err := svc.ListPublishedPrograms(context.Background(), models.CatalogFilter{Cursor: cursor, Limit: 10})

		assert.NoError(t, err)
		assert.NotNil(t, repo.lastCursorPublishedAt)
		assert.True(t, publishedAt.Equal(*repo.lastCursorPublishedAt))
		assert.Equal(t, "p42", repo.lastCursorID)
	})

	t.Run("malformed cursor is rejected", func(t *testing.T) {
		repo := &mockCatalogRepo{}
		svc := NewCatalogService(repo, &mockCatalogTopicRepo{}, &mockCatalogAssetRepo{}, nil)

		_, err := svc.ListPublishedPrograms(context.Background(), models.CatalogFilter{Cursor: "garbage"})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Zero(t, repo.listCalls)
	})

	t.Run("limit 1 walk visits every program once", func(t *testing.T) {
		all := makePrograms(3)
		repo := &walkCatalogRepo{mockCatalogRepo: mockCatalogRepo{}, all: all}
		svc := NewCatalogService(repo, &mockCatalogTopicRepo{}, &mockCatalogAssetRepo{}, nil)

		var seen []string
		cursor := ""
		for i := 0; i < 4; i++ {
			page, err := svc.ListPublishedPrograms(context.Background(), models.CatalogFilter{Cursor: cursor, Limit: 1})
			assert.NoError(t, err)
			for _, program := range page.Data {
				seen = append(seen, program.ID)
			}
			if !page.Pagination.HasMore {
				break
			}
			cursor = page.Pagination.NextCursor
		}

		assert.Equal(t, []string{"a", "b", "c"}, seen)
	})

	t.Run("second call hits the cache", func(t *testing.T) {
		repo := &mockCatalogRepo{programs: makePrograms(1)}
		cache := newMapCache()
		svc := NewCatalogService(repo, &mockCatalogTopicRepo{}, &mockCatalogAssetRepo{}, cache)

		filter := models.CatalogFilter{Language: "en", Limit: 10}
		_, err := svc.ListPublishedPrograms(context.Background(), filter)
		assert.NoError(t, err)
		_, err = svc.ListPublishedPrograms(context.Background(), filter)
		assert.NoError(t, err)

		assert.Equal(t, 1, repo.listCalls)
		assert.Equal(t, 1, cache.hits)
	})
}

func TestCatalogService_GetPublishedProgram(t *testing.T) {
	publishedAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	duration := int64(600000)

	repo := &mockCatalogRepo{
		program: &models.CatalogProgram{ID: "p1", Title: "Japanese for Beginners", PublishedAt: publishedAt},
		terms: []models.CatalogTerm{
			{ID: "t1", TermNumber: 1, Title: "Term 1"},
			{ID: "t2", TermNumber: 2, Title: "Term 2"},
		},
		termLessons: map[string][]models.CatalogLesson{
			"t1": {
				{ID: "l1", LessonNumber: 1, Title: "Hiragana", ContentType: models.ContentTypeVideo, DurationMs: &duration, PublishedAt: publishedAt},
			},
		},
	}
	topicRepo := &mockCatalogTopicRepo{topics: []models.Topic{{ID: "top1", Name: "language"}}}
	assetRepo := &mockCatalogAssetRepo{
		programAssets: []models.Asset{
			{OwnerID: "p1", Language: "en", Variant: models.AssetVariantPortrait, AssetType: models.AssetTypePoster, URL: "https://cdn/p1-en-portrait.jpg"},
			{OwnerID: "p1", Language: "en", Variant: models.AssetVariantLandscape, AssetType: models.AssetTypePoster, URL: "https://cdn/p1-en-landscape.jpg"},
			{OwnerID: "p1", Language: "ja", Variant: models.AssetVariantPortrait, AssetType: models.AssetTypePoster, URL: "https://cdn/p1-ja-portrait.jpg"},
		},
		lessonAssets: map[string][]models.Asset{
			"l1": {
				{OwnerID: "l1", Language: "en", Variant: models.AssetVariantSquare, AssetType: models.AssetTypeThumbnail, URL: "https://cdn/l1-en-square.jpg"},
			},
		},
	}
	svc := NewCatalogService(repo, topicRepo, assetRepo, nil)

	detail, err := svc.GetPublishedProgram(context.Background(), "p1")

	assert.NoError(t, err)
	assert.Equal(t, "Japanese for Beginners", detail.Title)
	assert.Len(t, detail.Topics, 1)

	// Posters are reshaped into language -> variant -> url
	assert.Equal(t, "https://cdn/p1-en-portrait.jpg", detail.Posters["en"]["portrait"])
	assert.Equal(t, "https://cdn/p1-en-landscape.jpg", detail.Posters["en"]["landscape"])
	assert.Equal(t, "https://cdn/p1-ja-portrait.jpg", detail.Posters["ja"]["portrait"])

	assert.Len(t, detail.Terms, 2)
	assert.Len(t, detail.Terms[0].Lessons, 1)
	assert.Equal(t, "https://cdn/l1-en-square.jpg", detail.Terms[0].Lessons[0].Thumbnails["en"]["square"])
	assert.Empty(t, detail.Terms[1].Lessons)
}

func TestCatalogService_GetPublishedProgram_NotFound(t *testing.T) {
	svc := NewCatalogService(&mockCatalogRepo{}, &mockCatalogTopicRepo{}, &mockCatalogAssetRepo{}, nil)

	detail, err := svc.GetPublishedProgram(context.Background(), "missing")

	assert.Nil(t, detail)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogService_GetPublishedLesson(t *testing.T) {
	publishedAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	repo := &mockCatalogRepo{
		lesson: &models.CatalogLesson{ID: "l1", Title: "Hiragana", PublishedAt: publishedAt},
	}
	assetRepo := &mockCatalogAssetRepo{
		lessonAssets: map[string][]models.Asset{
			"l1": {
				{OwnerID: "l1", Language: "en", Variant: models.AssetVariantSquare, AssetType: models.AssetTypeThumbnail, URL: "https://cdn/l1.jpg"},
			},
		},
	}
	svc := NewCatalogService(repo, &mockCatalogTopicRepo{}, assetRepo, nil)

	lesson, err := svc.GetPublishedLesson(context.Background(), "l1")

	assert.NoError(t, err)
	assert.Equal(t, "Hiragana", lesson.Title)
	assert.Equal(t, "https://cdn/l1.jpg", lesson.Thumbnails["en"]["square"])
}
