package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// mockLessonRepo is a mock implementation of LessonRepository
type mockLessonRepo struct {
	lessons      map[string]*models.Lesson
	createdID    string
	updateFields map[string]any
	scheduledAt  *time.Time
	archived     bool
	deleted      bool
}

func (m *mockLessonRepo) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	lesson, ok := m.lessons[id]
	if !ok {
		return nil, apperrors.NotFound("lesson")
	}
	copied := *lesson
	return &copied, nil
}

func (m *mockLessonRepo) GetAll(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error) {
	result := make([]models.Lesson, 0, len(m.lessons))
	for _, lesson := range m.lessons {
		result = append(result, *lesson)
	}
	return result, nil
}

func (m *mockLessonRepo) Create(ctx context.Context, lesson *models.Lesson) error {
	lesson.ID = "new-lesson"
	m.createdID = lesson.ID
	if m.lessons == nil {
		m.lessons = map[string]*models.Lesson{}
	}
	stored := *lesson
	m.lessons[lesson.ID] = &stored
	return nil
}

func (m *mockLessonRepo) Update(ctx context.Context, id string, fields map[string]any) error {
	m.updateFields = fields
	return nil
}

func (m *mockLessonRepo) Schedule(ctx context.Context, id string, publishAt time.Time) error {
	m.scheduledAt = &publishAt
	if lesson, ok := m.lessons[id]; ok {
		lesson.Status = models.LessonStatusScheduled
		lesson.PublishAt = &publishAt
	}
	return nil
}

func (m *mockLessonRepo) Archive(ctx context.Context, id string) error {
	m.archived = true
	if lesson, ok := m.lessons[id]; ok {
		lesson.Status = models.LessonStatusArchived
	}
	return nil
}

func (m *mockLessonRepo) Delete(ctx context.Context, id string) error {
	m.deleted = true
	return nil
}

// mockTermLookup is a mock implementation of LessonTermRepository
type mockTermLookup struct {
	term *models.Term
}

func (m *mockTermLookup) GetByID(ctx context.Context, id string) (*models.Term, error) {
	if m.term == nil {
		return nil, apperrors.NotFound("term")
	}
	return m.term, nil
}

// mockLessonAssetLookup is a mock implementation of LessonAssetRepository
type mockLessonAssetLookup struct {
	assets []models.Asset
}

func (m *mockLessonAssetLookup) GetLessonAssets(ctx context.Context, lessonID string) ([]models.Asset, error) {
	return m.assets, nil
}

func validCreateRequest() *models.CreateLessonRequest {
	duration := int64(300000)
	return &models.CreateLessonRequest{
		TermID:                    "t1",
		LessonNumber:              1,
		Title:                     "Intro",
		ContentType:               models.ContentTypeVideo,
		DurationMs:                &duration,
		ContentLanguagePrimary:    "en",
		ContentLanguagesAvailable: models.StringList{"en", "ja"},
		ContentURLsByLanguage:     models.URLMap{"en": "https://cdn/intro-en.mp4", "ja": "https://cdn/intro-ja.mp4"},
	}
}

func TestLessonService_CreateLesson(t *testing.T) {
	t.Run("creates draft by default", func(t *testing.T) {
		repo := &mockLessonRepo{}
		svc := NewLessonService(repo, &mockTermLookup{term: &models.Term{ID: "t1"}}, &mockLessonAssetLookup{})

		lesson, err := svc.CreateLesson(context.Background(), validCreateRequest())

		assert.NoError(t, err)
		assert.Equal(t, models.LessonStatusDraft, lesson.Status)
		assert.Nil(t, lesson.PublishAt)
	})

	t.Run("creates scheduled with publish time", func(t *testing.T) {
		publishAt := time.Now().Add(time.Hour)
		req := validCreateRequest()
		req.Status = models.LessonStatusScheduled
		req.PublishAt = &publishAt

		repo := &mockLessonRepo{}
		svc := NewLessonService(repo, &mockTermLookup{term: &models.Term{ID: "t1"}}, &mockLessonAssetLookup{})

		lesson, err := svc.CreateLesson(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, models.LessonStatusScheduled, lesson.Status)
		assert.NotNil(t, lesson.PublishAt)
	})

	t.Run("scheduled requires publish time", func(t *testing.T) {
		req := validCreateRequest()
		req.Status = models.LessonStatusScheduled

		svc := NewLessonService(&mockLessonRepo{}, &mockTermLookup{term: &models.Term{ID: "t1"}}, &mockLessonAssetLookup{})

		_, err := svc.CreateLesson(context.Background(), req)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("video requires duration", func(t *testing.T) {
		req := validCreateRequest()
		req.DurationMs = nil

		svc := NewLessonService(&mockLessonRepo{}, &mockTermLookup{term: &models.Term{ID: "t1"}}, &mockLessonAssetLookup{})

		_, err := svc.CreateLesson(context.Background(), req)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("article needs no duration", func(t *testing.T) {
		req := validCreateRequest()
		req.ContentType = models.ContentTypeArticle
		req.DurationMs = nil

		svc := NewLessonService(&mockLessonRepo{}, &mockTermLookup{term: &models.Term{ID: "t1"}}, &mockLessonAssetLookup{})

		lesson, err := svc.CreateLesson(context.Background(), req)

		assert.NoError(t, err)
		assert.Equal(t, models.ContentTypeArticle, lesson.ContentType)
	})

	t.Run("primary language must be available", func(t *testing.T) {
		req := validCreateRequest()
		req.ContentLanguagePrimary = "fr"

		svc := NewLessonService(&mockLessonRepo{}, &mockTermLookup{term: &models.Term{ID: "t1"}}, &mockLessonAssetLookup{})

		_, err := svc.CreateLesson(context.Background(), req)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("missing term", func(t *testing.T) {
		svc := NewLessonService(&mockLessonRepo{}, &mockTermLookup{}, &mockLessonAssetLookup{})

		_, err := svc.CreateLesson(context.Background(), validCreateRequest())

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestLessonService_UpdateLesson(t *testing.T) {
	duration := int64(300000)
	base := func() map[string]*models.Lesson {
		return map[string]*models.Lesson{
			"l1": {
				ID:          "l1",
				Status:      models.LessonStatusDraft,
				ContentType: models.ContentTypeVideo,
				DurationMs:  &duration,
			},
		}
	}

	t.Run("updates title", func(t *testing.T) {
		repo := &mockLessonRepo{lessons: base()}
		svc := NewLessonService(repo, &mockTermLookup{}, &mockLessonAssetLookup{})

		_, err := svc.UpdateLesson(context.Background(), "l1", &models.UpdateLessonRequest{Title: "Renamed"})

		assert.NoError(t, err)
		assert.Equal(t, "Renamed", repo.updateFields["title"])
	})

	t.Run("rejects dropping duration from a video", func(t *testing.T) {
		lessons := base()
		lessons["l1"].DurationMs = nil
		repo := &mockLessonRepo{lessons: lessons}
		svc := NewLessonService(repo, &mockTermLookup{}, &mockLessonAssetLookup{})

		_, err := svc.UpdateLesson(context.Background(), "l1", &models.UpdateLessonRequest{Title: "x"})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects status change to published", func(t *testing.T) {
		repo := &mockLessonRepo{lessons: base()}
		svc := NewLessonService(repo, &mockTermLookup{}, &mockLessonAssetLookup{})

		_, err := svc.UpdateLesson(context.Background(), "l1", &models.UpdateLessonRequest{Status: models.LessonStatusPublished})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("rejects editing archived lesson status", func(t *testing.T) {
		lessons := base()
		lessons["l1"].Status = models.LessonStatusArchived
		repo := &mockLessonRepo{lessons: lessons}
		svc := NewLessonService(repo, &mockTermLookup{}, &mockLessonAssetLookup{})

		_, err := svc.UpdateLesson(context.Background(), "l1", &models.UpdateLessonRequest{Status: models.LessonStatusDraft})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("empty update", func(t *testing.T) {
		repo := &mockLessonRepo{lessons: base()}
		svc := NewLessonService(repo, &mockTermLookup{}, &mockLessonAssetLookup{})

		_, err := svc.UpdateLesson(context.Background(), "l1", &models.UpdateLessonRequest{})

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestLessonService_ScheduleLesson(t *testing.T) {
	t.Run("schedules draft lesson", func(t *testing.T) {
		repo := &mockLessonRepo{lessons: map[string]*models.Lesson{
			"l1": {ID: "l1", Status: models.LessonStatusDraft},
		}}
		svc := NewLessonService(repo, &mockTermLookup{}, &mockLessonAssetLookup{})
		publishAt := time.Now().Add(2 * time.Hour)

		lesson, err := svc.ScheduleLesson(context.Background(), "l1", publishAt)

		assert.NoError(t, err)
		assert.Equal(t, models.LessonStatusScheduled, lesson.Status)
		assert.NotNil(t, repo.scheduledAt)
	})

	t.Run("reschedules scheduled lesson", func(t *testing.T) {
		earlier := time.Now().Add(time.Hour)
		repo := &mockLessonRepo{lessons: map[string]*models.Lesson{
			"l1": {ID: "l1", Status: models.LessonStatusScheduled, PublishAt: &earlier},
		}}
		svc := NewLessonService(repo, &mockTermLookup{}, &mockLessonAssetLookup{})
		later := time.Now().Add(3 * time.Hour)

		lesson, err := svc.ScheduleLesson(context.Background(), "l1", later)

		assert.NoError(t, err)
		assert.True(t, lesson.PublishAt.Equal(later))
	})

	t.Run("cannot schedule published lesson", func(t *testing.T) {
		repo := &mockLessonRepo{lessons: map[string]*models.Lesson{
			"l1": {ID: "l1", Status: models.LessonStatusPublished},
		}}
		svc := NewLessonService(repo, &mockTermLookup{}, &mockLessonAssetLookup{})

		_, err := svc.ScheduleLesson(context.Background(), "l1", time.Now().Add(time.Hour))

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestLessonService_ArchiveLesson(t *testing.T) {
	t.Run("archives published lesson", func(t *testing.T) {
		repo := &mockLessonRepo{lessons: map[string]*models.Lesson{
			"l1": {ID: "l1", Status: models.LessonStatusPublished},
		}}
		svc := NewLessonService(repo, &mockTermLookup{}, &mockLessonAssetLookup{})

		lesson, err := svc.ArchiveLesson(context.Background(), "l1")

		assert.NoError(t, err)
		assert.Equal(t, models.LessonStatusArchived, lesson.Status)
	})

	t.Run("archiving twice fails", func(t *testing.T) {
		repo := &mockLessonRepo{lessons: map[string]*models.Lesson{
			"l1": {ID: "l1", Status: models.LessonStatusArchived},
		}}
		svc := NewLessonService(repo, &mockTermLookup{}, &mockLessonAssetLookup{})

		_, err := svc.ArchiveLesson(context.Background(), "l1")

		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
