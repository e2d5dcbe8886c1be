package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// mockPublisherRepo is a mock implementation of PublisherLessonRepository
type mockPublisherRepo struct {
	lessons      map[string]*models.Lesson
	due          []models.DueLesson
	dueErr       error
	applied      bool
	promoted     bool
	publishErr   error
	publishCalls []string
	// publishErrFor fails Publish for one specific lesson ID
	publishErrFor string
	// racePublish makes Publish behave as if a concurrent writer won: the row
	// ends up published but the conditional update reports zero rows
	racePublish bool
}

func (m *mockPublisherRepo) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	lesson, ok := m.lessons[id]
	if !ok {
		return nil, apperrors.NotFound("lesson")
	}
	copied := *lesson
	return &copied, nil
}

func (m *mockPublisherRepo) FindDueScheduled(ctx context.Context) ([]models.DueLesson, error) {
	if m.dueErr != nil {
		return nil, m.dueErr
	}
	return m.due, nil
}

func (m *mockPublisherRepo) Publish(ctx context.Context, id string, eligible []models.LessonStatus) (bool, bool, error) {
	m.publishCalls = append(m.publishCalls, id)
	if m.publishErr != nil {
		return false, false, m.publishErr
	}
	if m.publishErrFor == id {
		return false, false, errors.New("deadlock")
	}
	if m.racePublish {
		if lesson, ok := m.lessons[id]; ok {
			lesson.Status = models.LessonStatusPublished
		}
		return false, false, nil
	}
	if m.applied {
		if lesson, ok := m.lessons[id]; ok {
			lesson.Status = models.LessonStatusPublished
			now := time.Now()
			lesson.PublishedAt = &now
		}
	}
	return m.applied, m.promoted, nil
}

func newTestPublisher(repo *mockPublisherRepo) *publisherService {
	return NewPublisherService(repo, zap.NewNop())
}

func TestPublisherService_PublishNow(t *testing.T) {
	t.Run("publishes draft lesson and promotes program", func(t *testing.T) {
		repo := &mockPublisherRepo{
			lessons: map[string]*models.Lesson{
				"l1": {ID: "l1", Status: models.LessonStatusDraft},
			},
			applied:  true,
			promoted: true,
		}

		outcome, err := newTestPublisher(repo).PublishNow(context.Background(), "l1")

		assert.NoError(t, err)
		assert.True(t, outcome.Applied)
		assert.True(t, outcome.ProgramPromoted)
		assert.False(t, outcome.AlreadyPublished)
		assert.Equal(t, models.LessonStatusPublished, outcome.Lesson.Status)
	})

	t.Run("publishes scheduled lesson without promoting published program", func(t *testing.T) {
		repo := &mockPublisherRepo{
			lessons: map[string]*models.Lesson{
				"l1": {ID: "l1", Status: models.LessonStatusScheduled},
			},
			applied: true,
		}

		outcome, err := newTestPublisher(repo).PublishNow(context.Background(), "l1")

		assert.NoError(t, err)
		assert.True(t, outcome.Applied)
		assert.False(t, outcome.ProgramPromoted)
	})

	t.Run("already published lesson is a no-op", func(t *testing.T) {
		publishedAt := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
		repo := &mockPublisherRepo{
			lessons: map[string]*models.Lesson{
				"l1": {ID: "l1", Status: models.LessonStatusPublished, PublishedAt: &publishedAt},
			},
		}

		outcome, err := newTestPublisher(repo).PublishNow(context.Background(), "l1")

		assert.NoError(t, err)
		assert.True(t, outcome.AlreadyPublished)
		assert.False(t, outcome.Applied)
		assert.Empty(t, repo.publishCalls)
		assert.Equal(t, &publishedAt, outcome.Lesson.PublishedAt)
	})

	t.Run("archived lesson cannot be published", func(t *testing.T) {
		repo := &mockPublisherRepo{
			lessons: map[string]*models.Lesson{
				"l1": {ID: "l1", Status: models.LessonStatusArchived},
			},
		}

		outcome, err := newTestPublisher(repo).PublishNow(context.Background(), "l1")

		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("missing lesson", func(t *testing.T) {
		repo := &mockPublisherRepo{lessons: map[string]*models.Lesson{}}

		outcome, err := newTestPublisher(repo).PublishNow(context.Background(), "l1")

		assert.Nil(t, outcome)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("concurrent publish reports already published", func(t *testing.T) {
		// The pre-read sees scheduled, the conditional update does not apply
		// because another writer got there first, and the re-read sees
		// published.
		repo := &mockPublisherRepo{
			lessons: map[string]*models.Lesson{
				"l1": {ID: "l1", Status: models.LessonStatusScheduled},
			},
			racePublish: true,
		}

		outcome, err := newTestPublisher(repo).PublishNow(context.Background(), "l1")

		assert.NoError(t, err)
		assert.True(t, outcome.AlreadyPublished)
		assert.False(t, outcome.Applied)
		assert.Equal(t, []string{"l1"}, repo.publishCalls)
	})
}

func TestPublisherService_ProcessDue(t *testing.T) {
	t.Run("publishes all due lessons", func(t *testing.T) {
		repo := &mockPublisherRepo{
			lessons: map[string]*models.Lesson{
				"l1": {ID: "l1", Status: models.LessonStatusScheduled},
				"l2": {ID: "l2", Status: models.LessonStatusScheduled},
			},
			due: []models.DueLesson{
				{ID: "l1", Title: "Lesson 1", PublishAt: time.Now().Add(-time.Minute)},
				{ID: "l2", Title: "Lesson 2", PublishAt: time.Now().Add(-time.Second)},
			},
			applied: true,
		}

		stats, err := newTestPublisher(repo).ProcessDue(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.PublishRunStats{Processed: 2, Succeeded: 2}, stats)
		assert.Equal(t, []string{"l1", "l2"}, repo.publishCalls)
	})

	t.Run("lessons taken by another instance count as skipped", func(t *testing.T) {
		repo := &mockPublisherRepo{
			due: []models.DueLesson{
				{ID: "l1", Title: "Lesson 1", PublishAt: time.Now().Add(-time.Minute)},
			},
			applied: false,
		}

		stats, err := newTestPublisher(repo).ProcessDue(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.PublishRunStats{Processed: 1, Skipped: 1}, stats)
	})

	t.Run("one failure does not abort the batch", func(t *testing.T) {
		repo := &mockPublisherRepo{
			lessons: map[string]*models.Lesson{
				"l1": {ID: "l1", Status: models.LessonStatusScheduled},
				"l2": {ID: "l2", Status: models.LessonStatusScheduled},
				"l3": {ID: "l3", Status: models.LessonStatusScheduled},
			},
			due: []models.DueLesson{
				{ID: "l1", Title: "Lesson 1", PublishAt: time.Now().Add(-3 * time.Minute)},
				{ID: "l2", Title: "Lesson 2", PublishAt: time.Now().Add(-2 * time.Minute)},
				{ID: "l3", Title: "Lesson 3", PublishAt: time.Now().Add(-time.Minute)},
			},
			applied:       true,
			publishErrFor: "l2",
		}

		stats, err := newTestPublisher(repo).ProcessDue(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.PublishRunStats{Processed: 3, Succeeded: 2, Failed: 1}, stats)
		assert.Equal(t, []string{"l1", "l2", "l3"}, repo.publishCalls)
	})

	t.Run("empty run", func(t *testing.T) {
		repo := &mockPublisherRepo{}

		stats, err := newTestPublisher(repo).ProcessDue(context.Background())

		assert.NoError(t, err)
		assert.Equal(t, models.PublishRunStats{}, stats)
	})

	t.Run("query failure aborts the run", func(t *testing.T) {
		repo := &mockPublisherRepo{dueErr: errors.New("connection refused")}

		_, err := newTestPublisher(repo).ProcessDue(context.Background())

		assert.Error(t, err)
	})
}
