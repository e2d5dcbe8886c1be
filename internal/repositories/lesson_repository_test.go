package repositories

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

func newLessonRepoMock(t *testing.T) (*lessonRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewLessonRepository(db), mock
}

func TestLessonRepository_Publish(t *testing.T) {
	scheduledOnly := []models.LessonStatus{models.LessonStatusScheduled}
	manual := []models.LessonStatus{models.LessonStatusDraft, models.LessonStatusScheduled}

	t.Run("publishes and promotes draft program", func(t *testing.T) {
		repo, mock := newLessonRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE lessons`).
			WithArgs("l1", "scheduled").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE programs p`).
			WithArgs("l1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		applied, promoted, err := repo.Publish(context.Background(), "l1", scheduledOnly)

		assert.NoError(t, err)
		assert.True(t, applied)
		assert.True(t, promoted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("program already published is not promoted again", func(t *testing.T) {
		repo, mock := newLessonRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE lessons`).
			WithArgs("l1", "draft", "scheduled").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE programs p`).
			WithArgs("l1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		applied, promoted, err := repo.Publish(context.Background(), "l1", manual)

		assert.NoError(t, err)
		assert.True(t, applied)
		assert.False(t, promoted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ineligible row reports applied=false without touching programs", func(t *testing.T) {
		repo, mock := newLessonRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE lessons`).
			WithArgs("l1", "scheduled").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		applied, promoted, err := repo.Publish(context.Background(), "l1", scheduledOnly)

		assert.NoError(t, err)
		assert.False(t, applied)
		assert.False(t, promoted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("program promotion failure rolls back the lesson update", func(t *testing.T) {
		repo, mock := newLessonRepoMock(t)

		mock.ExpectBegin()
		mock.ExpectExec(`UPDATE lessons`).
			WithArgs("l1", "scheduled").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`UPDATE programs p`).
			WithArgs("l1").
			WillReturnError(errors.New("lock wait timeout"))
		mock.ExpectRollback()

		applied, _, err := repo.Publish(context.Background(), "l1", scheduledOnly)

		assert.Error(t, err)
		assert.False(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestLessonRepository_FindDueScheduled(t *testing.T) {
	t.Run("returns due lessons oldest first", func(t *testing.T) {
		repo, mock := newLessonRepoMock(t)

		first := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
		second := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
		rows := sqlmock.NewRows([]string{"id", "term_id", "title", "publish_at"}).
			AddRow("l1", "t1", "Lesson 1", first).
			AddRow("l2", "t1", "Lesson 2", second)

		mock.ExpectQuery(`WHERE status = 'scheduled' AND publish_at <= NOW\(\)`).
			WillReturnRows(rows)

		due, err := repo.FindDueScheduled(context.Background())

		assert.NoError(t, err)
		require.Len(t, due, 2)
		assert.Equal(t, "l1", due[0].ID)
		assert.True(t, due[0].PublishAt.Before(due[1].PublishAt))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no due lessons", func(t *testing.T) {
		repo, mock := newLessonRepoMock(t)

		mock.ExpectQuery(`WHERE status = 'scheduled' AND publish_at <= NOW\(\)`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "term_id", "title", "publish_at"}))

		due, err := repo.FindDueScheduled(context.Background())

		assert.NoError(t, err)
		assert.Empty(t, due)
	})
}

func TestLessonRepository_Schedule(t *testing.T) {
	repo, mock := newLessonRepoMock(t)
	publishAt := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectExec(`SET status = 'scheduled', publish_at = \?, updated_at = CURRENT_TIMESTAMP`).
		WithArgs(publishAt, "l1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Schedule(context.Background(), "l1", publishAt)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLessonRepository_Archive_NotFound(t *testing.T) {
	repo, mock := newLessonRepoMock(t)

	mock.ExpectExec(`SET status = 'archived', updated_at = CURRENT_TIMESTAMP`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Archive(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLessonRepository_Delete(t *testing.T) {
	repo, mock := newLessonRepoMock(t)

	mock.ExpectExec(`DELETE FROM lessons WHERE id = \?`).
		WithArgs("l1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), "l1")

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
