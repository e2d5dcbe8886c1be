package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// lessonColumns is the column list shared by lesson queries
const lessonColumns = `id, term_id, lesson_number, title, content_type, duration_ms, is_paid,
		content_language_primary, content_languages_available, content_urls_by_language,
		subtitle_languages, subtitle_urls_by_language, status, publish_at, published_at,
		created_at, updated_at`

type lessonRepository struct {
	db *sql.DB
}

// NewLessonRepository creates a new lesson repository
func NewLessonRepository(db *sql.DB) *lessonRepository {
	return &lessonRepository{
		db: db,
	}
}

type lessonScanner interface {
	Scan(dest ...any) error
}

func scanLesson(row lessonScanner) (*models.Lesson, error) {
	var lesson models.Lesson
	var duration sql.NullInt64
	var publishAt, publishedAt sql.NullTime

	err := row.Scan(
		&lesson.ID,
		&lesson.TermID,
		&lesson.LessonNumber,
		&lesson.Title,
		&lesson.ContentType,
		&duration,
		&lesson.IsPaid,
		&lesson.ContentLanguagePrimary,
		&lesson.ContentLanguagesAvailable,
		&lesson.ContentURLsByLanguage,
		&lesson.SubtitleLanguages,
		&lesson.SubtitleURLsByLanguage,
		&lesson.Status,
		&publishAt,
		&publishedAt,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if duration.Valid {
		lesson.DurationMs = &duration.Int64
	}
	if publishAt.Valid {
		lesson.PublishAt = &publishAt.Time
	}
	if publishedAt.Valid {
		lesson.PublishedAt = &publishedAt.Time
	}
	return &lesson, nil
}

// GetByID retrieves a lesson by its ID
func (r *lessonRepository) GetByID(ctx context.Context, id string) (*models.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE id = ?
		LIMIT 1
	`

	lesson, err := scanLesson(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("lesson")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get lesson by id: %w", err)
	}

	return lesson, nil
}

// GetAll retrieves lessons with optional filters, joined with term and program titles
func (r *lessonRepository) GetAll(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error) {
	query := `
		SELECT l.id, l.term_id, l.lesson_number, l.title, l.content_type, l.duration_ms,
		       l.is_paid, l.content_language_primary, l.content_languages_available,
		       l.status, l.publish_at, l.published_at, l.created_at, l.updated_at,
		       t.title, t.program_id, p.title
		FROM lessons l
		INNER JOIN terms t ON t.id = l.term_id
		INNER JOIN programs p ON p.id = t.program_id
	`

	var conditions []string
	var args []any

	if filter.TermID != "" {
		conditions = append(conditions, "l.term_id = ?")
		args = append(args, filter.TermID)
	}
	if filter.Status != nil {
		conditions = append(conditions, "l.status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.ContentType != nil {
		conditions = append(conditions, "l.content_type = ?")
		args = append(args, string(*filter.ContentType))
	}

	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}

	query += ` ORDER BY t.program_id, t.term_number, l.lesson_number`
	query += ` LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		var lesson models.Lesson
		var duration sql.NullInt64
		var publishAt, publishedAt sql.NullTime
		err := rows.Scan(
			&lesson.ID,
			&lesson.TermID,
			&lesson.LessonNumber,
			&lesson.Title,
			&lesson.ContentType,
			&duration,
			&lesson.IsPaid,
			&lesson.ContentLanguagePrimary,
			&lesson.ContentLanguagesAvailable,
			&lesson.Status,
			&publishAt,
			&publishedAt,
			&lesson.CreatedAt,
			&lesson.UpdatedAt,
			&lesson.TermTitle,
			&lesson.ProgramID,
			&lesson.ProgramTitle,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		if duration.Valid {
			lesson.DurationMs = &duration.Int64
		}
		if publishAt.Valid {
			lesson.PublishAt = &publishAt.Time
		}
		if publishedAt.Valid {
			lesson.PublishedAt = &publishedAt.Time
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// Create creates a new lesson and assigns its ID
func (r *lessonRepository) Create(ctx context.Context, lesson *models.Lesson) error {
	lesson.ID = uuid.New().String()

	query := `
		INSERT INTO lessons (
			id, term_id, lesson_number, title, content_type, duration_ms, is_paid,
			content_language_primary, content_languages_available, content_urls_by_language,
			subtitle_languages, subtitle_urls_by_language, status, publish_at
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		lesson.ID,
		lesson.TermID,
		lesson.LessonNumber,
		lesson.Title,
		string(lesson.ContentType),
		lesson.DurationMs,
		lesson.IsPaid,
		lesson.ContentLanguagePrimary,
		lesson.ContentLanguagesAvailable,
		lesson.ContentURLsByLanguage,
		lesson.SubtitleLanguages,
		lesson.SubtitleURLsByLanguage,
		string(lesson.Status),
		lesson.PublishAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create lesson: %w", apperrors.FromSQL(err))
	}

	return nil
}

// Update updates a lesson (partial update, only set fields present in the map)
func (r *lessonRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return apperrors.Validation("no fields to update")
	}

	setParts := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)
	for _, column := range []string{
		"title", "content_type", "duration_ms", "is_paid",
		"content_language_primary", "content_languages_available", "content_urls_by_language",
		"subtitle_languages", "subtitle_urls_by_language", "status", "publish_at",
	} {
		if value, ok := fields[column]; ok {
			setParts = append(setParts, column+" = ?")
			args = append(args, value)
		}
	}
	setParts = append(setParts, "updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
		UPDATE lessons
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update lesson: %w", apperrors.FromSQL(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("lesson")
	}

	return nil
}

// Schedule moves a lesson into the scheduled state with the given publish time
func (r *lessonRepository) Schedule(ctx context.Context, id string, publishAt time.Time) error {
	query := `
		UPDATE lessons
		SET status = 'scheduled', publish_at = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, publishAt, id)
	if err != nil {
		return fmt.Errorf("failed to schedule lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("lesson")
	}

	return nil
}

// Archive moves a lesson into the terminal archived state
func (r *lessonRepository) Archive(ctx context.Context, id string) error {
	query := `
		UPDATE lessons
		SET status = 'archived', updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to archive lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("lesson")
	}

	return nil
}

// Delete deletes a lesson by ID
func (r *lessonRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM lessons WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("lesson")
	}

	return nil
}

// FindDueScheduled retrieves scheduled lessons whose publish time has passed,
// oldest first
func (r *lessonRepository) FindDueScheduled(ctx context.Context) ([]models.DueLesson, error) {
	query := `
		SELECT id, term_id, title, publish_at
		FROM lessons
		WHERE status = 'scheduled' AND publish_at <= NOW()
		ORDER BY publish_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query due lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.DueLesson
	for rows.Next() {
		var lesson models.DueLesson
		if err := rows.Scan(&lesson.ID, &lesson.TermID, &lesson.Title, &lesson.PublishAt); err != nil {
			return nil, fmt.Errorf("failed to scan due lesson: %w", err)
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// Publish transitions a lesson into the published state and promotes its
// owning program from draft in the same transaction. It reports whether the
// lesson update applied and whether the program was promoted.
//
// The lesson update is conditioned on the currently observed status being in
// "eligible", so a concurrent publish of the same row affects zero rows here
// and the call reports applied=false instead of erroring. published_at is
// only assigned on first publication.
func (r *lessonRepository) Publish(ctx context.Context, id string, eligible []models.LessonStatus) (applied, programPromoted bool, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	placeholders := make([]string, len(eligible))
	args := []any{id}
	for i, status := range eligible {
		placeholders[i] = "?"
		args = append(args, string(status))
	}

	lessonQuery := fmt.Sprintf(`
		UPDATE lessons
		SET status = 'published',
		    published_at = COALESCE(published_at, CURRENT_TIMESTAMP),
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND status IN (%s)
	`, strings.Join(placeholders, ", "))

	result, err := tx.ExecContext(ctx, lessonQuery, args...)
	if err != nil {
		return false, false, fmt.Errorf("failed to publish lesson: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		// Row no longer eligible: published or archived by someone else
		return false, false, nil
	}

	// Promote the owning program if it is still draft. Guarded the same way,
	// so this is a no-op when the program is already published.
	programQuery := `
		UPDATE programs p
		INNER JOIN terms t ON t.program_id = p.id
		INNER JOIN lessons l ON l.term_id = t.id
		SET p.status = 'published',
		    p.published_at = COALESCE(p.published_at, CURRENT_TIMESTAMP),
		    p.updated_at = CURRENT_TIMESTAMP
		WHERE l.id = ? AND p.status = 'draft'
	`

	programResult, err := tx.ExecContext(ctx, programQuery, id)
	if err != nil {
		return false, false, fmt.Errorf("failed to promote program: %w", err)
	}

	programRows, err := programResult.RowsAffected()
	if err != nil {
		return false, false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, false, fmt.Errorf("failed to commit publish transaction: %w", err)
	}

	return true, programRows > 0, nil
}
