package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// publishedProgramExists is the visibility predicate for programs: published
// status plus at least one published lesson under any of its terms.
const publishedProgramExists = `
	p.status = 'published'
	AND EXISTS (
		SELECT 1 FROM lessons l
		INNER JOIN terms t ON t.id = l.term_id
		WHERE t.program_id = p.id AND l.status = 'published'
	)`

type catalogRepository struct {
	db *sql.DB
}

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *sql.DB) *catalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// ListPublished retrieves a page of visible programs ordered by
// (published_at DESC, id DESC). The composite cursor keeps pagination stable
// when two programs share a published_at timestamp.
func (r *catalogRepository) ListPublished(ctx context.Context, language, topicID string, cursorPublishedAt *time.Time, cursorID string, limit int) ([]models.CatalogProgram, error) {
	query := `
		SELECT p.id, p.title, p.description, p.language_primary, p.languages_available,
		       p.published_at, p.created_at, p.updated_at
		FROM programs p
		WHERE ` + publishedProgramExists

	var args []any

	if cursorPublishedAt != nil {
		query += ` AND (p.published_at < ? OR (p.published_at = ? AND p.id < ?))`
		args = append(args, *cursorPublishedAt, *cursorPublishedAt, cursorID)
	}
	if language != "" {
		query += ` AND p.language_primary = ?`
		args = append(args, language)
	}
	if topicID != "" {
		query += ` AND EXISTS (
			SELECT 1 FROM program_topics pt
			WHERE pt.program_id = p.id AND pt.topic_id = ?
		)`
		args = append(args, topicID)
	}

	query += ` ORDER BY p.published_at DESC, p.id DESC LIMIT ?`
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query published programs: %w", err)
	}
	defer rows.Close()

	var programs []models.CatalogProgram
	for rows.Next() {
		var program models.CatalogProgram
		err := rows.Scan(
			&program.ID,
			&program.Title,
			&program.Description,
			&program.LanguagePrimary,
			&program.LanguagesAvailable,
			&program.PublishedAt,
			&program.CreatedAt,
			&program.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan published program: %w", err)
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return programs, nil
}

// GetPublishedProgram retrieves a single visible program. Programs that exist
// but fail the visibility predicate are reported as not found.
func (r *catalogRepository) GetPublishedProgram(ctx context.Context, id string) (*models.CatalogProgram, error) {
	query := `
		SELECT p.id, p.title, p.description, p.language_primary, p.languages_available,
		       p.published_at, p.created_at, p.updated_at
		FROM programs p
		WHERE p.id = ? AND ` + publishedProgramExists

	var program models.CatalogProgram
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&program.ID,
		&program.Title,
		&program.Description,
		&program.LanguagePrimary,
		&program.LanguagesAvailable,
		&program.PublishedAt,
		&program.CreatedAt,
		&program.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("program")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get published program: %w", err)
	}

	return &program, nil
}

// GetTerms retrieves the terms of a program ordered by term number
func (r *catalogRepository) GetTerms(ctx context.Context, programID string) ([]models.CatalogTerm, error) {
	query := `
		SELECT id, term_number, title
		FROM terms
		WHERE program_id = ?
		ORDER BY term_number
	`

	rows, err := r.db.QueryContext(ctx, query, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to query terms: %w", err)
	}
	defer rows.Close()

	var terms []models.CatalogTerm
	for rows.Next() {
		var term models.CatalogTerm
		if err := rows.Scan(&term.ID, &term.TermNumber, &term.Title); err != nil {
			return nil, fmt.Errorf("failed to scan term: %w", err)
		}
		terms = append(terms, term)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return terms, nil
}

// GetPublishedLessonsByTerm retrieves the published lessons of a term ordered
// by lesson number
func (r *catalogRepository) GetPublishedLessonsByTerm(ctx context.Context, termID string) ([]models.CatalogLesson, error) {
	query := `
		SELECT id, lesson_number, title, content_type, duration_ms, is_paid,
		       content_language_primary, content_languages_available, content_urls_by_language,
		       subtitle_languages, subtitle_urls_by_language, published_at
		FROM lessons
		WHERE term_id = ? AND status = 'published'
		ORDER BY lesson_number
	`

	rows, err := r.db.QueryContext(ctx, query, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to query published lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.CatalogLesson
	for rows.Next() {
		var lesson models.CatalogLesson
		var duration sql.NullInt64
		err := rows.Scan(
			&lesson.ID,
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
			&lesson.PublishedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan published lesson: %w", err)
		}
		if duration.Valid {
			lesson.DurationMs = &duration.Int64
		}
		lessons = append(lessons, lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// GetPublishedLesson retrieves a single published lesson with its term and
// program titles. Unpublished lessons are reported as not found.
func (r *catalogRepository) GetPublishedLesson(ctx context.Context, id string) (*models.CatalogLesson, error) {
	query := `
		SELECT l.id, l.term_id, l.lesson_number, l.title, l.content_type, l.duration_ms,
		       l.is_paid, l.content_language_primary, l.content_languages_available,
		       l.content_urls_by_language, l.subtitle_languages, l.subtitle_urls_by_language,
		       l.published_at, t.title, t.program_id, p.title
		FROM lessons l
		INNER JOIN terms t ON t.id = l.term_id
		INNER JOIN programs p ON p.id = t.program_id
		WHERE l.id = ? AND l.status = 'published'
	`

	var lesson models.CatalogLesson
	var duration sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
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
		&lesson.PublishedAt,
		&lesson.TermTitle,
		&lesson.ProgramID,
		&lesson.ProgramTitle,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("lesson")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get published lesson: %w", err)
	}

	if duration.Valid {
		lesson.DurationMs = &duration.Int64
	}
	return &lesson, nil
}
