package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

type termRepository struct {
	db *sql.DB
}

// NewTermRepository creates a new term repository
func NewTermRepository(db *sql.DB) *termRepository {
	return &termRepository{
		db: db,
	}
}

// GetByID retrieves a term with its program title
func (r *termRepository) GetByID(ctx context.Context, id string) (*models.Term, error) {
	query := `
		SELECT t.id, t.program_id, t.term_number, t.title, t.created_at, p.title
		FROM terms t
		INNER JOIN programs p ON p.id = t.program_id
		WHERE t.id = ?
		LIMIT 1
	`

	var term models.Term
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&term.ID,
		&term.ProgramID,
		&term.TermNumber,
		&term.Title,
		&term.CreatedAt,
		&term.ProgramTitle,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("term")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get term by id: %w", err)
	}

	return &term, nil
}

// GetAll retrieves terms with lesson counts, optionally filtered by program
func (r *termRepository) GetAll(ctx context.Context, programID string) ([]models.TermListItem, error) {
	query := `
		SELECT t.id, t.program_id, t.term_number, t.title, t.created_at, p.title,
		       COUNT(l.id) AS lesson_count,
		       COUNT(CASE WHEN l.status = 'published' THEN 1 END) AS published_lesson_count
		FROM terms t
		INNER JOIN programs p ON p.id = t.program_id
		LEFT JOIN lessons l ON l.term_id = t.id
	`

	var args []any
	if programID != "" {
		query += ` WHERE t.program_id = ?`
		args = append(args, programID)
	}

	query += ` GROUP BY t.id, t.program_id, t.term_number, t.title, t.created_at, p.title`
	query += ` ORDER BY t.program_id, t.term_number`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query terms: %w", err)
	}
	defer rows.Close()

	var terms []models.TermListItem
	for rows.Next() {
		var term models.TermListItem
		err := rows.Scan(
			&term.ID,
			&term.ProgramID,
			&term.TermNumber,
			&term.Title,
			&term.CreatedAt,
			&term.ProgramTitle,
			&term.LessonCount,
			&term.PublishedLessonCount,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan term: %w", err)
		}
		terms = append(terms, term)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return terms, nil
}

// GetLessons retrieves all lessons of a term ordered by lesson number
func (r *termRepository) GetLessons(ctx context.Context, termID string) ([]models.Lesson, error) {
	query := `
		SELECT ` + lessonColumns + `
		FROM lessons
		WHERE term_id = ?
		ORDER BY lesson_number
	`

	rows, err := r.db.QueryContext(ctx, query, termID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lessons: %w", err)
	}
	defer rows.Close()

	var lessons []models.Lesson
	for rows.Next() {
		lesson, err := scanLesson(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan lesson: %w", err)
		}
		lessons = append(lessons, *lesson)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return lessons, nil
}

// Create creates a new term and assigns its ID
func (r *termRepository) Create(ctx context.Context, term *models.Term) error {
	term.ID = uuid.New().String()

	query := `
		INSERT INTO terms (id, program_id, term_number, title)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query, term.ID, term.ProgramID, term.TermNumber, term.Title)
	if err != nil {
		return fmt.Errorf("failed to create term: %w", apperrors.FromSQL(err))
	}

	return nil
}

// Update updates a term (partial update)
func (r *termRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return apperrors.Validation("no fields to update")
	}

	setParts := make([]string, 0, len(fields))
	args := make([]any, 0, len(fields))
	for _, column := range []string{"term_number", "title"} {
		if value, ok := fields[column]; ok {
			setParts = append(setParts, column+" = ?")
			args = append(args, value)
		}
	}

	query := fmt.Sprintf(`UPDATE terms SET %s WHERE id = ?`, strings.Join(setParts, ", "))
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update term: %w", apperrors.FromSQL(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("term")
	}

	return nil
}

// Delete deletes a term by ID
func (r *termRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM terms WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete term: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("term")
	}

	return nil
}
