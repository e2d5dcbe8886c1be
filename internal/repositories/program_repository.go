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

type programRepository struct {
	db *sql.DB
}

// NewProgramRepository creates a new program repository
func NewProgramRepository(db *sql.DB) *programRepository {
	return &programRepository{
		db: db,
	}
}

// GetByID retrieves a program by its ID
func (r *programRepository) GetByID(ctx context.Context, id string) (*models.Program, error) {
	query := `
		SELECT id, title, description, language_primary, languages_available,
		       status, published_at, created_at, updated_at
		FROM programs
		WHERE id = ?
		LIMIT 1
	`

	var program models.Program
	var publishedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&program.ID,
		&program.Title,
		&program.Description,
		&program.LanguagePrimary,
		&program.LanguagesAvailable,
		&program.Status,
		&publishedAt,
		&program.CreatedAt,
		&program.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, apperrors.NotFound("program")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get program by id: %w", err)
	}

	if publishedAt.Valid {
		program.PublishedAt = &publishedAt.Time
	}
	return &program, nil
}

// GetAll retrieves programs with optional filters
func (r *programRepository) GetAll(ctx context.Context, filter models.ProgramFilter) ([]models.Program, error) {
	query := `
		SELECT DISTINCT p.id, p.title, p.description, p.language_primary,
		       p.languages_available, p.status, p.published_at, p.created_at, p.updated_at
		FROM programs p
	`

	var conditions []string
	var args []any

	if filter.TopicID != "" {
		query += ` INNER JOIN program_topics pt ON pt.program_id = p.id`
		conditions = append(conditions, "pt.topic_id = ?")
		args = append(args, filter.TopicID)
	}
	if filter.Status != nil {
		conditions = append(conditions, "p.status = ?")
		args = append(args, string(*filter.Status))
	}
	if filter.Language != "" {
		conditions = append(conditions, "p.language_primary = ?")
		args = append(args, filter.Language)
	}

	if len(conditions) > 0 {
		query += ` WHERE ` + strings.Join(conditions, " AND ")
	}

	query += ` ORDER BY p.published_at IS NULL, p.published_at DESC, p.created_at DESC`
	query += ` LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query programs: %w", err)
	}
	defer rows.Close()

	var programs []models.Program
	for rows.Next() {
		var program models.Program
		var publishedAt sql.NullTime
		err := rows.Scan(
			&program.ID,
			&program.Title,
			&program.Description,
			&program.LanguagePrimary,
			&program.LanguagesAvailable,
			&program.Status,
			&publishedAt,
			&program.CreatedAt,
			&program.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan program: %w", err)
		}
		if publishedAt.Valid {
			program.PublishedAt = &publishedAt.Time
		}
		programs = append(programs, program)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return programs, nil
}

// GetTermSummaries retrieves terms of a program with lesson counts
func (r *programRepository) GetTermSummaries(ctx context.Context, programID string) ([]models.ProgramTermSummary, error) {
	query := `
		SELECT t.id, t.term_number, t.title, t.created_at,
		       COUNT(l.id) AS lesson_count,
		       COUNT(CASE WHEN l.status = 'published' THEN 1 END) AS published_lesson_count
		FROM terms t
		LEFT JOIN lessons l ON l.term_id = t.id
		WHERE t.program_id = ?
		GROUP BY t.id, t.term_number, t.title, t.created_at
		ORDER BY t.term_number
	`

	rows, err := r.db.QueryContext(ctx, query, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to query term summaries: %w", err)
	}
	defer rows.Close()

	var terms []models.ProgramTermSummary
	for rows.Next() {
		var term models.ProgramTermSummary
		err := rows.Scan(&term.ID, &term.TermNumber, &term.Title, &term.CreatedAt,
			&term.LessonCount, &term.PublishedLessonCount)
		if err != nil {
			return nil, fmt.Errorf("failed to scan term summary: %w", err)
		}
		terms = append(terms, term)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return terms, nil
}

// Create creates a program and attaches its topics in one transaction
func (r *programRepository) Create(ctx context.Context, program *models.Program, topicIDs []string) error {
	program.ID = uuid.New().String()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO programs (id, title, description, language_primary, languages_available, status)
		VALUES (?, ?, ?, ?, ?, 'draft')
	`

	_, err = tx.ExecContext(ctx, query,
		program.ID,
		program.Title,
		program.Description,
		program.LanguagePrimary,
		program.LanguagesAvailable,
	)
	if err != nil {
		return fmt.Errorf("failed to create program: %w", apperrors.FromSQL(err))
	}

	for _, topicID := range topicIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO program_topics (program_id, topic_id) VALUES (?, ?)`,
			program.ID, topicID,
		)
		if err != nil {
			return fmt.Errorf("failed to attach topic: %w", apperrors.FromSQL(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	program.Status = models.ProgramStatusDraft
	return nil
}

// Update updates a program (partial update, only set fields present in the map)
func (r *programRepository) Update(ctx context.Context, id string, fields map[string]any) error {
	if len(fields) == 0 {
		return apperrors.Validation("no fields to update")
	}

	setParts := make([]string, 0, len(fields)+1)
	args := make([]any, 0, len(fields)+1)
	for _, column := range []string{"title", "description", "language_primary", "languages_available"} {
		if value, ok := fields[column]; ok {
			setParts = append(setParts, column+" = ?")
			args = append(args, value)
		}
	}
	setParts = append(setParts, "updated_at = CURRENT_TIMESTAMP")

	query := fmt.Sprintf(`
		UPDATE programs
		SET %s
		WHERE id = ?
	`, strings.Join(setParts, ", "))
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update program: %w", apperrors.FromSQL(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("program")
	}

	return nil
}

// SetTopics replaces the topics attached to a program
func (r *programRepository) SetTopics(ctx context.Context, programID string, topicIDs []string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM program_topics WHERE program_id = ?`, programID); err != nil {
		return fmt.Errorf("failed to detach topics: %w", err)
	}

	for _, topicID := range topicIDs {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO program_topics (program_id, topic_id) VALUES (?, ?)`,
			programID, topicID,
		)
		if err != nil {
			return fmt.Errorf("failed to attach topic: %w", apperrors.FromSQL(err))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete deletes a program by ID (child rows cascade via foreign keys)
func (r *programRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM programs WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete program: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("program")
	}

	return nil
}
