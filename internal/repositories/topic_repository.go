package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

type topicRepository struct {
	db *sql.DB
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *sql.DB) *topicRepository {
	return &topicRepository{
		db: db,
	}
}

// GetAll retrieves all topics ordered by name
func (r *topicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	query := `SELECT id, name, created_at FROM topics ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query topics: %w", err)
	}
	defer rows.Close()

	var topics []models.Topic
	for rows.Next() {
		var topic models.Topic
		if err := rows.Scan(&topic.ID, &topic.Name, &topic.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, topic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return topics, nil
}

// GetByProgramID retrieves the topics attached to a program
func (r *topicRepository) GetByProgramID(ctx context.Context, programID string) ([]models.Topic, error) {
	query := `
		SELECT t.id, t.name, t.created_at
		FROM topics t
		INNER JOIN program_topics pt ON pt.topic_id = t.id
		WHERE pt.program_id = ?
		ORDER BY t.name
	`

	rows, err := r.db.QueryContext(ctx, query, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to query program topics: %w", err)
	}
	defer rows.Close()

	var topics []models.Topic
	for rows.Next() {
		var topic models.Topic
		if err := rows.Scan(&topic.ID, &topic.Name, &topic.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan topic: %w", err)
		}
		topics = append(topics, topic)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return topics, nil
}

// Create creates a new topic and assigns its ID
func (r *topicRepository) Create(ctx context.Context, topic *models.Topic) error {
	topic.ID = uuid.New().String()

	query := `INSERT INTO topics (id, name) VALUES (?, ?)`

	_, err := r.db.ExecContext(ctx, query, topic.ID, topic.Name)
	if err != nil {
		return fmt.Errorf("failed to create topic: %w", apperrors.FromSQL(err))
	}

	return nil
}

// Update renames a topic
func (r *topicRepository) Update(ctx context.Context, id, name string) error {
	query := `UPDATE topics SET name = ? WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, name, id)
	if err != nil {
		return fmt.Errorf("failed to update topic: %w", apperrors.FromSQL(err))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("topic")
	}

	return nil
}

// Delete deletes a topic by ID
func (r *topicRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM topics WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return apperrors.NotFound("topic")
	}

	return nil
}

// Exists checks whether a topic with the given ID exists
func (r *topicRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM topics WHERE id = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check topic existence: %w", err)
	}

	return exists, nil
}
