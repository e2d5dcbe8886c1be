package services

import (
	"context"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// TopicRepository defines methods for topic data access
type TopicRepository interface {
	// GetAll retrieves all topics ordered by name
	GetAll(ctx context.Context) ([]models.Topic, error)
	// Create creates a new topic and assigns its ID
	Create(ctx context.Context, topic *models.Topic) error
	// Update renames a topic
	Update(ctx context.Context, id, name string) error
	// Delete deletes a topic
	Delete(ctx context.Context, id string) error
}

type topicService struct {
	topicRepo TopicRepository
}

// NewTopicService creates a new topic service
func NewTopicService(topicRepo TopicRepository) *topicService {
	return &topicService{
		topicRepo: topicRepo,
	}
}

// GetTopics retrieves all topics
func (s *topicService) GetTopics(ctx context.Context) ([]models.Topic, error) {
	return s.topicRepo.GetAll(ctx)
}

// CreateTopic validates and creates a topic
func (s *topicService) CreateTopic(ctx context.Context, req *models.CreateTopicRequest) (*models.Topic, error) {
	if req.Name == "" {
		return nil, apperrors.Validation("name is required")
	}

	topic := &models.Topic{Name: req.Name}
	if err := s.topicRepo.Create(ctx, topic); err != nil {
		return nil, err
	}

	return topic, nil
}

// UpdateTopic renames a topic
func (s *topicService) UpdateTopic(ctx context.Context, id string, req *models.UpdateTopicRequest) error {
	if req.Name == "" {
		return apperrors.Validation("name is required")
	}
	return s.topicRepo.Update(ctx, id, req.Name)
}

// DeleteTopic removes a topic and its program attachments
func (s *topicService) DeleteTopic(ctx context.Context, id string) error {
	return s.topicRepo.Delete(ctx, id)
}
