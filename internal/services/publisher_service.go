package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/edustream/backend/internal/models"
)

// PublisherLessonRepository defines the lesson data access the publisher needs
type PublisherLessonRepository interface {
	// GetByID retrieves a lesson by ID
	GetByID(ctx context.Context, id string) (*models.Lesson, error)
	// FindDueScheduled retrieves scheduled lessons with publish_at in the past,
	// oldest first
	FindDueScheduled(ctx context.Context) ([]models.DueLesson, error)
	// Publish atomically publishes a lesson and promotes its draft program.
	// It reports whether the conditional lesson update applied and whether the
	// program was promoted; a concurrent publish yields applied=false.
	Publish(ctx context.Context, id string, eligible []models.LessonStatus) (applied, programPromoted bool, err error)
}

type publisherService struct {
	lessonRepo PublisherLessonRepository
	logger     *zap.Logger
}

// NewPublisherService creates a new publisher service
func NewPublisherService(lessonRepo PublisherLessonRepository, logger *zap.Logger) *publisherService {
	return &publisherService{
		lessonRepo: lessonRepo,
		logger:     logger,
	}
}

// PublishNow performs a manual "publish now" on a draft or scheduled lesson.
// Publishing an already published lesson reports alreadyPublished instead of
// erroring; any pending publish_at is superseded.
func (s *publisherService) PublishNow(ctx context.Context, id string) (*models.PublishOutcome, error) {
	// Look up first so absent lessons and archived lessons produce the right
	// error instead of a silent zero-row update.
	current, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := CanManuallyPublish(current.Status); err != nil {
		return nil, err
	}
	if current.Status == models.LessonStatusPublished {
		return &models.PublishOutcome{AlreadyPublished: true, Lesson: current}, nil
	}

	applied, promoted, err := s.lessonRepo.Publish(ctx, id, PublishEligible(true))
	if err != nil {
		return nil, err
	}
	if !applied {
		// Lost the race: someone else transitioned the row between the read
		// and the conditional update.
		lesson, err := s.lessonRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if lesson.Status == models.LessonStatusPublished {
			return &models.PublishOutcome{AlreadyPublished: true, Lesson: lesson}, nil
		}
		return nil, fmt.Errorf("lesson %s is no longer eligible for publishing", id)
	}

	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("lesson published",
		zap.String("lesson_id", id),
		zap.Bool("program_promoted", promoted),
	)

	return &models.PublishOutcome{Applied: true, ProgramPromoted: promoted, Lesson: lesson}, nil
}

// ProcessDue publishes every scheduled lesson whose publish time has passed.
// Lessons already taken by a concurrent instance count as skipped; one
// lesson's failure never aborts the batch.
func (s *publisherService) ProcessDue(ctx context.Context) (models.PublishRunStats, error) {
	var stats models.PublishRunStats

	due, err := s.lessonRepo.FindDueScheduled(ctx)
	if err != nil {
		return stats, fmt.Errorf("failed to find due lessons: %w", err)
	}

	stats.Processed = len(due)
	for _, lesson := range due {
		applied, promoted, err := s.lessonRepo.Publish(ctx, lesson.ID, PublishEligible(false))
		if err != nil {
			stats.Failed++
			s.logger.Error("failed to publish scheduled lesson",
				zap.String("lesson_id", lesson.ID),
				zap.String("title", lesson.Title),
				zap.Error(err),
			)
			continue
		}
		if !applied {
			stats.Skipped++
			s.logger.Info("scheduled lesson already published, skipping",
				zap.String("lesson_id", lesson.ID),
			)
			continue
		}
		stats.Succeeded++
		s.logger.Info("scheduled lesson published",
			zap.String("lesson_id", lesson.ID),
			zap.String("title", lesson.Title),
			zap.Time("publish_at", lesson.PublishAt),
			zap.Bool("program_promoted", promoted),
		)
	}

	return stats, nil
}
