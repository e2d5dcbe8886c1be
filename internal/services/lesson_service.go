package services

import (
	"context"
	"time"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// LessonRepository defines methods for lesson data access
type LessonRepository interface {
	// GetByID retrieves a lesson by ID
	GetByID(ctx context.Context, id string) (*models.Lesson, error)
	// GetAll retrieves lessons with optional filters
	GetAll(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error)
	// Create creates a new lesson and assigns its ID
	Create(ctx context.Context, lesson *models.Lesson) error
	// Update updates lesson columns (partial update)
	Update(ctx context.Context, id string, fields map[string]any) error
	// Schedule moves a lesson into the scheduled state
	Schedule(ctx context.Context, id string, publishAt time.Time) error
	// Archive moves a lesson into the terminal archived state
	Archive(ctx context.Context, id string) error
	// Delete deletes a lesson
	Delete(ctx context.Context, id string) error
}

// LessonTermRepository defines the term lookups the lesson service needs
type LessonTermRepository interface {
	// GetByID retrieves a term by ID
	GetByID(ctx context.Context, id string) (*models.Term, error)
}

// LessonAssetRepository defines the asset lookups the lesson service needs
type LessonAssetRepository interface {
	// GetLessonAssets retrieves the thumbnail assets of a lesson
	GetLessonAssets(ctx context.Context, lessonID string) ([]models.Asset, error)
}

type lessonService struct {
	lessonRepo LessonRepository
	termRepo   LessonTermRepository
	assetRepo  LessonAssetRepository
}

// NewLessonService creates a new lesson service
func NewLessonService(lessonRepo LessonRepository, termRepo LessonTermRepository, assetRepo LessonAssetRepository) *lessonService {
	return &lessonService{
		lessonRepo: lessonRepo,
		termRepo:   termRepo,
		assetRepo:  assetRepo,
	}
}

// GetLessons retrieves lessons with optional filters
func (s *lessonService) GetLessons(ctx context.Context, filter models.LessonFilter) ([]models.Lesson, error) {
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.lessonRepo.GetAll(ctx, filter)
}

// GetLesson retrieves a lesson with its thumbnail assets
func (s *lessonService) GetLesson(ctx context.Context, id string) (*models.Lesson, error) {
	lesson, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	assets, err := s.assetRepo.GetLessonAssets(ctx, id)
	if err != nil {
		return nil, err
	}
	lesson.Assets = assets

	return lesson, nil
}

// CreateLesson validates and creates a lesson. The status defaults to draft;
// creating directly as scheduled requires a publish time.
func (s *lessonService) CreateLesson(ctx context.Context, req *models.CreateLessonRequest) (*models.Lesson, error) {
	if req.TermID == "" || req.Title == "" || req.LessonNumber < 1 ||
		req.ContentType == "" || req.ContentLanguagePrimary == "" ||
		len(req.ContentLanguagesAvailable) == 0 || len(req.ContentURLsByLanguage) == 0 {
		return nil, apperrors.Validation("termId, lessonNumber, title, contentType, contentLanguagePrimary, contentLanguagesAvailable and contentUrlsByLanguage are required")
	}
	if err := ValidateLessonContent(req.ContentType, req.DurationMs); err != nil {
		return nil, err
	}
	if !req.ContentLanguagesAvailable.Contains(req.ContentLanguagePrimary) {
		return nil, apperrors.Validation("contentLanguagePrimary must be in contentLanguagesAvailable")
	}

	status := req.Status
	if status == "" {
		status = models.LessonStatusDraft
	}
	if err := ValidateInitialStatus(status, req.PublishAt); err != nil {
		return nil, err
	}

	// Referenced term must exist
	if _, err := s.termRepo.GetByID(ctx, req.TermID); err != nil {
		return nil, err
	}

	lesson := &models.Lesson{
		TermID:                    req.TermID,
		LessonNumber:              req.LessonNumber,
		Title:                     req.Title,
		ContentType:               req.ContentType,
		DurationMs:                req.DurationMs,
		IsPaid:                    req.IsPaid,
		ContentLanguagePrimary:    req.ContentLanguagePrimary,
		ContentLanguagesAvailable: req.ContentLanguagesAvailable,
		ContentURLsByLanguage:     req.ContentURLsByLanguage,
		SubtitleLanguages:         req.SubtitleLanguages,
		SubtitleURLsByLanguage:    req.SubtitleURLsByLanguage,
		Status:                    status,
	}
	if status == models.LessonStatusScheduled {
		lesson.PublishAt = req.PublishAt
	}

	if err := s.lessonRepo.Create(ctx, lesson); err != nil {
		return nil, err
	}

	return s.lessonRepo.GetByID(ctx, lesson.ID)
}

// UpdateLesson applies a partial update. Status changes are lifecycle-checked;
// publishing goes through the publish action instead.
func (s *lessonService) UpdateLesson(ctx context.Context, id string, req *models.UpdateLessonRequest) (*models.Lesson, error) {
	current, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.ContentType != "" {
		fields["content_type"] = string(req.ContentType)
	}
	if req.DurationMs != nil {
		fields["duration_ms"] = *req.DurationMs
	}
	if req.IsPaid != nil {
		fields["is_paid"] = *req.IsPaid
	}
	if req.ContentLanguagePrimary != "" {
		fields["content_language_primary"] = req.ContentLanguagePrimary
	}
	if req.ContentLanguagesAvailable != nil {
		fields["content_languages_available"] = req.ContentLanguagesAvailable
	}
	if req.ContentURLsByLanguage != nil {
		fields["content_urls_by_language"] = req.ContentURLsByLanguage
	}
	if req.SubtitleLanguages != nil {
		fields["subtitle_languages"] = req.SubtitleLanguages
	}
	if req.SubtitleURLsByLanguage != nil {
		fields["subtitle_urls_by_language"] = req.SubtitleURLsByLanguage
	}

	// Validate the resulting content shape, not just the patch
	contentType := current.ContentType
	if req.ContentType != "" {
		contentType = req.ContentType
	}
	duration := current.DurationMs
	if req.DurationMs != nil {
		duration = req.DurationMs
	}
	if err := ValidateLessonContent(contentType, duration); err != nil {
		return nil, err
	}

	if req.Status != "" && req.Status != current.Status {
		publishAt := current.PublishAt
		if req.PublishAt != nil {
			publishAt = req.PublishAt
		}
		if err := ValidateTransition(current.Status, req.Status, publishAt); err != nil {
			return nil, err
		}
		fields["status"] = string(req.Status)
	}
	if req.PublishAt != nil {
		fields["publish_at"] = *req.PublishAt
	}

	if len(fields) == 0 {
		return nil, apperrors.Validation("no fields to update")
	}

	if err := s.lessonRepo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	return s.lessonRepo.GetByID(ctx, id)
}

// ScheduleLesson sets a lesson to publish at the given time. Times in the
// past are accepted; the scheduler publishes them on its next pass.
func (s *lessonService) ScheduleLesson(ctx context.Context, id string, publishAt time.Time) (*models.Lesson, error) {
	current, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := ValidateTransition(current.Status, models.LessonStatusScheduled, &publishAt); err != nil {
		return nil, err
	}

	if err := s.lessonRepo.Schedule(ctx, id, publishAt); err != nil {
		return nil, err
	}

	return s.lessonRepo.GetByID(ctx, id)
}

// ArchiveLesson moves a lesson into the terminal archived state. Archiving a
// published lesson does not un-publish its program.
func (s *lessonService) ArchiveLesson(ctx context.Context, id string) (*models.Lesson, error) {
	current, err := s.lessonRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := CanArchive(current.Status); err != nil {
		return nil, err
	}

	if err := s.lessonRepo.Archive(ctx, id); err != nil {
		return nil, err
	}

	return s.lessonRepo.GetByID(ctx, id)
}

// DeleteLesson removes a lesson record
func (s *lessonService) DeleteLesson(ctx context.Context, id string) error {
	return s.lessonRepo.Delete(ctx, id)
}
