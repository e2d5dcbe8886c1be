package services

import (
	"fmt"
	"time"

	"github.com/edustream/backend/internal/apperrors"
	"github.com/edustream/backend/internal/models"
)

// Lesson status transitions allowed outside of the publish executor.
// Publishing always goes through the conditional publish transaction;
// archived is terminal.
var lessonTransitions = map[models.LessonStatus][]models.LessonStatus{
	models.LessonStatusDraft:     {models.LessonStatusScheduled, models.LessonStatusArchived},
	models.LessonStatusScheduled: {models.LessonStatusScheduled, models.LessonStatusArchived},
	models.LessonStatusPublished: {models.LessonStatusArchived},
	models.LessonStatusArchived:  {},
}

// PublishEligible returns the statuses a lesson may hold for a publish
// attempt to apply. The scheduler only publishes scheduled lessons; a manual
// "publish now" also accepts drafts.
func PublishEligible(manual bool) []models.LessonStatus {
	if manual {
		return []models.LessonStatus{models.LessonStatusDraft, models.LessonStatusScheduled}
	}
	return []models.LessonStatus{models.LessonStatusScheduled}
}

// ValidateLessonContent checks content-type dependent field requirements
func ValidateLessonContent(contentType models.ContentType, durationMs *int64) error {
	switch contentType {
	case models.ContentTypeVideo:
		if durationMs == nil || *durationMs <= 0 {
			return apperrors.Validation("durationMs is required for video lessons and must be positive")
		}
	case models.ContentTypeArticle:
		// no extra requirements
	default:
		return apperrors.Validation(fmt.Sprintf("invalid content type %q", contentType))
	}
	return nil
}

// ValidateInitialStatus checks the status a lesson may be created in.
// A publish time in the past is deliberately allowed: the scheduler picks it
// up on its next pass.
func ValidateInitialStatus(status models.LessonStatus, publishAt *time.Time) error {
	switch status {
	case models.LessonStatusDraft:
		return nil
	case models.LessonStatusScheduled:
		if publishAt == nil {
			return apperrors.Validation("publishAt is required for scheduled lessons")
		}
		return nil
	default:
		return apperrors.Validation(fmt.Sprintf("lessons cannot be created with status %q", status))
	}
}

// ValidateTransition checks whether a lesson may move from one status to
// another through an update or schedule action
func ValidateTransition(from, to models.LessonStatus, publishAt *time.Time) error {
	if from == models.LessonStatusArchived {
		return apperrors.Validation("archived lessons cannot change status")
	}
	if to == models.LessonStatusPublished {
		return apperrors.Validation("use the publish action to publish a lesson")
	}
	for _, allowed := range lessonTransitions[from] {
		if allowed == to {
			if to == models.LessonStatusScheduled && publishAt == nil {
				return apperrors.Validation("publishAt is required for scheduled lessons")
			}
			return nil
		}
	}
	return apperrors.Validation(fmt.Sprintf("cannot change lesson status from %q to %q", from, to))
}

// CanArchive reports whether a lesson may be archived from its current status
func CanArchive(from models.LessonStatus) error {
	if from == models.LessonStatusArchived {
		return apperrors.Validation("lesson is already archived")
	}
	return nil
}

// CanManuallyPublish reports whether a manual publish attempt makes sense for
// the lesson's current status. Published is not an error here: the executor
// reports it as an already-applied outcome.
func CanManuallyPublish(from models.LessonStatus) error {
	if from == models.LessonStatusArchived {
		return apperrors.Validation("archived lessons cannot be published")
	}
	return nil
}
