package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edustream/backend/internal/models"
)

func TestPublishEligible(t *testing.T) {
	assert.Equal(t,
		[]models.LessonStatus{models.LessonStatusDraft, models.LessonStatusScheduled},
		PublishEligible(true),
	)
	assert.Equal(t,
		[]models.LessonStatus{models.LessonStatusScheduled},
		PublishEligible(false),
	)
}

func TestValidateLessonContent(t *testing.T) {
	duration := int64(90000)
	zero := int64(0)

	tests := []struct {
		name          string
		contentType   models.ContentType
		durationMs    *int64
		expectedError bool
	}{
		{
			name:        "video with duration",
			contentType: models.ContentTypeVideo,
			durationMs:  &duration,
		},
		{
			name:          "video without duration",
			contentType:   models.ContentTypeVideo,
			durationMs:    nil,
			expectedError: true,
		},
		{
			name:          "video with zero duration",
			contentType:   models.ContentTypeVideo,
			durationMs:    &zero,
			expectedError: true,
		},
		{
			name:        "article without duration",
			contentType: models.ContentTypeArticle,
			durationMs:  nil,
		},
		{
			name:        "article with duration",
			contentType: models.ContentTypeArticle,
			durationMs:  &duration,
		},
		{
			name:          "unknown content type",
			contentType:   models.ContentType("podcast"),
			durationMs:    nil,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateLessonContent(tt.contentType, tt.durationMs)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateInitialStatus(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	tests := []struct {
		name          string
		status        models.LessonStatus
		publishAt     *time.Time
		expectedError bool
	}{
		{
			name:   "draft without publish time",
			status: models.LessonStatusDraft,
		},
		{
			name:      "scheduled with publish time",
			status:    models.LessonStatusScheduled,
			publishAt: &now,
		},
		{
			name:      "scheduled with past publish time",
			status:    models.LessonStatusScheduled,
			publishAt: &past,
		},
		{
			name:          "scheduled without publish time",
			status:        models.LessonStatusScheduled,
			expectedError: true,
		},
		{
			name:          "created as published",
			status:        models.LessonStatusPublished,
			expectedError: true,
		},
		{
			name:          "created as archived",
			status:        models.LessonStatusArchived,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInitialStatus(tt.status, tt.publishAt)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateTransition(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		from          models.LessonStatus
		to            models.LessonStatus
		publishAt     *time.Time
		expectedError bool
	}{
		{
			name:      "draft to scheduled",
			from:      models.LessonStatusDraft,
			to:        models.LessonStatusScheduled,
			publishAt: &now,
		},
		{
			name:          "draft to scheduled without publish time",
			from:          models.LessonStatusDraft,
			to:            models.LessonStatusScheduled,
			expectedError: true,
		},
		{
			name: "draft to archived",
			from: models.LessonStatusDraft,
			to:   models.LessonStatusArchived,
		},
		{
			name:      "reschedule scheduled lesson",
			from:      models.LessonStatusScheduled,
			to:        models.LessonStatusScheduled,
			publishAt: &now,
		},
		{
			name: "scheduled to archived",
			from: models.LessonStatusScheduled,
			to:   models.LessonStatusArchived,
		},
		{
			name:          "scheduled back to draft",
			from:          models.LessonStatusScheduled,
			to:            models.LessonStatusDraft,
			expectedError: true,
		},
		{
			name: "published to archived",
			from: models.LessonStatusPublished,
			to:   models.LessonStatusArchived,
		},
		{
			name:          "published to scheduled",
			from:          models.LessonStatusPublished,
			to:            models.LessonStatusScheduled,
			publishAt:     &now,
			expectedError: true,
		},
		{
			name:          "direct publish via status change",
			from:          models.LessonStatusDraft,
			to:            models.LessonStatusPublished,
			expectedError: true,
		},
		{
			name:          "archived is terminal",
			from:          models.LessonStatusArchived,
			to:            models.LessonStatusDraft,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.from, tt.to, tt.publishAt)
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanArchive(t *testing.T) {
	assert.NoError(t, CanArchive(models.LessonStatusDraft))
	assert.NoError(t, CanArchive(models.LessonStatusScheduled))
	assert.NoError(t, CanArchive(models.LessonStatusPublished))
	assert.Error(t, CanArchive(models.LessonStatusArchived))
}

func TestCanManuallyPublish(t *testing.T) {
	assert.NoError(t, CanManuallyPublish(models.LessonStatusDraft))
	assert.NoError(t, CanManuallyPublish(models.LessonStatusScheduled))
	assert.NoError(t, CanManuallyPublish(models.LessonStatusPublished))
	assert.Error(t, CanManuallyPublish(models.LessonStatusArchived))
}
