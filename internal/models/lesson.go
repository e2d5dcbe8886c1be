package models

import "time"

// LessonStatus represents the lifecycle status of a lesson
type LessonStatus string

const (
	LessonStatusDraft     LessonStatus = "draft"
	LessonStatusScheduled LessonStatus = "scheduled"
	LessonStatusPublished LessonStatus = "published"
	LessonStatusArchived  LessonStatus = "archived"
)

// ContentType represents the kind of content a lesson carries
type ContentType string

const (
	ContentTypeVideo   ContentType = "video"
	ContentTypeArticle ContentType = "article"
)

// Lesson represents a single content item within a term
type Lesson struct {
	ID                         string       `json:"id"`
	TermID                     string       `json:"termId"`
	LessonNumber               int          `json:"lessonNumber"`
	Title                      string       `json:"title"`
	ContentType                ContentType  `json:"contentType"`
	DurationMs                 *int64       `json:"durationMs,omitempty"`
	IsPaid                     bool         `json:"isPaid"`
	ContentLanguagePrimary     string       `json:"contentLanguagePrimary"`
	ContentLanguagesAvailable  StringList   `json:"contentLanguagesAvailable"`
	ContentURLsByLanguage      URLMap       `json:"contentUrlsByLanguage"`
	SubtitleLanguages          StringList   `json:"subtitleLanguages,omitempty"`
	SubtitleURLsByLanguage     URLMap       `json:"subtitleUrlsByLanguage,omitempty"`
	Status                     LessonStatus `json:"status"`
	PublishAt                  *time.Time   `json:"publishAt,omitempty"`
	PublishedAt                *time.Time   `json:"publishedAt,omitempty"`
	CreatedAt                  time.Time    `json:"createdAt"`
	UpdatedAt                  time.Time    `json:"updatedAt"`
	TermTitle                  string       `json:"termTitle,omitempty"`
	ProgramID                  string       `json:"programId,omitempty"`
	ProgramTitle               string       `json:"programTitle,omitempty"`
	Assets                     []Asset      `json:"assets,omitempty"`
}

// CreateLessonRequest represents a request to create a lesson
type CreateLessonRequest struct {
	TermID                    string       `json:"termId"`
	LessonNumber              int          `json:"lessonNumber"`
	Title                     string       `json:"title"`
	ContentType               ContentType  `json:"contentType"`
	DurationMs                *int64       `json:"durationMs,omitempty"`
	IsPaid                    bool         `json:"isPaid"`
	ContentLanguagePrimary    string       `json:"contentLanguagePrimary"`
	ContentLanguagesAvailable StringList   `json:"contentLanguagesAvailable"`
	ContentURLsByLanguage     URLMap       `json:"contentUrlsByLanguage"`
	SubtitleLanguages         StringList   `json:"subtitleLanguages,omitempty"`
	SubtitleURLsByLanguage    URLMap       `json:"subtitleUrlsByLanguage,omitempty"`
	Status                    LessonStatus `json:"status,omitempty"`
	PublishAt                 *time.Time   `json:"publishAt,omitempty"`
}

// UpdateLessonRequest represents a request to update a lesson (partial update)
type UpdateLessonRequest struct {
	Title                     string       `json:"title,omitempty"`
	ContentType               ContentType  `json:"contentType,omitempty"`
	DurationMs                *int64       `json:"durationMs,omitempty"`
	IsPaid                    *bool        `json:"isPaid,omitempty"`
	ContentLanguagePrimary    string       `json:"contentLanguagePrimary,omitempty"`
	ContentLanguagesAvailable StringList   `json:"contentLanguagesAvailable,omitempty"`
	ContentURLsByLanguage     URLMap       `json:"contentUrlsByLanguage,omitempty"`
	SubtitleLanguages         StringList   `json:"subtitleLanguages,omitempty"`
	SubtitleURLsByLanguage    URLMap       `json:"subtitleUrlsByLanguage,omitempty"`
	Status                    LessonStatus `json:"status,omitempty"`
	PublishAt                 *time.Time   `json:"publishAt,omitempty"`
}

// LessonFilter holds optional filters for admin lesson listing
type LessonFilter struct {
	TermID      string
	Status      *LessonStatus
	ContentType *ContentType
	Limit       int
	Offset      int
}

// PublishOutcome describes the result of one publish attempt
type PublishOutcome struct {
	Applied          bool    `json:"applied"`
	AlreadyPublished bool    `json:"alreadyPublished"`
	ProgramPromoted  bool    `json:"programPromoted"`
	Lesson           *Lesson `json:"lesson,omitempty"`
}

// PublishRunStats summarizes one scheduled-publish pass
type PublishRunStats struct {
	Processed int `json:"processed"`
	Succeeded int `json:"succeeded"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// DueLesson identifies a scheduled lesson whose publish time has passed
type DueLesson struct {
	ID        string
	TermID    string
	Title     string
	PublishAt time.Time
}
