package models

import "time"

// ProgramStatus represents the lifecycle status of a program
type ProgramStatus string

const (
	ProgramStatusDraft     ProgramStatus = "draft"
	ProgramStatusPublished ProgramStatus = "published"
	ProgramStatusArchived  ProgramStatus = "archived"
)

// Program represents a top-level content program (a course)
type Program struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	LanguagePrimary    string        `json:"languagePrimary"`
	LanguagesAvailable StringList    `json:"languagesAvailable"`
	Status             ProgramStatus `json:"status"`
	PublishedAt        *time.Time    `json:"publishedAt,omitempty"`
	CreatedAt          time.Time     `json:"createdAt"`
	UpdatedAt          time.Time     `json:"updatedAt"`
	Topics             []Topic       `json:"topics,omitempty"`
	Assets             []Asset       `json:"assets,omitempty"`
}

// ProgramTermSummary represents a term with lesson counts for program detail
type ProgramTermSummary struct {
	ID                   string    `json:"id"`
	TermNumber           int       `json:"termNumber"`
	Title                string    `json:"title"`
	LessonCount          int       `json:"lessonCount"`
	PublishedLessonCount int       `json:"publishedLessonCount"`
	CreatedAt            time.Time `json:"createdAt"`
}

// ProgramDetail represents a program with terms for admin detail responses
type ProgramDetail struct {
	Program
	Terms []ProgramTermSummary `json:"terms"`
}

// CreateProgramRequest represents a request to create a program
type CreateProgramRequest struct {
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	LanguagePrimary    string     `json:"languagePrimary"`
	LanguagesAvailable StringList `json:"languagesAvailable"`
	TopicIDs           []string   `json:"topicIds,omitempty"`
}

// UpdateProgramRequest represents a request to update a program (partial update)
type UpdateProgramRequest struct {
	Title              string     `json:"title,omitempty"`
	Description        *string    `json:"description,omitempty"`
	LanguagePrimary    string     `json:"languagePrimary,omitempty"`
	LanguagesAvailable StringList `json:"languagesAvailable,omitempty"`
	TopicIDs           []string   `json:"topicIds,omitempty"`
}

// ProgramFilter holds optional filters for admin program listing
type ProgramFilter struct {
	Status   *ProgramStatus
	Language string
	TopicID  string
	Limit    int
	Offset   int
}
