package models

import "time"

// Term represents a unit of lessons within a program
type Term struct {
	ID           string    `json:"id"`
	ProgramID    string    `json:"programId"`
	TermNumber   int       `json:"termNumber"`
	Title        string    `json:"title"`
	ProgramTitle string    `json:"programTitle,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TermListItem represents a term in list responses with lesson counts
type TermListItem struct {
	Term
	LessonCount          int `json:"lessonCount"`
	PublishedLessonCount int `json:"publishedLessonCount"`
}

// TermDetail represents a term with its lessons
type TermDetail struct {
	Term
	Lessons []Lesson `json:"lessons"`
}

// CreateTermRequest represents a request to create a term
type CreateTermRequest struct {
	ProgramID  string `json:"programId"`
	TermNumber int    `json:"termNumber"`
	Title      string `json:"title"`
}

// UpdateTermRequest represents a request to update a term (partial update)
type UpdateTermRequest struct {
	TermNumber *int   `json:"termNumber,omitempty"`
	Title      string `json:"title,omitempty"`
}
