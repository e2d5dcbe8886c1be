package models

import "time"

// CatalogProgram represents a published program in public list responses
type CatalogProgram struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	LanguagePrimary    string     `json:"languagePrimary"`
	LanguagesAvailable StringList `json:"languagesAvailable"`
	PublishedAt        time.Time  `json:"publishedAt"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// CatalogLesson represents a published lesson in public responses
type CatalogLesson struct {
	ID                        string     `json:"id"`
	TermID                    string     `json:"termId,omitempty"`
	LessonNumber              int        `json:"lessonNumber"`
	Title                     string     `json:"title"`
	ContentType               ContentType `json:"contentType"`
	DurationMs                *int64     `json:"durationMs,omitempty"`
	IsPaid                    bool       `json:"isPaid"`
	ContentLanguagePrimary    string     `json:"contentLanguagePrimary"`
	ContentLanguagesAvailable StringList `json:"contentLanguagesAvailable"`
	ContentURLsByLanguage     URLMap     `json:"contentUrlsByLanguage"`
	SubtitleLanguages         StringList `json:"subtitleLanguages,omitempty"`
	SubtitleURLsByLanguage    URLMap     `json:"subtitleUrlsByLanguage,omitempty"`
	PublishedAt               time.Time  `json:"publishedAt"`
	TermTitle                 string     `json:"termTitle,omitempty"`
	ProgramID                 string     `json:"programId,omitempty"`
	ProgramTitle              string     `json:"programTitle,omitempty"`
	Thumbnails                AssetMap   `json:"thumbnails"`
}

// CatalogTerm represents a term with its published lessons in public responses
type CatalogTerm struct {
	ID         string          `json:"id"`
	TermNumber int             `json:"termNumber"`
	Title      string          `json:"title"`
	Lessons    []CatalogLesson `json:"lessons"`
}

// CatalogProgramDetail represents a fully nested published program
type CatalogProgramDetail struct {
	CatalogProgram
	Topics  []Topic       `json:"topics"`
	Posters AssetMap      `json:"posters"`
	Terms   []CatalogTerm `json:"terms"`
}

// Pagination carries cursor pagination state for list responses
type Pagination struct {
	NextCursor string `json:"nextCursor,omitempty"`
	HasMore    bool   `json:"hasMore"`
}

// CatalogProgramPage is the public program list envelope
type CatalogProgramPage struct {
	Data       []CatalogProgram `json:"data"`
	Pagination Pagination       `json:"pagination"`
}

// CatalogFilter holds filters for the public program listing
type CatalogFilter struct {
	Language string
	TopicID  string
	Cursor   string
	Limit    int
}
