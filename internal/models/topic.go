package models

import "time"

// Topic represents a tag attached to programs
type Topic struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateTopicRequest represents a request to create a topic
type CreateTopicRequest struct {
	Name string `json:"name"`
}

// UpdateTopicRequest represents a request to rename a topic
type UpdateTopicRequest struct {
	Name string `json:"name"`
}
