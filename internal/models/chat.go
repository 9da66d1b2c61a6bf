package models

import (
	"time"
)

type ChatMessage struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	IsAI      bool      `json:"isAi" db:"is_ai"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type InsertChatMessage struct {
	Content string `json:"content"`
}

func (in InsertChatMessage) Validate() []FieldError {
	var errs []FieldError
	if in.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content is required"})
	}
	return errs
}
