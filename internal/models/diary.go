package models

import (
	"time"
)

type DiaryEntry struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	Title     *string   `json:"title" db:"title"`
	Mood      *string   `json:"mood" db:"mood"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type InsertDiaryEntry struct {
	Content string  `json:"content"`
	Title   *string `json:"title"`
	Mood    *string `json:"mood"`
}

func (in InsertDiaryEntry) Validate() []FieldError {
	var errs []FieldError
	if in.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content is required"})
	}
	return errs
}

// UpdateDiaryEntry carries a partial update: nil fields are left unchanged.
type UpdateDiaryEntry struct {
	Content *string `json:"content"`
	Title   *string `json:"title"`
	Mood    *string `json:"mood"`
}

func (in UpdateDiaryEntry) Validate() []FieldError {
	var errs []FieldError
	if in.Content != nil && *in.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content must not be empty"})
	}
	return errs
}
