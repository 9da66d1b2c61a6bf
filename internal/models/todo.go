package models

import (
	"time"
)

type Todo struct {
	ID        int        `json:"id" db:"id"`
	UserID    int        `json:"userId" db:"user_id"`
	Content   string     `json:"content" db:"content"`
	Completed bool       `json:"completed" db:"completed"`
	Category  *string    `json:"category" db:"category"`
	DueDate   *time.Time `json:"dueDate" db:"due_date"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// InsertTodo deliberately has no completed field: new todos always start
// uncompleted, whatever the client sends.
type InsertTodo struct {
	Content  string     `json:"content"`
	Category *string    `json:"category"`
	DueDate  *time.Time `json:"dueDate"`
}

func (in InsertTodo) Validate() []FieldError {
	var errs []FieldError
	if in.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content is required"})
	}
	return errs
}

type UpdateTodo struct {
	Content   *string    `json:"content"`
	Completed *bool      `json:"completed"`
	Category  *string    `json:"category"`
	DueDate   *time.Time `json:"dueDate"`
}

func (in UpdateTodo) Validate() []FieldError {
	var errs []FieldError
	if in.Content != nil && *in.Content == "" {
		errs = append(errs, FieldError{Field: "content", Message: "content must not be empty"})
	}
	return errs
}
