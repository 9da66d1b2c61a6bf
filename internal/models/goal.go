package models

import (
	"time"
)

type Goal struct {
	ID          int        `json:"id" db:"id"`
	UserID      int        `json:"userId" db:"user_id"`
	Title       string     `json:"title" db:"title"`
	Description *string    `json:"description" db:"description"`
	Target      int        `json:"target" db:"target"`
	Current     int        `json:"current" db:"current"`
	Unit        *string    `json:"unit" db:"unit"`
	Deadline    *time.Time `json:"deadline" db:"deadline"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
}

// InsertGoal has no current field: progress always starts at zero.
type InsertGoal struct {
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	Target      int        `json:"target"`
	Unit        *string    `json:"unit"`
	Deadline    *time.Time `json:"deadline"`
}

func (in InsertGoal) Validate() []FieldError {
	var errs []FieldError
	if in.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	}
	if in.Target < 1 {
		errs = append(errs, FieldError{Field: "target", Message: "target must be at least 1"})
	}
	return errs
}

// UpdateGoal allows current to be set past target; progress over 100% is
// rendered as-is by the client.
type UpdateGoal struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Target      *int       `json:"target"`
	Current     *int       `json:"current"`
	Unit        *string    `json:"unit"`
	Deadline    *time.Time `json:"deadline"`
}

func (in UpdateGoal) Validate() []FieldError {
	var errs []FieldError
	if in.Title != nil && *in.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title must not be empty"})
	}
	if in.Target != nil && *in.Target < 1 {
		errs = append(errs, FieldError{Field: "target", Message: "target must be at least 1"})
	}
	if in.Current != nil && *in.Current < 0 {
		errs = append(errs, FieldError{Field: "current", Message: "current must not be negative"})
	}
	return errs
}
