package models

import (
	"time"
)

// MoodEntry scores run 1..5 and index the label set
// {Upset, Sad, Neutral, Good, Happy} at score-1 on the client.
type MoodEntry struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	Mood      string    `json:"mood" db:"mood"`
	Score     int       `json:"score" db:"score"`
	Note      *string   `json:"note" db:"note"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type InsertMoodEntry struct {
	Mood  string  `json:"mood"`
	Score int     `json:"score"`
	Note  *string `json:"note"`
}

func (in InsertMoodEntry) Validate() []FieldError {
	var errs []FieldError
	if in.Mood == "" {
		errs = append(errs, FieldError{Field: "mood", Message: "mood is required"})
	}
	if in.Score < 1 || in.Score > 5 {
		errs = append(errs, FieldError{Field: "score", Message: "score must be between 1 and 5"})
	}
	return errs
}
