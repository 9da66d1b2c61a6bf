package models

import (
	"time"
)

type User struct {
	ID              int       `json:"id" db:"id"`
	Username        string    `json:"username" db:"username"`
	Password        string    `json:"-" db:"password"`
	FirstName       *string   `json:"firstName" db:"first_name"`
	AICompanionName string    `json:"aiCompanionName" db:"ai_companion_name"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type InsertUser struct {
	Username  string  `json:"username"`
	Password  string  `json:"password"`
	FirstName *string `json:"firstName"`
}

func (in InsertUser) Validate() []FieldError {
	var errs []FieldError
	if in.Username == "" {
		errs = append(errs, FieldError{Field: "username", Message: "username is required"})
	}
	if in.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "password is required"})
	}
	return errs
}
