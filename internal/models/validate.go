package models

// FieldError describes a single validation failure on a request payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
