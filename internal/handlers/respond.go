package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"wellsphere/internal/models"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("handlers.respondJSON: failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"message": message})
}

func respondValidationError(w http.ResponseWriter, errs []models.FieldError) {
	respondJSON(w, http.StatusBadRequest, struct {
		Message string              `json:"message"`
		Errors  []models.FieldError `json:"errors"`
	}{
		Message: "Invalid data",
		Errors:  errs,
	})
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
