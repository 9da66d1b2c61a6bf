package handlers

import (
	"context"
	"log"
	"net/http"

	"wellsphere/internal/models"
)

type SettingsStore interface {
	Settings(ctx context.Context, userID int) (models.Settings, error)
	UpdateSettings(ctx context.Context, userID int, in models.UpdateSettings) (models.Settings, error)
}

type SettingsHandler struct {
	store SettingsStore
	users UserStore
}

func NewSettingsHandler(store SettingsStore, users UserStore) *SettingsHandler {
	return &SettingsHandler{
		store: store,
		users: users,
	}
}

// HandleGet creates the row with defaults when the user has none yet, so a
// first read and every read after it return the same values.
func (h *SettingsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	op := "handlers.SettingsHandler.HandleGet"

	settings, err := h.store.Settings(r.Context(), UserID(r))
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error fetching settings: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, settings)
}

func (h *SettingsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	op := "handlers.SettingsHandler.HandleUpdate"

	var in models.UpdateSettings
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	settings, err := h.store.UpdateSettings(r.Context(), UserID(r), in)
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error updating settings: "+err.Error())
		return
	}

	// A renamed companion is mirrored onto the user's profile record.
	if in.AISettings != nil && in.AISettings.Name != nil {
		if err := h.users.UpdateCompanionName(r.Context(), UserID(r), *in.AISettings.Name); err != nil {
			log.Printf("%s: update companion name: %v", op, err)
			respondError(w, http.StatusInternalServerError, "Error updating settings: "+err.Error())
			return
		}
	}

	respondJSON(w, http.StatusOK, settings)
}
