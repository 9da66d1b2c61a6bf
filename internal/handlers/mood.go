package handlers

import (
	"context"
	"log"
	"net/http"

	"wellsphere/internal/models"
)

type MoodStore interface {
	MoodEntries(ctx context.Context, userID int) ([]models.MoodEntry, error)
	CreateMoodEntry(ctx context.Context, userID int, in models.InsertMoodEntry) (models.MoodEntry, error)
}

type MoodHandler struct {
	store MoodStore
}

func NewMoodHandler(store MoodStore) *MoodHandler {
	return &MoodHandler{store: store}
}

func (h *MoodHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "handlers.MoodHandler.HandleList"

	entries, err := h.store.MoodEntries(r.Context(), UserID(r))
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error fetching mood entries: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

func (h *MoodHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	op := "handlers.MoodHandler.HandleCreate"

	var in models.InsertMoodEntry
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	entry, err := h.store.CreateMoodEntry(r.Context(), UserID(r), in)
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error creating mood entry: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}
