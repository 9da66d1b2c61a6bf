package handlers

import (
	"context"
	"log"
	"net/http"

	"wellsphere/internal/models"
)

type DiaryStore interface {
	DiaryEntries(ctx context.Context, userID int) ([]models.DiaryEntry, error)
	DiaryEntry(ctx context.Context, id int) (models.DiaryEntry, error)
	CreateDiaryEntry(ctx context.Context, userID int, in models.InsertDiaryEntry) (models.DiaryEntry, error)
	UpdateDiaryEntry(ctx context.Context, id int, in models.UpdateDiaryEntry) (models.DiaryEntry, error)
	DeleteDiaryEntry(ctx context.Context, id int) error
}

type DiaryHandler struct {
	store DiaryStore
}

func NewDiaryHandler(store DiaryStore) *DiaryHandler {
	return &DiaryHandler{store: store}
}

func (h *DiaryHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "handlers.DiaryHandler.HandleList"

	entries, err := h.store.DiaryEntries(r.Context(), UserID(r))
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error fetching diary entries: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, entries)
}

func (h *DiaryHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	entry, ok := fetchOwned(w, r, "Diary entry", h.store.DiaryEntry, func(e models.DiaryEntry) int { return e.UserID })
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

func (h *DiaryHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	op := "handlers.DiaryHandler.HandleCreate"

	var in models.InsertDiaryEntry
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	entry, err := h.store.CreateDiaryEntry(r.Context(), UserID(r), in)
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error creating diary entry: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, entry)
}

func (h *DiaryHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	op := "handlers.DiaryHandler.HandleUpdate"

	if _, ok := fetchOwned(w, r, "Diary entry", h.store.DiaryEntry, func(e models.DiaryEntry) int { return e.UserID }); !ok {
		return
	}

	var in models.UpdateDiaryEntry
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	entry, err := h.store.UpdateDiaryEntry(r.Context(), pathID(r), in)
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error updating diary entry: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, entry)
}

func (h *DiaryHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	op := "handlers.DiaryHandler.HandleDelete"

	if _, ok := fetchOwned(w, r, "Diary entry", h.store.DiaryEntry, func(e models.DiaryEntry) int { return e.UserID }); !ok {
		return
	}

	if err := h.store.DeleteDiaryEntry(r.Context(), pathID(r)); err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error deleting diary entry: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
