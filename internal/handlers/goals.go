package handlers

import (
	"context"
	"log"
	"net/http"

	"wellsphere/internal/models"
)

type GoalStore interface {
	Goals(ctx context.Context, userID int) ([]models.Goal, error)
	Goal(ctx context.Context, id int) (models.Goal, error)
	CreateGoal(ctx context.Context, userID int, in models.InsertGoal) (models.Goal, error)
	UpdateGoal(ctx context.Context, id int, in models.UpdateGoal) (models.Goal, error)
	DeleteGoal(ctx context.Context, id int) error
}

type GoalHandler struct {
	store GoalStore
}

func NewGoalHandler(store GoalStore) *GoalHandler {
	return &GoalHandler{store: store}
}

func (h *GoalHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "handlers.GoalHandler.HandleList"

	goals, err := h.store.Goals(r.Context(), UserID(r))
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error fetching goals: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, goals)
}

func (h *GoalHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	goal, ok := fetchOwned(w, r, "Goal", h.store.Goal, func(g models.Goal) int { return g.UserID })
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	op := "handlers.GoalHandler.HandleCreate"

	var in models.InsertGoal
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	goal, err := h.store.CreateGoal(r.Context(), UserID(r), in)
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error creating goal: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, goal)
}

func (h *GoalHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	op := "handlers.GoalHandler.HandleUpdate"

	if _, ok := fetchOwned(w, r, "Goal", h.store.Goal, func(g models.Goal) int { return g.UserID }); !ok {
		return
	}

	var in models.UpdateGoal
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	goal, err := h.store.UpdateGoal(r.Context(), pathID(r), in)
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error updating goal: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, goal)
}

func (h *GoalHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	op := "handlers.GoalHandler.HandleDelete"

	if _, ok := fetchOwned(w, r, "Goal", h.store.Goal, func(g models.Goal) int { return g.UserID }); !ok {
		return
	}

	if err := h.store.DeleteGoal(r.Context(), pathID(r)); err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error deleting goal: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
