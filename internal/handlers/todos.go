package handlers

import (
	"context"
	"log"
	"net/http"

	"wellsphere/internal/models"
)

type TodoStore interface {
	Todos(ctx context.Context, userID int) ([]models.Todo, error)
	Todo(ctx context.Context, id int) (models.Todo, error)
	CreateTodo(ctx context.Context, userID int, in models.InsertTodo) (models.Todo, error)
	UpdateTodo(ctx context.Context, id int, in models.UpdateTodo) (models.Todo, error)
	DeleteTodo(ctx context.Context, id int) error
}

type TodoHandler struct {
	store TodoStore
}

func NewTodoHandler(store TodoStore) *TodoHandler {
	return &TodoHandler{store: store}
}

func (h *TodoHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "handlers.TodoHandler.HandleList"

	todos, err := h.store.Todos(r.Context(), UserID(r))
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error fetching todos: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, todos)
}

func (h *TodoHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	todo, ok := fetchOwned(w, r, "Todo", h.store.Todo, func(t models.Todo) int { return t.UserID })
	if !ok {
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	op := "handlers.TodoHandler.HandleCreate"

	var in models.InsertTodo
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	todo, err := h.store.CreateTodo(r.Context(), UserID(r), in)
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error creating todo: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, todo)
}

func (h *TodoHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	op := "handlers.TodoHandler.HandleUpdate"

	if _, ok := fetchOwned(w, r, "Todo", h.store.Todo, func(t models.Todo) int { return t.UserID }); !ok {
		return
	}

	var in models.UpdateTodo
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	todo, err := h.store.UpdateTodo(r.Context(), pathID(r), in)
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error updating todo: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, todo)
}

func (h *TodoHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	op := "handlers.TodoHandler.HandleDelete"

	if _, ok := fetchOwned(w, r, "Todo", h.store.Todo, func(t models.Todo) int { return t.UserID }); !ok {
		return
	}

	if err := h.store.DeleteTodo(r.Context(), pathID(r)); err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error deleting todo: "+err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
