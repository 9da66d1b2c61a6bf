package handlers

import (
	"context"
	"log"
	"net/http"

	"wellsphere/internal/ai"
	"wellsphere/internal/models"
)

type ChatStore interface {
	ChatMessages(ctx context.Context, userID int) ([]models.ChatMessage, error)
	CreateChatMessage(ctx context.Context, userID int, content string, isAI bool) (models.ChatMessage, error)
}

type ChatHandler struct {
	store     ChatStore
	responder ai.ResponseGenerator
}

func NewChatHandler(store ChatStore, responder ai.ResponseGenerator) *ChatHandler {
	return &ChatHandler{
		store:     store,
		responder: responder,
	}
}

func (h *ChatHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	op := "handlers.ChatHandler.HandleList"

	messages, err := h.store.ChatMessages(r.Context(), UserID(r))
	if err != nil {
		log.Printf("%s: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error fetching chat messages: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, messages)
}

// HandleSend stores the user's message and immediately pairs it with a
// generated companion reply; both records come back in one response.
func (h *ChatHandler) HandleSend(w http.ResponseWriter, r *http.Request) {
	op := "handlers.ChatHandler.HandleSend"

	var in models.InsertChatMessage
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	userMessage, err := h.store.CreateChatMessage(r.Context(), UserID(r), in.Content, false)
	if err != nil {
		log.Printf("%s: save user message: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error creating chat message: "+err.Error())
		return
	}

	reply, err := h.responder.Generate(r.Context(), in.Content)
	if err != nil {
		log.Printf("%s: generate reply: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error creating chat message: "+err.Error())
		return
	}

	aiMessage, err := h.store.CreateChatMessage(r.Context(), UserID(r), reply, true)
	if err != nil {
		log.Printf("%s: save ai message: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error creating chat message: "+err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		UserMessage models.ChatMessage `json:"userMessage"`
		AIMessage   models.ChatMessage `json:"aiMessage"`
	}{
		UserMessage: userMessage,
		AIMessage:   aiMessage,
	})
}
