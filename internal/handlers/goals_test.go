package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"wellsphere/internal/models"
)

func TestGoalCreateStartsAtZero(t *testing.T) {
	h := NewGoalHandler(newFakeGoalStore())

	w := httptest.NewRecorder()
	h.HandleCreate(w, authedRequest(t, http.MethodPost, "/api/goals",
		map[string]any{"title": "Read", "target": 12, "current": 7}, 1))

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", w.Code)
	}
	goal := decodeBody[models.Goal](t, w)
	if goal.Current != 0 {
		t.Errorf("current = %d, want 0 regardless of payload", goal.Current)
	}
	if goal.Target != 12 {
		t.Errorf("target = %d, want 12", goal.Target)
	}
}

func TestGoalCreateValidation(t *testing.T) {
	h := NewGoalHandler(newFakeGoalStore())

	tests := []struct {
		name    string
		payload map[string]any
		want    int
	}{
		{name: "valid goal", payload: map[string]any{"title": "Run", "target": 1}, want: http.StatusCreated},
		{name: "missing title", payload: map[string]any{"target": 5}, want: http.StatusBadRequest},
		{name: "zero target", payload: map[string]any{"title": "Run", "target": 0}, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.HandleCreate(w, authedRequest(t, http.MethodPost, "/api/goals", tt.payload, 1))
			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

func TestGoalPartialUpdateKeepsTitle(t *testing.T) {
	store := newFakeGoalStore()
	h := NewGoalHandler(store)

	w := httptest.NewRecorder()
	h.HandleCreate(w, authedRequest(t, http.MethodPost, "/api/goals",
		map[string]any{"title": "Read", "target": 12}, 1))

	w = httptest.NewRecorder()
	r := withPathID(authedRequest(t, http.MethodPut, "/api/goals/1", map[string]any{"current": 5}, 1), "1")
	h.HandleUpdate(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	goal := decodeBody[models.Goal](t, w)
	if goal.Title != "Read" {
		t.Errorf("title = %q, want unchanged %q", goal.Title, "Read")
	}
	if goal.Current != 5 {
		t.Errorf("current = %d, want 5", goal.Current)
	}
}

// Progress past the target is accepted and stored as-is; the client renders
// over-100% however it likes.
func TestGoalCurrentMayExceedTarget(t *testing.T) {
	store := newFakeGoalStore()
	h := NewGoalHandler(store)

	w := httptest.NewRecorder()
	h.HandleCreate(w, authedRequest(t, http.MethodPost, "/api/goals",
		map[string]any{"title": "Pushups", "target": 10}, 1))

	w = httptest.NewRecorder()
	r := withPathID(authedRequest(t, http.MethodPut, "/api/goals/1", map[string]any{"current": 25}, 1), "1")
	h.HandleUpdate(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	goal := decodeBody[models.Goal](t, w)
	if goal.Current != 25 {
		t.Errorf("current = %d, want 25 (unclamped)", goal.Current)
	}
}

func TestGoalGetByOtherUser(t *testing.T) {
	store := newFakeGoalStore()
	h := NewGoalHandler(store)

	w := httptest.NewRecorder()
	h.HandleCreate(w, authedRequest(t, http.MethodPost, "/api/goals",
		map[string]any{"title": "Meditate", "target": 30}, 1))

	w = httptest.NewRecorder()
	h.HandleGet(w, withPathID(authedRequest(t, http.MethodGet, "/api/goals/1", nil, 2), "1"))
	if w.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", w.Code)
	}
}
