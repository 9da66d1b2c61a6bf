package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"testing"

	"wellsphere/internal/models"
	"wellsphere/internal/storage"
)

// In-memory stands-ins for the pgx-backed storage, mirroring its semantics:
// creation-order listing, server-stamped defaults, ErrNotFound on misses.

type fakeDiaryStore struct {
	nextID  int
	entries map[int]models.DiaryEntry
}

func newFakeDiaryStore() *fakeDiaryStore {
	return &fakeDiaryStore{entries: map[int]models.DiaryEntry{}}
}

func (s *fakeDiaryStore) DiaryEntries(_ context.Context, userID int) ([]models.DiaryEntry, error) {
	out := []models.DiaryEntry{}
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeDiaryStore) DiaryEntry(_ context.Context, id int) (models.DiaryEntry, error) {
	e, ok := s.entries[id]
	if !ok {
		return models.DiaryEntry{}, storage.ErrNotFound
	}
	return e, nil
}

func (s *fakeDiaryStore) CreateDiaryEntry(_ context.Context, userID int, in models.InsertDiaryEntry) (models.DiaryEntry, error) {
	s.nextID++
	e := models.DiaryEntry{ID: s.nextID, UserID: userID, Content: in.Content, Title: in.Title, Mood: in.Mood}
	s.entries[e.ID] = e
	return e, nil
}

func (s *fakeDiaryStore) UpdateDiaryEntry(_ context.Context, id int, in models.UpdateDiaryEntry) (models.DiaryEntry, error) {
	e, ok := s.entries[id]
	if !ok {
		return models.DiaryEntry{}, storage.ErrNotFound
	}
	if in.Content != nil {
		e.Content = *in.Content
	}
	if in.Title != nil {
		e.Title = in.Title
	}
	if in.Mood != nil {
		e.Mood = in.Mood
	}
	s.entries[id] = e
	return e, nil
}

func (s *fakeDiaryStore) DeleteDiaryEntry(_ context.Context, id int) error {
	if _, ok := s.entries[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.entries, id)
	return nil
}

type fakeTodoStore struct {
	nextID int
	todos  map[int]models.Todo
}

func newFakeTodoStore() *fakeTodoStore {
	return &fakeTodoStore{todos: map[int]models.Todo{}}
}

func (s *fakeTodoStore) Todos(_ context.Context, userID int) ([]models.Todo, error) {
	out := []models.Todo{}
	for _, t := range s.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeTodoStore) Todo(_ context.Context, id int) (models.Todo, error) {
	t, ok := s.todos[id]
	if !ok {
		return models.Todo{}, storage.ErrNotFound
	}
	return t, nil
}

func (s *fakeTodoStore) CreateTodo(_ context.Context, userID int, in models.InsertTodo) (models.Todo, error) {
	s.nextID++
	t := models.Todo{ID: s.nextID, UserID: userID, Content: in.Content, Completed: false, Category: in.Category, DueDate: in.DueDate}
	s.todos[t.ID] = t
	return t, nil
}

func (s *fakeTodoStore) UpdateTodo(_ context.Context, id int, in models.UpdateTodo) (models.Todo, error) {
	t, ok := s.todos[id]
	if !ok {
		return models.Todo{}, storage.ErrNotFound
	}
	if in.Content != nil {
		t.Content = *in.Content
	}
	if in.Completed != nil {
		t.Completed = *in.Completed
	}
	if in.Category != nil {
		t.Category = in.Category
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	s.todos[id] = t
	return t, nil
}

func (s *fakeTodoStore) DeleteTodo(_ context.Context, id int) error {
	if _, ok := s.todos[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.todos, id)
	return nil
}

type fakeGoalStore struct {
	nextID int
	goals  map[int]models.Goal
}

func newFakeGoalStore() *fakeGoalStore {
	return &fakeGoalStore{goals: map[int]models.Goal{}}
}

func (s *fakeGoalStore) Goals(_ context.Context, userID int) ([]models.Goal, error) {
	out := []models.Goal{}
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeGoalStore) Goal(_ context.Context, id int) (models.Goal, error) {
	g, ok := s.goals[id]
	if !ok {
		return models.Goal{}, storage.ErrNotFound
	}
	return g, nil
}

func (s *fakeGoalStore) CreateGoal(_ context.Context, userID int, in models.InsertGoal) (models.Goal, error) {
	s.nextID++
	g := models.Goal{
		ID: s.nextID, UserID: userID, Title: in.Title, Description: in.Description,
		Target: in.Target, Current: 0, Unit: in.Unit, Deadline: in.Deadline,
	}
	s.goals[g.ID] = g
	return g, nil
}

func (s *fakeGoalStore) UpdateGoal(_ context.Context, id int, in models.UpdateGoal) (models.Goal, error) {
	g, ok := s.goals[id]
	if !ok {
		return models.Goal{}, storage.ErrNotFound
	}
	if in.Title != nil {
		g.Title = *in.Title
	}
	if in.Description != nil {
		g.Description = in.Description
	}
	if in.Target != nil {
		g.Target = *in.Target
	}
	if in.Current != nil {
		g.Current = *in.Current
	}
	if in.Unit != nil {
		g.Unit = in.Unit
	}
	if in.Deadline != nil {
		g.Deadline = in.Deadline
	}
	s.goals[id] = g
	return g, nil
}

func (s *fakeGoalStore) DeleteGoal(_ context.Context, id int) error {
	if _, ok := s.goals[id]; !ok {
		return storage.ErrNotFound
	}
	delete(s.goals, id)
	return nil
}

type fakeChatStore struct {
	nextID   int
	messages []models.ChatMessage
}

func newFakeChatStore() *fakeChatStore {
	return &fakeChatStore{}
}

func (s *fakeChatStore) ChatMessages(_ context.Context, userID int) ([]models.ChatMessage, error) {
	out := []models.ChatMessage{}
	for _, m := range s.messages {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s *fakeChatStore) CreateChatMessage(_ context.Context, userID int, content string, isAI bool) (models.ChatMessage, error) {
	s.nextID++
	m := models.ChatMessage{ID: s.nextID, UserID: userID, Content: content, IsAI: isAI}
	s.messages = append(s.messages, m)
	return m, nil
}

type fakeMoodStore struct {
	nextID  int
	entries []models.MoodEntry
}

func newFakeMoodStore() *fakeMoodStore {
	return &fakeMoodStore{}
}

func (s *fakeMoodStore) MoodEntries(_ context.Context, userID int) ([]models.MoodEntry, error) {
	out := []models.MoodEntry{}
	for _, e := range s.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (s *fakeMoodStore) CreateMoodEntry(_ context.Context, userID int, in models.InsertMoodEntry) (models.MoodEntry, error) {
	s.nextID++
	e := models.MoodEntry{ID: s.nextID, UserID: userID, Mood: in.Mood, Score: in.Score, Note: in.Note}
	s.entries = append(s.entries, e)
	return e, nil
}

type fakeSettingsStore struct {
	nextID int
	rows   map[int]models.Settings // keyed by user id
}

func newFakeSettingsStore() *fakeSettingsStore {
	return &fakeSettingsStore{rows: map[int]models.Settings{}}
}

func (s *fakeSettingsStore) Settings(_ context.Context, userID int) (models.Settings, error) {
	if row, ok := s.rows[userID]; ok {
		return row, nil
	}
	s.nextID++
	row := models.Settings{
		ID:                   s.nextID,
		UserID:               userID,
		Theme:                models.DefaultTheme,
		NotificationsEnabled: true,
		AISettings: models.AISettings{
			Name:   models.DefaultCompanionName,
			Avatar: models.DefaultCompanionAvatar,
		},
	}
	s.rows[userID] = row
	return row, nil
}

func (s *fakeSettingsStore) UpdateSettings(ctx context.Context, userID int, in models.UpdateSettings) (models.Settings, error) {
	row, err := s.Settings(ctx, userID)
	if err != nil {
		return models.Settings{}, err
	}
	if in.Theme != nil {
		row.Theme = *in.Theme
	}
	if in.NotificationsEnabled != nil {
		row.NotificationsEnabled = *in.NotificationsEnabled
	}
	if in.AISettings != nil {
		if in.AISettings.Name != nil {
			row.AISettings.Name = *in.AISettings.Name
		}
		if in.AISettings.Avatar != nil {
			row.AISettings.Avatar = *in.AISettings.Avatar
		}
	}
	s.rows[userID] = row
	return row, nil
}

type fakeUserStore struct {
	nextID int
	users  map[int]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int]models.User{}}
}

func (s *fakeUserStore) User(_ context.Context, id int) (models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return models.User{}, storage.ErrNotFound
	}
	return u, nil
}

func (s *fakeUserStore) UserByUsername(_ context.Context, username string) (models.User, error) {
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, storage.ErrNotFound
}

func (s *fakeUserStore) CreateUser(_ context.Context, in models.InsertUser) (models.User, error) {
	s.nextID++
	u := models.User{
		ID:              s.nextID,
		Username:        in.Username,
		Password:        in.Password,
		FirstName:       in.FirstName,
		AICompanionName: models.DefaultCompanionName,
	}
	s.users[u.ID] = u
	return u, nil
}

func (s *fakeUserStore) UpdateCompanionName(_ context.Context, id int, name string) error {
	u, ok := s.users[id]
	if !ok {
		return storage.ErrNotFound
	}
	u.AICompanionName = name
	s.users[id] = u
	return nil
}

type fakeSessionStore struct {
	nextToken int
	sessions  map[string]int
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]int{}}
}

func (s *fakeSessionStore) CreateSession(_ context.Context, userID int) (string, error) {
	s.nextToken++
	token := fmt.Sprintf("token-%d", s.nextToken)
	s.sessions[token] = userID
	return token, nil
}

func (s *fakeSessionStore) SessionUserID(_ context.Context, token string) (int, error) {
	userID, ok := s.sessions[token]
	if !ok {
		return 0, storage.ErrNotFound
	}
	return userID, nil
}

func (s *fakeSessionStore) DeleteSession(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

// Request helpers.

func jsonBody(t *testing.T, payload any) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	return bytes.NewReader(data)
}

// authedRequest builds a request already carrying the user id the session
// middleware would have attached.
func authedRequest(t *testing.T, method, target string, body any, userID int) *http.Request {
	t.Helper()
	var r *http.Request
	if body != nil {
		r = httptest.NewRequest(method, target, jsonBody(t, body))
	} else {
		r = httptest.NewRequest(method, target, nil)
	}
	return r.WithContext(withUserID(r.Context(), userID))
}

func withPathID(r *http.Request, id string) *http.Request {
	r.SetPathValue("id", id)
	return r
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(w.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}
