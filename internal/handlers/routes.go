package handlers

import (
	"net/http"
)

// NewRouter wires every handler onto one mux. Auth routes are open; every
// /api resource route sits behind the session middleware.
func NewRouter(
	auth *AuthHandler,
	diary *DiaryHandler,
	todos *TodoHandler,
	goals *GoalHandler,
	chat *ChatHandler,
	mood *MoodHandler,
	settings *SettingsHandler,
	quote *QuoteHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/register", auth.HandleRegister)
	mux.HandleFunc("POST /api/login", auth.HandleLogin)
	mux.HandleFunc("POST /api/logout", auth.HandleLogout)

	protected := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, auth.RequireUser(fn))
	}

	protected("GET /api/user", auth.HandleCurrentUser)

	protected("GET /api/diary", diary.HandleList)
	protected("GET /api/diary/{id}", diary.HandleGet)
	protected("POST /api/diary", diary.HandleCreate)
	protected("PUT /api/diary/{id}", diary.HandleUpdate)
	protected("DELETE /api/diary/{id}", diary.HandleDelete)

	protected("GET /api/todos", todos.HandleList)
	protected("GET /api/todos/{id}", todos.HandleGet)
	protected("POST /api/todos", todos.HandleCreate)
	protected("PUT /api/todos/{id}", todos.HandleUpdate)
	protected("DELETE /api/todos/{id}", todos.HandleDelete)

	protected("GET /api/goals", goals.HandleList)
	protected("GET /api/goals/{id}", goals.HandleGet)
	protected("POST /api/goals", goals.HandleCreate)
	protected("PUT /api/goals/{id}", goals.HandleUpdate)
	protected("DELETE /api/goals/{id}", goals.HandleDelete)

	protected("GET /api/chat", chat.HandleList)
	protected("POST /api/chat", chat.HandleSend)

	protected("GET /api/mood", mood.HandleList)
	protected("POST /api/mood", mood.HandleCreate)

	protected("GET /api/settings", settings.HandleGet)
	protected("PUT /api/settings", settings.HandleUpdate)

	protected("GET /api/quote", quote.HandleQuote)

	return mux
}
