package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"wellsphere/internal/models"
	"wellsphere/internal/storage"
)

const sessionCookieName = "wellsphere_session"

type UserStore interface {
	User(ctx context.Context, id int) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, in models.InsertUser) (models.User, error)
	UpdateCompanionName(ctx context.Context, id int, name string) error
}

type SessionStore interface {
	CreateSession(ctx context.Context, userID int) (string, error)
	SessionUserID(ctx context.Context, token string) (int, error)
	DeleteSession(ctx context.Context, token string) error
}

type AuthHandler struct {
	users    UserStore
	sessions SessionStore
}

func NewAuthHandler(users UserStore, sessions SessionStore) *AuthHandler {
	return &AuthHandler{
		users:    users,
		sessions: sessions,
	}
}

type userIDKey struct{}

func withUserID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserID returns the authenticated user id placed on the request context by
// RequireUser. It is zero only for requests that bypassed the middleware.
func UserID(r *http.Request) int {
	id, _ := r.Context().Value(userIDKey{}).(int)
	return id
}

// RequireUser resolves the session cookie to a user id and rejects the
// request with 401 when there is no valid session.
func (h *AuthHandler) RequireUser(next http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		userID, err := h.sessions.SessionUserID(r.Context(), cookie.Value)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(withUserID(r.Context(), userID)))
	})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	op := "handlers.AuthHandler.HandleRegister"

	var in models.InsertUser
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if errs := in.Validate(); len(errs) > 0 {
		respondValidationError(w, errs)
		return
	}

	_, err := h.users.UserByUsername(r.Context(), in.Username)
	if err == nil {
		respondError(w, http.StatusBadRequest, "Username already exists")
		return
	}
	if !errors.Is(err, storage.ErrNotFound) {
		log.Printf("%s: lookup username: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error creating user: "+err.Error())
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("%s: hash password: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error processing password")
		return
	}
	in.Password = string(hashed)

	user, err := h.users.CreateUser(r.Context(), in)
	if err != nil {
		log.Printf("%s: create user: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error creating user: "+err.Error())
		return
	}

	token, err := h.sessions.CreateSession(r.Context(), user.ID)
	if err != nil {
		log.Printf("%s: create session: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error creating session: "+err.Error())
		return
	}

	h.setSessionCookie(w, token)
	respondJSON(w, http.StatusCreated, user)
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	op := "handlers.AuthHandler.HandleLogin"

	var in struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(r, &in); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.users.UserByUsername(r.Context(), in.Username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "Invalid username or password")
			return
		}
		log.Printf("%s: lookup username: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error logging in: "+err.Error())
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		respondError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := h.sessions.CreateSession(r.Context(), user.ID)
	if err != nil {
		log.Printf("%s: create session: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error creating session: "+err.Error())
		return
	}

	h.setSessionCookie(w, token)
	respondJSON(w, http.StatusOK, user)
}

func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	op := "handlers.AuthHandler.HandleLogout"

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.sessions.DeleteSession(r.Context(), cookie.Value); err != nil {
			log.Printf("%s: delete session: %v", op, err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	respondJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) HandleCurrentUser(w http.ResponseWriter, r *http.Request) {
	op := "handlers.AuthHandler.HandleCurrentUser"

	user, err := h.users.User(r.Context(), UserID(r))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		log.Printf("%s: fetch user: %v", op, err)
		respondError(w, http.StatusInternalServerError, "Error fetching user: "+err.Error())
		return
	}

	respondJSON(w, http.StatusOK, user)
}
