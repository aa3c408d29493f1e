package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/avelez/quizbank-be/internal/auth"
	"github.com/avelez/quizbank-be/internal/services"
)

// UserHandler handles HTTP requests for registration, login and profile.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// CredentialsPayload defines the structure for register and login requests.
type CredentialsPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func secureCookies() bool {
	return os.Getenv("APP_ENV") == "production"
}

// Register handles new user registration. A successful registration also
// establishes a session for the new user.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if payload.Username == "" || payload.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	user, err := h.service.Register(payload.Username, payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) {
			respondMessage(w, http.StatusConflict, "Username already exists")
			return
		}
		log.Error().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		respondMessage(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate session token")
		respondMessage(w, http.StatusInternalServerError, "Failed to establish session")
		return
	}
	auth.SetSessionCookie(w, token, secureCookies())

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User registered successfully",
		"user":    map[string]string{"username": user.Username},
	})
}

// Login handles user authentication and session issuance.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload CredentialsPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.Authenticate(payload.Username, payload.Password)
	if err != nil {
		// The log keeps the real cause; the client gets one generic answer
		// for both unknown users and wrong passwords.
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed authentication attempt")
		respondMessage(w, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to generate session token")
		respondMessage(w, http.StatusInternalServerError, "Failed to establish session")
		return
	}
	auth.SetSessionCookie(w, token, secureCookies())

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Logged in successfully",
		"user":    map[string]string{"username": user.Username},
	})
}

// Logout destroys the current session binding. Stored data is untouched.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, secureCookies())
	respondMessage(w, http.StatusOK, "Logged out successfully")
}

// Profile returns the current username when a valid session is present,
// and an unauthenticated status otherwise. The claimed user must still
// exist; a token outliving its account does not count as a session.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.ClaimsFromRequest(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "User not logged in")
		return
	}

	user, err := h.service.GetUserByID(claims.UserID)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			log.Warn().Str("user_id", claims.UserID).Msg("Session token for unknown user")
			respondMessage(w, http.StatusUnauthorized, "User not logged in")
			return
		}
		log.Error().Err(err).Str("user_id", claims.UserID).Msg("Failed to load profile")
		respondMessage(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"username": user.Username})
}
