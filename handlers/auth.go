package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/cironunes/funretro-api/auth"
	"github.com/cironunes/funretro-api/config"
	"github.com/cironunes/funretro-api/middleware"
	"github.com/cironunes/funretro-api/models"
	"github.com/cironunes/funretro-api/store"
)

// POST /api/auth/register
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req struct {
		FirstName string
		LastName  string
		Email     string
		Password  string
		Photo     string
	}
	if err := decodeJSON(r, &req); err != nil {
		log.Printf("Register: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.FirstName == "" || req.LastName == "" || req.Email == "" || req.Password == "" {
		http.Error(w, "firstName, lastName, email and password are required", http.StatusBadRequest)
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("Register: Failed to hash password: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashed,
		Photo:     req.Photo,
	}
	if err := h.Store.CreateUser(&user); err != nil {
		log.Printf("Register: Failed to create user for email=%s: %v", req.Email, err)
		storeError(w, err, "User")
		return
	}

	log.Printf("Register: Created user id=%d", user.ID)
	writeJSON(w, http.StatusCreated, map[string]bool{"success": true})
}

// POST /api/auth/login
//
// Unknown email and wrong password produce the same response so the two
// are indistinguishable to the caller.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string
		Password string
	}
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	user, err := h.Store.UserByEmail(req.Email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			log.Printf("Login: Lookup failed for email=%s: %v", req.Email, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		http.Error(w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := h.Sessions.Create(user.ID)
	if err != nil {
		log.Printf("Login: Failed to create session for userID=%d: %v", user.ID, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, sessionCookie(token, 86400)) // 24 hours

	log.Printf("Login: userID=%d logged in", user.ID)
	writeJSON(w, http.StatusOK, user)
}

// POST /api/auth/logout
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.CookieName)
	if err == nil {
		if err := h.Sessions.Destroy(cookie.Value); err != nil {
			log.Printf("Logout: Failed to destroy session: %v", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	http.SetCookie(w, sessionCookie("", -1))

	writeSuccess(w)
}

// sessionCookie builds the session cookie. In development the cookie is
// host-only; in production it carries the configured domain.
func sessionCookie(token string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   config.Env.CookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   maxAge,
	}
	if !config.Env.IsDevelopment {
		cookie.Domain = config.Env.Domain
	}
	return cookie
}

// GET /api/me
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r)
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
