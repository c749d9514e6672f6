package middleware

import (
	"context"
	"log"
	"net/http"

	"github.com/cironunes/funretro-api/models"
	"github.com/cironunes/funretro-api/session"
	"github.com/cironunes/funretro-api/store"
)

type contextKey string

const userKey contextKey = "user"

// CookieName is the cookie carrying the opaque session token.
const CookieName = "retro_session"

// ResolveSession reads the session cookie, resolves it to a user, and
// attaches the user to the request context. Requests without a valid
// session pass through unauthenticated; RequireUser decides per route
// whether that is acceptable.
func ResolveSession(sessions session.Store, st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			userID, ok := sessions.Resolve(cookie.Value)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			user, err := st.UserByID(userID)
			if err != nil {
				// A session pointing at a deleted user resolves to
				// nobody rather than failing the request.
				log.Printf("ResolveSession: user %d not found for live session: %v", userID, err)
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUser rejects requests that did not resolve to a user.
func RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := UserFrom(r); !ok {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// UserFrom returns the authenticated user attached by ResolveSession.
func UserFrom(r *http.Request) (*models.User, bool) {
	user, ok := r.Context().Value(userKey).(*models.User)
	return user, ok
}
