// Package session maps opaque tokens to user ids. Tokens carry no
// claims; resolution always goes back to the server-side store.
package session

import (
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultTTL matches the cookie lifetime handed to clients.
const DefaultTTL = 24 * time.Hour

const tokenLength = 32

// Store is the session boundary: login creates a binding, requests
// resolve it, logout destroys it.
type Store interface {
	// Create mints a new token bound to the user id.
	Create(userID uint) (string, error)

	// Resolve returns the user id for a token. The second return is
	// false for unknown or expired tokens.
	Resolve(token string) (uint, bool)

	// Destroy removes the binding. Destroying an unknown token is a
	// no-op.
	Destroy(token string) error
}

func newToken() (string, error) {
	return gonanoid.New(tokenLength)
}
