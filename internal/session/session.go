// Package session provides server-side browser sessions backed by Redis.
// The cookie carries only a random token; user identity and pending flash
// messages live in the store under that token.
package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
)

// ErrNoSession indicates no identity is stored for the token.
var ErrNoSession = errors.New("no session")

// tokenLen is the raw token length in bytes (32 hex chars on the wire).
const tokenLen = 16

// Store persists session identity and flash messages by token.
type Store interface {
	// SetUser associates a user ID with the token.
	SetUser(ctx context.Context, token string, userID int64) error
	// User returns the user ID for the token, or ErrNoSession.
	User(ctx context.Context, token string) (int64, error)
	// Delete clears the identity for the token. Pending flash messages
	// survive so a logout notice can still be shown.
	Delete(ctx context.Context, token string) error
	// AddFlash queues a one-time message for the token.
	AddFlash(ctx context.Context, token, message string) error
	// PopFlashes returns and discards all queued messages for the token.
	PopFlashes(ctx context.Context, token string) ([]string, error)
}

// NewToken generates an unguessable session token.
func NewToken() (string, error) {
	b := make([]byte, tokenLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
