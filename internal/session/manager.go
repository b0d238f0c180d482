package session

import (
	"fmt"
	"net/http"
)

// Manager ties the session Store to the browser cookie.
type Manager struct {
	store      Store
	cookieName string
	secure     bool
}

// NewManager creates a Manager. Set secure for HTTPS deployments.
func NewManager(store Store, cookieName string, secure bool) *Manager {
	return &Manager{
		store:      store,
		cookieName: cookieName,
		secure:     secure,
	}
}

// Token returns the session token from the request cookie, or "".
func (m *Manager) Token(r *http.Request) string {
	cookie, err := r.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Ensure returns the request's session token, issuing a new cookie when
// the request has none. Anonymous visitors get a token too so flash
// messages can reach them. The issued cookie is also attached to the
// request, so later calls during the same request reuse one token.
func (m *Manager) Ensure(w http.ResponseWriter, r *http.Request) (string, error) {
	if token := m.Token(r); token != "" {
		return token, nil
	}

	token, err := NewToken()
	if err != nil {
		return "", fmt.Errorf("generate session token: %w", err)
	}

	cookie := &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)
	r.AddCookie(cookie)

	return token, nil
}

// UserID resolves the request to a stored user ID, or ErrNoSession.
func (m *Manager) UserID(r *http.Request) (int64, error) {
	token := m.Token(r)
	if token == "" {
		return 0, ErrNoSession
	}
	return m.store.User(r.Context(), token)
}

// Login establishes the current identity for the browser session.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID int64) error {
	token, err := m.Ensure(w, r)
	if err != nil {
		return err
	}
	return m.store.SetUser(r.Context(), token, userID)
}

// Logout clears the current identity. Safe to call when nobody is
// logged in.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	token := m.Token(r)
	if token == "" {
		return nil
	}
	return m.store.Delete(r.Context(), token)
}

// Flash queues a one-time status message for the next rendered page.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, message string) error {
	token, err := m.Ensure(w, r)
	if err != nil {
		return err
	}
	return m.store.AddFlash(r.Context(), token, message)
}

// PopFlashes returns and discards the pending messages for the request.
// Returns nil on any failure: a page render never breaks over a flash.
func (m *Manager) PopFlashes(r *http.Request) []string {
	token := m.Token(r)
	if token == "" {
		return nil
	}
	messages, err := m.store.PopFlashes(r.Context(), token)
	if err != nil {
		return nil
	}
	return messages
}
