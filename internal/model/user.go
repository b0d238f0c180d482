// Package model defines domain entities for the application.
package model

// User represents a registered author account.
// The password is stored only as an Argon2id hash, never in plaintext.
type User struct {
	ID           int64
	Username     string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
}

// FullName returns the display name for templates.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
