package model

import "time"

// Message represents a contact-form submission from a visitor.
// Messages are write-only through the web surface; operators read them
// directly from the database.
type Message struct {
	ID        int64
	Sender    string
	Email     string
	Title     string
	Body      string
	Priority  string
	CreatedAt time.Time
}
