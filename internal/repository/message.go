package repository

import (
	"context"
	"fmt"

	"github.com/Ze-Austin/ze-blog/internal/model"
)

// CreateMessage inserts a new contact message and assigns its generated
// ID and creation timestamp. Messages are never read back through the
// web surface, only by operators against the database directly.
func (r *Repository) CreateMessage(ctx context.Context, message *model.Message) error {
	query := `
		INSERT INTO messages (sender, email, title, body, priority)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		message.Sender,
		message.Email,
		message.Title,
		message.Body,
		message.Priority,
	).Scan(&message.ID, &message.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}
