package service

import (
	"context"
	"fmt"

	"github.com/Ze-Austin/ze-blog/internal/metrics"
	"github.com/Ze-Austin/ze-blog/internal/model"
)

// MessageStore is the persistence surface the contact service needs.
// *repository.Repository satisfies it.
type MessageStore interface {
	CreateMessage(ctx context.Context, message *model.Message) error
}

// ContactService handles contact-form submissions.
type ContactService struct {
	store   MessageStore
	metrics metrics.Recorder
}

// NewContactService creates a new ContactService.
func NewContactService(store MessageStore, recorder metrics.Recorder) *ContactService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ContactService{
		store:   store,
		metrics: recorder,
	}
}

// SubmitInput defines input for a contact submission.
type SubmitInput struct {
	Sender   string
	Email    string
	Title    string
	Body     string
	Priority string
}

// Submit stores a contact message. Every submission is accepted as-is:
// no deduplication, no format validation, no rate limiting.
func (s *ContactService) Submit(ctx context.Context, input SubmitInput) (*model.Message, error) {
	message := &model.Message{
		Sender:   input.Sender,
		Email:    input.Email,
		Title:    input.Title,
		Body:     input.Body,
		Priority: input.Priority,
	}

	if err := s.store.CreateMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("create message: %w", err)
	}

	s.metrics.IncMessageReceived()

	return message, nil
}
