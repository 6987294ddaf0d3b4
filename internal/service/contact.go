package service

import (
	"context"
	"time"

	"github.com/portfolio/portfolio/internal/metrics"
	"github.com/portfolio/portfolio/internal/model"
	"github.com/portfolio/portfolio/internal/store"
)

// ContactService handles contact messages.
type ContactService struct {
	store   store.ContactStore
	metrics metrics.Recorder
}

// NewContactService creates a new ContactService.
func NewContactService(s store.ContactStore, recorder metrics.Recorder) *ContactService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ContactService{
		store:   s,
		metrics: recorder,
	}
}

// CreateContactInput defines input for creating a contact.
// Fields are stored as given; nothing is validated.
type CreateContactInput struct {
	Name    string
	Email   string
	Message string
}

// CreateContact inserts a new contact message.
func (s *ContactService) CreateContact(ctx context.Context, input CreateContactInput) (*model.Contact, error) {
	contact := &model.Contact{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
	}

	start := time.Now()
	err := s.store.CreateContact(ctx, contact)
	observe(s.metrics, OpCreateContact, start, err)
	if err != nil {
		return nil, err
	}

	s.metrics.IncContactCreated()
	return contact, nil
}

// ListContacts returns every stored contact message.
func (s *ContactService) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	start := time.Now()
	contacts, err := s.store.ListContacts(ctx)
	observe(s.metrics, OpListContacts, start, err)
	if err != nil {
		return nil, err
	}
	return contacts, nil
}
