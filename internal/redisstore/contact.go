package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/portfolio/portfolio/internal/model"
	"github.com/portfolio/portfolio/internal/store"
)

// CreateContact appends a contact document, assigning its ID and CreatedAt.
func (s *Store) CreateContact(ctx context.Context, contact *model.Contact) error {
	store.Stamp(&contact.ID, &contact.CreatedAt)

	if err := s.push(ctx, contactsKey, contact); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// ListContacts returns all contacts in insertion order.
func (s *Store) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	contacts := make([]*model.Contact, 0)

	err := s.list(ctx, contactsKey, func(data []byte) error {
		var c model.Contact
		if err := json.Unmarshal(data, &c); err != nil {
			return err
		}
		contacts = append(contacts, &c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	return contacts, nil
}
