package repository

import (
	"context"
	"fmt"

	"github.com/portfolio/portfolio/internal/model"
	"github.com/portfolio/portfolio/internal/store"
)

// CreateContact inserts a new contact, assigning its ID and CreatedAt.
func (r *Repository) CreateContact(ctx context.Context, contact *model.Contact) error {
	query := `
		INSERT INTO contacts (id, name, email, message, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	if err := r.ensureSchema(ctx); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	store.Stamp(&contact.ID, &contact.CreatedAt)

	_, err := r.pool.Exec(ctx, query,
		contact.ID,
		contact.Name,
		contact.Email,
		contact.Message,
		contact.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	return nil
}

// ListContacts returns all contacts in insertion order.
func (r *Repository) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	query := `
		SELECT id, name, email, message, created_at
		FROM contacts
		ORDER BY created_at, id
	`

	if err := r.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*model.Contact, 0)
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contacts: %w", err)
	}

	return contacts, nil
}
