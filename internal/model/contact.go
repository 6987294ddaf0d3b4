// Package model defines domain entities for the application.
package model

import "time"

// Contact is a message submitted through the public contact form.
// Contacts are append-only: they are never updated or deleted.
type Contact struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
