// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import "github.com/portfolio/portfolio/internal/model"

// CreateContactRequest represents the request body for submitting a contact message.
// Scalar values of any JSON type are accepted as text.
type CreateContactRequest struct {
	Name    model.Text `json:"name"`
	Email   model.Text `json:"email"`
	Message model.Text `json:"message"`
}

// CreateProjectRequest represents the request body for adding a project.
// Technologies may be sent as an array or as one comma-separated string.
type CreateProjectRequest struct {
	Title        model.Text         `json:"title"`
	Description  model.Text         `json:"description"`
	Link         model.Text         `json:"link"`
	Technologies model.Technologies `json:"technologies"`
}

// SuccessResponse acknowledges a create operation.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Acknowledgment messages.
const (
	MessageContactCreated = "Message sent successfully!"
	MessageProjectCreated = "Project added successfully!"
)
