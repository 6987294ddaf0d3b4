package store

import (
	"context"
	"sync"

	"github.com/portfolio/portfolio/internal/model"
)

// Memory is a process-local Store. Documents are kept in insertion order.
type Memory struct {
	mu       sync.RWMutex
	contacts []model.Contact
	projects []model.Project
	closed   bool
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{}
}

// ListContacts returns copies of all contacts in insertion order.
func (m *Memory) ListContacts(ctx context.Context) ([]*model.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrUnavailable
	}

	out := make([]*model.Contact, len(m.contacts))
	for i := range m.contacts {
		c := m.contacts[i]
		out[i] = &c
	}
	return out, nil
}

// CreateContact appends a contact.
func (m *Memory) CreateContact(ctx context.Context, contact *model.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrUnavailable
	}

	Stamp(&contact.ID, &contact.CreatedAt)
	m.contacts = append(m.contacts, *contact)
	return nil
}

// ListProjects returns copies of all projects in insertion order.
func (m *Memory) ListProjects(ctx context.Context) ([]*model.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrUnavailable
	}

	out := make([]*model.Project, len(m.projects))
	for i := range m.projects {
		p := m.projects[i]
		p.Technologies = append(model.Technologies{}, p.Technologies...)
		out[i] = &p
	}
	return out, nil
}

// CreateProject appends a project.
func (m *Memory) CreateProject(ctx context.Context, project *model.Project) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrUnavailable
	}

	Stamp(&project.ID, &project.CreatedAt)
	stored := *project
	stored.Technologies = append(model.Technologies{}, project.Technologies...)
	m.projects = append(m.projects, stored)
	return nil
}

// Ping reports whether the store is open.
func (m *Memory) Ping(ctx context.Context) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return ErrUnavailable
	}
	return nil
}

// Close marks the store closed; later calls fail with ErrUnavailable.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
