// Package store defines the document store used by the API
// and an in-memory implementation of it.
package store

import (
	"context"
	"crypto/rand"
	"errors"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/portfolio/portfolio/internal/model"
)

// ErrUnavailable reports that the backing store could not be reached.
var ErrUnavailable = errors.New("store unavailable")

// ContactStore persists contact messages.
type ContactStore interface {
	ListContacts(ctx context.Context) ([]*model.Contact, error)
	CreateContact(ctx context.Context, contact *model.Contact) error
}

// ProjectStore persists portfolio projects.
type ProjectStore interface {
	ListProjects(ctx context.Context) ([]*model.Project, error)
	CreateProject(ctx context.Context, project *model.Project) error
}

// Store is a document store holding the contacts and projects collections.
// Create methods assign ID and CreatedAt on the passed document.
type Store interface {
	ContactStore
	ProjectStore
	Ping(ctx context.Context) error
	Close() error
}

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewID returns a new lexicographically sortable document id.
func NewID(now time.Time) string {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return ulid.MustNew(ulid.Timestamp(now), entropy).String()
}

// Stamp assigns a fresh ID and creation time.
func Stamp(id *string, createdAt *time.Time) {
	now := time.Now().UTC()
	*id = NewID(now)
	*createdAt = now
}
