//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/portfolio/portfolio/internal/model"
	"github.com/portfolio/portfolio/internal/testutil"
)

// ============================================================================
// Portfolio Repository Integration Tests
// ============================================================================

func TestIntegrationRepository_CreateAndListContacts(t *testing.T) {
	ctx, repo := newPortfolioTestEnv(t)

	first := testutil.NewTestContact(t, testutil.UniqueID("ada"))
	second := &model.Contact{Name: "", Email: "garbage", Message: ""}

	if err := repo.CreateContact(ctx, first); err != nil {
		t.Fatalf("CreateContact failed: %v", err)
	}
	if err := repo.CreateContact(ctx, second); err != nil {
		t.Fatalf("CreateContact with empty fields failed: %v", err)
	}

	if first.ID == "" || first.ID == second.ID {
		t.Fatalf("expected distinct generated ids, got %q and %q", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	contacts, err := repo.ListContacts(ctx)
	if err != nil {
		t.Fatalf("ListContacts failed: %v", err)
	}
	if len(contacts) != 2 {
		t.Fatalf("expected 2 contacts, got %d", len(contacts))
	}
	if contacts[0].ID != first.ID || contacts[0].Name != first.Name {
		t.Errorf("first contact mismatch: got %+v", contacts[0])
	}
	if contacts[1].Email != "garbage" {
		t.Errorf("second contact email mismatch: got %q", contacts[1].Email)
	}
}

func TestIntegrationRepository_CreateAndListProjects(t *testing.T) {
	ctx, repo := newPortfolioTestEnv(t)

	withTech := testutil.NewTestProject(t, "T", "Go", "Rust")
	empty := testutil.NewTestProject(t, "E", "")
	none := &model.Project{Title: "N", Description: "D"}

	for _, p := range []*model.Project{withTech, empty, none} {
		if err := repo.CreateProject(ctx, p); err != nil {
			t.Fatalf("CreateProject(%s) failed: %v", p.Title, err)
		}
	}

	projects, err := repo.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects failed: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}

	if got := projects[0].Technologies; len(got) != 2 || got[0] != "Go" || got[1] != "Rust" {
		t.Errorf("technologies mismatch: got %q", got)
	}
	if got := projects[1].Technologies; len(got) != 1 || got[0] != "" {
		t.Errorf("expected [\"\"], got %q", got)
	}
	if got := projects[2].Technologies; len(got) != 0 {
		t.Errorf("expected no technologies, got %q", got)
	}
}

func TestIntegrationRepository_MigrateIsIdempotent(t *testing.T) {
	ctx, repo := newPortfolioTestEnv(t)

	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("first Migrate failed: %v", err)
	}
	if err := repo.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate failed: %v", err)
	}
}

func TestIntegrationRepository_PingAppliesMissingSchema(t *testing.T) {
	ctx, repo := newPortfolioTestEnv(t)

	if _, err := repo.Pool().Exec(ctx, "DROP TABLE IF EXISTS projects; DROP TABLE IF EXISTS contacts"); err != nil {
		t.Fatalf("drop tables: %v", err)
	}

	if err := repo.Ping(ctx); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}

	if err := repo.CreateProject(ctx, testutil.NewTestProject(t, "T", "Go")); err != nil {
		t.Fatalf("CreateProject after Ping failed: %v", err)
	}
}

func newPortfolioTestEnv(t *testing.T) (context.Context, *Repository) {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}

	ctx := context.Background()
	dbURL := testutil.RequireEnv(t, "DATABASE_URL")

	repo, err := New(ctx, dbURL)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() {
		_ = repo.Close()
	})

	unlock, err := testutil.AcquireDBLock(ctx, repo.Pool())
	if err != nil {
		t.Fatalf("acquire db lock: %v", err)
	}
	t.Cleanup(func() {
		_ = unlock()
	})

	if err := testutil.ResetSchema(ctx, repo.Pool()); err != nil {
		t.Fatalf("reset schema: %v", err)
	}

	return ctx, repo
}
