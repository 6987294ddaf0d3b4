package repository

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"github.com/portfolio/portfolio/internal/model"
	"github.com/portfolio/portfolio/internal/store"
)

// CreateProject inserts a new project, assigning its ID and CreatedAt.
func (r *Repository) CreateProject(ctx context.Context, project *model.Project) error {
	query := `
		INSERT INTO projects (id, title, description, link, technologies, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if err := r.ensureSchema(ctx); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	store.Stamp(&project.ID, &project.CreatedAt)

	technologies := []string(project.Technologies)
	if technologies == nil {
		technologies = []string{}
	}

	_, err := r.pool.Exec(ctx, query,
		project.ID,
		project.Title,
		project.Description,
		project.Link,
		pq.Array(technologies),
		project.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

// ListProjects returns all projects in insertion order.
func (r *Repository) ListProjects(ctx context.Context) ([]*model.Project, error) {
	query := `
		SELECT id, title, description, link, technologies, created_at
		FROM projects
		ORDER BY created_at, id
	`

	if err := r.ensureSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*model.Project, 0)
	for rows.Next() {
		var (
			p            model.Project
			technologies []string
		)
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Description,
			&p.Link,
			pq.Array(&technologies),
			&p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		p.Technologies = technologies
		projects = append(projects, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}
