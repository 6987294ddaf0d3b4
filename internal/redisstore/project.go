package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/portfolio/portfolio/internal/model"
	"github.com/portfolio/portfolio/internal/store"
)

// CreateProject appends a project document, assigning its ID and CreatedAt.
func (s *Store) CreateProject(ctx context.Context, project *model.Project) error {
	store.Stamp(&project.ID, &project.CreatedAt)

	if err := s.push(ctx, projectsKey, project); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	return nil
}

// ListProjects returns all projects in insertion order.
func (s *Store) ListProjects(ctx context.Context) ([]*model.Project, error) {
	projects := make([]*model.Project, 0)

	err := s.list(ctx, projectsKey, func(data []byte) error {
		var p model.Project
		if err := json.Unmarshal(data, &p); err != nil {
			return err
		}
		projects = append(projects, &p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	return projects, nil
}
