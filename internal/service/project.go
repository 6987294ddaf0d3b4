package service

import (
	"context"
	"time"

	"github.com/portfolio/portfolio/internal/metrics"
	"github.com/portfolio/portfolio/internal/model"
	"github.com/portfolio/portfolio/internal/store"
)

// ProjectService handles portfolio projects.
type ProjectService struct {
	store   store.ProjectStore
	metrics metrics.Recorder
}

// NewProjectService creates a new ProjectService.
func NewProjectService(s store.ProjectStore, recorder metrics.Recorder) *ProjectService {
	if recorder == nil {
		recorder = metrics.NewNoop()
	}
	return &ProjectService{
		store:   s,
		metrics: recorder,
	}
}

// CreateProjectInput defines input for creating a project.
type CreateProjectInput struct {
	Title        string
	Description  string
	Link         string
	Technologies []string
}

// CreateProject inserts a new project.
func (s *ProjectService) CreateProject(ctx context.Context, input CreateProjectInput) (*model.Project, error) {
	technologies := make(model.Technologies, len(input.Technologies))
	copy(technologies, input.Technologies)

	project := &model.Project{
		Title:        input.Title,
		Description:  input.Description,
		Link:         input.Link,
		Technologies: technologies,
	}

	start := time.Now()
	err := s.store.CreateProject(ctx, project)
	observe(s.metrics, OpCreateProject, start, err)
	if err != nil {
		return nil, err
	}

	s.metrics.IncProjectCreated()
	return project, nil
}

// ListProjects returns every stored project.
func (s *ProjectService) ListProjects(ctx context.Context) ([]*model.Project, error) {
	start := time.Now()
	projects, err := s.store.ListProjects(ctx)
	observe(s.metrics, OpListProjects, start, err)
	if err != nil {
		return nil, err
	}
	return projects, nil
}
