package service

import (
	"context"
	"slices"

	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
)

// ProjectSource 提供项目集合的数据。
type ProjectSource interface {
	ListProjects(ctx context.Context) ([]db.Project, error)
	RenderBody(ctx context.Context, collection, id, body string) (*content.Rendered, error)
}

// ProjectAdjacent holds the neighbouring projects in the chronological list.
type ProjectAdjacent struct {
	Newer *db.Project
	Older *db.Project
}

// ProjectService wraps the flat, start-date ordered projects collection.
type ProjectService struct {
	source ProjectSource
}

// NewProjectService creates a ProjectService instance.
func NewProjectService(source ProjectSource) *ProjectService {
	return &ProjectService{source: source}
}

// ListAll returns projects by start date descending; projects without a
// start date sort last.
func (s *ProjectService) ListAll(ctx context.Context) ([]db.Project, error) {
	projects, err := s.source.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	sorted := slices.Clone(projects)
	slices.SortStableFunc(sorted, func(a, b db.Project) int {
		av, bv := a.StartUnix(), b.StartUnix()
		switch {
		case av > bv:
			return -1
		case av < bv:
			return 1
		default:
			return 0
		}
	})
	return sorted, nil
}

// Get returns the project with id, or nil.
func (s *ProjectService) Get(ctx context.Context, id string) (*db.Project, error) {
	projects, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexOfProject(projects, id)
	if idx < 0 {
		return nil, nil
	}
	return &projects[idx], nil
}

// Adjacent returns the previous (newer) and next (older) project by position.
func (s *ProjectService) Adjacent(ctx context.Context, id string) (ProjectAdjacent, error) {
	projects, err := s.ListAll(ctx)
	if err != nil {
		return ProjectAdjacent{}, err
	}
	idx := indexOfProject(projects, id)
	if idx < 0 {
		return ProjectAdjacent{}, nil
	}

	var adj ProjectAdjacent
	if idx > 0 {
		adj.Newer = &projects[idx-1]
	}
	if idx < len(projects)-1 {
		adj.Older = &projects[idx+1]
	}
	return adj, nil
}

// Render renders the project body.
func (s *ProjectService) Render(ctx context.Context, project db.Project) (*content.Rendered, error) {
	return s.source.RenderBody(ctx, db.CollectionProjects, project.ID, project.Body)
}

func indexOfProject(projects []db.Project, id string) int {
	return slices.IndexFunc(projects, func(p db.Project) bool {
		return p.ID == id
	})
}
