package projects

import (
	"context"

	"github.com/Prakul111/vibe-code-project/vibe/projects"
)

// project procedures exposed over http, implemented by *projects.Service
type Service interface {
	GetOne(ctx context.Context, id string) (*projects.Project, error)
	GetMany(ctx context.Context) ([]projects.Project, error)
	Create(ctx context.Context, value string) (*projects.Project, error)
}

type CreateProjectRequest struct {
	Value string `json:"value"`
}
