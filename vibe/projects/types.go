package projects

import (
	"context"
	"time"

	"github.com/Prakul111/vibe-code-project/internal/jobs"
	"github.com/Prakul111/vibe-code-project/internal/storage"
)

type Repository struct {
	db storage.DB
}

type Project struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	CreateAt time.Time `json:"createAt"`
	UpdateAt time.Time `json:"updateAt"`
}

type GetOneInput struct {
	ID string `json:"id" validate:"required"`
}

type CreateInput struct {
	Value string `json:"value" validate:"required,min=1,max=10000"`
}

// persistence the procedures depend on, implemented by *Repository
type Store interface {
	Get(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context) ([]Project, error)
	CreateWithMessage(ctx context.Context, name, content string) (*Project, error)
}

type Service struct {
	store    Store
	jobs     jobs.Sender
	nameFunc func() string
}
