package messages

import (
	"context"
	"time"

	"github.com/Prakul111/vibe-code-project/internal/jobs"
	"github.com/Prakul111/vibe-code-project/internal/storage"
)

type Role string

const (
	RoleUser      Role = "USER"
	RoleAssistant Role = "ASSISTANT"
)

type Type string

const (
	TypeResult Type = "RESULT"
	TypeError  Type = "ERROR"
)

type Repository struct {
	db storage.DB
}

type Message struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Role      Role      `json:"role"`
	Type      Type      `json:"type"`
	ProjectID string    `json:"projectId"`
	CreateAt  time.Time `json:"createAt"`
	UpdateAt  time.Time `json:"updateAt"`
	Fragment  *Fragment `json:"fragment"`
}

type Fragment struct {
	ID         string            `json:"id"`
	MessageID  string            `json:"messageId"`
	SandboxURL string            `json:"sandboxUrl"`
	Title      string            `json:"title"`
	Files      map[string]string `json:"file"`
	CreateAt   time.Time         `json:"createAt"`
	UpdateAt   time.Time         `json:"updateAt"`
}

// the agent's successful answer, stored as an ASSISTANT message with its fragment
type AssistantResult struct {
	ProjectID  string
	Content    string
	Title      string
	SandboxURL string
	Files      map[string]string
}

type GetManyInput struct {
	ProjectID string `json:"projectId" validate:"required"`
}

type CreateInput struct {
	Value     string `json:"value" validate:"required,min=1,max=10000"`
	ProjectID string `json:"projectId" validate:"required"`
}

// persistence the procedures depend on, implemented by *Repository
type Store interface {
	ListByProject(ctx context.Context, projectID string) ([]Message, error)
	Create(ctx context.Context, projectID, content string, role Role, msgType Type) (*Message, error)
	GetFragment(ctx context.Context, id string) (*Fragment, error)
}

type Service struct {
	store Store
	jobs  jobs.Sender
}
