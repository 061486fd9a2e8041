package worker

import (
	"context"
	"time"

	"github.com/Prakul111/vibe-code-project/internal/agent"
	"github.com/Prakul111/vibe-code-project/internal/sandbox"
	"github.com/Prakul111/vibe-code-project/vibe/messages"
)

const (
	previewPort  = 3000
	historyLimit = 20

	// bounds the error reply and sandbox cleanup after a failed run
	cleanupTimeout = 10 * time.Second

	// stored as the ASSISTANT/ERROR message when a run fails
	errorMessage = "Something went wrong. Please try again."
)

// sandbox operations a run needs, implemented by *sandbox.Client
type Sandboxes interface {
	Create(ctx context.Context, template string) (*sandbox.Sandbox, error)
	WriteFiles(ctx context.Context, id string, files map[string]string) error
	Host(id string, port int) string
	Kill(ctx context.Context, id string) error
}

type CodeAgent interface {
	Run(ctx context.Context, req agent.RunRequest) (*agent.RunResult, error)
}

// message persistence a run needs, implemented by *messages.Repository
type MessageStore interface {
	ListRecent(ctx context.Context, projectID string, limit int) ([]messages.Message, error)
	CreateWithFragment(ctx context.Context, res messages.AssistantResult) (*messages.Message, error)
	CreateAssistant(ctx context.Context, projectID, content string, msgType messages.Type) (*messages.Message, error)
}

// handles code-agent/run events
type CodeAgentRunner struct {
	sandboxes Sandboxes
	agent     CodeAgent
	messages  MessageStore
	template  string
}
