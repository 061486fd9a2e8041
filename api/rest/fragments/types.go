package fragments

import (
	"context"

	"github.com/Prakul111/vibe-code-project/vibe/messages"
)

// fragment lookup, implemented by *messages.Service
type Service interface {
	GetFragment(ctx context.Context, id string) (*messages.Fragment, error)
}

type previewData struct {
	Title      string
	SandboxURL string
	Key        int
	NextKey    int
}
