package messages

import (
	"context"

	"github.com/Prakul111/vibe-code-project/vibe/messages"
)

// message procedures exposed over http, implemented by *messages.Service
type Service interface {
	GetMany(ctx context.Context, projectID string) ([]messages.Message, error)
	Create(ctx context.Context, value, projectID string) (*messages.Message, error)
}

type CreateMessageRequest struct {
	Value     string `json:"value"`
	ProjectID string `json:"projectId"`
}
