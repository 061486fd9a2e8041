package messages

import (
	"context"
	"errors"
	"fmt"

	"github.com/Prakul111/vibe-code-project/internal/jobs"
	"github.com/Prakul111/vibe-code-project/internal/logger"
	"github.com/Prakul111/vibe-code-project/internal/validation"
)

func NewService(store Store, sender jobs.Sender) *Service {
	return &Service{store: store, jobs: sender}
}

// conversation of a project, each message with its fragment or nil
func (s *Service) GetMany(ctx context.Context, projectID string) ([]Message, error) {
	if err := validation.Struct(GetManyInput{ProjectID: projectID}); err != nil {
		return nil, err
	}

	msgs, err := s.store.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	if msgs == nil {
		msgs = []Message{}
	}

	return msgs, nil
}

// appends a USER message to the project and starts the code agent
func (s *Service) Create(ctx context.Context, value, projectID string) (*Message, error) {
	if err := validation.Struct(CreateInput{Value: value, ProjectID: projectID}); err != nil {
		return nil, err
	}

	msg, err := s.store.Create(ctx, projectID, value, RoleUser, TypeResult)
	if err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	eventID, err := s.jobs.Send(context.WithoutCancel(ctx), jobs.EventCodeAgentRun, jobs.CodeAgentRunData{
		Value:     value,
		ProjectID: projectID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to dispatch code agent for project %s: %w", projectID, err)
	}

	logger.FromContext(ctx).Debug("code agent dispatched",
		"project_id", projectID,
		"message_id", msg.ID,
		"event_id", eventID,
	)

	return msg, nil
}

func (s *Service) GetFragment(ctx context.Context, id string) (*Fragment, error) {
	if id == "" {
		return nil, ErrFragmentNotFound
	}

	f, err := s.store.GetFragment(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFragmentNotFound) {
			return nil, ErrFragmentNotFound
		}
		return nil, fmt.Errorf("failed to get fragment: %w", err)
	}

	return f, nil
}
