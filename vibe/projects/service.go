package projects

import (
	"context"
	"errors"
	"fmt"

	"github.com/Prakul111/vibe-code-project/internal/jobs"
	"github.com/Prakul111/vibe-code-project/internal/logger"
	"github.com/Prakul111/vibe-code-project/internal/validation"
)

func NewService(store Store, sender jobs.Sender) *Service {
	return &Service{
		store:    store,
		jobs:     sender,
		nameFunc: GenerateSlug,
	}
}

// overrides the project name generator
func (s *Service) WithNameFunc(fn func() string) *Service {
	s.nameFunc = fn
	return s
}

func (s *Service) GetOne(ctx context.Context, id string) (*Project, error) {
	if err := validation.Struct(GetOneInput{ID: id}); err != nil {
		return nil, err
	}

	project, err := s.store.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrProjectNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return project, nil
}

func (s *Service) GetMany(ctx context.Context) ([]Project, error) {
	projects, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if projects == nil {
		projects = []Project{}
	}

	return projects, nil
}

// creates a project seeded with the user's prompt and starts the code agent
func (s *Service) Create(ctx context.Context, value string) (*Project, error) {
	if err := validation.Struct(CreateInput{Value: value}); err != nil {
		return nil, err
	}

	project, err := s.store.CreateWithMessage(ctx, s.nameFunc(), value)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	eventID, err := s.jobs.Send(context.WithoutCancel(ctx), jobs.EventCodeAgentRun, jobs.CodeAgentRunData{
		Value:     value,
		ProjectID: project.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to dispatch code agent for project %s: %w", project.ID, err)
	}

	logger.FromContext(ctx).Debug("code agent dispatched",
		"project_id", project.ID,
		"event_id", eventID,
	)

	return project, nil
}
