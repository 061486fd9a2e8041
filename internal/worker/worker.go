package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/Prakul111/vibe-code-project/internal/agent"
	"github.com/Prakul111/vibe-code-project/internal/jobs"
	"github.com/Prakul111/vibe-code-project/internal/logger"
	"github.com/Prakul111/vibe-code-project/internal/llm"
	"github.com/Prakul111/vibe-code-project/vibe/messages"
)

func NewCodeAgentRunner(sandboxes Sandboxes, codeAgent CodeAgent, store MessageStore, template string) *CodeAgentRunner {
	return &CodeAgentRunner{
		sandboxes: sandboxes,
		agent:     codeAgent,
		messages:  store,
		template:  template,
	}
}

// registers the runner on a consumer
func (r *CodeAgentRunner) Register(c *jobs.Consumer) {
	c.Register(jobs.EventCodeAgentRun, r.Handle)
}

// runs the agent for one event and records the outcome as an ASSISTANT message
func (r *CodeAgentRunner) Handle(ctx context.Context, ev jobs.Event) error {
	data, err := jobs.DecodeCodeAgentRun(ev)
	if err != nil {
		return err
	}

	log := logger.FromContext(ctx).With("project_id", data.ProjectID)

	msg, sandboxID, runErr := r.run(logger.WithContext(ctx, log), data)
	if runErr == nil {
		log.Info("code agent finished",
			"message_id", msg.ID,
			"sandbox_url", msg.Fragment.SandboxURL,
		)
		return nil
	}

	// the run context may already be done after a timeout or shutdown
	cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if sandboxID != "" {
		if err := r.sandboxes.Kill(cleanupCtx, sandboxID); err != nil {
			log.Warn("failed to kill sandbox", "sandbox_id", sandboxID, "error", err)
		}
	}

	if _, err := r.messages.CreateAssistant(cleanupCtx, data.ProjectID, errorMessage, messages.TypeError); err != nil {
		return errors.Join(runErr, fmt.Errorf("failed to save error message: %w", err))
	}

	return runErr
}

// returns the id of the sandbox it created, also on failure, so the caller can release it
func (r *CodeAgentRunner) run(ctx context.Context, data jobs.CodeAgentRunData) (*messages.Message, string, error) {
	sbx, err := r.sandboxes.Create(ctx, r.template)
	if err != nil {
		return nil, "", err
	}

	log := logger.FromContext(ctx).With("sandbox_id", sbx.ID)
	log.Debug("sandbox created", "template", r.template)

	recent, err := r.messages.ListRecent(ctx, data.ProjectID, historyLimit)
	if err != nil {
		return nil, sbx.ID, fmt.Errorf("failed to load history: %w", err)
	}

	result, err := r.agent.Run(ctx, agent.RunRequest{
		Value:               data.Value,
		ConversationHistory: toHistory(recent, data.Value),
	})
	if err != nil {
		return nil, sbx.ID, err
	}

	log.Debug("agent answered",
		"files", len(result.Files),
		"model", result.Model,
		"input_tokens", result.InputTokens,
		"output_tokens", result.OutputTokens,
		"did_retry", result.DidRetry,
	)

	if err := r.sandboxes.WriteFiles(ctx, sbx.ID, result.Files); err != nil {
		return nil, sbx.ID, err
	}

	msg, err := r.messages.CreateWithFragment(ctx, messages.AssistantResult{
		ProjectID:  data.ProjectID,
		Content:    result.Summary,
		Title:      result.Title,
		SandboxURL: "https://" + r.sandboxes.Host(sbx.ID, previewPort),
		Files:      result.Files,
	})
	if err != nil {
		return nil, sbx.ID, fmt.Errorf("failed to save result: %w", err)
	}

	return msg, sbx.ID, nil
}

// converts stored messages into agent history, dropping error replies and
// the trailing user message that triggered this run
func toHistory(msgs []messages.Message, value string) []agent.Message {
	if n := len(msgs); n > 0 && msgs[n-1].Role == messages.RoleUser && msgs[n-1].Content == value {
		msgs = msgs[:n-1]
	}

	history := make([]agent.Message, 0, len(msgs))
	for _, m := range msgs {
		if m.Type == messages.TypeError {
			continue
		}

		role := llm.RoleUser
		if m.Role == messages.RoleAssistant {
			role = llm.RoleAssistant
		}

		history = append(history, agent.Message{Role: role, Content: m.Content})
	}

	return history
}
