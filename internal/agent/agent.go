package agent

import (
	"context"
	"fmt"

	"github.com/Prakul111/vibe-code-project/internal/llm"
	"github.com/Prakul111/vibe-code-project/internal/logger"
)

const maxOutputTokens = 8192

func New(generator llm.TextGenerator) *Agent {
	return &Agent{generator: generator}
}

// asks the model for the app and parses its answer, retrying once on a malformed answer
func (a *Agent) Run(ctx context.Context, req RunRequest) (*RunResult, error) {
	if req.Value == "" {
		return nil, fmt.Errorf("value is required")
	}

	systemPrompt := buildSystemPrompt(SystemPromptContext{
		Conversations: req.ConversationHistory,
	})

	userPrompt := userPromptPrefix + req.Value

	response, err := a.callGenerator(ctx, systemPrompt, userPrompt, req.ConversationHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to generate code: %w", err)
	}

	output := transcript(req.ConversationHistory, userPrompt, response.Text)
	inputTokens := response.Usage.InputTokens
	outputTokens := response.Usage.OutputTokens
	didRetry := false

	text, ok := LastAssistantText(output)
	if !ok {
		return nil, fmt.Errorf("agent produced no assistant message")
	}

	parsed, parseErr := parseAnswer(text)
	if parseErr != nil {
		logger.FromContext(ctx).Warn("agent answer malformed, retrying", "error", parseErr)

		history := append(append([]Message{}, req.ConversationHistory...),
			Message{Role: llm.RoleUser, Content: userPrompt},
			Message{Role: llm.RoleAssistant, Content: text},
		)

		retry, err := a.callGenerator(ctx, systemPrompt, fmt.Sprintf(retryPrompt, parseErr), history)
		if err != nil {
			return nil, fmt.Errorf("failed to regenerate code: %w", err)
		}

		inputTokens += retry.Usage.InputTokens
		outputTokens += retry.Usage.OutputTokens
		didRetry = true

		output = append(output,
			OutputMessage{Role: llm.RoleUser, Text: ptr(fmt.Sprintf(retryPrompt, parseErr))},
			OutputMessage{Role: llm.RoleAssistant, Text: ptr(retry.Text)},
		)

		text, _ = LastAssistantText(output)
		if parsed, parseErr = parseAnswer(text); parseErr != nil {
			return nil, fmt.Errorf("failed to parse agent answer: %w", parseErr)
		}
	}

	return &RunResult{
		Title:        parsed.Title,
		Summary:      parsed.Summary,
		Files:        parsed.Files,
		Model:        a.generator.Model(),
		InputTokens:  inputTokens,
		OutputTokens: outputTokens,
		DidRetry:     didRetry,
		Output:       output,
	}, nil
}

func (a *Agent) callGenerator(ctx context.Context, systemPrompt, userPrompt string, history []Message) (*llm.TextGenerationResponse, error) {
	llmMessages := make([]llm.Message, 0, len(history)+1)

	for _, msg := range history {
		llmMessages = append(llmMessages, llm.Message{
			Role:    msg.Role,
			Content: msg.Content,
		})
	}

	llmMessages = append(llmMessages, llm.Message{
		Role:    llm.RoleUser,
		Content: userPrompt,
	})

	response, err := a.generator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: systemPrompt,
		Messages:     llmMessages,
		MaxTokens:    maxOutputTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to generate text: %w", err)
	}

	return response, nil
}

func transcript(history []Message, userPrompt, reply string) []OutputMessage {
	out := make([]OutputMessage, 0, len(history)+2)

	for _, msg := range history {
		out = append(out, OutputMessage{Role: msg.Role, Text: ptr(msg.Content)})
	}

	return append(out,
		OutputMessage{Role: llm.RoleUser, Text: ptr(userPrompt)},
		OutputMessage{Role: llm.RoleAssistant, Text: ptr(reply)},
	)
}

func ptr(s string) *string {
	return &s
}
