package agent

import (
	"github.com/Prakul111/vibe-code-project/internal/llm"
)

// generates a Next.js app from a user request
type Agent struct {
	generator llm.TextGenerator
}

// contains all inputs for a code agent run
type RunRequest struct {
	Value               string
	ConversationHistory []Message
}

// the parsed answer of a run
type RunResult struct {
	Title        string            `json:"title"`
	Summary      string            `json:"summary"`
	Files        map[string]string `json:"files"`
	Model        string            `json:"model"`
	InputTokens  int               `json:"input_tokens"`
	OutputTokens int               `json:"output_tokens"`
	DidRetry     bool              `json:"did_retry"`
	Output       []OutputMessage   `json:"-"`
}

// represents a single conversation turn
type Message struct {
	Role    string `json:"role"`    // "user" or "assistant"
	Content string `json:"content"` // message content
}

type ContentPart struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// one entry of a run transcript, either plain text or content parts
type OutputMessage struct {
	Role  string
	Text  *string
	Parts []ContentPart
}

// shape the model is asked to answer with
type answer struct {
	Title   string            `json:"title"`
	Summary string            `json:"summary"`
	Files   map[string]string `json:"files"`
}
