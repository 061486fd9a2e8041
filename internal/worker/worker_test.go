package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Prakul111/vibe-code-project/internal/agent"
	"github.com/Prakul111/vibe-code-project/internal/jobs"
	"github.com/Prakul111/vibe-code-project/internal/sandbox"
	"github.com/Prakul111/vibe-code-project/vibe/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements Sandboxes for testing
type mockSandboxes struct {
	createFunc     func(ctx context.Context, template string) (*sandbox.Sandbox, error)
	writeFilesFunc func(ctx context.Context, id string, files map[string]string) error

	killed []string
}

func (m *mockSandboxes) Create(ctx context.Context, template string) (*sandbox.Sandbox, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, template)
	}

	return &sandbox.Sandbox{ID: "sbx-1", TemplateID: template}, nil
}

func (m *mockSandboxes) WriteFiles(ctx context.Context, id string, files map[string]string) error {
	if m.writeFilesFunc != nil {
		return m.writeFilesFunc(ctx, id, files)
	}

	return nil
}

func (m *mockSandboxes) Host(id string, port int) string {
	return "3000-" + id + ".e2b.app"
}

func (m *mockSandboxes) Kill(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.killed = append(m.killed, id)
	return nil
}

// implements CodeAgent for testing
type mockAgent struct {
	runFunc func(ctx context.Context, req agent.RunRequest) (*agent.RunResult, error)
}

func (m *mockAgent) Run(ctx context.Context, req agent.RunRequest) (*agent.RunResult, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, req)
	}

	return &agent.RunResult{
		Title:   "Todo App",
		Summary: "A simple todo list.",
		Files:   map[string]string{"app/page.tsx": "export default function Page() {}"},
	}, nil
}

// implements MessageStore for testing
type mockMessages struct {
	listRecentFunc func(ctx context.Context, projectID string, limit int) ([]messages.Message, error)

	results []messages.AssistantResult
	errors  []string
}

func (m *mockMessages) ListRecent(ctx context.Context, projectID string, limit int) ([]messages.Message, error) {
	if m.listRecentFunc != nil {
		return m.listRecentFunc(ctx, projectID, limit)
	}

	return []messages.Message{}, nil
}

func (m *mockMessages) CreateWithFragment(_ context.Context, res messages.AssistantResult) (*messages.Message, error) {
	m.results = append(m.results, res)

	return &messages.Message{
		ID:       "msg-1",
		Role:     messages.RoleAssistant,
		Type:     messages.TypeResult,
		Fragment: &messages.Fragment{ID: "frag-1", SandboxURL: res.SandboxURL},
	}, nil
}

// fails on a done context the way pgx does
func (m *mockMessages) CreateAssistant(ctx context.Context, projectID, content string, msgType messages.Type) (*messages.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.errors = append(m.errors, content)

	return &messages.Message{ID: "msg-err", Role: messages.RoleAssistant, Type: msgType, Content: content}, nil
}

func event(t *testing.T, value, projectID string) jobs.Event {
	t.Helper()

	data, err := json.Marshal(jobs.CodeAgentRunData{Value: value, ProjectID: projectID})
	require.NoError(t, err)

	return jobs.Event{ID: "1-0", Name: jobs.EventCodeAgentRun, Data: data}
}

func TestHandle_StoresResultWithFragment(t *testing.T) {
	store := &mockMessages{}
	var written map[string]string

	runner := NewCodeAgentRunner(&mockSandboxes{
		createFunc: func(_ context.Context, template string) (*sandbox.Sandbox, error) {
			assert.Equal(t, "vibe-nextjs-test", template)
			return &sandbox.Sandbox{ID: "sbx-42"}, nil
		},
		writeFilesFunc: func(_ context.Context, id string, files map[string]string) error {
			assert.Equal(t, "sbx-42", id)
			written = files
			return nil
		},
	}, &mockAgent{}, store, "vibe-nextjs-test")

	err := runner.Handle(context.Background(), event(t, "build a todo app", "project-1"))

	require.NoError(t, err)
	require.Len(t, store.results, 1)
	assert.Equal(t, "project-1", store.results[0].ProjectID)
	assert.Equal(t, "A simple todo list.", store.results[0].Content)
	assert.Equal(t, "Todo App", store.results[0].Title)
	assert.Equal(t, "https://3000-sbx-42.e2b.app", store.results[0].SandboxURL)
	assert.Contains(t, written, "app/page.tsx")
	assert.Empty(t, store.errors)
}

func TestHandle_PassesHistoryWithoutTriggeringMessage(t *testing.T) {
	store := &mockMessages{
		listRecentFunc: func(_ context.Context, projectID string, limit int) ([]messages.Message, error) {
			assert.Equal(t, historyLimit, limit)
			return []messages.Message{
				{Role: messages.RoleUser, Type: messages.TypeResult, Content: "build a todo app"},
				{Role: messages.RoleAssistant, Type: messages.TypeResult, Content: "A simple todo list."},
				{Role: messages.RoleUser, Type: messages.TypeResult, Content: "add dark mode"},
				{Role: messages.RoleAssistant, Type: messages.TypeError, Content: errorMessage},
				{Role: messages.RoleUser, Type: messages.TypeResult, Content: "make it blue"},
			}, nil
		},
	}

	var got []agent.Message
	runner := NewCodeAgentRunner(&mockSandboxes{}, &mockAgent{
		runFunc: func(_ context.Context, req agent.RunRequest) (*agent.RunResult, error) {
			got = req.ConversationHistory
			return &agent.RunResult{Title: "t", Summary: "s", Files: map[string]string{"a": "b"}}, nil
		},
	}, store, "tmpl")

	require.NoError(t, runner.Handle(context.Background(), event(t, "make it blue", "project-1")))

	require.Len(t, got, 3)
	assert.Equal(t, "user", got[0].Role)
	assert.Equal(t, "assistant", got[1].Role)
	assert.Equal(t, "add dark mode", got[2].Content)
}

func TestHandle_FailuresStoreErrorMessage(t *testing.T) {
	tests := []struct {
		name      string
		sandboxes  *mockSandboxes
		agent      *mockAgent
		wantKilled []string
	}{
		{
			name: "sandbox create",
			sandboxes: &mockSandboxes{createFunc: func(context.Context, string) (*sandbox.Sandbox, error) {
				return nil, errors.New("quota reached")
			}},
			agent: &mockAgent{},
		},
		{
			name:      "agent",
			sandboxes: &mockSandboxes{},
			agent: &mockAgent{runFunc: func(context.Context, agent.RunRequest) (*agent.RunResult, error) {
				return nil, errors.New("model overloaded")
			}},
			wantKilled: []string{"sbx-1"},
		},
		{
			name: "write files",
			sandboxes: &mockSandboxes{writeFilesFunc: func(context.Context, string, map[string]string) error {
				return errors.New("disk full")
			}},
			agent:      &mockAgent{},
			wantKilled: []string{"sbx-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockMessages{}
			runner := NewCodeAgentRunner(tt.sandboxes, tt.agent, store, "tmpl")

			err := runner.Handle(context.Background(), event(t, "build", "project-1"))

			require.Error(t, err)
			assert.Empty(t, store.results)
			assert.Equal(t, []string{"Something went wrong. Please try again."}, store.errors)
			assert.Equal(t, tt.wantKilled, tt.sandboxes.killed)
		})
	}
}

func TestHandle_TimedOutRunStillStoresErrorMessage(t *testing.T) {
	store := &mockMessages{}
	sandboxes := &mockSandboxes{}
	runner := NewCodeAgentRunner(sandboxes, &mockAgent{
		runFunc: func(ctx context.Context, _ agent.RunRequest) (*agent.RunResult, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}, store, "tmpl")

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := runner.Handle(ctx, event(t, "build", "project-1"))

	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.NotContains(t, err.Error(), "failed to save error message")
	assert.Equal(t, []string{"Something went wrong. Please try again."}, store.errors)
	assert.Equal(t, []string{"sbx-1"}, sandboxes.killed)
}

func TestHandle_SuccessKeepsSandbox(t *testing.T) {
	sandboxes := &mockSandboxes{}
	runner := NewCodeAgentRunner(sandboxes, &mockAgent{}, &mockMessages{}, "tmpl")

	require.NoError(t, runner.Handle(context.Background(), event(t, "build", "project-1")))
	assert.Empty(t, sandboxes.killed)
}

func TestHandle_InvalidPayload(t *testing.T) {
	store := &mockMessages{}
	runner := NewCodeAgentRunner(&mockSandboxes{}, &mockAgent{}, store, "tmpl")

	err := runner.Handle(context.Background(), jobs.Event{Name: jobs.EventCodeAgentRun, Data: []byte(`{"value":"x"}`)})

	require.Error(t, err)
	assert.Empty(t, store.errors)
}
