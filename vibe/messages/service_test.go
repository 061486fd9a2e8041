package messages

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/Prakul111/vibe-code-project/internal/jobs"
	"github.com/Prakul111/vibe-code-project/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements Store for testing
type mockStore struct {
	listByProjectFunc func(ctx context.Context, projectID string) ([]Message, error)
	createFunc        func(ctx context.Context, projectID, content string, role Role, msgType Type) (*Message, error)
	getFragmentFunc   func(ctx context.Context, id string) (*Fragment, error)

	calls int
}

func (m *mockStore) ListByProject(ctx context.Context, projectID string) ([]Message, error) {
	m.calls++
	if m.listByProjectFunc != nil {
		return m.listByProjectFunc(ctx, projectID)
	}

	return []Message{}, nil
}

func (m *mockStore) Create(ctx context.Context, projectID, content string, role Role, msgType Type) (*Message, error) {
	m.calls++
	if m.createFunc != nil {
		return m.createFunc(ctx, projectID, content, role, msgType)
	}

	return &Message{ID: "new-message-id", ProjectID: projectID, Content: content, Role: role, Type: msgType}, nil
}

func (m *mockStore) GetFragment(ctx context.Context, id string) (*Fragment, error) {
	m.calls++
	if m.getFragmentFunc != nil {
		return m.getFragmentFunc(ctx, id)
	}

	return &Fragment{ID: id, SandboxURL: "https://3000-sbx.e2b.app"}, nil
}

// implements jobs.Sender for testing
type mockSender struct {
	sendFunc func(ctx context.Context, name string, data any) (string, error)

	names []string
	data  []any
}

func (m *mockSender) Send(ctx context.Context, name string, data any) (string, error) {
	m.names = append(m.names, name)
	m.data = append(m.data, data)
	if m.sendFunc != nil {
		return m.sendFunc(ctx, name, data)
	}

	return "1-0", nil
}

func TestGetMany_ReturnsMessagesWithFragments(t *testing.T) {
	store := &mockStore{
		listByProjectFunc: func(_ context.Context, projectID string) ([]Message, error) {
			assert.Equal(t, "project-1", projectID)
			return []Message{
				{ID: "1", Content: "Test message 1", Role: RoleUser, Type: TypeResult, ProjectID: projectID},
				{
					ID: "2", Content: "Test message 2", Role: RoleAssistant, Type: TypeResult, ProjectID: projectID,
					Fragment: &Fragment{ID: "fragment-1", Title: "Test Fragment", SandboxURL: "https://example.com", MessageID: "2"},
				},
			}, nil
		},
	}

	msgs, err := NewService(store, &mockSender{}).GetMany(context.Background(), "project-1")

	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Nil(t, msgs[0].Fragment)
	require.NotNil(t, msgs[1].Fragment)
	assert.Equal(t, "fragment-1", msgs[1].Fragment.ID)
}

func TestGetMany_EmptyProject(t *testing.T) {
	store := &mockStore{
		listByProjectFunc: func(context.Context, string) ([]Message, error) { return nil, nil },
	}

	msgs, err := NewService(store, &mockSender{}).GetMany(context.Background(), "empty-project")

	require.NoError(t, err)
	assert.NotNil(t, msgs)
	assert.Empty(t, msgs)
}

func TestGetMany_RequiresProjectID(t *testing.T) {
	store := &mockStore{}

	_, err := NewService(store, &mockSender{}).GetMany(context.Background(), "")

	assert.True(t, validation.IsValidationError(err))
	assert.Equal(t, 0, store.calls)
}

func TestGetMany_PropagatesStorageError(t *testing.T) {
	dbErr := errors.New("Database error")
	store := &mockStore{
		listByProjectFunc: func(context.Context, string) ([]Message, error) { return nil, dbErr },
	}

	_, err := NewService(store, &mockSender{}).GetMany(context.Background(), "project-1")

	assert.ErrorIs(t, err, dbErr)
}

func TestCreate_PersistsUserResultAndDispatches(t *testing.T) {
	store := &mockStore{
		createFunc: func(_ context.Context, projectID, content string, role Role, msgType Type) (*Message, error) {
			assert.Equal(t, "project-1", projectID)
			assert.Equal(t, "Build a todo app", content)
			assert.Equal(t, RoleUser, role)
			assert.Equal(t, TypeResult, msgType)
			return &Message{ID: "new-message-id", ProjectID: projectID, Content: content, Role: role, Type: msgType}, nil
		},
	}
	sender := &mockSender{}

	msg, err := NewService(store, sender).Create(context.Background(), "Build a todo app", "project-1")

	require.NoError(t, err)
	assert.Equal(t, "new-message-id", msg.ID)

	require.Len(t, sender.names, 1)
	assert.Equal(t, jobs.EventCodeAgentRun, sender.names[0])
	assert.Equal(t, jobs.CodeAgentRunData{Value: "Build a todo app", ProjectID: "project-1"}, sender.data[0])
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		projectID string
	}{
		{"empty value", "", "project-1"},
		{"too long", strings.Repeat("a", 10001), "project-1"},
		{"missing project", "Build a todo app", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &mockStore{}
			sender := &mockSender{}

			_, err := NewService(store, sender).Create(context.Background(), tt.value, tt.projectID)

			assert.True(t, validation.IsValidationError(err))
			assert.Equal(t, 0, store.calls)
			assert.Empty(t, sender.names)
		})
	}
}

func TestCreate_AcceptsMaxLength(t *testing.T) {
	_, err := NewService(&mockStore{}, &mockSender{}).Create(context.Background(), strings.Repeat("a", 10000), "project-1")
	assert.NoError(t, err)
}

func TestCreate_StorageErrorSkipsDispatch(t *testing.T) {
	store := &mockStore{
		createFunc: func(context.Context, string, string, Role, Type) (*Message, error) {
			return nil, errors.New("Foreign key constraint failed")
		},
	}
	sender := &mockSender{}

	_, err := NewService(store, sender).Create(context.Background(), "hello", "missing-project")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Foreign key constraint failed")
	assert.Empty(t, sender.names)
}

func TestCreate_DispatchError(t *testing.T) {
	sender := &mockSender{
		sendFunc: func(context.Context, string, any) (string, error) { return "", errors.New("redis unavailable") },
	}

	_, err := NewService(&mockStore{}, sender).Create(context.Background(), "hello", "project-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis unavailable")
}

func TestGetFragment(t *testing.T) {
	svc := NewService(&mockStore{
		getFragmentFunc: func(_ context.Context, id string) (*Fragment, error) {
			if id == "missing" {
				return nil, ErrFragmentNotFound
			}
			return &Fragment{ID: id}, nil
		},
	}, &mockSender{})

	f, err := svc.GetFragment(context.Background(), "fragment-1")
	require.NoError(t, err)
	assert.Equal(t, "fragment-1", f.ID)

	_, err = svc.GetFragment(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrFragmentNotFound)

	_, err = svc.GetFragment(context.Background(), "")
	assert.ErrorIs(t, err, ErrFragmentNotFound)
}

func TestCreate_DispatchSurvivesClientDisconnect(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store := &mockStore{
		createFunc: func(_ context.Context, projectID, content string, role Role, msgType Type) (*Message, error) {
			cancel()
			return &Message{ID: "new-message-id", ProjectID: projectID, Content: content, Role: role, Type: msgType}, nil
		},
	}
	sender := &mockSender{
		sendFunc: func(ctx context.Context, _ string, _ any) (string, error) {
			return "1-0", ctx.Err()
		},
	}

	msg, err := NewService(store, sender).Create(ctx, "add a footer", "project-1")

	require.NoError(t, err)
	assert.Equal(t, "new-message-id", msg.ID)
	assert.Equal(t, []string{jobs.EventCodeAgentRun}, sender.names)
}
