package tui

import (
	"errors"
	"testing"

	"github.com/Prakul111/vibe-code-project/vibe/messages"
	"github.com/Prakul111/vibe-code-project/vibe/projects"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestChat() *ChatModel {
	return NewChatModel(NewClient("http://localhost:8080"), projects.Project{ID: "project-1", Name: "brave-green-otter"}, 1, 100, 40)
}

func userMsg(id string) messages.Message {
	return messages.Message{ID: id, Content: "make it blue", Role: messages.RoleUser, Type: messages.TypeResult, ProjectID: "project-1"}
}

func assistantMsg(id string, f *messages.Fragment) messages.Message {
	return messages.Message{ID: id, Content: "Done.", Role: messages.RoleAssistant, Type: messages.TypeResult, ProjectID: "project-1", Fragment: f}
}

func TestChat_LoadingWhileLastMessageIsUser(t *testing.T) {
	m := newTestChat()

	m, _ = m.Update(messagesLoadedMsg{projectID: "project-1", messages: []messages.Message{userMsg("m1")}})
	assert.True(t, m.loading.Active())

	m, _ = m.Update(messagesLoadedMsg{projectID: "project-1", messages: []messages.Message{
		userMsg("m1"),
		assistantMsg("m2", &messages.Fragment{ID: "f1", SandboxURL: "https://3000-a.e2b.app"}),
	}})
	assert.False(t, m.loading.Active())
}

func TestChat_IgnoresOtherProjects(t *testing.T) {
	m := newTestChat()

	m, _ = m.Update(messagesLoadedMsg{projectID: "project-2", messages: []messages.Message{userMsg("m1")}})

	assert.Empty(t, m.messages)
}

func TestChat_PollRefetchesAndReschedules(t *testing.T) {
	m := newTestChat()

	_, cmd := m.Update(pollMsg{projectID: "project-1", id: m.pollID})
	assert.NotNil(t, cmd)

	_, cmd = m.Update(pollMsg{projectID: "project-1", id: m.pollID + 1})
	assert.Nil(t, cmd, "polls from a closed view stop")
}

func TestChat_FollowsNewestFragment(t *testing.T) {
	m := newTestChat()
	f1 := &messages.Fragment{ID: "f1", SandboxURL: "https://3000-a.e2b.app"}
	f2 := &messages.Fragment{ID: "f2", SandboxURL: "https://3000-b.e2b.app"}

	m, _ = m.Update(messagesLoadedMsg{projectID: "project-1", messages: []messages.Message{
		userMsg("m1"), assistantMsg("m2", f1),
	}})
	require.NotNil(t, m.activeFragment)
	assert.Equal(t, "f1", m.activeFragment.ID)

	m, _ = m.Update(messagesLoadedMsg{projectID: "project-1", messages: []messages.Message{
		userMsg("m1"), assistantMsg("m2", f1), userMsg("m3"), assistantMsg("m4", f2),
	}})
	assert.Equal(t, "f2", m.activeFragment.ID)
	assert.Equal(t, "https://3000-b.e2b.app", m.copy.url)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlP})
	assert.Equal(t, "f1", m.activeFragment.ID)
}

func TestChat_FragmentViewRefreshBumpsKey(t *testing.T) {
	m := newTestChat()
	m, _ = m.Update(messagesLoadedMsg{projectID: "project-1", messages: []messages.Message{
		userMsg("m1"), assistantMsg("m2", &messages.Fragment{ID: "f1", Title: "Todo App", SandboxURL: "https://3000-a.e2b.app"}),
	}})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlF})
	require.True(t, m.showFragment)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})
	assert.Equal(t, 1, m.renderKey)
	assert.Contains(t, m.View(), "key=1")
	assert.Contains(t, m.View(), "Todo App")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showFragment)
}

func TestChat_SubmitIgnoresBlankInput(t *testing.T) {
	m := newTestChat()
	m.input.SetValue("   ")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.False(t, m.sending)
}

func TestChat_SubmitSendsMessage(t *testing.T) {
	m := newTestChat()
	m.input.SetValue("add a footer")

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.NotNil(t, cmd)
	assert.True(t, m.sending)
	assert.Equal(t, "add a footer", m.input.Value())

	m, _ = m.Update(messageSentMsg{message: userMsg("m9")})
	assert.False(t, m.sending)
	assert.Empty(t, m.input.Value())
	assert.True(t, m.loading.Active())
}

func TestChat_FailedSendKeepsInput(t *testing.T) {
	m := newTestChat()
	m.input.SetValue("add a footer")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(requestFailedMsg{err: errors.New("request failed with status 500")})

	assert.False(t, m.sending)
	assert.Equal(t, "add a footer", m.input.Value())
	assert.Contains(t, m.View(), "request failed with status 500")
}

func TestChat_InputPlaceholder(t *testing.T) {
	m := newTestChat()

	assert.Equal(t, "What would you like to build?", m.input.Placeholder)
}
