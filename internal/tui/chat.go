package tui

import (
	"strings"

	"github.com/Prakul111/vibe-code-project/vibe/messages"
	"github.com/Prakul111/vibe-code-project/vibe/projects"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const inputHeight = 3

// returns the conversation view of a project
func NewChatModel(client *Client, project projects.Project, pollID, width, height int) *ChatModel {
	ta := textarea.New()
	ta.Placeholder = inputPrompt
	ta.ShowLineNumbers = false
	ta.CharLimit = 10000
	ta.SetHeight(inputHeight)
	ta.KeyMap.InsertNewline = key.NewBinding(key.WithKeys("alt+enter"))
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = infoStyle

	m := &ChatModel{
		client:   client,
		project:  project,
		input:    ta,
		viewport: viewport.New(0, 0),
		spinner:  sp,
		loading:  NewLoadingCycler(),
		copy:     NewCopyButton(""),
		pollID:   pollID,
	}

	m.resize(width, height)

	return m
}

// loads the conversation and starts polling
func (m *ChatModel) Init() tea.Cmd {
	return tea.Batch(
		m.client.listMessagesCmd(m.project.ID),
		pollCmd(m.project.ID, m.pollID),
		m.spinner.Tick,
		textarea.Blink,
	)
}

func (m *ChatModel) Update(msg tea.Msg) (*ChatModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case messagesLoadedMsg:
		if msg.projectID != m.project.ID {
			return m, nil
		}
		return m, m.setMessages(msg.messages)

	case pollMsg:
		if msg.projectID != m.project.ID || msg.id != m.pollID {
			return m, nil
		}
		return m, tea.Batch(m.client.listMessagesCmd(m.project.ID), pollCmd(m.project.ID, m.pollID))

	case messageSentMsg:
		m.sending = false
		m.err = nil
		m.input.Reset()
		return m, m.setMessages(append(m.messages, msg.message))

	case requestFailedMsg:
		m.sending = false
		m.err = msg.err
		return m, nil

	case loadingTickMsg:
		cmd := m.loading.Update(msg)
		m.refreshViewport(false)
		return m, cmd

	case copyResetMsg:
		m.copy.Update(msg)
		return m, nil

	case copyFailedMsg:
		m.err = msg.err
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.loading.Active() {
			m.refreshViewport(false)
		}
		return m, cmd

	case tea.KeyMsg:
		if m.showFragment {
			return m, m.updateFragmentKeys(msg)
		}

		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return BackToProjectsMsg{} }

		case "enter", "ctrl+s":
			return m, m.submit()

		case "ctrl+f":
			if m.activeFragment != nil {
				m.showFragment = true
			}
			return m, nil

		case "ctrl+n":
			m.selectFragment(1)
			return m, nil

		case "ctrl+p":
			m.selectFragment(-1)
			return m, nil

		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m *ChatModel) updateFragmentKeys(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "ctrl+f":
		m.showFragment = false
	case "r":
		m.renderKey++
	case "c":
		return m.copy.Copy()
	}

	return nil
}

func (m *ChatModel) submit() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())
	if value == "" || m.sending {
		return nil
	}

	m.sending = true

	return m.client.createMessageCmd(value, m.project.ID)
}

// replaces the conversation, follows the newest fragment and toggles the loading status
func (m *ChatModel) setMessages(msgs []messages.Message) tea.Cmd {
	grew := len(msgs) != len(m.messages)
	m.messages = msgs

	if latest := latestFragment(msgs); latest != nil {
		if m.activeFragment == nil || grew {
			m.setActiveFragment(latest)
		}
	}

	var cmd tea.Cmd
	if m.awaitingAgent() {
		cmd = m.loading.Start()
	} else {
		m.loading.Stop()
	}

	m.refreshViewport(grew)

	return cmd
}

// true while the last message of the conversation is from the user
func (m *ChatModel) awaitingAgent() bool {
	if len(m.messages) == 0 {
		return false
	}

	return m.messages[len(m.messages)-1].Role == messages.RoleUser
}

func (m *ChatModel) setActiveFragment(f *messages.Fragment) {
	if m.activeFragment != nil && m.activeFragment.ID == f.ID {
		m.activeFragment = f
		return
	}

	m.activeFragment = f
	m.renderKey = 0
	m.copy.SetURL(f.SandboxURL)
}

// moves the selection between fragments of the conversation
func (m *ChatModel) selectFragment(step int) {
	fragments := conversationFragments(m.messages)
	if len(fragments) == 0 {
		return
	}

	current := len(fragments) - 1
	if m.activeFragment != nil {
		for i, f := range fragments {
			if f.ID == m.activeFragment.ID {
				current = i
				break
			}
		}
	}

	next := current + step
	if next < 0 || next >= len(fragments) {
		return
	}

	m.setActiveFragment(fragments[next])
	m.refreshViewport(false)
}

func (m *ChatModel) resize(width, height int) {
	m.width = width
	m.height = height

	m.input.SetWidth(max(width-4, 10))
	m.viewport.Width = width
	m.viewport.Height = max(height-inputHeight-6, 3)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err == nil {
		m.renderer = renderer
	}

	m.refreshViewport(false)
}

func (m *ChatModel) refreshViewport(toBottom bool) {
	var b strings.Builder

	activeID := ""
	if m.activeFragment != nil {
		activeID = m.activeFragment.ID
	}

	for _, msg := range m.messages {
		b.WriteString(renderMessage(msg, activeID, m.renderer, m.width))
		b.WriteString("\n\n")
	}

	if m.loading.Active() {
		b.WriteString(assistantHeaderStyle.Render("Vibe"))
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(infoStyle.Render(m.loading.Current()))
	}

	m.viewport.SetContent(b.String())
	if toBottom {
		m.viewport.GotoBottom()
	}
}

func (m *ChatModel) View() string {
	if m.showFragment && m.activeFragment != nil {
		return m.fragmentView()
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(m.project.Name))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")

	inputBox := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorGray).
		Render(m.input.View())
	b.WriteString(inputBox)
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
	case m.sending:
		b.WriteString(infoStyle.Render("sending..."))
	default:
		b.WriteString(helpStyle.Render("[enter: send] [alt+enter: newline] [ctrl+f: fragment] [ctrl+n/ctrl+p: select fragment] [esc: projects]"))
	}

	return b.String()
}

func (m *ChatModel) fragmentView() string {
	var b strings.Builder

	previewURL := m.client.PreviewURL(m.activeFragment.ID, m.renderKey)
	b.WriteString(renderFragmentView(m.activeFragment, m.copy, previewURL, m.renderKey, m.width))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("[r: refresh] [c: copy url] [esc: back]"))

	return b.String()
}

// the fragment of the newest assistant message that has one
func latestFragment(msgs []messages.Message) *messages.Fragment {
	for i := len(msgs) - 1; i >= 0; i-- {
		if msgs[i].Role == messages.RoleAssistant && msgs[i].Fragment != nil {
			return msgs[i].Fragment
		}
	}

	return nil
}

func conversationFragments(msgs []messages.Message) []*messages.Fragment {
	var out []*messages.Fragment
	for _, msg := range msgs {
		if msg.Type != messages.TypeError && msg.Fragment != nil {
			out = append(out, msg.Fragment)
		}
	}

	return out
}
