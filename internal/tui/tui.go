package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// creates the application talking to the api at endpoint
func NewApp(endpoint string, width, height int) *Model {
	client := NewClient(endpoint)

	return &Model{
		state:    StateProjects,
		width:    width,
		height:   height,
		client:   client,
		projects: NewProjectsModel(client),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.projects.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case OpenProjectMsg:
		m.pollSeq++
		m.chat = NewChatModel(m.client, msg.Project, m.pollSeq, m.width, m.height)
		m.state = StateChat
		return m, m.chat.Init()

	case BackToProjectsMsg:
		m.chat = nil
		m.state = StateProjects
		return m, m.projects.Refresh()
	}

	switch m.state {
	case StateProjects:
		var cmd tea.Cmd
		m.projects, cmd = m.projects.Update(msg)
		return m, cmd

	case StateChat:
		var cmd tea.Cmd
		m.chat, cmd = m.chat.Update(msg)
		return m, cmd

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	switch m.state {
	case StateProjects:
		return m.projects.View()

	case StateChat:
		return m.chat.View()

	default:
		return "Unknown state"
	}
}
