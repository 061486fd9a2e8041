package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxListedProjects = 15

// returns the project list screen
func NewProjectsModel(client *Client) *ProjectsModel {
	ti := textinput.New()
	ti.Placeholder = inputPrompt
	ti.Focus()
	ti.CharLimit = 10000
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	return &ProjectsModel{
		client:  client,
		input:   ti,
		loading: true,
	}
}

func (m *ProjectsModel) Init() tea.Cmd {
	return tea.Batch(m.client.listProjectsCmd(), textinput.Blink)
}

// reloads the list, used when returning from a conversation
func (m *ProjectsModel) Refresh() tea.Cmd {
	m.loading = true
	return m.client.listProjectsCmd()
}

func (m *ProjectsModel) Update(msg tea.Msg) (*ProjectsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		m.loading = false
		m.err = nil
		m.projects = msg.projects
		if m.cursor >= len(m.projects) {
			m.cursor = max(len(m.projects)-1, 0)
		}
		return m, nil

	case projectCreatedMsg:
		m.creating = false
		m.err = nil
		m.input.Reset()
		project := msg.project
		return m, func() tea.Msg { return OpenProjectMsg{Project: project} }

	case requestFailedMsg:
		m.loading = false
		m.creating = false
		m.err = msg.err
		return m, nil

	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-10, 10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down":
			if m.cursor < min(len(m.projects), maxListedProjects)-1 {
				m.cursor++
			}
			return m, nil

		case "enter":
			return m, m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// creates a project from the prompt, or opens the selected one when the prompt is empty
func (m *ProjectsModel) submit() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())

	if value == "" {
		if len(m.projects) == 0 {
			return nil
		}
		project := m.projects[m.cursor]
		return func() tea.Msg { return OpenProjectMsg{Project: project} }
	}

	if m.creating {
		return nil
	}

	m.creating = true

	return m.client.createProjectCmd(value)
}

func (m *ProjectsModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("build apps and websites by chatting with AI"))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch {
	case m.creating:
		b.WriteString(infoStyle.Render("creating project..."))
		b.WriteString("\n")
	case m.err != nil:
		b.WriteString(errorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("saved projects:"))
	b.WriteString("\n\n")

	switch {
	case m.loading && len(m.projects) == 0:
		b.WriteString(infoStyle.Render("  loading..."))
		b.WriteString("\n")
	case len(m.projects) == 0:
		b.WriteString(infoStyle.Render("  no projects found"))
		b.WriteString("\n")
	}

	for i, p := range m.projects {
		if i >= maxListedProjects {
			break
		}

		line := fmt.Sprintf("%s  %s", p.Name, infoStyle.Render(p.UpdateAt.Format(timestampLayout)))
		if i == m.cursor {
			b.WriteString(menuItemSelectedStyle.Render("› " + line))
		} else {
			b.WriteString(menuItemStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("type a prompt and press enter to start a project. enter on an empty prompt opens the selected one. ctrl+c to quit."))

	return b.String()
}
