package tui

import (
	"net/http"
	"time"

	"github.com/Prakul111/vibe-code-project/vibe/messages"
	"github.com/Prakul111/vibe-code-project/vibe/projects"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

const (
	pollInterval    = 5 * time.Second
	loadingInterval = 2 * time.Second
	copyResetDelay  = 2 * time.Second
	requestTimeout  = 15 * time.Second

	timestampLayout = "15:04 on Jan 02, 2006"
	inputPrompt     = "What would you like to build?"
)

// represents the current state of the TUI
type AppState int

const (
	StateProjects AppState = iota
	StateChat
)

// main TUI application model
type Model struct {
	state    AppState
	width    int
	height   int
	client   *Client
	projects *ProjectsModel
	chat     *ChatModel
	pollSeq  int
}

// talks to the vibe REST API
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// project list with the new-project prompt
type ProjectsModel struct {
	client   *Client
	projects []projects.Project
	cursor   int
	input    textinput.Model
	loading  bool
	creating bool
	err      error
}

// conversation of one project plus its active fragment
type ChatModel struct {
	client         *Client
	project        projects.Project
	messages       []messages.Message
	activeFragment *messages.Fragment
	input          textarea.Model
	viewport       viewport.Model
	spinner        spinner.Model
	loading        *LoadingCycler
	copy           *CopyButton
	renderer       *glamour.TermRenderer
	renderKey      int
	pollID         int
	width          int
	height         int
	sending        bool
	showFragment   bool
	err            error
}

// status line shown while the agent works, advances on a fixed period
type LoadingCycler struct {
	messages []string
	index    int
	id       int
	active   bool
}

// copies the sandbox url and stays disabled for a moment afterwards
type CopyButton struct {
	url    string
	copied bool
	seq    int
	write  func(string) error
}

type projectsLoadedMsg struct {
	projects []projects.Project
}

type projectCreatedMsg struct {
	project projects.Project
}

// sent to open the conversation of a project
type OpenProjectMsg struct {
	Project projects.Project
}

// sent when the conversation view is closed
type BackToProjectsMsg struct{}

type messagesLoadedMsg struct {
	projectID string
	messages  []messages.Message
}

type messageSentMsg struct {
	message messages.Message
}

type requestFailedMsg struct {
	err error
}

type pollMsg struct {
	projectID string
	id        int
}

type loadingTickMsg struct {
	id int
}

type copyResetMsg struct {
	seq int
}

type copyFailedMsg struct {
	err error
}

type apiErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}
