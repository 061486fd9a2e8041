package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var loadingMessages = []string{
	"Thinking",
	"Loading...",
	"Analyzing your request",
	"Building your website",
	"Crafting Components",
	"Optimizing Layouts",
	"Adding final touches",
	"Almost ready",
}

func NewLoadingCycler() *LoadingCycler {
	return &LoadingCycler{messages: loadingMessages}
}

// returns the current status string
func (l *LoadingCycler) Current() string {
	return l.messages[l.index]
}

// restarts from the first string and schedules the first tick.
// a running cycler keeps its position.
func (l *LoadingCycler) Start() tea.Cmd {
	if l.active {
		return nil
	}

	l.active = true
	l.index = 0
	l.id++

	return l.tick()
}

// stops ticking, ticks already in flight are ignored
func (l *LoadingCycler) Stop() {
	if !l.active {
		return
	}

	l.active = false
	l.id++
}

func (l *LoadingCycler) Active() bool {
	return l.active
}

// advances on ticks from the current run, wrapping after the last string
func (l *LoadingCycler) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(loadingTickMsg)
	if !ok || !l.active || tick.id != l.id {
		return nil
	}

	l.index = (l.index + 1) % len(l.messages)

	return l.tick()
}

func (l *LoadingCycler) tick() tea.Cmd {
	id := l.id
	return tea.Tick(loadingInterval, func(time.Time) tea.Msg {
		return loadingTickMsg{id: id}
	})
}
