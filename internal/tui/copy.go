package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

func NewCopyButton(url string) *CopyButton {
	return &CopyButton{url: url, write: clipboard.WriteAll}
}

// swaps the url, a pending copied state is dropped
func (b *CopyButton) SetURL(url string) {
	if b.url == url {
		return
	}

	b.url = url
	b.copied = false
	b.seq++
}

func (b *CopyButton) Disabled() bool {
	return b.copied || b.url == ""
}

func (b *CopyButton) Copied() bool {
	return b.copied
}

// writes the url to the clipboard and schedules the reset
func (b *CopyButton) Copy() tea.Cmd {
	if b.Disabled() {
		return nil
	}

	if err := b.write(b.url); err != nil {
		return func() tea.Msg { return copyFailedMsg{err: err} }
	}

	b.copied = true
	b.seq++
	seq := b.seq

	return tea.Tick(copyResetDelay, func(time.Time) tea.Msg {
		return copyResetMsg{seq: seq}
	})
}

func (b *CopyButton) Update(msg tea.Msg) {
	if reset, ok := msg.(copyResetMsg); ok && reset.seq == b.seq {
		b.copied = false
	}
}

func (b *CopyButton) Label() string {
	if b.copied {
		return "✓ Copied"
	}

	return "Copy"
}
