package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Prakul111/vibe-code-project/vibe/messages"
	"github.com/charmbracelet/lipgloss"
)

const urlDisplayWidth = 48

// toolbar, file list and preview link of the active fragment
func renderFragmentView(f *messages.Fragment, copyBtn *CopyButton, previewURL string, renderKey, width int) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(titleOrDefault(f.Title)))
	b.WriteString("\n")

	b.WriteString(renderToolbar(f.SandboxURL, copyBtn))
	b.WriteString("\n\n")

	b.WriteString(subtitleStyle.Render("files"))
	b.WriteString("\n")
	for _, p := range sortedPaths(f.Files) {
		b.WriteString(menuItemStyle.Render(p))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if f.SandboxURL != "" {
		b.WriteString(infoStyle.Render("open in browser: " + f.SandboxURL))
		b.WriteString("\n")
	}
	b.WriteString(infoStyle.Render(fmt.Sprintf("preview (render %d): %s", renderKey, previewURL)))

	if width > 0 {
		return lipgloss.NewStyle().MaxWidth(width).Render(b.String())
	}

	return b.String()
}

// refresh plus the truncated url as the copy target
func renderToolbar(sandboxURL string, copyBtn *CopyButton) string {
	display := truncate(sandboxURL, urlDisplayWidth)
	if display == "" {
		display = "no sandbox url"
	}

	copyStyle := toolbarButtonStyle
	if copyBtn.Disabled() {
		copyStyle = disabledButtonStyle
	}

	return lipgloss.JoinHorizontal(lipgloss.Center,
		toolbarButtonStyle.Render("↻ r"),
		" ",
		copyStyle.Render(fmt.Sprintf("%s  %s c", display, copyBtn.Label())),
	)
}

func sortedPaths(files map[string]string) []string {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	return paths
}
