package tui

import (
	"fmt"
	"strings"

	"github.com/Prakul111/vibe-code-project/vibe/messages"
	"github.com/charmbracelet/glamour"
)

// renders one conversation entry
func renderMessage(msg messages.Message, activeFragmentID string, renderer *glamour.TermRenderer, width int) string {
	if msg.Role != messages.RoleAssistant {
		return renderUserMessage(msg, width)
	}

	return renderAssistantMessage(msg, activeFragmentID, renderer, width)
}

func renderUserMessage(msg messages.Message, width int) string {
	style := userMessageStyle
	if width > 8 {
		style = style.MaxWidth(width)
	}

	return style.Render(msg.Content)
}

func renderAssistantMessage(msg messages.Message, activeFragmentID string, renderer *glamour.TermRenderer, width int) string {
	var b strings.Builder

	b.WriteString(assistantHeaderStyle.Render("Vibe"))
	b.WriteString(" ")
	b.WriteString(timestampStyle.Render(msg.CreateAt.Format(timestampLayout)))
	b.WriteString("\n")

	if msg.Type == messages.TypeError {
		b.WriteString(errorMessageStyle.Render(msg.Content))
		return b.String()
	}

	b.WriteString(renderMarkdown(renderer, msg.Content))

	if msg.Fragment != nil {
		b.WriteString("\n")
		b.WriteString(renderFragmentCard(msg.Fragment, msg.Fragment.ID == activeFragmentID, width))
	}

	return b.String()
}

// the "Preview" card that selects a fragment
func renderFragmentCard(f *messages.Fragment, active bool, width int) string {
	style := fragmentCardStyle
	if active {
		style = activeFragmentCardStyle
	}

	if width > 8 {
		style = style.Width(min(width-2, 48))
	}

	body := fmt.Sprintf("%s\n%s", titleOrDefault(f.Title), infoStyle.Render("Preview"))

	return style.Render(body)
}

func renderMarkdown(renderer *glamour.TermRenderer, content string) string {
	if renderer == nil {
		return content
	}

	out, err := renderer.Render(content)
	if err != nil {
		return content
	}

	return strings.Trim(out, "\n")
}

func titleOrDefault(title string) string {
	if strings.TrimSpace(title) == "" {
		return "Fragment"
	}

	return title
}
