package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"
)

var errNoFiles = errors.New("answer contains no files")

// returns the text of the last assistant message in a transcript.
// string content is returned as-is, content parts are concatenated,
// ok is false when there is no assistant message or it carries no content.
func LastAssistantText(output []OutputMessage) (text string, ok bool) {
	for i := len(output) - 1; i >= 0; i-- {
		msg := output[i]
		if msg.Role != "assistant" {
			continue
		}

		if msg.Text != nil {
			return *msg.Text, true
		}

		if msg.Parts == nil {
			return "", false
		}

		var builder strings.Builder
		for _, part := range msg.Parts {
			if part.Type == "text" {
				builder.WriteString(part.Text)
			}
		}

		return builder.String(), true
	}

	return "", false
}

// decodes the model answer, accepting a bare object or one inside a markdown fence
func parseAnswer(response string) (*answer, error) {
	raw := extractJSON(response)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var a answer
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	files := make(map[string]string, len(a.Files))
	for p, content := range a.Files {
		clean, err := cleanPath(p)
		if err != nil {
			return nil, err
		}
		files[clean] = content
	}

	if len(files) == 0 {
		return nil, errNoFiles
	}

	a.Files = files
	a.Title = strings.TrimSpace(a.Title)
	a.Summary = strings.TrimSpace(a.Summary)

	if a.Title == "" {
		a.Title = "Fragment"
	}

	if a.Summary == "" {
		a.Summary = "Here is what I built."
	}

	return &a, nil
}

// pulls the JSON object out of a response, preferring a fenced block
func extractJSON(response string) string {
	response = strings.TrimSpace(response)
	if response == "" {
		return ""
	}

	if strings.Count(response, "```") >= 2 {
		if code := extractCodeFromFence(response); code != "" {
			response = code
		}
	}

	start := strings.Index(response, "{")
	end := strings.LastIndex(response, "}")
	if start == -1 || end <= start {
		return ""
	}

	return response[start : end+1]
}

// extracts content from the first markdown fence pair.
// returns empty string if extraction fails.
func extractCodeFromFence(response string) string {
	startIdx := strings.Index(response, "```")
	if startIdx == -1 {
		return ""
	}

	// find end of opening fence line (skip language identifier)
	afterStart := startIdx + 3
	newlineIdx := strings.Index(response[afterStart:], "\n")
	if newlineIdx == -1 {
		return ""
	}

	codeStart := afterStart + newlineIdx + 1
	endIdx := strings.Index(response[codeStart:], "```")
	if endIdx == -1 {
		return ""
	}

	return strings.TrimSpace(response[codeStart : codeStart+endIdx])
}

// normalizes a generated file path and rejects paths escaping the project root
func cleanPath(p string) (string, error) {
	p = strings.TrimSpace(strings.ReplaceAll(p, "\\", "/"))
	if p == "" {
		return "", fmt.Errorf("empty file path")
	}

	clean := path.Clean(strings.TrimPrefix(p, "./"))
	if path.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("file path %q is outside the project", p)
	}

	return clean, nil
}
