package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Prakul111/vibe-code-project/vibe/messages"
	"github.com/Prakul111/vibe-code-project/vibe/projects"
	tea "github.com/charmbracelet/bubbletea"
)

// creates a REST client for the api at endpoint
func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

func (c *Client) ListProjects(ctx context.Context) ([]projects.Project, error) {
	var out []projects.Project
	if err := c.do(ctx, http.MethodGet, "/api/v1/projects", nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateProject(ctx context.Context, value string) (*projects.Project, error) {
	var out projects.Project
	if err := c.do(ctx, http.MethodPost, "/api/v1/projects", map[string]string{"value": value}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

func (c *Client) ListMessages(ctx context.Context, projectID string) ([]messages.Message, error) {
	var out []messages.Message
	endpoint := fmt.Sprintf("/api/v1/projects/%s/messages", url.PathEscape(projectID))
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}

	return out, nil
}

func (c *Client) CreateMessage(ctx context.Context, value, projectID string) (*messages.Message, error) {
	var out messages.Message
	body := map[string]string{"value": value, "projectId": projectID}
	if err := c.do(ctx, http.MethodPost, "/api/v1/messages", body, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// browser url of the fragment preview page, key forces a fresh render
func (c *Client) PreviewURL(fragmentID string, key int) string {
	return fmt.Sprintf("%s/api/v1/fragments/%s/preview?key=%d", c.endpoint, url.PathEscape(fragmentID), key)
}

func (c *Client) do(ctx context.Context, method, endpoint string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp apiErrorResponse
		if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
			if errResp.Details != "" {
				return fmt.Errorf("%s: %s", errResp.Message, errResp.Details)
			}
			return fmt.Errorf("%s", errResp.Message)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	return nil
}

// tea commands wrapping the client calls

func (c *Client) listProjectsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := c.ListProjects(ctx)
		if err != nil {
			return requestFailedMsg{err: err}
		}

		return projectsLoadedMsg{projects: list}
	}
}

func (c *Client) createProjectCmd(value string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		project, err := c.CreateProject(ctx, value)
		if err != nil {
			return requestFailedMsg{err: err}
		}

		return projectCreatedMsg{project: *project}
	}
}

func (c *Client) listMessagesCmd(projectID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		list, err := c.ListMessages(ctx, projectID)
		if err != nil {
			return requestFailedMsg{err: err}
		}

		return messagesLoadedMsg{projectID: projectID, messages: list}
	}
}

func (c *Client) createMessageCmd(value, projectID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		msg, err := c.CreateMessage(ctx, value, projectID)
		if err != nil {
			return requestFailedMsg{err: err}
		}

		return messageSentMsg{message: *msg}
	}
}

// schedules the next conversation refetch
func pollCmd(projectID string, id int) tea.Cmd {
	return tea.Tick(pollInterval, func(time.Time) tea.Msg {
		return pollMsg{projectID: projectID, id: id}
	})
}
