package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"sort"
	"time"
)

const (
	envdPort       = 49983
	projectRoot    = "/home/user"
	defaultTimeout = 10 * time.Minute
)

var ErrSandboxNotFound = errors.New("sandbox not found")

// shared HTTP client for sandbox API calls
var sandboxHTTPClient = &http.Client{
	Timeout: 60 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        50,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}

	return &Client{config: config, httpClient: sandboxHTTPClient}
}

// starts a sandbox from a template
func (c *Client) Create(ctx context.Context, template string) (*Sandbox, error) {
	body, err := json.Marshal(createRequest{
		TemplateID: template,
		Timeout:    int(c.config.Timeout.Seconds()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	var sbx Sandbox
	if err := c.do(ctx, http.MethodPost, "/sandboxes", bytes.NewReader(body), &sbx); err != nil {
		return nil, fmt.Errorf("failed to create sandbox from %s: %w", template, err)
	}

	return &sbx, nil
}

// looks up a running sandbox by id
func (c *Client) Connect(ctx context.Context, id string) (*Sandbox, error) {
	var sbx Sandbox
	if err := c.do(ctx, http.MethodGet, "/sandboxes/"+url.PathEscape(id), nil, &sbx); err != nil {
		return nil, fmt.Errorf("failed to connect to sandbox %s: %w", id, err)
	}

	return &sbx, nil
}

// writes every file relative to the project root, in path order
func (c *Client) WriteFiles(ctx context.Context, id string, files map[string]string) error {
	paths := make([]string, 0, len(files))
	for p := range files {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if err := c.writeFile(ctx, id, p, files[p]); err != nil {
			return err
		}
	}

	return nil
}

// returns the public host serving the given sandbox port
func (c *Client) Host(id string, port int) string {
	return fmt.Sprintf("%d-%s.%s", port, id, c.config.Domain)
}

func (c *Client) Kill(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/sandboxes/"+url.PathEscape(id), nil, nil); err != nil {
		return fmt.Errorf("failed to kill sandbox %s: %w", id, err)
	}

	return nil
}

func (c *Client) writeFile(ctx context.Context, id, filePath, content string) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("file", path.Base(filePath))
	if err != nil {
		return fmt.Errorf("failed to build upload for %s: %w", filePath, err)
	}

	if _, err := io.WriteString(part, content); err != nil {
		return fmt.Errorf("failed to build upload for %s: %w", filePath, err)
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to build upload for %s: %w", filePath, err)
	}

	target := c.envdURL(id) + "/files?" + url.Values{"path": {path.Join(projectRoot, filePath)}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("X-API-Key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", filePath, err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return fmt.Errorf("failed to write %s: status %d: %s", filePath, resp.StatusCode, string(body))
	}

	return nil
}

func (c *Client) envdURL(id string) string {
	if c.config.EnvdURL != "" {
		return c.config.EnvdURL
	}

	return "https://" + c.Host(id, envdPort)
}

func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.config.APIURL+endpoint, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("X-API-Key", c.config.APIKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode == http.StatusNotFound {
		return ErrSandboxNotFound
	}

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(resp.Body) //nolint:errcheck
		return fmt.Errorf("API request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
