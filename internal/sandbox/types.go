package sandbox

import (
	"net/http"
	"time"
)

type Config struct {
	APIKey  string
	APIURL  string // e.g., "https://api.e2b.dev"
	Domain  string // e.g., "e2b.app"
	EnvdURL string // overrides the per-sandbox file api base url
	Timeout time.Duration
}

type Client struct {
	config     Config
	httpClient *http.Client
}

type Sandbox struct {
	ID         string `json:"sandboxID"`
	TemplateID string `json:"templateID"`
	ClientID   string `json:"clientID,omitempty"`
}

type createRequest struct {
	TemplateID string `json:"templateID"`
	Timeout    int    `json:"timeout"`
}
