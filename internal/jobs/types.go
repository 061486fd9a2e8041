package jobs

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// triggers the code agent for a project
	EventCodeAgentRun = "code-agent/run"

	DefaultStream = "vibe:events"
	DefaultGroup  = "code-agent"

	fieldName = "name"
	fieldData = "data"
	fieldTime = "ts"
)

// payload of code-agent/run
type CodeAgentRunData struct {
	Value     string `json:"value"`
	ProjectID string `json:"projectId"`
}

// an entry read back from the stream
type Event struct {
	ID        string
	Name      string
	Data      json.RawMessage
	Timestamp time.Time
}

// fire-and-forget publisher, the caller never waits for a consumer
type Sender interface {
	Send(ctx context.Context, name string, data any) (string, error)
}

// processes one event, errors are logged and the entry is still acknowledged
type Handler func(ctx context.Context, ev Event) error

type Dispatcher struct {
	client redis.Cmdable
	stream string
}

type ConsumerConfig struct {
	Stream         string
	Group          string
	Consumer       string
	BatchSize      int64
	Block          time.Duration
	HandlerTimeout time.Duration
}

type Consumer struct {
	client     redis.Cmdable
	cfg        ConsumerConfig
	handlers   map[string]Handler
	recovering bool // still draining its own pending entries
}
