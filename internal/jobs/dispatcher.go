package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

func NewDispatcher(client redis.Cmdable, stream string) *Dispatcher {
	if stream == "" {
		stream = DefaultStream
	}

	return &Dispatcher{client: client, stream: stream}
}

// appends a named event to the stream and returns the entry id
func (d *Dispatcher) Send(ctx context.Context, name string, data any) (string, error) {
	if name == "" {
		return "", fmt.Errorf("event name is required")
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s payload: %w", name, err)
	}

	id, err := d.client.XAdd(ctx, &redis.XAddArgs{
		Stream: d.stream,
		Values: map[string]any{
			fieldName: name,
			fieldData: string(payload),
			fieldTime: time.Now().UTC().Format(time.RFC3339Nano),
		},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to send %s: %w", name, err)
	}

	return id, nil
}

// decodes the payload of a code-agent/run event
func DecodeCodeAgentRun(ev Event) (CodeAgentRunData, error) {
	var data CodeAgentRunData

	if ev.Name != EventCodeAgentRun {
		return data, fmt.Errorf("unexpected event %q", ev.Name)
	}

	if err := json.Unmarshal(ev.Data, &data); err != nil {
		return data, fmt.Errorf("invalid %s payload: %w", EventCodeAgentRun, err)
	}

	if data.ProjectID == "" {
		return data, fmt.Errorf("invalid %s payload: projectId is required", EventCodeAgentRun)
	}

	return data, nil
}
