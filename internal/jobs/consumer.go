package jobs

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Prakul111/vibe-code-project/internal/logger"
	"github.com/redis/go-redis/v9"
)

const (
	defaultBatchSize      = 10
	defaultBlock          = 5 * time.Second
	defaultHandlerTimeout = 5 * time.Minute
	retryDelay            = time.Second
)

func NewConsumer(client redis.Cmdable, cfg ConsumerConfig) *Consumer {
	if cfg.Stream == "" {
		cfg.Stream = DefaultStream
	}
	if cfg.Group == "" {
		cfg.Group = DefaultGroup
	}
	if cfg.Consumer == "" {
		cfg.Consumer = "worker"
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	if cfg.Block == 0 {
		cfg.Block = defaultBlock
	}
	if cfg.HandlerTimeout <= 0 {
		cfg.HandlerTimeout = defaultHandlerTimeout
	}

	return &Consumer{
		client:     client,
		cfg:        cfg,
		handlers:   make(map[string]Handler),
		recovering: true,
	}
}

// registers the handler for an event name, replacing any previous one
func (c *Consumer) Register(name string, h Handler) {
	c.handlers[name] = h
}

// creates the consumer group (and the stream) if missing
func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err()
	if err != nil && !strings.Contains(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	return nil
}

// reads and handles events until ctx is cancelled
func (c *Consumer) Run(ctx context.Context) error {
	if err := c.Setup(ctx); err != nil {
		return err
	}

	logger.Info("jobs consumer started",
		"stream", c.cfg.Stream,
		"group", c.cfg.Group,
		"consumer", c.cfg.Consumer,
	)

	for {
		if ctx.Err() != nil {
			return nil
		}

		if _, err := c.Poll(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}

			logger.ErrorErr(err, "failed to read jobs stream")

			select {
			case <-ctx.Done():
				return nil
			case <-time.After(retryDelay):
			}
		}
	}
}

// reads one batch, dispatches each entry to its handler and acknowledges it.
// entries this consumer read but never acknowledged, e.g. before a crash,
// are replayed before any new entry.
func (c *Consumer) Poll(ctx context.Context) (int, error) {
	if c.recovering {
		n, err := c.read(ctx, "0", -1)
		if err != nil || n > 0 {
			return n, err
		}
		c.recovering = false
	}

	return c.read(ctx, ">", c.cfg.Block)
}

func (c *Consumer) read(ctx context.Context, id string, block time.Duration) (int, error) {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.Consumer,
		Streams:  []string{c.cfg.Stream, id},
		Count:    c.cfg.BatchSize,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, err
	}

	handled := 0
	for _, stream := range streams {
		for _, msg := range stream.Messages {
			c.handle(ctx, parseEvent(msg))

			if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID).Err(); err != nil {
				return handled, fmt.Errorf("failed to ack %s: %w", msg.ID, err)
			}
			handled++
		}
	}

	return handled, nil
}

func (c *Consumer) handle(ctx context.Context, ev Event) {
	log := logger.With("event", ev.Name, "entry_id", ev.ID)

	h, ok := c.handlers[ev.Name]
	if !ok {
		log.Warn("no handler registered for event")
		return
	}

	hctx, cancel := context.WithTimeout(ctx, c.cfg.HandlerTimeout)
	defer cancel()

	defer func() {
		if p := recover(); p != nil {
			log.Error("event handler panicked", "panic", p)
		}
	}()

	start := time.Now()
	if err := h(logger.WithContext(hctx, log), ev); err != nil {
		log.Error("event handler failed", "error", err, "duration", time.Since(start))
		return
	}

	log.Info("event handled", "duration", time.Since(start))
}

func parseEvent(msg redis.XMessage) Event {
	ev := Event{ID: msg.ID}

	if v, ok := msg.Values[fieldName].(string); ok {
		ev.Name = v
	}

	if v, ok := msg.Values[fieldData].(string); ok {
		ev.Data = []byte(v)
	}

	if v, ok := msg.Values[fieldTime].(string); ok {
		if ts, err := time.Parse(time.RFC3339Nano, v); err == nil {
			ev.Timestamp = ts
		}
	}

	return ev
}
