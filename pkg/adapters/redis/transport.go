// Package redis provides a report transport that publishes chunks to a
// Redis channel, letting a host-side viewer subscribe to live runs.
package redis

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"
)

// Transport implements ports.Transport by publishing report chunks.
type Transport struct {
	client  *backend.Client
	channel string
}

type Option func(*Transport)

// WithChannel sets the publish channel.
func WithChannel(channel string) Option {
	return func(t *Transport) {
		t.channel = channel
	}
}

// New creates a new Redis transport with options.
func New(address, password string, db int, opts ...Option) *Transport {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis transport from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Transport {
	t := &Transport{
		client:  client,
		channel: "arbor:report",
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Send publishes the chunk. Delivery is fire-and-forget: subscribers
// that are not listening miss the chunk, matching the engine's
// transport contract.
func (t *Transport) Send(ctx context.Context, chunk []byte) error {
	if err := t.client.Publish(ctx, t.channel, chunk).Err(); err != nil {
		return fmt.Errorf("failed to publish report chunk: %w", err)
	}
	return nil
}

// Channel returns the publish channel name.
func (t *Transport) Channel() string { return t.channel }

// Close closes the redis client.
func (t *Transport) Close() error {
	return t.client.Close()
}
