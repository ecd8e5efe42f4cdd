package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTestEnter EventType = "test_enter"
	EventTestLeave EventType = "test_leave"
	EventFlush     EventType = "flush"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// TestEvent represents entry into or exit from a test node.
type TestEvent struct {
	EventBase
	Path    string `json:"path"`
	Tag     string `json:"tag"`
	Mode    string `json:"mode"`
	Outcome string `json:"outcome,omitempty"`
	Elapsed uint32 `json:"elapsed_ms,omitempty"`
}

// FlushEvent represents a report chunk leaving the engine.
type FlushEvent struct {
	EventBase
	Bytes   int `json:"bytes"`
	Dropped int `json:"dropped,omitempty"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnTestEnter func(context.Context, *TestEvent)
	OnTestLeave func(context.Context, *TestEvent)
	OnFlush     func(context.Context, *FlushEvent)
}
