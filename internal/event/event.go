// Package event is the in-process bus world activity is published on.
// Subscribers, like the admin event stream, observe commands after they
// have been applied; they can never change a world.
package event

import (
	"context"
	"fmt"
	"sync"

	"github.com/osse101/placecraft/internal/domain"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version  string         `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type           `json:"type"`
	World    string         `json:"world"`
	Payload  interface{}    `json:"payload"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}
	return e.Metadata[key]
}

// World event types
const (
	WorldCommand Type = "world.command"
	WorldMove    Type = "world.move"
)

// CommandPayloadV1 is the typed payload for applied commands
type CommandPayloadV1 struct {
	Verb string   `json:"verb"`
	Args []string `json:"args,omitempty"`
}

// MovePayloadV1 is the typed payload for resolved moves
type MovePayloadV1 struct {
	PlaceIndex    int                            `json:"place_index"`
	Won           bool                           `json:"won"`
	Rewards       map[domain.TreasureType]uint64 `json:"rewards,omitempty"`
	ItemsRewarded uint64                         `json:"items_rewarded,omitempty"`
	Reason        string                         `json:"reason,omitempty"`
}

// NewCommandEvent creates the event for a command applied to world
func NewCommandEvent(world, verb string, args []string, requestID string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     WorldCommand,
		World:    world,
		Payload:  CommandPayloadV1{Verb: verb, Args: args},
		Metadata: requestMetadata(requestID),
	}
}

// NewMoveEvent creates the event for a move resolved in world
func NewMoveEvent(world string, payload MovePayloadV1, requestID string) Event {
	return Event{
		Version:  EventSchemaVersion,
		Type:     WorldMove,
		World:    world,
		Payload:  payload,
		Metadata: requestMetadata(requestID),
	}
}

func requestMetadata(requestID string) map[string]any {
	if requestID == "" {
		return nil
	}
	return map[string]any{MetadataKeyRequestID: requestID}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every handler subscribed to the event type, synchronously and
// in subscription order. All handlers run even when one fails.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
