package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/placecraft/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all relevant event types
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.WorldCommand, s.forward(EventTypeCommand))
	s.bus.Subscribe(event.WorldMove, s.forward(EventTypeMove))

	slog.Info(LogMsgSubscribed,
		"types", []string{string(event.WorldCommand), string(event.WorldMove)})
}

// forward rebroadcasts bus events under the given SSE type. Broadcasting
// never blocks, so a command never waits on stream clients.
func (s *Subscriber) forward(eventType string) event.Handler {
	return func(_ context.Context, evt event.Event) error {
		s.hub.Broadcast(eventType, evt.World, evt.Payload)
		slog.Debug(LogMsgEventBroadcast, "event_type", eventType, "world", evt.World)
		return nil
	}
}
