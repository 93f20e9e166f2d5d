package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeBatchStarted   EventType = "batch_started"
	EventTypeBatchProgress  EventType = "batch_progress"
	EventTypeBatchCompleted EventType = "batch_completed"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// BatchStartedEvent represents the start of a simulation batch
type BatchStartedEvent struct {
	RunID   uuid.UUID
	Rounds  int
	Seed    int64
	Workers int
}

func (e BatchStartedEvent) Type() EventType {
	return EventTypeBatchStarted
}

// BatchProgressEvent represents periodic progress through a running batch
type BatchProgressEvent struct {
	RunID  uuid.UUID
	Played int
	Total  int
}

func (e BatchProgressEvent) Type() EventType {
	return EventTypeBatchProgress
}

// BatchCompletedEvent represents a finished simulation batch
type BatchCompletedEvent struct {
	RunID      uuid.UUID
	Rounds     int
	StayWins   int
	SwitchWins int
	Elapsed    time.Duration
}

func (e BatchCompletedEvent) Type() EventType {
	return EventTypeBatchCompleted
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Emit publishes an event to all registered handlers
func (b *Bus) Emit(ctx context.Context, event Event) {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	// Call handlers asynchronously to avoid blocking the simulation loop
	for i, handler := range handlers {
		go func(h Handler, handlerIndex int) {
			defer func() {
				if r := recover(); r != nil {
					log.WithFields(log.Fields{
						"eventType":    event.Type(),
						"handlerIndex": handlerIndex,
						"panic":        r,
					}).Error("Event handler panicked")
				}
			}()
			h(ctx, event)
		}(handler, i)
	}
}
