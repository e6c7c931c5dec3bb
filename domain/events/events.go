package events

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in a lotto run
type EventType string

const (
	EventTypeTicketsPurchased EventType = "tickets_purchased"
	EventTypeWinningEntered   EventType = "winning_entered"
	EventTypeGameScored       EventType = "game_scored"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// TicketsPurchasedEvent is emitted once a game has bought its tickets
type TicketsPurchasedEvent struct {
	RunID       string
	Amount      int64
	TicketCount int
}

func (e TicketsPurchasedEvent) Type() EventType {
	return EventTypeTicketsPurchased
}

// WinningEnteredEvent is emitted when valid winning numbers are stored
type WinningEnteredEvent struct {
	RunID          string
	WinningNumbers []int
	BonusNumber    int
}

func (e WinningEnteredEvent) Type() EventType {
	return EventTypeWinningEntered
}

// GameScoredEvent is emitted the first time a game is scored against its winning numbers
type GameScoredEvent struct {
	RunID       string
	TicketCount int
	TotalPrize  int64
	Yield       float64
	Counts      map[string]int
}

func (e GameScoredEvent) Type() EventType {
	return EventTypeGameScored
}

// Handler is a function that handles events
type Handler func(event Event)

// Bus dispatches events to subscribed handlers synchronously, in subscription order
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

// Publish calls every handler registered for the event's type.
// A panicking handler is logged and does not stop the remaining handlers.
func (b *Bus) Publish(event Event) error {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers[event.Type()]))
	copy(handlers, b.handlers[event.Type()])
	b.mu.RUnlock()

	log.WithFields(log.Fields{
		"eventType":    event.Type(),
		"handlerCount": len(handlers),
	}).Debug("Publishing event to handlers")

	for i, handler := range handlers {
		b.call(handler, i, event)
	}
	return nil
}

func (b *Bus) call(h Handler, handlerIndex int, event Event) {
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"eventType":    event.Type(),
				"handlerIndex": handlerIndex,
				"panic":        r,
			}).Error("Event handler panicked")
		}
	}()
	h(event)
}
