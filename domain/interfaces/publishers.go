package interfaces

import "lotto/domain/events"

// EventPublisher publishes domain events
type EventPublisher interface {
	Publish(event events.Event) error
}
