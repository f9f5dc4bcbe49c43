package services

import "log"

// EventPublisher publishes resource change events to a message broker.
// Implemented by pkg/rabbitmq.Client. Publishing is best effort: a broker
// failure never fails the request that triggered the event.
type EventPublisher interface {
	Publish(routingKey string, payload interface{}) error
}

// publishEvent publishes a change event if a publisher is configured,
// logging failures instead of propagating them.
func publishEvent(events EventPublisher, routingKey string, payload interface{}) {
	if events == nil {
		return
	}
	if err := events.Publish(routingKey, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
