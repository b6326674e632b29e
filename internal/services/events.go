package services

import "log"

// Catalog event types.
const (
	EventPlantCreated    = "plant.created"
	EventBookmarkAdded   = "bookmark.added"
	EventBookmarkRemoved = "bookmark.removed"
	EventNoteAdded       = "note.added"
	EventNoteUpdated     = "note.updated"
	EventNoteDeleted     = "note.deleted"
)

// EventPublisher publishes catalog change events. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	PublishEvent(eventType string, payload interface{}) error
}

// publish sends an event if a publisher is configured. Failures are logged
// and never surface to the caller.
func publish(events EventPublisher, eventType string, payload interface{}) {
	if events == nil {
		return
	}
	if err := events.PublishEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
