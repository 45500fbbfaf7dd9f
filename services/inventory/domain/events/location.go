package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published on location writes.
const (
	TopicLocationCreated = "location.created"
	TopicLocationUpdated = "location.updated"
	TopicLocationDeleted = "location.deleted"
)

// LocationChangedEvent is published after a Location is created, updated or deleted.
type LocationChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	LocationID int64     `json:"location_id"`
	Title      string    `json:"title,omitempty"`
	XCor       *int64    `json:"x_cor,omitempty"`
	YCor       *int64    `json:"y_cor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Topics lists every topic the inventory context publishes.
var Topics = []string{
	TopicItemCreated, TopicItemUpdated, TopicItemDeleted,
	TopicLocationCreated, TopicLocationUpdated, TopicLocationDeleted,
}
