package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics published on item writes.
const (
	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// ItemChangedEvent is published after an Item is created, updated or deleted.
// The topic carries the kind of change. Deleted events carry only ItemID.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicItemCreated).
type ItemChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version    int       `json:"version"`  // Schema version; increment on breaking changes
	ItemID     int64     `json:"item_id"`
	Title      string    `json:"title,omitempty"`
	LocationID int64     `json:"location_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
