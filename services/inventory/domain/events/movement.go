package events

import (
	"time"

	"github.com/google/uuid"
)

// TopicStockMovementRecorded is the Watermill topic published for every committed movement.
const TopicStockMovementRecorded = "inventory.movement.recorded"

// StockMovementRecordedVersion is the payload schema version currently published.
const StockMovementRecordedVersion = 1

// StockMovementRecordedEvent is published in the same transaction that commits a movement.
// Consumers subscribe via EventBus.Subscribe(ctx, events.TopicStockMovementRecorded).
type StockMovementRecordedEvent struct {
	EventID       uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version       int       `json:"version"`  // Schema version; increment on breaking changes
	MovementID    uuid.UUID `json:"movement_id"`
	ProductKind   string    `json:"product_kind"`
	ProductID     uuid.UUID `json:"product_id"`
	ProductName   string    `json:"product_name"`
	MovementType  string    `json:"movement_type"`
	Quantity      int       `json:"quantity"`
	PreviousStock int       `json:"previous_stock"`
	NewStock      int       `json:"new_stock"`
	MinStock      int       `json:"min_stock"`
	ActorID       uuid.UUID `json:"actor_id"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// BelowMinimum reports whether the movement left the product at or under its minimum.
func (e StockMovementRecordedEvent) BelowMinimum() bool {
	return e.NewStock <= e.MinStock
}
