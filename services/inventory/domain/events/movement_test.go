package events_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/porcelarte/services/inventory/domain/events"
)

func TestStockMovementRecordedEvent_JSONFieldNames(t *testing.T) {
	evt := events.StockMovementRecordedEvent{
		EventID:       uuid.New(),
		Version:       1,
		MovementID:    uuid.New(),
		ProductKind:   "floor",
		ProductID:     uuid.New(),
		ProductName:   "Calacata Bianco 62×120",
		MovementType:  "exit",
		Quantity:      37,
		PreviousStock: 40,
		NewStock:      3,
		MinStock:      20,
		ActorID:       uuid.New(),
		OccurredAt:    time.Now().UTC(),
	}

	data, err := json.Marshal(evt)
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal to map failed: %v", err)
	}

	for _, field := range []string{
		"event_id", "version", "movement_id", "product_kind", "product_id", "movement_type",
		"quantity", "previous_stock", "new_stock", "min_stock", "actor_id", "occurred_at",
	} {
		if _, ok := raw[field]; !ok {
			t.Errorf("expected JSON field %q not found in: %s", field, data)
		}
	}
}

func TestStockMovementRecordedEvent_BelowMinimum(t *testing.T) {
	tests := []struct {
		name     string
		newStock int
		minStock int
		want     bool
	}{
		{"under minimum", 3, 20, true},
		{"at minimum", 20, 20, true},
		{"above minimum", 21, 20, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			evt := events.StockMovementRecordedEvent{NewStock: tt.newStock, MinStock: tt.minStock}
			if got := evt.BelowMinimum(); got != tt.want {
				t.Fatalf("BelowMinimum() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTopicStockMovementRecorded_Value(t *testing.T) {
	if events.TopicStockMovementRecorded != "inventory.movement.recorded" {
		t.Errorf("unexpected topic %q", events.TopicStockMovementRecorded)
	}
}
