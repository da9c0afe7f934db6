package domain

import (
	"time"

	"github.com/google/uuid"
)

// Vendor - запись таблицы фудтраков, которую ведёт /api/add-truck
type Vendor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	FacilityType string   `json:"facilityType"`
	Address      string   `json:"address"`
	FoodItems    []string `json:"foodItems"`
	ExpiryDate   string   `json:"expiryDate"`
	Status       string   `json:"status"`
}

// UpsertOutcome - результат upsert
type UpsertOutcome string

const (
	OutcomeCreated UpsertOutcome = "created"
	OutcomeUpdated UpsertOutcome = "updated"
)

// VendorEventType - тип события об изменении таблицы
type VendorEventType string

const (
	VendorCreatedEvent VendorEventType = "vendor.created"
	VendorUpdatedEvent VendorEventType = "vendor.updated"
)

// VendorEvent публикуется после успешной записи
type VendorEvent struct {
	EventID    uuid.UUID       `json:"event_id"`
	Type       VendorEventType `json:"type"`
	Vendor     Vendor          `json:"vendor"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewVendorEvent собирает событие по результату upsert
func NewVendorEvent(v Vendor, outcome UpsertOutcome, now time.Time) VendorEvent {
	eventType := VendorCreatedEvent
	if outcome == OutcomeUpdated {
		eventType = VendorUpdatedEvent
	}
	return VendorEvent{
		EventID:    uuid.New(),
		Type:       eventType,
		Vendor:     v,
		OccurredAt: now.UTC(),
	}
}
