package domain

import "time"

type MenuImportMessage struct {
	TaskID        string `json:"task_id"`
	SpreadsheetID string `json:"spreadsheet_id"`
}

type EntityType string

const (
	EntityOrder       EntityType = "order"
	EntityReservation EntityType = "reservation"
)

type StatusChangedEvent struct {
	EventType  string     `json:"event_type"`
	EntityType EntityType `json:"entity_type"`
	EntityID   string     `json:"entity_id"`
	OldStatus  string     `json:"old_status"`
	NewStatus  string     `json:"new_status"`
	ActorID    string     `json:"actor_id,omitempty"`
	Timestamp  time.Time  `json:"timestamp"`
}

const (
	EventOrderStatusChanged       = "order.status_changed"
	EventReservationStatusChanged = "reservation.status_changed"
)
