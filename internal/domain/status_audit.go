package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type StatusAudit struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	EntityType EntityType         `bson:"entity_type" json:"entityType"`
	EntityID   string             `bson:"entity_id" json:"entityId"`
	EventType  string             `bson:"event_type" json:"eventType"`
	OldStatus  string             `bson:"old_status" json:"oldStatus"`
	NewStatus  string             `bson:"new_status" json:"newStatus"`
	ActorID    string             `bson:"actor_id,omitempty" json:"actorId,omitempty"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
}
