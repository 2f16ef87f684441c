package models

import "time"

type AuditAction string

const (
	AuditCreated AuditAction = "created"
	AuditUpdated AuditAction = "updated"
	AuditDeleted AuditAction = "deleted"
)

type AuditLog struct {
	ID         string         `json:"id" bson:"_id"`
	EntityType string         `json:"entity_type" bson:"entity_type"`
	EntityID   string         `json:"entity_id" bson:"entity_id"`
	Action     AuditAction    `json:"action" bson:"action"`
	ActorID    string         `json:"actor_id" bson:"actor_id"`
	Details    map[string]any `json:"details,omitempty" bson:"details,omitempty"`
	CreatedAt  time.Time      `json:"created_at" bson:"created_at"`
}
