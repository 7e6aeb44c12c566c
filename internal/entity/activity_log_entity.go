package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActivityLog struct {
	Id        uuid.UUID
	ProjectId uuid.UUID
	UserId    uuid.UUID
	EventType string
	Detail    map[string]interface{}
	CreatedAt time.Time
}
