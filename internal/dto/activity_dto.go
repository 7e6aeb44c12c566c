package dto

import (
	"time"

	"github.com/google/uuid"
)

// ActivityMessage is the payload published on the in-process bus for the
// activity-log consumer.
type ActivityMessage struct {
	ProjectId uuid.UUID              `json:"project_id"`
	UserId    uuid.UUID              `json:"user_id"`
	EventType string                 `json:"event_type"`
	Detail    map[string]interface{} `json:"detail,omitempty"`
}

type ActivityLogResponse struct {
	Id        uuid.UUID              `json:"id"`
	ProjectId uuid.UUID              `json:"project_id"`
	EventType string                 `json:"event_type"`
	Detail    map[string]interface{} `json:"detail,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
