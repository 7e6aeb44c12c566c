package entity

import (
	"time"

	"github.com/google/uuid"
)

// AiSuggestion is an AI-proposed candidate feature awaiting accept/reject.
// It is deleted on either verdict; a suggestion never implies a Feature.
type AiSuggestion struct {
	Id                uuid.UUID
	ProjectId         uuid.UUID
	Name              string
	Description       string
	Perspective       Perspective
	SuggestedCategory Category
	CreatedAt         time.Time
}
