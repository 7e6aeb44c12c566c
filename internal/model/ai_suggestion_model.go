package model

import (
	"time"

	"github.com/google/uuid"
)

// AiSuggestion rows are hard-deleted on accept/reject, no soft delete.
type AiSuggestion struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId         uuid.UUID `gorm:"type:uuid;not null;index"`
	Name              string    `gorm:"type:varchar(255);not null"`
	Description       string    `gorm:"type:text"`
	Perspective       string    `gorm:"type:varchar(32);not null"`
	SuggestedCategory string    `gorm:"type:varchar(32);not null"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

func (AiSuggestion) TableName() string {
	return "ai_suggestions"
}
