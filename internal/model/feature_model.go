package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Feature struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProjectId   uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Description string                      `gorm:"type:text"`
	Perspective string                      `gorm:"type:varchar(32);not null;index"`
	Category    string                      `gorm:"type:varchar(32);not null;index"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	AiEnhanced  string                      `gorm:"type:text"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt              `gorm:"index"`
}

func (Feature) TableName() string {
	return "features"
}
