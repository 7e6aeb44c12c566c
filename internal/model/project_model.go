package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Project struct {
	Id          uuid.UUID                   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId      uuid.UUID                   `gorm:"type:uuid;not null;index"`
	Name        string                      `gorm:"type:varchar(255);not null"`
	Description string                      `gorm:"type:text"`
	Mission     string                      `gorm:"type:text"`
	Goals       datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	InScope     datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	OutOfScope  datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	Constraints string                      `gorm:"type:text"`
	ParentId    *uuid.UUID                  `gorm:"type:uuid;index"`
	CreatedAt   time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt   time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt              `gorm:"index"`
}

func (Project) TableName() string {
	return "projects"
}
