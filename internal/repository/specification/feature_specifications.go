package specification

import (
	"gorm.io/gorm"
)

type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category = ?", s.Category)
}

type ByPerspective struct {
	Perspective string
}

func (s ByPerspective) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("perspective = ?", s.Perspective)
}
