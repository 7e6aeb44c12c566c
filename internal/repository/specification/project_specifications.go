package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByProjectID struct {
	ProjectID uuid.UUID
}

func (s ByProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}

type ByProjectIDs struct {
	ProjectIDs []uuid.UUID
}

func (s ByProjectIDs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id IN ?", s.ProjectIDs)
}

// ByParentID finds branches of a project
type ByParentID struct {
	ParentID uuid.UUID
}

func (s ByParentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("parent_id = ?", s.ParentID)
}
