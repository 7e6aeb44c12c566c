package entity

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	Name        string
	Description string
	Mission     string
	Goals       []string
	InScope     []string
	OutOfScope  []string
	Constraints string
	// ParentId links a branched project back to its origin. Single-level in
	// practice: branches of branches are allowed but never chased.
	ParentId  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
