package entity

import (
	"time"

	"github.com/google/uuid"
)

type Perspective string
type Category string

const (
	PerspectiveTechnical Perspective = "technical"
	PerspectiveBusiness  Perspective = "business"
	PerspectiveUX        Perspective = "ux"
	PerspectiveSecurity  Perspective = "security"

	CategoryMVP      Category = "mvp"
	CategoryLaunch   Category = "launch"
	CategoryV15      Category = "v1.5"
	CategoryV20      Category = "v2.0"
	CategoryRejected Category = "rejected"
)

// AllPerspectives lists the four lenses suggestions can be angled by.
var AllPerspectives = []Perspective{
	PerspectiveTechnical,
	PerspectiveBusiness,
	PerspectiveUX,
	PerspectiveSecurity,
}

func (p Perspective) Valid() bool {
	switch p {
	case PerspectiveTechnical, PerspectiveBusiness, PerspectiveUX, PerspectiveSecurity:
		return true
	}
	return false
}

func (c Category) Valid() bool {
	switch c {
	case CategoryMVP, CategoryLaunch, CategoryV15, CategoryV20, CategoryRejected:
		return true
	}
	return false
}

// ValidSuggestedCategory reports whether c is a category the AI is allowed
// to propose. "rejected" is a user verdict, never a suggestion target.
func ValidSuggestedCategory(c Category) bool {
	switch c {
	case CategoryMVP, CategoryLaunch, CategoryV15, CategoryV20:
		return true
	}
	return false
}

type Feature struct {
	Id          uuid.UUID
	ProjectId   uuid.UUID
	Name        string
	Description string
	Perspective Perspective
	Category    Category
	Tags        []string
	AiEnhanced  string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
