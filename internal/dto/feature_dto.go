package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFeatureRequest struct {
	ProjectId   uuid.UUID `json:"project_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Perspective string    `json:"perspective" validate:"required,oneof=technical business ux security"`
	Category    string    `json:"category" validate:"required,oneof=mvp launch v1.5 v2.0 rejected"`
	Tags        []string  `json:"tags"`
}

type CreateFeatureResponse struct {
	Id uuid.UUID `json:"id"`
}

type ShowFeatureResponse struct {
	Id          uuid.UUID  `json:"id"`
	ProjectId   uuid.UUID  `json:"project_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Perspective string     `json:"perspective"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	AiEnhanced  string     `json:"ai_enhanced,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type UpdateFeatureRequest struct {
	Id          uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Perspective string    `json:"perspective" validate:"required,oneof=technical business ux security"`
	Tags        []string  `json:"tags"`
	AiEnhanced  string    `json:"ai_enhanced"`
}

type UpdateFeatureResponse struct {
	Id uuid.UUID `json:"id"`
}

// MoveFeatureRequest is the kanban drag: only the category lane changes.
type MoveFeatureRequest struct {
	Id       uuid.UUID `json:"-"`
	Category string    `json:"category" validate:"required,oneof=mvp launch v1.5 v2.0 rejected"`
}

type MoveFeatureResponse struct {
	Id       uuid.UUID `json:"id"`
	Category string    `json:"category"`
}

type ListFeaturesRequest struct {
	ProjectId   uuid.UUID `json:"-"`
	Category    string    `json:"-"`
	Perspective string    `json:"-"`
}
