package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateProjectRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Mission     string   `json:"mission"`
	Goals       []string `json:"goals"`
	InScope     []string `json:"in_scope"`
	OutOfScope  []string `json:"out_of_scope"`
	Constraints string   `json:"constraints"`
}

type CreateProjectResponse struct {
	Id uuid.UUID `json:"id"`
}

type ProjectSummary struct {
	Id           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	ParentId     *uuid.UUID `json:"parent_id,omitempty"`
	FeatureCount int64      `json:"feature_count"`
	CreatedAt    time.Time  `json:"created_at"`
}

type ShowProjectResponse struct {
	Id          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Mission     string     `json:"mission"`
	Goals       []string   `json:"goals"`
	InScope     []string   `json:"in_scope"`
	OutOfScope  []string   `json:"out_of_scope"`
	Constraints string     `json:"constraints"`
	ParentId    *uuid.UUID `json:"parent_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type UpdateProjectRequest struct {
	Id          uuid.UUID `json:"-"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description"`
	Mission     string    `json:"mission"`
	Goals       []string  `json:"goals"`
	InScope     []string  `json:"in_scope"`
	OutOfScope  []string  `json:"out_of_scope"`
	Constraints string    `json:"constraints"`
}

type UpdateProjectResponse struct {
	Id uuid.UUID `json:"id"`
}

type BranchProjectRequest struct {
	Id         uuid.UUID   `json:"-"`
	Name       string      `json:"name" validate:"required"`
	FeatureIds []uuid.UUID `json:"feature_ids"`
}

type BranchProjectResponse struct {
	Id       uuid.UUID `json:"id"`
	ParentId uuid.UUID `json:"parent_id"`
	Moved    int       `json:"moved_features"`
}
