package dto

import (
	"time"

	"github.com/google/uuid"
)

type SuggestFeaturesRequest struct {
	ProjectId   uuid.UUID `json:"-"`
	Perspective string    `json:"perspective" validate:"required,oneof=technical business ux security"`
}

type SuggestionResponse struct {
	Id                uuid.UUID `json:"id"`
	ProjectId         uuid.UUID `json:"project_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Perspective       string    `json:"perspective"`
	SuggestedCategory string    `json:"suggested_category"`
	CreatedAt         time.Time `json:"created_at"`
}

type SuggestFromInfoRequest struct {
	ProjectId  uuid.UUID `json:"-"`
	Mission    string    `json:"mission"`
	Goals      []string  `json:"goals"`
	InScope    []string  `json:"in_scope"`
	OutOfScope []string  `json:"out_of_scope"`
}

type SuggestFromInfoResponse struct {
	Suggestions []*SuggestionResponse `json:"suggestions"`
}

type EnhanceDescriptionRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type EnhanceDescriptionResponse struct {
	EnhancedDescription string `json:"enhancedDescription"`
}

type GenerateTagsRequest struct {
	FeatureName        string `json:"featureName" validate:"required"`
	FeatureDescription string `json:"featureDescription"`
	ProjectContext     string `json:"projectContext"`
}

type GenerateTagsResponse struct {
	Tags []string `json:"tags"`
}

type AnalyzeBranchingRequest struct {
	ProjectId     uuid.UUID   `json:"-"`
	NewFeatureIds []uuid.UUID `json:"newFeatureIds" validate:"required,min=1"`
}

type AnalyzeBranchingResponse struct {
	ShouldBranch  bool   `json:"shouldBranch"`
	Reason        string `json:"reason"`
	SuggestedName string `json:"suggestedName,omitempty"`
}

type AcceptSuggestionResponse struct {
	FeatureId uuid.UUID `json:"feature_id"`
}
