package mapper

import (
	"time"

	"ai-brainstorm-be/internal/entity"
	"ai-brainstorm-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type FeatureMapper struct{}

func NewFeatureMapper() *FeatureMapper {
	return &FeatureMapper{}
}

func (m *FeatureMapper) ToEntity(f *model.Feature) *entity.Feature {
	if f == nil {
		return nil
	}

	var deletedAt *time.Time
	if f.DeletedAt.Valid {
		t := f.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !f.UpdatedAt.IsZero() {
		t := f.UpdatedAt
		updatedAt = &t
	}

	return &entity.Feature{
		Id:          f.Id,
		ProjectId:   f.ProjectId,
		Name:        f.Name,
		Description: f.Description,
		Perspective: entity.Perspective(f.Perspective),
		Category:    entity.Category(f.Category),
		Tags:        []string(f.Tags),
		AiEnhanced:  f.AiEnhanced,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
		IsDeleted:   f.DeletedAt.Valid,
	}
}

func (m *FeatureMapper) ToModel(f *entity.Feature) *model.Feature {
	if f == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if f.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *f.DeletedAt, Valid: true}
	} else if f.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if f.UpdatedAt != nil {
		updatedAt = *f.UpdatedAt
	}

	return &model.Feature{
		Id:          f.Id,
		ProjectId:   f.ProjectId,
		Name:        f.Name,
		Description: f.Description,
		Perspective: string(f.Perspective),
		Category:    string(f.Category),
		Tags:        datatypes.NewJSONSlice(f.Tags),
		AiEnhanced:  f.AiEnhanced,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   updatedAt,
		DeletedAt:   deletedAt,
	}
}

func (m *FeatureMapper) ToEntities(features []*model.Feature) []*entity.Feature {
	entities := make([]*entity.Feature, len(features))
	for i, f := range features {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
