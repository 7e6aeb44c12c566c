package mapper

import (
	"ai-brainstorm-be/internal/entity"
	"ai-brainstorm-be/internal/model"
)

type AiSuggestionMapper struct{}

func NewAiSuggestionMapper() *AiSuggestionMapper {
	return &AiSuggestionMapper{}
}

func (m *AiSuggestionMapper) ToEntity(s *model.AiSuggestion) *entity.AiSuggestion {
	if s == nil {
		return nil
	}
	return &entity.AiSuggestion{
		Id:                s.Id,
		ProjectId:         s.ProjectId,
		Name:              s.Name,
		Description:       s.Description,
		Perspective:       entity.Perspective(s.Perspective),
		SuggestedCategory: entity.Category(s.SuggestedCategory),
		CreatedAt:         s.CreatedAt,
	}
}

func (m *AiSuggestionMapper) ToModel(s *entity.AiSuggestion) *model.AiSuggestion {
	if s == nil {
		return nil
	}
	return &model.AiSuggestion{
		Id:                s.Id,
		ProjectId:         s.ProjectId,
		Name:              s.Name,
		Description:       s.Description,
		Perspective:       string(s.Perspective),
		SuggestedCategory: string(s.SuggestedCategory),
		CreatedAt:         s.CreatedAt,
	}
}

func (m *AiSuggestionMapper) ToEntities(suggestions []*model.AiSuggestion) []*entity.AiSuggestion {
	entities := make([]*entity.AiSuggestion, len(suggestions))
	for i, s := range suggestions {
		entities[i] = m.ToEntity(s)
	}
	return entities
}
