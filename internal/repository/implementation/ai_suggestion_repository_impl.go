package implementation

import (
	"context"
	"errors"

	"ai-brainstorm-be/internal/entity"
	"ai-brainstorm-be/internal/mapper"
	"ai-brainstorm-be/internal/model"
	"ai-brainstorm-be/internal/repository/contract"
	"ai-brainstorm-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AiSuggestionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AiSuggestionMapper
}

func NewAiSuggestionRepository(db *gorm.DB) contract.AiSuggestionRepository {
	return &AiSuggestionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAiSuggestionMapper(),
	}
}

func (r *AiSuggestionRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *AiSuggestionRepositoryImpl) Create(ctx context.Context, suggestion *entity.AiSuggestion) error {
	m := r.mapper.ToModel(suggestion)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*suggestion = *r.mapper.ToEntity(m)
	return nil
}

func (r *AiSuggestionRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.AiSuggestion{}, id).Error
}

func (r *AiSuggestionRepositoryImpl) DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("project_id = ?", projectId).Delete(&model.AiSuggestion{}).Error
}

func (r *AiSuggestionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiSuggestion, error) {
	var m model.AiSuggestion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *AiSuggestionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiSuggestion, error) {
	var models []*model.AiSuggestion
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AiSuggestionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.AiSuggestion{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
