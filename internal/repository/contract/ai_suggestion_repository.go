package contract

import (
	"context"

	"ai-brainstorm-be/internal/entity"
	"ai-brainstorm-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AiSuggestionRepository interface {
	Create(ctx context.Context, suggestion *entity.AiSuggestion) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiSuggestion, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiSuggestion, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
