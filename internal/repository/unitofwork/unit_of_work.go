package unitofwork

import (
	"context"

	"ai-brainstorm-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	ProjectRepository() contract.ProjectRepository
	FeatureRepository() contract.FeatureRepository
	AiSuggestionRepository() contract.AiSuggestionRepository
	ActivityLogRepository() contract.ActivityLogRepository
}
