package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"ai-brainstorm-be/internal/entity"
	"ai-brainstorm-be/internal/repository/specification"
	"ai-brainstorm-be/internal/repository/unitofwork"
	"ai-brainstorm-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ProjectRepository())
	assert.NotNil(t, uow.FeatureRepository())
	assert.NotNil(t, uow.AiSuggestionRepository())
	assert.NotNil(t, uow.ActivityLogRepository())

	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)

	t.Run("Check Project Repository", func(t *testing.T) {
		count, err := uow.ProjectRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Project count: %d", count)
	})

	t.Run("Check Feature Repository", func(t *testing.T) {
		count, err := uow.FeatureRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Feature count: %d", count)
	})

	t.Run("Suggestion Lifecycle", func(t *testing.T) {
		ctx := context.Background()

		project := &entity.Project{
			Id:        uuid.New(),
			UserId:    uuid.New(),
			Name:      "integration-test-project",
			CreatedAt: time.Now(),
		}
		require.NoError(t, uow.ProjectRepository().Create(ctx, project))
		defer uow.ProjectRepository().Delete(ctx, project.Id)

		suggestion := &entity.AiSuggestion{
			Id:                uuid.New(),
			ProjectId:         project.Id,
			Name:              "integration-test-suggestion",
			Description:       "round trip check",
			Perspective:       entity.PerspectiveTechnical,
			SuggestedCategory: entity.CategoryMVP,
			CreatedAt:         time.Now(),
		}
		require.NoError(t, uow.AiSuggestionRepository().Create(ctx, suggestion))

		found, err := uow.AiSuggestionRepository().FindOne(ctx, specification.ByID{ID: suggestion.Id})
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, suggestion.Name, found.Name)
		assert.Equal(t, entity.PerspectiveTechnical, found.Perspective)

		require.NoError(t, uow.AiSuggestionRepository().Delete(ctx, suggestion.Id))

		gone, err := uow.AiSuggestionRepository().FindOne(ctx, specification.ByID{ID: suggestion.Id})
		require.NoError(t, err)
		assert.Nil(t, gone, "hard delete must remove the row")
	})
}
