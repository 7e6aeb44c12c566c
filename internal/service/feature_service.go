package service

import (
	"context"
	"time"

	"ai-brainstorm-be/internal/constant"
	"ai-brainstorm-be/internal/dto"
	"ai-brainstorm-be/internal/entity"
	"ai-brainstorm-be/internal/pkg/logger"
	"ai-brainstorm-be/internal/pkg/serverutils"
	"ai-brainstorm-be/internal/repository/memory"
	"ai-brainstorm-be/internal/repository/specification"
	"ai-brainstorm-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IFeatureService interface {
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFeatureRequest) (*dto.CreateFeatureResponse, error)
	Show(ctx context.Context, userId, featureId uuid.UUID) (*dto.ShowFeatureResponse, error)
	List(ctx context.Context, userId uuid.UUID, req *dto.ListFeaturesRequest) ([]*dto.ShowFeatureResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.UpdateFeatureResponse, error)
	Move(ctx context.Context, userId uuid.UUID, req *dto.MoveFeatureRequest) (*dto.MoveFeatureResponse, error)
	Delete(ctx context.Context, userId, featureId uuid.UUID) error
}

type featureService struct {
	uowFactory    unitofwork.RepositoryFactory
	publisher     IPublisherService
	analysisCache *memory.AnalysisCache
	logger        logger.ILogger
}

func NewFeatureService(
	uowFactory unitofwork.RepositoryFactory,
	publisher IPublisherService,
	analysisCache *memory.AnalysisCache,
	log logger.ILogger,
) IFeatureService {
	return &featureService{
		uowFactory:    uowFactory,
		publisher:     publisher,
		analysisCache: analysisCache,
		logger:        log,
	}
}

func (s *featureService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateFeatureRequest) (*dto.CreateFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedProject(ctx, uow, userId, req.ProjectId); err != nil {
		return nil, err
	}

	feature := &entity.Feature{
		Id:          uuid.New(),
		ProjectId:   req.ProjectId,
		Name:        req.Name,
		Description: req.Description,
		Perspective: entity.Perspective(req.Perspective),
		Category:    entity.Category(req.Category),
		Tags:        req.Tags,
		CreatedAt:   time.Now(),
	}

	if err := uow.FeatureRepository().Create(ctx, feature); err != nil {
		return nil, err
	}

	// Board changed, any cached branch verdict is stale
	s.analysisCache.Invalidate(req.ProjectId)

	s.publishActivity(ctx, req.ProjectId, userId, constant.EventFeatureCreated, map[string]interface{}{
		"feature_id": feature.Id.String(),
		"name":       feature.Name,
		"category":   string(feature.Category),
	})

	return &dto.CreateFeatureResponse{Id: feature.Id}, nil
}

func (s *featureService) Show(ctx context.Context, userId, featureId uuid.UUID) (*dto.ShowFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := s.ownedFeature(ctx, uow, userId, featureId)
	if err != nil {
		return nil, err
	}

	return featureToResponse(feature), nil
}

func (s *featureService) List(ctx context.Context, userId uuid.UUID, req *dto.ListFeaturesRequest) ([]*dto.ShowFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedProject(ctx, uow, userId, req.ProjectId); err != nil {
		return nil, err
	}

	specs := []specification.Specification{
		specification.ByProjectID{ProjectID: req.ProjectId},
		specification.OrderBy{Field: "created_at", Desc: false},
	}
	if req.Category != "" {
		specs = append(specs, specification.ByCategory{Category: req.Category})
	}
	if req.Perspective != "" {
		specs = append(specs, specification.ByPerspective{Perspective: req.Perspective})
	}

	features, err := uow.FeatureRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ShowFeatureResponse, 0, len(features))
	for _, f := range features {
		out = append(out, featureToResponse(f))
	}
	return out, nil
}

func (s *featureService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.UpdateFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := s.ownedFeature(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	feature.Name = req.Name
	feature.Description = req.Description
	feature.Perspective = entity.Perspective(req.Perspective)
	feature.Tags = req.Tags
	feature.AiEnhanced = req.AiEnhanced
	feature.UpdatedAt = &now

	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	s.analysisCache.Invalidate(feature.ProjectId)

	return &dto.UpdateFeatureResponse{Id: feature.Id}, nil
}

// Move changes only the category lane, the kanban drag operation.
func (s *featureService) Move(ctx context.Context, userId uuid.UUID, req *dto.MoveFeatureRequest) (*dto.MoveFeatureResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := s.ownedFeature(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	from := feature.Category
	feature.Category = entity.Category(req.Category)
	feature.UpdatedAt = &now

	if err := uow.FeatureRepository().Update(ctx, feature); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, feature.ProjectId, userId, constant.EventFeatureMoved, map[string]interface{}{
		"feature_id": feature.Id.String(),
		"name":       feature.Name,
		"from":       string(from),
		"to":         req.Category,
	})

	return &dto.MoveFeatureResponse{
		Id:       feature.Id,
		Category: string(feature.Category),
	}, nil
}

func (s *featureService) Delete(ctx context.Context, userId, featureId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	feature, err := s.ownedFeature(ctx, uow, userId, featureId)
	if err != nil {
		return err
	}

	if err := uow.FeatureRepository().Delete(ctx, featureId); err != nil {
		return err
	}

	s.analysisCache.Invalidate(feature.ProjectId)

	s.publishActivity(ctx, feature.ProjectId, userId, constant.EventFeatureDeleted, map[string]interface{}{
		"feature_id": feature.Id.String(),
		"name":       feature.Name,
	})

	return nil
}

// ownedFeature resolves a feature through its project's ownership. A
// feature in someone else's project reads as not found.
func (s *featureService) ownedFeature(ctx context.Context, uow unitofwork.UnitOfWork, userId, featureId uuid.UUID) (*entity.Feature, error) {
	feature, err := uow.FeatureRepository().FindOne(ctx, specification.ByID{ID: featureId})
	if err != nil {
		return nil, err
	}
	if feature == nil {
		return nil, serverutils.ErrNotFound
	}

	if _, err := s.ownedProject(ctx, uow, userId, feature.ProjectId); err != nil {
		return nil, err
	}
	return feature, nil
}

func (s *featureService) ownedProject(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId uuid.UUID) (*entity.Project, error) {
	project, err := uow.ProjectRepository().FindOne(ctx,
		specification.ByID{ID: projectId},
		specification.OwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, serverutils.ErrNotFound
	}
	return project, nil
}

func (s *featureService) publishActivity(ctx context.Context, projectId, userId uuid.UUID, eventType string, detail map[string]interface{}) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.PublishActivity(ctx, &dto.ActivityMessage{
		ProjectId: projectId,
		UserId:    userId,
		EventType: eventType,
		Detail:    detail,
	})
	if err != nil {
		s.logger.Warn("FeatureService", "Failed to publish activity event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func featureToResponse(f *entity.Feature) *dto.ShowFeatureResponse {
	return &dto.ShowFeatureResponse{
		Id:          f.Id,
		ProjectId:   f.ProjectId,
		Name:        f.Name,
		Description: f.Description,
		Perspective: string(f.Perspective),
		Category:    string(f.Category),
		Tags:        f.Tags,
		AiEnhanced:  f.AiEnhanced,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
