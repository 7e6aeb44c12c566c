package service

import (
	"context"
	"time"

	"ai-brainstorm-be/internal/constant"
	"ai-brainstorm-be/internal/dto"
	"ai-brainstorm-be/internal/entity"
	"ai-brainstorm-be/internal/pkg/logger"
	"ai-brainstorm-be/internal/pkg/serverutils"
	"ai-brainstorm-be/internal/repository/specification"
	"ai-brainstorm-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IProjectService interface {
	GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectSummary, error)
	Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error)
	Show(ctx context.Context, userId, projectId uuid.UUID) (*dto.ShowProjectResponse, error)
	Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.UpdateProjectResponse, error)
	Delete(ctx context.Context, userId, projectId uuid.UUID) error
	Branch(ctx context.Context, userId uuid.UUID, req *dto.BranchProjectRequest) (*dto.BranchProjectResponse, error)
	GetActivity(ctx context.Context, userId, projectId uuid.UUID) ([]*dto.ActivityLogResponse, error)
}

type projectService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  IPublisherService
	logger     logger.ILogger
}

func NewProjectService(uowFactory unitofwork.RepositoryFactory, publisher IPublisherService, log logger.ILogger) IProjectService {
	return &projectService{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     log,
	}
}

func (s *projectService) GetAll(ctx context.Context, userId uuid.UUID) ([]*dto.ProjectSummary, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	projects, err := uow.ProjectRepository().FindAll(ctx,
		specification.OwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	summaries := make([]*dto.ProjectSummary, 0, len(projects))
	for _, p := range projects {
		count, err := uow.FeatureRepository().Count(ctx, specification.ByProjectID{ProjectID: p.Id})
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, &dto.ProjectSummary{
			Id:           p.Id,
			Name:         p.Name,
			Description:  p.Description,
			ParentId:     p.ParentId,
			FeatureCount: count,
			CreatedAt:    p.CreatedAt,
		})
	}

	return summaries, nil
}

func (s *projectService) Create(ctx context.Context, userId uuid.UUID, req *dto.CreateProjectRequest) (*dto.CreateProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project := &entity.Project{
		Id:          uuid.New(),
		UserId:      userId,
		Name:        req.Name,
		Description: req.Description,
		Mission:     req.Mission,
		Goals:       req.Goals,
		InScope:     req.InScope,
		OutOfScope:  req.OutOfScope,
		Constraints: req.Constraints,
		CreatedAt:   time.Now(),
	}

	if err := uow.ProjectRepository().Create(ctx, project); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, project.Id, userId, constant.EventProjectCreated, map[string]interface{}{
		"name": project.Name,
	})

	return &dto.CreateProjectResponse{Id: project.Id}, nil
}

func (s *projectService) Show(ctx context.Context, userId, projectId uuid.UUID) (*dto.ShowProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.findOwnedProject(ctx, uow, userId, projectId)
	if err != nil {
		return nil, err
	}

	return &dto.ShowProjectResponse{
		Id:          project.Id,
		Name:        project.Name,
		Description: project.Description,
		Mission:     project.Mission,
		Goals:       project.Goals,
		InScope:     project.InScope,
		OutOfScope:  project.OutOfScope,
		Constraints: project.Constraints,
		ParentId:    project.ParentId,
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	}, nil
}

func (s *projectService) Update(ctx context.Context, userId uuid.UUID, req *dto.UpdateProjectRequest) (*dto.UpdateProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.findOwnedProject(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	project.Name = req.Name
	project.Description = req.Description
	project.Mission = req.Mission
	project.Goals = req.Goals
	project.InScope = req.InScope
	project.OutOfScope = req.OutOfScope
	project.Constraints = req.Constraints
	project.UpdatedAt = &now

	if err := uow.ProjectRepository().Update(ctx, project); err != nil {
		return nil, err
	}

	return &dto.UpdateProjectResponse{Id: project.Id}, nil
}

// Delete removes a project and everything under it: features, pending
// suggestions and the project row itself, in one transaction.
func (s *projectService) Delete(ctx context.Context, userId, projectId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.findOwnedProject(ctx, uow, userId, projectId)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}

	if err := uow.FeatureRepository().DeleteAllByProjectId(ctx, projectId); err != nil {
		uow.Rollback()
		return err
	}
	if err := uow.AiSuggestionRepository().DeleteAllByProjectId(ctx, projectId); err != nil {
		uow.Rollback()
		return err
	}

	// Detach branches so they don't point at a deleted parent
	branches, err := uow.ProjectRepository().FindAll(ctx, specification.ByParentID{ParentID: projectId})
	if err != nil {
		uow.Rollback()
		return err
	}
	for _, b := range branches {
		b.ParentId = nil
		if err := uow.ProjectRepository().Update(ctx, b); err != nil {
			uow.Rollback()
			return err
		}
	}

	if err := uow.ProjectRepository().Delete(ctx, projectId); err != nil {
		uow.Rollback()
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.publishActivity(ctx, projectId, userId, constant.EventProjectDeleted, map[string]interface{}{
		"name": project.Name,
	})

	return nil
}

// Branch spins off a child project and moves the selected features into
// it. Feature ids that don't belong to the source project are skipped,
// not errored: the client may hold a stale board.
func (s *projectService) Branch(ctx context.Context, userId uuid.UUID, req *dto.BranchProjectRequest) (*dto.BranchProjectResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	parent, err := s.findOwnedProject(ctx, uow, userId, req.Id)
	if err != nil {
		return nil, err
	}

	child := &entity.Project{
		Id:          uuid.New(),
		UserId:      userId,
		Name:        req.Name,
		Description: parent.Description,
		Mission:     parent.Mission,
		Goals:       parent.Goals,
		InScope:     parent.InScope,
		OutOfScope:  parent.OutOfScope,
		Constraints: parent.Constraints,
		ParentId:    &parent.Id,
		CreatedAt:   time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	if err := uow.ProjectRepository().Create(ctx, child); err != nil {
		uow.Rollback()
		return nil, err
	}

	moved := 0
	if len(req.FeatureIds) > 0 {
		features, err := uow.FeatureRepository().FindAll(ctx,
			specification.ByIDs{IDs: req.FeatureIds},
			specification.ByProjectID{ProjectID: parent.Id},
		)
		if err != nil {
			uow.Rollback()
			return nil, err
		}

		now := time.Now()
		for _, f := range features {
			f.ProjectId = child.Id
			f.UpdatedAt = &now
			if err := uow.FeatureRepository().Update(ctx, f); err != nil {
				uow.Rollback()
				return nil, err
			}
			moved++
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.publishActivity(ctx, parent.Id, userId, constant.EventProjectBranched, map[string]interface{}{
		"branch_id":   child.Id.String(),
		"branch_name": child.Name,
		"moved":       moved,
	})

	return &dto.BranchProjectResponse{
		Id:       child.Id,
		ParentId: parent.Id,
		Moved:    moved,
	}, nil
}

func (s *projectService) GetActivity(ctx context.Context, userId, projectId uuid.UUID) ([]*dto.ActivityLogResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedProject(ctx, uow, userId, projectId); err != nil {
		return nil, err
	}

	logs, err := uow.ActivityLogRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 100, Offset: 0},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ActivityLogResponse, 0, len(logs))
	for _, l := range logs {
		out = append(out, &dto.ActivityLogResponse{
			Id:        l.Id,
			ProjectId: l.ProjectId,
			EventType: l.EventType,
			Detail:    l.Detail,
			CreatedAt: l.CreatedAt,
		})
	}
	return out, nil
}

// findOwnedProject loads a project and enforces ownership. Anything not
// found or not owned collapses to ErrNotFound so callers can't probe for
// other users' project ids.
func (s *projectService) findOwnedProject(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId uuid.UUID) (*entity.Project, error) {
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

func (s *projectService) publishActivity(ctx context.Context, projectId, userId uuid.UUID, eventType string, detail map[string]interface{}) {
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
		s.logger.Warn("ProjectService", "Failed to publish activity event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}
