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
	"ai-brainstorm-be/pkg/brainstorm/branch"
	"ai-brainstorm-be/pkg/brainstorm/prompt"
	"ai-brainstorm-be/pkg/brainstorm/response"
	"ai-brainstorm-be/pkg/llm"

	"github.com/google/uuid"
)

type IAiService interface {
	SuggestFeatures(ctx context.Context, userId uuid.UUID, req *dto.SuggestFeaturesRequest) ([]*dto.SuggestionResponse, error)
	SuggestFromInfo(ctx context.Context, userId uuid.UUID, req *dto.SuggestFromInfoRequest) (*dto.SuggestFromInfoResponse, error)
	ListSuggestions(ctx context.Context, userId, projectId uuid.UUID) ([]*dto.SuggestionResponse, error)
	AcceptSuggestion(ctx context.Context, userId, suggestionId uuid.UUID) (*dto.AcceptSuggestionResponse, error)
	RejectSuggestion(ctx context.Context, userId, suggestionId uuid.UUID) error
	EnhanceDescription(ctx context.Context, req *dto.EnhanceDescriptionRequest) (*dto.EnhanceDescriptionResponse, error)
	GenerateTags(ctx context.Context, req *dto.GenerateTagsRequest) (*dto.GenerateTagsResponse, error)
	AnalyzeBranching(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeBranchingRequest) (*dto.AnalyzeBranchingResponse, error)
}

// aiService runs the suggestion pipeline: prompt build, provider call,
// response normalization, fallback, persistence. provider may be nil when
// no credential is configured; every operation degrades to canned output.
type aiService struct {
	uowFactory     unitofwork.RepositoryFactory
	provider       llm.LLMProvider
	analyzer       *branch.Analyzer
	analysisCache  *memory.AnalysisCache
	publisher      IPublisherService
	logger         logger.ILogger
	requestTimeout time.Duration
}

func NewAiService(
	uowFactory unitofwork.RepositoryFactory,
	provider llm.LLMProvider,
	analyzer *branch.Analyzer,
	analysisCache *memory.AnalysisCache,
	publisher IPublisherService,
	log logger.ILogger,
	requestTimeout time.Duration,
) IAiService {
	if requestTimeout <= 0 {
		requestTimeout = 60 * time.Second
	}
	return &aiService{
		uowFactory:     uowFactory,
		provider:       provider,
		analyzer:       analyzer,
		analysisCache:  analysisCache,
		publisher:      publisher,
		logger:         log,
		requestTimeout: requestTimeout,
	}
}

func (s *aiService) SuggestFeatures(ctx context.Context, userId uuid.UUID, req *dto.SuggestFeaturesRequest) ([]*dto.SuggestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.ownedProject(ctx, uow, userId, req.ProjectId)
	if err != nil {
		return nil, err
	}

	features, err := uow.FeatureRepository().FindAll(ctx, specification.ByProjectID{ProjectID: project.Id})
	if err != nil {
		return nil, err
	}

	perspective := entity.Perspective(req.Perspective)
	projectCtx := toPromptContext(project, features)

	parsed := s.generateSuggestions(ctx, perspective, projectCtx)

	saved := s.persistSuggestions(ctx, uow, project.Id, parsed)

	s.publishActivity(ctx, project.Id, userId, constant.EventSuggestionsGenerated, map[string]interface{}{
		"perspective": req.Perspective,
		"count":       len(saved),
	})

	return saved, nil
}

// generateSuggestions runs the prompt/call/normalize chain for one
// perspective. Every failure path lands on the fallback table; the only
// difference between causes is the log line.
func (s *aiService) generateSuggestions(ctx context.Context, perspective entity.Perspective, projectCtx prompt.ProjectContext) []response.ParsedSuggestion {
	if s.provider == nil {
		s.logger.Warn("AiService", "No AI credentials configured, using fallback suggestions", map[string]interface{}{
			"cause":       "no_credentials",
			"perspective": string(perspective),
		})
		return response.FallbackSuggestions(perspective)
	}

	p := prompt.NewSuggestionBuilder(projectCtx, string(perspective)).Build()

	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	raw, err := s.provider.Generate(callCtx, p, llm.WithJSONMode(), llm.WithTemperature(0.7))
	if err != nil {
		s.logger.Warn("AiService", "LLM call failed, using fallback suggestions", map[string]interface{}{
			"cause":       "api_error",
			"perspective": string(perspective),
			"error":       err.Error(),
		})
		return response.FallbackSuggestions(perspective)
	}

	result := response.Normalize(raw, perspective)
	if result.Malformed {
		s.logger.Warn("AiService", "Unparseable LLM response, using fallback suggestions", map[string]interface{}{
			"cause":       "malformed_response",
			"perspective": string(perspective),
		})
		return response.FallbackSuggestions(perspective)
	}

	return result.Suggestions
}

func (s *aiService) SuggestFromInfo(ctx context.Context, userId uuid.UUID, req *dto.SuggestFromInfoRequest) (*dto.SuggestFromInfoResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.ownedProject(ctx, uow, userId, req.ProjectId)
	if err != nil {
		return nil, err
	}

	// The request may carry fresher project info than what is persisted;
	// prefer it field by field.
	projectCtx := prompt.ProjectContext{
		Name:        project.Name,
		Description: project.Description,
		Mission:     firstNonEmpty(req.Mission, project.Mission),
		Goals:       firstNonEmptyList(req.Goals, project.Goals),
		InScope:     firstNonEmptyList(req.InScope, project.InScope),
		OutOfScope:  firstNonEmptyList(req.OutOfScope, project.OutOfScope),
		Constraints: project.Constraints,
	}

	parsed := s.generateProjectSuggestions(ctx, projectCtx)

	saved := s.persistSuggestions(ctx, uow, project.Id, parsed)

	s.publishActivity(ctx, project.Id, userId, constant.EventSuggestionsGenerated, map[string]interface{}{
		"source": "project_info",
		"count":  len(saved),
	})

	return &dto.SuggestFromInfoResponse{Suggestions: saved}, nil
}

func (s *aiService) generateProjectSuggestions(ctx context.Context, projectCtx prompt.ProjectContext) []response.ParsedSuggestion {
	if s.provider == nil {
		s.logger.Warn("AiService", "No AI credentials configured, using fallback project suggestions", map[string]interface{}{
			"cause": "no_credentials",
		})
		return response.FallbackProjectSuggestions()
	}

	p := prompt.NewProjectInfoBuilder(projectCtx).Build()

	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	raw, err := s.provider.Generate(callCtx, p, llm.WithJSONMode(), llm.WithTemperature(0.7))
	if err != nil {
		s.logger.Warn("AiService", "LLM call failed, using fallback project suggestions", map[string]interface{}{
			"cause": "api_error",
			"error": err.Error(),
		})
		return response.FallbackProjectSuggestions()
	}

	// No perspective constraint here: keep the model's claim when valid.
	result := response.Normalize(raw, "")
	if result.Malformed {
		s.logger.Warn("AiService", "Unparseable LLM response, using fallback project suggestions", map[string]interface{}{
			"cause": "malformed_response",
		})
		return response.FallbackProjectSuggestions()
	}

	return result.Suggestions
}

// persistSuggestions inserts each suggestion independently. One bad row
// does not void the batch: the user gets whatever made it to storage.
func (s *aiService) persistSuggestions(ctx context.Context, uow unitofwork.UnitOfWork, projectId uuid.UUID, parsed []response.ParsedSuggestion) []*dto.SuggestionResponse {
	saved := make([]*dto.SuggestionResponse, 0, len(parsed))
	for _, p := range parsed {
		suggestion := &entity.AiSuggestion{
			Id:                uuid.New(),
			ProjectId:         projectId,
			Name:              p.Name,
			Description:       p.Description,
			Perspective:       p.Perspective,
			SuggestedCategory: p.SuggestedCategory,
			CreatedAt:         time.Now(),
		}
		if err := uow.AiSuggestionRepository().Create(ctx, suggestion); err != nil {
			s.logger.Error("AiService", "Failed to persist suggestion", map[string]interface{}{
				"name":  suggestion.Name,
				"error": err.Error(),
			})
			continue
		}
		saved = append(saved, suggestionToResponse(suggestion))
	}
	return saved
}

func (s *aiService) ListSuggestions(ctx context.Context, userId, projectId uuid.UUID) ([]*dto.SuggestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.ownedProject(ctx, uow, userId, projectId); err != nil {
		return nil, err
	}

	suggestions, err := uow.AiSuggestionRepository().FindAll(ctx,
		specification.ByProjectID{ProjectID: projectId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.SuggestionResponse, 0, len(suggestions))
	for _, sg := range suggestions {
		out = append(out, suggestionToResponse(sg))
	}
	return out, nil
}

// AcceptSuggestion promotes a suggestion into a real feature and removes
// the suggestion, atomically. Name, description and perspective carry over
// unchanged; the suggested category becomes the feature's starting lane.
func (s *aiService) AcceptSuggestion(ctx context.Context, userId, suggestionId uuid.UUID) (*dto.AcceptSuggestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	suggestion, err := s.ownedSuggestion(ctx, uow, userId, suggestionId)
	if err != nil {
		return nil, err
	}

	feature := &entity.Feature{
		Id:          uuid.New(),
		ProjectId:   suggestion.ProjectId,
		Name:        suggestion.Name,
		Description: suggestion.Description,
		Perspective: suggestion.Perspective,
		Category:    suggestion.SuggestedCategory,
		CreatedAt:   time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	if err := uow.FeatureRepository().Create(ctx, feature); err != nil {
		uow.Rollback()
		return nil, err
	}
	if err := uow.AiSuggestionRepository().Delete(ctx, suggestion.Id); err != nil {
		uow.Rollback()
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.analysisCache.Invalidate(suggestion.ProjectId)

	s.publishActivity(ctx, suggestion.ProjectId, userId, constant.EventSuggestionAccepted, map[string]interface{}{
		"feature_id": feature.Id.String(),
		"name":       feature.Name,
	})

	return &dto.AcceptSuggestionResponse{FeatureId: feature.Id}, nil
}

func (s *aiService) RejectSuggestion(ctx context.Context, userId, suggestionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	suggestion, err := s.ownedSuggestion(ctx, uow, userId, suggestionId)
	if err != nil {
		return err
	}

	if err := uow.AiSuggestionRepository().Delete(ctx, suggestion.Id); err != nil {
		return err
	}

	s.publishActivity(ctx, suggestion.ProjectId, userId, constant.EventSuggestionRejected, map[string]interface{}{
		"name": suggestion.Name,
	})

	return nil
}

func (s *aiService) EnhanceDescription(ctx context.Context, req *dto.EnhanceDescriptionRequest) (*dto.EnhanceDescriptionResponse, error) {
	if s.provider == nil {
		s.logger.Warn("AiService", "No AI credentials configured, using local description rewrite", map[string]interface{}{
			"cause": "no_credentials",
		})
		return &dto.EnhanceDescriptionResponse{
			EnhancedDescription: response.FallbackEnhancedDescription(req.Name, req.Description),
		}, nil
	}

	p := prompt.BuildEnhanceDescription(req.Name, req.Description)

	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	raw, err := s.provider.Generate(callCtx, p, llm.WithJSONMode(), llm.WithTemperature(0.5))
	if err != nil {
		s.logger.Warn("AiService", "LLM call failed, using local description rewrite", map[string]interface{}{
			"cause": "api_error",
			"error": err.Error(),
		})
		return &dto.EnhanceDescriptionResponse{
			EnhancedDescription: response.FallbackEnhancedDescription(req.Name, req.Description),
		}, nil
	}

	enhanced, ok := response.ParseEnhancedDescription(raw)
	if !ok {
		s.logger.Warn("AiService", "Unparseable LLM response, using local description rewrite", map[string]interface{}{
			"cause": "malformed_response",
		})
		enhanced = response.FallbackEnhancedDescription(req.Name, req.Description)
	}

	return &dto.EnhanceDescriptionResponse{EnhancedDescription: enhanced}, nil
}

func (s *aiService) GenerateTags(ctx context.Context, req *dto.GenerateTagsRequest) (*dto.GenerateTagsResponse, error) {
	if s.provider == nil {
		s.logger.Warn("AiService", "No AI credentials configured, using fallback tags", map[string]interface{}{
			"cause": "no_credentials",
		})
		return &dto.GenerateTagsResponse{Tags: response.FallbackTags()}, nil
	}

	p := prompt.BuildGenerateTags(req.FeatureName, req.FeatureDescription, req.ProjectContext)

	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	raw, err := s.provider.Generate(callCtx, p, llm.WithJSONMode(), llm.WithTemperature(0.3))
	if err != nil {
		s.logger.Warn("AiService", "LLM call failed, using fallback tags", map[string]interface{}{
			"cause": "api_error",
			"error": err.Error(),
		})
		return &dto.GenerateTagsResponse{Tags: response.FallbackTags()}, nil
	}

	tags, ok := response.ParseTags(raw)
	if !ok {
		s.logger.Warn("AiService", "Unparseable LLM response, using fallback tags", map[string]interface{}{
			"cause": "malformed_response",
		})
		tags = response.FallbackTags()
	}

	return &dto.GenerateTagsResponse{Tags: tags}, nil
}

// AnalyzeBranching asks whether the named features drift away from the
// rest of the project. Verdicts are cached per project; any mutation of
// the board invalidates the cache.
func (s *aiService) AnalyzeBranching(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeBranchingRequest) (*dto.AnalyzeBranchingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	project, err := s.ownedProject(ctx, uow, userId, req.ProjectId)
	if err != nil {
		return nil, err
	}

	if cached, found := s.analysisCache.Get(project.Id); found {
		return branchResultToResponse(cached), nil
	}

	features, err := uow.FeatureRepository().FindAll(ctx, specification.ByProjectID{ProjectID: project.Id})
	if err != nil {
		return nil, err
	}

	newIds := make(map[uuid.UUID]bool, len(req.NewFeatureIds))
	for _, id := range req.NewFeatureIds {
		newIds[id] = true
	}

	var existing, newFeatures []prompt.FeatureSummary
	for _, f := range features {
		summary := prompt.FeatureSummary{Name: f.Name, Description: f.Description}
		if newIds[f.Id] {
			newFeatures = append(newFeatures, summary)
		} else {
			existing = append(existing, summary)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	result := s.analyzer.Analyze(callCtx, project.Name, existing, newFeatures)

	s.analysisCache.Save(project.Id, result)

	return branchResultToResponse(result), nil
}

func (s *aiService) ownedProject(ctx context.Context, uow unitofwork.UnitOfWork, userId, projectId uuid.UUID) (*entity.Project, error) {
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

func (s *aiService) ownedSuggestion(ctx context.Context, uow unitofwork.UnitOfWork, userId, suggestionId uuid.UUID) (*entity.AiSuggestion, error) {
	suggestion, err := uow.AiSuggestionRepository().FindOne(ctx, specification.ByID{ID: suggestionId})
	if err != nil {
		return nil, err
	}
	if suggestion == nil {
		return nil, serverutils.ErrNotFound
	}
	if _, err := s.ownedProject(ctx, uow, userId, suggestion.ProjectId); err != nil {
		return nil, err
	}
	return suggestion, nil
}

func (s *aiService) publishActivity(ctx context.Context, projectId, userId uuid.UUID, eventType string, detail map[string]interface{}) {
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
		s.logger.Warn("AiService", "Failed to publish activity event", map[string]interface{}{
			"event_type": eventType,
			"error":      err.Error(),
		})
	}
}

func toPromptContext(project *entity.Project, features []*entity.Feature) prompt.ProjectContext {
	existing := make([]prompt.FeatureSummary, 0, len(features))
	for _, f := range features {
		existing = append(existing, prompt.FeatureSummary{Name: f.Name, Description: f.Description})
	}
	return prompt.ProjectContext{
		Name:        project.Name,
		Description: project.Description,
		Mission:     project.Mission,
		Goals:       project.Goals,
		InScope:     project.InScope,
		OutOfScope:  project.OutOfScope,
		Constraints: project.Constraints,
		Existing:    existing,
	}
}

func suggestionToResponse(s *entity.AiSuggestion) *dto.SuggestionResponse {
	return &dto.SuggestionResponse{
		Id:                s.Id,
		ProjectId:         s.ProjectId,
		Name:              s.Name,
		Description:       s.Description,
		Perspective:       string(s.Perspective),
		SuggestedCategory: string(s.SuggestedCategory),
		CreatedAt:         s.CreatedAt,
	}
}

func branchResultToResponse(r branch.Result) *dto.AnalyzeBranchingResponse {
	return &dto.AnalyzeBranchingResponse{
		ShouldBranch:  r.ShouldBranch,
		Reason:        r.Reason,
		SuggestedName: r.SuggestedName,
	}
}

func firstNonEmpty(a, b string) string {
	if a != "" {
		return a
	}
	return b
}

func firstNonEmptyList(a, b []string) []string {
	if len(a) > 0 {
		return a
	}
	return b
}
