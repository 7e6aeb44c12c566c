package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ai-brainstorm-be/internal/dto"
	"ai-brainstorm-be/internal/entity"
	"ai-brainstorm-be/internal/pkg/serverutils"
	"ai-brainstorm-be/internal/repository/contract"
	"ai-brainstorm-be/internal/repository/memory"
	"ai-brainstorm-be/internal/repository/specification"
	"ai-brainstorm-be/internal/repository/unitofwork"
	"ai-brainstorm-be/pkg/brainstorm/branch"
	"ai-brainstorm-be/pkg/llm"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) Generate(ctx context.Context, p string, options ...llm.Option) (string, error) {
	f.calls++
	return f.response, f.err
}

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

// fakeStore is a shared in-memory backing for the fake repositories.
type fakeStore struct {
	projects    map[uuid.UUID]*entity.Project
	features    map[uuid.UUID]*entity.Feature
	suggestions map[uuid.UUID]*entity.AiSuggestion
	activity    []*entity.ActivityLog
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		projects:    make(map[uuid.UUID]*entity.Project),
		features:    make(map[uuid.UUID]*entity.Feature),
		suggestions: make(map[uuid.UUID]*entity.AiSuggestion),
	}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) UserRepository() contract.UserRepository {
	return nil
}
func (u *fakeUow) ProjectRepository() contract.ProjectRepository {
	return &fakeProjectRepo{store: u.store}
}
func (u *fakeUow) FeatureRepository() contract.FeatureRepository {
	return &fakeFeatureRepo{store: u.store}
}
func (u *fakeUow) AiSuggestionRepository() contract.AiSuggestionRepository {
	return &fakeSuggestionRepo{store: u.store}
}
func (u *fakeUow) ActivityLogRepository() contract.ActivityLogRepository {
	return &fakeActivityRepo{store: u.store}
}

type fakeUowFactory struct {
	store *fakeStore
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

func matchProject(p *entity.Project, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if p.Id != sp.ID {
				return false
			}
		case specification.OwnedBy:
			if p.UserId != sp.UserID {
				return false
			}
		}
	}
	return true
}

type fakeProjectRepo struct {
	store *fakeStore
}

func (r *fakeProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	r.store.projects[p.Id] = p
	return nil
}
func (r *fakeProjectRepo) Update(ctx context.Context, p *entity.Project) error {
	r.store.projects[p.Id] = p
	return nil
}
func (r *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.projects, id)
	return nil
}
func (r *fakeProjectRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Project, error) {
	for _, p := range r.store.projects {
		if matchProject(p, specs) {
			return p, nil
		}
	}
	return nil, nil
}
func (r *fakeProjectRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Project, error) {
	var out []*entity.Project
	for _, p := range r.store.projects {
		if matchProject(p, specs) {
			out = append(out, p)
		}
	}
	return out, nil
}
func (r *fakeProjectRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchFeature(f *entity.Feature, specs []specification.Specification) bool {
	for _, s := range specs {
		switch sp := s.(type) {
		case specification.ByID:
			if f.Id != sp.ID {
				return false
			}
		case specification.ByProjectID:
			if f.ProjectId != sp.ProjectID {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range sp.IDs {
				if f.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

type fakeFeatureRepo struct {
	store *fakeStore
}

func (r *fakeFeatureRepo) Create(ctx context.Context, f *entity.Feature) error {
	r.store.features[f.Id] = f
	return nil
}
func (r *fakeFeatureRepo) Update(ctx context.Context, f *entity.Feature) error {
	r.store.features[f.Id] = f
	return nil
}
func (r *fakeFeatureRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.features, id)
	return nil
}
func (r *fakeFeatureRepo) DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error {
	for id, f := range r.store.features {
		if f.ProjectId == projectId {
			delete(r.store.features, id)
		}
	}
	return nil
}
func (r *fakeFeatureRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error) {
	for _, f := range r.store.features {
		if matchFeature(f, specs) {
			return f, nil
		}
	}
	return nil, nil
}
func (r *fakeFeatureRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error) {
	var out []*entity.Feature
	for _, f := range r.store.features {
		if matchFeature(f, specs) {
			out = append(out, f)
		}
	}
	return out, nil
}
func (r *fakeFeatureRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchSuggestion(s *entity.AiSuggestion, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.ByID:
			if s.Id != sp.ID {
				return false
			}
		case specification.ByProjectID:
			if s.ProjectId != sp.ProjectID {
				return false
			}
		}
	}
	return true
}

type fakeSuggestionRepo struct {
	store *fakeStore
}

func (r *fakeSuggestionRepo) Create(ctx context.Context, s *entity.AiSuggestion) error {
	r.store.suggestions[s.Id] = s
	return nil
}
func (r *fakeSuggestionRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.store.suggestions, id)
	return nil
}
func (r *fakeSuggestionRepo) DeleteAllByProjectId(ctx context.Context, projectId uuid.UUID) error {
	for id, s := range r.store.suggestions {
		if s.ProjectId == projectId {
			delete(r.store.suggestions, id)
		}
	}
	return nil
}
func (r *fakeSuggestionRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.AiSuggestion, error) {
	for _, s := range r.store.suggestions {
		if matchSuggestion(s, specs) {
			return s, nil
		}
	}
	return nil, nil
}
func (r *fakeSuggestionRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AiSuggestion, error) {
	var out []*entity.AiSuggestion
	for _, s := range r.store.suggestions {
		if matchSuggestion(s, specs) {
			out = append(out, s)
		}
	}
	return out, nil
}
func (r *fakeSuggestionRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type fakeActivityRepo struct {
	store *fakeStore
}

func (r *fakeActivityRepo) Create(ctx context.Context, l *entity.ActivityLog) error {
	r.store.activity = append(r.store.activity, l)
	return nil
}
func (r *fakeActivityRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ActivityLog, error) {
	return r.store.activity, nil
}
func (r *fakeActivityRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.store.activity)), nil
}

// ---- helpers ----

func newTestService(store *fakeStore, provider llm.LLMProvider) IAiService {
	return NewAiService(
		&fakeUowFactory{store: store},
		provider,
		branch.NewAnalyzer(provider, nopLogger{}),
		memory.NewAnalysisCache(),
		nil,
		nopLogger{},
		5*time.Second,
	)
}

func seedProject(store *fakeStore, userId uuid.UUID) *entity.Project {
	p := &entity.Project{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      "Alpha",
		Mission:   "Ship the thing",
		CreatedAt: time.Now(),
	}
	store.projects[p.Id] = p
	return p
}

// ---- tests ----

func TestSuggestFeaturesWithoutCredentials(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	project := seedProject(store, userId)

	svc := newTestService(store, nil)

	res, err := svc.SuggestFeatures(context.Background(), userId, &dto.SuggestFeaturesRequest{
		ProjectId:   project.Id,
		Perspective: "security",
	})
	require.NoError(t, err)
	require.Len(t, res, 3, "no-credential path must serve exactly 3 fallback suggestions")

	for _, s := range res {
		assert.Equal(t, "security", s.Perspective)
		assert.NotEmpty(t, s.Name)
		assert.NotEmpty(t, s.Description)
		assert.Contains(t, []string{"mvp", "launch", "v1.5"}, s.SuggestedCategory)
	}

	// And they must be persisted, not just returned
	assert.Len(t, store.suggestions, 3)
}

func TestSuggestFeaturesMalformedResponseFallsBack(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	project := seedProject(store, userId)

	provider := &fakeProvider{response: "I'd rather not produce JSON today."}
	svc := newTestService(store, provider)

	res, err := svc.SuggestFeatures(context.Background(), userId, &dto.SuggestFeaturesRequest{
		ProjectId:   project.Id,
		Perspective: "ux",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)
	require.Len(t, res, 3)
	for _, s := range res {
		assert.Equal(t, "ux", s.Perspective)
	}
}

func TestSuggestFeaturesApiErrorFallsBack(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	project := seedProject(store, userId)

	provider := &fakeProvider{err: errors.New("connection refused")}
	svc := newTestService(store, provider)

	res, err := svc.SuggestFeatures(context.Background(), userId, &dto.SuggestFeaturesRequest{
		ProjectId:   project.Id,
		Perspective: "business",
	})
	require.NoError(t, err, "provider failure must not surface as an endpoint error")
	require.Len(t, res, 3)
}

func TestSuggestFeaturesForcesPerspective(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	project := seedProject(store, userId)

	// Model claims the wrong perspective and an invalid category
	provider := &fakeProvider{response: `{"suggestions": [
		{"name": "Audit Trail", "description": "Track changes", "perspective": "business", "suggestedCategory": "whenever"}
	]}`}
	svc := newTestService(store, provider)

	res, err := svc.SuggestFeatures(context.Background(), userId, &dto.SuggestFeaturesRequest{
		ProjectId:   project.Id,
		Perspective: "security",
	})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "security", res[0].Perspective, "requested perspective must override the model's claim")
	assert.Equal(t, "mvp", res[0].SuggestedCategory, "invalid category must default to mvp")
}

func TestSuggestFeaturesUnownedProject(t *testing.T) {
	store := newFakeStore()
	project := seedProject(store, uuid.New())

	svc := newTestService(store, nil)

	_, err := svc.SuggestFeatures(context.Background(), uuid.New(), &dto.SuggestFeaturesRequest{
		ProjectId:   project.Id,
		Perspective: "technical",
	})
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
	assert.Empty(t, store.suggestions)
}

func TestSuggestFromInfoWithoutCredentials(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	project := seedProject(store, userId)

	svc := newTestService(store, nil)

	res, err := svc.SuggestFromInfo(context.Background(), userId, &dto.SuggestFromInfoRequest{
		ProjectId: project.Id,
		Mission:   "A fresh mission",
	})
	require.NoError(t, err)
	assert.Len(t, res.Suggestions, 5, "project-level fallback is the 5-record starter set")
}

func TestAcceptSuggestionRoundTrip(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	project := seedProject(store, userId)

	suggestion := &entity.AiSuggestion{
		Id:                uuid.New(),
		ProjectId:         project.Id,
		Name:              "Two-Factor Authentication",
		Description:       "TOTP at login",
		Perspective:       entity.PerspectiveSecurity,
		SuggestedCategory: entity.CategoryLaunch,
		CreatedAt:         time.Now(),
	}
	store.suggestions[suggestion.Id] = suggestion

	svc := newTestService(store, nil)

	res, err := svc.AcceptSuggestion(context.Background(), userId, suggestion.Id)
	require.NoError(t, err)

	feature, ok := store.features[res.FeatureId]
	require.True(t, ok, "accepted suggestion must become a feature")
	assert.Equal(t, suggestion.Name, feature.Name)
	assert.Equal(t, suggestion.Description, feature.Description)
	assert.Equal(t, suggestion.Perspective, feature.Perspective)
	assert.Equal(t, suggestion.SuggestedCategory, feature.Category)
	assert.Equal(t, project.Id, feature.ProjectId)

	_, stillThere := store.suggestions[suggestion.Id]
	assert.False(t, stillThere, "accepted suggestion must be deleted")
}

func TestAcceptSuggestionNotFound(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	seedProject(store, userId)

	svc := newTestService(store, nil)

	_, err := svc.AcceptSuggestion(context.Background(), userId, uuid.New())
	assert.ErrorIs(t, err, serverutils.ErrNotFound)
}

func TestRejectSuggestionDeletesWithoutFeature(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	project := seedProject(store, userId)

	suggestion := &entity.AiSuggestion{
		Id:          uuid.New(),
		ProjectId:   project.Id,
		Name:        "Dark Mode",
		Perspective: entity.PerspectiveUX,
		CreatedAt:   time.Now(),
	}
	store.suggestions[suggestion.Id] = suggestion

	svc := newTestService(store, nil)

	err := svc.RejectSuggestion(context.Background(), userId, suggestion.Id)
	require.NoError(t, err)

	assert.Empty(t, store.suggestions)
	assert.Empty(t, store.features, "rejection must never create a feature")
}

func TestAnalyzeBranchingEmptyProjectSkipsProvider(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	project := seedProject(store, userId)

	provider := &fakeProvider{response: `{"shouldBranch": true, "reason": "never used"}`}
	svc := newTestService(store, provider)

	res, err := svc.AnalyzeBranching(context.Background(), userId, &dto.AnalyzeBranchingRequest{
		ProjectId:     project.Id,
		NewFeatureIds: []uuid.UUID{uuid.New()},
	})
	require.NoError(t, err)
	assert.False(t, res.ShouldBranch)
	assert.Equal(t, branch.ReasonTooFewFeatures, res.Reason)
	assert.Equal(t, 0, provider.calls, "empty project must not trigger an API call")
}

func TestAnalyzeBranchingCachesVerdict(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	project := seedProject(store, userId)

	existing := &entity.Feature{Id: uuid.New(), ProjectId: project.Id, Name: "Search", CreatedAt: time.Now()}
	fresh := &entity.Feature{Id: uuid.New(), ProjectId: project.Id, Name: "Live Chat", CreatedAt: time.Now()}
	store.features[existing.Id] = existing
	store.features[fresh.Id] = fresh

	provider := &fakeProvider{response: `{"shouldBranch": true, "reason": "Different direction.", "suggestedName": "Chat App"}`}
	svc := newTestService(store, provider)

	req := &dto.AnalyzeBranchingRequest{
		ProjectId:     project.Id,
		NewFeatureIds: []uuid.UUID{fresh.Id},
	}

	first, err := svc.AnalyzeBranching(context.Background(), userId, req)
	require.NoError(t, err)
	assert.True(t, first.ShouldBranch)
	assert.Equal(t, 1, provider.calls)

	second, err := svc.AnalyzeBranching(context.Background(), userId, req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls, "second verdict must come from cache")
}

func TestEnhanceDescriptionWithoutCredentials(t *testing.T) {
	svc := newTestService(newFakeStore(), nil)

	res, err := svc.EnhanceDescription(context.Background(), &dto.EnhanceDescriptionRequest{
		Name:        "Search",
		Description: "find things",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.EnhancedDescription)
}

func TestGenerateTagsWithoutCredentials(t *testing.T) {
	svc := newTestService(newFakeStore(), nil)

	res, err := svc.GenerateTags(context.Background(), &dto.GenerateTagsRequest{
		FeatureName: "Search",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"feature", "enhancement", "user-value"}, res.Tags)
}

func TestGenerateTagsParsesModelOutput(t *testing.T) {
	provider := &fakeProvider{response: `{"tags": ["Search", "discovery", "search"]}`}
	svc := newTestService(newFakeStore(), provider)

	res, err := svc.GenerateTags(context.Background(), &dto.GenerateTagsRequest{
		FeatureName: "Search",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"search", "discovery"}, res.Tags)
}

func TestListSuggestions(t *testing.T) {
	store := newFakeStore()
	userId := uuid.New()
	project := seedProject(store, userId)
	other := seedProject(store, userId)

	s1 := &entity.AiSuggestion{Id: uuid.New(), ProjectId: project.Id, Name: "A", CreatedAt: time.Now()}
	s2 := &entity.AiSuggestion{Id: uuid.New(), ProjectId: other.Id, Name: "B", CreatedAt: time.Now()}
	store.suggestions[s1.Id] = s1
	store.suggestions[s2.Id] = s2

	svc := newTestService(store, nil)

	res, err := svc.ListSuggestions(context.Background(), userId, project.Id)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "A", res[0].Name)
}
