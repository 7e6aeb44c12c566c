package memory

import (
	"time"

	"ai-brainstorm-be/pkg/brainstorm/branch"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// AnalysisCache keeps recent branch-drift verdicts so repeated clicks on
// "analyze" don't hammer the LLM for an answer that won't have changed.
type AnalysisCache struct {
	cache *cache.Cache
}

func NewAnalysisCache() *AnalysisCache {
	// Verdicts go stale fast as features change; keep them for 10 minutes
	// and purge expired entries every 5.
	c := cache.New(10*time.Minute, 5*time.Minute)
	return &AnalysisCache{
		cache: c,
	}
}

func (r *AnalysisCache) Save(projectId uuid.UUID, result branch.Result) {
	r.cache.Set(projectId.String(), result, cache.DefaultExpiration)
}

func (r *AnalysisCache) Get(projectId uuid.UUID) (branch.Result, bool) {
	if x, found := r.cache.Get(projectId.String()); found {
		return x.(branch.Result), true
	}
	return branch.Result{}, false
}

func (r *AnalysisCache) Invalidate(projectId uuid.UUID) {
	r.cache.Delete(projectId.String())
}
