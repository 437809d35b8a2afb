package chord

import (
	"time"

	"github.com/jsphweid/fretchord/model"
	"github.com/patrickmn/go-cache"
)

// CachedMatcher memoizes recognition by chord key. Results handed out are
// copies, so callers may modify them freely.
type CachedMatcher struct {
	matcher *Matcher
	cache   *cache.Cache
}

func NewCachedMatcher(m *Matcher, ttl time.Duration) *CachedMatcher {
	return &CachedMatcher{
		matcher: m,
		cache:   cache.New(ttl, ttl*2),
	}
}

func (c *CachedMatcher) Matcher() *Matcher {
	return c.matcher
}

func (c *CachedMatcher) Recognize(observed []string) []model.MatchResult {
	key := CreateChordKey(observed)
	if cached, found := c.cache.Get(key); found {
		return cloneResults(cached.([]model.MatchResult))
	}

	res := c.matcher.Recognize(observed)
	c.cache.Set(key, res, cache.DefaultExpiration)
	return cloneResults(res)
}

func (c *CachedMatcher) Len() int {
	return c.cache.ItemCount()
}

func cloneResults(results []model.MatchResult) []model.MatchResult {
	res := make([]model.MatchResult, len(results))
	for i, r := range results {
		r.Notes = append(model.Notes(nil), r.Notes...)
		res[i] = r
	}
	return res
}
