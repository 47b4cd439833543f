package services

import (
	"sort"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// selectCandidates filters scored items against the relevance floor
// and partitions the survivors into a strong tier (score at or above
// StrongThreshold) and a fallback tier. A non-empty strong tier
// becomes the working pool; otherwise the whole fallback tier is used.
// The pool is sorted descending by score with ties broken by original
// corpus order, keeping results deterministic.
func selectCandidates(candidates []domain.ScoredCandidate, settings domain.EngineSettings) []domain.ScoredCandidate {
	var fallback, strong []domain.ScoredCandidate

	for _, c := range candidates {
		if c.Score <= 0 || c.Score < settings.RelevanceFloor {
			continue
		}
		fallback = append(fallback, c)
		if c.Score >= settings.StrongThreshold {
			strong = append(strong, c)
		}
	}

	pool := fallback
	if len(strong) > 0 {
		pool = strong
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Score != pool[j].Score {
			return pool[i].Score > pool[j].Score
		}
		return pool[i].Position < pool[j].Position
	})

	return pool
}
