package services

import (
	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// selectDiverse picks up to k sentences by Maximal Marginal Relevance:
// each round takes the remaining candidate maximising
//
//	lambda * relevance - (1 - lambda) * maxSimilarityToSelected
//
// where similarity is word-level Jaccard between sentence texts. This
// is what stops the final answer repeating near-duplicate sentences
// drawn from overlapping sections. At most one sentence is taken per
// section: a section already represented in the selection is skipped
// outright. Ties go to the earlier candidate, keeping selection
// deterministic.
func selectDiverse(pool []domain.SentenceCandidate, k int, lambda float64) []domain.SentenceCandidate {
	if k <= 0 || len(pool) == 0 {
		return nil
	}

	type entry struct {
		cand   domain.SentenceCandidate
		tokens map[string]struct{}
	}

	remaining := make([]entry, len(pool))
	for i, c := range pool {
		remaining[i] = entry{cand: c, tokens: tokenSet(Tokenize(c.Text))}
	}

	selected := make([]domain.SentenceCandidate, 0, k)
	selectedTokens := make([]map[string]struct{}, 0, k)
	usedSections := make(map[string]bool)

	sectionKey := func(c domain.SentenceCandidate) string {
		return c.DocumentID + "\x00" + c.SectionID
	}

	for len(selected) < k && len(remaining) > 0 {
		bestIdx := -1
		bestScore := 0.0
		for i, e := range remaining {
			if usedSections[sectionKey(e.cand)] {
				continue
			}

			maxSim := 0.0
			for _, sel := range selectedTokens {
				if sim := jaccardSimilarity(e.tokens, sel); sim > maxSim {
					maxSim = sim
				}
			}

			score := lambda*e.cand.Relevance - (1-lambda)*maxSim
			if bestIdx == -1 || score > bestScore {
				bestIdx = i
				bestScore = score
			}
		}

		if bestIdx == -1 {
			break
		}

		picked := remaining[bestIdx]
		selected = append(selected, picked.cand)
		selectedTokens = append(selectedTokens, picked.tokens)
		usedSections[sectionKey(picked.cand)] = true
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return selected
}
