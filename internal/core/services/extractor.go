package services

import (
	"strings"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// splitSentences splits content into sentences on trailing terminators.
// Deliberately naive: abbreviations are not handled, which is an
// accepted limitation for help-centre prose.
func splitSentences(content string) []string {
	var sentences []string
	var current strings.Builder

	for _, r := range content {
		current.WriteRune(r)
		if r == '.' || r == '!' || r == '?' || r == '\n' {
			s := strings.TrimSpace(current.String())
			if s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}

	// Don't forget the last sentence
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}

	return sentences
}

// extractSentences finds the sentences of a candidate's content that
// overlap the query. Relevance is the count of distinct query tokens
// present in the sentence, applied uniformly across all candidates.
// Sentences with zero relevance are discarded, and only the leading
// MaxSentencesPerSection sentences are scanned to bound cost on long
// bodies. Title candidates carry no content and yield nothing.
func extractSentences(qset map[string]struct{}, cand domain.ScoredCandidate, settings domain.EngineSettings) []domain.SentenceCandidate {
	if cand.Content == "" {
		return nil
	}

	sentences := splitSentences(cand.Content)
	if len(sentences) > settings.MaxSentencesPerSection {
		sentences = sentences[:settings.MaxSentencesPerSection]
	}

	var out []domain.SentenceCandidate
	for _, sentence := range sentences {
		relevance := overlapCount(qset, tokenSet(Tokenize(sentence)))
		if relevance == 0 {
			continue
		}
		out = append(out, domain.SentenceCandidate{
			Text:       sentence,
			Relevance:  relevance,
			DocumentID: cand.DocumentID,
			SectionID:  cand.SectionID,
		})
	}

	return out
}

// overlapCount counts how many members of a appear in b.
func overlapCount(a, b map[string]struct{}) float64 {
	count := 0
	for t := range a {
		if _, ok := b[t]; ok {
			count++
		}
	}
	return float64(count)
}
