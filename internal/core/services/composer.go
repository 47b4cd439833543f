package services

import (
	"strings"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// composeAnswer assembles the final answer: selected sentence texts
// joined in selection order, capped at maxLead, plus the aggregated
// source list. An empty selection yields the designated NoMatch
// answer.
func composeAnswer(sentences []domain.SentenceCandidate, sources []domain.SourceRef, maxLead int) domain.Answer {
	if len(sentences) == 0 {
		return domain.NoMatchAnswer()
	}

	if len(sentences) > maxLead {
		sentences = sentences[:maxLead]
	}

	parts := make([]string, len(sentences))
	for i, s := range sentences {
		parts[i] = s.Text
	}

	return domain.Answer{
		Lead:    strings.Join(parts, " "),
		Sources: sources,
	}
}
