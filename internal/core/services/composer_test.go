package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// TestComposeAnswer_JoinsInSelectionOrder tests lead assembly
func TestComposeAnswer_JoinsInSelectionOrder(t *testing.T) {
	sentences := []domain.SentenceCandidate{
		{Text: "Enable the limit in the dashboard."},
		{Text: "Set it to 1."},
	}
	sources := []domain.SourceRef{{DocumentID: "d1", SectionID: "s1"}}

	answer := composeAnswer(sentences, sources, 3)

	assert.False(t, answer.NoMatch)
	assert.Equal(t, "Enable the limit in the dashboard. Set it to 1.", answer.Lead)
	assert.Equal(t, sources, answer.Sources)
}

// TestComposeAnswer_LeadCap tests the lead sentence cap
func TestComposeAnswer_LeadCap(t *testing.T) {
	sentences := []domain.SentenceCandidate{
		{Text: "One."}, {Text: "Two."}, {Text: "Three."}, {Text: "Four."},
	}

	answer := composeAnswer(sentences, nil, 2)

	assert.Equal(t, "One. Two.", answer.Lead)
}

// TestComposeAnswer_NoSentences tests the designated no-match answer
func TestComposeAnswer_NoSentences(t *testing.T) {
	answer := composeAnswer(nil, []domain.SourceRef{{DocumentID: "d1"}}, 3)

	require.True(t, answer.NoMatch)
	assert.Empty(t, answer.Lead)
	assert.Empty(t, answer.Sources)
}
