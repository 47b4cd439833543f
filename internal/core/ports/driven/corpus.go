package driven

import (
	"context"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// CorpusSource fetches a corpus payload for indexing. Implementations
// handle transport and parsing (e.g., a JSON file on disk); structural
// validation is the engine's concern and happens before indexing.
type CorpusSource interface {
	// Fetch returns the current corpus snapshot. The Version changes
	// with the payload contents so the engine can tell snapshots apart.
	Fetch(ctx context.Context) (*domain.Corpus, error)
}
