package driving

import (
	"context"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// AnswerService evaluates free-text queries against the indexed corpus.
type AnswerService interface {
	// Answer runs the full retrieval-and-synthesis pipeline for one
	// query. It returns ErrNotReady before the first successful corpus
	// load, and the designated NoMatch answer when nothing survives
	// the relevance floor.
	Answer(ctx context.Context, query string) (domain.Answer, error)

	// Ready reports whether a corpus has been successfully indexed.
	Ready() bool
}

// CorpusService exposes the loaded corpus for browsing. It backs the
// sidebar-style fallback UI and the MCP document resources.
type CorpusService interface {
	// Documents returns all documents in corpus order.
	Documents(ctx context.Context) ([]domain.Document, error)

	// Document returns one document by id, or ErrNotFound.
	Document(ctx context.Context, id string) (*domain.Document, error)
}
