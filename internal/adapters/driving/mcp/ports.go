package mcp

import (
	"github.com/custodia-labs/ansera-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answer evaluates queries against the corpus.
	Answer driving.AnswerService

	// Corpus exposes the loaded documents for the resource handlers.
	Corpus driving.CorpusService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	// Corpus is optional; resources degrade to not-found without it
	return nil
}
