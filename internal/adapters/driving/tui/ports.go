// Package tui provides an interactive terminal user interface for ansera.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/ansera-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answer evaluates questions against the corpus.
	Answer driving.AnswerService

	// Corpus exposes the loaded documents for the browse hint.
	Corpus driving.CorpusService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	// Corpus is optional; the no-match hint simply omits document names
	return nil
}
