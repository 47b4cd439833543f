package services

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
	"github.com/custodia-labs/ansera-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ansera-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ansera-cli/internal/logger"
)

// Ensure Engine implements the driving ports.
var (
	_ driving.AnswerService = (*Engine)(nil)
	_ driving.CorpusService = (*Engine)(nil)
)

// Engine is the answer engine session. It owns the corpus, the cached
// index and the readiness state; queries share the effectively
// immutable index and allocate only transient structures, so
// independent queries are safe to run concurrently. A single in-flight
// build flag prevents concurrent loads from duplicating index
// construction.
type Engine struct {
	settings domain.EngineSettings

	mu       sync.RWMutex
	building bool
	corpus   *domain.Corpus
	index    *Index
	docs     map[string]*domain.Document
	sections map[string]map[string]*domain.Section
}

// NewEngine creates an engine session with the given settings.
// The engine starts unindexed; queries fail with ErrNotReady until the
// first successful Load.
func NewEngine(settings domain.EngineSettings) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &Engine{settings: settings}, nil
}

// Settings returns the engine's tunable configuration.
func (e *Engine) Settings() domain.EngineSettings {
	return e.settings
}

// Load fetches a corpus from the source, validates it and rebuilds the
// index. A malformed payload is rejected and the previously indexed
// corpus, if any, stays active. Refetching an unchanged corpus version
// is a no-op. Returns ErrBuildInProgress when another load is running.
func (e *Engine) Load(ctx context.Context, source driven.CorpusSource) error {
	e.mu.Lock()
	if e.building {
		e.mu.Unlock()
		return domain.ErrBuildInProgress
	}
	e.building = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.building = false
		e.mu.Unlock()
	}()

	corpus, err := source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch corpus: %w", err)
	}

	if err := corpus.Validate(); err != nil {
		return err
	}

	e.mu.RLock()
	unchanged := e.corpus != nil && e.corpus.Version == corpus.Version
	e.mu.RUnlock()
	if unchanged {
		logger.Debug("Corpus version %s unchanged, keeping cached index", corpus.Version)
		return nil
	}

	logger.Section("Index Build")
	logger.Debug("Corpus version: %s, documents: %d, sections: %d",
		corpus.Version, len(corpus.Documents), corpus.SectionCount())

	index := BuildIndex(corpus)

	docs := make(map[string]*domain.Document, len(corpus.Documents))
	sections := make(map[string]map[string]*domain.Section, len(corpus.Documents))
	for i := range corpus.Documents {
		doc := &corpus.Documents[i]
		docs[doc.ID] = doc
		byID := make(map[string]*domain.Section, len(doc.Sections))
		for j := range doc.Sections {
			byID[doc.Sections[j].ID] = &doc.Sections[j]
		}
		sections[doc.ID] = byID
	}

	e.mu.Lock()
	e.corpus = corpus
	e.index = index
	e.docs = docs
	e.sections = sections
	e.mu.Unlock()

	logger.Info("Index built: %d sections", index.SectionCount())
	return nil
}

// Ready reports whether a corpus has been successfully indexed.
func (e *Engine) Ready() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.corpus != nil && e.index != nil
}

// Answer runs the full pipeline for one query: tokenize, score,
// select, extract, diversify, aggregate, compose. The evaluation is
// synchronous and has no observable side effects until it returns, so
// cancellation is simply discarding the result.
func (e *Engine) Answer(_ context.Context, query string) (domain.Answer, error) {
	e.mu.RLock()
	corpus, index := e.corpus, e.index
	e.mu.RUnlock()

	if corpus == nil || index == nil {
		return domain.Answer{}, domain.ErrNotReady
	}

	logger.Section("Answer Pipeline")
	logger.Debug("Query: %q", query)

	// Empty or token-free queries are a caller concern at the
	// boundary; answered with the NoMatch fallback, never an error.
	query = strings.TrimSpace(query)
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		logger.Debug("No query tokens, returning no-match")
		return domain.NoMatchAnswer(), nil
	}
	logger.Debug("Query tokens: %v", tokens)

	candidates := newScorer(index, e.settings).scoreCorpus(corpus, tokens)
	pool := selectCandidates(candidates, e.settings)
	logger.Debug("Candidates: %d scored, %d in working pool", len(candidates), len(pool))

	if len(pool) == 0 {
		logger.Info("No candidate above relevance floor")
		return domain.NoMatchAnswer(), nil
	}

	qset := tokenSet(tokens)
	limit := len(pool)
	if limit > e.settings.MaxExtractCandidates {
		limit = e.settings.MaxExtractCandidates
	}

	var sentencePool []domain.SentenceCandidate
	for _, cand := range pool[:limit] {
		sentencePool = append(sentencePool, extractSentences(qset, cand, e.settings)...)
	}
	logger.Debug("Sentence candidates: %d", len(sentencePool))

	selected := selectDiverse(sentencePool, e.settings.MMRLimit, e.settings.MMRLambda)

	if len(selected) == 0 {
		// A candidate can win on heading overlap alone, with no body
		// sentence sharing a query token. Lead with the opening
		// sentence of the top candidate rather than dropping a match
		// the selector considered relevant.
		if lead, ok := e.fallbackSentence(pool); ok {
			selected = []domain.SentenceCandidate{lead}
		}
	}

	sources := aggregateSources(e.resolveSources(selected), e.settings)
	answer := composeAnswer(selected, sources, e.settings.MaxLeadSentences)

	if answer.NoMatch {
		logger.Info("No extractable sentence, returning no-match")
	} else {
		logger.Info("Answer composed: %d sentences, %d sources", len(selected), len(sources))
	}

	return answer, nil
}

// fallbackSentence finds the opening sentence of the best candidate
// that has any content. Title candidates defer to the first section of
// their document.
func (e *Engine) fallbackSentence(pool []domain.ScoredCandidate) (domain.SentenceCandidate, bool) {
	for _, cand := range pool {
		content := cand.Content
		sectionID := cand.SectionID

		if content == "" && cand.Kind == domain.SourceKindTitle {
			if doc := e.docs[cand.DocumentID]; doc != nil && len(doc.Sections) > 0 {
				content = doc.Sections[0].Body
				sectionID = doc.Sections[0].ID
			}
		}

		sentences := splitSentences(content)
		if len(sentences) == 0 {
			continue
		}

		return domain.SentenceCandidate{
			Text:       sentences[0],
			DocumentID: cand.DocumentID,
			SectionID:  sectionID,
		}, true
	}

	return domain.SentenceCandidate{}, false
}

// resolveSources maps selected sentences to source references with
// document titles and section headings attached, in selection order.
func (e *Engine) resolveSources(selected []domain.SentenceCandidate) []domain.SourceRef {
	refs := make([]domain.SourceRef, 0, len(selected))

	for _, s := range selected {
		ref := domain.SourceRef{
			DocumentID: s.DocumentID,
			SectionID:  s.SectionID,
		}
		if doc := e.docs[s.DocumentID]; doc != nil {
			ref.Title = doc.Title
		}
		if s.SectionID != "" {
			if sec := e.sections[s.DocumentID][s.SectionID]; sec != nil {
				ref.Heading = sec.Heading
			}
		}
		refs = append(refs, ref)
	}

	return refs
}

// Documents returns all documents in corpus order.
func (e *Engine) Documents(_ context.Context) ([]domain.Document, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.corpus == nil {
		return nil, domain.ErrNotReady
	}

	return e.corpus.Documents, nil
}

// Document returns one document by id.
func (e *Engine) Document(_ context.Context, id string) (*domain.Document, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.corpus == nil {
		return nil, domain.ErrNotReady
	}

	doc, ok := e.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %q: %w", id, domain.ErrNotFound)
	}

	return doc, nil
}
