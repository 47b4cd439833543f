package mcp

import (
	"context"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	answer domain.Answer
	err    error
}

func (m *mockAnswerService) Answer(_ context.Context, _ string) (domain.Answer, error) {
	return m.answer, m.err
}

func (m *mockAnswerService) Ready() bool {
	return m.err == nil
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	documents []domain.Document
	document  *domain.Document
	err       error
}

func (m *mockCorpusService) Documents(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockCorpusService) Document(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}
