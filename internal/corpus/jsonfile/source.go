package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
	"github.com/custodia-labs/ansera-cli/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CorpusSource = (*Source)(nil)

// Source reads the corpus from a single JSON file. The file is re-read on
// every Fetch, so a reload picks up whatever is currently on disk.
type Source struct {
	path string
}

// NewSource creates a corpus source for the given file path.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the corpus file path.
func (s *Source) Path() string {
	return s.path
}

// corpusFile mirrors the on-disk JSON layout. Documents is a pointer so a
// file without a documents key can be told apart from an empty list.
type corpusFile struct {
	Documents *[]documentFile `json:"documents"`
}

type documentFile struct {
	ID       string        `json:"id"`
	Title    string        `json:"title"`
	Sections []sectionFile `json:"sections"`
	Faqs     []faqFile     `json:"faqs"`
}

type sectionFile struct {
	ID      string `json:"id"`
	Heading string `json:"heading"`
	Body    string `json:"body"`
}

type faqFile struct {
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	SectionID string `json:"section_id"`
}

// Fetch reads and parses the corpus file. The returned corpus carries a
// version derived from the file contents, so an unchanged file produces an
// unchanged version and the engine can skip the index rebuild.
func (s *Source) Fetch(_ context.Context) (*domain.Corpus, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus file %s: %w", s.path, err)
	}

	var parsed corpusFile
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", domain.ErrInvalidCorpus, s.path, err)
	}

	if parsed.Documents == nil {
		return nil, fmt.Errorf("%w: %s has no documents list", domain.ErrInvalidCorpus, s.path)
	}

	corpus := &domain.Corpus{
		Version:   uuid.NewSHA1(uuid.NameSpaceOID, raw).String(),
		Documents: make([]domain.Document, 0, len(*parsed.Documents)),
	}

	for _, doc := range *parsed.Documents {
		converted := domain.Document{
			ID:       doc.ID,
			Title:    doc.Title,
			Sections: make([]domain.Section, 0, len(doc.Sections)),
			Faqs:     make([]domain.Faq, 0, len(doc.Faqs)),
		}
		for _, sec := range doc.Sections {
			converted.Sections = append(converted.Sections, domain.Section{
				ID:      sec.ID,
				Heading: sec.Heading,
				Body:    sec.Body,
			})
		}
		for _, faq := range doc.Faqs {
			converted.Faqs = append(converted.Faqs, domain.Faq{
				Question:  faq.Question,
				Answer:    faq.Answer,
				SectionID: faq.SectionID,
			})
		}
		corpus.Documents = append(corpus.Documents, converted)
	}

	if err := corpus.Validate(); err != nil {
		return nil, err
	}

	return corpus, nil
}
