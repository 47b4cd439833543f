package domain

import "fmt"

// Corpus is the full, static set of documents available to the engine.
// It is loaded once by a corpus source and never mutated afterwards;
// a fresh load produces a new Corpus with a new Version.
type Corpus struct {
	// Version uniquely identifies this loaded snapshot of the corpus.
	// The engine rebuilds its index only when the version changes.
	Version string

	// Documents is the ordered document list. Order is significant:
	// it provides the stable tie-break for equally scored candidates.
	Documents []Document
}

// Document represents one help-centre document.
type Document struct {
	// ID is the unique identifier within the corpus.
	ID string

	// Title is the human-readable document title.
	Title string

	// Sections is the ordered list of sections.
	Sections []Section

	// Faqs is the ordered list of question/answer pairs.
	Faqs []Faq
}

// Section is a heading plus a free-text body, the unit of indexing
// and citation. The body is conceptually a sequence of sentences.
type Section struct {
	// ID is the unique identifier within the parent document.
	ID string

	// Heading is the section heading.
	Heading string

	// Body is the free-text section content.
	Body string
}

// Faq is a question/answer pair. SectionID optionally links back to a
// section of the parent document for citation purposes.
type Faq struct {
	Question  string
	Answer    string
	SectionID string
}

// Validate checks the corpus invariants: at least one document, required
// identifiers present, and document/section IDs unique within their scope.
// A corpus that fails validation must never reach the index builder.
func (c *Corpus) Validate() error {
	if len(c.Documents) == 0 {
		return fmt.Errorf("%w: corpus has no documents", ErrInvalidCorpus)
	}

	docIDs := make(map[string]bool, len(c.Documents))
	for i := range c.Documents {
		doc := &c.Documents[i]

		if doc.ID == "" {
			return fmt.Errorf("%w: document %d has no id", ErrInvalidCorpus, i)
		}
		if docIDs[doc.ID] {
			return fmt.Errorf("%w: duplicate document id %q", ErrInvalidCorpus, doc.ID)
		}
		docIDs[doc.ID] = true

		if doc.Title == "" {
			return fmt.Errorf("%w: document %q has no title", ErrInvalidCorpus, doc.ID)
		}

		sectionIDs := make(map[string]bool, len(doc.Sections))
		for j := range doc.Sections {
			sec := &doc.Sections[j]

			if sec.ID == "" {
				return fmt.Errorf("%w: document %q section %d has no id", ErrInvalidCorpus, doc.ID, j)
			}
			if sectionIDs[sec.ID] {
				return fmt.Errorf("%w: document %q has duplicate section id %q", ErrInvalidCorpus, doc.ID, sec.ID)
			}
			sectionIDs[sec.ID] = true

			if sec.Heading == "" {
				return fmt.Errorf("%w: document %q section %q has no heading", ErrInvalidCorpus, doc.ID, sec.ID)
			}
		}

		for j := range doc.Faqs {
			faq := &doc.Faqs[j]

			if faq.Question == "" {
				return fmt.Errorf("%w: document %q faq %d has no question", ErrInvalidCorpus, doc.ID, j)
			}
			if faq.Answer == "" {
				return fmt.Errorf("%w: document %q faq %d has no answer", ErrInvalidCorpus, doc.ID, j)
			}
			if faq.SectionID != "" && !sectionIDs[faq.SectionID] {
				return fmt.Errorf("%w: document %q faq %d references unknown section %q",
					ErrInvalidCorpus, doc.ID, j, faq.SectionID)
			}
		}
	}

	return nil
}

// SectionCount returns the total number of sections across all documents.
func (c *Corpus) SectionCount() int {
	count := 0
	for i := range c.Documents {
		count += len(c.Documents[i].Sections)
	}
	return count
}
