package domain

// SourceKind identifies which part of a document a candidate was
// scored against.
type SourceKind string

// Available source kinds.
const (
	// SourceKindTitle is a match against a document title.
	SourceKindTitle SourceKind = "title"

	// SourceKindSection is a match against a section heading and body.
	SourceKindSection SourceKind = "section"

	// SourceKindFaq is a match against a question/answer pair.
	SourceKindFaq SourceKind = "faq"
)

// IsValid returns true if the source kind is recognised.
func (k SourceKind) IsValid() bool {
	switch k {
	case SourceKindTitle, SourceKindSection, SourceKindFaq:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k SourceKind) String() string {
	return string(k)
}

// ScoredCandidate is one scored title/section/FAQ for a single query.
// Candidates are transient: created during scoring, discarded once the
// answer is composed.
type ScoredCandidate struct {
	// Kind says what was scored.
	Kind SourceKind

	// DocumentID identifies the document the candidate belongs to.
	DocumentID string

	// SectionID identifies the section, empty for title candidates
	// and for FAQs without a linked section.
	SectionID string

	// Score is the relevance score. All kinds share one comparable
	// scale (see EngineSettings boost magnitudes).
	Score float64

	// Snippet is the heading, title or question the candidate was
	// scored against, kept for display and debugging.
	Snippet string

	// Content is the text the sentence extractor scans: the section
	// body for section candidates, the answer for FAQ candidates.
	// Empty for title candidates.
	Content string

	// Position is the candidate's ordinal in corpus walk order. It is
	// the stable tie-break for equal scores, keeping results
	// deterministic.
	Position int
}

// SentenceCandidate is one sentence extracted from a surviving
// candidate, with its relevance to the query. Transient, per query.
type SentenceCandidate struct {
	// Text is the sentence text.
	Text string

	// Relevance is the number of distinct query tokens present in the
	// sentence.
	Relevance float64

	// DocumentID identifies the document the sentence came from.
	DocumentID string

	// SectionID identifies the section the sentence came from, empty
	// for FAQs without a linked section.
	SectionID string
}
