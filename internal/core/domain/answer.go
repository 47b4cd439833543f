package domain

// SourceRef points a reader back at the material an answer was drawn
// from. SectionID and Heading are empty for document-level references.
// The rendering collaborator uses these to build "open document" and
// "jump to section" affordances; the engine never touches presentation.
type SourceRef struct {
	// DocumentID identifies the source document.
	DocumentID string

	// SectionID identifies the section within the document, if any.
	SectionID string

	// Title is the source document title.
	Title string

	// Heading is the section heading, if SectionID is set.
	Heading string
}

// Answer is the sole result of a query evaluation: a lead composed of
// extracted sentences plus the bounded source list backing them.
type Answer struct {
	// Lead is the composed answer text. Plain text, safe for the
	// caller to wrap in markup.
	Lead string

	// NoMatch is true when no candidate survived the relevance floor.
	// The caller should fall back to a browse UI rather than render
	// the (empty) lead.
	NoMatch bool

	// Sources is the ordered, deduplicated, capped source list.
	// Empty when NoMatch is true.
	Sources []SourceRef
}

// NoMatchAnswer returns the designated answer for queries that matched
// nothing above the relevance floor.
func NoMatchAnswer() Answer {
	return Answer{NoMatch: true, Sources: []SourceRef{}}
}
