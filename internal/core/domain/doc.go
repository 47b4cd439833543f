// Package domain defines the core business entities for Ansera.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Corpus: The full set of help-centre documents handed to the engine
//   - Document: One help-centre document with sections and FAQs
//   - Section: A heading plus free-text body within a document
//   - Faq: A question/answer pair, optionally linked to a section
//   - Answer: The composed response to a query, with its sources
//   - EngineSettings: Every tunable constant of the answer pipeline
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
