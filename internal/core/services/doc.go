// Package services implements the core business logic for Ansera.
//
// The central type is Engine: a query-time retrieval-and-synthesis
// session that indexes a static corpus once and answers free-text
// queries with extracted sentences plus a bounded source list. The
// pipeline runs strictly left to right per query:
//
//	Tokenize -> score -> select -> extract -> diversify -> aggregate -> compose
//
// Every step after indexing is pure: queries allocate only transient
// candidate structures and never mutate the corpus or the index, so
// independent queries may run concurrently.
//
// Services implement driving port interfaces and depend on driven port
// interfaces for infrastructure (corpus sources, configuration).
package services
