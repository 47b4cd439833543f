// Package jsonfile loads the help-centre corpus from a JSON file on disk.
//
// The file holds the full corpus: a list of documents, each with its
// sections and optional FAQ entries. Parsing is strict about structure
// (a missing documents list or a non-object document is an error) so a
// broken corpus is rejected at load time rather than surfacing as odd
// answers later.
//
// Source implements the driven CorpusSource port. Watcher observes the
// corpus file with fsnotify and invokes a callback after changes settle,
// which the CLI uses to reload the engine while a session is running.
package jsonfile
