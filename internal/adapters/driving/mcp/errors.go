// Package mcp provides an MCP (Model Context Protocol) server adapter for Ansera.
// It enables AI assistants like Claude to answer questions from the local corpus.
package mcp

import "errors"

// ErrMissingAnswerService is returned when the answer service is not provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")
