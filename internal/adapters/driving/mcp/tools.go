package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// AnswerInput is the input schema for the answer tool.
type AnswerInput struct {
	Query string `json:"query" jsonschema:"the question to answer from the corpus"`
}

// AnswerOutput is the output schema for the answer tool.
type AnswerOutput struct {
	Lead    string         `json:"lead"`
	NoMatch bool           `json:"no_match"`
	Sources []SourceOutput `json:"sources"`
}

// SourceOutput represents a single source reference.
type SourceOutput struct {
	DocumentID string `json:"document_id"`
	SectionID  string `json:"section_id,omitempty"`
	Title      string `json:"title"`
	Heading    string `json:"heading,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "answer",
		Description: "Answer a question from the indexed help corpus with source references",
	}, s.handleAnswer)
}

// handleAnswer handles the answer tool invocation.
func (s *Server) handleAnswer(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AnswerInput,
) (*mcp.CallToolResult, AnswerOutput, error) {
	answer, err := s.ports.Answer.Answer(ctx, input.Query)
	if err != nil {
		return nil, AnswerOutput{}, err
	}

	output := AnswerOutput{
		Lead:    answer.Lead,
		NoMatch: answer.NoMatch,
		Sources: make([]SourceOutput, len(answer.Sources)),
	}

	for i := range answer.Sources {
		output.Sources[i] = SourceOutput{
			DocumentID: answer.Sources[i].DocumentID,
			SectionID:  answer.Sources[i].SectionID,
			Title:      answer.Sources[i].Title,
			Heading:    answer.Sources[i].Heading,
		}
	}

	return nil, output, nil
}
