package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansera-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server communicates over stdio using JSON-RPC and can be used with
Claude Desktop and other MCP-compatible AI assistants. It exposes the
answer pipeline as a tool and the corpus documents as resources.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "ansera": {
        "command": "/path/to/ansera",
        "args": ["mcp", "serve", "--corpus", "/path/to/corpus.json"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := initServices(cmd); err != nil {
		return err
	}

	stop, err := watchCorpus(cmd)
	if err != nil {
		return fmt.Errorf("starting corpus watcher: %w", err)
	}
	if stop != nil {
		defer stop()
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Answer: answerService,
		Corpus: corpusService,
	})
	if err != nil {
		return err
	}

	return server.Run(cmd.Context())
}
