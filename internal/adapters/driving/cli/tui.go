package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansera-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for Ansera.

Type a question and press Enter to get an answer with its sources. While
the TUI is running, changes to the corpus file are picked up automatically.

Controls:
  Enter - Ask
  Esc   - Clear
  q     - Quit (with an empty input)`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

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

	app, err := tui.NewApp(&tui.Ports{
		Answer: answerService,
		Corpus: corpusService,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
