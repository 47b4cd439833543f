// Package cli implements the cobra command tree. Commands talk to the core
// exclusively through the driving ports; composition of the default service
// graph (config store, engine, corpus source) happens here so main stays a
// one-liner.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansera-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/ansera-cli/internal/core/ports/driven"
	"github.com/custodia-labs/ansera-cli/internal/core/ports/driving"
	"github.com/custodia-labs/ansera-cli/internal/core/services"
	"github.com/custodia-labs/ansera-cli/internal/corpus/jsonfile"
	"github.com/custodia-labs/ansera-cli/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

// Persistent flags.
var (
	verbose    bool
	corpusPath string
	configDir  string
)

// Services the commands run against. Wired lazily by initServices, or
// injected directly with SetServices in tests.
var (
	answerService driving.AnswerService
	corpusService driving.CorpusService
	configStore   driven.ConfigStore
	corpusSource  *jsonfile.Source
	engineRef     *services.Engine
)

var rootCmd = &cobra.Command{
	Use:   "ansera",
	Short: "Answer questions from a local help-centre corpus",
	Long: `Ansera answers free-text questions from a static corpus of help
documents. It ranks sections with BM25-style keyword scoring, extracts the
most relevant sentences, and composes a short answer with source references.

The corpus is a single JSON file of documents, sections and FAQs. Point
ansera at it with --corpus or set corpus.path in the config file.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "path to the corpus JSON file")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.ansera)")
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// SetServices injects the driving services directly, bypassing the default
// wiring. Used by tests.
func SetServices(answer driving.AnswerService, corpus driving.CorpusService) {
	answerService = answer
	corpusService = corpus
}

// initServices builds the default service graph on first use: config store,
// engine with configured settings, JSON corpus source, and an initial corpus
// load. Commands that need the engine call this at the top of their RunE.
func initServices(cmd *cobra.Command) error {
	if answerService != nil {
		return nil
	}

	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}

	path := corpusPath
	if path == "" {
		path = store.GetString("corpus.path")
	}
	if path == "" {
		return errors.New("no corpus configured: pass --corpus or set corpus.path in " + store.Path())
	}

	engine, err := services.NewEngine(file.EngineSettings(store))
	if err != nil {
		return err
	}

	source := jsonfile.NewSource(path)
	if err := engine.Load(cmd.Context(), source); err != nil {
		return fmt.Errorf("loading corpus: %w", err)
	}

	configStore = store
	corpusSource = source
	engineRef = engine
	answerService = engine
	corpusService = engine

	return nil
}

// watchCorpus starts a file watcher that reloads the engine when the corpus
// file changes. Used by the long-running commands (tui, mcp serve). Returns
// a stop function; a nil error with a nil stop means watching is unavailable
// because services were injected rather than wired from a file.
func watchCorpus(cmd *cobra.Command) (func(), error) {
	if engineRef == nil || corpusSource == nil {
		return nil, nil
	}

	watcher, err := jsonfile.NewWatcher(corpusSource.Path(), func() {
		if err := engineRef.Load(cmd.Context(), corpusSource); err != nil {
			logger.Error("corpus reload failed: %v", err)
		}
	})
	if err != nil {
		return nil, err
	}

	if err := watcher.Start(cmd.Context()); err != nil {
		return nil, err
	}

	return watcher.Stop, nil
}
