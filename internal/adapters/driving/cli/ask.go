package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/ansera-cli/internal/core/domain"
)

var askJSON bool

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Answer a question from the corpus",
	Long: `Evaluates a free-text question against the indexed corpus and prints
a short composed answer with source references. When nothing in the corpus
matches well enough, ansera says so instead of guessing.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

// askOutput is the JSON wire shape for --json. Kept here so the domain
// types stay presentation-free.
type askOutput struct {
	Lead    string            `json:"lead"`
	NoMatch bool              `json:"no_match"`
	Sources []askSourceOutput `json:"sources"`
}

type askSourceOutput struct {
	DocumentID string `json:"document_id"`
	SectionID  string `json:"section_id,omitempty"`
	Title      string `json:"title"`
	Heading    string `json:"heading,omitempty"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	if err := initServices(cmd); err != nil {
		return err
	}
	if answerService == nil {
		return errors.New("answer service not configured")
	}

	answer, err := answerService.Answer(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("answering failed: %w", err)
	}

	if askJSON {
		return outputAnswerJSON(cmd, answer)
	}

	return outputAnswerText(cmd, answer)
}

func outputAnswerJSON(cmd *cobra.Command, answer domain.Answer) error {
	out := askOutput{
		Lead:    answer.Lead,
		NoMatch: answer.NoMatch,
		Sources: make([]askSourceOutput, 0, len(answer.Sources)),
	}
	for _, src := range answer.Sources {
		out.Sources = append(out.Sources, askSourceOutput{
			DocumentID: src.DocumentID,
			SectionID:  src.SectionID,
			Title:      src.Title,
			Heading:    src.Heading,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal answer: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputAnswerText(cmd *cobra.Command, answer domain.Answer) error {
	if answer.NoMatch {
		cmd.Println("No good answer found in the corpus.")
		cmd.Println("Try rephrasing, or browse with: ansera documents list")
		return nil
	}

	cmd.Println(answer.Lead)

	if len(answer.Sources) > 0 {
		cmd.Println()
		cmd.Println("Sources:")
		for i, src := range answer.Sources {
			if src.Heading != "" {
				cmd.Printf("  [%d] %s: %s (%s)\n", i+1, src.Title, src.Heading, src.DocumentID)
			} else {
				cmd.Printf("  [%d] %s (%s)\n", i+1, src.Title, src.DocumentID)
			}
		}
	}

	return nil
}
