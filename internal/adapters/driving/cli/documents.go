package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var documentsCmd = &cobra.Command{
	Use:   "documents",
	Short: "Browse the corpus",
	Long:  `List corpus documents and show their sections and FAQs.`,
}

var documentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all documents",
	Args:  cobra.NoArgs,
	RunE:  runDocumentsList,
}

var documentsShowCmd = &cobra.Command{
	Use:   "show [doc-id]",
	Short: "Show a document's sections and FAQs",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocumentsShow,
}

func init() {
	documentsCmd.AddCommand(documentsListCmd)
	documentsCmd.AddCommand(documentsShowCmd)
	rootCmd.AddCommand(documentsCmd)
}

func runDocumentsList(cmd *cobra.Command, _ []string) error {
	if err := initServices(cmd); err != nil {
		return err
	}
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	docs, err := corpusService.Documents(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list documents: %w", err)
	}

	if len(docs) == 0 {
		cmd.Println("The corpus has no documents.")
		return nil
	}

	cmd.Println("Documents:")
	cmd.Println()
	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Title:    %s\n", docs[i].Title)
		cmd.Printf("    Sections: %d\n", len(docs[i].Sections))
		if len(docs[i].Faqs) > 0 {
			cmd.Printf("    FAQs:     %d\n", len(docs[i].Faqs))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d documents\n", len(docs))
	return nil
}

func runDocumentsShow(cmd *cobra.Command, args []string) error {
	if err := initServices(cmd); err != nil {
		return err
	}
	if corpusService == nil {
		return errors.New("corpus service not configured")
	}

	doc, err := corpusService.Document(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	cmd.Printf("Document: %s\n", doc.ID)
	cmd.Printf("  Title: %s\n\n", doc.Title)

	for i := range doc.Sections {
		cmd.Printf("  ## %s (%s)\n", doc.Sections[i].Heading, doc.Sections[i].ID)
		cmd.Printf("  %s\n\n", doc.Sections[i].Body)
	}

	if len(doc.Faqs) > 0 {
		cmd.Println("  FAQs:")
		for i := range doc.Faqs {
			cmd.Printf("    Q: %s\n", doc.Faqs[i].Question)
			cmd.Printf("    A: %s\n\n", doc.Faqs[i].Answer)
		}
	}

	return nil
}
