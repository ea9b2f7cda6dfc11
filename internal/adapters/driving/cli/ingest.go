package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest [file]",
	Short: "Ingest a document",
	Long: `Extracts text from the file, detects sections, and stores the result
as the active document. Ingesting replaces any previously ingested
document.

Supported formats: PDF (.pdf), plain text (.txt), Markdown (.md),
HTML (.html, .htm), Word (.docx).`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	path := args[0]
	ctx := context.Background()

	doc, sections, err := documentService.Ingest(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to ingest document: %w", err)
	}

	cmd.Printf("Ingested: %s\n\n", doc.Title)
	cmd.Printf("  Pages:    %d\n", doc.PageCount)
	cmd.Printf("  Sections: %d\n", len(sections))
	cmd.Println()
	cmd.Println("Run 'readcast sections' to list sections, or 'readcast ask' to ask a question.")
	return nil
}
