package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the active document's sections",
	Long: `Lists the sections detected in the active document, with their IDs,
page ranges, and approximate sizes. Section IDs are used by the ask,
summarize, and podcast commands.`,
	RunE: runSections,
}

var sectionsShowCmd = &cobra.Command{
	Use:   "show [section-id]",
	Short: "Print a section's full text",
	Args:  cobra.ExactArgs(1),
	RunE:  runSectionsShow,
}

func init() {
	sectionsCmd.AddCommand(sectionsShowCmd)
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()

	doc, err := documentService.Active(ctx)
	if err != nil {
		return fmt.Errorf("failed to get active document: %w", err)
	}

	sections, err := documentService.Sections(ctx)
	if err != nil {
		return fmt.Errorf("failed to list sections: %w", err)
	}

	cmd.Printf("%s (%d pages)\n", doc.Title, doc.PageCount)
	cmd.Println(strings.Repeat("=", len(doc.Title)+10))
	cmd.Println()

	if len(sections) == 0 {
		cmd.Println("No sections detected.")
		return nil
	}

	for _, sec := range sections {
		cmd.Printf("%d. %s\n", sec.Position+1, sec.Title)
		cmd.Printf("   ID: %s | %s | ~%d tokens\n", sec.ID, sec.PageLabel(), sec.EstimatedTokens())
	}

	cmd.Println()
	cmd.Printf("%d section(s). Use 'readcast summarize <id>' or 'readcast ask --section <id>'.\n", len(sections))
	return nil
}

func runSectionsShow(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	sec, err := documentService.Section(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get section: %w", err)
	}

	cmd.Printf("%s (%s)\n\n", sec.Title, sec.PageLabel())
	cmd.Println(sec.Text)
	return nil
}
