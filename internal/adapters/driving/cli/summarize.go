package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var summarizeUseAI bool

var summarizeCmd = &cobra.Command{
	Use:   "summarize [section-id]",
	Short: "Summarize a section",
	Long: `Produces an extractive summary of the section: the most significant
sentences, in document order. With --ai and a configured provider, the
external model writes the summary instead; on any failure the
extractive summary is used.`,
	Args: cobra.ExactArgs(1),
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().BoolVar(&summarizeUseAI, "ai", false, "use the configured AI provider")
	rootCmd.AddCommand(summarizeCmd)
}

func runSummarize(cmd *cobra.Command, args []string) error {
	if summaryService == nil {
		return errors.New("summary service not configured")
	}

	summary, err := summaryService.Summarize(context.Background(), args[0], summarizeUseAI)
	if err != nil {
		return fmt.Errorf("failed to summarize section: %w", err)
	}

	cmd.Println(summary)
	return nil
}
