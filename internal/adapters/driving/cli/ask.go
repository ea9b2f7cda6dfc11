package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

var (
	askSectionID string
	askJSON      bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question about the active document",
	Long: `Answers the question from the active document's text, citing the
pages the answer came from. By default the whole document is searched;
use --section to restrict the question to one section.

Examples:
  readcast ask "what method does the paper propose?"
  readcast ask --section <id> "what are the main findings?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askSectionID, "section", "s", "", "restrict the question to one section")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the answer as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if askService == nil {
		return errors.New("ask service not configured")
	}

	question := strings.Join(args, " ")

	answer, err := askService.Ask(context.Background(), question, domain.AskOptions{
		SectionID: askSectionID,
	})
	if err != nil {
		return fmt.Errorf("failed to answer question: %w", err)
	}

	if askJSON {
		data, err := json.MarshalIndent(answer, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println(answer.Text)
	return nil
}
