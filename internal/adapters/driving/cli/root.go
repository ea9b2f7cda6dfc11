// Package cli implements the command-line interface. Commands hold no
// business logic; they parse arguments, call the driving ports, and
// format output.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driving"
	"github.com/readcast-labs/readcast-cli/internal/logger"
)

// version is set by the composition root at startup.
var version = "dev"

// Services wired in by the composition root.
var (
	documentService  driving.DocumentService
	askService       driving.AskService
	summaryService   driving.SummaryService
	narrationService driving.NarrationService
	settingsStore    driven.SettingsStore
)

// verbose enables debug logging on stderr.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "readcast",
	Short: "Ask questions about your documents from the terminal",
	Long: `Readcast ingests a document (PDF, text, or Markdown), splits it into
sections, and answers questions about it with cited extracts. It can
also summarise sections and turn them into two-host podcast scripts.

Typical flow:
  readcast ingest paper.pdf
  readcast sections
  readcast ask "what method does the paper propose?"`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// Services bundles everything the CLI needs from the composition root.
type Services struct {
	Document  driving.DocumentService
	Ask       driving.AskService
	Summary   driving.SummaryService
	Narration driving.NarrationService
	Settings  driven.SettingsStore
}

// SetServices wires the service implementations into the commands.
func SetServices(s Services) {
	documentService = s.Document
	askService = s.Ask
	summaryService = s.Summary
	narrationService = s.Narration
	settingsStore = s.Settings
}

// SetVersion sets the version string printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
