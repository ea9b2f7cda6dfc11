package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/responder"
	"github.com/readcast-labs/readcast-cli/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure the answer provider and retrieval tuning.

Settings are stored in a TOML file and apply to all commands.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsProviderCmd = &cobra.Command{
	Use:   "provider [name]",
	Short: "Set the answer provider",
	Long: `Set how questions are answered.

Available providers:
  deterministic - built-in extractive retrieval (no setup required)
  ollama        - local Ollama model, extractive fallback
  openai        - OpenAI cloud model, extractive fallback`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsProvider,
}

var settingsModelCmd = &cobra.Command{
	Use:   "model [name]",
	Short: "Set the responder model name",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsModel,
}

var settingsSeedCmd = &cobra.Command{
	Use:   "seed [value]",
	Short: "Set the narration seed",
	Long: `Set the seed for podcast phrase selection. Zero derives a seed from
the section content so identical inputs yield identical scripts.`,
	Args: cobra.ExactArgs(1),
	RunE: runSettingsSeed,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsProviderCmd)
	settingsCmd.AddCommand(settingsModelCmd)
	settingsCmd.AddCommand(settingsSeedCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Answers]")
	cmd.Printf("  Provider: %s\n", settings.Provider.Description())
	if settings.Provider.RequiresResponder() {
		cmd.Printf("  Model: %s\n", valueOrDefault(settings.ResponderModel))
		cmd.Printf("  Base URL: %s\n", valueOrDefault(settings.ResponderBaseURL))
	}
	cmd.Println()

	cmd.Println("[Retrieval]")
	cmd.Printf("  Candidates: %d\n", settings.Tuning.TopK)
	cmd.Printf("  Relevance floor: %.2f\n", settings.Tuning.RelevanceFloor)
	cmd.Printf("  Min paragraph length: %d\n", settings.Tuning.MinParagraphLen)
	cmd.Println()

	cmd.Println("[Narration]")
	if settings.NarrationSeed == 0 {
		cmd.Println("  Seed: derived from content")
	} else {
		cmd.Printf("  Seed: %d\n", settings.NarrationSeed)
	}
	cmd.Println()

	cmd.Printf("Config file: %s\n", settingsStore.Path())
	return nil
}

func runSettingsProvider(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	provider := domain.AnswerProvider(args[0])
	if !provider.IsValid() {
		return fmt.Errorf("unknown provider %q (deterministic, ollama, openai)", args[0])
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	settings.Provider = provider
	if err := settingsStore.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Provider set to %s.\n", provider.Description())

	// Saved either way; a warning beats failing the first question.
	if provider.RequiresResponder() {
		if err := responder.Validate(settings, os.Getenv("OPENAI_API_KEY")); err != nil {
			cmd.Printf("Warning: %v\n", err)
		}
	}
	return nil
}

func runSettingsModel(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	settings.ResponderModel = args[0]
	if err := settingsStore.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Responder model set to %s.\n", args[0])
	return nil
}

func runSettingsSeed(cmd *cobra.Command, args []string) error {
	if settingsStore == nil {
		return errors.New("settings store not configured")
	}

	seed, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid seed %q: %w", args[0], err)
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	settings.NarrationSeed = seed
	if err := settingsStore.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	cmd.Printf("Narration seed set to %d.\n", seed)
	return nil
}

func valueOrDefault(s string) string {
	if s == "" {
		return "(default)"
	}
	return s
}
