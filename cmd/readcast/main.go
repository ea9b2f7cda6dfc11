// Command readcast is the entry point for the Readcast CLI. It wires
// the driven adapters (storage, extractors, responders, config) into
// the core services and hands them to the driving adapters.
package main

import (
	"fmt"
	"os"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/config/file"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/extract/docx"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/extract/html"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/extract/pdf"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/extract/plaintext"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/responder"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/storage/sqlite"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driving/cli"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
	"github.com/readcast-labs/readcast-cli/internal/core/services"
	"github.com/readcast-labs/readcast-cli/internal/logger"
	"github.com/readcast-labs/readcast-cli/internal/sectioner"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settingsStore, err := file.NewSettingsStore("")
	if err != nil {
		return fmt.Errorf("initialising settings store: %w", err)
	}

	settings, err := settingsStore.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	store, err := sqlite.NewStore(os.Getenv("READCAST_DATA_DIR"))
	if err != nil {
		return fmt.Errorf("initialising store: %w", err)
	}
	defer store.Close() //nolint:errcheck

	extractors := []driven.PageExtractor{
		pdf.New(),
		plaintext.New(),
		html.New(),
		docx.New(),
	}

	documentService := services.NewDocumentService(extractors, store, sectioner.New(sectioner.Config{}))

	// A missing or misconfigured responder is not fatal; the services
	// fall back to the extractive pipeline.
	aiResponder, err := responder.New(settings, os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		logger.Warn("AI responder unavailable: %v", err)
		aiResponder = nil
	}

	askService := services.NewAskService(store, aiResponder, settings)
	summaryService := services.NewSummaryService(store, aiResponder)
	narrationService := services.NewNarrationService(store)

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Document:  documentService,
		Ask:       askService,
		Summary:   summaryService,
		Narration: narrationService,
		Settings:  settingsStore,
	})

	return cli.Execute()
}
