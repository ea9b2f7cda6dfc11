package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
)

// Ensure SettingsStore implements the interface.
var _ driven.SettingsStore = (*SettingsStore)(nil)

// settingsFile mirrors domain.Settings in TOML form. Kept separate so
// the file format can evolve without leaking tags into the domain.
type settingsFile struct {
	Provider         string     `toml:"provider"`
	ResponderModel   string     `toml:"responder_model,omitempty"`
	ResponderBaseURL string     `toml:"responder_base_url,omitempty"`
	NarrationSeed    int64      `toml:"narration_seed,omitempty"`
	Retrieval        tuningFile `toml:"retrieval"`
}

type tuningFile struct {
	TopK                   int     `toml:"top_k"`
	RelevanceFloor         float64 `toml:"relevance_floor"`
	MinParagraphLen        int     `toml:"min_paragraph_len"`
	MinKeywordParagraphLen int     `toml:"min_keyword_paragraph_len"`
}

// SettingsStore is a file-based implementation of driven.SettingsStore
// using TOML. Settings live in a single file within the readcast
// config directory.
type SettingsStore struct {
	mu       sync.Mutex
	filePath string
}

// NewSettingsStore creates a TOML-based settings store.
// If configDir is empty, defaults to ~/.readcast/config.toml.
func NewSettingsStore(configDir string) (*SettingsStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, ".readcast")
	}

	// Ensure directory exists
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	return &SettingsStore{
		filePath: filepath.Join(configDir, "config.toml"),
	}, nil
}

// Load reads settings from the TOML file. A missing file yields the
// defaults; a malformed file is an error rather than a silent reset.
func (s *SettingsStore) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, err
	}

	var sf settingsFile
	if err := toml.Unmarshal(data, &sf); err != nil {
		return domain.Settings{}, fmt.Errorf("parse %s: %w", s.filePath, err)
	}

	settings := domain.Settings{
		Provider:         domain.AnswerProvider(sf.Provider),
		ResponderModel:   sf.ResponderModel,
		ResponderBaseURL: sf.ResponderBaseURL,
		NarrationSeed:    sf.NarrationSeed,
		Tuning: domain.RetrievalTuning{
			TopK:                   sf.Retrieval.TopK,
			RelevanceFloor:         sf.Retrieval.RelevanceFloor,
			MinParagraphLen:        sf.Retrieval.MinParagraphLen,
			MinKeywordParagraphLen: sf.Retrieval.MinKeywordParagraphLen,
		},
	}
	settings.Normalise()
	return settings, nil
}

// Save persists the settings to the TOML file.
func (s *SettingsStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	settings.Normalise()
	sf := settingsFile{
		Provider:         settings.Provider.String(),
		ResponderModel:   settings.ResponderModel,
		ResponderBaseURL: settings.ResponderBaseURL,
		NarrationSeed:    settings.NarrationSeed,
		Retrieval: tuningFile{
			TopK:                   settings.Tuning.TopK,
			RelevanceFloor:         settings.Tuning.RelevanceFloor,
			MinParagraphLen:        settings.Tuning.MinParagraphLen,
			MinKeywordParagraphLen: settings.Tuning.MinKeywordParagraphLen,
		},
	}

	data, err := toml.Marshal(sf)
	if err != nil {
		return err
	}

	// Write with restricted permissions
	return os.WriteFile(s.filePath, data, 0600)
}

// Path returns the settings file path.
func (s *SettingsStore) Path() string {
	return s.filePath
}
