package driven

import "github.com/readcast-labs/readcast-cli/internal/core/domain"

// SettingsStore persists user settings between runs.
type SettingsStore interface {
	// Load reads the stored settings. A missing settings file yields
	// the defaults, not an error.
	Load() (domain.Settings, error)

	// Save persists the settings.
	Save(settings domain.Settings) error

	// Path returns the location of the backing file, for display.
	Path() string
}
