// Package responder provides factory functions for creating AI
// responder adapters from settings.
package responder

import (
	"context"
	"fmt"
	"time"

	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/responder/ollama"
	"github.com/readcast-labs/readcast-cli/internal/adapters/driven/responder/openai"
	"github.com/readcast-labs/readcast-cli/internal/core/domain"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
)

// pingTimeout is the maximum time to wait for connectivity validation.
const pingTimeout = 5 * time.Second

// New creates the responder for the configured provider. Returns
// (nil, nil) for the deterministic provider; the services run the
// extractive pipeline without a responder in that case.
//
// apiKey is only used by providers that need one (OpenAI).
func New(settings domain.Settings, apiKey string) (driven.AIResponder, error) {
	switch settings.Provider {
	case domain.ProviderDeterministic:
		return nil, nil

	case domain.ProviderOllama:
		return ollama.New(ollama.Config{
			BaseURL: settings.ResponderBaseURL,
			Model:   settings.ResponderModel,
		}), nil

	case domain.ProviderOpenAI:
		return openai.New(openai.Config{
			APIKey:  apiKey,
			BaseURL: settings.ResponderBaseURL,
			Model:   settings.ResponderModel,
		})

	default:
		return nil, fmt.Errorf("unsupported answer provider: %s", settings.Provider)
	}
}

// Validate creates the configured responder and pings it. Intended
// for the settings command so a misconfigured provider is reported
// when it is chosen, not on the first question.
func Validate(settings domain.Settings, apiKey string) error {
	r, err := New(settings, apiKey)
	if err != nil {
		return err
	}
	if r == nil {
		return nil
	}
	defer r.Close() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := r.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrResponderUnavailable, settings.Provider, err)
	}
	return nil
}
