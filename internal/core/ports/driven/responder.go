package driven

import "context"

// AIResponder is the optional external model collaborator.
// When configured, the ask and summary services try it first and fall
// back to the deterministic pipeline on any failure; the core must
// produce correct results whether or not a responder is present.
//
// Implementations may include:
//   - Ollama (local models)
//   - OpenAI (cloud API)
type AIResponder interface {
	// Answer responds to a question given the supporting context
	// text. The returned string is used verbatim as the answer body.
	Answer(ctx context.Context, question, contextText string) (string, error)

	// Summarize condenses content into at most maxSentences
	// sentences.
	Summarize(ctx context.Context, content string, maxSentences int) (string, error)

	// ModelName returns the name of the model being used.
	ModelName() string

	// Ping validates the service is reachable with a lightweight
	// request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}
