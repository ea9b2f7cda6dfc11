package domain

const unknownDescription = "Unknown"

// AnswerProvider selects how questions are answered.
type AnswerProvider string

// Available answer providers.
const (
	// ProviderDeterministic is the built-in TF-IDF retrieval pipeline.
	ProviderDeterministic AnswerProvider = "deterministic"

	// ProviderOllama is a local Ollama instance. Falls back to the
	// deterministic pipeline on any failure.
	ProviderOllama AnswerProvider = "ollama"

	// ProviderOpenAI is the OpenAI cloud API. Falls back to the
	// deterministic pipeline on any failure.
	ProviderOpenAI AnswerProvider = "openai"
)

// IsValid returns true if the answer provider is recognised.
func (p AnswerProvider) IsValid() bool {
	switch p {
	case ProviderDeterministic, ProviderOllama, ProviderOpenAI:
		return true
	default:
		return false
	}
}

// RequiresResponder returns true if this provider needs an external
// AI responder adapter.
func (p AnswerProvider) RequiresResponder() bool {
	return p == ProviderOllama || p == ProviderOpenAI
}

// String returns the string representation.
func (p AnswerProvider) String() string {
	return string(p)
}

// Description returns a human-readable description of the provider.
func (p AnswerProvider) Description() string {
	switch p {
	case ProviderDeterministic:
		return "Deterministic (extractive retrieval)"
	case ProviderOllama:
		return "Ollama (local model, extractive fallback)"
	case ProviderOpenAI:
		return "OpenAI (cloud model, extractive fallback)"
	default:
		return unknownDescription
	}
}

// RetrievalTuning holds the knobs of the retrieval pipeline.
// The defaults mirror the values the pipeline was tuned with; change
// them only with care.
type RetrievalTuning struct {
	// TopK is the number of ranked paragraph candidates considered.
	TopK int

	// RelevanceFloor is the minimum cosine score a candidate must
	// exceed to be usable.
	RelevanceFloor float64

	// MinParagraphLen is the minimum paragraph length, in characters,
	// for the ranked retrieval path.
	MinParagraphLen int

	// MinKeywordParagraphLen is the minimum paragraph length for the
	// keyword-overlap fallback path.
	MinKeywordParagraphLen int
}

// DefaultRetrievalTuning returns the standard retrieval parameters.
func DefaultRetrievalTuning() RetrievalTuning {
	return RetrievalTuning{
		TopK:                   3,
		RelevanceFloor:         0.1,
		MinParagraphLen:        50,
		MinKeywordParagraphLen: 30,
	}
}

// Settings is the explicit configuration object passed into services.
// There is no process-wide singleton; the composition root loads one
// Settings value and hands it to whoever needs it.
type Settings struct {
	// Provider selects the answer provider.
	Provider AnswerProvider

	// ResponderModel is the model name for external providers.
	ResponderModel string

	// ResponderBaseURL overrides the provider's API base URL.
	ResponderBaseURL string

	// Tuning holds the retrieval parameters.
	Tuning RetrievalTuning

	// NarrationSeed seeds the narration script's phrase choice.
	// Zero means derive a seed from the input, keeping scripts
	// reproducible for identical inputs.
	NarrationSeed int64
}

// DefaultSettings returns settings for a fresh installation.
func DefaultSettings() Settings {
	return Settings{
		Provider: ProviderDeterministic,
		Tuning:   DefaultRetrievalTuning(),
	}
}

// Normalise fills zero-valued tuning fields with their defaults and
// resets an unrecognised provider to the deterministic pipeline.
func (s *Settings) Normalise() {
	if !s.Provider.IsValid() {
		s.Provider = ProviderDeterministic
	}
	def := DefaultRetrievalTuning()
	if s.Tuning.TopK <= 0 {
		s.Tuning.TopK = def.TopK
	}
	if s.Tuning.RelevanceFloor <= 0 {
		s.Tuning.RelevanceFloor = def.RelevanceFloor
	}
	if s.Tuning.MinParagraphLen <= 0 {
		s.Tuning.MinParagraphLen = def.MinParagraphLen
	}
	if s.Tuning.MinKeywordParagraphLen <= 0 {
		s.Tuning.MinKeywordParagraphLen = def.MinKeywordParagraphLen
	}
}
