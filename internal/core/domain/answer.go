package domain

// AnswerSource identifies which pipeline stage produced an answer.
type AnswerSource string

// Available answer sources.
const (
	// AnswerSourceRetrieval is the ranked TF-IDF retrieval path.
	AnswerSourceRetrieval AnswerSource = "retrieval"

	// AnswerSourceKeyword is the keyword-overlap fallback path.
	AnswerSourceKeyword AnswerSource = "keyword"

	// AnswerSourceGuidance is the generic could-not-find message.
	AnswerSourceGuidance AnswerSource = "guidance"

	// AnswerSourceResponder is an external AI responder.
	AnswerSourceResponder AnswerSource = "responder"
)

// Answer is a composed response to a question.
// Text always ends with the italicised citation line; every path,
// including the guidance fallback, yields a non-empty Text.
type Answer struct {
	// Text is the full answer including the citation line.
	Text string

	// Citation is the citation line alone, e.g.
	// `*Based on "Origins" from pages 3-9*`.
	Citation string

	// Source identifies the pipeline stage that produced the answer.
	Source AnswerSource

	// SectionID is the section the answer was scoped to, empty when
	// the whole document was used.
	SectionID string
}

// AskOptions configures a question over the active document.
type AskOptions struct {
	// SectionID restricts retrieval to one section. Empty means the
	// concatenation of all sections.
	SectionID string
}
