package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driven"
	"github.com/readcast-labs/readcast-cli/internal/core/ports/driving"
	"github.com/readcast-labs/readcast-cli/internal/logger"
	"github.com/readcast-labs/readcast-cli/internal/rank"
	"github.com/readcast-labs/readcast-cli/internal/sectioner"
	"github.com/readcast-labs/readcast-cli/internal/summarizer"
)

// Ensure AskService implements the interface.
var _ driving.AskService = (*AskService)(nil)

// Composition limits for the extractive answer body.
const (
	maxAnswerSentences = 6
	maxAnswerChars     = 1000
	minSentenceLen     = 20

	maxKeywordParagraphs = 3
	maxResponderContext  = 12000
)

// AskService composes answers to questions over the active document.
// It tries, in order: the configured external responder (if any), the
// ranked TF-IDF retrieval pipeline, a keyword-overlap fallback, and
// finally a generic guidance message. Every path yields an answer
// ending with the citation line.
type AskService struct {
	store     driven.SectionStore
	responder driven.AIResponder
	settings  domain.Settings
}

// NewAskService creates an ask service. responder may be nil, in which
// case only the deterministic pipeline runs.
func NewAskService(store driven.SectionStore, responder driven.AIResponder, settings domain.Settings) *AskService {
	settings.Normalise()
	return &AskService{
		store:     store,
		responder: responder,
		settings:  settings,
	}
}

// askScope is the resolved source text a question runs against.
type askScope struct {
	title     string
	pageLabel string
	text      string
	sectionID string
}

// citation formats the italicised attribution line every answer ends
// with.
func (sc *askScope) citation() string {
	return fmt.Sprintf("*Based on \"%s\" from %s*", sc.title, sc.pageLabel)
}

// Ask composes an answer for the question, scoped per opts.
func (s *AskService) Ask(ctx context.Context, question string, opts domain.AskOptions) (*domain.Answer, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return nil, fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	logger.Stage("Ask")
	logger.Debug("Question: %s", question)

	scope, err := s.resolveScope(ctx, opts)
	if err != nil {
		return nil, err
	}

	if s.settings.Provider.RequiresResponder() && s.responder != nil {
		if answer, ok := s.tryResponder(ctx, question, scope); ok {
			return answer, nil
		}
		logger.Info("Falling back to extractive retrieval")
	}

	return s.composeExtractive(question, scope), nil
}

// resolveScope loads the section named in opts, or the concatenation of
// every section of the active document when no section is named.
func (s *AskService) resolveScope(ctx context.Context, opts domain.AskOptions) (*askScope, error) {
	if opts.SectionID != "" {
		sec, err := s.store.GetSection(ctx, opts.SectionID)
		if err != nil {
			return nil, err
		}
		return &askScope{
			title:     sec.Title,
			pageLabel: sec.PageLabel(),
			text:      sec.Text,
			sectionID: sec.ID,
		}, nil
	}

	doc, err := s.store.ActiveDocument(ctx)
	if err != nil {
		return nil, err
	}
	sections, err := s.store.ListSections(ctx, doc.ID)
	if err != nil {
		return nil, err
	}
	parts := make([]string, len(sections))
	for i, sec := range sections {
		parts[i] = sec.Text
	}
	return &askScope{
		title:     doc.Title,
		pageLabel: documentPageLabel(doc.PageCount),
		text:      strings.Join(parts, "\n\n"),
	}, nil
}

// tryResponder asks the external model; any failure abandons the
// attempt so the deterministic pipeline can take over.
func (s *AskService) tryResponder(ctx context.Context, question string, scope *askScope) (*domain.Answer, bool) {
	contextText := sectioner.CleanText(scope.text)
	if len(contextText) > maxResponderContext {
		contextText = contextText[:maxResponderContext]
	}

	body, err := s.responder.Answer(ctx, question, contextText)
	if err != nil {
		logger.Warn("Responder %s failed: %v", s.responder.ModelName(), err)
		return nil, false
	}
	body = strings.TrimSpace(body)
	if body == "" {
		logger.Warn("Responder %s returned an empty answer", s.responder.ModelName())
		return nil, false
	}
	return &domain.Answer{
		Text:      body + "\n\n" + scope.citation(),
		Citation:  scope.citation(),
		Source:    domain.AnswerSourceResponder,
		SectionID: scope.sectionID,
	}, true
}

// composeExtractive runs the deterministic pipeline: ranked retrieval,
// then keyword overlap, then guidance. It always returns an answer.
func (s *AskService) composeExtractive(question string, scope *askScope) *domain.Answer {
	tuning := s.settings.Tuning
	cleaned := sectioner.CleanText(scope.text)

	paragraphs := sectioner.SplitParagraphs(cleaned, tuning.MinParagraphLen)
	if len(paragraphs) > 0 {
		if answer := s.retrievalAnswer(question, paragraphs, scope); answer != nil {
			return answer
		}
	}
	logger.Debug("No ranked candidate above floor %.2f", tuning.RelevanceFloor)

	if answer := s.keywordAnswer(question, cleaned, scope); answer != nil {
		return answer
	}
	logger.Debug("No keyword overlap either")

	return s.guidanceAnswer(scope)
}

// retrievalAnswer ranks paragraphs by TF-IDF cosine similarity and
// builds the answer body from the best candidates' sentences. Returns
// nil when no candidate clears the relevance floor.
func (s *AskService) retrievalAnswer(question string, paragraphs []string, scope *askScope) *domain.Answer {
	tuning := s.settings.Tuning

	corpus, df := rank.BuildCorpusVectors(paragraphs)
	query := rank.VectorizeQuery(question, df, len(paragraphs))
	candidates := rank.Rank(query, corpus, tuning.TopK, tuning.RelevanceFloor)
	if len(candidates) == 0 {
		return nil
	}
	logger.Debug("Top candidate score: %.3f", candidates[0].Score)

	var picked []string
	total := 0
	for _, c := range candidates {
		for _, sentence := range summarizer.SplitSentences(paragraphs[c.Index]) {
			if len(sentence) <= minSentenceLen {
				continue
			}
			if total+len(sentence) > maxAnswerChars && len(picked) > 0 {
				break
			}
			picked = append(picked, sentence)
			total += len(sentence)
			if len(picked) == maxAnswerSentences {
				break
			}
		}
		if len(picked) == maxAnswerSentences || total > maxAnswerChars {
			break
		}
	}
	if len(picked) == 0 {
		return nil
	}

	body := leadIn(question) + strings.Join(picked, " ")
	return &domain.Answer{
		Text:      body + "\n\n" + scope.citation(),
		Citation:  scope.citation(),
		Source:    domain.AnswerSourceRetrieval,
		SectionID: scope.sectionID,
	}
}

// keywordAnswer returns paragraphs sharing content terms with the
// question, or nil when nothing overlaps.
func (s *AskService) keywordAnswer(question, cleaned string, scope *askScope) *domain.Answer {
	terms := rank.ContentTerms(question, 3, 5)
	if len(terms) == 0 {
		return nil
	}
	logger.Debug("Keyword terms: %v", terms)

	var picked []string
	for _, p := range sectioner.SplitParagraphs(cleaned, s.settings.Tuning.MinKeywordParagraphLen) {
		lower := strings.ToLower(p)
		for _, term := range terms {
			if strings.Contains(lower, term) {
				picked = append(picked, p)
				break
			}
		}
		if len(picked) == maxKeywordParagraphs {
			break
		}
	}
	if len(picked) == 0 {
		return nil
	}

	body := "Here is what the document says on that topic:\n\n" + strings.Join(picked, "\n\n")
	return &domain.Answer{
		Text:      body + "\n\n" + scope.citation(),
		Citation:  scope.citation(),
		Source:    domain.AnswerSourceKeyword,
		SectionID: scope.sectionID,
	}
}

// guidanceAnswer is the last resort: a generic pointer back at the
// document, still carrying the citation line.
func (s *AskService) guidanceAnswer(scope *askScope) *domain.Answer {
	body := "I couldn't find a specific answer to that question in the document. " +
		"Try rephrasing it, or ask about one of the document's sections."
	return &domain.Answer{
		Text:      body + "\n\n" + scope.citation(),
		Citation:  scope.citation(),
		Source:    domain.AnswerSourceGuidance,
		SectionID: scope.sectionID,
	}
}

// leadIn picks a short opener matching the question's shape.
func leadIn(question string) string {
	lower := strings.ToLower(question)
	switch {
	case strings.HasPrefix(lower, "how"):
		return "According to the content, "
	case strings.HasPrefix(lower, "why"):
		return "The document suggests that "
	default:
		return ""
	}
}

// documentPageLabel mirrors Section.PageLabel for whole-document
// citations.
func documentPageLabel(pageCount int) string {
	switch {
	case pageCount > 1:
		return "pages 1-" + strconv.Itoa(pageCount)
	case pageCount == 1:
		return "page 1"
	default:
		return "source document"
	}
}
