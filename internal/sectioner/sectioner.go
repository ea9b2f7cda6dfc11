package sectioner

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/readcast-labs/readcast-cli/internal/core/domain"
	"github.com/readcast-labs/readcast-cli/internal/logger"
)

// DefaultMinSectionLen is the minimum cleaned body length, in
// characters, for a section to be emitted. Shorter spans are dropped.
const DefaultMinSectionLen = 50

// DefaultFallbackWindowPages is the fixed window size used when no
// headings are detected anywhere in the document.
const DefaultFallbackWindowPages = 8

// Config holds the sectioner's tunables.
type Config struct {
	// MinSectionLen is the minimum body length for emission.
	MinSectionLen int

	// FallbackWindowPages is the page-window size of the global
	// fallback.
	FallbackWindowPages int
}

// DefaultConfig returns the standard sectioning parameters.
func DefaultConfig() Config {
	return Config{
		MinSectionLen:       DefaultMinSectionLen,
		FallbackWindowPages: DefaultFallbackWindowPages,
	}
}

// Sectioner splits page texts into sections.
type Sectioner struct {
	cfg Config
}

// New creates a sectioner. Zero-valued config fields fall back to the
// defaults.
func New(cfg Config) *Sectioner {
	if cfg.MinSectionLen <= 0 {
		cfg.MinSectionLen = DefaultMinSectionLen
	}
	if cfg.FallbackWindowPages <= 0 {
		cfg.FallbackWindowPages = DefaultFallbackWindowPages
	}
	return &Sectioner{cfg: cfg}
}

// pending accumulates one section before flushing.
type pending struct {
	title     string
	startPage int
	blocks    []string
}

// Split divides the ordered page texts of one document into sections.
// Sections come back in document order, each with cleaned body text.
// For any non-empty page sequence at least one section is returned:
// when heading detection finds nothing usable, fixed page windows
// cover the whole document instead.
func (s *Sectioner) Split(documentID string, pages []string) []domain.Section {
	if len(pages) == 0 {
		return nil
	}

	tagged := tagPages(pages)
	blocks := blankLineRe.Split(tagged, -1)

	var (
		sections    []domain.Section
		current     *pending
		currentPage = 1
		autoCount   = 0
	)

	flush := func(endPage int) {
		if current == nil {
			return
		}
		text := CleanText(strings.Join(current.blocks, "\n\n"))
		if len(text) > s.cfg.MinSectionLen {
			if endPage < current.startPage {
				endPage = current.startPage
			}
			sections = append(sections, domain.Section{
				ID:         uuid.New().String(),
				DocumentID: documentID,
				Title:      current.title,
				StartPage:  current.startPage,
				EndPage:    endPage,
				Position:   len(sections),
				Text:       text,
			})
		} else {
			logger.Debug("Dropping short section %q (%d chars)", current.title, len(text))
		}
		current = nil
	}

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		blockPage := firstMarkedPage(block)
		if blockPage == 0 {
			blockPage = currentPage
		}

		firstLine := firstContentLine(block)
		if title, ok := isLikelyHeader(firstLine); ok {
			flush(blockPage - 1)
			current = &pending{title: title, startPage: blockPage}
			if rest := dropLine(block, firstLine); rest != "" {
				current.blocks = append(current.blocks, rest)
			}
			logger.Debug("Header detected on page %d: %q", blockPage, title)
		} else {
			if current == nil {
				autoCount++
				current = &pending{
					title:     fmt.Sprintf("Section %d", autoCount),
					startPage: blockPage,
				}
			}
			current.blocks = append(current.blocks, block)
		}

		if p := lastMarkedPage(block); p > currentPage {
			currentPage = p
		}
	}
	flush(currentPage)

	if len(sections) == 0 {
		logger.Info("No sections detected, falling back to %d-page windows", s.cfg.FallbackWindowPages)
		return s.fallbackWindows(documentID, pages)
	}
	return sections
}

// fallbackWindows covers the document with consecutive fixed-size page
// windows, no gaps and no overlap. The minimum-length filter does not
// apply on this path: the document must end up with sections.
func (s *Sectioner) fallbackWindows(documentID string, pages []string) []domain.Section {
	size := s.cfg.FallbackWindowPages
	var sections []domain.Section
	for start := 0; start < len(pages); start += size {
		end := start + size
		if end > len(pages) {
			end = len(pages)
		}
		text := CleanText(strings.Join(pages[start:end], "\n\n"))
		sections = append(sections, domain.Section{
			ID:         uuid.New().String(),
			DocumentID: documentID,
			Title:      fmt.Sprintf("Section %d", len(sections)+1),
			StartPage:  start + 1,
			EndPage:    end,
			Position:   len(sections),
			Text:       text,
		})
	}
	return sections
}

// tagPages prefixes each page with its marker and concatenates them
// with blank lines so page boundaries always close a block.
func tagPages(pages []string) string {
	var b strings.Builder
	for i, page := range pages {
		b.WriteString(pageMarker(i + 1))
		b.WriteString("\n")
		b.WriteString(page)
		b.WriteString("\n\n")
	}
	return b.String()
}

// firstContentLine returns the first line of a block that is not a
// bare page marker, so heading detection sees the real first line.
func firstContentLine(block string) string {
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || pageMarkerOnlyRe.MatchString(line) {
			continue
		}
		return line
	}
	return ""
}

// dropLine removes the first occurrence of line from the block and
// returns what remains, trimmed.
func dropLine(block, line string) string {
	var kept []string
	dropped := false
	for _, l := range strings.Split(block, "\n") {
		if !dropped && strings.TrimSpace(l) == line {
			dropped = true
			continue
		}
		kept = append(kept, l)
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func firstMarkedPage(block string) int {
	if m := pageMarkerRe.FindStringSubmatch(block); m != nil {
		return atoiSafe(m[1])
	}
	return 0
}

func lastMarkedPage(block string) int {
	ms := pageMarkerRe.FindAllStringSubmatch(block, -1)
	if len(ms) == 0 {
		return 0
	}
	return atoiSafe(ms[len(ms)-1][1])
}

func atoiSafe(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
