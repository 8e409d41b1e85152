// Package wiktionary extracts German loan words and their IPA
// transcriptions from Wiktionary XML dumps.
//
// A page is considered a loan word when its wikitext body carries the
// German loan-word category marker. The extractor reads titles and
// transcriptions only; it is not a wiki-markup parser.
package wiktionary

import (
	"encoding/xml"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// --- Markers scanned for in page bodies -------------------------------------

// categoryRegexp matches the loan-word category marker, capturing the
// source language name, e.g.:
//
//	[[Kategorie:Entlehnung aus dem Italienischen (Deutsch)]]
var categoryRegexp = regexp.MustCompile(`\[\[Kategorie:Entlehnung aus dem (.+) \(Deutsch\)\]\]`)

// pronunciationRegexp matches the pronunciation section header.
var pronunciationRegexp = regexp.MustCompile(`\{\{Aussprache\}\}`)

// ipaAttribute introduces the IPA transcription inside the
// pronunciation section; the transcription runs up to the next "}}".
const ipaAttribute = ":{{IPA}} {{Lautschrift|"

// WordBreak is the espeak-ng word-break marker used when reporting
// multiword transcriptions in the issue log.
const WordBreak = "||"

// DefaultWordLimit is the maximum number of words espeak-ng accepts in
// a single dictionary term.
const DefaultWordLimit = 4

// --- Records -----------------------------------------------------------------

// Status classifies an Issue with respect to the primary output.
type Status string

const (
	// StatusIncluded marks entries that made it into the import file
	// but deserve operator review.
	StatusIncluded Status = "included"

	// StatusExcluded marks entries that were dropped from the import file.
	StatusExcluded Status = "excluded"
)

// Term is one loan-word entry extracted from the dump.
//
// Label is the lowercased title, parenthesized when it spans several
// words. Category is the lowercased source language with its German
// grammatical suffix stripped ("Italienischen" → "italienisch").
// IPA is the raw transcription as found in the dump, possibly empty.
// Espeak is attached later by the conversion step; a Term is otherwise
// immutable after extraction.
type Term struct {
	Label    string
	Category string
	IPA      string
	Espeak   string
}

// Issue is a diagnostic record for a term that was excluded from, or
// unusually included in, the primary output. Issues are append-only
// and keep discovery order.
type Issue struct {
	Word   string
	IPA    string
	Status Status
}

// LabelSet tracks labels that have already produced a Term so that
// later duplicates are dropped (first occurrence wins). It is passed
// in by the caller instead of living in package state, which keeps
// extraction reproducible across runs and testable in isolation.
type LabelSet map[string]struct{}

// NewLabelSet returns an empty label accumulator.
func NewLabelSet() LabelSet { return make(LabelSet) }

// Has reports whether label has been seen already.
func (s LabelSet) Has(label string) bool {
	_, ok := s[label]
	return ok
}

// Add marks label as seen.
func (s LabelSet) Add(label string) { s[label] = struct{}{} }

// Stats contains summary statistics for an extraction run.
type Stats struct {
	Pages     int
	LoanWords int
	Issues    int
	Elapsed   time.Duration
}

// --- Extractor ---------------------------------------------------------------

// progressStep is the page interval between Progress callbacks.
const progressStep = 10000

// Extractor scans a Wiktionary dump for loan words.
//
// The zero value is not usable; construct with NewExtractor.
type Extractor struct {
	// WordLimit is the maximum word count per term; titles with more
	// words are excluded entirely.
	WordLimit int

	// Logger, if non-nil, receives one line per guard decision.
	Logger *slog.Logger

	// Progress, if non-nil, is called periodically with the current
	// page and loan-word counts.
	Progress func(pages int, loanWords int)
}

// NewExtractor constructs an Extractor with the default word limit.
func NewExtractor(logger *slog.Logger) *Extractor {
	return &Extractor{
		WordLimit: DefaultWordLimit,
		Logger:    logger,
	}
}

// page is the minimal shape read from the dump. Namespaces are
// ignored on purpose: the extractor depends only on title and body.
type page struct {
	Title string `xml:"title"`
	Text  string `xml:"revision>text"`
}

// ExtractSource opens a local file or HTTP/HTTPS URL (optionally
// .bz2-compressed) and extracts loan words from it.
func (e *Extractor) ExtractSource(pathOrURL string, seen LabelSet) ([]Term, []Issue, Stats, error) {
	reader, err := openSource(pathOrURL)
	if err != nil {
		return nil, nil, Stats{}, fmt.Errorf("open %q: %w", pathOrURL, err)
	}
	defer reader.Close()

	return e.ExtractInto(reader, seen)
}

// Extract reads a dump from r with a fresh label accumulator.
func (e *Extractor) Extract(r io.Reader) ([]Term, []Issue, Stats, error) {
	return e.ExtractInto(r, NewLabelSet())
}

// ExtractInto reads a dump from r, appending every label it emits to
// seen. Passing a shared LabelSet lets callers deduplicate across
// several dumps; within one call the first occurrence of a label wins.
//
// Guard semantics, in order:
//
//   - titles with more than WordLimit words are excluded entirely and
//     logged with StatusExcluded;
//   - multiword titles whose transcription has fewer space-separated
//     segments than the title has words are logged with StatusIncluded
//     but still emitted, carrying the original unsplit transcription
//     (the issue detail shows the segments joined by WordBreak).
//
// Titles are split on single spaces without collapsing: doubled spaces
// produce empty words that count toward the limit.
func (e *Extractor) ExtractInto(r io.Reader, seen LabelSet) ([]Term, []Issue, Stats, error) {
	if seen == nil {
		seen = NewLabelSet()
	}

	var (
		terms  []Term
		issues []Issue
		stats  Stats
	)
	start := time.Now()

	decoder := xml.NewDecoder(r)
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return terms, issues, stats, fmt.Errorf("decode dump: %w", err)
		}

		se, ok := tok.(xml.StartElement)
		if !ok || se.Name.Local != "page" {
			continue
		}

		var p page
		if err := decoder.DecodeElement(&p, &se); err != nil {
			return terms, issues, stats, fmt.Errorf("decode page: %w", err)
		}
		stats.Pages++

		if e.Progress != nil && stats.Pages%progressStep == 0 {
			e.Progress(stats.Pages, stats.LoanWords)
		}

		if term, issue, emitted := e.scanPage(p, seen); emitted || issue != nil {
			if issue != nil {
				issues = append(issues, *issue)
			}
			if emitted {
				terms = append(terms, term)
				stats.LoanWords++
			}
		}
	}

	stats.Issues = len(issues)
	stats.Elapsed = time.Since(start)

	return terms, issues, stats, nil
}

// scanPage applies the marker scan and guards to a single page.
// It returns the extracted term (when emitted is true) and at most one
// issue record.
func (e *Extractor) scanPage(p page, seen LabelSet) (term Term, issue *Issue, emitted bool) {
	if p.Text == "" {
		return Term{}, nil, false
	}

	// Residual HTML entities occur in wikitext bodies; decode them
	// before scanning for markers.
	body := html.UnescapeString(p.Text)

	category := categoryRegexp.FindStringSubmatch(body)
	if category == nil {
		// Not a loan word.
		return Term{}, nil, false
	}

	words := strings.Split(strings.ToLower(p.Title), " ")
	ipa := extractTranscription(body)

	limit := e.WordLimit
	if limit <= 0 {
		limit = DefaultWordLimit
	}

	if len(words) > limit {
		if e.Logger != nil {
			e.Logger.Info("multiword term exceeds word limit, excluding",
				"term", strings.Join(words, " "),
				"words", len(words),
				"limit", limit,
				"ipa", ipa)
		}
		return Term{}, &Issue{
			Word:   strings.Join(words, " "),
			IPA:    ipa,
			Status: StatusExcluded,
		}, false
	}

	var segments []string
	if ipa != "" {
		segments = strings.Split(ipa, " ")
	}

	label := strings.Join(words, " ")
	if len(words) > 1 {
		if len(segments) > 0 && len(segments) < len(words) {
			// Fewer transcription segments than words: report it, but
			// keep the term and its unsplit transcription.
			if e.Logger != nil {
				e.Logger.Info("multiword term has fewer IPA segments than words, proceeding as single word",
					"term", label,
					"ipa", ipa)
			}
			issue = &Issue{
				Word:   label,
				IPA:    strings.Join(segments, WordBreak),
				Status: StatusIncluded,
			}
		}

		// espeak-ng requires brackets around multiword terms.
		label = "(" + label + ")"
	}

	if seen.Has(label) {
		return Term{}, issue, false
	}
	seen.Add(label)

	return Term{
		Label:    label,
		Category: languageCategory(category[1]),
		IPA:      ipa,
	}, issue, true
}

// extractTranscription returns the IPA transcription of a page body,
// or "" when the pronunciation section or the IPA attribute is absent.
func extractTranscription(body string) string {
	if !pronunciationRegexp.MatchString(body) {
		return ""
	}

	start := strings.Index(body, ipaAttribute)
	if start < 0 {
		return ""
	}
	rest := body[start+len(ipaAttribute):]

	end := strings.Index(rest, "}}")
	if end < 0 {
		return ""
	}
	return rest[:end]
}

// languageCategory derives the provenance tag from the captured
// language name: the last two runes are the German dative suffix
// ("Italienischen" → "Italienisch"), and the tag is lowercased.
func languageCategory(lang string) string {
	runes := []rune(lang)
	if len(runes) < 2 {
		return ""
	}
	return strings.ToLower(string(runes[:len(runes)-2]))
}
