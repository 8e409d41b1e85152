// Package export writes the espeak-ng import file and the issue log.
package export

import (
	"fmt"
	"io"
	"time"

	"github.com/repodiac/espeak-ng-german-loan-words/pkg/wiktionary"
)

// DictionaryFileName is the fixed name espeak-ng expects for the
// German extra dictionary.
const DictionaryFileName = "de_extra"

// IssueFileName is the name of the tab-separated issue log.
const IssueFileName = "issue_terms.tab"

// Dictionary streams an espeak-ng import file: a provenance header
// followed by one tab-separated (label, encoding) line per term.
type Dictionary struct {
	w io.Writer
}

// NewDictionary wraps w for dictionary output.
func NewDictionary(w io.Writer) *Dictionary {
	return &Dictionary{w: w}
}

// WriteHeader writes the provenance comment block. sourceName is the
// base name of the dump the terms were extracted from; date becomes
// the creation stamp (DD.MM.YYYY).
func (d *Dictionary) WriteHeader(sourceName string, date time.Time) error {
	_, err := fmt.Fprintf(d.w,
		"//\n// This work/these contents are derived from/based on Wiktionary contents, input file: %s\n"+
			"// and created using code copyright 2020 by repodiac"+
			" (see https://github.com/repodiac, also for information how to provide attribution to this work)\n"+
			"//\n// DATE OF CREATION: %s\n//\n\n",
		sourceName, date.Format("02.01.2006"))
	return err
}

// WriteTerm writes one import line. The term must already carry its
// espeak encoding.
func (d *Dictionary) WriteTerm(t wiktionary.Term) error {
	_, err := fmt.Fprintf(d.w, "%s\t%s\n", t.Label, t.Espeak)
	return err
}

// WriteIssues writes the issue log: a header row followed by one row
// per issue in discovery order. Callers should skip the file entirely
// when there are no issues.
func WriteIssues(w io.Writer, issues []wiktionary.Issue) error {
	if _, err := fmt.Fprintf(w, "loan_word\tIPA_code\tstatus\n"); err != nil {
		return err
	}
	for _, it := range issues {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", it.Word, it.IPA, it.Status); err != nil {
			return err
		}
	}
	return nil
}
