package export

import (
	"strings"
	"testing"
	"time"

	"github.com/repodiac/espeak-ng-german-loan-words/pkg/wiktionary"
)

func TestDictionary_HeaderAndRows(t *testing.T) {
	var b strings.Builder
	d := NewDictionary(&b)

	date := time.Date(2020, time.May, 1, 12, 0, 0, 0, time.UTC)
	if err := d.WriteHeader("dewiktionary-latest-pages-articles.xml", date); err != nil {
		t.Fatalf("WriteHeader failed: %v", err)
	}
	if err := d.WriteTerm(wiktionary.Term{Label: "tiramisu", Espeak: "ti*a'mi:zu"}); err != nil {
		t.Fatalf("WriteTerm failed: %v", err)
	}

	out := b.String()
	if !strings.HasPrefix(out, "//\n") {
		t.Fatalf("header must start with a comment line, got %q", out)
	}
	if !strings.Contains(out, "input file: dewiktionary-latest-pages-articles.xml\n") {
		t.Fatalf("header misses the input file name:\n%s", out)
	}
	if !strings.Contains(out, "DATE OF CREATION: 01.05.2020\n") {
		t.Fatalf("header misses the creation date:\n%s", out)
	}
	if !strings.HasSuffix(out, "\n\ntiramisu\tti*a'mi:zu\n") {
		t.Fatalf("rows must follow a blank line after the header:\n%q", out)
	}
}

func TestWriteIssues(t *testing.T) {
	var b strings.Builder

	issues := []wiktionary.Issue{
		{Word: "(new york)", IPA: "njuː||jɔːk", Status: wiktionary.StatusIncluded},
		{Word: "chanson", IPA: "not available", Status: wiktionary.StatusExcluded},
	}
	if err := WriteIssues(&b, issues); err != nil {
		t.Fatalf("WriteIssues failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), b.String())
	}
	if lines[0] != "loan_word\tIPA_code\tstatus" {
		t.Fatalf("unexpected header row: %q", lines[0])
	}
	if lines[1] != "(new york)\tnjuː||jɔːk\tincluded" {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	if lines[2] != "chanson\tnot available\texcluded" {
		t.Fatalf("unexpected second row: %q", lines[2])
	}
}
