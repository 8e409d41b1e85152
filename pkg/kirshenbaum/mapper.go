// Package kirshenbaum converts IPA strings into the Kirshenbaum
// ASCII phoneme notation (https://en.wikipedia.org/wiki/Kirshenbaum),
// the notation espeak-ng dictionary imports are based on.
//
// The symbol table is embedded as kirshenbaum.json and covers IPA base
// letters, combining diacritics and suprasegmentals. Matching is a
// greedy longest-match scan so that multi-rune clusters (a base letter
// plus combining marks, e.g. "c" + cedilla) are recognized atomically
// where the table defines them.
//
// The mapper is strict: input that cannot be mapped fails the whole
// call instead of being silently dropped. Callers that want per-entry
// recovery handle the error themselves (see pkg/espeak).
package kirshenbaum

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// UnmappableError reports the first input sequence the table does not
// cover. Pos is the rune offset into the normalized input.
type UnmappableError struct {
	Input    string
	Sequence string
	Pos      int
}

func (e *UnmappableError) Error() string {
	return fmt.Sprintf("kirshenbaum: unmappable sequence %q at rune %d in %q", e.Sequence, e.Pos, e.Input)
}

// Mapper maps IPA strings to Kirshenbaum symbol sequences.
// It is immutable after construction and safe for concurrent use.
type Mapper struct {
	table     map[string]string
	maxKeyLen int
}

// New builds a Mapper from the embedded symbol table.
func New() (*Mapper, error) {
	table, maxKeyLen, err := buildTable()
	if err != nil {
		return nil, err
	}
	return &Mapper{table: table, maxKeyLen: maxKeyLen}, nil
}

// MustNew is like New but panics on a malformed embedded table.
// The table is a compile-time asset, so failure here is a build defect.
func MustNew() *Mapper {
	m, err := New()
	if err != nil {
		panic(err)
	}
	return m
}

// Map converts s into a sequence of Kirshenbaum symbols, one element
// per matched IPA cluster.
//
// The input is NFD-normalized first, so precomposed and decomposed
// diacritic spellings hit the same table entries. At each position the
// longest matching key wins; if no key matches at some position the
// whole call fails with *UnmappableError.
func (m *Mapper) Map(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}

	runes := []rune(norm.NFD.String(s))
	n := len(runes)

	symbols := make([]string, 0, n)
	i := 0

	for i < n {
		remaining := n - i
		lmax := m.maxKeyLen
		if lmax > remaining {
			lmax = remaining
		}

		matched := 0
		for l := lmax; l > 0; l-- {
			if sym, ok := m.table[string(runes[i:i+l])]; ok {
				symbols = append(symbols, sym)
				matched = l
				break
			}
		}

		if matched == 0 {
			return nil, &UnmappableError{
				Input:    s,
				Sequence: string(runes[i]),
				Pos:      i,
			}
		}
		i += matched
	}

	return symbols, nil
}

// MapString converts s and joins the resulting symbols into a single
// Kirshenbaum string.
func (m *Mapper) MapString(s string) (string, error) {
	symbols, err := m.Map(s)
	if err != nil {
		return "", err
	}
	return strings.Join(symbols, ""), nil
}
