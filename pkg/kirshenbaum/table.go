package kirshenbaum

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

//go:embed kirshenbaum.json
var tableJSON []byte

// mapping is a single IPA symbol → ASCII phoneme pair from the
// embedded table.
type mapping struct {
	IPA   string `json:"ipa"`
	ASCII string `json:"ascii"`
}

// tableSpec models kirshenbaum.json. The grouping is purely editorial;
// all groups feed the same lookup.
type tableSpec struct {
	Vowels          []mapping `json:"vowels"`
	Consonants      []mapping `json:"consonants"`
	Diacritics      []mapping `json:"diacritics"`
	Suprasegmentals []mapping `json:"suprasegmentals"`
}

// buildTable parses the embedded table and derives the lookup map used
// by the mapper, together with the maximum key length in runes.
//
// Keys are NFD-normalized so that precomposed spellings ("ç") and
// base+combining spellings ("c" + U+0327) resolve to the same entry.
// Input strings go through the same normalization before matching.
func buildTable() (map[string]string, int, error) {
	var spec tableSpec
	if err := json.Unmarshal(tableJSON, &spec); err != nil {
		return nil, 0, fmt.Errorf("decode Kirshenbaum table: %w", err)
	}

	lookup := make(map[string]string, 128)
	maxKeyLen := 0

	add := func(group []mapping) error {
		for _, m := range group {
			key := norm.NFD.String(m.IPA)
			if key == "" {
				return fmt.Errorf("empty IPA key for %q", m.ASCII)
			}
			if prev, dup := lookup[key]; dup && prev != m.ASCII {
				return fmt.Errorf("conflicting mappings for %q: %q vs %q", m.IPA, prev, m.ASCII)
			}
			lookup[key] = m.ASCII

			if n := len([]rune(key)); n > maxKeyLen {
				maxKeyLen = n
			}
		}
		return nil
	}

	for _, group := range [][]mapping{
		spec.Vowels,
		spec.Consonants,
		spec.Diacritics,
		spec.Suprasegmentals,
	} {
		if err := add(group); err != nil {
			return nil, 0, err
		}
	}

	return lookup, maxKeyLen, nil
}
