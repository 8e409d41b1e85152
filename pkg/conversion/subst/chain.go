// Package subst implements a simple conversion mechanism that relies
// on an ordered list of literal substitutions.
package subst

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/repodiac/espeak-ng-german-loan-words/pkg/conversion"
)

// Pair is a single literal substitution. From is a plain substring,
// not a regular expression.
type Pair struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Chain is an ordered sequence of substitutions.
//
// Order is significant: each pair is applied globally to the result of
// the previous one, so a pair may rewrite text that an earlier pair
// introduced. Both correction tables of the pipeline depend on this
// (for example "ɐ̯" only becomes "a" because "ɐ"→"ɜ" runs first and
// "ɜ̯"→"a" runs afterwards).
type Chain []Pair

// Convert implements conversion.Rule.
func (c Chain) Convert(s string) string {
	for _, p := range c {
		s = strings.ReplaceAll(s, p.From, p.To)
	}
	return s
}

// Load loads a chain from a JSON file.
//
// The expected format is an ordered array of objects:
//
//	[ {"from": "ɐ", "to": "ɜ"}, {"from": "ʁ", "to": "ɾ"} ]
func (c Chain) Load(path string) (conversion.Rule, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return c.LoadBlob(b)
}

// LoadBlob loads a chain from JSON bytes.
func (c Chain) LoadBlob(blob []byte) (conversion.Rule, error) {
	var loaded Chain
	if err := json.Unmarshal(blob, &loaded); err != nil {
		return nil, fmt.Errorf("decode substitution chain: %w", err)
	}
	return loaded, nil
}

var _ conversion.Rule = Chain(nil)
