// Package conversion defines the contract shared by the string
// conversion stages of the import pipeline (phonetic corrections,
// encoding fixups).
package conversion

type Rule interface {

	// Convert a given string to another according to a rule.
	// Rules are pure and total: they never fail and never mutate
	// shared state.
	Convert(s string) string

	// Load loads from a file path.
	Load(path string) (Rule, error)

	// LoadBlob loads the rule from bytes.
	LoadBlob(blob []byte) (Rule, error)
}
