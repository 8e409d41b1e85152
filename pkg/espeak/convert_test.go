package espeak

import "testing"

func TestConvert_Tiramisu(t *testing.T) {
	c := NewConverter(nil)

	got := c.Convert("tiʁaˈmiːzu", true)
	if got == Failed {
		t.Fatalf("Convert failed on a regular transcription")
	}
	if want := "ti*a'mi:zu"; got != want {
		t.Fatalf("Convert returned %q, want %q", got, want)
	}
}

func TestConvert_SpacesBecomeWordBreaks(t *testing.T) {
	c := NewConverter(nil)

	// The "#" produced by the mapper for a space is first turned back
	// into a space and then, by the final rule, into the word break.
	if got, want := c.Convert("aː ɛ", true), "a:||E"; got != want {
		t.Fatalf("Convert returned %q, want %q", got, want)
	}
}

func TestConvert_TrillModifierStripped(t *testing.T) {
	c := NewConverter(nil)

	if got, want := c.Convert("rand", true), "rand"; got != want {
		t.Fatalf("Convert returned %q, want %q", got, want)
	}
}

func TestConvert_CorrectionsToggle(t *testing.T) {
	c := NewConverter(nil)

	// With corrections, the uvular fricative is rewritten to a flap
	// before mapping; without them it maps to the raw Kirshenbaum g".
	corrected := c.Convert("ʁa", true)
	uncorrected := c.Convert("ʁa", false)

	if corrected != "*a" {
		t.Fatalf("corrected conversion returned %q, want %q", corrected, "*a")
	}
	if uncorrected != `g"a` {
		t.Fatalf("uncorrected conversion returned %q, want %q", uncorrected, `g"a`)
	}
}

func TestConvert_UnmappableYieldsFailed(t *testing.T) {
	c := NewConverter(nil)

	if got := c.Convert("t☃t", true); got != Failed {
		t.Fatalf("Convert returned %q, want the %q sentinel", got, Failed)
	}
}

func TestConvert_EmptyTranscription(t *testing.T) {
	c := NewConverter(nil)

	if got := c.Convert("", true); got != "" {
		t.Fatalf("Convert returned %q for empty input, want empty string", got)
	}
}

func TestConvert_Deterministic(t *testing.T) {
	c := NewConverter(nil)

	first := c.Convert("tiʁaˈmiːzu", true)
	second := c.Convert("tiʁaˈmiːzu", true)
	if first != second {
		t.Fatalf("conversion is not deterministic: %q vs %q", first, second)
	}
}

func TestIPACorrections_Idempotent(t *testing.T) {
	// Running the correction chain on already-corrected text must be a
	// no-op: no entry re-matches its own replacement output.
	inputs := []string{
		"tʁaːɐ̯m",
		"kɔ̃to",
		"ba-nal",
		"tiʁaˈmiːzu",
		"vi(ə)la‿i",
	}

	for _, in := range inputs {
		once := IPACorrections.Convert(in)
		twice := IPACorrections.Convert(once)
		if once != twice {
			t.Fatalf("corrections not idempotent for %q: %q vs %q", in, once, twice)
		}
	}
}
