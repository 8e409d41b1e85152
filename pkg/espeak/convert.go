// Package espeak turns raw IPA transcriptions into espeak-ng
// compatible phoneme encodings.
//
// The conversion is a three-stage chain: empirical IPA corrections,
// the Kirshenbaum mapping, and a second empirical correction pass on
// the mapped output. Mapping failures are an expected per-entry
// outcome (Wiktionary transcriptions are hand-written) and are
// downgraded to the Failed sentinel instead of aborting a batch.
package espeak

import (
	"log/slog"

	"github.com/repodiac/espeak-ng-german-loan-words/pkg/kirshenbaum"
)

// Failed is returned by Convert when the transcription cannot be
// mapped. Callers log such entries to the issue file and exclude them
// from the import.
const Failed = "failed"

// Converter converts IPA strings to espeak-ng encodings.
// It is safe for concurrent use.
type Converter struct {
	mapper *kirshenbaum.Mapper
	logger *slog.Logger
}

// NewConverter builds a Converter around the embedded Kirshenbaum
// table. A nil logger silences the per-failure log lines.
func NewConverter(logger *slog.Logger) *Converter {
	return &Converter{
		mapper: kirshenbaum.MustNew(),
		logger: logger,
	}
}

// Convert converts a plain IPA transcription to an espeak-ng encoding.
//
// When applyCorrections is true (the normal case), the IPA correction
// table runs first so that spurious Wiktionary spellings survive the
// strict mapper. The espeak correction table always runs on the mapped
// output. An empty transcription converts to an empty string; an
// unmappable one yields Failed.
func (c *Converter) Convert(ipa string, applyCorrections bool) string {
	if applyCorrections {
		ipa = IPACorrections.Convert(ipa)
	}

	mapped, err := c.mapper.MapString(ipa)
	if err != nil {
		if c.logger != nil {
			c.logger.Warn("failing IPA code", "ipa", ipa, "err", err)
		}
		return Failed
	}

	return Corrections.Convert(mapped)
}
