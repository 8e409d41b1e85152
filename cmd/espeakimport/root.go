package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/repodiac/espeak-ng-german-loan-words/internal/config"
	"github.com/repodiac/espeak-ng-german-loan-words/pkg/espeak"
	"github.com/repodiac/espeak-ng-german-loan-words/pkg/export"
	"github.com/repodiac/espeak-ng-german-loan-words/pkg/wiktionary"
)

var (
	cfgFile   string
	inputPath string
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:   "espeakimport",
	Short: "Generate an espeak-ng import dictionary of German loan words",
	Long: `espeakimport extracts German loan words from a Wiktionary XML dump,
converts their IPA transcriptions to espeak-ng phoneme encodings and
writes an import file ("de_extra") for the espeak-ng dictionary.

Terms that cannot be converted cleanly are collected in a separate
issue log ("issue_terms.tab") for operator review.

Examples:
  espeakimport -i dewiktionary-latest-pages-articles.xml -o ./out
  espeakimport -i dewiktionary-latest-pages-articles.xml.bz2 -o ./out
  espeakimport -i https://dumps.wikimedia.org/dewiktionary/latest/dewiktionary-latest-pages-articles.xml.bz2 -o ./out`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVarP(
		&inputPath, "input", "i", "", "Wiktionary XML dump: file path or HTTP(S) URL, optionally .bz2-compressed",
	)
	rootCmd.Flags().StringVarP(
		&outputDir, "output", "o", "", "existing output folder (the dictionary file name is fixed)",
	)
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml)",
	)

	_ = rootCmd.MarkFlagRequired("input")
	_ = rootCmd.MarkFlagRequired("output")
}

// parseLevel maps the configured log level name to a slog.Level.
func parseLevel(name string) slog.Level {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// validatePaths checks the CLI paths before any processing starts.
// These are the only fatal errors of the tool; everything later is
// downgraded to issue records.
func validatePaths(input, output string) error {
	if !strings.HasPrefix(input, "http://") && !strings.HasPrefix(input, "https://") {
		info, err := os.Stat(input)
		if err != nil || info.IsDir() {
			return fmt.Errorf("input file %s does not exist or is the wrong path", input)
		}
	}

	info, err := os.Stat(output)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("output %s must not be a path to a file, but an existing folder (the dictionary file name is fixed)", output)
	}

	return nil
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLevel(settings.LogLevel),
	}))

	if err := validatePaths(inputPath, outputDir); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		return err
	}

	logger.Info("extracting loan words from wiktionary dump", "input", inputPath)

	extractor := wiktionary.NewExtractor(logger)
	extractor.WordLimit = settings.WordLimit
	extractor.Progress = func(pages, loanWords int) {
		logger.Info("scanning dump", "pages", pages, "loan_words", loanWords)
	}

	terms, issues, stats, err := extractor.ExtractSource(inputPath, wiktionary.NewLabelSet())
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		return err
	}

	logger.Info("extraction finished",
		"pages", stats.Pages,
		"loan_words", stats.LoanWords,
		"elapsed", stats.Elapsed)

	outPath := filepath.Join(outputDir, settings.DictionaryFile)
	issues, err = writeDictionary(outPath, filepath.Base(inputPath), terms, issues, logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		return err
	}

	if len(issues) > 0 {
		issuePath := filepath.Join(outputDir, export.IssueFileName)
		if err := writeIssueFile(issuePath, issues); err != nil {
			fmt.Fprintln(os.Stderr, "ERROR:", err)
			return err
		}
		logger.Warn("terms causing possible issues with espeak-ng have been stored, please check back when importing",
			"file", issuePath,
			"issues", len(issues))
	}

	return nil
}

// writeDictionary converts every extracted term and streams the
// successful ones into the import file. Conversion failures and
// missing transcriptions are appended to issues; the run never aborts
// because of a single term.
func writeDictionary(outPath, sourceName string, terms []wiktionary.Term, issues []wiktionary.Issue, logger *slog.Logger) ([]wiktionary.Issue, error) {
	f, err := os.Create(outPath)
	if err != nil {
		return issues, fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	dict := export.NewDictionary(f)
	if err := dict.WriteHeader(sourceName, time.Now()); err != nil {
		return issues, err
	}

	logger.Info("converting IPA codes to espeak-ng encodings", "terms", len(terms))

	converter := espeak.NewConverter(logger)
	written := 0

	for i := range terms {
		t := &terms[i]
		encoded := converter.Convert(t.IPA, true)

		switch {
		case encoded == "":
			issues = append(issues, wiktionary.Issue{
				Word:   t.Label,
				IPA:    "not available",
				Status: wiktionary.StatusExcluded,
			})
		case encoded == espeak.Failed:
			issues = append(issues, wiktionary.Issue{
				Word:   t.Label,
				IPA:    t.IPA,
				Status: wiktionary.StatusExcluded,
			})
		default:
			// The import historically runs the espeak corrections a
			// second time on the writer side; only the "Y" rule can
			// re-trigger, but the resulting encodings are what the
			// deployed voices were tuned against. Keep it.
			t.Espeak = espeak.Corrections.Convert(encoded)
			if err := dict.WriteTerm(*t); err != nil {
				return issues, err
			}
			written++
		}
	}

	logger.Info("dictionary written", "file", outPath, "terms", written)
	return issues, nil
}

// writeIssueFile writes the issue log next to the dictionary.
func writeIssueFile(path string, issues []wiktionary.Issue) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	return export.WriteIssues(f, issues)
}
