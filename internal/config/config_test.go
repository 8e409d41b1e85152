package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestDefault(t *testing.T) {
	d := Default()

	if d.DictionaryFile != "de_extra" {
		t.Fatalf("unexpected dictionary file: %q", d.DictionaryFile)
	}
	if d.WordLimit != 4 {
		t.Fatalf("unexpected word limit: %d", d.WordLimit)
	}
	if d.LogLevel != "info" {
		t.Fatalf("unexpected log level: %q", d.LogLevel)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	viper.Reset()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("word_limit: 3\nlog_level: debug\n"), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.WordLimit != 3 {
		t.Fatalf("word limit not taken from file: %d", s.WordLimit)
	}
	if s.LogLevel != "debug" {
		t.Fatalf("log level not taken from file: %q", s.LogLevel)
	}
	if s.DictionaryFile != "de_extra" {
		t.Fatalf("unset key should keep its default, got %q", s.DictionaryFile)
	}
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	viper.Reset()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("Load should fail when a named config file does not exist")
	}
}

func TestLoad_NoFileMeansDefaults(t *testing.T) {
	viper.Reset()

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("changing directory: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	s, err := Load("")
	if err != nil {
		t.Fatalf("Load failed without a config file: %v", err)
	}
	if s != Default() {
		t.Fatalf("expected defaults, got %+v", s)
	}
}
