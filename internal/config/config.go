// Package config loads the tunable settings of the import run.
//
// Settings come from defaults, an optional YAML config file, and
// environment variables with the ESPEAKIMPORT_ prefix, in increasing
// precedence. The marker strings scanned for in the dump are not
// configurable; they are part of the German Wiktionary dialect the
// extractor is written against.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the run configuration.
type Settings struct {
	// DictionaryFile is the output file name expected by espeak-ng.
	DictionaryFile string `mapstructure:"dictionary_file"`

	// WordLimit is the maximum word count espeak-ng accepts per term.
	WordLimit int `mapstructure:"word_limit"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `mapstructure:"log_level"`
}

// Default returns the settings matching the espeak-ng import
// conventions for German.
func Default() Settings {
	return Settings{
		DictionaryFile: "de_extra",
		WordLimit:      4,
		LogLevel:       "info",
	}
}

// Load resolves settings from defaults, cfgFile (or ./config.yaml when
// empty) and the environment.
func Load(cfgFile string) (Settings, error) {
	defaults := Default()
	viper.SetDefault("dictionary_file", defaults.DictionaryFile)
	viper.SetDefault("word_limit", defaults.WordLimit)
	viper.SetDefault("log_level", defaults.LogLevel)

	viper.SetEnvPrefix("ESPEAKIMPORT")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	// The config file is optional unless one was named explicitly.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var s Settings
	if err := viper.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return s, nil
}
