package main

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"go.redy.dev/internal/i18n"
	"go.redy.dev/internal/lexer"
)

// fileConfig is the shape of a --config TOML file. Flags passed on the
// command line always override whatever it sets, per SPEC_FULL §10.
type fileConfig struct {
	Language string `toml:"language"`
	Mode     string `toml:"mode"`
	Strict   bool   `toml:"strict"`
	Workers  int    `toml:"workers"`
}

func loadConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	var cfg fileConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}

func parseMode(s string) lexer.Mode {
	switch s {
	case "document_gen":
		return lexer.DocumentGen
	case "format":
		return lexer.Format
	default:
		return lexer.CodeAnalysis
	}
}

func parseLanguage(s string) i18n.Language {
	if s == "" {
		return i18n.DefaultLanguage
	}
	return i18n.Language(s)
}
