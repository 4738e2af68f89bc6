package main

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/oarkflow/log"
	"gopkg.in/yaml.v3"
)

const configFile = ".monk.yml"

// config holds the optional REPL settings from ~/.monk.yml. Zero values are
// filled with defaults; a malformed file is logged and ignored.
type config struct {
	Prompt      string `yaml:"prompt"`
	Color       string `yaml:"color"` // auto | always | never
	HistoryFile string `yaml:"history_file"`
}

func defaultConfig() config {
	return config{
		Prompt:      promptMain,
		Color:       "auto",
		HistoryFile: "~/.monk_history",
	}
}

func loadConfig() config {
	cfg := defaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	data, err := os.ReadFile(filepath.Join(home, configFile))
	if err != nil {
		return cfg
	}
	var loaded config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		log.DefaultLogger.Warn().Err(err).Str("file", configFile).Msg("ignoring malformed config")
		return cfg
	}
	if loaded.Prompt != "" {
		cfg.Prompt = loaded.Prompt
	}
	if loaded.Color != "" {
		cfg.Color = loaded.Color
	}
	if loaded.HistoryFile != "" {
		cfg.HistoryFile = loaded.HistoryFile
	}
	return cfg
}

func (c config) colorEnabled() bool {
	switch c.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

func (c config) historyPath() string {
	p := c.HistoryFile
	if len(p) >= 2 && p[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[2:])
		}
	}
	return p
}
