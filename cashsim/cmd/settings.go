package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/cashsim/feed"
	"github.com/sarchlab/cashsim/playback"
)

// settings is the optional YAML settings file. It carries the deployment
// specific pieces: the feed control tokens and the event types shown as
// alerts.
type settings struct {
	Tokens     feed.Tokens `yaml:"tokens"`
	AlertTypes []string    `yaml:"alertTypes"`
}

func defaultSettings() settings {
	return settings{
		Tokens:     feed.DefaultTokens(),
		AlertTypes: playback.DefaultAlertTypes,
	}
}

func loadSettings(path string) (settings, error) {
	s := defaultSettings()

	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("reading settings file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("parsing settings file: %w", err)
	}

	return s, nil
}
