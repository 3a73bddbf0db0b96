package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SubtitleStyle holds the overlay styling controls of the editor.
type SubtitleStyle struct {
	FontSize   string `yaml:"font_size"` // S, M, L
	FontFamily string `yaml:"font_family"`
	Color      string `yaml:"color"`
	Background bool   `yaml:"background"`
	Position   string `yaml:"position"` // top, bottom
}

// Config holds the session defaults for the editor workspace.
type Config struct {
	// Voiceover
	Voice        string   `yaml:"voice"`
	VoiceOptions []string `yaml:"voice_options"`

	// Rendering
	RenderMode string        `yaml:"render_mode"` // subtitles, voice, both
	Style      SubtitleStyle `yaml:"style"`

	// Mixing
	OriginalVolume int `yaml:"original_volume"`
	OverlayVolume  int `yaml:"overlay_volume"`

	// Editing
	SegmentSpanSeconds int    `yaml:"segment_span_seconds"`
	PlaceholderText    string `yaml:"placeholder_text"`
}

// Default returns the editor defaults used when no config file exists.
func Default() *Config {
	return &Config{
		Voice:        "nova",
		VoiceOptions: []string{"nova", "atlas", "echo"},
		RenderMode:   "both",
		Style: SubtitleStyle{
			FontSize:   "M",
			FontFamily: "Inter",
			Color:      "#ffffff",
			Background: true,
			Position:   "bottom",
		},
		OriginalVolume:     70,
		OverlayVolume:      75,
		SegmentSpanSeconds: 3,
		PlaceholderText:    "New subtitle line...",
	}
}

// Load reads a YAML config file and overlays it on the defaults.
// Unknown voice or render mode values fall back to the defaults rather
// than failing the session.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file at %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	defaults := Default()

	if len(c.VoiceOptions) == 0 {
		c.VoiceOptions = defaults.VoiceOptions
	}
	if !contains(c.VoiceOptions, c.Voice) {
		c.Voice = c.VoiceOptions[0]
	}
	switch c.RenderMode {
	case "subtitles", "voice", "both":
	default:
		c.RenderMode = defaults.RenderMode
	}
	switch c.Style.Position {
	case "top", "bottom":
	default:
		c.Style.Position = defaults.Style.Position
	}
	if c.SegmentSpanSeconds <= 0 {
		c.SegmentSpanSeconds = defaults.SegmentSpanSeconds
	}
	if c.PlaceholderText == "" {
		c.PlaceholderText = defaults.PlaceholderText
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
