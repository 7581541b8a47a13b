// Package config provides configuration types and defaults for tuitour.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/zjrosen/tuitour/internal/log"
	"github.com/zjrosen/tuitour/internal/tracing"
)

// Theme modes accepted in ui.theme.
const (
	ThemeAuto  = "auto"
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// DefaultCountriesURL serves the JSON list used by the concurrency preview.
const DefaultCountriesURL = "https://www.ralfebert.de/examples/v2/countries.json"

// Config holds all configuration options for tuitour.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Network NetworkConfig `mapstructure:"network"`
	Tracing TracingConfig `mapstructure:"tracing"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	Theme          string `mapstructure:"theme"` // "auto" (default), "dark" or "light"
	ShowStatusBar  bool   `mapstructure:"show_status_bar"`
	CodeStyleDark  string `mapstructure:"code_style_dark"`  // chroma style used on dark backgrounds
	CodeStyleLight string `mapstructure:"code_style_light"` // chroma style used on light backgrounds
}

// ThemeConfig holds colour overrides.
type ThemeConfig struct {
	// Colors overrides individual colour tokens. Both nested YAML and
	// quoted dot notation are accepted:
	//   colors:
	//     text:
	//       primary: "#FF0000"
	//     "accent.primary": "#00FF00"
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns the Colors map flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			// YAML sometimes produces map[any]any instead of map[string]any
			converted := make(map[string]any)
			for mk, mv := range val {
				if strKey, ok := mk.(string); ok {
					converted[strKey] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// NetworkConfig holds the remote endpoints used by live previews.
type NetworkConfig struct {
	CountriesURL string `mapstructure:"countries_url"`
}

// TracingConfig holds tracing configuration for remote fetches.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for the "file" exporter.
	// Default: ~/.config/tuitour/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for the "otlp" exporter.
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	SampleRate float64 `mapstructure:"sample_rate"`
}

// ProviderConfig converts the user settings into a tracing.Config.
// An empty file path falls back to DefaultTracesFilePath.
func (t TracingConfig) ProviderConfig() tracing.Config {
	out := tracing.DefaultConfig()
	out.Enabled = t.Enabled
	if t.Exporter != "" {
		out.Exporter = t.Exporter
	}
	out.FilePath = t.FilePath
	if out.FilePath == "" {
		out.FilePath = DefaultTracesFilePath()
	}
	if t.OTLPEndpoint != "" {
		out.OTLPEndpoint = t.OTLPEndpoint
	}
	out.SampleRate = t.SampleRate
	return out
}

// DefaultTracesFilePath returns ~/.config/tuitour/traces/traces.jsonl,
// or "" if the home dir is unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "tuitour", "traces", "traces.jsonl")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		UI: UIConfig{
			Theme:          ThemeAuto,
			ShowStatusBar:  true,
			CodeStyleDark:  "monokai",
			CodeStyleLight: "github",
		},
		Network: NetworkConfig{
			CountriesURL: DefaultCountriesURL,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     tracing.ExporterFile,
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// SetDefaults registers every default on v so partial files unmarshal
// into a complete Config.
func SetDefaults(v *viper.Viper) {
	d := Defaults()
	v.SetDefault("ui.theme", d.UI.Theme)
	v.SetDefault("ui.show_status_bar", d.UI.ShowStatusBar)
	v.SetDefault("ui.code_style_dark", d.UI.CodeStyleDark)
	v.SetDefault("ui.code_style_light", d.UI.CodeStyleLight)
	v.SetDefault("network.countries_url", d.Network.CountriesURL)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
}

// Load reads the config file at path into a fresh viper instance.
// Used on live reload, where the global viper state must not change.
func Load(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if err := ValidateUI(cfg.UI); err != nil {
		return err
	}
	if err := ValidateNetwork(cfg.Network); err != nil {
		return err
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateUI checks ui settings. Empty values use defaults.
func ValidateUI(ui UIConfig) error {
	switch ui.Theme {
	case "", ThemeAuto, ThemeDark, ThemeLight:
	default:
		return fmt.Errorf("ui.theme must be \"auto\", \"dark\", or \"light\", got %q", ui.Theme)
	}
	return nil
}

// ValidateNetwork checks that the countries URL is an absolute http(s) URL.
func ValidateNetwork(n NetworkConfig) error {
	if n.CountriesURL == "" {
		return nil
	}
	u, err := url.Parse(n.CountriesURL)
	if err != nil {
		return fmt.Errorf("network.countries_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("network.countries_url must be an absolute http(s) URL, got %q", n.CountriesURL)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
func ValidateTracing(t TracingConfig) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	if t.Exporter != "" {
		switch t.Exporter {
		case tracing.ExporterNone, tracing.ExporterFile, tracing.ExporterStdout, tracing.ExporterOTLP:
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
		}
	}

	if t.Enabled && t.Exporter == tracing.ExporterOTLP && t.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
	}
	return nil
}

// IsDark resolves ui.theme against the detected terminal background.
func (u UIConfig) IsDark(detected bool) bool {
	switch u.Theme {
	case ThemeDark:
		return true
	case ThemeLight:
		return false
	default:
		return detected
	}
}

// CodeStyle returns the chroma style name for the given background.
func (u UIConfig) CodeStyle(dark bool) string {
	if dark {
		if u.CodeStyleDark != "" {
			return u.CodeStyleDark
		}
		return "monokai"
	}
	if u.CodeStyleLight != "" {
		return u.CodeStyleLight
	}
	return "github"
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# tuitour configuration

# UI settings
ui:
  theme: auto               # auto (detect terminal background), dark, or light
  show_status_bar: true     # Show key hints at the bottom of the browser
  code_style_dark: monokai  # Chroma style for code on dark backgrounds
  code_style_light: github  # Chroma style for code on light backgrounds

# Colour overrides (hex). Saving this file re-applies colours live.
theme:
  colors: {}
  # colors:
  #   accent.primary: "#7D56F4"
  #   text.primary: "#FFFFFF"
  #   link: "#54A0FF"

# Remote endpoints used by live previews
network:
  countries_url: https://www.ralfebert.de/examples/v2/countries.json

# Tracing of remote fetches (link viewer, concurrency preview)
tracing:
  enabled: false
  exporter: file              # none, file, stdout, otlp
  # file_path: ~/.config/tuitour/traces/traces.jsonl
  otlp_endpoint: localhost:4317
  sample_rate: 1.0            # 0.0 - 1.0
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
