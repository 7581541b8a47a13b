package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/tuitour/internal/tracing"
)

func loadConfigFromYAML(t *testing.T, content string) Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	cfg, err := Load(path)
	require.NoError(t, err)
	return cfg
}

func TestDefaults(t *testing.T) {
	d := Defaults()
	require.Equal(t, ThemeAuto, d.UI.Theme)
	require.True(t, d.UI.ShowStatusBar)
	require.Equal(t, "monokai", d.UI.CodeStyleDark)
	require.Equal(t, "github", d.UI.CodeStyleLight)
	require.Equal(t, DefaultCountriesURL, d.Network.CountriesURL)
	require.False(t, d.Tracing.Enabled)
	require.NoError(t, Validate(d))
}

func TestDefaultConfigTemplate_ParsesAndMatchesDefaults(t *testing.T) {
	var raw map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(DefaultConfigTemplate()), &raw))

	cfg := loadConfigFromYAML(t, DefaultConfigTemplate())
	d := Defaults()
	require.Equal(t, d.UI, cfg.UI)
	require.Equal(t, d.Network, cfg.Network)
	require.Equal(t, d.Tracing, cfg.Tracing)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg := loadConfigFromYAML(t, "ui:\n  theme: light\n")
	require.Equal(t, ThemeLight, cfg.UI.Theme)
	require.True(t, cfg.UI.ShowStatusBar)
	require.Equal(t, DefaultCountriesURL, cfg.Network.CountriesURL)
}

func TestLoad_InvalidFileIsRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ui:\n  theme: sepia\n"), 0o600))

	_, err := Load(path)
	require.ErrorContains(t, err, "ui.theme")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*Config) {}},
		{name: "empty theme uses default", mutate: func(c *Config) { c.UI.Theme = "" }},
		{name: "unknown theme", mutate: func(c *Config) { c.UI.Theme = "sepia" }, wantErr: "ui.theme"},
		{name: "relative url", mutate: func(c *Config) { c.Network.CountriesURL = "countries.json" }, wantErr: "absolute http(s) URL"},
		{name: "ftp url", mutate: func(c *Config) { c.Network.CountriesURL = "ftp://example.com/c.json" }, wantErr: "absolute http(s) URL"},
		{name: "unparseable url", mutate: func(c *Config) { c.Network.CountriesURL = "http://[::1" }, wantErr: "network.countries_url"},
		{name: "sample rate above one", mutate: func(c *Config) { c.Tracing.SampleRate = 1.5 }, wantErr: "sample_rate"},
		{name: "sample rate negative", mutate: func(c *Config) { c.Tracing.SampleRate = -0.1 }, wantErr: "sample_rate"},
		{name: "unknown exporter", mutate: func(c *Config) { c.Tracing.Exporter = "zipkin" }, wantErr: "tracing.exporter"},
		{
			name: "otlp without endpoint",
			mutate: func(c *Config) {
				c.Tracing.Enabled = true
				c.Tracing.Exporter = tracing.ExporterOTLP
				c.Tracing.OTLPEndpoint = ""
			},
			wantErr: "otlp_endpoint",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(&cfg)
			err := Validate(cfg)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestFlattenedColors(t *testing.T) {
	theme := ThemeConfig{Colors: map[string]any{
		"text": map[string]any{"primary": "#FF0000"},
		"link": "#00FF00",
		"accent": map[any]any{
			"primary": "#0000FF",
		},
	}}

	require.Equal(t, map[string]string{
		"text.primary":   "#FF0000",
		"link":           "#00FF00",
		"accent.primary": "#0000FF",
	}, theme.FlattenedColors())
}

func TestLoad_NestedColors(t *testing.T) {
	cfg := loadConfigFromYAML(t, `
theme:
  colors:
    text:
      primary: "#FF0000"
    "accent.primary": "#00FF00"
`)
	colors := cfg.Theme.FlattenedColors()
	require.Equal(t, "#FF0000", colors["text.primary"])
	require.Equal(t, "#00FF00", colors["accent.primary"])
}

func TestUIConfig_IsDark(t *testing.T) {
	require.True(t, UIConfig{Theme: ThemeDark}.IsDark(false))
	require.False(t, UIConfig{Theme: ThemeLight}.IsDark(true))
	require.True(t, UIConfig{Theme: ThemeAuto}.IsDark(true))
	require.False(t, UIConfig{}.IsDark(false))
}

func TestUIConfig_CodeStyle(t *testing.T) {
	ui := UIConfig{CodeStyleDark: "dracula", CodeStyleLight: "solarized-light"}
	require.Equal(t, "dracula", ui.CodeStyle(true))
	require.Equal(t, "solarized-light", ui.CodeStyle(false))
	require.Equal(t, "monokai", UIConfig{}.CodeStyle(true))
	require.Equal(t, "github", UIConfig{}.CodeStyle(false))
}

func TestTracingConfig_ProviderConfig(t *testing.T) {
	pc := TracingConfig{Enabled: true, Exporter: "stdout", SampleRate: 0.5}.ProviderConfig()
	require.True(t, pc.Enabled)
	require.Equal(t, "stdout", pc.Exporter)
	require.Equal(t, 0.5, pc.SampleRate)
	require.Equal(t, DefaultTracesFilePath(), pc.FilePath)
	require.Equal(t, tracing.DefaultServiceName, pc.ServiceName)

	explicit := TracingConfig{FilePath: "/tmp/t.jsonl"}.ProviderConfig()
	require.Equal(t, "/tmp/t.jsonl", explicit.FilePath)
	require.Equal(t, tracing.ExporterFile, explicit.Exporter)
}

func TestWriteDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, DefaultConfigTemplate(), string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSetDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	require.NoError(t, v.Unmarshal(&cfg))
	d := Defaults()
	require.Equal(t, d.UI, cfg.UI)
	require.Equal(t, d.Network, cfg.Network)
}
