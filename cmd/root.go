package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/tuitour/internal/app"
	"github.com/zjrosen/tuitour/internal/catalog"
	"github.com/zjrosen/tuitour/internal/config"
	"github.com/zjrosen/tuitour/internal/fetch"
	"github.com/zjrosen/tuitour/internal/linkviewer"
	"github.com/zjrosen/tuitour/internal/log"
	"github.com/zjrosen/tuitour/internal/preview"
	"github.com/zjrosen/tuitour/internal/tracing"
	"github.com/zjrosen/tuitour/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const defaultConfigPath = ".tuitour/config.yaml"

var (
	version     = "dev"
	cfgFile     string
	catalogFile string
	demoTitle   string
	debugFlag   bool
	cfg         = config.Defaults()
)

var rootCmd = &cobra.Command{
	Use:   "tuitour",
	Short: "A guided terminal tour of UI building blocks",
	Long: `tuitour walks through a catalog of small interface demos. Each demo has
a description with links, a live example you can interact with and its code.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/tuitour/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "",
		"read demos from this YAML file instead of the built-in catalog")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"write debug.log and enable the log overlay (ctrl+x)")
	rootCmd.Flags().StringVar(&demoTitle, "demo", "",
		"preselect a demo by title")
}

func initConfig() {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .tuitour/config.yaml (current directory)
		// 2. ~/.config/tuitour/config.yaml (user config)
		if _, err := os.Stat(defaultConfigPath); err == nil {
			viper.SetConfigFile(defaultConfigPath)
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "tuitour"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(defaultConfigPath); writeErr == nil {
				viper.SetConfigFile(defaultConfigPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// debugEnabled reports whether --debug or TUITOUR_DEBUG asks for logging.
func debugEnabled() bool {
	return debugFlag || os.Getenv("TUITOUR_DEBUG") != ""
}

// runtime holds the collaborators shared by every command.
type runtime struct {
	catalog  *catalog.Catalog
	fetcher  fetch.Fetcher
	provider *tracing.Provider
	cleanup  func()
}

func (r runtime) Close() {
	if r.provider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := r.provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatConfig, "tracing shutdown failed", err)
		}
	}
	if r.cleanup != nil {
		r.cleanup()
	}
}

// setup validates the configuration and builds tracing, the fetcher and
// the catalog.
func setup(source string) (runtime, error) {
	var rt runtime
	if debugEnabled() {
		cleanup, err := log.InitWithTeaLog("debug.log", "tuitour")
		if err != nil {
			return rt, fmt.Errorf("opening debug log: %w", err)
		}
		rt.cleanup = cleanup
	}

	if err := config.Validate(cfg); err != nil {
		rt.Close()
		return runtime{}, fmt.Errorf("invalid configuration: %w", err)
	}

	provider, err := tracing.NewProvider(cfg.Tracing.ProviderConfig())
	if err != nil {
		log.ErrorErr(log.CatConfig, "tracing disabled", err)
		provider = tracing.Noop()
	}
	rt.provider = provider
	rt.fetcher = fetch.New(fetch.WithTracer(provider.Tracer()), fetch.WithSource(source))

	c, err := loadCatalog(catalogFile, preview.Deps{
		Fetcher:      rt.fetcher,
		CountriesURL: cfg.Network.CountriesURL,
	})
	if err != nil {
		rt.Close()
		return runtime{}, err
	}
	rt.catalog = c
	return rt, nil
}

// loadCatalog reads path when set and the embedded catalog otherwise.
func loadCatalog(path string, deps preview.Deps) (*catalog.Catalog, error) {
	reg := preview.DefaultRegistry(deps)
	if path == "" {
		return catalog.Load(reg)
	}
	f, err := os.Open(path) //nolint:gosec // G304: catalog path is a user flag
	if err != nil {
		return nil, fmt.Errorf("opening catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := catalog.LoadFrom(f, reg)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

func runApp(_ *cobra.Command, _ []string) error {
	rt, err := setup("app")
	if err != nil {
		return err
	}
	defer rt.Close()

	if err := styles.ApplyTheme(styles.ThemeConfig{
		Mode:   cfg.UI.Theme,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return fmt.Errorf("invalid theme configuration: %w", err)
	}

	// Clickable regions (carousel, links, start button) resolve through
	// the global zone manager.
	zone.NewGlobal()

	model, err := app.New(app.Options{
		Catalog:        rt.catalog,
		Config:         cfg,
		ConfigPath:     viper.ConfigFileUsed(),
		DarkBackground: lipgloss.HasDarkBackground(),
		Debug:          debugEnabled(),
		InitialDemo:    demoTitle,
		Fetcher:        rt.fetcher,
		Clipboard:      linkviewer.SystemClipboard{},
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		model = fm
	}

	// Clean up watcher and preview resources
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
