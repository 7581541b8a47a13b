// Package app contains the root application model.
package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/tuitour/internal/browser"
	"github.com/zjrosen/tuitour/internal/cachemanager"
	"github.com/zjrosen/tuitour/internal/catalog"
	"github.com/zjrosen/tuitour/internal/config"
	"github.com/zjrosen/tuitour/internal/fetch"
	"github.com/zjrosen/tuitour/internal/keys"
	"github.com/zjrosen/tuitour/internal/linkviewer"
	"github.com/zjrosen/tuitour/internal/log"
	"github.com/zjrosen/tuitour/internal/mode"
	"github.com/zjrosen/tuitour/internal/pubsub"
	"github.com/zjrosen/tuitour/internal/ui/logoverlay"
	"github.com/zjrosen/tuitour/internal/ui/styles"
	"github.com/zjrosen/tuitour/internal/ui/toaster"
	"github.com/zjrosen/tuitour/internal/watcher"
	"github.com/zjrosen/tuitour/internal/welcome"
)

// Options configure the application.
type Options struct {
	Catalog    *catalog.Catalog
	Config     config.Config
	ConfigPath string // watched for live theme changes when set

	// DarkBackground is the detected terminal background, used when
	// ui.theme is auto.
	DarkBackground bool
	Debug          bool   // enables the log overlay (ctrl+x)
	InitialDemo    string // preselected demo title

	Fetcher     fetch.Fetcher
	Clipboard   linkviewer.Clipboard
	RenderCache cachemanager.CacheManager[string, string]
}

// configReloadedMsg carries the result of re-reading the config file.
type configReloadedMsg struct {
	cfg config.Config
	err error
}

// Model is the root application state.
type Model struct {
	opts  Options
	shell mode.Shell

	welcome welcome.Model
	browser browser.Model

	width  int
	height int

	// Centralized toaster - owned by app, not individual screens
	toaster toaster.Model

	logOverlay  logoverlay.Model
	logListener *log.LogListener
	logCancel   context.CancelFunc

	// Config watcher for live theme reloads (pubsub-based)
	watcherHandle   *watcher.Watcher
	watcherCancel   context.CancelFunc
	watcherListener *pubsub.ContinuousListener[watcher.Event]
}

// New creates the application model on the welcome screen. An unknown
// InitialDemo is reported here rather than on entering the browser.
func New(opts Options) (Model, error) {
	if opts.Catalog == nil {
		opts.Catalog = catalog.New()
	}
	if opts.InitialDemo != "" {
		if _, err := opts.Catalog.FindByTitle(opts.InitialDemo); err != nil {
			return Model{}, fmt.Errorf("--demo: %w", err)
		}
	}
	if opts.RenderCache == nil {
		opts.RenderCache = cachemanager.NewInMemoryCacheManager[string, string](
			"render", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	}

	m := Model{
		opts:       opts,
		shell:      mode.NewShell(),
		welcome:    welcome.New(),
		toaster:    toaster.New(),
		logOverlay: logoverlay.New(),
	}

	if opts.Debug {
		ctx, cancel := context.WithCancel(context.Background())
		m.logListener = log.NewListener(ctx)
		m.logCancel = cancel
	}

	if opts.ConfigPath != "" {
		w, err := watcher.New(watcher.DefaultConfig(opts.ConfigPath))
		if err == nil {
			if err := w.Start(); err == nil {
				ctx, cancel := context.WithCancel(context.Background())
				m.watcherHandle = w
				m.watcherCancel = cancel
				m.watcherListener = pubsub.NewContinuousListener(ctx, w.Broker())
			} else {
				_ = w.Stop()
				log.Warn(log.CatWatcher, "config watcher not started", "error", err)
			}
		} else {
			log.Warn(log.CatWatcher, "config watcher unavailable", "error", err)
		}
	}
	return m, nil
}

// Init starts the log and watcher listeners.
func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.watcherListener != nil {
		cmds = append(cmds, m.watcherListener.Listen())
	}
	if m.logListener != nil {
		cmds = append(cmds, m.logListener.Listen())
	}
	return tea.Batch(cmds...)
}

// Mode returns the current application mode.
func (m Model) Mode() mode.AppMode { return m.shell.Mode() }

// Browser returns the demo browser. It is the zero value before Start.
func (m Model) Browser() browser.Model { return m.browser }

// Toast returns the visible toast message, or "".
func (m Model) Toast() string { return m.toaster.Message() }

// Close stops the watcher and listeners and releases the live preview.
func (m Model) Close() error {
	if m.logCancel != nil {
		m.logCancel()
	}
	if m.watcherCancel != nil {
		m.watcherCancel()
	}
	if m.shell.Mode() == mode.ModeDemo {
		m.browser.Close()
	}
	if m.watcherHandle != nil {
		return m.watcherHandle.Stop()
	}
	return nil
}

func (m Model) isDark() bool {
	return m.opts.Config.UI.IsDark(m.opts.DarkBackground)
}

// start enters the demo browser. It does nothing after the first call.
func (m Model) start() (tea.Model, tea.Cmd) {
	shell, changed := m.shell.Start()
	if !changed {
		return m, nil
	}

	dark := m.isDark()
	b, err := browser.New(browser.Config{
		Catalog:       m.opts.Catalog,
		Fetcher:       m.opts.Fetcher,
		Clipboard:     m.opts.Clipboard,
		Cache:         m.opts.RenderCache,
		Dark:          dark,
		CodeStyle:     m.opts.Config.UI.CodeStyle(dark),
		ShowStatusBar: m.opts.Config.UI.ShowStatusBar,
		InitialTitle:  m.opts.InitialDemo,
	})
	if err != nil {
		log.ErrorErr(log.CatMode, "entering browser failed", err)
		return m, toaster.Show(err.Error(), toaster.StyleError)
	}

	m.shell = shell
	next, _ := b.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	m.browser = next.(browser.Model)
	return m, m.browser.Init()
}

func (m Model) reloadConfig() tea.Cmd {
	path := m.opts.ConfigPath
	return func() tea.Msg {
		cfg, err := config.Load(path)
		return configReloadedMsg{cfg: cfg, err: err}
	}
}

func (m Model) applyConfig(cfg config.Config) (Model, error) {
	if err := styles.ApplyTheme(styles.ThemeConfig{
		Mode:   cfg.UI.Theme,
		Colors: cfg.Theme.FlattenedColors(),
	}); err != nil {
		return m, fmt.Errorf("applying theme: %w", err)
	}
	m.opts.Config = cfg
	if err := m.opts.RenderCache.Flush(context.Background()); err != nil {
		log.Warn(log.CatCache, "render cache flush failed", "error", err)
	}
	if m.shell.Mode() == mode.ModeDemo {
		dark := m.isDark()
		m.browser = m.browser.ApplyTheme(dark, cfg.UI.CodeStyle(dark), cfg.UI.ShowStatusBar)
	}
	return m, nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.welcome = m.welcome.SetSize(msg.Width, msg.Height)
		m.logOverlay.SetSize(msg.Width, msg.Height)
		if m.shell.Mode() == mode.ModeDemo {
			next, cmd := m.browser.Update(msg)
			m.browser = next.(browser.Model)
			return m, cmd
		}
		return m, nil

	case log.LogEvent:
		var cmd tea.Cmd
		m.logOverlay, cmd = m.logOverlay.Update(msg)
		if m.logListener != nil {
			return m, tea.Batch(cmd, m.logListener.Listen())
		}
		return m, cmd

	case pubsub.Event[watcher.Event]:
		log.Info(log.CatWatcher, "config changed, reloading", "path", msg.Payload.Path)
		return m, tea.Batch(m.reloadConfig(), m.watcherListener.Listen())

	case configReloadedMsg:
		if msg.err == nil {
			var err error
			m, err = m.applyConfig(msg.cfg)
			msg.err = err
		}
		if msg.err != nil {
			log.ErrorErr(log.CatConfig, "config reload failed", msg.err)
			return m, toaster.Show("Config error: "+msg.err.Error(), toaster.StyleError)
		}
		return m, toaster.Show("Config reloaded", toaster.StyleInfo)

	case toaster.ShowMsg, toaster.DismissMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Update(msg)
		return m, cmd

	case logoverlay.CloseMsg:
		return m, nil

	case welcome.StartMsg:
		return m.start()

	case tea.MouseMsg:
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if m.opts.Debug && key.Matches(msg, keys.App.LogOverlay) {
			m.logOverlay.Toggle()
			return m, nil
		}
		if m.logOverlay.Visible() {
			var cmd tea.Cmd
			m.logOverlay, cmd = m.logOverlay.Update(msg)
			return m, cmd
		}
		if key.Matches(msg, keys.App.ForceQuit) {
			if m.shell.Mode() == mode.ModeDemo {
				m.browser = m.browser.Close()
			}
			return m, tea.Quit
		}
		if m.shell.Mode() == mode.ModeWelcome && key.Matches(msg, keys.Welcome.Quit) {
			return m, tea.Quit
		}
	}

	// Delegate everything else to the active screen
	switch m.shell.Mode() {
	case mode.ModeDemo:
		next, cmd := m.browser.Update(msg)
		m.browser = next.(browser.Model)
		return m, cmd
	default:
		var cmd tea.Cmd
		m.welcome, cmd = m.welcome.Update(msg)
		return m, cmd
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var view string
	switch m.shell.Mode() {
	case mode.ModeDemo:
		view = m.browser.View()
	default:
		view = m.welcome.View()
	}
	view = m.toaster.Overlay(view, m.width, m.height)
	view = m.logOverlay.Overlay(view)
	return zone.Scan(view)
}
