package preview

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/tuitour/internal/fetch"
	"github.com/zjrosen/tuitour/internal/log"
	"github.com/zjrosen/tuitour/internal/ui/styles"
)

// Country is one entry of the countries document.
type Country struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// countriesLoadedMsg carries the result of one fetch. Instance and seq
// identify the preview and the request so stale results can be dropped.
type countriesLoadedMsg struct {
	instance  uint64
	seq       int
	countries []Country
	err       error
}

var nextInstance atomic.Uint64

// Concurrency loads a country list in the background.
type Concurrency struct {
	base
	fetcher   fetch.Fetcher
	url       string
	instance  uint64
	seq       int
	cancel    context.CancelFunc
	loading   bool
	closed    bool
	countries []Country
	lastErr   error
	spinner   spinner.Model
	offset    int
}

// NewConcurrency creates the countries preview. A nil fetcher uses the
// default traced client.
func NewConcurrency(f fetch.Fetcher, url string) *Concurrency {
	if f == nil {
		f = fetch.New(fetch.WithSource("preview"))
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.SpinnerColor)
	return &Concurrency{
		fetcher:  f,
		url:      url,
		instance: nextInstance.Add(1),
		spinner:  sp,
	}
}

// Init starts the first load.
func (p *Concurrency) Init() tea.Cmd {
	return p.reload()
}

func (p *Concurrency) SetSize(w, h int) Preview { p.setSize(w, h); return p }

// Close cancels any in-flight fetch. Results arriving later are ignored.
func (p *Concurrency) Close() {
	p.closed = true
	p.loading = false
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// reload cancels any running fetch and starts a new one.
func (p *Concurrency) reload() tea.Cmd {
	if p.closed {
		return nil
	}
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.seq++
	// A running load already has a tick chain.
	ticking := p.loading
	p.loading = true

	instance, seq, fetcher, url := p.instance, p.seq, p.fetcher, p.url
	load := func() tea.Msg {
		countries, err := loadCountries(ctx, fetcher, url)
		return countriesLoadedMsg{instance: instance, seq: seq, countries: countries, err: err}
	}
	if ticking {
		return load
	}
	return tea.Batch(load, p.spinner.Tick)
}

func loadCountries(ctx context.Context, f fetch.Fetcher, url string) ([]Country, error) {
	body, err := f.Get(ctx, url)
	if err != nil {
		return nil, err
	}
	var countries []Country
	if err := json.Unmarshal(body, &countries); err != nil {
		return nil, fmt.Errorf("decoding countries: %w", err)
	}
	return countries, nil
}

func (p *Concurrency) Update(msg tea.Msg) (Preview, tea.Cmd) {
	switch msg := msg.(type) {
	case countriesLoadedMsg:
		if p.closed || msg.instance != p.instance || msg.seq != p.seq {
			return p, nil
		}
		p.loading = false
		if p.cancel != nil {
			p.cancel()
			p.cancel = nil
		}
		if msg.err != nil {
			// Keep whatever was loaded before.
			p.lastErr = msg.err
			if !errors.Is(msg.err, context.Canceled) {
				log.ErrorErr(log.CatFetch, "loading countries failed", msg.err, "url", p.url)
			}
			return p, nil
		}
		p.lastErr = nil
		p.countries = msg.countries
		p.offset = 0
		log.Debug(log.CatFetch, "countries loaded", "count", len(msg.countries))
		return p, nil

	case spinner.TickMsg:
		if !p.loading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spinner, cmd = p.spinner.Update(msg)
		return p, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			return p, p.reload()
		case "j", "down":
			if p.offset < len(p.countries)-1 {
				p.offset++
			}
		case "k", "up":
			if p.offset > 0 {
				p.offset--
			}
		}
	}
	return p, nil
}

// Countries returns the currently shown list.
func (p *Concurrency) Countries() []Country { return p.countries }

// Loading reports whether a fetch is in flight.
func (p *Concurrency) Loading() bool { return p.loading }

// Err returns the last load error, cleared by a successful load.
func (p *Concurrency) Err() error { return p.lastErr }

func (p *Concurrency) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Countries"))
	if p.loading {
		b.WriteString(" " + p.spinner.View() + " loading")
	}
	b.WriteString("\n")

	rows := max(p.height-3, 5)
	if len(p.countries) == 0 && !p.loading {
		b.WriteString(styles.PlaceholderStyle.Render("No countries loaded") + "\n")
	}
	end := min(p.offset+rows, len(p.countries))
	for _, c := range p.countries[p.offset:end] {
		b.WriteString(fmt.Sprintf("%-4s %s\n", c.ID, c.Name))
	}
	if p.lastErr != nil {
		b.WriteString(styles.ErrorStyle.Render("Load failed, showing previous list") + "\n")
	}
	b.WriteString(styles.HintStyle.Render(fmt.Sprintf("%d countries  [r] reload  [j/k] scroll", len(p.countries))))
	return b.String()
}
