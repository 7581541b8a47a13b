package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/zjrosen/tuitour/internal/cachemanager"
	"github.com/zjrosen/tuitour/internal/catalog"
	"github.com/zjrosen/tuitour/internal/content"
	"github.com/zjrosen/tuitour/internal/highlight"
	"github.com/zjrosen/tuitour/internal/log"
	"github.com/zjrosen/tuitour/internal/markdown"
	"github.com/zjrosen/tuitour/internal/selection"
)

var (
	showFull  bool
	showPlain bool
	showWidth int
)

var showCmd = &cobra.Command{
	Use:   "show <title>",
	Short: "Print a demo's description and code",
	Long: `Print one demo without starting the interactive tour.

The title is matched case-insensitively. The code section is expanded;
the live example is only available in the tour.

Examples:
  tuitour show grid
  tuitour show view --full
  tuitour show stacks --plain --width 60 > stacks.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := setup("show")
		if err != nil {
			return err
		}
		defer rt.Close()

		dark := cfg.UI.IsDark(lipgloss.HasDarkBackground())
		return renderDemo(cmd.OutOrStdout(), rt.catalog, args[0], showOptions{
			Full:      showFull,
			Plain:     showPlain,
			Width:     showWidth,
			Dark:      dark,
			CodeStyle: cfg.UI.CodeStyle(dark),
		})
	},
}

func init() {
	showCmd.Flags().BoolVar(&showFull, "full", false, "Show the full code sample when the demo has one")
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Disable colours and markdown styling")
	showCmd.Flags().IntVarP(&showWidth, "width", "w", 80, "Output width in columns")
	rootCmd.AddCommand(showCmd)
}

type showOptions struct {
	Full      bool
	Plain     bool
	Width     int
	Dark      bool
	CodeStyle string
}

func renderDemo(w io.Writer, c *catalog.Catalog, title string, opts showOptions) error {
	d, err := c.FindByTitle(title)
	if err != nil {
		return err
	}

	st := selection.New(c).Select(d).ToggleCode()
	if opts.Full {
		if !d.HasFullVariant() {
			return fmt.Errorf("%q has no full code sample", d.Title)
		}
		st = st.ToggleCodeVariant()
	}

	width := max(opts.Width, 20)
	mdStyle := markdown.StyleLight
	if opts.Dark {
		mdStyle = markdown.StyleDark
	}

	var hl content.CodeHighlighter
	if opts.Plain {
		mdStyle = markdown.StyleASCII
		lipgloss.SetColorProfile(termenv.Ascii)
	} else if h, err := highlight.New(opts.CodeStyle, ""); err == nil {
		hl = h
	} else {
		log.ErrorErr(log.CatUI, "code highlighter unavailable, showing plain code", err)
	}

	var md content.MarkdownRenderer
	if r, err := markdown.New(content.ContentWidth(width), mdStyle); err == nil {
		md = r
	}

	cache := cachemanager.NewInMemoryCacheManager[string, string](
		"show", cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval)
	r := content.NewRenderer(md, hl, cache, content.Options{Width: width, Dark: opts.Dark, Static: true})

	vm := content.Derive(st)
	_, err = fmt.Fprintln(w, r.Render(vm, content.Frame{}))
	return err
}
