// Package highlight colours code samples for the terminal using chroma.
package highlight

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/x/ansi"
)

// DefaultLanguage is used when a sample does not name its language.
const DefaultLanguage = "go"

// ErrEmpty is returned for empty input.
var ErrEmpty = errors.New("nothing to highlight")

// Highlighter renders code with a fixed chroma style and formatter.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
	name      string
}

// New returns a highlighter for the named chroma style. formatter is a
// chroma formatter name such as "terminal256"; empty means "terminal256".
func New(style, formatter string) (*Highlighter, error) {
	s, ok := styles.Registry[strings.ToLower(style)]
	if !ok {
		return nil, fmt.Errorf("unknown code style %q", style)
	}
	if formatter == "" {
		formatter = "terminal256"
	}
	f, ok := formatters.Registry[formatter]
	if !ok {
		return nil, fmt.Errorf("unknown formatter %q", formatter)
	}
	return &Highlighter{style: s, formatter: f, name: s.Name}, nil
}

// StyleName returns the chroma style in use.
func (h *Highlighter) StyleName() string { return h.name }

// Highlight colours code written in lang. Unknown languages fall back to
// chroma's plain lexer.
func (h *Highlighter) Highlight(code, lang string) (string, error) {
	if code == "" {
		return "", ErrEmpty
	}
	if lang == "" {
		lang = DefaultLanguage
	}
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising %s: %w", lang, err)
	}
	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, it); err != nil {
		return "", fmt.Errorf("formatting %s: %w", lang, err)
	}
	return trimFinalNewline(b.String()), nil
}

// trimFinalNewline drops the newline chroma appends to the last line while
// keeping any trailing reset sequence.
func trimFinalNewline(s string) string {
	i := strings.LastIndex(s, "\n")
	if i < 0 || ansi.Strip(s[i+1:]) != "" {
		return s
	}
	return s[:i] + s[i+1:]
}
