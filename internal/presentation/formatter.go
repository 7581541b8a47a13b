package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/zjrosen/tuitour/internal/icons"
)

// Formatter handles output formatting
type Formatter struct {
	writer io.Writer
}

// NewFormatter creates a new formatter
func NewFormatter(writer io.Writer) *Formatter {
	return &Formatter{
		writer: writer,
	}
}

// FormatDemos formats a list of demos as JSON
func (f *Formatter) FormatDemos(demos []DemoDTO) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(demos)
}

// FormatDemoTable formats a list of demos as a table for humans
func (f *Formatter) FormatDemoTable(demos []DemoDTO) error {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("#", "", "Title", "Subtitle", "Code", "Example", "Links").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, d := range demos {
		t.Row(
			strconv.Itoa(d.Index+1),
			icons.Glyph(d.Icon),
			d.Title,
			d.Subtitle,
			codeColumn(d),
			yesNo(d.HasExample),
			strconv.Itoa(len(d.Links)),
		)
	}
	_, err := fmt.Fprintln(f.writer, t.Render())
	return err
}

func codeColumn(d DemoDTO) string {
	switch {
	case d.HasFullVariant:
		return "pure+full"
	case d.HasCode:
		return "pure"
	default:
		return "-"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "-"
}
