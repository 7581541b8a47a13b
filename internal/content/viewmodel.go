// Package content turns a selection into the three sections of the demo
// screen. Derive is a pure projection of state; Renderer draws the result.
package content

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/zjrosen/tuitour/internal/markdown"
	"github.com/zjrosen/tuitour/internal/selection"
)

// Placeholder texts.
const (
	NoSubtitle      = "N/A"
	NoDescription   = "No description"
	NoExample       = "No example here"
	NoCode          = "No demo code presented"
	VariantFull     = "Full"
	VariantShort    = "Pure"
	defaultCodeLang = "go"
)

// Header is the always-present top section.
type Header struct {
	Title       string
	Subtitle    string
	Icon        string
	Description string
	Links       []markdown.Link
	Expanded    bool
}

// Example is the live preview section.
type Example struct {
	Visible     bool
	Placeholder string
	Expanded    bool
}

// Code is the code sample section.
type Code struct {
	Visible      bool
	Placeholder  string
	Text         string
	Language     string
	ShowToggle   bool
	ShowFull     bool
	VariantLabel string
	DiffSummary  string
	Expanded     bool
}

// ViewModel is everything the renderer needs, derived from a State.
type ViewModel struct {
	DescriptorID uuid.UUID // uuid.Nil without a selection
	Header       Header
	Example      Example
	Code         Code
}

// Derive projects st into a ViewModel. It performs no I/O.
func Derive(st selection.State) ViewModel {
	vm := ViewModel{
		Header: Header{
			Subtitle:    NoSubtitle,
			Description: NoDescription,
			Expanded:    st.HeaderExpanded(),
		},
		Example: Example{
			Visible:  st.HasExample(),
			Expanded: st.ExampleExpanded(),
		},
		Code: Code{
			Visible:  st.HasCode(),
			Text:     st.CurrentCode(),
			Language: defaultCodeLang,
			ShowFull: st.ShowFull(),
			Expanded: st.CodeExpanded(),
		},
	}
	if !vm.Example.Visible {
		vm.Example.Placeholder = NoExample
	}
	if !vm.Code.Visible {
		vm.Code.Placeholder = NoCode
	}
	vm.Code.VariantLabel = VariantShort
	if st.ShowFull() {
		vm.Code.VariantLabel = VariantFull
	}

	d, ok := st.Selected()
	if !ok {
		return vm
	}
	vm.DescriptorID = d.ID()
	vm.Header.Title = d.Title
	vm.Header.Icon = d.Icon
	if d.Subtitle != "" {
		vm.Header.Subtitle = d.Subtitle
	}
	if d.Description != "" {
		vm.Header.Description = d.Description
		vm.Header.Links = markdown.Links(d.Description)
	}
	vm.Code.ShowToggle = d.HasFullVariant()
	if vm.Code.ShowToggle {
		vm.Code.DiffSummary = DiffSummary(d.Code, d.CodeFull)
	}
	return vm
}

// DiffSummary reports how many lines full adds to and removes from short,
// formatted as "+N/-M lines".
func DiffSummary(short, full string) string {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(withFinalNewline(short), withFinalNewline(full))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var added, removed int
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			added += countLines(d.Text)
		case diffmatchpatch.DiffDelete:
			removed += countLines(d.Text)
		}
	}
	return fmt.Sprintf("+%d/-%d lines", added, removed)
}

func withFinalNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}
