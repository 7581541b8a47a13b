package browser

import (
	"fmt"
	"strings"

	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/tuitour/internal/icons"
	"github.com/zjrosen/tuitour/internal/ui/styles"
)

const (
	maxTitleWidth = 22
	carouselGap   = 1
	moreLeft      = "‹ "
	moreRight     = " ›"
)

// CarouselZoneID returns the bubblezone ID of carousel item i (0-based).
func CarouselZoneID(i int) string {
	return fmt.Sprintf("demo-%d", i)
}

// carouselLabel is the unstyled text of one item.
func carouselLabel(icon, title string) string {
	return icons.Glyph(icon) + " " + runewidth.Truncate(title, maxTitleWidth, "…")
}

// visibleRange returns the half-open range [start, end) of items drawn in
// avail cells. start is moved from offset only as far as needed to keep
// selected on screen.
func visibleRange(widths []int, selected, offset, avail int) (int, int) {
	n := len(widths)
	if n == 0 {
		return 0, 0
	}
	selected = min(max(selected, 0), n-1)
	offset = min(max(offset, 0), n-1)
	if selected < offset {
		offset = selected
	}
	for offset < selected && spanWidth(widths[offset:selected+1]) > avail {
		offset++
	}

	end, used := offset, 0
	for end < n {
		w := widths[end]
		if end > offset {
			w += carouselGap
		}
		if used+w > avail && end > offset {
			break
		}
		used += w
		end++
	}
	return offset, end
}

func spanWidth(widths []int) int {
	total := 0
	for i, w := range widths {
		total += w
		if i > 0 {
			total += carouselGap
		}
	}
	return total
}

// scrollCarousel recomputes the first visible item for the current selection.
func (m *Model) scrollCarousel() {
	descs := m.state.Catalog().All()
	widths := make([]int, len(descs))
	frame := styles.CarouselItemStyle.GetHorizontalFrameSize()
	for i, d := range descs {
		widths[i] = runewidth.StringWidth(carouselLabel(d.Icon, d.Title)) + frame
	}
	avail := max(m.width-runewidth.StringWidth(moreLeft)-runewidth.StringWidth(moreRight), 1)
	m.carouselStart, m.carouselEnd = visibleRange(widths, m.state.Index(), m.carouselStart, avail)
}

// carouselView draws the visible items with markers for hidden ones.
func (m Model) carouselView() string {
	descs := m.state.Catalog().All()
	if len(descs) == 0 {
		return styles.PlaceholderStyle.Render("No demos")
	}

	var b strings.Builder
	if m.carouselStart > 0 {
		b.WriteString(styles.HintStyle.Render(moreLeft))
	} else {
		b.WriteString(strings.Repeat(" ", runewidth.StringWidth(moreLeft)))
	}
	for i := m.carouselStart; i < m.carouselEnd && i < len(descs); i++ {
		if i > m.carouselStart {
			b.WriteString(strings.Repeat(" ", carouselGap))
		}
		style := styles.CarouselItemStyle
		if i == m.state.Index() {
			style = styles.CarouselSelectedStyle
		}
		label := carouselLabel(descs[i].Icon, descs[i].Title)
		b.WriteString(zone.Mark(CarouselZoneID(i), style.Render(label)))
	}
	if m.carouselEnd < len(descs) {
		b.WriteString(styles.HintStyle.Render(moreRight))
	}
	return b.String()
}
