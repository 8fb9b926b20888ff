package tui

import (
	"fmt"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
	"github.com/charmbracelet/lipgloss"
)

// sentimentOptions is the fixed cycle order for the sentiment filter.
var sentimentOptions = []string{"all", news.SentimentPositive, news.SentimentNeutral, news.SentimentNegative}

// tabBar renders one row of selectable options. The category bar is
// built once from the static fixture's option list and never rebuilt
// from live data.
type tabBar struct {
	options  []string
	selected int
	counts   map[string]int // live per-option counts, nil to hide
}

func newTabBar(options []string) tabBar {
	return tabBar{options: options}
}

// next moves the selection right, wrapping around.
func (t *tabBar) next() {
	t.selected = (t.selected + 1) % len(t.options)
}

// prev moves the selection left, wrapping around.
func (t *tabBar) prev() {
	t.selected = (t.selected - 1 + len(t.options)) % len(t.options)
}

// reset returns the selection to the first option ("all").
func (t *tabBar) reset() {
	t.selected = 0
}

func (t *tabBar) value() string {
	return t.options[t.selected]
}

func (t *tabBar) render(width int) string {
	sep := tabSeparatorStyle.Render(" · ")
	var parts []string
	for i, opt := range t.options {
		style := tabInactiveStyle
		if i == t.selected {
			style = tabActiveStyle
		}
		label := opt
		if t.counts != nil && opt != "all" {
			label = fmt.Sprintf("%s %d", opt, t.counts[opt])
		}
		parts = append(parts, style.Render(label))
	}

	// Build row with · separators, stopping when we'd exceed width
	var row string
	for i, part := range parts {
		candidate := row
		if i > 0 {
			candidate += sep
		}
		candidate += part
		if lipgloss.Width(candidate) > width && row != "" {
			break
		}
		row = candidate
	}

	barStyle := lipgloss.NewStyle().
		Background(colorTabBg).
		Width(width).
		PaddingLeft(1)
	return barStyle.Render(row)
}
