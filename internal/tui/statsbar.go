package tui

import (
	"fmt"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/stats"
	"github.com/charmbracelet/lipgloss"
)

// renderStatsRow shows the aggregate counters computed from the live
// store (total plus one counter per sentiment).
func renderStatsRow(total int, c stats.SentimentCounts, width int) string {
	cell := func(label string, value string) string {
		return statLabelStyle.Render(label+" ") + statValueStyle.Render(value)
	}

	row := " " + cell("Total", fmt.Sprint(total)) +
		"   " + sentimentStyle("positive").Render(fmt.Sprintf("▲ %d positive", c.Positive)) +
		"   " + sentimentStyle("neutral").Render(fmt.Sprintf("● %d neutral", c.Neutral)) +
		"   " + sentimentStyle("negative").Render(fmt.Sprintf("▼ %d negative", c.Negative))

	return lipgloss.NewStyle().Width(width).Render(row)
}

func renderStatusBar(shown, total int, filterLabel string, width int, searching, loading bool) string {
	left := fmt.Sprintf(" %d/%d articles", shown, total)
	if filterLabel != "" {
		left += " · " + filterLabel
	}
	if loading {
		left += " (fetching...)"
	}

	right := " / search  ←/→ category  v sentiment  s speak  r refresh  ? help  q quit "
	if searching {
		right = " esc cancel  enter apply "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 0 {
		gap = 0
	}

	bar := left + fmt.Sprintf("%*s", gap, "") + right

	return statusBarStyle.Width(width).Render(bar)
}
