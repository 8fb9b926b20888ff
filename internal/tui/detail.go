package tui

import (
	"fmt"
	"strings"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
	"github.com/charmbracelet/lipgloss"
)

func renderDetail(article *news.Article, width, height, scroll int) string {
	if article == nil {
		return centerText("Select an article", width, height)
	}

	contentWidth := width - 2
	if contentWidth < 10 {
		contentWidth = 10
	}

	title := detailTitleStyle.Width(contentWidth).Render(article.Title)
	source := detailSourceStyle.Render(
		fmt.Sprintf("%s · %s", article.Source, article.PublishedAt),
	)

	badge := tabInactiveStyle.Render(article.Category) + " " +
		sentimentStyle(article.Sentiment).Render(
			fmt.Sprintf("%s (%.0f%%)", article.Sentiment, article.Score*100),
		)

	body := detailBodyStyle.Width(contentWidth).Render(wrapText(article.Summary, contentWidth))
	link := detailLinkStyle.Width(contentWidth).Render("Read more: " + article.URL)

	content := lipgloss.JoinVertical(lipgloss.Left, title, source, badge, "", body, "", link)

	// Apply scroll offset
	lines := strings.Split(content, "\n")
	if scroll > 0 && scroll < len(lines) {
		lines = lines[scroll:]
	}

	// Pad to fill height
	if len(lines) < height {
		lines = append(lines, make([]string, height-len(lines))...)
	} else if len(lines) > height {
		lines = lines[:height]
	}

	return strings.Join(lines, "\n")
}

func wrapText(s string, width int) string {
	if width <= 0 {
		return s
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
		} else {
			line += " " + w
		}
	}
	lines = append(lines, line)
	return strings.Join(lines, "\n")
}
