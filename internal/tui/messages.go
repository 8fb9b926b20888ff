package tui

import "github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"

// fetchDoneMsg carries a completed fetch; the article set replaces the
// store wholesale.
type fetchDoneMsg struct {
	articles []news.Article
	dropped  int
	errs     []error
}
