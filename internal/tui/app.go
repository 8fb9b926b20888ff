package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/filter"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/news"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/source"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/speech"
	"github.com/arhamsancheti/Real-Time-News-Summarizer/internal/stats"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusPane int

const (
	focusList focusPane = iota
	focusDetail
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeHelp
)

// App is the dashboard model. All UI state lives here as one explicit
// snapshot; every message produces the next snapshot, and the filtered
// list and counters are re-derived in full on each render.
type App struct {
	sources []source.DataSource
	speaker *speech.Speaker

	articles []news.Article // current store, replaced wholesale per fetch
	dropped  int
	cursor   int
	focus    focusPane
	mode     mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model
	catBar      tabBar
	sentBar     tabBar

	// State
	loading      bool
	detailScroll int
	currentDate  string
	err          error
}

// RunOpts holds all parameters for launching the dashboard.
type RunOpts struct {
	Sources []source.DataSource
	Speaker *speech.Speaker
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search articles..."
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		sources: opts.Sources,
		speaker: opts.Speaker,
		// Category options come from the static fixture, not from
		// whatever a fetch later loads.
		catBar:      newTabBar(stats.Categories(news.Fixture())),
		sentBar:     newTabBar(sentimentOptions),
		searchInput: ti,
		spinner:     sp,
		currentDate: time.Now().Format("Jan 2"),
	}
}

func (a *App) Init() tea.Cmd {
	a.loading = true
	return tea.Batch(a.fetchCmd(), a.spinner.Tick)
}

// filterState snapshots the three user-controlled parameters.
func (a *App) filterState() filter.State {
	return filter.State{
		Category:  a.catBar.value(),
		Search:    a.searchInput.Value(),
		Sentiment: a.sentBar.value(),
	}
}

// visible re-derives the filtered list; no caching across messages.
func (a *App) visible() []news.Article {
	return filter.Apply(a.articles, a.filterState())
}

func (a *App) fetchCmd() tea.Cmd {
	sources := a.sources
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		result := source.FetchAll(ctx, sources)
		return fetchDoneMsg{articles: result.Articles, dropped: result.Dropped, errs: result.Errors}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case fetchDoneMsg:
		a.loading = false
		a.articles = msg.articles
		a.dropped = msg.dropped
		if len(msg.errs) > 0 {
			a.err = msg.errs[0]
		}
		a.clampCursor()
		return a, nil

	case spinner.TickMsg:
		if a.loading {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) clampCursor() {
	if n := len(a.visible()); a.cursor >= n {
		a.cursor = max(0, n-1)
	}
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeHelp:
		switch msg.String() {
		case "?", "esc", "q":
			a.mode = modeNormal
		}
		return a, nil
	}

	// Normal mode
	switch msg.String() {
	case "q":
		return a, tea.Quit
	case "j", "down":
		if a.focus == focusList {
			if a.cursor < len(a.visible())-1 {
				a.cursor++
				a.detailScroll = 0
			}
		} else {
			a.detailScroll++
		}
		return a, nil
	case "k", "up":
		if a.focus == focusList {
			if a.cursor > 0 {
				a.cursor--
				a.detailScroll = 0
			}
		} else if a.detailScroll > 0 {
			a.detailScroll--
		}
		return a, nil
	case "tab":
		if a.focus == focusList {
			a.focus = focusDetail
		} else {
			a.focus = focusList
		}
		return a, nil
	case "left", "h":
		a.catBar.prev()
		a.cursor = 0
		a.detailScroll = 0
		return a, nil
	case "right", "l":
		a.catBar.next()
		a.cursor = 0
		a.detailScroll = 0
		return a, nil
	case "v":
		a.sentBar.next()
		a.cursor = 0
		a.detailScroll = 0
		return a, nil
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "r":
		// At most one fetch in flight: the trigger is dead while loading.
		if !a.loading {
			a.loading = true
			return a, tea.Batch(a.fetchCmd(), a.spinner.Tick)
		}
		return a, nil
	case "s":
		if v := a.visible(); a.speaker != nil && len(v) > 0 && a.cursor < len(v) {
			art := v[a.cursor]
			a.speaker.Speak(speech.CleanForSpeech(speech.ArticleText(art.Title, art.Summary)))
		}
		return a, nil
	case "c":
		if a.speaker != nil {
			a.speaker.Cancel()
		}
		return a, nil
	case "esc":
		// Clear all filters back to the match-everything snapshot.
		a.catBar.reset()
		a.sentBar.reset()
		a.searchInput.SetValue("")
		a.cursor = 0
		return a, nil
	case "?":
		a.mode = modeHelp
		return a, nil
	}

	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.mode = modeNormal
		a.searchInput.SetValue("")
		a.searchInput.Blur()
		a.cursor = 0
		return a, nil
	case "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	if a.searchInput.Value() != before {
		a.cursor = 0
		a.detailScroll = 0
	}
	return a, cmd
}

// filterLabel describes the active filters for the status bar.
func (a *App) filterLabel() string {
	s := a.filterState()
	var parts []string
	if s.Category != filter.All {
		parts = append(parts, s.Category)
	}
	if s.Sentiment != filter.All {
		parts = append(parts, s.Sentiment)
	}
	if s.Search != "" {
		parts = append(parts, fmt.Sprintf("%q", s.Search))
	}
	return strings.Join(parts, " · ")
}

// emptyMessage distinguishes the three empty list states.
func (a *App) emptyMessage() string {
	switch {
	case a.loading:
		return a.spinner.View() + " Fetching latest news..."
	case len(a.articles) == 0:
		return "No articles loaded — press r to fetch"
	default:
		return "No articles match your filters"
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  newsdash")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	visible := a.visible()
	counts := stats.CountBySentiment(a.articles)

	byCategory := make(map[string]int)
	for _, c := range stats.CountByCategory(a.articles, a.catBar.options) {
		byCategory[c.Category] = c.Count
	}
	a.catBar.counts = byCategory

	// Layout calculations
	headerHeight := 1
	statsHeight := 1
	tabsHeight := 2
	statusHeight := 1
	contentHeight := a.height - headerHeight - statsHeight - tabsHeight - statusHeight - 4 // borders

	listWidth := int(float64(a.width) * 0.4)
	detailWidth := a.width - listWidth - 1 // gap

	if contentHeight < 3 {
		contentHeight = 3
	}

	// Header
	headerLeft := headerStyle.Render("newsdash")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	// Aggregates always reflect the live store, even mid-filter
	statsRow := renderStatsRow(len(a.articles), counts, a.width)

	// Filter rows: categories, then sentiment (or search input)
	catRow := a.catBar.render(a.width)
	sentRow := a.sentBar.render(a.width)
	if a.mode == modeSearch {
		sentRow = a.searchInput.View()
	}

	// List pane
	innerListW := listWidth - 4 // border + padding
	listContent := renderList(visible, a.cursor, contentHeight, innerListW)
	if listContent == "" {
		listContent = centerText(a.emptyMessage(), innerListW, contentHeight)
	}

	var listPane string
	if a.focus == focusList {
		listPane = listPaneActiveStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	} else {
		listPane = listPaneStyle.Width(listWidth - 2).Height(contentHeight).Render(listContent)
	}

	// Detail pane
	var selected *news.Article
	if len(visible) > 0 && a.cursor < len(visible) {
		selected = &visible[a.cursor]
	}
	innerDetailW := detailWidth - 4
	detailContent := renderDetail(selected, innerDetailW, contentHeight, a.detailScroll)

	var detailPane string
	if a.focus == focusDetail {
		detailPane = detailPaneActiveStyle.Width(detailWidth - 2).Height(contentHeight).Render(detailContent)
	} else {
		detailPane = detailPaneStyle.Width(detailWidth - 2).Height(contentHeight).Render(detailContent)
	}

	// Join panes
	content := lipgloss.JoinHorizontal(lipgloss.Top, listPane, detailPane)

	// Status bar
	status := renderStatusBar(
		len(visible),
		len(a.articles),
		a.filterLabel(),
		a.width,
		a.mode == modeSearch,
		a.loading,
	)

	// Error display
	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorAccent).Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, statsRow, catRow, sentRow, content, status)
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("newsdash")
	dim := helpDimStyle

	help := title + dim.Render(" — Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  j/k, ↑/↓     Navigate article list\n" +
		"  tab           Switch focus between list and detail\n\n" +
		dim.Render("Filters") + "\n" +
		"  ←/→, h/l     Cycle category\n" +
		"  v             Cycle sentiment\n" +
		"  /             Search articles\n" +
		"  esc           Clear all filters\n\n" +
		dim.Render("Actions") + "\n" +
		"  s             Speak selected article\n" +
		"  c             Stop speaking\n" +
		"  r             Refresh articles\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c    Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the dashboard.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
