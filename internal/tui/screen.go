package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/socialpulse/internal/listing"
	"github.com/rshade/socialpulse/internal/logging"
	"github.com/rshade/socialpulse/internal/social"
	"github.com/rshade/socialpulse/internal/tui/detail"
	listview "github.com/rshade/socialpulse/internal/tui/list"
)

// ListFetcher performs one list request handed out by the controller.
type ListFetcher[S any] func(ctx context.Context, req listing.Request) ([]S, error)

// ScreenConfig describes one list screen: how to fetch its summaries and
// details, and how to present them.
type ScreenConfig[S social.Entity, D any] struct {
	Title       string
	LoadingText string
	// EmptyText is shown when the list loads with no rows.
	EmptyText string

	List      listing.Options
	FetchList ListFetcher[S]

	Detail      detail.Options
	FetchDetail detail.Fetcher[D]
	// DetailTitle heads the expanded region.
	DetailTitle string
	// EmptyDetail is shown under an expanded row with no detail items.
	EmptyDetail string
	// DetailError is shown under an expanded row whose fetch failed. Blank renders
	// the failure as EmptyDetail.
	DetailError string

	SummaryCard func(S) Card
	DetailLine  func(D) string

	// TableHeaders and TableRow lay out the non-interactive table output.
	TableHeaders []string
	TableRow     func(S) []string

	Logger zerolog.Logger
}

type screenRow[S social.Entity, D any] struct {
	summary S
	loader  *detail.Loader[D]
}

type listLoadedMsg[S any] struct {
	req   listing.Request
	items []S
	err   error
}

// ScreenModel is the Bubble Tea model behind the users, trending and feed screens.
type ScreenModel[S social.Entity, D any] struct {
	ctx context.Context //nolint:containedctx // Commands run after Update returns.
	cfg ScreenConfig[S, D]
	log zerolog.Logger

	ctrl *listing.Controller[S]
	rows []*screenRow[S, D]
	list *listview.CursorListModel[*screenRow[S, D]]

	state   ViewState
	loading *LoadingState
	width   int
	height  int

	// pendingExpand is expanded once the first page arrives, if it is listed.
	pendingExpand string
}

// NewScreenModel creates a screen in the loading state. Fetching starts in Init.
func NewScreenModel[S social.Entity, D any](ctx context.Context, cfg ScreenConfig[S, D]) *ScreenModel[S, D] {
	cfg.List.Logger = cfg.Logger
	cfg.Detail.Logger = cfg.Logger

	m := &ScreenModel[S, D]{
		ctx:     ctx,
		cfg:     cfg,
		log:     cfg.Logger,
		ctrl:    listing.New[S](cfg.List),
		state:   ViewStateLoading,
		loading: NewLoadingState(cfg.LoadingText),
		width:   defaultWidth,
		height:  defaultHeight,
	}
	m.list = listview.NewCursorListModel(m.rows, visibleRows(defaultHeight), defaultWidth, m.renderRow)
	return m
}

// visibleRows is how many cards fit on a terminal of the given height.
func visibleRows(height int) int {
	return max((height-chromeLines)/cardLines, 1)
}

// Init issues the single initial list request and starts the spinner.
func (m *ScreenModel[S, D]) Init() tea.Cmd {
	req, ok := m.ctrl.Start()
	if !ok {
		return m.loading.Init()
	}
	return tea.Batch(m.loading.Init(), m.listCmd(req))
}

func (m *ScreenModel[S, D]) listCmd(req listing.Request) tea.Cmd {
	base, fetch := m.ctx, m.cfg.FetchList
	traceID := logging.NewTraceID()
	return func() tea.Msg {
		ctx := logging.ContextWithTraceID(base, traceID)
		items, err := fetch(ctx, req)
		return listLoadedMsg[S]{req: req, items: items, err: err}
	}
}

// Update handles messages and updates the model state.
func (m *ScreenModel[S, D]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.list.SetHeight(visibleRows(msg.Height))
		return m, nil
	case spinner.TickMsg:
		return m, m.loading.Update(msg)
	case listLoadedMsg[S]:
		return m, m.handleListLoaded(msg)
	case detail.LoadedMsg[D]:
		m.handleDetailLoaded(msg)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *ScreenModel[S, D]) handleListLoaded(msg listLoadedMsg[S]) tea.Cmd {
	if !m.ctrl.Complete(msg.req, msg.items, msg.err) {
		return nil
	}

	if !msg.req.Append && msg.err == nil {
		m.rows = nil
	}
	items := m.ctrl.Items()
	for i := len(m.rows); i < len(items); i++ {
		m.rows = append(m.rows, m.newRow(items[i]))
	}
	m.list.SetItems(m.rows)

	if m.pendingExpand != "" && msg.err == nil {
		m.expandListed(m.pendingExpand)
		m.pendingExpand = ""
	}

	if m.ctrl.Status() == listing.StatusError && len(m.rows) == 0 {
		m.state = ViewStateError
	} else {
		m.state = ViewStateList
	}

	// A page may repeat the id of the expanded row; its new row expands too.
	return m.syncLoaders()
}

// ExpandOnLoad expands the row with id as soon as the first page lists it.
func (m *ScreenModel[S, D]) ExpandOnLoad(id string) {
	m.pendingExpand = id
}

func (m *ScreenModel[S, D]) expandListed(id string) {
	for i, r := range m.rows {
		if r.summary.EntityID() == id {
			m.ctrl.Toggle(id)
			m.list.SetSelected(i)
			return
		}
	}
	m.log.Warn().Str("entity_id", id).Msg("row to expand is not listed")
}

func (m *ScreenModel[S, D]) newRow(summary S) *screenRow[S, D] {
	return &screenRow[S, D]{
		summary: summary,
		loader:  detail.New(m.ctx, summary.EntityID(), m.cfg.FetchDetail, m.cfg.Detail),
	}
}

func (m *ScreenModel[S, D]) handleDetailLoaded(msg detail.LoadedMsg[D]) {
	for _, r := range m.rows {
		r.loader.Update(msg)
	}
}

func (m *ScreenModel[S, D]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyQuit, keyCtrlC:
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	if m.state != ViewStateList {
		return m, nil
	}

	switch msg.String() {
	case keyEsc, keyClose:
		m.ctrl.Collapse()
		return m, m.syncLoaders()
	case keyEnter, keySpace:
		if r := m.list.SelectedItem(); r != nil {
			m.ctrl.Toggle((*r).summary.EntityID())
			return m, m.syncLoaders()
		}
		return m, nil
	case keyLoadMore:
		if req, ok := m.ctrl.LoadMore(); ok {
			return m, m.listCmd(req)
		}
		return m, nil
	}

	m.list.HandleKey(msg)
	return m, nil
}

// syncLoaders pushes the controller's expansion to every row's loader and
// collects the fetches that expansion starts.
func (m *ScreenModel[S, D]) syncLoaders() tea.Cmd {
	var cmds []tea.Cmd
	for _, r := range m.rows {
		if cmd := r.loader.Sync(m.ctrl.IsExpanded(r.summary.EntityID())); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// View renders the current view.
func (m *ScreenModel[S, D]) View() string {
	switch m.state {
	case ViewStateQuitting:
		return ""
	case ViewStateLoading:
		return RenderLoading(m.loading)
	default:
	}

	parts := []string{HeaderStyle.Render(m.cfg.Title)}
	if msg := m.ctrl.Err(); msg != "" {
		parts = append(parts, CriticalStyle.Render(msg))
	}
	if m.state == ViewStateList {
		if len(m.rows) == 0 {
			parts = append(parts, SubtleStyle.Render(m.cfg.EmptyText))
		} else {
			parts = append(parts, m.list.View())
		}
	}
	if footer := m.renderFooter(); footer != "" {
		parts = append(parts, footer)
	}
	parts = append(parts, SubtleStyle.Render(m.helpText()))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *ScreenModel[S, D]) renderFooter() string {
	switch {
	case !m.ctrl.Paged():
		return ""
	case m.ctrl.LoadingMore():
		return m.loading.Frame() + " Loading more…"
	case m.ctrl.CanLoadMore():
		return BadgeStyle.Render("[m] Load more")
	case m.ctrl.Exhausted():
		return SubtleStyle.Render("No more posts")
	default:
		return ""
	}
}

func (m *ScreenModel[S, D]) helpText() string {
	if m.state != ViewStateList {
		return "[q] Quit"
	}
	if m.ctrl.Paged() {
		return "[↑↓/jk] Navigate  [Enter] Expand  [x] Close  [m] Load more  [q] Quit"
	}
	return "[↑↓/jk] Navigate  [Enter] Expand  [x] Close  [q] Quit"
}

func (m *ScreenModel[S, D]) renderRow(r *screenRow[S, D], selected bool) string {
	card := m.cfg.SummaryCard(r.summary)
	card.Selected = selected
	card.Expanded = m.ctrl.IsExpanded(r.summary.EntityID())
	if card.Expanded {
		card.Detail = m.detailView(r.loader)
	}
	return RenderCard(card, m.width, m.loading.Frame())
}

func (m *ScreenModel[S, D]) detailView(l *detail.Loader[D]) DetailView {
	visible := l.Visible()
	lines := make([]string, len(visible))
	for i, item := range visible {
		lines[i] = m.cfg.DetailLine(item)
	}
	return DetailView{
		Title:     m.cfg.DetailTitle,
		Status:    l.Status(),
		Lines:     lines,
		Empty:     m.cfg.EmptyDetail,
		Failed:    l.Failed(),
		ErrorText: m.cfg.DetailError,
	}
}

// State returns the top-level view state.
func (m *ScreenModel[S, D]) State() ViewState {
	return m.state
}

// Controller exposes the list controller for inspection.
func (m *ScreenModel[S, D]) Controller() *listing.Controller[S] {
	return m.ctrl
}

// RowCount returns the number of rows on screen.
func (m *ScreenModel[S, D]) RowCount() int {
	return len(m.rows)
}

// RowLoader returns the detail loader of row i, or nil when i is out of range.
func (m *ScreenModel[S, D]) RowLoader(i int) *detail.Loader[D] {
	if i < 0 || i >= len(m.rows) {
		return nil
	}
	return m.rows[i].loader
}

// Cursor returns the index of the row under the cursor.
func (m *ScreenModel[S, D]) Cursor() int {
	return m.list.Selected()
}
