package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/rshade/postview/internal/logging"
	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/posts"
	"github.com/rshade/postview/internal/tui/detail"
	listview "github.com/rshade/postview/internal/tui/list"
)

// DefaultLoadingDelay is the simulated latency before the list is revealed.
const DefaultLoadingDelay = 2250 * time.Millisecond

// DefaultRowHeight is the number of lines each post row occupies.
const DefaultRowHeight = 5

// PostsLoadedMsg is sent when the collection fetch completes successfully.
type PostsLoadedMsg struct {
	Posts []posts.Post
}

// PostsErrorMsg is sent when the collection fetch fails.
type PostsErrorMsg struct {
	Err error
}

// loadingDelayElapsedMsg ends the simulated latency after a successful fetch.
type loadingDelayElapsedMsg struct{}

// Options configures a PostsModel.
type Options struct {
	// SortMethod is the initial ordering. Empty selects pagination.DefaultSortMethod.
	SortMethod pagination.SortMethod

	// LoadingDelay keeps the loading screen up after a successful fetch. Zero reveals immediately.
	LoadingDelay time.Duration

	// RowHeight is the number of lines per row. Non-positive selects DefaultRowHeight.
	RowHeight int
}

// PostsModel is the Bubble Tea model for the posts screen.
type PostsModel struct {
	ctx     context.Context
	fetcher posts.Fetcher
	sorter  *pagination.Sorter
	logger  zerolog.Logger

	state ViewState

	// allData is fetched once and never mutated; data is derived from it.
	allData     []posts.Post
	data        []posts.Post
	page        int
	totalPages  int
	sortMethod  pagination.SortMethod
	bodyVisible *detail.BodyVisibility

	list    *listview.VirtualListModel[posts.Post]
	keys    keyMap
	help    help.Model
	loading *LoadingState

	loadingDelay time.Duration
	rowHeight    int
	width        int
	height       int
}

// NewPostsModel creates a posts screen in the loading state.
// The fetch starts when the program calls Init.
func NewPostsModel(ctx context.Context, fetcher posts.Fetcher, opts Options) *PostsModel {
	method := opts.SortMethod
	if method == "" {
		method = pagination.DefaultSortMethod
	}
	rowHeight := opts.RowHeight
	if rowHeight < 1 {
		rowHeight = DefaultRowHeight
	}

	m := &PostsModel{
		ctx:          ctx,
		fetcher:      fetcher,
		sorter:       pagination.NewDefaultSorter(),
		logger:       logging.ComponentLogger(*logging.FromContext(ctx), "tui"),
		state:        ViewStateLoading,
		page:         pagination.DefaultPage,
		totalPages:   1,
		sortMethod:   method,
		bodyVisible:  detail.NewBodyVisibility(),
		keys:         newKeyMap(),
		help:         help.New(),
		loading:      NewLoadingState(),
		loadingDelay: opts.LoadingDelay,
		rowHeight:    rowHeight,
		width:        defaultWidth,
		height:       defaultHeight,
	}
	m.list = listview.NewVirtualListModel(m.data, m.listHeight(), m.width, rowHeight, m.renderRow)
	m.updateKeyStates()
	return m
}

// Init starts the spinner and the one-shot fetch.
func (m *PostsModel) Init() tea.Cmd {
	return tea.Batch(m.loading.Init(), m.fetchPosts)
}

// fetchPosts runs off the event loop; it only reads immutable fields.
func (m *PostsModel) fetchPosts() tea.Msg {
	result, err := m.fetcher.FetchAll(m.ctx)
	if err != nil {
		return PostsErrorMsg{Err: err}
	}
	return PostsLoadedMsg{Posts: result}
}

// Update handles messages and updates the model state.
func (m *PostsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resizeList()
		return m, nil

	case PostsLoadedMsg:
		return m.handlePostsLoaded(msg)

	case PostsErrorMsg:
		return m.handlePostsError(msg)

	case loadingDelayElapsedMsg:
		m.finishLoading()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.state = ViewStateQuitting
			return m, tea.Quit
		}
	}

	switch m.state {
	case ViewStateLoading:
		return m, m.loading.Update(msg)
	case ViewStateList:
		return m.handleListUpdate(msg)
	case ViewStateQuitting:
		return m, nil
	default:
		return m, nil
	}
}

func (m *PostsModel) handlePostsLoaded(msg PostsLoadedMsg) (tea.Model, tea.Cmd) {
	m.allData = msg.Posts
	m.totalPages = pagination.TotalPages(len(m.allData))
	m.refresh()

	m.logger.Info().
		Int("count", len(m.allData)).
		Int("total_pages", m.totalPages).
		Msg("posts loaded")

	if m.loadingDelay <= 0 {
		m.finishLoading()
		return m, nil
	}
	return m, tea.Tick(m.loadingDelay, func(time.Time) tea.Msg {
		return loadingDelayElapsedMsg{}
	})
}

func (m *PostsModel) handlePostsError(msg PostsErrorMsg) (tea.Model, tea.Cmd) {
	m.logger.Error().Err(msg.Err).Msg("error fetching posts")
	m.finishLoading()
	return m, nil
}

func (m *PostsModel) finishLoading() {
	if m.state == ViewStateLoading {
		m.state = ViewStateList
	}
}

func (m *PostsModel) handleListUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleListKeypress(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	default:
		return m, nil
	}
}

func (m *PostsModel) handleListKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Toggle):
		m.ToggleBody(m.list.Selected())
	case key.Matches(msg, m.keys.NextPage):
		m.ChangePage(pagination.DirectionNext)
	case key.Matches(msg, m.keys.PrevPage):
		m.ChangePage(pagination.DirectionPrev)
	case key.Matches(msg, m.keys.CycleSort):
		m.SetSortMethod(m.sortMethod.Next())
	case key.Matches(msg, m.keys.SortTitle):
		m.SetSortMethod(pagination.SortByTitle)
	case key.Matches(msg, m.keys.SortID):
		m.SetSortMethod(pagination.SortByID)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resizeList()
	default:
		_, _ = m.list.Update(msg)
	}
	return m, nil
}

//nolint:exhaustive // Only left presses and the wheel are meaningful here.
func (m *PostsModel) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.list.SetSelected(m.list.Selected() - 1)
		return
	case tea.MouseButtonWheelDown:
		m.list.SetSelected(m.list.Selected() + 1)
		return
	case tea.MouseButtonLeft:
	default:
		return
	}
	if msg.Action != tea.MouseActionPress {
		return
	}

	switch {
	case msg.Y == 0:
		if method, ok := sortOptionAt(msg.X); ok {
			m.SetSortMethod(method)
		}
	case msg.Y >= headerHeight && msg.Y < headerHeight+m.listHeight():
		if index, ok := m.list.IndexAtLine(msg.Y - headerHeight); ok {
			m.list.SetSelected(index)
			m.ToggleBody(index)
		}
	case msg.Y == m.paginationLine():
		if dir, ok := m.pageButtonAt(msg.X); ok {
			m.ChangePage(dir)
		}
	}
}

// SetSortMethod changes the ordering and returns to the first page.
func (m *PostsModel) SetSortMethod(method pagination.SortMethod) {
	m.sortMethod = method
	m.page = pagination.DefaultPage
	m.refresh()
}

// ChangePage moves one page in dir; steps past the boundaries are no-ops.
func (m *PostsModel) ChangePage(dir pagination.Direction) {
	next := pagination.ChangePage(m.page, m.totalPages, dir)
	if next == m.page {
		return
	}
	m.page = next
	m.refresh()
}

// ToggleBody flips the body visibility of the row at index on the current page.
func (m *PostsModel) ToggleBody(index int) {
	if index < 0 || index >= len(m.data) {
		return
	}
	m.bodyVisible.Toggle(index)
}

// refresh recomputes the displayed rows from allData, sortMethod and page.
func (m *PostsModel) refresh() {
	m.data = m.sorter.Derive(m.allData, m.sortMethod, m.page)
	m.list.SetItems(m.data)
	m.updateKeyStates()
}

// updateKeyStates disables the page bindings at the boundaries.
func (m *PostsModel) updateKeyStates() {
	meta := m.Meta()
	m.keys.PrevPage.SetEnabled(meta.HasPrevious)
	m.keys.NextPage.SetEnabled(meta.HasNext)
}

func (m *PostsModel) resizeList() {
	m.list.SetSize(m.width, m.listHeight())
}

// listHeight is the number of lines left for the list between header and footer.
func (m *PostsModel) listHeight() int {
	h := m.height - headerHeight - footerGap - 1 - lipgloss.Height(m.help.View(m.keys))
	if h < minListHeight {
		return minListHeight
	}
	return h
}

// paginationLine is the screen line of the Previous/Next bar.
func (m *PostsModel) paginationLine() int {
	return headerHeight + m.listHeight() + footerGap
}

// Meta returns pagination metadata for the displayed page.
func (m *PostsModel) Meta() pagination.PaginationMeta {
	return pagination.NewPaginationMeta(m.page, m.totalPages, len(m.allData))
}

// Loading reports whether the loading screen is shown.
func (m *PostsModel) Loading() bool {
	return m.state == ViewStateLoading
}

// State returns the current view state.
func (m *PostsModel) State() ViewState {
	return m.state
}

// Page returns the current 1-based page.
func (m *PostsModel) Page() int {
	return m.page
}

// TotalPages returns the page count of the collection.
func (m *PostsModel) TotalPages() int {
	return m.totalPages
}

// SortMethod returns the active ordering.
func (m *PostsModel) SortMethod() pagination.SortMethod {
	return m.sortMethod
}

// Rows returns the rows of the displayed page.
func (m *PostsModel) Rows() []posts.Post {
	return m.data
}

// BodyVisible reports whether the row at index shows its body.
func (m *PostsModel) BodyVisible(index int) bool {
	return m.bodyVisible.IsVisible(index)
}
