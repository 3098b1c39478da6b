package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultRowHeight is used when a non-positive row height is requested.
const DefaultRowHeight = 1

// halfViewportDivisor is used to calculate half the viewport for centering.
const halfViewportDivisor = 2

// RenderFunc renders the item at index. The selected parameter indicates
// whether this item is currently selected. Output taller or wider than the
// row is clipped; shorter output is padded.
type RenderFunc[T any] func(item T, index int, selected bool) string

// VirtualListModel implements virtual scrolling with fixed-height rows.
type VirtualListModel[T any] struct {
	// items contains all list items
	items []T

	// renderFunc renders a single item
	renderFunc RenderFunc[T]

	// selected is the currently selected item index (0-based)
	selected int

	// visibleFrom is the first visible item index
	visibleFrom int

	// visibleTo is the last visible item index (exclusive)
	visibleTo int

	// height is the viewport height in lines
	height int

	// width is the viewport width in columns
	width int

	// rowHeight is the number of lines each row occupies
	rowHeight int
}

// NewVirtualListModel creates a new virtual list model.
// height and width are the viewport size in lines and columns; rowHeight is
// the number of lines every row occupies.
func NewVirtualListModel[T any](
	items []T,
	height, width, rowHeight int,
	renderFunc RenderFunc[T],
) *VirtualListModel[T] {
	if rowHeight < 1 {
		rowHeight = DefaultRowHeight
	}
	m := &VirtualListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
		rowHeight:  rowHeight,
	}

	m.updateVisibleRange()
	return m
}

// Init initializes the model (required for tea.Model interface).
func (m *VirtualListModel[T]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard and resize messages.
func (m *VirtualListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg), nil
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKeyMsg processes keyboard input for navigation.
//
//nolint:exhaustive // Only navigation keys are handled.
func (m *VirtualListModel[T]) handleKeyMsg(msg tea.KeyMsg) tea.Model {
	if len(m.items) == 0 {
		return m
	}

	switch msg.Type {
	case tea.KeyUp:
		m.SetSelected(m.selected - 1)
	case tea.KeyDown:
		m.SetSelected(m.selected + 1)
	case tea.KeyPgUp:
		m.SetSelected(m.selected - m.RowsPerViewport())
	case tea.KeyPgDown:
		m.SetSelected(m.selected + m.RowsPerViewport())
	case tea.KeyHome:
		m.SetSelected(0)
	case tea.KeyEnd:
		m.SetSelected(len(m.items) - 1)
	case tea.KeyRunes:
		// vim-style navigation
		if len(msg.Runes) > 0 {
			switch msg.Runes[0] {
			case 'j':
				m.SetSelected(m.selected + 1)
			case 'k':
				m.SetSelected(m.selected - 1)
			}
		}
	default:
	}

	return m
}

// RowsPerViewport returns how many whole rows fit in the viewport (at least 1).
func (m *VirtualListModel[T]) RowsPerViewport() int {
	rows := m.height / m.rowHeight
	if rows < 1 {
		return 1
	}
	return rows
}

// updateVisibleRange keeps the selected item visible, centering it where possible.
func (m *VirtualListModel[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom = 0
		m.visibleTo = 0
		return
	}

	rows := m.RowsPerViewport()
	halfViewport := rows / halfViewportDivisor

	idealFrom := m.selected - halfViewport
	if idealFrom < 0 {
		idealFrom = 0
	}
	idealTo := idealFrom + rows

	if idealTo > len(m.items) {
		idealTo = len(m.items)
		idealFrom = idealTo - rows
		if idealFrom < 0 {
			idealFrom = 0
		}
	}

	m.visibleFrom = idealFrom
	m.visibleTo = idealTo
}

// View renders only the visible rows, each exactly rowHeight lines tall.
func (m *VirtualListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	rowStyle := lipgloss.NewStyle().Height(m.rowHeight).MaxHeight(m.rowHeight)
	if m.width > 0 {
		rowStyle = rowStyle.MaxWidth(m.width)
	}

	var sb strings.Builder
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		if i > m.visibleFrom {
			sb.WriteString("\n")
		}
		sb.WriteString(rowStyle.Render(m.renderFunc(m.items[i], i, i == m.selected)))
	}

	return sb.String()
}

// IndexAtLine maps a viewport line (0-based, relative to the top of the list)
// to the item rendered there.
func (m *VirtualListModel[T]) IndexAtLine(line int) (int, bool) {
	if line < 0 || len(m.items) == 0 {
		return 0, false
	}
	index := m.visibleFrom + line/m.rowHeight
	if index >= m.visibleTo {
		return 0, false
	}
	return index, true
}

// SetItems replaces the list contents and moves the selection to the top.
func (m *VirtualListModel[T]) SetItems(items []T) {
	m.items = items
	m.selected = 0
	m.updateVisibleRange()
}

// SetSize updates the viewport dimensions.
func (m *VirtualListModel[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateVisibleRange()
}

// ItemCount returns the total number of items in the list.
func (m *VirtualListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the currently selected item index.
func (m *VirtualListModel[T]) Selected() int {
	return m.selected
}

// SetSelected sets the selected item index, capping to valid bounds.
func (m *VirtualListModel[T]) SetSelected(index int) {
	if len(m.items) == 0 {
		m.selected = 0
		return
	}

	switch {
	case index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}

	m.updateVisibleRange()
}

// VisibleFrom returns the first visible item index (inclusive).
func (m *VirtualListModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last visible item index (exclusive).
func (m *VirtualListModel[T]) VisibleTo() int {
	return m.visibleTo
}

// Height returns the viewport height.
func (m *VirtualListModel[T]) Height() int {
	return m.height
}

// Width returns the viewport width.
func (m *VirtualListModel[T]) Width() int {
	return m.width
}

// RowHeight returns the number of lines each row occupies.
func (m *VirtualListModel[T]) RowHeight() int {
	return m.rowHeight
}

// GetSelectedItem returns the currently selected item.
// Returns nil if list is empty.
func (m *VirtualListModel[T]) GetSelectedItem() *T {
	if len(m.items) == 0 || m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}
