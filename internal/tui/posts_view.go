package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/posts"
)

const (
	sortLabel      = "Sort By: "
	prevButton     = "[ Previous ]"
	nextButton     = "[ Next ]"
	pageIndicator  = "  Page %d of %d  "
	optionSpacing  = " "
	cursorSelected = "> "
	cursorBlank    = "  "
)

// View renders the posts screen for the current state.
func (m *PostsModel) View() string {
	switch m.state {
	case ViewStateLoading:
		return m.loading.View()
	case ViewStateQuitting:
		return ""
	case ViewStateList:
		return m.renderList()
	default:
		return ""
	}
}

func (m *PostsModel) renderList() string {
	var b strings.Builder

	b.WriteString(renderSortBar(m.sortMethod))
	b.WriteString("\n\n")

	listHeight := m.listHeight()
	var body string
	if len(m.data) == 0 {
		body = SubtleStyle.Render(msgNoPosts)
	} else {
		body = m.list.View()
	}
	b.WriteString(lipgloss.NewStyle().Height(listHeight).MaxHeight(listHeight).Render(body))
	b.WriteString("\n\n")

	b.WriteString(renderPaginationBar(m.Meta()))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// renderRow is the list's render function. The first line is "<id> - <title>";
// the body follows when the row has been toggled open.
func (m *PostsModel) renderRow(p posts.Post, index int, selected bool) string {
	cursor := cursorBlank
	style := RowStyle
	if selected {
		cursor = cursorSelected
		style = SelectedRowStyle
	}
	line := cursor + style.Render(fmt.Sprintf("%d - %s", p.ID, p.Title))

	if m.rowHeight < 2 || !m.bodyVisible.IsVisible(index) {
		return line
	}

	width := max(m.width, minBodyWidth)
	return line + "\n" + BodyStyle.Width(width).Render(p.Body)
}

func renderSortBar(current pagination.SortMethod) string {
	var b strings.Builder
	b.WriteString(LabelStyle.Render(sortLabel))
	for i, method := range pagination.SortMethods() {
		if i > 0 {
			b.WriteString(optionSpacing)
		}
		text := sortOptionText(method, method == current)
		if method == current {
			b.WriteString(SelectedOptionStyle.Render(text))
		} else {
			b.WriteString(OptionStyle.Render(text))
		}
	}
	return b.String()
}

func sortOptionText(method pagination.SortMethod, selected bool) string {
	if selected {
		return "[" + method.Label() + "]"
	}
	return " " + method.Label() + " "
}

// sortOptionAt maps a column on the sort bar to the option drawn there.
// Options are padded to the same width whether selected or not.
func sortOptionAt(x int) (pagination.SortMethod, bool) {
	pos := lipgloss.Width(sortLabel)
	for i, method := range pagination.SortMethods() {
		if i > 0 {
			pos += lipgloss.Width(optionSpacing)
		}
		w := lipgloss.Width(sortOptionText(method, false))
		if x >= pos && x < pos+w {
			return method, true
		}
		pos += w
	}
	return "", false
}

func renderPaginationBar(meta pagination.PaginationMeta) string {
	prev := ButtonStyle.Render(prevButton)
	if !meta.HasPrevious {
		prev = DisabledButtonStyle.Render(prevButton)
	}
	next := ButtonStyle.Render(nextButton)
	if !meta.HasNext {
		next = DisabledButtonStyle.Render(nextButton)
	}
	indicator := ValueStyle.Render(fmt.Sprintf(pageIndicator, meta.CurrentPage, meta.TotalPages))
	return prev + indicator + next
}

// pageButtonAt maps a column on the pagination bar to a page direction.
// Clicks on a disabled button are reported; ChangePage treats them as no-ops.
func (m *PostsModel) pageButtonAt(x int) (pagination.Direction, bool) {
	prevWidth := lipgloss.Width(prevButton)
	if x >= 0 && x < prevWidth {
		return pagination.DirectionPrev, true
	}
	nextStart := prevWidth + lipgloss.Width(fmt.Sprintf(pageIndicator, m.page, m.totalPages))
	if x >= nextStart && x < nextStart+lipgloss.Width(nextButton) {
		return pagination.DirectionNext, true
	}
	return "", false
}
