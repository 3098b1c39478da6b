package tui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/postview/internal/pagination"
	"github.com/rshade/postview/internal/posts"
)

// tabwriterPadding is the minimum padding between table columns.
const tabwriterPadding = 2

// titleColumnWidth caps the title column of the plain table.
const titleColumnWidth = 60

// truncateMinLen is the length below which no ellipsis is added.
const truncateMinLen = 3

// truncate shortens s to maxLen runes.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= truncateMinLen {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// RenderPlainPage writes one page as an unstyled table followed by the page indicator.
func RenderPlainPage(w io.Writer, rows []posts.Post, meta pagination.PaginationMeta, bodies bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, tabwriterPadding, ' ', 0)

	if _, err := fmt.Fprintf(tw, "ID\tTITLE\n"); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := fmt.Fprintf(tw, "--\t-----\n"); err != nil {
		return fmt.Errorf("writing separator: %w", err)
	}
	for _, p := range rows {
		if _, err := fmt.Fprintf(tw, "%d\t%s\n", p.ID, truncate(p.Title, titleColumnWidth)); err != nil {
			return fmt.Errorf("writing row %d: %w", p.ID, err)
		}
		if bodies {
			for _, line := range strings.Split(p.Body, "\n") {
				if _, err := fmt.Fprintf(tw, "\t  %s\n", line); err != nil {
					return fmt.Errorf("writing body %d: %w", p.ID, err)
				}
			}
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	if len(rows) == 0 {
		if _, err := fmt.Fprintln(w, msgNoPosts); err != nil {
			return fmt.Errorf("writing empty message: %w", err)
		}
	}
	_, err := fmt.Fprintf(w, "\nPage %d of %d\n", meta.CurrentPage, meta.TotalPages)
	if err != nil {
		return fmt.Errorf("writing page indicator: %w", err)
	}
	return nil
}

// RenderStyledPage writes one page with lipgloss styling for terminals that
// cannot run the interactive program (CI logs, non-interactive stdin).
func RenderStyledPage(
	w io.Writer,
	rows []posts.Post,
	meta pagination.PaginationMeta,
	method pagination.SortMethod,
	bodies bool,
	width int,
) error {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("Posts"))
	b.WriteString("  ")
	b.WriteString(LabelStyle.Render(sortLabel))
	b.WriteString(ValueStyle.Render(method.Label()))
	b.WriteString("\n\n")

	if len(rows) == 0 {
		b.WriteString(SubtleStyle.Render(msgNoPosts))
		b.WriteString("\n")
	}

	bodyStyle := BodyStyle.Width(max(width, minBodyWidth))
	rowStyle := RowStyle.MaxWidth(max(width, minBodyWidth))
	for _, p := range rows {
		b.WriteString(rowStyle.Render(fmt.Sprintf("%d - %s", p.ID, p.Title)))
		b.WriteString("\n")
		if bodies {
			b.WriteString(bodyStyle.Render(p.Body))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		LabelStyle.Render("Page "),
		InfoStyle.Render(fmt.Sprintf("%d", meta.CurrentPage)),
		LabelStyle.Render(" of "),
		InfoStyle.Render(fmt.Sprintf("%d", meta.TotalPages)),
	))
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing styled page: %w", err)
	}
	return nil
}
