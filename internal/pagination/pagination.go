package pagination

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rshade/postview/internal/posts"
)

// Page size and bounds.
const (
	PageSize    = 10
	DefaultPage = 1
	MinPage     = 1
)

// ErrInvalidPage is returned when a requested page is below MinPage.
var ErrInvalidPage = errors.New("page must be >= 1")

// Direction is a pagination step.
type Direction string

// Pagination directions.
const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// ParseDirection parses "next" or "prev" (case-insensitive).
func ParseDirection(s string) (Direction, error) {
	switch d := Direction(strings.ToLower(strings.TrimSpace(s))); d {
	case DirectionNext, DirectionPrev:
		return d, nil
	default:
		return "", fmt.Errorf("invalid direction %q: must be next or prev", s)
	}
}

// ValidatePage checks that page is a usable page index.
func ValidatePage(page int) error {
	if page < MinPage {
		return fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	return nil
}

// TotalPages returns ceil(count / PageSize).
func TotalPages(count int) int {
	if count <= 0 {
		return 0
	}
	pages := count / PageSize
	if count%PageSize > 0 {
		pages++
	}
	return pages
}

// Paginate returns the window of items for the 1-based page.
// Pages outside the collection yield an empty slice. The final page is short
// when len(items) is not a multiple of PageSize.
func Paginate(items []posts.Post, page int) []posts.Post {
	if page < MinPage {
		return []posts.Post{}
	}

	start := (page - 1) * PageSize
	if start >= len(items) {
		return []posts.Post{}
	}

	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}

// ChangePage applies a Prev/Next step. Steps past either boundary are no-ops.
func ChangePage(page, totalPages int, dir Direction) int {
	switch {
	case dir == DirectionNext && page < totalPages:
		return page + 1
	case dir == DirectionPrev && page > MinPage:
		return page - 1
	default:
		return page
	}
}
