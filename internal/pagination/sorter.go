package pagination

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/rshade/postview/internal/posts"
)

// SortMethod selects the ordering of the collection.
type SortMethod string

// Supported sort methods.
const (
	SortByTitle SortMethod = "title"
	SortByID    SortMethod = "id"

	DefaultSortMethod = SortByTitle
)

// ErrInvalidSortMethod is returned by ParseSortMethod for unknown names.
var ErrInvalidSortMethod = errors.New("invalid sort method")

// SortMethods lists the selectable methods in display order.
func SortMethods() []SortMethod {
	return []SortMethod{SortByTitle, SortByID}
}

// ParseSortMethod parses a user-supplied method name (case-insensitive).
func ParseSortMethod(s string) (SortMethod, error) {
	m := SortMethod(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q (must be title or id)", ErrInvalidSortMethod, s)
	}
	return m, nil
}

// IsValid reports whether m is one of the supported methods.
func (m SortMethod) IsValid() bool {
	return m == SortByTitle || m == SortByID
}

// Label returns the human-readable option label.
func (m SortMethod) Label() string {
	switch m {
	case SortByTitle:
		return "Title"
	case SortByID:
		return "ID"
	default:
		return string(m)
	}
}

// Next returns the method after m in SortMethods, wrapping around.
func (m SortMethod) Next() SortMethod {
	methods := SortMethods()
	for i, candidate := range methods {
		if candidate == m {
			return methods[(i+1)%len(methods)]
		}
	}
	return DefaultSortMethod
}

// Sorter orders posts. Title ordering uses locale collation.
// A Sorter is not safe for concurrent use; the collator keeps scratch buffers.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter creates a Sorter collating titles for tag.
func NewSorter(tag language.Tag) *Sorter {
	return &Sorter{collator: collate.New(tag)}
}

// NewDefaultSorter creates a Sorter using the root (language-neutral) collation.
func NewDefaultSorter() *Sorter {
	return NewSorter(language.Und)
}

// Sort returns a sorted copy of items. The input is never modified.
// Unknown methods return the copy in its original order.
func (s *Sorter) Sort(items []posts.Post, method SortMethod) []posts.Post {
	sorted := make([]posts.Post, len(items))
	copy(sorted, items)

	switch method {
	case SortByTitle:
		sort.SliceStable(sorted, func(i, j int) bool {
			return s.collator.CompareString(sorted[i].Title, sorted[j].Title) < 0
		})
	case SortByID:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ID < sorted[j].ID
		})
	}

	return sorted
}

// Derive returns the rows displayed for page under method.
func (s *Sorter) Derive(all []posts.Post, method SortMethod, page int) []posts.Post {
	return Paginate(s.Sort(all, method), page)
}
