// Package pagination derives the displayed page of posts from the full collection.
//
// This package contains the view transformation shared by the TUI and the list command:
//   - Sorter: title (locale collation) and id ordering
//   - Paginate / TotalPages: fixed-size page windows
//   - ChangePage: Prev/Next transitions clamped at the boundaries
//   - PaginationMeta: page metadata for rendering and JSON output
//
// Every displayed page satisfies Derive(all, method, page) ==
// Paginate(Sort(all, method), page).
package pagination
