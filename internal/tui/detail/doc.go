// Package detail tracks which list rows show their expanded body region.
//
// Visibility is keyed by row index within the displayed page. Entries are
// created lazily on the first toggle and are never reset, so the state of a
// row index carries over when the page or sort order changes.
package detail
