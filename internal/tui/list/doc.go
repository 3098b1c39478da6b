// Package listview provides virtual scrolling for Bubble Tea TUI applications.
//
// Every row occupies a fixed number of terminal lines, so the visible window is
// floor(viewport_height / row_height) rows around the selection. Only those rows
// are rendered on each View call. Key features:
//   - Fixed row height with exact padding/truncation of each rendered row
//   - Keyboard navigation (up/down, j/k, pgup/pgdn, home/end)
//   - Line-to-row hit testing for mouse clicks
package listview
