// Package tui implements the interactive posts browser and the static page renderers.
package tui

// ViewState is the top-level state of the posts screen.
type ViewState int

// View states.
const (
	ViewStateLoading ViewState = iota
	ViewStateList
	ViewStateQuitting
)

// String returns the state name for logging.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Layout constants.
const (
	defaultWidth  = 80
	defaultHeight = 24

	// headerHeight covers the sort bar and the blank line under it.
	headerHeight = 2

	// footerGap is the blank line between the list and the pagination bar.
	footerGap = 1

	minListHeight = 1
	bodyIndent    = 4
	minBodyWidth  = 20
)

const msgNoPosts = "No posts to display."
