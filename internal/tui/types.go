package tui

// ViewState is the top-level state of a list screen.
type ViewState int

const (
	// ViewStateLoading shows the spinner until the first list response arrives.
	ViewStateLoading ViewState = iota
	// ViewStateList shows the rows, including any expanded card.
	ViewStateList
	// ViewStateError shows the static list error with no rows.
	ViewStateError
	// ViewStateQuitting renders nothing while the program exits.
	ViewStateQuitting
)

// String returns the lower-case name of the state.
func (s ViewState) String() string {
	switch s {
	case ViewStateLoading:
		return "loading"
	case ViewStateList:
		return "list"
	case ViewStateError:
		return "error"
	case ViewStateQuitting:
		return "quitting"
	default:
		return "unknown"
	}
}

// Key bindings shared by every screen.
const (
	keyQuit     = "q"
	keyCtrlC    = "ctrl+c"
	keyEnter    = "enter"
	keySpace    = " "
	keyEsc      = "esc"
	keyClose    = "x"
	keyLoadMore = "m"
)

const (
	defaultWidth  = 80
	defaultHeight = 24

	// maxCardWidth keeps cards readable on very wide terminals.
	maxCardWidth = 100
	// minCardWidth is the narrowest card that still fits the header.
	minCardWidth = 30

	// chromeLines is the screen height taken by the title, status and help lines.
	chromeLines = 6
	// cardLines approximates the height of a collapsed card.
	cardLines = 5
)
