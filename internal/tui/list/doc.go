// Package listview provides the cursor list used by every list screen.
//
// CursorListModel keeps a cursor over a slice of rows, handles the navigation
// keys (arrows, j/k, pgup/pgdn, home/end) and renders only a window of rows
// around the cursor. Rows are rendered by a caller-supplied function, so a row
// may be a single line or a multi-line expanded card.
package listview
