package listview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// halfViewportDivisor is used to calculate half the viewport height for centering.
const halfViewportDivisor = 2

// rowSeparator joins rendered rows. Rows may themselves span several lines.
const rowSeparator = "\n"

// RenderFunc renders one row. selected reports whether the cursor is on it.
type RenderFunc[T any] func(item T, selected bool) string

// CursorListModel is a cursor over a slice of rows that renders only the rows
// around the cursor. The window is measured in rows, not terminal lines, so a
// tall expanded row can push the frame past the terminal height.
type CursorListModel[T any] struct {
	items      []T
	renderFunc RenderFunc[T]

	selected    int
	visibleFrom int
	visibleTo   int

	// height is the number of rows kept around the cursor.
	height int
	width  int
}

// NewCursorListModel creates a list over items showing up to height rows.
func NewCursorListModel[T any](items []T, height, width int, renderFunc RenderFunc[T]) *CursorListModel[T] {
	m := &CursorListModel[T]{
		items:      items,
		renderFunc: renderFunc,
		height:     height,
		width:      width,
	}
	m.updateVisibleRange()
	return m
}

// Init implements tea.Model.
func (m *CursorListModel[T]) Init() tea.Cmd {
	return nil
}

// Update moves the cursor on navigation keys and tracks resizes.
func (m *CursorListModel[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.HandleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// HandleKey applies a navigation key and reports whether it was one.
func (m *CursorListModel[T]) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "k":
		m.SetSelected(m.selected - 1)
	case "down", "j":
		m.SetSelected(m.selected + 1)
	case "pgup":
		m.SetSelected(m.selected - m.height)
	case "pgdown":
		m.SetSelected(m.selected + m.height)
	case "home", "g":
		m.SetSelected(0)
	case "end", "G":
		m.SetSelected(len(m.items) - 1)
	default:
		return false
	}
	return true
}

// SetItems replaces the rows. The cursor stays on the same index when it still
// exists, which keeps it in place when a page is appended.
func (m *CursorListModel[T]) SetItems(items []T) {
	m.items = items
	m.SetSelected(m.selected)
}

// SetHeight changes how many rows are kept around the cursor.
func (m *CursorListModel[T]) SetHeight(height int) {
	if height < 1 {
		height = 1
	}
	m.height = height
	m.updateVisibleRange()
}

// updateVisibleRange centres the window on the cursor, clamped to the list ends.
func (m *CursorListModel[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}

	half := m.height / halfViewportDivisor
	from := m.selected - half
	to := from + m.height

	if from < 0 {
		from = 0
		to = m.height
	}
	if to > len(m.items) {
		to = len(m.items)
		from = max(to-m.height, 0)
	}

	m.visibleFrom, m.visibleTo = from, to
}

// View renders the rows in the window.
func (m *CursorListModel[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	rows := make([]string, 0, m.visibleTo-m.visibleFrom)
	for i := m.visibleFrom; i < m.visibleTo; i++ {
		rows = append(rows, m.renderFunc(m.items[i], i == m.selected))
	}
	return strings.Join(rows, rowSeparator)
}

// ItemCount returns the total number of rows.
func (m *CursorListModel[T]) ItemCount() int {
	return len(m.items)
}

// Selected returns the cursor index.
func (m *CursorListModel[T]) Selected() int {
	return m.selected
}

// SetSelected moves the cursor, clamped to valid bounds.
func (m *CursorListModel[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0 || index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.updateVisibleRange()
}

// VisibleFrom returns the first rendered row index (inclusive).
func (m *CursorListModel[T]) VisibleFrom() int {
	return m.visibleFrom
}

// VisibleTo returns the last rendered row index (exclusive).
func (m *CursorListModel[T]) VisibleTo() int {
	return m.visibleTo
}

// Width returns the last known terminal width.
func (m *CursorListModel[T]) Width() int {
	return m.width
}

// SelectedItem returns the row under the cursor, or nil for an empty list.
func (m *CursorListModel[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}
