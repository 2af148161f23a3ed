package listview_test

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	listview "github.com/rshade/socialpulse/internal/tui/list"
)

func render(item string, selected bool) string {
	if selected {
		return "> " + item
	}
	return "  " + item
}

func rows(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("row%d", i)
	}
	return out
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestCursorList_Navigation(t *testing.T) {
	m := listview.NewCursorListModel(rows(5), 10, 80, render)

	tests := []struct {
		key  string
		want int
	}{
		{"up", 0},
		{"down", 1},
		{"j", 2},
		{"k", 1},
		{"end", 4},
		{"down", 4},
		{"home", 0},
	}
	for _, tt := range tests {
		assert.True(t, m.HandleKey(key(tt.key)), tt.key)
		assert.Equal(t, tt.want, m.Selected(), "after %s", tt.key)
	}

	assert.False(t, m.HandleKey(key("x")), "non-navigation keys are not consumed")
}

func TestCursorList_Window(t *testing.T) {
	m := listview.NewCursorListModel(rows(100), 10, 80, render)

	assert.Equal(t, 0, m.VisibleFrom())
	assert.Equal(t, 10, m.VisibleTo())

	m.SetSelected(50)
	assert.Equal(t, 45, m.VisibleFrom())
	assert.Equal(t, 55, m.VisibleTo())

	m.SetSelected(99)
	assert.Equal(t, 90, m.VisibleFrom())
	assert.Equal(t, 100, m.VisibleTo())

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 10)
	assert.Equal(t, "> row99", lines[9])
}

func TestCursorList_SetItemsKeepsCursor(t *testing.T) {
	m := listview.NewCursorListModel(rows(10), 5, 80, render)
	m.SetSelected(9)

	m.SetItems(rows(20))
	assert.Equal(t, 9, m.Selected())
	assert.Equal(t, 20, m.ItemCount())

	m.SetItems(rows(3))
	assert.Equal(t, 2, m.Selected(), "clamped when the list shrinks")
}

func TestCursorList_Empty(t *testing.T) {
	m := listview.NewCursorListModel[string](nil, 5, 80, render)

	assert.Empty(t, m.View())
	assert.Nil(t, m.SelectedItem())
	m.HandleKey(key("down"))
	assert.Equal(t, 0, m.Selected())
}

func TestCursorList_SelectedItem(t *testing.T) {
	m := listview.NewCursorListModel(rows(3), 5, 80, render)
	m.SetSelected(1)

	item := m.SelectedItem()
	require.NotNil(t, item)
	assert.Equal(t, "row1", *item)
}

func TestCursorList_Resize(t *testing.T) {
	m := listview.NewCursorListModel(rows(3), 5, 80, render)
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Nil(t, cmd)
	assert.Equal(t, 120, m.Width())

	m.SetHeight(0)
	assert.Equal(t, 1, m.VisibleTo()-m.VisibleFrom())
}
