package tui_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/socialpulse/internal/tui"
)

func TestSnapshot_ListOnly(t *testing.T) {
	m := tui.NewTopUsersScreen(context.Background(), newFakeBackend(), opts(2))

	snap, err := m.Snapshot(context.Background(), 0, "")
	require.NoError(t, err)
	assert.Len(t, snap.Items, 2)
	assert.Empty(t, snap.Expanded)
	assert.Zero(t, snap.Page)

	_, err = m.Snapshot(context.Background(), 0, "")
	assert.ErrorIs(t, err, tui.ErrAlreadyStarted)
}

func TestSnapshot_ExpandTruncates(t *testing.T) {
	b := newFakeBackend()
	m := tui.NewTopUsersScreen(context.Background(), b, opts(10))

	snap, err := m.Snapshot(context.Background(), 0, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", snap.Expanded)
	require.Len(t, snap.Detail, 3)
	assert.Equal(t, "up1", snap.Detail[0].ID)
	assert.Equal(t, 1, b.calls("u1"))

	out := m.RenderTable(snap)
	assert.Contains(t, out, "Top users")
	assert.Contains(t, out, "@ada")
	assert.Contains(t, out, "post number 3")
	assert.NotContains(t, out, "post number 4")
}

func TestSnapshot_FeedPage(t *testing.T) {
	b := newFakeBackend().withPosts(25)
	m := tui.NewFeedScreen(context.Background(), b, opts(10))

	snap, err := m.Snapshot(context.Background(), 3, "")
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Page)
	require.Len(t, snap.Items, 5)
	assert.Equal(t, "P21", snap.Items[0].ID)
}

func TestSnapshot_ListFailure(t *testing.T) {
	b := newFakeBackend().withPosts(3)
	b.listErr = errors.New("boom")
	m := tui.NewTrendingScreen(context.Background(), b, opts(10))

	snap, err := m.Snapshot(context.Background(), 0, "P1")
	require.Error(t, err)
	assert.Equal(t, tui.ErrMsgTrending, snap.Error)
	assert.Empty(t, snap.Items)
	assert.Empty(t, snap.Detail)
	assert.Contains(t, m.RenderTable(snap), tui.ErrMsgTrending)
}

func TestSnapshot_RowNotFound(t *testing.T) {
	m := tui.NewTrendingScreen(context.Background(), newFakeBackend().withPosts(3), opts(10))

	_, err := m.Snapshot(context.Background(), 0, "nope")
	assert.ErrorIs(t, err, tui.ErrRowNotFound)
}

func TestSnapshot_DetailFailureIsEmpty(t *testing.T) {
	b := newFakeBackend().withPosts(3)
	b.detailErr = errors.New("404")
	m := tui.NewTrendingScreen(context.Background(), b, opts(10))

	snap, err := m.Snapshot(context.Background(), 0, "P1")
	require.NoError(t, err)
	assert.Empty(t, snap.Detail)
	assert.True(t, snap.DetailFailed)
	assert.Contains(t, m.RenderTable(snap), tui.EmptyComments)
}
