package tui

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/socialpulse/internal/tui/detail"
)

// ErrAlreadyStarted is returned when Snapshot is called on a screen whose list was already requested.
var ErrAlreadyStarted = errors.New("screen already started")

// ErrRowNotFound is returned when the row to expand is not in the fetched list.
var ErrRowNotFound = errors.New("row not found")

// Snapshot is one non-interactive rendering of a screen.
type Snapshot[S, D any] struct {
	Page         int    `json:"page,omitempty"`
	Items        []S    `json:"items"`
	Error        string `json:"error,omitempty"`
	Expanded     string `json:"expanded,omitempty"`
	Detail       []D    `json:"detail,omitempty"`
	DetailFailed bool   `json:"detail_failed,omitempty"`
}

// Snapshot fetches the list once and, when expandID is set, the detail of that
// row, concurrently. page selects the feed page and is ignored by fixed-size lists.
func (m *ScreenModel[S, D]) Snapshot(ctx context.Context, page int, expandID string) (Snapshot[S, D], error) {
	req, ok := m.ctrl.Start()
	if !ok {
		return Snapshot[S, D]{}, ErrAlreadyStarted
	}
	if m.ctrl.Paged() && page > 0 {
		req.Page = page
	}

	g, gctx := errgroup.WithContext(ctx)

	var items []S
	var listErr error
	g.Go(func() error {
		items, listErr = m.cfg.FetchList(gctx, req)
		return listErr
	})

	var loader *detail.Loader[D]
	var detailMsg tea.Msg
	if expandID != "" {
		m.ctrl.Toggle(expandID)
		loader = detail.New(gctx, expandID, m.cfg.FetchDetail, m.cfg.Detail)
		fetch := loader.Sync(true)
		g.Go(func() error {
			detailMsg = fetch()
			return nil
		})
	}

	waitErr := g.Wait()
	m.ctrl.Complete(req, items, listErr)
	snap := Snapshot[S, D]{Page: req.Page, Items: m.ctrl.Items(), Error: m.ctrl.Err()}
	if waitErr != nil {
		return snap, fmt.Errorf("%s: %w", snap.Error, waitErr)
	}

	if loader == nil {
		return snap, nil
	}
	if !slices.ContainsFunc(snap.Items, func(s S) bool { return s.EntityID() == expandID }) {
		return snap, fmt.Errorf("%w: %q", ErrRowNotFound, expandID)
	}
	if msg, ok := detailMsg.(detail.LoadedMsg[D]); ok {
		loader.Update(msg)
	}
	snap.Expanded = expandID
	snap.Detail = loader.Visible()
	snap.DetailFailed = loader.Failed()
	return snap, nil
}

// RenderTable renders a snapshot as a plain table followed by the expanded row's detail.
func (m *ScreenModel[S, D]) RenderTable(snap Snapshot[S, D]) string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(m.cfg.Title))
	b.WriteString("\n")

	if snap.Error != "" {
		b.WriteString(CriticalStyle.Render(snap.Error))
		b.WriteString("\n")
		return b.String()
	}
	if len(snap.Items) == 0 {
		b.WriteString(SubtleStyle.Render(m.cfg.EmptyText))
		b.WriteString("\n")
		return b.String()
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorBorder)).
		Headers(m.cfg.TableHeaders...)
	for _, item := range snap.Items {
		t.Row(m.cfg.TableRow(item)...)
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	if snap.Expanded == "" {
		return b.String()
	}

	b.WriteString("\n")
	b.WriteString(HandleStyle.Render(m.cfg.DetailTitle) + " " + SubtleStyle.Render(snap.Expanded))
	b.WriteString("\n")
	switch {
	case len(snap.Detail) > 0:
		for _, d := range snap.Detail {
			b.WriteString("  • " + m.cfg.DetailLine(d) + "\n")
		}
	case snap.DetailFailed && m.cfg.DetailError != "":
		b.WriteString("  " + CriticalStyle.Render(m.cfg.DetailError) + "\n")
	default:
		b.WriteString("  " + SubtleStyle.Render(m.cfg.EmptyDetail) + "\n")
	}
	return b.String()
}
