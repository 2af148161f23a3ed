package detail

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rshade/socialpulse/internal/logging"
)

// Status is the lifecycle of one row's detail.
type Status int

const (
	// StatusIdle means the row is collapsed and holds no detail.
	StatusIdle Status = iota
	// StatusLoading means a fetch for the current expansion is in flight.
	StatusLoading
	// StatusLoaded means the fetch finished. A failed fetch also ends here, with no items.
	StatusLoaded
)

// Fetcher retrieves the nested detail of one entity.
type Fetcher[D any] func(ctx context.Context, id string) ([]D, error)

// LoadedMsg is delivered to the Bubble Tea update loop when a detail fetch finishes.
type LoadedMsg[D any] struct {
	ID    string
	Gen   uint64
	Items []D
	Err   error
}

// Options configures a Loader.
type Options struct {
	// ShowLimit truncates Visible to the first N items. Zero shows everything.
	ShowLimit int
	// Timeout bounds each fetch. Zero means no deadline beyond the HTTP client's.
	Timeout time.Duration
	Logger  zerolog.Logger
}

// Loader lazily fetches the detail of a single row. It starts fetching when the
// row is expanded and throws everything away when the row collapses, so every
// expansion costs exactly one request.
type Loader[D any] struct {
	ctx   context.Context //nolint:containedctx // Fetches run after the call that expands the row returns.
	id    string
	fetch Fetcher[D]
	opts  Options
	log   zerolog.Logger

	expanded bool
	status   Status
	items    []D
	failed   bool

	// gen changes on every expansion change; responses carrying an older gen are dropped.
	gen uint64
}

// New returns a collapsed loader for the entity id. Fetches run under ctx.
func New[D any](ctx context.Context, id string, fetch Fetcher[D], opts Options) *Loader[D] {
	return &Loader[D]{
		ctx:   ctx,
		id:    id,
		fetch: fetch,
		opts:  opts,
		log:   opts.Logger.With().Str("entity_id", id).Logger(),
	}
}

// Sync tells the loader whether its row is expanded. On collapsed→expanded it
// enters loading and returns the fetch command; on expanded→collapsed it drops
// its items. Calls that do not change the expansion return nil.
func (l *Loader[D]) Sync(expanded bool) tea.Cmd {
	if expanded == l.expanded {
		return nil
	}
	l.expanded = expanded
	l.gen++
	l.items = nil
	l.failed = false

	if !expanded {
		l.status = StatusIdle
		return nil
	}

	l.status = StatusLoading
	l.log.Debug().Uint64("gen", l.gen).Msg("fetching detail")
	return l.fetchCmd(l.gen)
}

func (l *Loader[D]) fetchCmd(gen uint64) tea.Cmd {
	base, id, fetch, timeout := l.ctx, l.id, l.fetch, l.opts.Timeout
	traceID := logging.NewTraceID()
	return func() tea.Msg {
		ctx := logging.ContextWithTraceID(base, traceID)
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		items, err := fetch(ctx, id)
		return LoadedMsg[D]{ID: id, Gen: gen, Items: items, Err: err}
	}
}

// Update applies msg if it answers this loader's current expansion. It returns
// false for messages meant for another row or for an expansion that has since
// been collapsed.
func (l *Loader[D]) Update(msg LoadedMsg[D]) bool {
	if msg.ID != l.id {
		return false
	}
	if !l.expanded || msg.Gen != l.gen {
		l.log.Debug().Uint64("gen", msg.Gen).Uint64("current", l.gen).Msg("discarding stale detail response")
		return false
	}

	l.status = StatusLoaded
	if msg.Err != nil {
		l.log.Error().Err(msg.Err).Msg("detail fetch failed")
		l.items = nil
		l.failed = true
		return true
	}
	l.items = msg.Items
	l.failed = false
	return true
}

// ID returns the entity id the loader is bound to.
func (l *Loader[D]) ID() string {
	return l.id
}

// Expanded reports the last value passed to Sync.
func (l *Loader[D]) Expanded() bool {
	return l.expanded
}

// Status returns the detail lifecycle state.
func (l *Loader[D]) Status() Status {
	return l.status
}

// Items returns every fetched item in server order.
func (l *Loader[D]) Items() []D {
	return l.items
}

// Visible returns the items to display, truncated to ShowLimit.
func (l *Loader[D]) Visible() []D {
	if l.opts.ShowLimit > 0 && len(l.items) > l.opts.ShowLimit {
		return l.items[:l.opts.ShowLimit]
	}
	return l.items
}

// Failed reports whether the last fetch failed. The detail then renders as empty.
func (l *Loader[D]) Failed() bool {
	return l.failed
}
