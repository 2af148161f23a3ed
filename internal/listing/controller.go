package listing

import (
	"github.com/rs/zerolog"

	"github.com/rshade/socialpulse/internal/social"
)

// Status is the fetch status of a list or of a row's detail.
type Status int

const (
	// StatusIdle means nothing has been requested yet.
	StatusIdle Status = iota
	// StatusLoading means a request is in flight.
	StatusLoading
	// StatusLoaded means the last request succeeded.
	StatusLoaded
	// StatusError means the last request failed.
	StatusError
)

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Mode selects how a list is requested.
type Mode int

const (
	// ModeFixed issues a single request with a fixed limit (top users, trending).
	ModeFixed Mode = iota
	// ModePaged requests 1-based pages and appends each one (feed).
	ModePaged
)

// FirstPage is the page requested on mount.
const FirstPage = 1

// Options configures a Controller.
type Options struct {
	Mode Mode
	// Limit is the request size: the fixed limit, or the page size in ModePaged.
	Limit int
	// ErrorMessage is the static text shown for any list failure.
	ErrorMessage string
	// StopOnEmptyPage disables LoadMore after an empty page. Off by default: the
	// backend gives no has-more signal, so a list may keep requesting past the end.
	StopOnEmptyPage bool
	Logger          zerolog.Logger
}

// Request describes one list fetch the caller must perform and report back via Complete.
type Request struct {
	Seq    uint64
	Page   int
	Limit  int
	Append bool
}

// Controller owns a list screen's summaries, fetch status, page cursor and the
// single expanded entity id. It performs no I/O: Start and LoadMore hand out
// Requests, and Complete applies their results. All methods must be called from
// one goroutine (the UI event loop).
type Controller[T social.Entity] struct {
	opts Options
	log  zerolog.Logger

	items  []T
	status Status
	errMsg string

	page          int
	loadingMore   bool
	firstLoaded   bool
	exhausted     bool
	lastBatchSize int

	// seq identifies the only request whose result may still be applied.
	seq uint64

	expandedID  string
	hasExpanded bool
}

// New returns an idle controller.
func New[T social.Entity](opts Options) *Controller[T] {
	if opts.Limit < 1 {
		opts.Limit = 1
	}
	return &Controller[T]{
		opts: opts,
		log:  opts.Logger,
	}
}

// Start moves idle→loading and returns the initial request. Only the first call returns ok.
func (c *Controller[T]) Start() (Request, bool) {
	if c.status != StatusIdle {
		return Request{}, false
	}
	c.status = StatusLoading
	c.page = FirstPage
	c.seq++
	req := Request{Seq: c.seq, Limit: c.opts.Limit}
	if c.opts.Mode == ModePaged {
		req.Page = c.page
	}
	c.log.Debug().Uint64("seq", req.Seq).Int("page", req.Page).Int("limit", req.Limit).Msg("initial load")
	return req, true
}

// CanLoadMore reports whether the load-more affordance is enabled.
func (c *Controller[T]) CanLoadMore() bool {
	return c.opts.Mode == ModePaged &&
		c.firstLoaded &&
		len(c.items) > 0 &&
		!c.loadingMore &&
		c.status != StatusLoading &&
		!c.exhausted
}

// LoadMore increments the page counter and returns the request for the next page.
// Rows already loaded stay visible while it is in flight.
func (c *Controller[T]) LoadMore() (Request, bool) {
	if !c.CanLoadMore() {
		return Request{}, false
	}
	c.page++
	c.loadingMore = true
	c.seq++
	req := Request{Seq: c.seq, Page: c.page, Limit: c.opts.Limit, Append: true}
	c.log.Debug().Uint64("seq", req.Seq).Int("page", req.Page).Msg("load more")
	return req, true
}

// Complete applies the outcome of req. It returns false when req is stale and was ignored.
func (c *Controller[T]) Complete(req Request, batch []T, err error) bool {
	if req.Seq != c.seq {
		c.log.Debug().Uint64("seq", req.Seq).Uint64("current", c.seq).Msg("discarding stale list response")
		return false
	}
	// Each request applies at most once.
	c.seq++

	if req.Append {
		c.loadingMore = false
	}

	if err != nil {
		c.log.Error().Err(err).Int("page", req.Page).Bool("append", req.Append).Msg("list fetch failed")
		c.status = StatusError
		c.errMsg = c.opts.ErrorMessage
		if req.Append {
			// The page was not loaded; the next attempt asks for it again.
			c.page--
		}
		return true
	}

	c.status = StatusLoaded
	c.errMsg = ""
	c.lastBatchSize = len(batch)

	if req.Append {
		c.items = append(c.items, batch...)
		if len(batch) == 0 {
			c.log.Debug().Int("page", req.Page).Msg("empty page")
			if c.opts.StopOnEmptyPage {
				c.exhausted = true
			}
		}
		return true
	}

	c.items = append([]T(nil), batch...)
	c.firstLoaded = true
	return true
}

// Items returns the summaries in server order.
func (c *Controller[T]) Items() []T {
	return c.items
}

// Status returns the current list status.
func (c *Controller[T]) Status() Status {
	return c.status
}

// Err returns the static error message, or "" when the last request succeeded.
func (c *Controller[T]) Err() string {
	return c.errMsg
}

// Page returns the page counter (1-based; 0 before Start).
func (c *Controller[T]) Page() int {
	return c.page
}

// LoadingInitial reports whether the first request is in flight.
func (c *Controller[T]) LoadingInitial() bool {
	return c.status == StatusLoading
}

// LoadingMore reports whether a load-more request is in flight.
func (c *Controller[T]) LoadingMore() bool {
	return c.loadingMore
}

// Exhausted reports whether load-more was disabled by an empty page.
// It is only ever true with StopOnEmptyPage.
func (c *Controller[T]) Exhausted() bool {
	return c.exhausted
}

// LastBatchSize returns the size of the most recently applied batch.
func (c *Controller[T]) LastBatchSize() int {
	return c.lastBatchSize
}

// Paged reports whether the list paginates.
func (c *Controller[T]) Paged() bool {
	return c.opts.Mode == ModePaged
}

// Toggle collapses id if it is the expanded entity, otherwise expands it,
// implicitly collapsing whatever was expanded before.
func (c *Controller[T]) Toggle(id string) {
	if c.hasExpanded && c.expandedID == id {
		c.Collapse()
		return
	}
	c.expandedID = id
	c.hasExpanded = true
}

// Collapse clears the expansion.
func (c *Controller[T]) Collapse() {
	c.expandedID = ""
	c.hasExpanded = false
}

// Expanded returns the expanded entity id, if any.
func (c *Controller[T]) Expanded() (string, bool) {
	return c.expandedID, c.hasExpanded
}

// IsExpanded reports whether id is the expanded entity.
func (c *Controller[T]) IsExpanded(id string) bool {
	return c.hasExpanded && c.expandedID == id
}
