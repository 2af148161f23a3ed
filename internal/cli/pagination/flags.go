package pagination

import (
	"errors"
	"fmt"

	"github.com/spf13/pflag"
)

// Validation limits. MaxLimit matches the largest page the backend serves.
const (
	DefaultPage = 1
	MinPage     = 1
	MinLimit    = 1
	MaxLimit    = 100
)

// Common validation errors.
var (
	ErrInvalidPage  = errors.New("page must be >= 1")
	ErrInvalidLimit = fmt.Errorf("limit must be between %d and %d", MinLimit, MaxLimit)
)

// Params holds the pagination flags of one command.
type Params struct {
	// Page is the 1-based page number. Only paged lists read it.
	Page int

	// Limit is the request size: the number of rows, or the page size.
	Limit int
}

// NewParams returns params with the given default limit.
func NewParams(defaultLimit int) *Params {
	return &Params{Page: DefaultPage, Limit: defaultLimit}
}

// AddLimitFlag registers --limit on fs.
func (p *Params) AddLimitFlag(fs *pflag.FlagSet, usage string) {
	fs.IntVar(&p.Limit, "limit", p.Limit, usage)
}

// AddPageFlag registers --page on fs.
func (p *Params) AddPageFlag(fs *pflag.FlagSet) {
	fs.IntVar(&p.Page, "page", p.Page, "1-based page number for non-interactive output")
}

// Validate checks the flag values (value receiver).
func (p Params) Validate() error {
	if p.Page < MinPage {
		return fmt.Errorf("%w, got %d", ErrInvalidPage, p.Page)
	}
	if p.Limit < MinLimit || p.Limit > MaxLimit {
		return fmt.Errorf("%w, got %d", ErrInvalidLimit, p.Limit)
	}
	return nil
}
