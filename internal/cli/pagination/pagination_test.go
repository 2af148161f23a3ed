package pagination

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Validate(t *testing.T) {
	tests := []struct {
		name    string
		params  Params
		wantErr error
	}{
		{
			name:   "valid default",
			params: *NewParams(10),
		},
		{
			name:   "max limit",
			params: Params{Page: 7, Limit: MaxLimit},
		},
		{
			name:    "zero page",
			params:  Params{Page: 0, Limit: 10},
			wantErr: ErrInvalidPage,
		},
		{
			name:    "negative page",
			params:  Params{Page: -2, Limit: 10},
			wantErr: ErrInvalidPage,
		},
		{
			name:    "zero limit",
			params:  Params{Page: 1, Limit: 0},
			wantErr: ErrInvalidLimit,
		},
		{
			name:    "limit too large",
			params:  Params{Page: 1, Limit: MaxLimit + 1},
			wantErr: ErrInvalidLimit,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParams_Flags(t *testing.T) {
	p := NewParams(10)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	p.AddLimitFlag(fs, "rows")
	p.AddPageFlag(fs)

	require.NoError(t, fs.Parse([]string{"--page", "3", "--limit", "25"}))
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
}

func TestNewMeta(t *testing.T) {
	tests := []struct {
		name     string
		returned int
		wantMore bool
	}{
		{name: "full page", returned: 10, wantMore: true},
		{name: "short page", returned: 4, wantMore: false},
		{name: "empty page", returned: 0, wantMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := NewMeta(Params{Page: 2, Limit: 10}, tt.returned)
			assert.Equal(t, 2, meta.Page)
			assert.Equal(t, 10, meta.Limit)
			assert.Equal(t, tt.returned, meta.Returned)
			assert.Equal(t, tt.wantMore, meta.MayHaveMore)
		})
	}
}
