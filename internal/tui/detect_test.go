package tui_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/socialpulse/internal/tui"
)

func TestParseOutputMode(t *testing.T) {
	tests := []struct {
		in      string
		want    tui.OutputMode
		wantErr bool
	}{
		{in: "", want: tui.OutputAuto},
		{in: "auto", want: tui.OutputAuto},
		{in: "JSON", want: tui.OutputJSON},
		{in: " table ", want: tui.OutputTable},
		{in: "interactive", want: tui.OutputInteractive},
		{in: "yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := tui.ParseOutputMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveOutputMode(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })

	assert.Equal(t, tui.OutputJSON, tui.ResolveOutputMode(tui.OutputJSON, f))
	assert.Equal(t, tui.OutputTable, tui.ResolveOutputMode(tui.OutputAuto, f), "files are not terminals")
	assert.Equal(t, tui.OutputTable, tui.ResolveOutputMode(tui.OutputAuto, nil))
	assert.Equal(t, 80, tui.TerminalWidth(f))
}
