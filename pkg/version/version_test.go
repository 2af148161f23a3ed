package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	assert.NotEmpty(t, GetVersion())

	prev := version
	t.Cleanup(func() { version = prev })
	version = "v9.9.9"
	assert.Equal(t, "v9.9.9", GetVersion())
}
