package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/rshade/socialpulse/internal/config"
)

func TestConfigInit(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	out, err := execute(t, "--config", path, "config", "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration initialized successfully")
	assert.Contains(t, out, path)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.SchemaVersion, cfg.Version)
	assert.Equal(t, config.DefaultFeedPageSize, cfg.Screens.Feed.PageSize)
}

func TestConfigInit_ExistingRequiresForce(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("screens:\n  trending:\n    limit: 4\n"), 0o600))

	_, err := execute(t, "--config", path, "config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	_, err = execute(t, "--config", path, "config", "init", "--force")
	require.NoError(t, err)

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTrendingLimit, cfg.Screens.Trending.Limit)
}

func TestConfigInit_DefaultLocation(t *testing.T) {
	setupCLITest(t)

	_, err := execute(t, "config", "init")
	require.NoError(t, err)

	_, err = os.Stat(config.DefaultPath())
	assert.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	url := setupCLITest(t)

	out, err := execute(t, "--api-url", url, "config", "show")
	require.NoError(t, err)

	var cfg config.Config
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, url, cfg.API.BaseURL)
	assert.Equal(t, config.DefaultAPITimeout, cfg.API.Timeout)
}

func TestConfigValidate(t *testing.T) {
	setupCLITest(t)

	out, err := execute(t, "config", "validate", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "Configuration is valid")
	assert.Contains(t, out, "Feed page size: 10")
}

func TestConfigValidate_BadFile(t *testing.T) {
	setupCLITest(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 2.0.0\n"), 0o600))

	_, err := execute(t, "--config", path, "config", "validate")
	assert.ErrorIs(t, err, config.ErrIncompatibleVersion)
}
