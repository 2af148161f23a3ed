package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/socialpulse/internal/config"
)

// isolate points the config home at a temp dir and clears env overrides.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv(config.EnvHome, dir)
	for _, key := range []string{config.EnvAPIURL, config.EnvLogLevel, config.EnvLogFormat, config.EnvConfigPath} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := config.Load(filepath.Join(dir, "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, config.DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, config.DefaultAPITimeout, cfg.API.Timeout)
	assert.Equal(t, 10, cfg.Screens.TopUsers.Limit)
	assert.Equal(t, 10, cfg.Screens.Feed.PageSize)
	assert.Equal(t, 3, cfg.Detail.UserPostsShown)
	assert.False(t, cfg.Screens.Feed.StopOnEmptyPage)
	assert.False(t, cfg.Detail.ShowErrors)
	assert.Equal(t, filepath.Join(dir, "socialpulse.log"), cfg.Logging.File)
}

func TestLoad_File(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.yaml", `
version: 1.2.0
api:
  base_url: http://api.example:8080
  timeout: 3s
screens:
  feed:
    page_size: 25
    stop_on_empty_page: true
detail:
  show_errors: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://api.example:8080", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 25, cfg.Screens.Feed.PageSize)
	assert.True(t, cfg.Screens.Feed.StopOnEmptyPage)
	assert.True(t, cfg.Detail.ShowErrors)
	assert.Equal(t, 10, cfg.Screens.Trending.Limit, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.yaml", "api:\n  base_url: http://from-file:1\n")
	t.Setenv(config.EnvAPIURL, "http://from-env:2")
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://from-env:2", cfg.API.BaseURL)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.yaml", "")
	writeFile(t, dir, ".env", "SOCIALPULSE_API_URL=http://dotenv:7000\n")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://dotenv:7000", cfg.API.BaseURL)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := isolate(t)
	path := writeFile(t, dir, "config.yaml", "api: [unclosed")

	_, err := config.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestValidate(t *testing.T) {
	isolate(t)

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr string
	}{
		{name: "defaults valid", mutate: func(*config.Config) {}},
		{name: "empty version allowed", mutate: func(c *config.Config) { c.Version = "" }},
		{name: "relative url", mutate: func(c *config.Config) { c.API.BaseURL = "/api" }, wantErr: "base_url"},
		{name: "zero page size", mutate: func(c *config.Config) { c.Screens.Feed.PageSize = 0 }, wantErr: "page_size"},
		{name: "negative shown", mutate: func(c *config.Config) { c.Detail.UserPostsShown = -1 }, wantErr: "user_posts_shown"},
		{name: "negative timeout", mutate: func(c *config.Config) { c.API.Timeout = -time.Second }, wantErr: "timeout"},
		{name: "future major", mutate: func(c *config.Config) { c.Version = "2.0.0" }, wantErr: "incompatible"},
		{name: "garbage version", mutate: func(c *config.Config) { c.Version = "latest" }, wantErr: "incompatible"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "sub", "config.yaml")

	cfg := config.Default()
	cfg.Screens.Trending.Limit = 42
	require.NoError(t, cfg.Save(path))

	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 42, loaded.Screens.Trending.Limit)
	assert.Equal(t, config.DefaultAPITimeout, loaded.API.Timeout)
}

func TestGlobalConfig(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { config.SetGlobalConfig(nil) })

	assert.Equal(t, config.DefaultAPIBaseURL, config.GetGlobalConfig().API.BaseURL)

	cfg := config.Default()
	cfg.API.BaseURL = "http://global:1"
	config.SetGlobalConfig(cfg)
	assert.Equal(t, "http://global:1", config.GetGlobalConfig().API.BaseURL)
}

func TestToLoggingConfig(t *testing.T) {
	lc := config.LoggingConfig{Level: "warn", Format: "console"}
	assert.Equal(t, "stderr", lc.ToLoggingConfig().Output)

	lc.File = "/tmp/x.log"
	out := lc.ToLoggingConfig()
	assert.Equal(t, "file", out.Output)
	assert.Equal(t, "/tmp/x.log", out.File)
	assert.Equal(t, "warn", out.Level)
}
