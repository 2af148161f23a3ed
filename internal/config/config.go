package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvConfigPath = "SOCIALPULSE_CONFIG"
	EnvHome       = "SOCIALPULSE_HOME"
	EnvAPIURL     = "SOCIALPULSE_API_URL"
	EnvLogLevel   = "SOCIALPULSE_LOG_LEVEL"
	EnvLogFormat  = "SOCIALPULSE_LOG_FORMAT"
)

// Defaults mirror the limits the backend dashboards were built around.
const (
	DefaultAPIBaseURL     = "http://localhost:5000"
	DefaultAPITimeout     = 10 * time.Second
	DefaultTopUsersLimit  = 10
	DefaultTrendingLimit  = 10
	DefaultFeedPageSize   = 10
	DefaultUserPostsShown = 3
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "json"

	// SchemaVersion is written by `config init`.
	SchemaVersion = "1.0.0"
	// schemaConstraint accepts any config written by a compatible release.
	schemaConstraint = "^1.0.0"

	configDirName  = ".socialpulse"
	configFileName = "config.yaml"
	logFileName    = "socialpulse.log"
	envFileName    = ".env"
)

// ErrIncompatibleVersion is returned when a config file was written for an unsupported schema.
var ErrIncompatibleVersion = errors.New("incompatible config version")

// Config is the complete application configuration.
type Config struct {
	Version string        `yaml:"version"`
	API     APIConfig     `yaml:"api"`
	Screens ScreensConfig `yaml:"screens"`
	Detail  DetailConfig  `yaml:"detail"`
	Logging LoggingConfig `yaml:"logging"`
}

// APIConfig locates the backend.
type APIConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// ScreensConfig holds per-screen request sizes.
type ScreensConfig struct {
	TopUsers LimitConfig `yaml:"top_users"`
	Trending LimitConfig `yaml:"trending"`
	Feed     FeedConfig  `yaml:"feed"`
}

// LimitConfig is the fixed request size of a non-paginated screen.
type LimitConfig struct {
	Limit int `yaml:"limit"`
}

// FeedConfig configures the paginated feed.
type FeedConfig struct {
	PageSize int `yaml:"page_size"`
	// StopOnEmptyPage disables load-more after the backend returns an empty page.
	StopOnEmptyPage bool `yaml:"stop_on_empty_page"`
}

// DetailConfig configures expanded rows.
type DetailConfig struct {
	UserPostsShown int `yaml:"user_posts_shown"`
	// ShowErrors renders a distinct message when a detail fetch fails instead of the empty state.
	ShowErrors bool `yaml:"show_errors"`
}

// LoggingConfig configures the zerolog logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: SchemaVersion,
		API: APIConfig{
			BaseURL: DefaultAPIBaseURL,
			Timeout: DefaultAPITimeout,
		},
		Screens: ScreensConfig{
			TopUsers: LimitConfig{Limit: DefaultTopUsersLimit},
			Trending: LimitConfig{Limit: DefaultTrendingLimit},
			Feed:     FeedConfig{PageSize: DefaultFeedPageSize},
		},
		Detail: DetailConfig{UserPostsShown: DefaultUserPostsShown},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
			File:   filepath.Join(HomeDir(), logFileName),
		},
	}
}

// HomeDir returns the directory holding config, .env and logs.
func HomeDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return configDirName
	}
	return filepath.Join(home, configDirName)
}

// DefaultPath returns the config file path used when none is given.
func DefaultPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return filepath.Join(HomeDir(), configFileName)
}

// Load builds the configuration: defaults, then the YAML file at path (a missing
// file is not an error), then a socialpulse.yaml overlay in the working directory,
// then the .env file next to path, then environment variables.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
	default:
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if _, statErr := os.Stat(ProjectOverlayName); statErr == nil {
		if err = ShallowMergeYAML(cfg, ProjectOverlayName); err != nil {
			return nil, err
		}
	}

	// .env values never override variables already set in the environment.
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), envFileName))
	cfg.applyEnv(os.LookupEnv)

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvAPIURL); ok && v != "" {
		c.API.BaseURL = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookupEnv(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
}

// Validate checks the configuration for values that would break the screens.
func (c *Config) Validate() error {
	if err := checkVersion(c.Version); err != nil {
		return err
	}
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if c.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must be >= 0, got %s", c.API.Timeout)
	}
	for name, v := range map[string]int{
		"screens.top_users.limit": c.Screens.TopUsers.Limit,
		"screens.trending.limit":  c.Screens.Trending.Limit,
		"screens.feed.page_size":  c.Screens.Feed.PageSize,
	} {
		if v < 1 {
			return fmt.Errorf("%s must be >= 1, got %d", name, v)
		}
	}
	if c.Detail.UserPostsShown < 0 {
		return fmt.Errorf("detail.user_posts_shown must be >= 0, got %d", c.Detail.UserPostsShown)
	}
	return nil
}

// checkVersion accepts an empty version (hand-written files) or any version matching the schema constraint.
func checkVersion(v string) error {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	parsed, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("%w: %q is not a semantic version", ErrIncompatibleVersion, v)
	}
	constraint, err := semver.NewConstraint(schemaConstraint)
	if err != nil {
		return err
	}
	if !constraint.Check(parsed) {
		return fmt.Errorf("%w: %s does not satisfy %s", ErrIncompatibleVersion, v, schemaConstraint)
	}
	return nil
}

// Save writes cfg as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err = os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}

//nolint:gochecknoglobals // Process-wide configuration set once by the root command.
var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// SetGlobalConfig replaces the process-wide configuration.
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// GetGlobalConfig returns the process-wide configuration, falling back to defaults.
func GetGlobalConfig() *Config {
	globalMu.RLock()
	cfg := globalCfg
	globalMu.RUnlock()
	if cfg == nil {
		return Default()
	}
	return cfg
}
