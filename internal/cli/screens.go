package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/socialpulse/internal/api"
	"github.com/rshade/socialpulse/internal/cli/pagination"
	"github.com/rshade/socialpulse/internal/config"
	"github.com/rshade/socialpulse/internal/logging"
	"github.com/rshade/socialpulse/internal/social"
	"github.com/rshade/socialpulse/internal/tui"
)

// screenFlags are the flags shared by the users, trending and feed commands.
type screenFlags struct {
	params *pagination.Params
	output string
	expand string
}

func addScreenFlags(cmd *cobra.Command, f *screenFlags, limitUsage string, paged bool) {
	// Zero means "take the limit from config"; resolved in RunE once config is loaded.
	f.params = pagination.NewParams(0)
	f.params.AddLimitFlag(cmd.Flags(), limitUsage)
	if paged {
		f.params.AddPageFlag(cmd.Flags())
	}
	cmd.Flags().StringVar(&f.expand, "expand", "", "id of the row to expand on load")
	cmd.Flags().StringVarP(&f.output, "output", "o", string(tui.OutputAuto),
		"output mode: auto, interactive, table, json")
}

// resolve fills in config defaults, validates the flags and picks the output mode.
func (f *screenFlags) resolve(cmd *cobra.Command, defaultLimit int) (tui.OutputMode, error) {
	if !cmd.Flags().Changed("limit") {
		f.params.Limit = defaultLimit
	}
	if err := f.params.Validate(); err != nil {
		return "", err
	}
	mode, err := tui.ParseOutputMode(f.output)
	if err != nil {
		return "", err
	}
	out, _ := cmd.OutOrStdout().(*os.File)
	return tui.ResolveOutputMode(mode, out), nil
}

// NewUsersCmd creates the users command: top users, expandable into their recent posts.
func NewUsersCmd() *cobra.Command {
	var f screenFlags
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Show the top users and their recent posts",
		Example: `  # Browse interactively
  socialpulse users

  # Print the top 5 users with the posts of one of them
  socialpulse users --limit 5 --expand u1 --output table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			mode, err := f.resolve(cmd, cfg.Screens.TopUsers.Limit)
			if err != nil {
				return err
			}
			backend, err := newBackend(cmd, cfg)
			if err != nil {
				return err
			}
			m := tui.NewTopUsersScreen(cmd.Context(), backend, screenOptions(cmd, cfg, f.params.Limit))
			return runScreen(cmd, m, mode, &f)
		},
	}
	addScreenFlags(cmd, &f, "number of users to show (default from config)", false)
	return cmd
}

// NewTrendingCmd creates the trending command: trending posts, expandable into their comments.
func NewTrendingCmd() *cobra.Command {
	var f screenFlags
	cmd := &cobra.Command{
		Use:   "trending",
		Short: "Show trending posts and their comments",
		Example: `  socialpulse trending
  socialpulse trending --expand P1 --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			mode, err := f.resolve(cmd, cfg.Screens.Trending.Limit)
			if err != nil {
				return err
			}
			backend, err := newBackend(cmd, cfg)
			if err != nil {
				return err
			}
			m := tui.NewTrendingScreen(cmd.Context(), backend, screenOptions(cmd, cfg, f.params.Limit))
			return runScreen(cmd, m, mode, &f)
		},
	}
	addScreenFlags(cmd, &f, "number of posts to show (default from config)", false)
	return cmd
}

// NewFeedCmd creates the feed command: the paginated feed, expandable into comments.
// Interactive mode always starts at page 1 and loads further pages with [m].
func NewFeedCmd() *cobra.Command {
	var f screenFlags
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Browse the paginated feed",
		Example: `  socialpulse feed
  socialpulse feed --page 3 --limit 20 --output table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			mode, err := f.resolve(cmd, cfg.Screens.Feed.PageSize)
			if err != nil {
				return err
			}
			backend, err := newBackend(cmd, cfg)
			if err != nil {
				return err
			}
			m := tui.NewFeedScreen(cmd.Context(), backend, screenOptions(cmd, cfg, f.params.Limit))
			return runScreen(cmd, m, mode, &f)
		},
	}
	addScreenFlags(cmd, &f, "page size (default from config)", true)
	return cmd
}

func newBackend(cmd *cobra.Command, cfg *config.Config) (*api.Client, error) {
	log := logging.FromContext(cmd.Context())
	client, err := api.NewClient(cfg.API.BaseURL,
		api.WithTimeout(cfg.API.Timeout),
		api.WithLogger(logging.ComponentLogger(log, "api")),
	)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}
	return client, nil
}

func screenOptions(cmd *cobra.Command, cfg *config.Config, limit int) tui.ScreenOptions {
	return tui.ScreenOptions{
		Limit:            limit,
		UserPostsShown:   cfg.Detail.UserPostsShown,
		StopOnEmptyPage:  cfg.Screens.Feed.StopOnEmptyPage,
		ShowDetailErrors: cfg.Detail.ShowErrors,
		DetailTimeout:    cfg.API.Timeout,
		Logger:           logging.FromContext(cmd.Context()),
	}
}

// jsonOutput is the document printed by --output json.
type jsonOutput[S, D any] struct {
	tui.Snapshot[S, D]

	Pagination *pagination.Meta `json:"pagination,omitempty"`
}

func runScreen[S social.Entity, D any](
	cmd *cobra.Command,
	m *tui.ScreenModel[S, D],
	mode tui.OutputMode,
	f *screenFlags,
) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if mode == tui.OutputInteractive {
		if f.expand != "" {
			m.ExpandOnLoad(f.expand)
		}
		p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("running TUI: %w", err)
		}
		return nil
	}

	page := 0
	if m.Controller().Paged() {
		page = f.params.Page
	}
	snap, err := m.Snapshot(ctx, page, f.expand)
	if errors.Is(err, tui.ErrAlreadyStarted) {
		return err
	}

	if renderErr := renderSnapshot(cmd, m, mode, snap, f.params.Limit); renderErr != nil {
		return renderErr
	}

	if err != nil {
		log.Error().Ctx(ctx).Err(err).Str("expand", f.expand).Msg("snapshot failed")
		if snap.Error != "" {
			return &ExitError{Code: ExitCodeListFailed, Err: err}
		}
		return err
	}
	log.Debug().Ctx(ctx).
		Int("items", len(snap.Items)).
		Int("detail_items", len(snap.Detail)).
		Msg("snapshot rendered")
	return nil
}

func renderSnapshot[S social.Entity, D any](
	cmd *cobra.Command,
	m *tui.ScreenModel[S, D],
	mode tui.OutputMode,
	snap tui.Snapshot[S, D],
	limit int,
) error {
	if mode != tui.OutputJSON {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), m.RenderTable(snap))
		return nil
	}

	doc := jsonOutput[S, D]{Snapshot: snap}
	if snap.Page > 0 {
		meta := pagination.NewMeta(pagination.Params{Page: snap.Page, Limit: limit}, len(snap.Items))
		doc.Pagination = &meta
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}
	return nil
}
