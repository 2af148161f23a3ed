package tui

import (
	"context"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rshade/socialpulse/internal/listing"
	"github.com/rshade/socialpulse/internal/logging"
	"github.com/rshade/socialpulse/internal/social"
	"github.com/rshade/socialpulse/internal/tui/detail"
)

// Static list error messages. The concrete cause is only logged.
const (
	ErrMsgTopUsers = "Failed to load top users"
	ErrMsgTrending = "Failed to load trending posts"
	ErrMsgFeed     = "Failed to load feed"
)

// Headings and empty states of an expanded row.
const (
	TitleUserPosts = "Recent Posts"
	TitleComments  = "Comments"
	EmptyUserPosts = "No posts yet"
	EmptyComments  = "No comments yet"
)

// bodyPreviewLen bounds post bodies in table output.
const bodyPreviewLen = 48

// Backend is the subset of the API client the screens need.
type Backend interface {
	TopUsers(ctx context.Context, limit int) ([]social.UserSummary, error)
	UserPosts(ctx context.Context, userID string) ([]social.UserPost, error)
	TrendingPosts(ctx context.Context, limit int) ([]social.PostSummary, error)
	Feed(ctx context.Context, page, limit int) ([]social.PostSummary, error)
	PostComments(ctx context.Context, postID string) ([]social.Comment, error)
}

// ScreenOptions carries the configuration shared by the screen constructors.
type ScreenOptions struct {
	// Limit is the fixed request size, or the page size of the feed.
	Limit int
	// UserPostsShown truncates an expanded user's posts. Zero shows all of them.
	UserPostsShown int
	// StopOnEmptyPage disables load more after an empty feed page.
	StopOnEmptyPage bool
	// ShowDetailErrors renders failed detail fetches as an error instead of the empty state.
	ShowDetailErrors bool
	DetailTimeout    time.Duration
	Logger           zerolog.Logger
}

// UsersScreen lists top users and expands them into their recent posts.
type UsersScreen = ScreenModel[social.UserSummary, social.UserPost]

// PostsScreen lists posts and expands them into their comments.
type PostsScreen = ScreenModel[social.PostSummary, social.Comment]

// NewTopUsersScreen creates the top users screen.
func NewTopUsersScreen(ctx context.Context, b Backend, opts ScreenOptions) *UsersScreen {
	return NewScreenModel(ctx, ScreenConfig[social.UserSummary, social.UserPost]{
		Title:       "Top users",
		LoadingText: "Loading top users…",
		EmptyText:   "No users yet",
		List: listing.Options{
			Mode:         listing.ModeFixed,
			Limit:        opts.Limit,
			ErrorMessage: ErrMsgTopUsers,
		},
		FetchList: func(ctx context.Context, req listing.Request) ([]social.UserSummary, error) {
			return b.TopUsers(ctx, req.Limit)
		},
		Detail:       detail.Options{ShowLimit: opts.UserPostsShown, Timeout: opts.DetailTimeout},
		FetchDetail:  b.UserPosts,
		DetailTitle:  TitleUserPosts,
		EmptyDetail:  EmptyUserPosts,
		DetailError:  detailError(opts, "Could not load posts"),
		SummaryCard:  UserCard,
		DetailLine:   UserPostLine,
		TableHeaders: []string{"ID", "User", "Email", "Posts", "Avatar"},
		TableRow:     userRow,
		Logger:       logging.ComponentLogger(opts.Logger, "users"),
	})
}

// NewTrendingScreen creates the trending posts screen.
func NewTrendingScreen(ctx context.Context, b Backend, opts ScreenOptions) *PostsScreen {
	return NewScreenModel(ctx, postsConfig(b, opts, ScreenConfig[social.PostSummary, social.Comment]{
		Title:       "Trending posts",
		LoadingText: "Loading trending posts…",
		EmptyText:   "No trending posts",
		List: listing.Options{
			Mode:         listing.ModeFixed,
			Limit:        opts.Limit,
			ErrorMessage: ErrMsgTrending,
		},
		FetchList: func(ctx context.Context, req listing.Request) ([]social.PostSummary, error) {
			return b.TrendingPosts(ctx, req.Limit)
		},
		Logger: logging.ComponentLogger(opts.Logger, "trending"),
	}))
}

// NewFeedScreen creates the paginated feed screen.
func NewFeedScreen(ctx context.Context, b Backend, opts ScreenOptions) *PostsScreen {
	return NewScreenModel(ctx, postsConfig(b, opts, ScreenConfig[social.PostSummary, social.Comment]{
		Title:       "Feed",
		LoadingText: "Loading feed…",
		EmptyText:   "Your feed is empty",
		List: listing.Options{
			Mode:            listing.ModePaged,
			Limit:           opts.Limit,
			ErrorMessage:    ErrMsgFeed,
			StopOnEmptyPage: opts.StopOnEmptyPage,
		},
		FetchList: func(ctx context.Context, req listing.Request) ([]social.PostSummary, error) {
			return b.Feed(ctx, req.Page, req.Limit)
		},
		Logger: logging.ComponentLogger(opts.Logger, "feed"),
	}))
}

// postsConfig fills in the comment detail and post presentation shared by trending and feed.
func postsConfig(
	b Backend,
	opts ScreenOptions,
	cfg ScreenConfig[social.PostSummary, social.Comment],
) ScreenConfig[social.PostSummary, social.Comment] {
	cfg.Detail = detail.Options{Timeout: opts.DetailTimeout}
	cfg.FetchDetail = b.PostComments
	cfg.DetailTitle = TitleComments
	cfg.EmptyDetail = EmptyComments
	cfg.DetailError = detailError(opts, "Could not load comments")
	cfg.SummaryCard = PostCard
	cfg.DetailLine = CommentLine
	cfg.TableHeaders = []string{"ID", "Author", "Post", "Comments", "Media", "Created"}
	cfg.TableRow = postRow
	return cfg
}

func detailError(opts ScreenOptions, msg string) string {
	if !opts.ShowDetailErrors {
		return ""
	}
	return msg
}

// UserCard builds the card of a top user.
func UserCard(u social.UserSummary) Card {
	return Card{
		Avatar: u.Avatar,
		Handle: u.Handle,
		Meta:   u.Email,
		Badge:  FormatCount(u.PostCount, "post", "posts"),
	}
}

// PostCard builds the card of a feed or trending post.
func PostCard(p social.PostSummary) Card {
	return Card{
		Avatar: p.Author.Avatar,
		Handle: p.Author.Handle,
		Meta:   FormatTime(p.CreatedAt),
		Badge:  FormatCount(p.CommentCount, "comment", "comments"),
		Body:   p.Body,
		Media:  p.Media,
	}
}

// UserPostLine renders one of a user's posts under the expanded user.
func UserPostLine(p social.UserPost) string {
	if ts := FormatTime(p.CreatedAt); ts != "" {
		return p.Body + "  " + SubtleStyle.Render(ts)
	}
	return p.Body
}

// CommentLine renders one comment under the expanded post.
func CommentLine(c social.Comment) string {
	line := renderAvatar(c.Author.Avatar, c.Author.Handle) + " " +
		HandleStyle.Render("@"+c.Author.Handle) + " " + c.Body
	if ts := FormatTime(c.CreatedAt); ts != "" {
		line += "  " + SubtleStyle.Render(ts)
	}
	return line
}

func userRow(u social.UserSummary) []string {
	return []string{u.ID, "@" + u.Handle, u.Email, printer.Sprintf("%d", u.PostCount), yesNo(u.Avatar.Present())}
}

func postRow(p social.PostSummary) []string {
	return []string{
		p.ID,
		"@" + p.Author.Handle,
		truncate(p.Body, bodyPreviewLen),
		strconv.Itoa(p.CommentCount),
		yesNo(p.Media.Present()),
		FormatTime(p.CreatedAt),
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// truncate shortens s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
