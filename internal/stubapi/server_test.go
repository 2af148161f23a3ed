package stubapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/socialpulse/internal/social"
	"github.com/rshade/socialpulse/internal/stubapi"
)

func get(t *testing.T, h http.Handler, target string, out any) int {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	if out != nil && rec.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
	}
	return rec.Code
}

func TestDefaultFixtures_Shape(t *testing.T) {
	fx := stubapi.DefaultFixtures()

	require.Len(t, fx.Users, 4)
	require.Len(t, fx.Posts, 12)
	assert.Equal(t, 4, fx.Users[0].PostCount)
	assert.Equal(t, 0, fx.Users[3].PostCount, "last user has no posts")
	assert.Len(t, fx.UserPosts["u1"], 4)
	for _, p := range fx.Posts {
		assert.Equal(t, len(fx.Comments[p.ID]), p.CommentCount, p.ID)
	}
}

func TestRouter_TopUsersLimit(t *testing.T) {
	h := stubapi.NewRouter(stubapi.DefaultFixtures(), zerolog.Nop())

	var users []social.UserSummary
	require.Equal(t, http.StatusOK, get(t, h, "/users/top?limit=2", &users))
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
	assert.True(t, users[0].Avatar.Present())
	assert.False(t, users[1].Avatar.Present())
}

func TestRouter_FeedPaging(t *testing.T) {
	h := stubapi.NewRouter(stubapi.DefaultFixtures(), zerolog.Nop())

	var page1, page2, page3 []social.PostSummary
	require.Equal(t, http.StatusOK, get(t, h, "/posts/feed?page=1&limit=10", &page1))
	require.Equal(t, http.StatusOK, get(t, h, "/posts/feed?page=2&limit=10", &page2))
	require.Equal(t, http.StatusOK, get(t, h, "/posts/feed?page=3&limit=10", &page3))

	assert.Len(t, page1, 10)
	assert.Len(t, page2, 2)
	assert.Empty(t, page3)
	assert.NotNil(t, page3, "past the end is an empty array, not null")
	assert.Equal(t, "p11", page2[0].ID)
}

func TestRouter_FeedHugePage(t *testing.T) {
	h := stubapi.NewRouter(stubapi.DefaultFixtures(), zerolog.Nop())

	for _, target := range []string{
		"/posts/feed?page=9223372036854775807&limit=10",
		"/posts/feed?page=4611686018427387904&limit=100",
	} {
		var page []social.PostSummary
		require.Equal(t, http.StatusOK, get(t, h, target, &page), target)
		assert.Empty(t, page, target)
	}
}

func TestRouter_TrendingOrdersByComments(t *testing.T) {
	h := stubapi.NewRouter(stubapi.DefaultFixtures(), zerolog.Nop())

	var posts []social.PostSummary
	require.Equal(t, http.StatusOK, get(t, h, "/posts/trending?limit=5", &posts))
	require.Len(t, posts, 5)
	for i := 1; i < len(posts); i++ {
		assert.GreaterOrEqual(t, posts[i-1].CommentCount, posts[i].CommentCount)
	}
}

func TestRouter_Details(t *testing.T) {
	h := stubapi.NewRouter(stubapi.DefaultFixtures(), zerolog.Nop())

	var userPosts []social.UserPost
	assert.Equal(t, http.StatusOK, get(t, h, "/users/u2/posts", &userPosts))
	assert.Len(t, userPosts, 4)

	var none []social.UserPost
	assert.Equal(t, http.StatusOK, get(t, h, "/users/u4/posts", &none))
	assert.Empty(t, none)

	var comments []social.Comment
	assert.Equal(t, http.StatusOK, get(t, h, "/posts/p3/comments", &comments))
	assert.Len(t, comments, 2)

	assert.Equal(t, http.StatusNotFound, get(t, h, "/users/nobody/posts", nil))
	assert.Equal(t, http.StatusNotFound, get(t, h, "/posts/nothing/comments", nil))
}

func TestHandler_CORS(t *testing.T) {
	h := stubapi.Handler(stubapi.DefaultFixtures(), zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLoadFixtures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
users:
  - id: u9
    username: zed
    post_count: 1
posts:
  - id: p9
    content: hi
    created_at: 2025-01-02T03:04:05Z
    author:
      id: u9
      username: zed
user_posts:
  u9:
    - id: p9
      content: hi
`), 0o600))

	fx, err := stubapi.LoadFixtures(path)
	require.NoError(t, err)
	require.Len(t, fx.Users, 1)
	assert.Equal(t, "zed", fx.Posts[0].Author.Handle)
	assert.Len(t, fx.UserPosts["u9"], 1)

	_, err = stubapi.LoadFixtures(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
