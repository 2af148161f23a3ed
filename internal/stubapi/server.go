package stubapi

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/rshade/socialpulse/internal/social"
)

// Query defaults applied when the client omits or mangles a parameter.
const (
	defaultLimit = 10
	defaultPage  = 1
	maxLimit     = 100

	shutdownTimeout = 5 * time.Second
)

// NewRouter returns the gin engine serving fx on the backend's five read endpoints.
func NewRouter(fx *Fixtures, logger zerolog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	h := &handlers{fx: fx}
	r.GET("/users/top", h.topUsers)
	r.GET("/users/:id/posts", h.userPosts)
	r.GET("/posts/trending", h.trendingPosts)
	r.GET("/posts/feed", h.feed)
	r.GET("/posts/:id/comments", h.postComments)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// Handler wraps the router with permissive read-only CORS so browser dashboards can use the stub too.
func Handler(fx *Fixtures, logger zerolog.Logger) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
	})
	return c.Handler(NewRouter(fx, logger))
}

// Serve runs the stub on addr until ctx is cancelled.
func Serve(ctx context.Context, addr string, fx *Fixtures, logger zerolog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Handler(fx, logger),
		ReadHeaderTimeout: shutdownTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", addr).Msg("stub backend listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func requestLogger(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetHeader("X-Request-ID")).
			Int("status", c.Writer.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("stub request")
	}
}

type handlers struct {
	fx *Fixtures
}

func (h *handlers) topUsers(c *gin.Context) {
	limit := min(queryInt(c, "limit", defaultLimit), maxLimit)
	c.JSON(http.StatusOK, head(h.fx.Users, limit))
}

func (h *handlers) userPosts(c *gin.Context) {
	id := c.Param("id")
	if !h.hasUser(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, nonNil(h.fx.UserPosts[id]))
}

func (h *handlers) trendingPosts(c *gin.Context) {
	limit := min(queryInt(c, "limit", defaultLimit), maxLimit)
	posts := make([]social.PostSummary, len(h.fx.Posts))
	copy(posts, h.fx.Posts)
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CommentCount > posts[j].CommentCount
	})
	c.JSON(http.StatusOK, head(posts, limit))
}

// feed returns [] past the last page; the real backend offers no has-more signal either.
func (h *handlers) feed(c *gin.Context) {
	page := queryInt(c, "page", defaultPage)
	limit := min(queryInt(c, "limit", defaultLimit), maxLimit)

	// Compare pages before multiplying so a huge ?page= cannot overflow.
	if page-1 > len(h.fx.Posts)/limit {
		c.JSON(http.StatusOK, []social.PostSummary{})
		return
	}
	start := (page - 1) * limit
	if start >= len(h.fx.Posts) {
		c.JSON(http.StatusOK, []social.PostSummary{})
		return
	}
	end := min(start+limit, len(h.fx.Posts))
	c.JSON(http.StatusOK, h.fx.Posts[start:end])
}

func (h *handlers) postComments(c *gin.Context) {
	id := c.Param("id")
	if !h.hasPost(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "post not found"})
		return
	}
	c.JSON(http.StatusOK, nonNil(h.fx.Comments[id]))
}

func (h *handlers) hasUser(id string) bool {
	for _, u := range h.fx.Users {
		if u.ID == id {
			return true
		}
	}
	return false
}

func (h *handlers) hasPost(id string) bool {
	for _, p := range h.fx.Posts {
		if p.ID == id {
			return true
		}
	}
	return false
}

// queryInt reads a positive integer query parameter.
func queryInt(c *gin.Context, name string, fallback int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

func head[T any](items []T, n int) []T {
	if len(items) <= n {
		return nonNil(items)
	}
	return items[:n]
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
