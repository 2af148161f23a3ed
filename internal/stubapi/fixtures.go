package stubapi

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/rshade/socialpulse/internal/social"
)

// Fixtures is the data set served by the stub backend. Users and Posts are served
// in slice order; the backend's own ranking is assumed to have been applied already.
type Fixtures struct {
	Users     []social.UserSummary         `yaml:"users"`
	Posts     []social.PostSummary         `yaml:"posts"`
	UserPosts map[string][]social.UserPost `yaml:"user_posts"`
	Comments  map[string][]social.Comment  `yaml:"comments"`
}

// LoadFixtures reads a YAML fixture file.
func LoadFixtures(path string) (*Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures %s: %w", path, err)
	}
	var fx Fixtures
	if err = yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("parsing fixtures %s: %w", path, err)
	}
	return &fx, nil
}

// DefaultFixtures returns a small built-in data set: four users (one without any
// posts), a dozen posts (enough for two feed pages at the default page size) and
// some comments.
func DefaultFixtures() *Fixtures {
	base := time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC)
	users := []social.UserSummary{
		{ID: "u1", Handle: "ada", Email: "ada@example.com", Avatar: social.NewRef("https://cdn.example.com/ada.png")},
		{ID: "u2", Handle: "grace", Email: "grace@example.com"},
		{ID: "u3", Handle: "linus", Email: "linus@example.com"},
		{ID: "u4", Handle: "margaret", Email: "margaret@example.com"},
	}

	authorCount := len(users) - 1

	fx := &Fixtures{
		UserPosts: map[string][]social.UserPost{},
		Comments:  map[string][]social.Comment{},
	}

	bodies := []string{
		"Shipping the new analytics pipeline today.",
		"Anyone else benchmarking JSON decoders this week?",
		"Coffee, then code review.",
		"Wrote up notes on cursor pagination.",
		"Hot take: tabs.",
		"The build is green. Nobody touch anything.",
		"Refactoring the feed service, wish me luck.",
		"TIL about monotonic ULIDs.",
		"Debugging a race that only happens on Fridays.",
		"Reading about CRDTs again.",
		"New blog post on terminal UIs.",
		"Release candidate is out.",
	}
	for i, body := range bodies {
		author := users[i%authorCount]
		post := social.PostSummary{
			ID:        fmt.Sprintf("p%d", i+1),
			Author:    author.AsAuthor(),
			Body:      body,
			CreatedAt: base.Add(-time.Duration(i) * time.Hour),
		}
		if i%4 == 0 {
			post.Media = social.NewRef(fmt.Sprintf("https://cdn.example.com/media/%d.jpg", i+1))
		}
		fx.Posts = append(fx.Posts, post)
		fx.UserPosts[author.ID] = append(fx.UserPosts[author.ID], social.UserPost{
			ID: post.ID, Body: post.Body, CreatedAt: post.CreatedAt,
		})

		for j := 0; j < (i % 3); j++ {
			commenter := users[(i+j+1)%len(users)]
			fx.Comments[post.ID] = append(fx.Comments[post.ID], social.Comment{
				ID:        fmt.Sprintf("c%d-%d", i+1, j+1),
				Body:      fmt.Sprintf("Reply %d from @%s", j+1, commenter.Handle),
				CreatedAt: post.CreatedAt.Add(time.Duration(j+1) * time.Minute),
				Author:    commenter.AsAuthor(),
			})
		}
		fx.Posts[i].CommentCount = len(fx.Comments[post.ID])
	}

	for i := range users {
		users[i].PostCount = len(fx.UserPosts[users[i].ID])
	}
	fx.Users = users
	return fx
}
