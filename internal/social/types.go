package social

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// fallbackInitial is rendered when a handle is empty.
const fallbackInitial = "?"

// Ref is an optional reference to a remote asset such as an avatar or attached media.
// A zero Ref is absent; JSON null, a missing key and "" all decode to an absent Ref.
type Ref struct {
	url string
}

// NewRef returns a Ref for url. An empty url yields an absent Ref.
func NewRef(url string) Ref {
	return Ref{url: strings.TrimSpace(url)}
}

// Present reports whether the reference points at something.
func (r Ref) Present() bool {
	return r.url != ""
}

// URL returns the referenced location, or "" when absent.
func (r Ref) URL() string {
	return r.url
}

// MarshalJSON encodes an absent Ref as null.
func (r Ref) MarshalJSON() ([]byte, error) {
	if !r.Present() {
		return []byte("null"), nil
	}
	return json.Marshal(r.url)
}

// UnmarshalJSON decodes a JSON string or null.
func (r *Ref) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*r = Ref{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = NewRef(s)
	return nil
}

// MarshalYAML encodes the Ref as a plain string for fixture files.
func (r Ref) MarshalYAML() (interface{}, error) {
	return r.url, nil
}

// UnmarshalYAML decodes a plain string.
func (r *Ref) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	*r = NewRef(s)
	return nil
}

// Entity is a summary entity that can occupy a row in a list screen.
type Entity interface {
	EntityID() string
}

// Author is the compact user embedded in posts and comments.
type Author struct {
	ID     string `json:"_id"            yaml:"id"`
	Handle string `json:"username"       yaml:"username"`
	Avatar Ref    `json:"profilePicture" yaml:"profile_picture"`
}

// UserSummary is a user as listed on the top users screen.
type UserSummary struct {
	ID        string `json:"_id"             yaml:"id"`
	Handle    string `json:"username"        yaml:"username"`
	Email     string `json:"email,omitempty" yaml:"email"`
	Avatar    Ref    `json:"profilePicture"  yaml:"profile_picture"`
	PostCount int    `json:"postCount"       yaml:"post_count"`
}

// EntityID implements Entity.
func (u UserSummary) EntityID() string { return u.ID }

// AsAuthor returns the user-lite form of u.
func (u UserSummary) AsAuthor() Author {
	return Author{ID: u.ID, Handle: u.Handle, Avatar: u.Avatar}
}

// PostSummary is a post as listed on the feed and trending screens.
type PostSummary struct {
	ID           string    `json:"_id"          yaml:"id"`
	Author       Author    `json:"userId"       yaml:"author"`
	Body         string    `json:"content"      yaml:"content"`
	Media        Ref       `json:"media"        yaml:"media"`
	CreatedAt    time.Time `json:"createdAt"    yaml:"created_at"`
	CommentCount int       `json:"commentCount" yaml:"comment_count"`
}

// EntityID implements Entity.
func (p PostSummary) EntityID() string { return p.ID }

// UserPost is one of a user's posts, shown when a user row is expanded.
// It carries no author because it is already scoped to a known user.
type UserPost struct {
	ID        string    `json:"_id"       yaml:"id"`
	Body      string    `json:"content"   yaml:"content"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
}

// Comment is a comment on a post, shown when a post row is expanded.
type Comment struct {
	ID        string    `json:"_id"       yaml:"id"`
	Body      string    `json:"content"   yaml:"content"`
	CreatedAt time.Time `json:"createdAt" yaml:"created_at"`
	Author    Author    `json:"userId"    yaml:"author"`
}

// Initial returns the avatar fallback glyph for handle: its first character, upper-cased.
func Initial(handle string) string {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return fallbackInitial
	}
	r, _ := utf8.DecodeRuneInString(handle)
	if r == utf8.RuneError {
		return fallbackInitial
	}
	return string(unicode.ToUpper(r))
}
