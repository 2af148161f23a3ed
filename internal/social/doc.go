// Package social defines the entities exchanged with the social analytics backend.
//
// Summary entities (UserSummary, PostSummary) are what list screens show one row
// per item. Detail items (UserPost, Comment) are fetched only when a row is
// expanded. Optional assets such as avatars and media are modelled with Ref so
// that renderers test presence explicitly instead of relying on empty strings.
package social
