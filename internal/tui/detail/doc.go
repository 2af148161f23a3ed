// Package detail provides lazy loading of the nested content shown under an expanded row.
//
// A Loader is bound to one entity id. It fetches only while its row is expanded,
// discards what it fetched when the row collapses, and refetches on the next
// expansion. Each expansion carries a generation number so that a response
// arriving after the row was collapsed (or collapsed and expanded again) is dropped.
//
// Fetch failures are logged and render as an empty detail region.
package detail
