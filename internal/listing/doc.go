// Package listing implements the list controller behind every list screen.
//
// A Controller holds the summaries shown on a screen, the fetch status, the feed
// page cursor and the single expanded row. It is deliberately free of I/O and of
// any UI framework: callers ask it for a Request, perform the fetch however they
// like, and hand the result back to Complete. Results for superseded requests
// are discarded.
//
// Expansion is single-selection. Expanding B while A is expanded collapses A.
package listing
