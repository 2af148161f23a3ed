// Package pagination holds the --page and --limit flags shared by the list commands.
//
//   - Params: flag values and validation
//   - Meta: page metadata attached to JSON output
//
// The backend reports no totals, so Meta can only say whether another page
// might exist.
package pagination
