package pagination

// Meta describes the page a snapshot was taken from.
type Meta struct {
	Page     int `json:"page"     yaml:"page"`
	Limit    int `json:"limit"    yaml:"limit"`
	Returned int `json:"returned" yaml:"returned"`
	// MayHaveMore is a guess: a full page suggests another one exists. A short
	// or empty page is the only end-of-list signal the backend gives.
	MayHaveMore bool `json:"may_have_more" yaml:"may_have_more"`
}

// NewMeta builds page metadata for a page that returned the given number of rows.
func NewMeta(params Params, returned int) Meta {
	return Meta{
		Page:        params.Page,
		Limit:       params.Limit,
		Returned:    returned,
		MayHaveMore: returned > 0 && returned >= params.Limit,
	}
}
