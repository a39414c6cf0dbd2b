// Package pagination normalizes untrusted list-query input (page, pageSize,
// search, sort) into a bounded descriptor and provides the uniform page
// envelope every list endpoint returns.
package pagination

import (
	"net/url"
	"strconv"
	"strings"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MinPageSize     = 1
	MaxPageSize     = 100

	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// Params is the normalized pagination/sort/search descriptor built from raw
// query parameters. It is always usable: malformed input degrades to defaults
// instead of failing.
type Params struct {
	Page          int
	PageSize      int
	Search        string
	SortField     string
	SortDirection string
}

// Parse builds Params from raw query values. It never returns an error;
// non-numeric or out-of-range page values clamp to safe defaults, and a sort
// key is accepted only as "field:asc" or "field:desc" (anything else drops
// both sort fields together). Sort field whitelisting is left to the
// repository consuming the descriptor.
func Parse(query url.Values) Params {
	p := Params{
		Page:     DefaultPage,
		PageSize: DefaultPageSize,
	}

	if n, err := strconv.Atoi(strings.TrimSpace(query.Get("page"))); err == nil {
		p.Page = n
	}
	if p.Page < DefaultPage {
		p.Page = DefaultPage
	}

	if n, err := strconv.Atoi(strings.TrimSpace(query.Get("pageSize"))); err == nil {
		p.PageSize = n
	}
	if p.PageSize < MinPageSize {
		p.PageSize = MinPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}

	p.Search = strings.TrimSpace(query.Get("search"))

	if sort := strings.TrimSpace(query.Get("sort")); sort != "" {
		field, direction, ok := strings.Cut(sort, ":")
		if ok && (direction == DirectionAsc || direction == DirectionDesc) && field != "" {
			p.SortField = field
			p.SortDirection = direction
		}
	}

	return p
}

// Offset returns the 0-based row offset for the current page.
func (p Params) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// HasSearch reports whether a non-empty search term was supplied.
func (p Params) HasSearch() bool {
	return p.Search != ""
}

// HasSort reports whether a valid sort pair was supplied.
func (p Params) HasSort() bool {
	return p.SortField != "" && p.SortDirection != ""
}

// Page is the uniform envelope returned by every list endpoint.
type Page[T any] struct {
	Rows     []T   `json:"rows"`
	Total    int64 `json:"total"`
	Page     int   `json:"page"`
	PageSize int   `json:"pageSize"`
}

// NewPage wraps rows with the echoed request parameters. A nil slice is
// normalized to an empty one so the JSON rows field is never null.
func NewPage[T any](rows []T, total int64, p Params) Page[T] {
	if rows == nil {
		rows = []T{}
	}
	return Page[T]{
		Rows:     rows,
		Total:    total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

// EmptyPage is the shape-preserving fallback for failed list queries.
func EmptyPage[T any](p Params) Page[T] {
	return NewPage[T](nil, 0, p)
}
