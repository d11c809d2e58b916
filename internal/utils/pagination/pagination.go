// Package pagination implements the page/limit windowing used by list endpoints.
package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// Params holds a normalized page window.
type Params struct {
	Page  int
	Limit int
}

// Parse normalizes raw query values. Absent or non-numeric values fall back to
// the defaults; zero and negative values are treated the same way.
func Parse(pageStr, limitStr string) Params {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 {
		limit = DefaultLimit
	}
	return Params{Page: page, Limit: limit}
}

// Offset returns the row offset for the window.
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit).
func (p Params) TotalPages(total int64) int {
	if total <= 0 {
		return 0
	}
	pages := total / int64(p.Limit)
	if total%int64(p.Limit) != 0 {
		pages++
	}
	return int(pages)
}
