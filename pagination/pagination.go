// Package pagination shapes the uniform paginated envelope used by every
// list endpoint. It is pure: malformed input falls back to defaults and no
// operation here can fail.
package pagination

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Derive resolves page and limit from raw query values, applying defaults
// and clamping the limit. Non-numeric and out-of-range values fall back
// silently.
func Derive(pageRaw, limitRaw string) (page, limit int) {
	page = DefaultPage
	limit = DefaultLimit
	if p, err := strconv.Atoi(pageRaw); err == nil && p >= 1 {
		page = p
	}
	if l, err := strconv.Atoi(limitRaw); err == nil && l >= 1 && l <= MaxLimit {
		limit = l
	}
	return page, limit
}

// Meta describes the position of a page within the full result set.
type Meta struct {
	Total        int64 `json:"total"`
	TotalPages   int   `json:"totalPages"`
	CurrentPage  int   `json:"currentPage"`
	ItemsPerPage int   `json:"itemsPerPage"`
	HasNext      bool  `json:"hasNext"`
	HasPrev      bool  `json:"hasPrev"`
}

// Envelope is the uniform list response shape.
type Envelope struct {
	Data       interface{} `json:"data"`
	Pagination Meta        `json:"pagination"`
}

// NewEnvelope wraps one page of items with its pagination metadata.
// totalPages is ceil(total/limit).
func NewEnvelope(data interface{}, total int64, page, limit int) Envelope {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Envelope{
		Data: data,
		Pagination: Meta{
			Total:        total,
			TotalPages:   totalPages,
			CurrentPage:  page,
			ItemsPerPage: limit,
			HasNext:      page < totalPages,
			HasPrev:      page > 1,
		},
	}
}
