// Package listing implements the paginated, filtered listing contract shared
// by every collection endpoint: page/pageSize parsing with clamping, optional
// case-insensitive substring filters, allow-listed sort keys, and the meta
// envelope returned alongside the data slice.
package listing

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// Defaults applied when the caller omits the pagination query parameters.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Params carries the normalized listing inputs for a single request.
// Page and PageSize are always >= 1; Filters holds only non-empty values;
// SortKey is always a member of the entity's allow-list.
type Params struct {
	Page     int
	PageSize int
	Filters  map[string]string
	SortKey  string
}

// Offset returns the number of records to skip for the current page.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// Limit returns the maximum number of records for the current page.
func (p Params) Limit() int {
	return p.PageSize
}

// Sort declares the sort keys an entity accepts. Default is used when the
// requested key is absent or not in Allowed; an unknown key is never an error.
type Sort struct {
	Default string
	Allowed []string
}

// Resolve maps a requested sort key onto the allow-list, falling back to the
// default. Matching is case-insensitive.
func (s Sort) Resolve(key string) string {
	key = strings.TrimSpace(key)
	for _, allowed := range s.Allowed {
		if strings.EqualFold(key, allowed) {
			return allowed
		}
	}
	return s.Default
}

// Normalize clamps page and pageSize to a minimum of 1. Out-of-range values
// are corrected, never rejected.
func Normalize(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// ParseParams reads page, pageSize, sort, and the entity's filter query
// parameters from the request. Malformed numbers fall back to the defaults;
// filters with empty values are dropped.
func ParseParams(c *gin.Context, sort Sort, filterKeys ...string) Params {
	page := parseIntDefault(c.Query("page"), DefaultPage)
	pageSize := parseIntDefault(c.Query("pageSize"), DefaultPageSize)
	page, pageSize = Normalize(page, pageSize)

	filters := make(map[string]string)
	for _, key := range filterKeys {
		if value := strings.TrimSpace(c.Query(key)); value != "" {
			filters[key] = value
		}
	}

	return Params{
		Page:     page,
		PageSize: pageSize,
		Filters:  filters,
		SortKey:  sort.Resolve(c.Query("orderBy")),
	}
}

// Meta is the pagination descriptor accompanying every list response.
type Meta struct {
	TotalItems int `json:"totalItems"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// NewMeta computes the page descriptor for a filtered total.
// totalPages is ceil(totalItems / pageSize).
func NewMeta(totalItems, page, pageSize int) Meta {
	page, pageSize = Normalize(page, pageSize)
	if totalItems < 0 {
		totalItems = 0
	}

	return Meta{
		TotalItems: totalItems,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: (totalItems + pageSize - 1) / pageSize,
	}
}

// Page is the envelope returned by every collection endpoint.
type Page[T any] struct {
	Meta Meta `json:"meta"`
	Data []T  `json:"data"`
}

// NewPage assembles the list envelope. A nil items slice becomes an empty
// one so out-of-range pages serialize as "data": [].
func NewPage[T any](items []T, totalItems int, params Params) Page[T] {
	if items == nil {
		items = []T{}
	}

	return Page[T]{
		Meta: NewMeta(totalItems, params.Page, params.PageSize),
		Data: items,
	}
}

func parseIntDefault(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
