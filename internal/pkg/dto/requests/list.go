package requests

import (
	"net/url"
	"strconv"

	"finddoctor-service/internal/pkg/constvars"
)

// ListQuery carries the pagination and filter state every list view keeps:
// page, size, search term and an optional status-style filter.
type ListQuery struct {
	Page   int
	Size   int
	Search string
	Filter string
}

// ParseListQuery reads the query the same way every list view builds it. Pages
// are zero based toward the core API.
func ParseListQuery(values url.Values, filterParam string) ListQuery {
	query := ListQuery{
		Page: 0,
		Size: constvars.DefaultPageSize,
	}
	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 0 {
		query.Page = page
	}
	if size, err := strconv.Atoi(values.Get("size")); err == nil && size > 0 {
		query.Size = size
	}
	query.Search = values.Get("search")
	if filterParam != "" {
		query.Filter = values.Get(filterParam)
	}
	return query
}

func (q ListQuery) Values(filterParam string) url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("size", strconv.Itoa(q.Size))
	if q.Search != "" {
		values.Set("search", q.Search)
	}
	if q.Filter != "" && filterParam != "" {
		values.Set(filterParam, q.Filter)
	}
	return values
}
