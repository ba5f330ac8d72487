package params

import (
	"net/url"
	"strconv"
)

// QueryParams carries common pagination and search values parsed from a
// request's query string.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string

	values url.Values
}

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 50
	MaxPageSize       = 500
)

func NewQueryParams(values url.Values) QueryParams {
	p := QueryParams{
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
		Search:     values.Get("search"),
		values:     values,
	}
	if n, err := strconv.Atoi(values.Get("page")); err == nil && n > 0 {
		p.PageNumber = n
	}
	if n, err := strconv.Atoi(values.Get("page_size")); err == nil && n > 0 {
		if n > MaxPageSize {
			n = MaxPageSize
		}
		p.PageSize = n
	}
	return p
}

func (p QueryParams) Offset() int {
	return (p.PageNumber - 1) * p.PageSize
}

// Get returns a raw query value beyond the common ones.
func (p QueryParams) Get(key string) string {
	return p.values.Get(key)
}

// Add sets a value on the underlying query set, for re-serialization.
func (p *QueryParams) Add(key, value string) {
	if p.values == nil {
		p.values = url.Values{}
	}
	p.values.Set(key, value)
}

func (p QueryParams) Encode() string {
	return p.values.Encode()
}
