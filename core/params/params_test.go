package params

import (
	"net/url"
	"testing"
)

func TestNewQueryParams(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantPage   int
		wantSize   int
		wantOffset int
	}{
		{"defaults", "", 1, DefaultPageSize, 0},
		{"explicit paging", "page=3&page_size=20", 3, 20, 40},
		{"size capped", "page_size=9999", 1, MaxPageSize, 0},
		{"garbage falls back", "page=abc&page_size=-5", 1, DefaultPageSize, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			values, _ := url.ParseQuery(tc.query)
			qp := NewQueryParams(values)
			if qp.PageNumber != tc.wantPage || qp.PageSize != tc.wantSize {
				t.Errorf("page = %d size = %d, want %d/%d", qp.PageNumber, qp.PageSize, tc.wantPage, tc.wantSize)
			}
			if got := qp.Offset(); got != tc.wantOffset {
				t.Errorf("offset = %d, want %d", got, tc.wantOffset)
			}
		})
	}
}
