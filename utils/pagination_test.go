package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name      string
		rawPage   string
		rawLimit  string
		wantPage  int
		wantLimit int
		wantSkip  int
	}{
		{"defaults when absent", "", "", 1, 10, 0},
		{"normal values", "3", "20", 3, 20, 40},
		{"page below one clamps", "0", "10", 1, 10, 0},
		{"negative page clamps", "-5", "10", 1, 10, 0},
		{"limit above cap clamps", "1", "500", 1, 100, 0},
		{"zero limit clamps to one", "1", "0", 1, 1, 0},
		{"negative limit clamps to one", "2", "-5", 2, 1, 1},
		{"garbage falls back", "abc", "xyz", 1, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := NormalizePagination(tt.rawPage, tt.rawLimit, DefaultPageLimit)
			assert.Equal(t, tt.wantPage, opts.Page)
			assert.Equal(t, tt.wantLimit, opts.Limit)
			assert.Equal(t, tt.wantSkip, opts.Skip)
		})
	}
}

func TestPaginateResponse(t *testing.T) {
	items := []string{"a", "b", "c"}

	result := PaginateResponse(items, 25, PaginationOptions{Page: 2, Limit: 10, Skip: 10})
	assert.EqualValues(t, 25, result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNextPage)
	assert.True(t, result.Pagination.HasPrevPage)

	result = PaginateResponse(items, 30, PaginationOptions{Page: 3, Limit: 10, Skip: 20})
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNextPage)
}

func TestPaginateResponseEmpty(t *testing.T) {
	result := PaginateResponse([]string{}, 0, PaginationOptions{Page: 1, Limit: 10})

	assert.Equal(t, 0, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasNextPage)
	assert.False(t, result.Pagination.HasPrevPage)
}
