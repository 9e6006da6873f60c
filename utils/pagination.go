// utils/pagination.go
package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// PaginationOptions is the normalized page/limit/skip triple used by the
// lifecycle services for list queries.
type PaginationOptions struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Skip  int `json:"skip"`
}

// PaginationMeta describes the shape of a paginated result set.
type PaginationMeta struct {
	Total       int64 `json:"total"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	TotalPages  int   `json:"totalPages"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// PaginatedResult wraps a page of items with its pagination metadata.
type PaginatedResult struct {
	Data       interface{}    `json:"data"`
	Pagination PaginationMeta `json:"pagination"`
}

// NormalizePagination clamps raw page/limit values: page >= 1, limit
// clamped into [1,100], falling back to defaultLimit when absent or
// unparseable.
func NormalizePagination(rawPage, rawLimit string, defaultLimit int) PaginationOptions {
	if defaultLimit <= 0 {
		defaultLimit = DefaultPageLimit
	}

	page := 1
	if p, err := strconv.Atoi(rawPage); err == nil && p > 1 {
		page = p
	}

	limit := defaultLimit
	if l, err := strconv.Atoi(rawLimit); err == nil {
		limit = l
	}
	if limit < 1 {
		limit = 1
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return PaginationOptions{
		Page:  page,
		Limit: limit,
		Skip:  (page - 1) * limit,
	}
}

// GetPaginationOptions reads page/limit from the request query.
func GetPaginationOptions(c *gin.Context) PaginationOptions {
	return NormalizePagination(c.Query("page"), c.Query("limit"), DefaultPageLimit)
}

// PaginateResponse shapes a page of data into the standard envelope.
func PaginateResponse(data interface{}, total int64, opts PaginationOptions) PaginatedResult {
	totalPages := 0
	if total > 0 {
		totalPages = int((total + int64(opts.Limit) - 1) / int64(opts.Limit))
	}

	return PaginatedResult{
		Data: data,
		Pagination: PaginationMeta{
			Total:       total,
			Page:        opts.Page,
			Limit:       opts.Limit,
			TotalPages:  totalPages,
			HasNextPage: opts.Page < totalPages,
			HasPrevPage: opts.Page > 1,
		},
	}
}
