package handlers

import (
	"errors"
	"strconv"
)

// Pagination is the metadata attached to every list response. Totals are
// computed over the filtered set, not the returned slice.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalCount  int  `json:"totalCount"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
}

func parsePaginationParams(pageStr, limitStr string, defaultLimit int) (int, int, error) {
	page := 1
	limit := defaultLimit

	if pageStr != "" {
		p, err := strconv.Atoi(pageStr)
		if err != nil || p < 1 {
			return 0, 0, errors.New("invalid pagination params")
		}
		page = p
	}

	if limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 1 {
			return 0, 0, errors.New("invalid pagination params")
		}
		limit = l
	}

	return page, limit, nil
}

// paginate slices items to the requested page. A page past the end yields
// an empty slice with the request's page still echoed in the metadata.
// The range check comes before any index arithmetic so arbitrarily large
// page or limit values cannot overflow into a bad slice bound.
func paginate[T any](items []T, page, limit int) ([]T, Pagination) {
	total := len(items)

	meta := Pagination{
		CurrentPage: page,
		TotalCount:  total,
		HasPrevPage: page > 1,
	}
	if total > 0 {
		meta.TotalPages = 1 + (total-1)/limit
	}

	if page > meta.TotalPages {
		return items[total:], meta
	}

	start := (page - 1) * limit
	end := total
	if remaining := total - start; limit < remaining {
		end = start + limit
	}
	meta.HasNextPage = end < total
	return items[start:end], meta
}
