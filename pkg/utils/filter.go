package utils

import (
	"net/url"
	"strconv"
)

// Filter carries list-endpoint query parameters.
type Filter struct {
	Limit  uint64
	Offset uint64
	Search string
}

func ParseFilterFromQuery(values url.Values) Filter {
	filter := Filter{Limit: 20, Offset: 0}

	if limit, err := strconv.ParseUint(values.Get("limit"), 10, 64); err == nil && limit > 0 && limit <= 200 {
		filter.Limit = limit
	}
	if offset, err := strconv.ParseUint(values.Get("offset"), 10, 64); err == nil {
		filter.Offset = offset
	}
	filter.Search = values.Get("search")
	return filter
}
