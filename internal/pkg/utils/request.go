package utils

import (
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/dto/requests"
	"net/http"
	"strconv"
)

func BuildPaginationRequest(r *http.Request) requests.Pagination {
	query := r.URL.Query()

	page, err := strconv.Atoi(query.Get(constvars.QueryParamPage))
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(query.Get(constvars.QueryParamPageSize))
	if err != nil || pageSize <= 0 {
		pageSize = constvars.DefaultSearchPageSize
	}
	if pageSize > constvars.MaxSearchPageSize {
		pageSize = constvars.MaxSearchPageSize
	}

	return requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

func ParseLimit(r *http.Request, defaultLimit, maxLimit int) int {
	limit, err := strconv.Atoi(r.URL.Query().Get(constvars.QueryParamLimit))
	if err != nil || limit <= 0 {
		return defaultLimit
	}
	if limit > maxLimit {
		return maxLimit
	}
	return limit
}
