package utils

import (
	"caremarket-service/internal/pkg/constvars"
	"caremarket-service/internal/pkg/dto/requests"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationRequest(t *testing.T) {
	testCases := []struct {
		query    string
		expected requests.Pagination
	}{
		{query: "", expected: requests.Pagination{Page: 1, PageSize: constvars.DefaultSearchPageSize}},
		{query: "?page=3&page_size=5", expected: requests.Pagination{Page: 3, PageSize: 5}},
		{query: "?page=-1&page_size=abc", expected: requests.Pagination{Page: 1, PageSize: constvars.DefaultSearchPageSize}},
		{query: "?page_size=1000", expected: requests.Pagination{Page: 1, PageSize: constvars.MaxSearchPageSize}},
	}
	for _, tc := range testCases {
		t.Run(tc.query, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/providers"+tc.query, nil)
			assert.Equal(t, tc.expected, BuildPaginationRequest(r))
		})
	}
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 50, ParseLimit(httptest.NewRequest("GET", "/messages/u2", nil), 50, 200))
	assert.Equal(t, 10, ParseLimit(httptest.NewRequest("GET", "/messages/u2?limit=10", nil), 50, 200))
	assert.Equal(t, 200, ParseLimit(httptest.NewRequest("GET", "/messages/u2?limit=999", nil), 50, 200))
	assert.Equal(t, 50, ParseLimit(httptest.NewRequest("GET", "/messages/u2?limit=0", nil), 50, 200))
}
