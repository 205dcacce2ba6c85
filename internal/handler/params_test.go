package handler

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateRangeQuery(t *testing.T) {
	r := httptest.NewRequest("GET", "/sales?startDate=2025-05-01&endDate=2025-05-07", nil)
	start, end, err := dateRangeQuery(r)
	require.NoError(t, err)
	require.NotNil(t, start)
	require.NotNil(t, end)
	require.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), *start)
	require.Equal(t, time.Date(2025, time.May, 7, 0, 0, 0, 0, time.UTC), *end)
}

func TestDateRangeQueryAbsent(t *testing.T) {
	r := httptest.NewRequest("GET", "/sales", nil)
	start, end, err := dateRangeQuery(r)
	require.NoError(t, err)
	require.Nil(t, start)
	require.Nil(t, end)
}

func TestDateRangeQueryMalformed(t *testing.T) {
	r := httptest.NewRequest("GET", "/sales?startDate=01-05-2025", nil)
	_, _, err := dateRangeQuery(r)
	require.Error(t, err)

	r = httptest.NewRequest("GET", "/sales?endDate=yesterday", nil)
	_, _, err = dateRangeQuery(r)
	require.Error(t, err)
}

func TestLimitQuery(t *testing.T) {
	tests := []struct {
		url  string
		want int
	}{
		{"/sales", 50},
		{"/sales?limit=10", 10},
		{"/sales?limit=0", 50},
		{"/sales?limit=-5", 50},
		{"/sales?limit=abc", 50},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.url, nil)
		require.Equal(t, tt.want, limitQuery(r, 50), tt.url)
	}
}
