package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestReceiptNumber(t *testing.T) {
	at := time.Date(2025, time.March, 14, 10, 30, 0, 0, time.UTC)

	require.Equal(t, "RCP-202503-000001", receiptNumber(at, 1))
	require.Equal(t, "RCP-202503-000042", receiptNumber(at, 42))
	require.Equal(t, "RCP-202503-123456", receiptNumber(at, 123456))

	// Sequences past six digits must not be truncated.
	require.Equal(t, "RCP-202503-1234567", receiptNumber(at, 1234567))
}

func TestReceiptNumberDistinctAcrossSequence(t *testing.T) {
	at := time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for seq := int64(1); seq <= 100; seq++ {
		n := receiptNumber(at, seq)
		require.False(t, seen[n], "duplicate receipt %s", n)
		seen[n] = true
	}
}

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name      string
		anchor    time.Time
		wantStart time.Time
	}{
		{
			"monday anchors its own week",
			time.Date(2025, time.June, 2, 15, 4, 5, 0, time.UTC),
			time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			"wednesday rolls back to monday",
			time.Date(2025, time.June, 4, 0, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday belongs to the preceding monday",
			time.Date(2025, time.June, 8, 23, 59, 59, 0, time.UTC),
			time.Date(2025, time.June, 2, 0, 0, 0, 0, time.UTC),
		},
		{
			"week spanning a month boundary",
			time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC),
			time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := weekRange(tt.anchor)
			require.Equal(t, tt.wantStart, start)
			require.Equal(t, tt.wantStart.AddDate(0, 0, 7), end)
			require.Equal(t, time.Monday, start.Weekday())
		})
	}
}

func TestRangeBounds(t *testing.T) {
	start := time.Date(2025, time.May, 1, 9, 30, 0, 0, time.UTC)
	end := time.Date(2025, time.May, 3, 18, 0, 0, 0, time.UTC)

	from, to := rangeBounds(&start, &end)
	require.NotNil(t, from)
	require.NotNil(t, to)
	require.Equal(t, time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC), *from)
	require.Equal(t, time.Date(2025, time.May, 4, 0, 0, 0, 0, time.UTC), *to)
}

func TestRangeBoundsOpenEnded(t *testing.T) {
	from, to := rangeBounds(nil, nil)
	require.Nil(t, from)
	require.Nil(t, to)

	start := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	from, to = rangeBounds(&start, nil)
	require.NotNil(t, from)
	require.Nil(t, to)

	end := time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC)
	from, to = rangeBounds(nil, &end)
	require.Nil(t, from)
	require.NotNil(t, to)
	require.Equal(t, time.Date(2025, time.May, 2, 0, 0, 0, 0, time.UTC), *to)
}

func TestRangeBoundsSingleDay(t *testing.T) {
	day := time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC)
	from, to := rangeBounds(&day, &day)
	require.Equal(t, day, *from)
	require.Equal(t, day.AddDate(0, 0, 1), *to)
}
