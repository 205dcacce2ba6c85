package repository

import (
	"fmt"
	"time"
)

// receiptNumber formats the human-readable receipt identifier for a sale.
// Uniqueness comes from the database sequence, not the timestamp part.
func receiptNumber(t time.Time, seq int64) string {
	return fmt.Sprintf("RCP-%s-%06d", t.Format("200601"), seq)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// rangeBounds normalizes an optional inclusive [start, end] day range into
// half-open timestamp bounds: start of the start day up to (excluding) the
// start of the day after end. Nil means unbounded on that side.
func rangeBounds(start, end *time.Time) (from, to *time.Time) {
	if start != nil {
		s := startOfDay(*start)
		from = &s
	}
	if end != nil {
		e := startOfDay(*end).AddDate(0, 0, 1)
		to = &e
	}
	return from, to
}

// weekRange returns the Monday 00:00 of the week containing anchor and the
// following Monday (half-open).
func weekRange(anchor time.Time) (start, end time.Time) {
	d := startOfDay(anchor)
	offset := (int(d.Weekday()) + 6) % 7
	start = d.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}
