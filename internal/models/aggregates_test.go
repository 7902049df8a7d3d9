package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeTotals(t *testing.T) {
	records := []InsightRecord{
		{Views: 10, Reach: 8, Likes: 2, Comments: 1, Shares: 1, Saves: 0, RetentionRate: Retention(50)},
		{Views: 20, Reach: 12, Likes: 4, Comments: 2, Shares: 1, Saves: 1},
	}

	totals := ComputeTotals(records)

	assert.Equal(t, 30, totals.TotalViews)
	assert.Equal(t, 20, totals.TotalReach)
	assert.Equal(t, 12, totals.TotalEngagement)
	// Missing retention counts as zero in the denominator.
	assert.InDelta(t, 25.0, totals.AvgRetention, 1e-9)
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := ComputeTotals(nil)
	assert.Equal(t, Totals{}, totals)
	assert.Equal(t, float64(0), totals.AvgRetention)
}

func TestChronologicalOrdering(t *testing.T) {
	records := []InsightRecord{
		{ID: "mid", Date: "2023-10-04"},
		{ID: "new", Date: "2023-10-10T12:00:00Z"},
		{ID: "old", Date: "2023-10-01"},
	}

	chrono := Chronological(records)
	assert.Equal(t, []string{"old", "mid", "new"}, ids(chrono))

	reverse := ReverseChronological(records)
	assert.Equal(t, []string{"new", "mid", "old"}, ids(reverse))

	// Inputs untouched.
	assert.Equal(t, "mid", records[0].ID)
}

func TestChronological_UnparseableDatesSortFirst(t *testing.T) {
	records := []InsightRecord{
		{ID: "dated", Date: "2023-10-01"},
		{ID: "junk", Date: "not a date"},
	}

	chrono := Chronological(records)
	assert.Equal(t, []string{"junk", "dated"}, ids(chrono))
}

func TestChronological_StableForEqualDates(t *testing.T) {
	records := []InsightRecord{
		{ID: "a", Date: "2023-10-01"},
		{ID: "b", Date: "2023-10-01"},
		{ID: "c", Date: "2023-10-01"},
	}

	chrono := Chronological(records)
	assert.Equal(t, []string{"a", "b", "c"}, ids(chrono))
}

func ids(records []InsightRecord) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.ID
	}
	return out
}
