package models

import "sort"

type Totals struct {
	TotalViews      int     `json:"totalViews"`
	TotalReach      int     `json:"totalReach"`
	TotalEngagement int     `json:"totalEngagement"`
	AvgRetention    float64 `json:"avgRetention"`
}

// ComputeTotals derives the dashboard summary from a record set.
// AvgRetention is averaged over all records, with a missing retention
// counted as zero. That understates the mean when some records lack the
// value, but the dashboard has always reported it this way.
func ComputeTotals(records []InsightRecord) Totals {
	var t Totals
	var retentionSum float64
	for _, rec := range records {
		t.TotalViews += rec.Views
		t.TotalReach += rec.Reach
		t.TotalEngagement += rec.Likes + rec.Comments + rec.Shares + rec.Saves
		if rec.RetentionRate != nil {
			retentionSum += *rec.RetentionRate
		}
	}
	if len(records) > 0 {
		t.AvgRetention = retentionSum / float64(len(records))
	}
	return t
}

// Chronological returns a copy of records stably sorted by date, oldest
// first. Feeds the trend charts.
func Chronological(records []InsightRecord) []InsightRecord {
	result := make([]InsightRecord, len(records))
	copy(result, records)
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Time().Before(result[j].Time())
	})
	return result
}

// ReverseChronological returns a copy sorted newest first, for the
// management list.
func ReverseChronological(records []InsightRecord) []InsightRecord {
	result := make([]InsightRecord, len(records))
	copy(result, records)
	sort.SliceStable(result, func(i, j int) bool {
		return result[j].Time().Before(result[i].Time())
	})
	return result
}
