package models

import "time"

const (
	SourceManual = "Manual"
	SourceUpload = "Upload"
)

// InsightRecord is one stored metrics snapshot for one piece of content.
// Records are immutable once created; "edit" is not a supported operation.
type InsightRecord struct {
	ID            string   `json:"id"`
	Date          string   `json:"date"`
	Title         string   `json:"title"`
	Views         int      `json:"views"`
	Reach         int      `json:"reach"`
	Likes         int      `json:"likes"`
	Shares        int      `json:"shares"`
	Saves         int      `json:"saves"`
	Comments      int      `json:"comments"`
	RetentionRate *float64 `json:"retentionRate,omitempty"`
	AvgWatchTime  string   `json:"avgWatchTime,omitempty"`
	Source        string   `json:"source"`
}

// Time parses the record date. Accepts RFC 3339 timestamps and bare
// dates (old snapshots stored "2023-10-01"). Unparseable dates yield
// the zero time so they sort before everything else.
func (r *InsightRecord) Time() time.Time {
	if t, err := time.Parse(time.RFC3339, r.Date); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", r.Date); err == nil {
		return t
	}
	return time.Time{}
}

func Retention(v float64) *float64 {
	return &v
}
