package models

import (
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// looseRecord is the tolerant intermediate shape for persisted payloads
// of unknown vintage. Every field is optional here; Normalize decides
// what survives. videoTitle is the pre-rename key for title.
type looseRecord struct {
	ID            *string  `json:"id"`
	Date          *string  `json:"date"`
	Title         *string  `json:"title"`
	VideoTitle    *string  `json:"videoTitle"`
	Views         *float64 `json:"views"`
	Reach         *float64 `json:"reach"`
	Likes         *float64 `json:"likes"`
	Shares        *float64 `json:"shares"`
	Saves         *float64 `json:"saves"`
	Comments      *float64 `json:"comments"`
	RetentionRate *float64 `json:"retentionRate"`
	AvgWatchTime  *string  `json:"avgWatchTime"`
	Source        *string  `json:"source"`
}

// Normalize parses a persisted snapshot payload into a valid record set.
// Entries that are not JSON objects are dropped, records without an id
// get a fresh one, and numeric fields are defaulted and clamped. Only a
// payload that is not a JSON array at all yields an error; the caller
// decides how softly to fail.
func Normalize(raw []byte) ([]InsightRecord, error) {
	if len(raw) == 0 {
		return []InsightRecord{}, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}

	records := make([]InsightRecord, 0, len(entries))
	for _, entry := range entries {
		var loose looseRecord
		if err := json.Unmarshal(entry, &loose); err != nil {
			continue
		}
		records = append(records, admit(&loose))
	}
	return records, nil
}

func admit(loose *looseRecord) InsightRecord {
	rec := InsightRecord{
		ID:       strOr(loose.ID, ""),
		Date:     strOr(loose.Date, ""),
		Title:    strOr(loose.Title, strOr(loose.VideoTitle, "")),
		Views:    countOr(loose.Views),
		Reach:    countOr(loose.Reach),
		Likes:    countOr(loose.Likes),
		Shares:   countOr(loose.Shares),
		Saves:    countOr(loose.Saves),
		Comments: countOr(loose.Comments),
		Source:   SourceManual,
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if loose.Source != nil && *loose.Source == SourceUpload {
		rec.Source = SourceUpload
	}
	if loose.AvgWatchTime != nil {
		rec.AvgWatchTime = *loose.AvgWatchTime
	}
	if loose.RetentionRate != nil {
		v := *loose.RetentionRate
		if v < 0 {
			v = 0
		}
		if v > 100 {
			v = 100
		}
		rec.RetentionRate = &v
	}
	return rec
}

func strOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}

func countOr(v *float64) int {
	if v == nil || *v < 0 {
		return 0
	}
	return int(*v)
}
