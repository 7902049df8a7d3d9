package export

import (
	"encoding/csv"
	"insightd/internal/models"
	"io"
	"strconv"
	"time"
)

var csvHeader = []string{
	"日期", "影片標題", "觀看次數", "觸及人數", "按讚數",
	"分享數", "珍藏數", "留言數", "續看率(%)", "平均觀看時間",
}

func CSVFileName(now time.Time) string {
	return "creator_insights_" + now.Format("2006-01-02") + ".csv"
}

// WriteCSV emits the full record set as UTF-8 CSV. Fields containing
// delimiters or quotes are quoted with embedded quotes doubled. Missing
// retention is written as 0 and missing watch time as "0s".
func WriteCSV(w io.Writer, records []models.InsightRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, rec := range records {
		retention := "0"
		if rec.RetentionRate != nil {
			retention = strconv.FormatFloat(*rec.RetentionRate, 'f', -1, 64)
		}
		watchTime := rec.AvgWatchTime
		if watchTime == "" {
			watchTime = "0s"
		}

		row := []string{
			formatDate(&rec),
			rec.Title,
			strconv.Itoa(rec.Views),
			strconv.Itoa(rec.Reach),
			strconv.Itoa(rec.Likes),
			strconv.Itoa(rec.Shares),
			strconv.Itoa(rec.Saves),
			strconv.Itoa(rec.Comments),
			retention,
			watchTime,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatDate(rec *models.InsightRecord) string {
	t := rec.Time()
	if t.IsZero() {
		return rec.Date
	}
	return t.Format("2006/01/02")
}
