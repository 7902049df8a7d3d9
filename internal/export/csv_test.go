package export

import (
	"bytes"
	"encoding/csv"
	"insightd/internal/models"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFileName(t *testing.T) {
	now := time.Date(2023, 10, 15, 9, 30, 0, 0, time.UTC)
	assert.Equal(t, "creator_insights_2023-10-15.csv", CSVFileName(now))
}

func TestWriteCSV_HeaderAndRows(t *testing.T) {
	var buf bytes.Buffer
	records := []models.InsightRecord{
		{
			ID: "a", Date: "2023-10-01", Title: "大城市夜拍", Views: 1200, Reach: 900,
			Likes: 120, Shares: 15, Saves: 40, Comments: 5,
			RetentionRate: models.Retention(45.5), AvgWatchTime: "5s",
		},
	}

	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, csvHeader, rows[0])
	assert.Equal(t, []string{
		"2023/10/01", "大城市夜拍", "1200", "900", "120", "15", "40", "5", "45.5", "5s",
	}, rows[1])
}

func TestWriteCSV_QuotesAndDelimitersSurvive(t *testing.T) {
	var buf bytes.Buffer
	title := `He said "hi", twice`
	records := []models.InsightRecord{{ID: "a", Date: "2023-10-01", Title: title}}

	require.NoError(t, WriteCSV(&buf, records))

	assert.Contains(t, buf.String(), `"He said ""hi"", twice"`)

	rows, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, title, rows[1][1])
}

func TestWriteCSV_Defaults(t *testing.T) {
	var buf bytes.Buffer
	records := []models.InsightRecord{{ID: "a", Date: "2023-10-01", Title: "Bare"}}

	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "0", rows[1][8])
	assert.Equal(t, "0s", rows[1][9])
}

func TestWriteCSV_UnparseableDatePassedThrough(t *testing.T) {
	var buf bytes.Buffer
	records := []models.InsightRecord{{ID: "a", Date: "someday", Title: "X"}}

	require.NoError(t, WriteCSV(&buf, records))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, "someday", rows[1][0])
}

func TestWriteCSV_EmptySetStillHasHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, csvHeader, rows[0])
}
