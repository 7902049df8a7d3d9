package export

import (
	"insightd/internal/models"
	"io"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"
)

const maxTitleRunes = 48

func PDFFileName(now time.Time) string {
	return "report_" + now.Format("2006-01-02") + ".pdf"
}

// WritePDF renders the tabular report. The built-in fonts only cover
// cp1252, so headers and labels stay Latin; user-authored titles are
// passed through the codepage translator and degrade where glyphs are
// missing. That tradeoff is accepted — data is never mutated to fit
// the renderer.
func WritePDF(w io.Writer, records []models.InsightRecord, generatedAt time.Time) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Creator Insight Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, "Generated on: "+generatedAt.Format("2006/01/02"))
	pdf.Ln(12)

	headers := []string{"Date", "Title", "Views", "Reach", "Shares", "Retention"}
	widths := []float64{25, 72, 24, 24, 20, 25}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(79, 70, 229)
	pdf.SetTextColor(255, 255, 255)
	for i, h := range headers {
		pdf.CellFormat(widths[i], 8, h, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	fill := false
	pdf.SetFillColor(243, 244, 246)
	for _, rec := range records {
		retention := "-"
		if rec.RetentionRate != nil {
			retention = strconv.FormatFloat(*rec.RetentionRate, 'f', -1, 64) + "%"
		}

		row := []string{
			formatDate(&rec),
			tr(truncate(rec.Title)),
			strconv.Itoa(rec.Views),
			strconv.Itoa(rec.Reach),
			strconv.Itoa(rec.Shares),
			retention,
		}
		for i, cell := range row {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
		fill = !fill
	}

	return pdf.Output(w)
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= maxTitleRunes {
		return s
	}
	return string(runes[:maxTitleRunes-1]) + "…"
}
