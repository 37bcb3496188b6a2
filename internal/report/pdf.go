package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/jkorri/wikiresearch/internal/pipeline"
	"github.com/jkorri/wikiresearch/internal/textutil"
)

const (
	pdfSummaryMaxChars = 2000
	pdfSnippetMaxChars = 1000
	pdfTitleColChars   = 50
	pdfURLColChars     = 40
)

// PDF renders a structured report: title, executive summary, a source index
// table, then per-source detail sections on a fresh page.
func PDF(topic string, res *pipeline.ResearchResult, generated time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 24)
	pdf.MultiCell(0, 12, tr("Research Report: "+topic), "", "L", false)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.CellFormat(0, 6, "Generated: "+generated.Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Executive Summary", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(textutil.Truncate(res.Summary, pdfSummaryMaxChars)), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, "Sources", "", 1, "L", false, 0, "")
	writeSourceTable(pdf, tr, res.Sources)

	if len(res.Sources) > 0 {
		pdf.AddPage()
		pdf.SetFont("Helvetica", "B", 14)
		pdf.CellFormat(0, 8, "Detailed Source Content", "", 1, "L", false, 0, "")
		for i, src := range res.Sources {
			pdf.SetFont("Helvetica", "B", 12)
			pdf.MultiCell(0, 6, tr(fmt.Sprintf("%d. %s", i+1, src.Title)), "", "L", false)
			pdf.SetFont("Helvetica", "", 10)
			pdf.MultiCell(0, 5, tr("URL: "+src.URL), "", "L", false)
			pdf.MultiCell(0, 5, tr(textutil.Truncate(src.Snippet, pdfSnippetMaxChars)), "", "L", false)
			pdf.Ln(4)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSourceTable(pdf *gofpdf.Fpdf, tr func(string) string, sources []pipeline.SourceRecord) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(102, 126, 234)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(12, 7, "#", "1", 0, "L", true, 0, "")
	pdf.CellFormat(84, 7, "Title", "1", 0, "L", true, 0, "")
	pdf.CellFormat(84, 7, "URL", "1", 1, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for i, src := range sources {
		pdf.CellFormat(12, 6, fmt.Sprintf("%d", i+1), "1", 0, "L", false, 0, "")
		pdf.CellFormat(84, 6, tr(textutil.Truncate(src.Title, pdfTitleColChars)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(84, 6, tr(textutil.Truncate(src.URL, pdfURLColChars)), "1", 1, "L", false, 0, "")
	}
}
