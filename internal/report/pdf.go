package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/BruksfildServices01/ponto-eletronico/internal/timezone"
)

type PDFOptions struct {
	GeneratedAt time.Time
	Footer      string
}

const (
	pdfMargin    = 14.0
	pdfRowHeight = 8.0
	pdfBottom    = 20.0
	pdfFont      = "Helvetica"
)

var pdfWidths = []float64{15, 65, 35, 25, 42}

func WritePDF(w io.Writer, rows []Row, opts PDFOptions) error {
	doc := buildPDF(rows, opts)
	if err := doc.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

func buildPDF(rows []Row, opts PDFOptions) *fpdf.Fpdf {
	doc := fpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	doc.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	doc.SetAutoPageBreak(false, pdfBottom)
	doc.SetTitle(Title, true)

	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont(pdfFont, "", 9)
		doc.SetTextColor(0, 0, 0)
		doc.CellFormat(0, 10, tr(opts.Footer), "", 0, "L", false, 0, "")
	})

	doc.AddPage()

	doc.SetFont(pdfFont, "B", 18)
	doc.Text(pdfMargin, 22, tr(Title))

	doc.SetFont(pdfFont, "", 10)
	doc.Text(pdfMargin, 30, tr(fmt.Sprintf(
		"Relatório gerado em %s às %s",
		opts.GeneratedAt.Format(timezone.DateLayout),
		opts.GeneratedAt.Format("15:04:05"),
	)))

	doc.SetY(40)
	drawHeader(doc, tr)

	_, pageHeight := doc.GetPageSize()
	for _, r := range rows {
		if doc.GetY()+pdfRowHeight > pageHeight-pdfBottom {
			doc.AddPage()
			drawHeader(doc, tr)
		}

		doc.SetFont(pdfFont, "", 10)
		doc.SetTextColor(0, 0, 0)
		cells := []string{
			strconv.FormatUint(uint64(r.ID), 10),
			r.Funcionario,
			r.Data,
			r.Hora,
			r.Tipo,
		}
		for i, v := range cells {
			doc.CellFormat(pdfWidths[i], pdfRowHeight, tr(v), "1", 0, "L", false, 0, "")
		}
		doc.Ln(-1)
	}

	return doc
}

func drawHeader(doc *fpdf.Fpdf, tr func(string) string) {
	doc.SetFont(pdfFont, "B", 10)
	doc.SetFillColor(22, 163, 74)
	doc.SetTextColor(255, 255, 255)
	for i, h := range Headers {
		doc.CellFormat(pdfWidths[i], pdfRowHeight, tr(h), "1", 0, "L", true, 0, "")
	}
	doc.Ln(-1)
}
