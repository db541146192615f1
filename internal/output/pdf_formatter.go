package output

import (
	"bytes"

	"github.com/go-pdf/fpdf"
	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/rgehrsitz/disabilitycalc/internal/format"
	"github.com/rgehrsitz/disabilitycalc/internal/report"
)

const (
	pdfMarginLeft   = 15.0
	pdfMarginTop    = 15.0
	pdfMarginRight  = 15.0
	pdfMarginBottom = 15.0
	pdfContentWidth = 210.0 - pdfMarginLeft - pdfMarginRight
	pdfRowHeight    = 6.0
)

// PDFFormatter renders the summary, narrative and monthly schedule as an A4 PDF.
type PDFFormatter struct{}

func (PDFFormatter) Name() string { return "pdf" }

type pdfReport struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
	src ReportSource
	r   *domain.CalculationResult
}

func (PDFFormatter) Format(src ReportSource) ([]byte, error) {
	r, err := requireResult(src)
	if err != nil {
		return nil, err
	}

	doc := &pdfReport{
		pdf: fpdf.New("P", "mm", "A4", ""),
		src: src,
		r:   r,
	}
	doc.tr = doc.pdf.UnicodeTranslatorFromDescriptor("")
	doc.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	doc.pdf.SetAutoPageBreak(true, pdfMarginBottom)
	doc.pdf.SetTitle(src.Parameters().ReportTitle, true)

	doc.pdf.AddPage()
	doc.addHeading()
	doc.addSummary()
	doc.addSchedule()

	var buf bytes.Buffer
	if err := doc.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d *pdfReport) addHeading() {
	d.pdf.SetFont("Arial", "B", 18)
	d.pdf.SetTextColor(190, 66, 98)
	d.pdf.CellFormat(pdfContentWidth, 10, d.tr(d.src.Parameters().ReportTitle), "", 1, "L", false, 0, "")

	d.pdf.Ln(2)
	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.SetTextColor(0, 0, 0)
	d.pdf.MultiCell(pdfContentWidth, 6, d.tr(d.r.ShortMessage), "", "L", false)

	d.pdf.Ln(2)
	d.pdf.SetFont("Arial", "", 10)
	d.pdf.MultiCell(pdfContentWidth, 5, d.tr(d.src.FormatReportWith(report.TokenLongMessage, nil)), "", "L", false)
	d.pdf.Ln(4)
}

func (d *pdfReport) addSummary() {
	rows := [][2]string{
		{"Current expenses", "MONTHLY_EXPENSES per month"},
		{"Expenses during disability", "MONTHLY_DISABILITY_EXPENSES per month"},
		{"Expenses after ANNUAL_INFLATION annual inflation", "INFLATION_DISABILITY_EXPENSES per month"},
		{"Length of disability", "LENGTH_OF_DISABILITY months"},
		{"Current coverage", "CURRENT_MONTHLY_COVERAGE per month"},
		{"Length of current coverage", "LENGTH_OF_CURRENT_COVERAGE months"},
	}

	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.SetFillColor(238, 238, 238)
	d.pdf.SetDrawColor(187, 187, 187)
	d.pdf.CellFormat(pdfContentWidth, 8, "Results Summary", "1", 1, "L", true, 0, "")

	d.pdf.SetFont("Arial", "", 10)
	labelWidth := pdfContentWidth * 0.6
	for _, row := range rows {
		label := d.src.FormatReportWith(row[0], nil)
		value := d.src.FormatReportWith(row[1], nil)
		d.pdf.CellFormat(labelWidth, pdfRowHeight, d.tr(label), "1", 0, "L", false, 0, "")
		d.pdf.CellFormat(pdfContentWidth-labelWidth, pdfRowHeight, d.tr(value), "1", 1, "R", false, 0, "")
	}
	d.pdf.Ln(6)
}

func (d *pdfReport) addSchedule() {
	places := d.src.Parameters().DecimalPlaces
	colWidth := pdfContentWidth / 4
	_, pageHeight := d.pdf.GetPageSize()

	header := func() {
		d.pdf.SetFont("Arial", "B", 10)
		d.pdf.SetFillColor(204, 204, 204)
		for _, h := range domain.ScheduleHeader {
			d.pdf.CellFormat(colWidth, 7, h, "1", 0, "C", true, 0, "")
		}
		d.pdf.Ln(-1)
		d.pdf.SetFont("Arial", "", 9)
	}

	d.pdf.SetFont("Arial", "B", 12)
	d.pdf.CellFormat(pdfContentWidth, 8, "Monthly expenses and Insurance coverage", "", 1, "L", false, 0, "")
	header()

	d.pdf.SetFillColor(247, 247, 247)
	for i, cells := range scheduleCells(d.r, places) {
		if d.pdf.GetY()+pdfRowHeight > pageHeight-pdfMarginBottom {
			d.pdf.AddPage()
			header()
			d.pdf.SetFillColor(247, 247, 247)
		}
		fill := i%2 == 1
		for _, c := range cells {
			d.pdf.CellFormat(colWidth, pdfRowHeight, c, "1", 0, "R", fill, 0, "")
		}
		d.pdf.Ln(-1)
	}
}

// scheduleCells renders the result series with the same cell layout the
// engine uses for its schedule, so it works when no schedule was built.
func scheduleCells(r *domain.CalculationResult, places int32) [][4]string {
	rows := make([][4]string, len(r.Categories))
	for i, month := range r.Categories {
		rows[i] = format.ScheduleCells(month, r.Expenses[i], r.Coverage[i], places)
	}
	return rows
}
