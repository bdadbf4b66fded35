package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/renkids/homeschool-hub-api/internal/models"
)

const (
	pageMargin = 15.0
	pageWidth  = 216.0

	// A new section may not start below this line; individual items get a
	// little more room so a section title is always followed by at least
	// one entry before a break.
	sectionBreakY = 240.0
	lineBreakY    = 260.0
)

// IHIPExporter renders quarterly compliance reports into paginated PDFs.
type IHIPExporter struct{}

// NewIHIPExporter constructs an IHIP PDF exporter.
func NewIHIPExporter() *IHIPExporter {
	return &IHIPExporter{}
}

// Render produces the PDF document for a quarterly report. It is a pure
// function of the report apart from the copyright year in the footer.
func (e *IHIPExporter) Render(report *models.QuarterlyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreationDate(report.GeneratedAt)
	pdf.AliasNbPages("")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	doc := &reportDoc{
		pdf:      pdf,
		tr:       tr,
		title:    fmt.Sprintf("IHIP Quarterly Report — Q%d %d", report.Quarter, report.Year),
		subtitle: fmt.Sprintf("Period: %s to %s", report.Period.Start, report.Period.End),
	}

	footerYear := time.Now().Year()
	pdf.SetFooterFunc(func() {
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(136, 136, 136)
		pdf.SetY(-8)
		pdf.CellFormat(0, 4, tr(fmt.Sprintf("© %d Renaissance Kids  |  Page %d of {nb}", footerYear, pdf.PageNo())), "", 0, "C", false, 0, "")
	})

	doc.newPage()

	doc.sectionTitle("Report Information")
	doc.keyValue("Student ID", report.StudentID)
	doc.keyValue("Academic Year", strconv.Itoa(report.Year))
	doc.keyValue("Quarter", strconv.Itoa(report.Quarter))
	doc.keyValue("IHIP Compliant", yesNo(report.IHIPCompliant))
	doc.keyValue("Generated", report.GeneratedAt.Format("Jan 2, 2006 3:04 PM"))
	doc.y += 4

	doc.sectionTitle("Summary")
	doc.keyValue("Skills Tracked", strconv.Itoa(report.Summary.TotalSkillsTracked))
	doc.keyValue("Assessments", strconv.Itoa(report.Summary.TotalAssessments))
	doc.keyValue("Worksheets Completed", strconv.Itoa(report.Summary.TotalWorksheetsCompleted))
	doc.keyValue("Avg Assessment Score", formatPercent(report.Summary.AverageAssessmentScore))
	doc.y += 4

	doc.section("Skill Mastery Overview", skillLines(report.Skills))
	doc.section("Assessments", assessmentLines(report.Assessments))
	doc.section("Worksheet Activity", worksheetLines(report.Worksheets))

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render ihip pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// reportDoc tracks the vertical cursor while laying out report pages.
type reportDoc struct {
	pdf      *gofpdf.Fpdf
	tr       func(string) string
	title    string
	subtitle string
	y        float64
}

func (d *reportDoc) newPage() {
	d.pdf.AddPage()
	d.y = d.drawHeader()
}

// drawHeader paints the brand bar and report title, returning the first
// content line position.
func (d *reportDoc) drawHeader() float64 {
	pdf := d.pdf
	pdf.SetFillColor(240, 90, 34)
	pdf.Rect(0, 0, pageWidth, 18, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.Text(pageMargin, 11, "Renaissance Kids Homeschool Hub")
	pdf.SetFont("Helvetica", "", 9)
	label := "NYS IHIP Compliance Report"
	pdf.Text(pageWidth-pageMargin-pdf.GetStringWidth(label), 11, label)

	y := 26.0
	pdf.SetTextColor(43, 89, 195)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(pageMargin, y, d.tr(d.title))
	y += 7
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(68, 68, 68)
	pdf.Text(pageMargin, y, d.subtitle)
	y += 8
	pdf.SetDrawColor(240, 90, 34)
	pdf.SetLineWidth(0.5)
	pdf.Line(pageMargin, y, pageWidth-pageMargin, y)
	return y + 6
}

func (d *reportDoc) sectionTitle(title string) {
	d.pdf.SetFont("Helvetica", "B", 11)
	d.pdf.SetTextColor(43, 89, 195)
	d.pdf.Text(pageMargin, d.y, title)
	d.y += 6
}

func (d *reportDoc) keyValue(key, value string) {
	d.pdf.SetFont("Helvetica", "B", 9)
	d.pdf.SetTextColor(51, 51, 51)
	d.pdf.Text(pageMargin, d.y, key+":")
	d.pdf.SetFont("Helvetica", "", 9)
	d.pdf.Text(pageMargin+40, d.y, d.tr(value))
	d.y += 6
}

// section writes an itemized block, breaking to a fresh page when the
// cursor passes the section or line thresholds. Empty sections are omitted.
func (d *reportDoc) section(title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	if d.y > sectionBreakY {
		d.newPage()
	}
	d.sectionTitle(title)
	for _, line := range lines {
		if d.y > lineBreakY {
			d.newPage()
		}
		d.pdf.SetFont("Helvetica", "", 9)
		d.pdf.SetTextColor(51, 51, 51)
		d.pdf.Text(pageMargin, d.y, d.tr(line))
		d.y += 5
	}
	d.y += 3
}

func skillLines(skills []models.SkillRecord) []string {
	lines := make([]string, 0, len(skills))
	for _, s := range skills {
		mastery := strings.ReplaceAll(string(s.MasteryLevel), "_", " ")
		lines = append(lines, fmt.Sprintf("• [%s] %s — %s", s.StandardCode, s.SkillName, mastery))
	}
	return lines
}

func assessmentLines(assessments []models.AssessmentRecord) []string {
	lines := make([]string, 0, len(assessments))
	for _, a := range assessments {
		mastery := "N/A"
		if a.MasteryDetermination != nil {
			mastery = *a.MasteryDetermination
		}
		lines = append(lines, fmt.Sprintf("• %s (%s) — Score: %s, Mastery: %s", a.Title, a.Subject, formatPercent(a.ScorePercentage), mastery))
	}
	return lines
}

func worksheetLines(worksheets []models.WorksheetRecord) []string {
	lines := make([]string, 0, len(worksheets))
	for _, w := range worksheets {
		lines = append(lines, fmt.Sprintf("• %s (%s, %s) — Status: %s, Score: %s", w.TemplateID, w.Subject, w.DifficultyLevel, w.Status, formatPercent(w.ScorePercentage)))
	}
	return lines
}

func formatPercent(value *float64) string {
	if value == nil {
		return "N/A"
	}
	return strconv.FormatFloat(*value, 'f', -1, 64) + "%"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
