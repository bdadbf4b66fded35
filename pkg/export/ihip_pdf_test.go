package export

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renkids/homeschool-hub-api/internal/models"
)

func floatPtr(v float64) *float64 { return &v }

func baseReport() *models.QuarterlyReport {
	return &models.QuarterlyReport{
		StudentID: "student-1",
		Year:      2024,
		Quarter:   1,
		Period:    models.ReportPeriod{Start: "2024-01-01", End: "2024-03-31"},
		Summary: models.ReportSummary{
			TotalSkillsTracked:       1,
			TotalAssessments:         1,
			TotalWorksheetsCompleted: 1,
			AverageAssessmentScore:   floatPtr(85),
		},
		Skills: []models.SkillRecord{
			{StandardCode: "3.OA.1", SkillName: "Multiplication", MasteryLevel: models.MasteryInProgress},
		},
		Assessments: []models.AssessmentRecord{
			{Title: "Unit 2 Quiz", Subject: "Math", AssessmentType: "quiz", ScorePercentage: floatPtr(85)},
		},
		Worksheets: []models.WorksheetRecord{
			{TemplateID: "tpl-1", Subject: "Math", DifficultyLevel: "medium", Status: models.WorksheetStatusCompleted, ScorePercentage: floatPtr(92)},
		},
		IHIPCompliant: true,
		GeneratedAt:   time.Date(2024, time.April, 2, 12, 0, 0, 0, time.UTC),
	}
}

// pageCount inspects page object dictionaries in the raw document. The
// "/Type /Pages" tree node shares the "/Type /Page" prefix and is excluded.
func pageCount(data []byte) int {
	return bytes.Count(data, []byte("/Type /Page")) - bytes.Count(data, []byte("/Type /Pages"))
}

func TestRenderProducesPDF(t *testing.T) {
	data, err := NewIHIPExporter().Render(baseReport())
	require.NoError(t, err)
	require.NotEmpty(t, data)

	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "output must carry the PDF magic header")
	assert.Equal(t, 1, pageCount(data))
}

func TestRenderHandlesEmptyCollections(t *testing.T) {
	report := baseReport()
	report.Skills = nil
	report.Assessments = nil
	report.Worksheets = nil
	report.Summary = models.ReportSummary{}
	report.IHIPCompliant = false

	data, err := NewIHIPExporter().Render(report)
	require.NoError(t, err)
	assert.Equal(t, 1, pageCount(data))
}

func TestRenderPaginatesLongReports(t *testing.T) {
	report := baseReport()
	for i := 0; i < 60; i++ {
		report.Skills = append(report.Skills, models.SkillRecord{
			StandardCode: fmt.Sprintf("3.OA.%d", i),
			SkillName:    fmt.Sprintf("Skill %d", i),
			MasteryLevel: models.MasteryInProgress,
		})
	}
	for i := 0; i < 40; i++ {
		report.Worksheets = append(report.Worksheets, models.WorksheetRecord{
			TemplateID:      fmt.Sprintf("tpl-%d", i),
			Subject:         "Math",
			DifficultyLevel: "medium",
			Status:          models.WorksheetStatusCompleted,
			ScorePercentage: floatPtr(float64(50 + i%50)),
		})
	}

	data, err := NewIHIPExporter().Render(report)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pageCount(data), 2)
}

func TestRenderIsDeterministic(t *testing.T) {
	exporter := NewIHIPExporter()
	report := baseReport()

	first, err := exporter.Render(report)
	require.NoError(t, err)
	second, err := exporter.Render(report)
	require.NoError(t, err)

	assert.True(t, bytes.Equal(first, second), "same report must render byte-identical output")
}

func TestRenderNilScoresDoNotFail(t *testing.T) {
	report := baseReport()
	report.Assessments[0].ScorePercentage = nil
	report.Worksheets[0].ScorePercentage = nil
	report.Summary.AverageAssessmentScore = nil

	_, err := NewIHIPExporter().Render(report)
	require.NoError(t, err)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "N/A", formatPercent(nil))
	assert.Equal(t, "85%", formatPercent(floatPtr(85)))
	assert.Equal(t, "66.67%", formatPercent(floatPtr(66.67)))
}

func TestSkillLinesHumanizeMastery(t *testing.T) {
	lines := skillLines([]models.SkillRecord{
		{StandardCode: "3.OA.1", SkillName: "Multiplication", MasteryLevel: models.MasteryInProgress},
	})
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "in progress")
	assert.NotContains(t, lines[0], "in_progress")
}
