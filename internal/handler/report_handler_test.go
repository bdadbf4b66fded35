package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renkids/homeschool-hub-api/internal/models"
	appErrors "github.com/renkids/homeschool-hub-api/pkg/errors"
)

type fakeReportService struct {
	gotStudentID string
	gotQuarter   int
	gotYear      int

	report *models.QuarterlyReport
	err    error
}

func (f *fakeReportService) GenerateQuarterly(ctx context.Context, studentID string, quarter, year int) (*models.QuarterlyReport, error) {
	f.gotStudentID = studentID
	f.gotQuarter = quarter
	f.gotYear = year
	return f.report, f.err
}

type fakeRenderer struct {
	payload []byte
	err     error
}

func (f *fakeRenderer) Render(report *models.QuarterlyReport) ([]byte, error) {
	return f.payload, f.err
}

func sampleReport() *models.QuarterlyReport {
	score := 85.0
	return &models.QuarterlyReport{
		StudentID: "student-1",
		Year:      2024,
		Quarter:   1,
		Period:    models.ReportPeriod{Start: "2024-01-01", End: "2024-03-31"},
		Summary: models.ReportSummary{
			TotalSkillsTracked:       2,
			TotalAssessments:         1,
			TotalWorksheetsCompleted: 3,
			AverageAssessmentScore:   &score,
		},
		IHIPCompliant: true,
		GeneratedAt:   time.Date(2024, time.April, 2, 12, 0, 0, 0, time.UTC),
	}
}

func TestReportQuarterlyMissingParams(t *testing.T) {
	h := NewReportHandler(&fakeReportService{}, &fakeRenderer{})

	for _, target := range []string{
		"/api/reports/ihip/quarterly",
		"/api/reports/ihip/quarterly?studentId=student-1&year=2024",
		"/api/reports/ihip/quarterly?quarter=1&year=2024",
		"/api/reports/ihip/quarterly?studentId=student-1&quarter=1",
	} {
		c, w := testContext(t, http.MethodGet, target, nil)
		h.Quarterly(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, target)
		envelope := decodeEnvelope(t, w)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "studentId, quarter, and year are required query parameters", envelope.Error.Message)
	}
}

func TestReportQuarterlyRejectsBadQuarter(t *testing.T) {
	h := NewReportHandler(&fakeReportService{}, &fakeRenderer{})

	for _, quarter := range []string{"5", "0", "-1", "abc"} {
		c, w := testContext(t, http.MethodGet, "/api/reports/ihip/quarterly?studentId=student-1&quarter="+quarter+"&year=2024", nil)
		h.Quarterly(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, quarter)
		envelope := decodeEnvelope(t, w)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "quarter must be a number between 1 and 4", envelope.Error.Message)
	}
}

func TestReportQuarterlyRejectsBadYear(t *testing.T) {
	h := NewReportHandler(&fakeReportService{}, &fakeRenderer{})

	for _, year := range []string{"1999", "2101", "20x4"} {
		c, w := testContext(t, http.MethodGet, "/api/reports/ihip/quarterly?studentId=student-1&quarter=1&year="+year, nil)
		h.Quarterly(c)

		assert.Equal(t, http.StatusBadRequest, w.Code, year)
		envelope := decodeEnvelope(t, w)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, "year must be a valid 4-digit year", envelope.Error.Message)
	}
}

func TestReportQuarterlyRejectsBadFormat(t *testing.T) {
	h := NewReportHandler(&fakeReportService{}, &fakeRenderer{})

	c, w := testContext(t, http.MethodGet, "/api/reports/ihip/quarterly?studentId=student-1&quarter=1&year=2024&format=csv", nil)
	h.Quarterly(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "format must be json or pdf", envelope.Error.Message)
}

func TestReportQuarterlyJSON(t *testing.T) {
	svc := &fakeReportService{report: sampleReport()}
	h := NewReportHandler(svc, &fakeRenderer{})

	c, w := testContext(t, http.MethodGet, "/api/reports/ihip/quarterly?studentId=student-1&quarter=1&year=2024", nil)
	h.Quarterly(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "student-1", svc.gotStudentID)
	assert.Equal(t, 1, svc.gotQuarter)
	assert.Equal(t, 2024, svc.gotYear)

	envelope := decodeEnvelope(t, w)
	data, err := json.Marshal(envelope.Data)
	require.NoError(t, err)
	var report models.QuarterlyReport
	require.NoError(t, json.Unmarshal(data, &report))
	assert.Equal(t, "student-1", report.StudentID)
	assert.Equal(t, "2024-01-01", report.Period.Start)
	assert.True(t, report.IHIPCompliant)
}

func TestReportQuarterlyPDF(t *testing.T) {
	svc := &fakeReportService{report: sampleReport()}
	renderer := &fakeRenderer{payload: []byte("%PDF-1.3 fake")}
	h := NewReportHandler(svc, renderer)

	c, w := testContext(t, http.MethodGet, "/api/reports/ihip/quarterly?studentId=student-1&quarter=1&year=2024&format=pdf", nil)
	h.Quarterly(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="ihip-report-q1-2024-student-1.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, renderer.payload, w.Body.Bytes())
}

func TestReportQuarterlyRendererFailure(t *testing.T) {
	svc := &fakeReportService{report: sampleReport()}
	h := NewReportHandler(svc, &fakeRenderer{err: errors.New("font missing")})

	c, w := testContext(t, http.MethodGet, "/api/reports/ihip/quarterly?studentId=student-1&quarter=1&year=2024&format=pdf", nil)
	h.Quarterly(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "failed to render report pdf", envelope.Error.Message)
}

func TestReportQuarterlyServiceFailure(t *testing.T) {
	svc := &fakeReportService{err: appErrors.Wrap(errors.New("db down"), appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to retrieve report data")}
	h := NewReportHandler(svc, &fakeRenderer{})

	c, w := testContext(t, http.MethodGet, "/api/reports/ihip/quarterly?studentId=student-1&quarter=1&year=2024", nil)
	h.Quarterly(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	envelope := decodeEnvelope(t, w)
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "failed to retrieve report data", envelope.Error.Message)
}
