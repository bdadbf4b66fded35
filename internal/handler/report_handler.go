package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/renkids/homeschool-hub-api/internal/models"
	appErrors "github.com/renkids/homeschool-hub-api/pkg/errors"
	"github.com/renkids/homeschool-hub-api/pkg/response"
)

type quarterlyReportService interface {
	GenerateQuarterly(ctx context.Context, studentID string, quarter, year int) (*models.QuarterlyReport, error)
}

type reportRenderer interface {
	Render(report *models.QuarterlyReport) ([]byte, error)
}

// ReportHandler exposes IHIP compliance reporting endpoints.
type ReportHandler struct {
	service quarterlyReportService
	pdf     reportRenderer
}

// NewReportHandler constructs the handler.
func NewReportHandler(service quarterlyReportService, pdf reportRenderer) *ReportHandler {
	return &ReportHandler{service: service, pdf: pdf}
}

// Quarterly godoc
// @Summary IHIP quarterly report for a student
// @Tags Reports
// @Produce json
// @Param studentId query string true "Student ID"
// @Param quarter query int true "Quarter (1-4)"
// @Param year query int true "Year (2000-2100)"
// @Param format query string false "json (default) or pdf"
// @Success 200 {object} response.Envelope
// @Router /reports/ihip/quarterly [get]
func (h *ReportHandler) Quarterly(c *gin.Context) {
	studentID := strings.TrimSpace(c.Query("studentId"))
	quarterRaw := strings.TrimSpace(c.Query("quarter"))
	yearRaw := strings.TrimSpace(c.Query("year"))
	if studentID == "" || quarterRaw == "" || yearRaw == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "studentId, quarter, and year are required query parameters"))
		return
	}

	quarter, err := strconv.Atoi(quarterRaw)
	if err != nil || quarter < 1 || quarter > 4 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "quarter must be a number between 1 and 4"))
		return
	}

	year, err := strconv.Atoi(yearRaw)
	if err != nil || year < 2000 || year > 2100 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "year must be a valid 4-digit year"))
		return
	}

	format := strings.ToLower(strings.TrimSpace(c.Query("format")))
	if format != "" && format != "json" && format != "pdf" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "format must be json or pdf"))
		return
	}

	report, err := h.service.GenerateQuarterly(c.Request.Context(), studentID, quarter, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	if format == "pdf" {
		payload, err := h.pdf.Render(report)
		if err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report pdf"))
			return
		}
		filename := fmt.Sprintf("ihip-report-q%d-%d-%s.pdf", report.Quarter, report.Year, report.StudentID)
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/pdf", payload)
		return
	}

	response.JSON(c, http.StatusOK, report)
}
