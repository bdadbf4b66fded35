package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/renkids/homeschool-hub-api/internal/models"
	appErrors "github.com/renkids/homeschool-hub-api/pkg/errors"
)

type reportStore interface {
	SkillsForPeriod(ctx context.Context, studentID string, from, to time.Time) ([]models.SkillRecord, error)
	AssessmentsForPeriod(ctx context.Context, studentID string, from, to time.Time) ([]models.AssessmentRecord, error)
	WorksheetsForPeriod(ctx context.Context, studentID string, from, to time.Time) ([]models.WorksheetRecord, error)
}

// ReportService assembles IHIP quarterly reports.
type ReportService struct {
	repo   reportStore
	cache  *CacheService
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService constructs the report service.
func NewReportService(repo reportStore, cache *CacheService, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// GenerateQuarterly builds the quarterly report for one student. The three
// collection reads are issued concurrently and joined; any single failure
// aborts assembly so a partially populated report can never escape.
func (s *ReportService) GenerateQuarterly(ctx context.Context, studentID string, quarter, year int) (*models.QuarterlyReport, error) {
	start, end, err := QuarterRange(quarter, year)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("report:ihip:%s:%d:%d", studentID, year, quarter)
	if s.cache.Enabled() {
		var cached models.QuarterlyReport
		if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
			return &cached, nil
		}
	}

	// The repository range is half-open, so the upper bound is the start of
	// the day after the period end.
	upper := end.AddDate(0, 0, 1)

	var (
		skills      []models.SkillRecord
		assessments []models.AssessmentRecord
		worksheets  []models.WorksheetRecord
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		skills, err = s.repo.SkillsForPeriod(gctx, studentID, start, upper)
		return err
	})
	g.Go(func() error {
		var err error
		assessments, err = s.repo.AssessmentsForPeriod(gctx, studentID, start, upper)
		return err
	})
	g.Go(func() error {
		var err error
		worksheets, err = s.repo.WorksheetsForPeriod(gctx, studentID, start, upper)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to retrieve report data")
	}

	progress, totals := AggregateSubjectProgress(worksheetActivity(worksheets))

	summary := models.ReportSummary{
		TotalSkillsTracked:       len(skills),
		TotalAssessments:         len(assessments),
		TotalWorksheetsCompleted: totals.WorksheetsCompleted,
		AverageAssessmentScore:   averageAssessmentScore(assessments),
	}

	report := &models.QuarterlyReport{
		StudentID: studentID,
		Year:      year,
		Quarter:   quarter,
		Period: models.ReportPeriod{
			Start: start.Format("2006-01-02"),
			End:   end.Format("2006-01-02"),
		},
		Skills:          skills,
		Assessments:     assessments,
		Worksheets:      worksheets,
		SubjectProgress: progress,
		Summary:         summary,
		IHIPCompliant:   isIHIPCompliant(summary),
		GeneratedAt:     s.now().UTC(),
	}

	if s.cache.Enabled() {
		if err := s.cache.Set(ctx, cacheKey, report, 0); err != nil {
			s.logger.Warn("report cache write failed", zap.String("key", cacheKey), zap.Error(err))
		}
	}

	return report, nil
}

// worksheetActivity projects period worksheets into activity log entries.
func worksheetActivity(worksheets []models.WorksheetRecord) []models.ActivityLog {
	logs := make([]models.ActivityLog, 0, len(worksheets))
	for _, w := range worksheets {
		log := models.ActivityLog{
			Subject:          w.Subject,
			GradeLevel:       w.GradeLevel,
			Status:           w.Status,
			Score:            w.ScorePercentage,
			TimeSpentMinutes: w.TimeSpentMinutes,
		}
		if w.CompletedAt != nil {
			log.CompletedAt = *w.CompletedAt
		}
		logs = append(logs, log)
	}
	return logs
}

func averageAssessmentScore(assessments []models.AssessmentRecord) *float64 {
	sum := 0.0
	count := 0
	for _, a := range assessments {
		if a.ScorePercentage != nil {
			sum += *a.ScorePercentage
			count++
		}
	}
	return roundedAverage(sum, count)
}

// isIHIPCompliant requires evidence in all three collections for the period.
func isIHIPCompliant(summary models.ReportSummary) bool {
	return summary.TotalSkillsTracked > 0 &&
		summary.TotalAssessments > 0 &&
		summary.TotalWorksheetsCompleted > 0
}
