package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/renkids/homeschool-hub-api/internal/models"
)

// ReportRepository reads the collections feeding IHIP quarterly reports.
// All queries are scoped to one student and a half-open timestamp range
// [from, to); callers pass the start of the day after the period end so the
// final calendar day is fully included.
type ReportRepository struct {
	db *sqlx.DB
}

// NewReportRepository constructs a ReportRepository.
func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// SkillsForPeriod returns curriculum standards assessed within the period.
func (r *ReportRepository) SkillsForPeriod(ctx context.Context, studentID string, from, to time.Time) ([]models.SkillRecord, error) {
	const query = `SELECT id, student_id, standard_code, subject, grade_level, skill_name, mastery_level, last_assessed_at
        FROM skills
        WHERE student_id = $1 AND last_assessed_at >= $2 AND last_assessed_at < $3
        ORDER BY subject, standard_code`
	var skills []models.SkillRecord
	if err := r.db.SelectContext(ctx, &skills, query, studentID, from, to); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return skills, nil
}

// AssessmentsForPeriod returns evaluations recorded within the period.
func (r *ReportRepository) AssessmentsForPeriod(ctx context.Context, studentID string, from, to time.Time) ([]models.AssessmentRecord, error) {
	const query = `SELECT id, student_id, subject, grade_level, title, assessment_type, score_percentage, mastery_determination, assessed_at
        FROM assessments
        WHERE student_id = $1 AND assessed_at >= $2 AND assessed_at < $3
        ORDER BY assessed_at`
	var assessments []models.AssessmentRecord
	if err := r.db.SelectContext(ctx, &assessments, query, studentID, from, to); err != nil {
		return nil, fmt.Errorf("list assessments: %w", err)
	}
	return assessments, nil
}

// WorksheetsForPeriod returns worksheets finished within the period.
func (r *ReportRepository) WorksheetsForPeriod(ctx context.Context, studentID string, from, to time.Time) ([]models.WorksheetRecord, error) {
	const query = `SELECT id, student_id, template_id, subject, grade_level, difficulty_level, status, score_percentage, time_spent_minutes, completed_at
        FROM worksheets
        WHERE student_id = $1 AND completed_at >= $2 AND completed_at < $3
        ORDER BY completed_at`
	var worksheets []models.WorksheetRecord
	if err := r.db.SelectContext(ctx, &worksheets, query, studentID, from, to); err != nil {
		return nil, fmt.Errorf("list worksheets: %w", err)
	}
	return worksheets, nil
}
