package models

import "time"

// MasteryLevel tracks proficiency for a curriculum standard.
type MasteryLevel string

const (
	MasteryNotStarted MasteryLevel = "not_started"
	MasteryInProgress MasteryLevel = "in_progress"
	MasteryMastered   MasteryLevel = "mastered"
)

// WorksheetStatus enumerates the lifecycle of a generated worksheet.
type WorksheetStatus string

const (
	WorksheetStatusAssigned   WorksheetStatus = "assigned"
	WorksheetStatusInProgress WorksheetStatus = "in_progress"
	WorksheetStatusCompleted  WorksheetStatus = "completed"
	WorksheetStatusReviewed   WorksheetStatus = "reviewed"
)

// SkillRecord is a tracked curriculum standard for a student.
type SkillRecord struct {
	ID             string       `db:"id" json:"id"`
	StudentID      string       `db:"student_id" json:"student_id"`
	StandardCode   string       `db:"standard_code" json:"standard_code"`
	Subject        string       `db:"subject" json:"subject"`
	GradeLevel     string       `db:"grade_level" json:"grade_level"`
	SkillName      string       `db:"skill_name" json:"skill_name"`
	MasteryLevel   MasteryLevel `db:"mastery_level" json:"mastery_level"`
	LastAssessedAt *time.Time   `db:"last_assessed_at" json:"last_assessed_at"`
}

// AssessmentRecord is an educator-entered evaluation.
type AssessmentRecord struct {
	ID                   string    `db:"id" json:"id"`
	StudentID            string    `db:"student_id" json:"student_id"`
	Subject              string    `db:"subject" json:"subject"`
	GradeLevel           string    `db:"grade_level" json:"grade_level"`
	Title                string    `db:"title" json:"title"`
	AssessmentType       string    `db:"assessment_type" json:"assessment_type"`
	ScorePercentage      *float64  `db:"score_percentage" json:"score_percentage"`
	MasteryDetermination *string   `db:"mastery_determination" json:"mastery_determination"`
	AssessedAt           time.Time `db:"assessed_at" json:"assessed_at"`
}

// WorksheetRecord is a generated worksheet and its completion state.
type WorksheetRecord struct {
	ID               string          `db:"id" json:"id"`
	StudentID        string          `db:"student_id" json:"student_id"`
	TemplateID       string          `db:"template_id" json:"template_id"`
	Subject          string          `db:"subject" json:"subject"`
	GradeLevel       string          `db:"grade_level" json:"grade_level"`
	DifficultyLevel  string          `db:"difficulty_level" json:"difficulty_level"`
	Status           WorksheetStatus `db:"status" json:"status"`
	ScorePercentage  *float64        `db:"score_percentage" json:"score_percentage"`
	TimeSpentMinutes *int            `db:"time_spent_minutes" json:"time_spent_minutes"`
	CompletedAt      *time.Time      `db:"completed_at" json:"completed_at"`
}

// CountsAsDone reports whether the worksheet counts toward completion totals.
func (s WorksheetStatus) CountsAsDone() bool {
	return s == WorksheetStatusCompleted || s == WorksheetStatusReviewed
}

// ActivityLog is one completed learning activity inside a reporting period.
type ActivityLog struct {
	Subject          string
	GradeLevel       string
	Status           WorksheetStatus
	Score            *float64
	TimeSpentMinutes *int
	CompletedAt      time.Time
}

// SubjectProgress aggregates completed activity per (subject, grade level).
type SubjectProgress struct {
	Subject             string   `json:"subject"`
	GradeLevel          string   `json:"grade_level"`
	WorksheetsCompleted int      `json:"worksheets_completed"`
	AvgScore            *float64 `json:"avg_score"`
	AvgTimeSpentMinutes *int     `json:"avg_time_spent_minutes"`
}

// ProgressTotals carries period-wide scalars produced by aggregation.
type ProgressTotals struct {
	TotalActivities     int      `json:"total_activities"`
	WorksheetsCompleted int      `json:"worksheets_completed"`
	AvgScore            *float64 `json:"avg_score"`
}

// ReportPeriod bounds a quarter as calendar dates (inclusive).
type ReportPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ReportSummary is the headline block of a quarterly report. Averages are
// nil when no scored records exist in the period; a zero would misread as 0%.
type ReportSummary struct {
	TotalSkillsTracked       int      `json:"total_skills_tracked"`
	TotalAssessments         int      `json:"total_assessments"`
	TotalWorksheetsCompleted int      `json:"total_worksheets_completed"`
	AverageAssessmentScore   *float64 `json:"average_assessment_score"`
}

// QuarterlyReport is the assembled IHIP compliance document. GeneratedAt is
// assigned once at assembly time; rendering never recomputes it.
type QuarterlyReport struct {
	StudentID       string             `json:"student_id"`
	Year            int                `json:"year"`
	Quarter         int                `json:"quarter"`
	Period          ReportPeriod       `json:"period"`
	Skills          []SkillRecord      `json:"skills"`
	Assessments     []AssessmentRecord `json:"assessments"`
	Worksheets      []WorksheetRecord  `json:"worksheets"`
	SubjectProgress []SubjectProgress  `json:"subject_progress"`
	Summary         ReportSummary      `json:"summary"`
	IHIPCompliant   bool               `json:"ihip_compliant"`
	GeneratedAt     time.Time          `json:"generated_at"`
}
