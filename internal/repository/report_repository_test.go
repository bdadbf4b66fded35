package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renkids/homeschool-hub-api/internal/models"
)

var (
	periodFrom = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	periodTo   = time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)
)

func TestSkillsForPeriod(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	assessed := time.Date(2024, time.February, 15, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "student_id", "standard_code", "subject", "grade_level", "skill_name", "mastery_level", "last_assessed_at"}).
		AddRow("sk-1", "student-1", "3.OA.1", "Math", "3", "Multiplication", "in_progress", assessed).
		AddRow("sk-2", "student-1", "RL.3.1", "Reading", "3", "Key details", "mastered", assessed)

	mock.ExpectQuery(regexp.QuoteMeta("last_assessed_at >= $2 AND last_assessed_at < $3")).
		WithArgs("student-1", periodFrom, periodTo).
		WillReturnRows(rows)

	skills, err := repo.SkillsForPeriod(context.Background(), "student-1", periodFrom, periodTo)
	require.NoError(t, err)
	require.Len(t, skills, 2)
	assert.Equal(t, models.MasteryInProgress, skills[0].MasteryLevel)
	assert.Equal(t, "RL.3.1", skills[1].StandardCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentsForPeriodNullableColumns(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	assessed := time.Date(2024, time.March, 1, 10, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "student_id", "subject", "grade_level", "title", "assessment_type", "score_percentage", "mastery_determination", "assessed_at"}).
		AddRow("as-1", "student-1", "Math", "3", "Unit 2 Quiz", "quiz", 87.5, "proficient", assessed).
		AddRow("as-2", "student-1", "Art", "3", "Portfolio review", "observation", nil, nil, assessed)

	mock.ExpectQuery(regexp.QuoteMeta("FROM assessments")).
		WithArgs("student-1", periodFrom, periodTo).
		WillReturnRows(rows)

	assessments, err := repo.AssessmentsForPeriod(context.Background(), "student-1", periodFrom, periodTo)
	require.NoError(t, err)
	require.Len(t, assessments, 2)

	require.NotNil(t, assessments[0].ScorePercentage)
	assert.Equal(t, 87.5, *assessments[0].ScorePercentage)
	assert.Nil(t, assessments[1].ScorePercentage)
	assert.Nil(t, assessments[1].MasteryDetermination)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorksheetsForPeriod(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	completed := time.Date(2024, time.February, 20, 14, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "student_id", "template_id", "subject", "grade_level", "difficulty_level", "status", "score_percentage", "time_spent_minutes", "completed_at"}).
		AddRow("ws-1", "student-1", "tpl-1", "Math", "3", "medium", "completed", 92.0, 25, completed).
		AddRow("ws-2", "student-1", "tpl-2", "Math", "3", "hard", "reviewed", nil, nil, completed)

	mock.ExpectQuery(regexp.QuoteMeta("completed_at >= $2 AND completed_at < $3")).
		WithArgs("student-1", periodFrom, periodTo).
		WillReturnRows(rows)

	worksheets, err := repo.WorksheetsForPeriod(context.Background(), "student-1", periodFrom, periodTo)
	require.NoError(t, err)
	require.Len(t, worksheets, 2)

	assert.Equal(t, models.WorksheetStatusCompleted, worksheets[0].Status)
	require.NotNil(t, worksheets[0].TimeSpentMinutes)
	assert.Equal(t, 25, *worksheets[0].TimeSpentMinutes)
	assert.Nil(t, worksheets[1].ScorePercentage)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWorksheetsForPeriodQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewReportRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM worksheets")).
		WithArgs("student-1", periodFrom, periodTo).
		WillReturnError(assert.AnError)

	_, err := repo.WorksheetsForPeriod(context.Background(), "student-1", periodFrom, periodTo)
	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
