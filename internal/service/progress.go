package service

import (
	"math"
	"sort"

	"github.com/renkids/homeschool-hub-api/internal/models"
)

// subjectKey groups activity by the ordered (subject, grade level) pair.
// A composite key avoids delimiter collisions that a concatenated string
// key would invite.
type subjectKey struct {
	Subject    string
	GradeLevel string
}

type progressAccumulator struct {
	count       int
	scoreSum    float64
	scoreCount  int
	minuteSum   int
	minuteCount int
}

// AggregateSubjectProgress folds a period's activity logs into per-subject
// progress rows plus period-wide totals. Averages only consider records with
// a non-nil value; when no record carries a score the average stays nil
// rather than implying 0%. Output is sorted by subject then grade level.
func AggregateSubjectProgress(logs []models.ActivityLog) ([]models.SubjectProgress, models.ProgressTotals) {
	groups := make(map[subjectKey]*progressAccumulator)
	overall := progressAccumulator{}
	completed := 0

	for _, log := range logs {
		key := subjectKey{Subject: log.Subject, GradeLevel: log.GradeLevel}
		acc, ok := groups[key]
		if !ok {
			acc = &progressAccumulator{}
			groups[key] = acc
		}
		acc.count++
		overall.count++
		if log.Status.CountsAsDone() {
			completed++
		}
		if log.Score != nil {
			acc.scoreSum += *log.Score
			acc.scoreCount++
			overall.scoreSum += *log.Score
			overall.scoreCount++
		}
		if log.TimeSpentMinutes != nil {
			acc.minuteSum += *log.TimeSpentMinutes
			acc.minuteCount++
		}
	}

	progress := make([]models.SubjectProgress, 0, len(groups))
	for key, acc := range groups {
		progress = append(progress, models.SubjectProgress{
			Subject:             key.Subject,
			GradeLevel:          key.GradeLevel,
			WorksheetsCompleted: acc.count,
			AvgScore:            roundedAverage(acc.scoreSum, acc.scoreCount),
			AvgTimeSpentMinutes: wholeMinuteAverage(acc.minuteSum, acc.minuteCount),
		})
	}

	sort.Slice(progress, func(i, j int) bool {
		if progress[i].Subject != progress[j].Subject {
			return progress[i].Subject < progress[j].Subject
		}
		return progress[i].GradeLevel < progress[j].GradeLevel
	})

	totals := models.ProgressTotals{
		TotalActivities:     overall.count,
		WorksheetsCompleted: completed,
		AvgScore:            roundedAverage(overall.scoreSum, overall.scoreCount),
	}
	return progress, totals
}

// roundedAverage averages to two decimal places, nil when count is zero.
func roundedAverage(sum float64, count int) *float64 {
	if count == 0 {
		return nil
	}
	avg := math.Round(sum/float64(count)*100) / 100
	return &avg
}

// wholeMinuteAverage averages to the nearest whole minute, nil when count is zero.
func wholeMinuteAverage(sum, count int) *int {
	if count == 0 {
		return nil
	}
	avg := int(math.Round(float64(sum) / float64(count)))
	return &avg
}
