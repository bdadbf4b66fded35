package service

import (
	"time"

	appErrors "github.com/renkids/homeschool-hub-api/pkg/errors"
)

// QuarterRange maps a (quarter, year) pair onto calendar dates: the first day
// of the quarter's first month through the last day of its third month.
// Q1=Jan-Mar, Q2=Apr-Jun, Q3=Jul-Sep, Q4=Oct-Dec.
func QuarterRange(quarter, year int) (start, end time.Time, err error) {
	if quarter < 1 || quarter > 4 {
		return time.Time{}, time.Time{}, appErrors.Clone(appErrors.ErrValidation, "quarter must be a number between 1 and 4")
	}

	startMonth := time.Month(3*(quarter-1) + 1)
	start = time.Date(year, startMonth, 1, 0, 0, 0, 0, time.UTC)
	// Day zero of the following month resolves to the actual last day,
	// honoring month lengths and leap years.
	end = time.Date(year, startMonth+3, 0, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}
