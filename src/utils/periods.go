package utils

import (
	"fmt"
	"time"
)

// Period is a fixed performance window token.
type Period string

const (
	PeriodDay        Period = "1D"
	PeriodWeek       Period = "1W"
	PeriodMonth      Period = "1M"
	PeriodThreeMonth Period = "3M"
	PeriodSixMonth   Period = "6M"
	PeriodYear       Period = "1Y"
	PeriodAll        Period = "ALL"
)

// allTimeCutoff is the epoch used when the whole transaction history is in scope.
var allTimeCutoff = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// ParsePeriod validates a period token, defaulting to 1M when empty.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return PeriodMonth, nil
	}
	switch Period(s) {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodThreeMonth, PeriodSixMonth, PeriodYear, PeriodAll:
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid period %q, expected one of 1D, 1W, 1M, 3M, 6M, 1Y, ALL", s)
}

// CutoffDate returns the start of the performance window ending at now.
func (p Period) CutoffDate(now time.Time) time.Time {
	switch p {
	case PeriodDay:
		return now.AddDate(0, 0, -1)
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	case PeriodThreeMonth:
		return now.AddDate(0, -3, 0)
	case PeriodSixMonth:
		return now.AddDate(0, -6, 0)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return allTimeCutoff
	}
}
