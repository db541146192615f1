package domain

import "github.com/shopspring/decimal"

// ScheduleHeader holds the column labels of the month-by-month schedule.
var ScheduleHeader = [4]string{"Payment #", "Monthly expenses", "Insurance coverage", "Difference"}

// ScheduleRow is one month of the schedule.
type ScheduleRow struct {
	Month      int             `json:"month"`
	Expenses   decimal.Decimal `json:"expenses"`
	Coverage   decimal.Decimal `json:"coverage"`
	Difference decimal.Decimal `json:"difference"` // coverage minus expenses

	// Cells are the display strings in header order.
	Cells [4]string `json:"cells"`
}

// ReportSchedule is the month-by-month expenses/coverage/difference table.
type ReportSchedule struct {
	Header [4]string     `json:"header"`
	Rows   []ScheduleRow `json:"rows"`
}

// NewReportSchedule returns an empty schedule with the standard header.
func NewReportSchedule(capacity int) *ReportSchedule {
	if capacity < 0 {
		capacity = 0
	}
	return &ReportSchedule{
		Header: ScheduleHeader,
		Rows:   make([]ScheduleRow, 0, capacity),
	}
}

// AddRow appends a month to the schedule.
func (s *ReportSchedule) AddRow(row ScheduleRow) {
	s.Rows = append(s.Rows, row)
}

// Len returns the number of months in the schedule.
func (s *ReportSchedule) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rows)
}
