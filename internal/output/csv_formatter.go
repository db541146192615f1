package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes the month-by-month series as CSV, one row per month.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(src ReportSource) ([]byte, error) {
	r, err := requireResult(src)
	if err != nil {
		return nil, err
	}
	places := src.Parameters().DecimalPlaces

	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Month", "MonthlyExpenses", "InsuranceCoverage", "Difference"}); err != nil {
		return nil, err
	}
	for i, month := range r.Categories {
		row := []string{
			strconv.Itoa(month),
			r.Expenses[i].StringFixed(places),
			r.Coverage[i].StringFixed(places),
			r.Coverage[i].Sub(r.Expenses[i]).StringFixed(places),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
