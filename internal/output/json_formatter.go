package output

import (
	"github.com/goccy/go-json"
	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/rgehrsitz/disabilitycalc/internal/report"
)

// JSONFormatter emits the full calculation result as indented JSON.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

type seriesLabels struct {
	Expenses string `json:"expenses"`
	Coverage string `json:"coverage"`
	Category string `json:"category"`
}

type jsonReport struct {
	Title        string                    `json:"title"`
	ShortMessage string                    `json:"short_message"`
	LongMessage  string                    `json:"long_message"`
	Labels       seriesLabels              `json:"series_labels"`
	Result       *domain.CalculationResult `json:"result"`
}

func (JSONFormatter) Format(src ReportSource) ([]byte, error) {
	r, err := requireResult(src)
	if err != nil {
		return nil, err
	}
	p := src.Parameters()
	doc := jsonReport{
		Title:        p.ReportTitle,
		ShortMessage: r.ShortMessage,
		LongMessage:  src.FormatReportWith(report.TokenLongMessage, nil),
		Labels: seriesLabels{
			Expenses: p.MsgGraph1,
			Coverage: p.MsgGraph2,
			Category: p.MsgGraph3,
		},
		Result: r,
	}
	return json.MarshalIndent(doc, "", "  ")
}
