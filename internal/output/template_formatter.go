package output

import "github.com/rgehrsitz/disabilitycalc/internal/report"

// TemplateFormatter renders a token template through the engine's report
// substitution.
type TemplateFormatter struct {
	ID       string
	Template string
	Renderer report.ScheduleRenderer
}

// NewConsoleFormatter returns the plain-text formatter. An empty template
// selects the built-in one.
func NewConsoleFormatter(template string) TemplateFormatter {
	if template == "" {
		template = report.TextTemplate()
	}
	return TemplateFormatter{ID: "console", Template: template, Renderer: report.TextScheduleRenderer{}}
}

// NewHTMLFormatter returns the HTML formatter. An empty template selects the
// built-in one.
func NewHTMLFormatter(template string) TemplateFormatter {
	if template == "" {
		template = report.HTMLTemplate()
	}
	return TemplateFormatter{ID: "html", Template: template, Renderer: report.HTMLScheduleRenderer{}}
}

func (f TemplateFormatter) Name() string { return f.ID }

func (f TemplateFormatter) Format(src ReportSource) ([]byte, error) {
	if _, err := requireResult(src); err != nil {
		return nil, err
	}
	return []byte(src.FormatReportWith(f.Template, f.Renderer)), nil
}
