package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/rgehrsitz/disabilitycalc/internal/domain"
)

// ScheduleRenderer turns a schedule into the text that replaces the
// repeating-group marker.
type ScheduleRenderer interface {
	RenderSchedule(schedule *domain.ReportSchedule) string
}

// TextScheduleRenderer renders the schedule as right-aligned plain-text columns.
type TextScheduleRenderer struct{}

func (TextScheduleRenderer) RenderSchedule(schedule *domain.ReportSchedule) string {
	if schedule == nil {
		return ""
	}

	var widths [4]int
	for i, h := range schedule.Header {
		widths[i] = len(h)
	}
	for _, row := range schedule.Rows {
		for i, cell := range row.Cells {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	writeLine := func(cells [4]string) {
		parts := make([]string, len(cells))
		for i, c := range cells {
			parts[i] = fmt.Sprintf("%*s", widths[i], c)
		}
		b.WriteString(strings.TrimRight(strings.Join(parts, "  "), " "))
		b.WriteString("\n")
	}

	writeLine(schedule.Header)
	total := 0
	for _, w := range widths {
		total += w
	}
	b.WriteString(strings.Repeat("-", total+2*(len(widths)-1)))
	b.WriteString("\n")
	for _, row := range schedule.Rows {
		writeLine(row.Cells)
	}
	return b.String()
}

// HTMLScheduleRenderer renders the schedule as an HTML table.
type HTMLScheduleRenderer struct{}

func (HTMLScheduleRenderer) RenderSchedule(schedule *domain.ReportSchedule) string {
	if schedule == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("<table class=\"schedule\">\n<thead><tr>")
	for _, h := range schedule.Header {
		fmt.Fprintf(&b, "<th scope=\"col\">%s</th>", html.EscapeString(h))
	}
	b.WriteString("</tr></thead>\n<tbody>\n")
	for i, row := range schedule.Rows {
		class := "even"
		if i%2 == 1 {
			class = "odd"
		}
		fmt.Fprintf(&b, "<tr class=\"%s\">", class)
		for _, cell := range row.Cells {
			fmt.Fprintf(&b, "<td>%s</td>", html.EscapeString(cell))
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}
