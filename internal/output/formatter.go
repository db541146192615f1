package output

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/disabilitycalc/internal/domain"
	"github.com/rgehrsitz/disabilitycalc/internal/report"
)

var (
	// ErrUnsupportedFormat is returned for format names with no registered formatter.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrNoResult is returned when a formatter runs before any calculation.
	ErrNoResult = errors.New("no calculation result")
)

// ReportSource is the calculator state a formatter renders. The calculation
// engine satisfies it.
type ReportSource interface {
	Result() *domain.CalculationResult
	Parameters() domain.Parameters
	FormatReportWith(template string, renderer report.ScheduleRenderer) string
}

// Formatter defines a pluggable output formatter that returns a byte slice.
type Formatter interface {
	Format(src ReportSource) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	NewConsoleFormatter(""),
	NewHTMLFormatter(""),
	JSONFormatter{},
	CSVFormatter{},
	PDFFormatter{},
}

// GetFormatterByName fetches a registered formatter, or nil.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// LookupFormatter is GetFormatterByName with an ErrUnsupportedFormat error
// listing the valid names.
func LookupFormatter(name string) (Formatter, error) {
	if f := GetFormatterByName(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, name,
		strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":        "console",
	"txt":         "console",
	"html-report": "html",
	"json-pretty": "json",
	"schedule":    "csv",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Extension returns the file extension used for a formatter's output.
func Extension(f Formatter) string {
	if f.Name() == "console" {
		return "txt"
	}
	return f.Name()
}

// WriteFormatted runs a formatter and writes the output to filename. An empty
// filename writes to a timestamped file in the working directory.
func WriteFormatted(f Formatter, src ReportSource, filename string) (string, error) {
	data, err := f.Format(src)
	if err != nil {
		return "", err
	}
	if filename == "" {
		filename = fmt.Sprintf("disability_report_%s.%s", time.Now().Format("20060102_150405"), Extension(f))
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

func requireResult(src ReportSource) (*domain.CalculationResult, error) {
	r := src.Result()
	if r == nil {
		return nil, ErrNoResult
	}
	return r, nil
}
