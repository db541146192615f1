package report

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed templates/report.txt
var textTemplate string

//go:embed templates/report.html
var htmlTemplate string

// TextTemplate returns the built-in plain-text report template.
func TextTemplate() string { return textTemplate }

// HTMLTemplate returns the built-in HTML report template.
func HTMLTemplate() string { return htmlTemplate }

// LoadTemplate reads a custom report template from disk.
func LoadTemplate(filename string) (string, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", filename, err)
	}
	return string(data), nil
}
