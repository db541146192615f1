package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/disabilitycalc/internal/tui/tuistyles"
	"github.com/shopspring/decimal"
)

// ParameterSlider is an adjustable numeric input drawn as a slider bar.
type ParameterSlider struct {
	Label       string
	Value       float64
	Min         float64
	Max         float64
	Step        float64
	Places      int32                // decimal places kept by Decimal
	Formatter   func(float64) string // renders values and range ends
	Width       int
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a slider clamped to [min, max].
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		Label: label,
		Min:   min,
		Max:   max,
		Step:  step,
		Width: 30,
	}
	p.Value = p.clamp(value)
	return p
}

// WithPlaces sets the precision of Decimal and of the default formatter.
func (p *ParameterSlider) WithPlaces(places int32) *ParameterSlider {
	p.Places = places
	return p
}

// WithFormatter sets how values are displayed.
func (p *ParameterSlider) WithFormatter(f func(float64) string) *ParameterSlider {
	p.Formatter = f
	return p
}

// WithWidth sets the slider bar width.
func (p *ParameterSlider) WithWidth(width int) *ParameterSlider {
	p.Width = width
	return p
}

// WithDescription adds help text below the bar.
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// SetFocused sets the focus state.
func (p *ParameterSlider) SetFocused(focused bool) *ParameterSlider {
	p.IsFocused = focused
	return p
}

// Increment moves the value up by n steps, stopping at Max.
func (p *ParameterSlider) Increment(n int) {
	p.SetValue(p.Value + float64(n)*p.Step)
}

// Decrement moves the value down by n steps, stopping at Min.
func (p *ParameterSlider) Decrement(n int) {
	p.SetValue(p.Value - float64(n)*p.Step)
}

// SetValue sets the value, clamped to the slider range and rounded to Places.
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = decimal.NewFromFloat(p.clamp(value)).Round(p.Places).InexactFloat64()
}

func (p *ParameterSlider) clamp(value float64) float64 {
	return math.Max(p.Min, math.Min(p.Max, value))
}

// SetDecimal sets the value from a decimal amount.
func (p *ParameterSlider) SetDecimal(value decimal.Decimal) {
	p.SetValue(value.InexactFloat64())
}

// Decimal returns the value rounded to Places.
func (p *ParameterSlider) Decimal() decimal.Decimal {
	return decimal.NewFromFloat(p.Value).Round(p.Places)
}

// Percentage returns the value's position within the range, 0 to 1.
func (p *ParameterSlider) Percentage() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

func (p *ParameterSlider) display(v float64) string {
	if p.Formatter != nil {
		return p.Formatter(v)
	}
	return fmt.Sprintf("%.*f", p.Places, v)
}

// Render returns the styled slider: label, value, bar and range.
func (p *ParameterSlider) Render() string {
	var content strings.Builder

	labelStyle := tuistyles.ParameterLabelStyle
	valueStyle := tuistyles.ParameterValueStyle
	if p.IsFocused {
		labelStyle = labelStyle.Foreground(tuistyles.ColorPrimary)
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}
	content.WriteString(labelStyle.Render(p.Label))
	content.WriteString("  ")
	content.WriteString(valueStyle.Render(p.display(p.Value)))
	content.WriteString("\n")

	content.WriteString(p.renderSliderBar())

	rangeStyle := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted)
	content.WriteString(" ")
	content.WriteString(rangeStyle.Render(fmt.Sprintf("%s ─ %s", p.display(p.Min), p.display(p.Max))))

	if p.Description != "" && p.IsFocused {
		content.WriteString("\n")
		descStyle := lipgloss.NewStyle().
			Foreground(tuistyles.ColorMuted).
			Italic(true)
		content.WriteString(descStyle.Render(p.Description))
	}

	return content.String()
}

func (p *ParameterSlider) renderSliderBar() string {
	filled := int(math.Round(float64(p.Width) * p.Percentage()))
	if filled < 0 {
		filled = 0
	}
	if filled > p.Width {
		filled = p.Width
	}
	empty := p.Width - filled

	thumbStyle := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumbStyle = thumbStyle.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	if filled > 1 {
		bar.WriteString(thumbStyle.Render(strings.Repeat("━", filled-1)))
	}
	bar.WriteString(thumbStyle.Render("●"))
	if empty > 1 {
		bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", empty-1)))
	}
	bar.WriteString("]")
	return bar.String()
}

// RenderCompact returns a single-line "label: value" form.
func (p *ParameterSlider) RenderCompact() string {
	return tuistyles.ParameterLabelStyle.Render(p.Label+":") + " " +
		tuistyles.ParameterValueStyle.Render(p.display(p.Value))
}
