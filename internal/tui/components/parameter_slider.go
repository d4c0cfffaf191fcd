package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/rgehrsitz/swrgo/internal/tui/tuistyles"
)

// ParameterSlider displays an adjustable run setting with a visual slider
type ParameterSlider struct {
	Label       string
	Value       float64
	Min         float64
	Max         float64
	Step        float64
	Format      string // e.g. "%.0f", "%.0f%%"
	Width       int
	IsFocused   bool
	Description string
}

// NewParameterSlider creates a new parameter slider
func NewParameterSlider(label string, value, min, max, step float64) *ParameterSlider {
	p := &ParameterSlider{
		Label:  label,
		Min:    min,
		Max:    max,
		Step:   step,
		Format: "%.0f",
		Width:  30,
	}
	p.SetValue(value)
	return p
}

// WithFormat sets the value format string
func (p *ParameterSlider) WithFormat(format string) *ParameterSlider {
	p.Format = format
	return p
}

// WithDescription adds a description/help text
func (p *ParameterSlider) WithDescription(desc string) *ParameterSlider {
	p.Description = desc
	return p
}

// Increment increases the value by step, stopping at Max
func (p *ParameterSlider) Increment() { p.SetValue(p.Value + p.Step) }

// Decrement decreases the value by step, stopping at Min
func (p *ParameterSlider) Decrement() { p.SetValue(p.Value - p.Step) }

// SetValue sets the value directly, clamping to min/max
func (p *ParameterSlider) SetValue(value float64) {
	p.Value = math.Max(p.Min, math.Min(p.Max, value))
}

// Fraction returns the value's position within the range
func (p *ParameterSlider) Fraction() float64 {
	if p.Max == p.Min {
		return 0
	}
	return (p.Value - p.Min) / (p.Max - p.Min)
}

// Render returns the label, value and slider bar on one line
func (p *ParameterSlider) Render() string {
	labelStyle := tuistyles.ParameterLabelStyle.Width(22)
	valueStyle := tuistyles.ParameterValueStyle.Width(10)
	cursor := "  "
	if p.IsFocused {
		cursor = tuistyles.StatusKeyStyle.Render("▸ ")
		valueStyle = valueStyle.Foreground(tuistyles.ColorAccent)
	}

	line := cursor + labelStyle.Render(p.Label) + valueStyle.Render(fmt.Sprintf(p.Format, p.Value)) + p.renderBar()
	if p.IsFocused && p.Description != "" {
		line += "\n    " + tuistyles.InfoStyle.Render(p.Description)
	}
	return line
}

func (p *ParameterSlider) renderBar() string {
	filled := int(math.Round(float64(p.Width-1) * p.Fraction()))
	thumb := tuistyles.SliderThumbStyle
	if p.IsFocused {
		thumb = thumb.Foreground(tuistyles.ColorAccent)
	}

	var bar strings.Builder
	bar.WriteString("[")
	bar.WriteString(thumb.Render(strings.Repeat("━", filled) + "●"))
	bar.WriteString(tuistyles.SliderTrackStyle.Render(strings.Repeat("─", p.Width-1-filled)))
	bar.WriteString("]")
	return bar.String()
}
