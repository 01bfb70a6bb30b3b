package console

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Gauge prints a fixed-width bar representing a value out of a maximum.
type Gauge struct {
	maxValue    int
	width       int
	fill        string
	empty       string
	showPercent bool
}

func NewGauge(maxValue int, options ...func(*Gauge)) *Gauge {
	result := &Gauge{
		maxValue:    maxValue,
		width:       10,
		fill:        "#",
		empty:       " ",
		showPercent: false,
	}
	for _, option := range options {
		option(result)
	}
	return result
}

func ShowPercent() func(*Gauge) {
	return func(g *Gauge) {
		g.showPercent = true
	}
}

func Width(characters int) func(*Gauge) {
	return func(g *Gauge) {
		g.width = characters
	}
}

func Runes(fill, empty string) func(*Gauge) {
	return func(g *Gauge) {
		g.fill = fill
		g.empty = empty
	}
}

// Render returns the gauge line without printing it.
func (g *Gauge) Render(value int, message string) string {
	value = min(max(value, 0), g.maxValue)

	percent := 0
	if g.maxValue > 0 {
		percent = value * 100 / g.maxValue
	}
	filled := percent * g.width / 100

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strings.Repeat(g.fill, filled))
	sb.WriteString(strings.Repeat(g.empty, g.width-filled))
	sb.WriteString("] ")

	if g.showPercent {
		sb.WriteString(fmt.Sprintf("%3d%%", percent))
	} else {
		sb.WriteString(fmt.Sprintf("%d/%d", value, g.maxValue))
	}

	if message != "" {
		sb.WriteRune(' ')
		sb.WriteString(message)
	}
	return sb.String()
}

// Box surrounds lines with a simple ASCII frame.
func Box(lines ...string) string {
	width := 0
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line))
	}

	var sb strings.Builder
	sb.WriteString("+" + strings.Repeat("-", width+2) + "+\n")
	for _, line := range lines {
		padding := width - utf8.RuneCountInString(line)
		sb.WriteString("| " + line + strings.Repeat(" ", padding) + " |\n")
	}
	sb.WriteString("+" + strings.Repeat("-", width+2) + "+")
	return sb.String()
}
