package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type palette struct {
	title   lipgloss.Style
	noise   lipgloss.Style
	silence lipgloss.Style
	muted   lipgloss.Style
	success lipgloss.Style
	enabled bool
}

func newPalette(w io.Writer, enabled bool) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		noise:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#F4D03F")),
		silence: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#20B9B4")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("241")),
		success: r.NewStyle().Bold(true).Foreground(lipgloss.Color("#2CD7C7")),
		enabled: enabled,
	}
}

func (p palette) render(s lipgloss.Style, text string) string {
	if !p.enabled {
		return text
	}
	return s.Render(text)
}

func renderText(w io.Writer, r *Report, color bool) string {
	p := newPalette(w, color)
	var b strings.Builder

	b.WriteString(p.render(p.title, "Normalized values:"))
	b.WriteString("\n")
	for _, s := range r.Symbols {
		style := p.noise
		if s.Kind == "silence" {
			style = p.silence
		}
		fmt.Fprintf(&b, "%s. %dus %s\n", p.render(style, s.Letter), s.Average, s.Kind)
	}
	b.WriteString(p.render(p.muted, fmt.Sprintf("(normalizing max distance <= %g)", r.Threshold)))
	b.WriteString("\n\n")

	b.WriteString(p.render(p.success, fmt.Sprintf("All %d readings match the same normalized string!", r.Readings)))
	b.WriteString("\n")
	b.WriteString(r.Canonical)
	b.WriteString("\n")

	return b.String()
}

func renderInspectionText(w io.Writer, r *InspectionReport, color bool) string {
	p := newPalette(w, color)
	var b strings.Builder

	b.WriteString(p.render(p.title, fmt.Sprintf("Interval statistics (%d readings, %d intervals):",
		r.Readings, r.Summary.Intervals)))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%5s  %-7s  %8s  %8s  %8s\n", "pos", "kind", "avg(us)", "stddev", "maxdist")
	for _, ai := range r.Positions {
		kind, style := "noise", p.noise
		if ai.Silence {
			kind, style = "silence", p.silence
		}
		fmt.Fprintf(&b, "%5d  %s  %8d  %8.2f  %8d\n",
			ai.Position, p.render(style, fmt.Sprintf("%-7s", kind)), ai.Average, ai.StandardDeviation, ai.MaxDistance)
	}

	b.WriteString(p.render(p.muted, fmt.Sprintf(
		"mean stddev %.2f, max stddev %.2f, median max distance %g, max distance %d",
		r.Summary.MeanStdDev, r.Summary.MaxStdDev, r.Summary.MedianMaxDistance, r.Summary.MaxDistance)))
	b.WriteString("\n")
	b.WriteString(p.render(p.muted, fmt.Sprintf("(normalizing max distance <= %g)", r.Threshold)))
	b.WriteString("\n")

	return b.String()
}
