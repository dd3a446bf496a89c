package main

import (
	"fmt"
	"strings"

	m "leopa/api/models/genetics"
	"leopa/api/models/indexes"

	"github.com/charmbracelet/lipgloss"
)

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorSurface1 lipgloss.Color = "#45475a"
)

type styles struct {
	title       lipgloss.Style
	probability lipgloss.Style
	name        lipgloss.Style
	traits      lipgloss.Style
	warning     lipgloss.Style
	box         lipgloss.Style
}

func newStyles(plain bool) styles {
	if plain {
		s := lipgloss.NewStyle()
		return styles{title: s, probability: s, name: s, traits: s, warning: s, box: s}
	}
	return styles{
		title:       lipgloss.NewStyle().Foreground(colorPink).Bold(true),
		probability: lipgloss.NewStyle().Foreground(colorGreen).Bold(true).Width(9).Align(lipgloss.Right),
		name:        lipgloss.NewStyle().Foreground(colorTeal),
		traits:      lipgloss.NewStyle().Foreground(colorSubtext0),
		warning:     lipgloss.NewStyle().Foreground(colorYellow),
		box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1),
	}
}

func renderOutcomes(st styles, title string, outcomes []m.CombinedOutcome, skipped []string, limit int) string {
	var b strings.Builder

	b.WriteString(st.title.Render(title))
	b.WriteString("\n\n")

	shown := outcomes
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}
	for _, o := range shown {
		b.WriteString(st.probability.Render(fmt.Sprintf("%.2f%%", o.Probability)))
		b.WriteString("  ")
		b.WriteString(st.name.Render(o.DisplayName))
		if len(o.Traits) > 0 {
			b.WriteString("  ")
			b.WriteString(st.traits.Render(traitSummary(o.Traits)))
		}
		b.WriteString("\n")
		for _, w := range o.Warnings {
			b.WriteString("           ")
			b.WriteString(st.warning.Render("! " + w))
			b.WriteString("\n")
		}
	}
	if hidden := len(outcomes) - len(shown); hidden > 0 {
		b.WriteString(st.traits.Render(fmt.Sprintf("... %d less likely outcomes", hidden)))
		b.WriteString("\n")
	}
	if len(skipped) > 0 {
		b.WriteString(st.warning.Render("skipped unknown morphs: " + strings.Join(skipped, ", ")))
		b.WriteString("\n")
	}

	return st.box.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func traitSummary(traits []m.Trait) string {
	parts := make([]string, 0, len(traits))
	for _, t := range traits {
		parts = append(parts, t.Locus+":"+t.Status)
	}
	return "(" + strings.Join(parts, " ") + ")"
}

func renderMorphs(st styles, morphs []indexes.MorphDefinition) string {
	var b strings.Builder
	b.WriteString(st.title.Render("Morph catalog"))
	b.WriteString("\n\n")
	for _, morph := range morphs {
		b.WriteString(st.name.Render(fmt.Sprintf("%-20s", morph.Id)))
		b.WriteString(" ")
		b.WriteString(fmt.Sprintf("%-22s", morph.Name))
		b.WriteString(st.traits.Render(string(morph.Inheritance)))
		b.WriteString("\n")
	}
	return st.box.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}
