package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"provenant/internal/report"
	"provenant/internal/scoring"
)

// Semantic colors for the report card.
var (
	colorSuccess = lipgloss.Color("#8BC34A")
	colorInfo    = lipgloss.Color("#2196F3")
	colorWarning = lipgloss.Color("#FFC107")
	colorDanger  = lipgloss.Color("#e53935")
	colorMuted   = lipgloss.Color("#6b7280")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(18)

	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
)

func tierColor(t scoring.Tier) lipgloss.Color {
	switch t {
	case scoring.Ver3:
		return colorSuccess
	case scoring.Ver2:
		return colorInfo
	case scoring.Ver1:
		return colorWarning
	default:
		return colorDanger
	}
}

// renderReport draws the notary report as a bordered card.
func renderReport(rep report.NotaryReport) string {
	accent := tierColor(rep.VER)
	headline := lipgloss.NewStyle().Bold(true).Foreground(accent)

	var b strings.Builder

	b.WriteString(titleStyle.Render("Human Agency Score"))
	b.WriteString("\n\n")
	b.WriteString(headline.Render(fmt.Sprintf("HAS %d / 100", rep.HAS)))
	b.WriteString("   ")
	b.WriteString(headline.Render(string(rep.VER)))
	if rep.IsMusic {
		b.WriteString("   ")
		b.WriteString(mutedStyle.Render("(audio)"))
	}
	b.WriteString("\n\n")

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label))
		b.WriteString(value)
		b.WriteString("\n")
	}

	row("Base score", fmt.Sprintf("%.1f", rep.HASBase))
	row("Penalties", fmt.Sprintf("-%.1f", rep.PTotal))
	row("Leverage", fmt.Sprintf("x%.2f", rep.L))
	row("Turns confidence", fmt.Sprintf("%.2f", rep.TurnsConfidence))

	if rep.PlagiarismDetected != nil && *rep.PlagiarismDetected {
		b.WriteString(lipgloss.NewStyle().Foreground(colorDanger).Bold(true).
			Render("PLAGIARISM DETECTED"))
		b.WriteString("\n")
	}
	if rep.LyricAlignment != nil {
		row("Lyric alignment", fmt.Sprintf("%.2f", *rep.LyricAlignment))
	}

	b.WriteString("\n")
	b.WriteString(renderScores(rep.Scores))
	b.WriteString("\n")

	row("Certificate", rep.CertID)
	row("SHA-256", rep.ArtifactSHA256)
	row("Issued", rep.IssuedAt)
	row("Policy", rep.ModelPolicy)
	row("Sensor", rep.ParserSource)

	return cardStyle.BorderForeground(accent).Render(strings.TrimRight(b.String(), "\n"))
}

// renderScores draws one bar per semantic score.
func renderScores(s scoring.SemanticScores) string {
	type entry struct {
		name  string
		value float64
	}
	entries := []entry{
		{"HI", s.HI},
		{"PD", s.PD},
		{"REF", s.REF},
		{"ALIGN", s.ALIGN},
		{"ORG", s.ORG},
		{"COH", s.COH},
		{"COMP", s.COMP},
		{"INTEG", s.INTEG},
	}
	if s.CITE != nil {
		entries = append(entries, entry{"CITE", *s.CITE})
	}
	if s.IC != nil {
		entries = append(entries, entry{"IC", *s.IC})
	}

	var b strings.Builder
	for _, e := range entries {
		b.WriteString(labelStyle.Render(e.name))
		b.WriteString(scoreBar(e.value))
		b.WriteString(fmt.Sprintf("  %.2f\n", e.value))
	}
	return b.String()
}

// scoreBar renders a 20-cell bar for a score in [0,1].
func scoreBar(v float64) string {
	const width = 20
	filled := int(v*width + 0.5)
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}

	color := colorSuccess
	switch {
	case v < 0.4:
		color = colorDanger
	case v < 0.7:
		color = colorWarning
	}

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	rest := mutedStyle.Render(strings.Repeat("░", width-filled))
	return bar + rest
}
