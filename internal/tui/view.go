package tui

import (
	"fmt"
	"strings"

	"carbonwise/internal/model"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#2E7D32")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("71"))

	highStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")) // Red
	moderateStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208")) // Orange
	lowStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("76"))  // Green

	altStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(lipgloss.Color("81")) // Sky Blue/Cyan

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

func (m AppModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CarbonWise"))
	b.WriteString(" ")
	b.WriteString(labelStyle.Render("product carbon analysis"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Product URL:"))
	b.WriteString("\n")
	b.WriteString(m.URLInput.View())
	b.WriteString("\n\n")

	switch {
	case m.State.Analyzing:
		b.WriteString(m.Bar.ViewAs(float64(m.State.Progress) / 100))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("Analyzing product... %d%%", m.State.Progress)))
		b.WriteString("\n")

	case m.State.Err != "":
		b.WriteString(errorStyle.Render("Error: " + m.State.Err))
		b.WriteString("\n")

	case m.State.Result != nil:
		b.WriteString(m.renderResult())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m AppModel) renderResult() string {
	res := m.State.Result

	var body strings.Builder
	writeField := func(label, value string) {
		body.WriteString(labelStyle.Render(fmt.Sprintf("%-10s", label)))
		body.WriteString(valueStyle.Render(value))
		body.WriteString("\n")
	}

	writeField("Product", res.Product)
	writeField("Material", res.Material)
	if res.Weight != "" {
		writeField("Weight", strings.TrimSpace(res.Weight+" "+res.Unit))
	}
	writeField("Footprint", res.Carbon+" kg CO2e")

	body.WriteString("\n")
	body.WriteString(labelForStyle(res.Recommendation).Render(
		model.ImpactBadge(res.Recommendation) + " " + res.Recommendation))

	out := resultStyle.Render(body.String()) + "\n"

	if len(m.State.Recommendations) > 0 {
		out += "\n" + labelStyle.Render("Suggested alternatives:") + "\n"
		out += renderAlternatives(m.State.Recommendations)
	}

	// On-demand alternatives (ctrl+r) for the analyzed material.
	switch {
	case m.FetchingAlts:
		out += "\n" + labelStyle.Render("Looking up greener options...") + "\n"
	case m.AltsErr != "":
		out += "\n" + errorStyle.Render(m.AltsErr) + "\n"
	case m.AltsFor != "":
		out += "\n" + labelStyle.Render(fmt.Sprintf("Greener options for %s:", m.AltsFor)) + "\n"
		if len(m.AltRecs) == 0 {
			out += dimStyle.Render("  (none found)") + "\n"
		} else {
			out += renderAlternatives(m.AltRecs)
		}
	}

	return out
}

func renderAlternatives(recs []model.Recommendation) string {
	var b strings.Builder
	for _, r := range recs {
		// Display footprint is formatted here, at render time; the view
		// model keeps the raw number.
		line := fmt.Sprintf("%s %s (%.2f kg CO2e)", model.IconAlternative, r.ProductName, r.CarbonFootprint)
		if r.Link != "" {
			line += " " + dimStyle.Render(r.Link)
		}
		b.WriteString(altStyle.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

func (m AppModel) renderFooter() string {
	parts := []string{"enter: analyze", "ctrl+r: greener options", "esc: quit"}
	footer := dimStyle.Render(strings.Join(parts, "  ·  "))
	if m.Backend != "" {
		footer += "\n" + dimStyle.Render(m.Backend)
	}
	return footer
}

func labelForStyle(label string) lipgloss.Style {
	switch {
	case strings.HasPrefix(label, "High"):
		return highStyle
	case strings.HasPrefix(label, "Moderate"):
		return moderateStyle
	}
	return lowStyle
}
