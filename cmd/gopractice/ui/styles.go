// Package ui provides the lipgloss styling for gopractice command output.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	Accent = lipgloss.Color("#8BC34A") // lime green
	Muted  = lipgloss.Color("#6c7a89")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Accent)

	labelStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Width(8)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)
)

// RenderStoreReport renders the pet store's three uniform accessors.
func RenderStoreReport(petType, sound, food string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("pet store") + "\n")
	b.WriteString(labelStyle.Render("selling") + petType + "\n")
	b.WriteString(labelStyle.Render("sound") + sound + "\n")
	b.WriteString(labelStyle.Render("food") + food)
	return boxStyle.Render(b.String())
}

// RenderFrequencyTable renders word/count rows in two aligned columns.
func RenderFrequencyTable(rows [][2]string) string {
	if len(rows) == 0 {
		return lipgloss.NewStyle().Foreground(Muted).Render("(no words)")
	}

	width := 0
	for _, row := range rows {
		if len(row[0]) > width {
			width = len(row[0])
		}
	}

	wordStyle := lipgloss.NewStyle().Width(width + 2)
	countStyle := lipgloss.NewStyle().Foreground(Accent)

	var b strings.Builder
	for i, row := range rows {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(wordStyle.Render(row[0]))
		b.WriteString(countStyle.Render(row[1]))
	}
	return b.String()
}
