package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/phaseten/internal/deck"
)

var (
	cardStyles = map[deck.Color]lipgloss.Style{
		deck.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("#E5484D")).Bold(true),
		deck.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("#30A46C")).Bold(true),
		deck.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("#3E63DD")).Bold(true),
		deck.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("#F5D90A")).Bold(true),
	}
	wildStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true)
	skipStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#6E6E6E"))

	passStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#30A46C")).Bold(true)
	failStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#E5484D")).Bold(true)
	titleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

func renderCard(c deck.Card) string {
	switch c.Kind {
	case deck.Wild:
		return wildStyle.Render(c.String())
	case deck.Skip:
		return skipStyle.Render(c.String())
	default:
		return cardStyles[c.Color].Render(c.String())
	}
}

func renderCards(cards []deck.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = renderCard(c)
	}
	return strings.Join(parts, " ")
}
