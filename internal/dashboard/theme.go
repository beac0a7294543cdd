package dashboard

import (
	"diabetes/pkg/domain"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Label    lipgloss.Style
	Focused  lipgloss.Style
	Card     lipgloss.Style
	Error    lipgloss.Style
	Positive lipgloss.Style

	Low      lipgloss.Style
	Moderate lipgloss.Style
	High     lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Label:    lipgloss.NewStyle().Width(38),
		Focused:  lipgloss.NewStyle().Width(38).Bold(true).Foreground(lipgloss.Color("63")),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Error: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("196")).
			Foreground(lipgloss.Color("196")),
		Positive: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),

		Low:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		Moderate: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		High:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
	}
}

// Tier returns the style used to render a risk tier.
func (t Theme) Tier(tier domain.RiskTier) lipgloss.Style {
	switch tier {
	case domain.RiskTierLow:
		return t.Low
	case domain.RiskTierHigh:
		return t.High
	default:
		return t.Moderate
	}
}
