package termview

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	colorDim     = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "#F25D94", Dark: "#F25D94"}
	colorGreen   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}
	colorError   = lipgloss.AdaptiveColor{Light: "#D7263D", Dark: "#FF5F5F"}
	colorGold    = lipgloss.AdaptiveColor{Light: "#B8860B", Dark: "#FFD166"}
)

type styles struct {
	badge        lipgloss.Style
	badgeError   lipgloss.Style
	badgePremium lipgloss.Style
	errorBox     lipgloss.Style
	modal        lipgloss.Style
	modalTitle   lipgloss.Style
	premiumBox   lipgloss.Style
	premiumTitle lipgloss.Style
	busy         lipgloss.Style
	dim          lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		badge: r.NewStyle().
			Foreground(colorGreen).
			Bold(true).
			Padding(0, 1),
		badgeError: r.NewStyle().
			Foreground(colorError).
			Bold(true).
			Padding(0, 1),
		badgePremium: r.NewStyle().
			Foreground(colorGold).
			Bold(true).
			Padding(0, 1),
		errorBox: r.NewStyle().
			Foreground(colorError).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1),
		modal: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2),
		modalTitle: r.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			MarginBottom(1),
		premiumBox: r.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(colorGold).
			Padding(1, 2),
		premiumTitle: r.NewStyle().
			Foreground(colorGold).
			Bold(true).
			MarginBottom(1),
		busy: r.NewStyle().
			Foreground(colorPrimary).
			Italic(true),
		dim: r.NewStyle().
			Foreground(colorDim),
	}
}
