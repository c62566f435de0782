// Package render formats org charts for the terminal.
package render

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Track colors
	TechnicalColor = lipgloss.Color("#60A5FA") // Blue
	BusinessColor  = lipgloss.Color("#FBBF24") // Yellow
)

// Styles holds the styles used to render org output. Styles are bound to
// a lipgloss renderer so color support follows the output writer.
type Styles struct {
	Title     lipgloss.Style
	Lead      lipgloss.Style
	Technical lipgloss.Style
	Business  lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Failure   lipgloss.Style
	Box       lipgloss.Style
	Header    lipgloss.Style
}

// NewStyles creates styles for output written to w. When color is false
// all color is stripped regardless of the terminal.
func NewStyles(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(PrimaryColor),
		Lead: r.NewStyle().
			Bold(true),
		Technical: r.NewStyle().
			Foreground(TechnicalColor),
		Business: r.NewStyle().
			Foreground(BusinessColor),
		Muted: r.NewStyle().
			Foreground(MutedColor),
		Success: r.NewStyle().
			Foreground(SecondaryColor),
		Failure: r.NewStyle().
			Foreground(ErrorColor),
		Box: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(0, 1),
		Header: r.NewStyle().
			Bold(true).
			Foreground(WarningColor),
	}
}
