package ui

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorYellow   = lipgloss.Color("#FFFF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorMagenta  = lipgloss.Color("#FF00FF")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)

// PRStateColor picks a colour for a pull request state
func PRStateColor(state string, merged bool) lipgloss.Color {
	switch {
	case merged:
		return ColorMagenta
	case state == "open":
		return ColorGreen
	case state == "closed":
		return ColorRed
	default:
		return ColorWhite
	}
}

// ConfigureColor picks the colour profile for out. termenv already drops
// colour for NO_COLOR and for writers that are not terminals.
func ConfigureColor(out io.Writer, noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.NewOutput(out).EnvColorProfile())
}
