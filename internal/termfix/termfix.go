// Package termfix adjusts terminal environment variables before any
// lipgloss/termenv package looks at them. Import it FIRST using:
//
//	_ "github.com/wahlandcase/attuned.releaseprs/internal/termfix"
package termfix

import "os"

func init() {
	Apply(os.Getenv, os.Setenv)
}

// Apply fixes up the environment through the given accessors.
// Warp delays on capability queries unless TERM is dumb. CI logs get no
// colour unless the job asked for it with CLICOLOR_FORCE.
func Apply(getenv func(string) string, setenv func(string, string) error) {
	if getenv("TERM_PROGRAM") == "WarpTerminal" {
		setenv("TERM", "dumb")
		setenv("COLORTERM", "truecolor")
	}
	if getenv("CI") == "true" && getenv("NO_COLOR") == "" && getenv("CLICOLOR_FORCE") == "" {
		setenv("NO_COLOR", "1")
	}
}
