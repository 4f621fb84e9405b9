package app

// Screen is the phase the preview is in
type Screen int

const (
	// ScreenLoading shows the spinner while the pipeline runs
	ScreenLoading Screen = iota
	// ScreenSummary shows the collected pull requests
	ScreenSummary
	// ScreenError shows why the run stopped
	ScreenError
)

func (s Screen) String() string {
	switch s {
	case ScreenLoading:
		return "Loading"
	case ScreenSummary:
		return "Summary"
	case ScreenError:
		return "Error"
	}
	return "Unknown"
}
