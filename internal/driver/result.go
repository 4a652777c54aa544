package driver

// Status classifies the outcome of one command line. It is what a front end
// would render as the per-line marker.
type Status int

const (
	StatusSuccess Status = iota
	StatusWarning
	StatusFailure
)

// String returns the human-readable form of the status.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// LineResult is the recorded outcome of one command line.
type LineResult struct {
	// Line is the 1-based line number in the script file.
	Line int
	// Command is the parsed command name, empty when the line did not parse.
	Command string
	// Status is the line's outcome classification.
	Status Status
	// Err carries the failure or warning detail, nil on success.
	Err error
}

// Results collects the per-line outcomes of one run in file order.
type Results []LineResult

// Failures returns the number of failed lines.
func (r Results) Failures() int {
	return r.count(StatusFailure)
}

// Warnings returns the number of warning lines.
func (r Results) Warnings() int {
	return r.count(StatusWarning)
}

// Successes returns the number of successful lines.
func (r Results) Successes() int {
	return r.count(StatusSuccess)
}

func (r Results) count(s Status) int {
	n := 0
	for _, res := range r {
		if res.Status == s {
			n++
		}
	}
	return n
}
