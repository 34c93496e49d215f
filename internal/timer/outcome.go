package timer

// Outcome is the state of the render loop. Running is the only
// non-terminal state.
type Outcome int

const (
	Running Outcome = iota
	CancelledByUser
	CompletedNormally
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "Running"
	case CancelledByUser:
		return "CancelledByUser"
	case CompletedNormally:
		return "CompletedNormally"
	default:
		return "Unknown"
	}
}

// Done reports whether o is a terminal state.
func (o Outcome) Done() bool {
	return o != Running
}
