package focus

// Outcome of a dispatch call.
type Outcome int

const (
	// Continue means the message was not consumed.
	Continue Outcome = iota
	// Unchanged means the message was consumed but the focus stayed put.
	Unchanged
	// Changed means the message was consumed and the focus moved.
	Changed
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Unchanged:
		return "unchanged"
	case Changed:
		return "changed"
	default:
		return "unknown"
	}
}

// IsConsumed reports whether the host should stop propagating the message.
func (o Outcome) IsConsumed() bool {
	return o != Continue
}

// Or returns the stronger of two outcomes.
func (o Outcome) Or(other Outcome) Outcome {
	if other > o {
		return other
	}
	return o
}
