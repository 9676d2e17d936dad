package splice

// ExtractionState tracks where a session is relative to the section
// boundaries. Exactly one value exists per session.
type ExtractionState int

// Extraction states. StateCompleted is terminal.
const (
	StateNotStarted ExtractionState = iota
	StateCapturing
	StateCompleted
)

// String returns the lowercase name of the state.
func (s ExtractionState) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateCapturing:
		return "capturing"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// RangeKind identifies which range operation applies to a document.
type RangeKind int

// Range operations emitted by the boundary state machine.
const (
	RangeNone RangeKind = iota
	RangeBetween
	RangeFromStart
	RangeUntilEnd
	RangeWholeDocument
)

// String returns the lowercase name of the range kind.
func (k RangeKind) String() string {
	switch k {
	case RangeNone:
		return "none"
	case RangeBetween:
		return "between"
	case RangeFromStart:
		return "from_start"
	case RangeUntilEnd:
		return "until_end"
	case RangeWholeDocument:
		return "whole_document"
	default:
		return "unknown"
	}
}

// Emits reports whether the range kind contributes a fragment.
func (k RangeKind) Emits() bool {
	return k != RangeNone
}

// Decide is the boundary state machine. Given the incoming state and
// whether the start and end markers were found in the current document,
// it returns the range operation to apply and the next state.
//
// Decide is pure: the per-document decision depends only on its inputs,
// so only the transition itself needs to be serialized across documents.
func Decide(state ExtractionState, startFound, endFound bool) (RangeKind, ExtractionState) {
	switch state {
	case StateNotStarted:
		switch {
		case startFound && endFound:
			return RangeBetween, StateCompleted
		case startFound:
			return RangeFromStart, StateCapturing
		default:
			return RangeNone, StateNotStarted
		}
	case StateCapturing:
		if endFound {
			return RangeUntilEnd, StateCompleted
		}
		return RangeWholeDocument, StateCapturing
	default:
		return RangeNone, state
	}
}
