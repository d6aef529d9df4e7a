package core

// SelectionPhase is the discriminant of the selection state machine
type SelectionPhase int

const (
	// SelectionNone: no avatar near north
	SelectionNone SelectionPhase = iota

	// SelectionCandidate: an avatar is nearest north and within the
	// lock threshold, accumulating dwell time
	SelectionCandidate

	// SelectionLocked: the candidate dwelled long enough and the dial
	// snapped it to north
	SelectionLocked
)

func (p SelectionPhase) String() string {
	switch p {
	case SelectionCandidate:
		return "candidate"
	case SelectionLocked:
		return "locked"
	default:
		return "none"
	}
}

// SelectionView is the read-only selection snapshot exposed to callers
type SelectionView struct {
	Phase SelectionPhase
	Slot  Slot    // valid when Phase != SelectionNone
	Dwell float64 // seconds the candidate has been held, 0 when locked
}
