package core

import (
	"time"

	"github.com/google/uuid"
)

// Interaction is one scheduled contact event (meeting, call, meal) in
// the interval [Start, End). The engine treats interactions as
// immutable; editing and persistence belong to the caller
type Interaction struct {
	ID           string
	Start        time.Time
	End          time.Time
	Participants []string // display order, 2+ allowed
	Category     string
	Location     string
}

// NewInteraction allocates an interaction with a fresh unique ID
func NewInteraction(start, end time.Time, participants []string, category, location string) Interaction {
	return Interaction{
		ID:           uuid.NewString(),
		Start:        start,
		End:          end,
		Participants: participants,
		Category:     category,
		Location:     location,
	}
}

// Duration returns End − Start
func (it Interaction) Duration() time.Duration {
	return it.End.Sub(it.Start)
}

// Slot addresses one participant avatar of one interaction. It is the
// unit of selection: an interaction with three participants occupies
// three slots at different angles
type Slot struct {
	InteractionID    string
	ParticipantIndex int
}

// Zero reports whether the slot is unset
func (s Slot) Zero() bool {
	return s.InteractionID == ""
}
