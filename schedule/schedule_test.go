package schedule

import (
	"testing"
	"time"
)

const sampleDoc = `
date: 2026-03-10
interactions:
  - id: standup
    start: "09:15"
    end: "09:30"
    participants: [Ada, Grace]
    category: meeting
    location: Room 4
  - start: "07:00"
    end: "07:45"
    participants: [Linus]
    category: call
  - start: "23:30"
    end: "00:15"
    participants: [Ken, Dennis]
    category: meal
`

func TestParseSortsAndFillsIDs(t *testing.T) {
	items, day, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if want := time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local); !day.Equal(want) {
		t.Errorf("day %v, want %v", day, want)
	}
	if len(items) != 3 {
		t.Fatalf("got %d interactions, want 3", len(items))
	}

	// Sorted by start: 07:00, 09:15, 23:30
	if items[0].Category != "call" || items[1].ID != "standup" {
		t.Errorf("unexpected order: %v, %v", items[0].Category, items[1].ID)
	}
	for i, it := range items {
		if it.ID == "" {
			t.Errorf("interaction %d has no ID", i)
		}
	}
}

func TestMidnightCrossingEnd(t *testing.T) {
	items, day, err := Parse([]byte(sampleDoc))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	late := items[2]
	if late.Category != "meal" {
		t.Fatalf("expected the 23:30 meal last, got %v", late.Category)
	}
	if !late.End.After(late.Start) {
		t.Errorf("end %v not after start %v", late.End, late.Start)
	}
	if want := day.AddDate(0, 0, 1).Add(15 * time.Minute); !late.End.Equal(want) {
		t.Errorf("end %v, want %v on the next day", late.End, want)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"bad date", "date: 10-03-2026\ninteractions: []\n"},
		{"bad clock", "date: 2026-03-10\ninteractions:\n  - start: \"25:00\"\n    end: \"09:00\"\n    participants: [a]\n"},
		{"no participants", "date: 2026-03-10\ninteractions:\n  - start: \"09:00\"\n    end: \"10:00\"\n    participants: []\n"},
		{"not yaml", ": ["},
	}
	for _, c := range cases {
		if _, _, err := Parse([]byte(c.doc)); err == nil {
			t.Errorf("%s: accepted", c.name)
		}
	}
}
