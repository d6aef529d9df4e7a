// Package schedule loads interaction lists from YAML files. It is the
// demo-side data feed: the engine only consumes the resulting records
// and never touches storage itself.
package schedule

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/timewheel/core"
)

// File is the on-disk schedule document
type File struct {
	Date    string  `yaml:"date"` // 2006-01-02, the day the entries belong to
	Entries []Entry `yaml:"interactions"`
}

// Entry is one interaction as written in the file. Times are local
// clock times on the file's date; End may land on the next day by
// being earlier than Start
type Entry struct {
	ID           string   `yaml:"id,omitempty"`
	Start        string   `yaml:"start"` // 15:04
	End          string   `yaml:"end"`
	Participants []string `yaml:"participants"`
	Category     string   `yaml:"category,omitempty"`
	Location     string   `yaml:"location,omitempty"`
}

// Load reads a schedule file and returns interactions sorted by start
// time. Entries without an ID get a fresh UUID
func Load(path string) ([]core.Interaction, time.Time, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("read schedule: %w", err)
	}
	return Parse(data)
}

// Parse decodes a schedule document
func Parse(data []byte) ([]core.Interaction, time.Time, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, time.Time{}, fmt.Errorf("parse schedule: %w", err)
	}

	day, err := time.ParseInLocation("2006-01-02", f.Date, time.Local)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("schedule date %q: %w", f.Date, err)
	}

	items := make([]core.Interaction, 0, len(f.Entries))
	for i, en := range f.Entries {
		it, err := en.interaction(day)
		if err != nil {
			return nil, time.Time{}, fmt.Errorf("entry %d: %w", i, err)
		}
		items = append(items, it)
	}

	sort.Slice(items, func(a, b int) bool {
		return items[a].Start.Before(items[b].Start)
	})
	return items, day, nil
}

func (en Entry) interaction(day time.Time) (core.Interaction, error) {
	start, err := clockTime(day, en.Start)
	if err != nil {
		return core.Interaction{}, fmt.Errorf("start: %w", err)
	}
	end, err := clockTime(day, en.End)
	if err != nil {
		return core.Interaction{}, fmt.Errorf("end: %w", err)
	}
	if !end.After(start) {
		end = end.AddDate(0, 0, 1) // crosses midnight
	}
	if len(en.Participants) == 0 {
		return core.Interaction{}, fmt.Errorf("no participants")
	}

	id := en.ID
	if id == "" {
		id = uuid.NewString()
	}
	return core.Interaction{
		ID:           id,
		Start:        start,
		End:          end,
		Participants: en.Participants,
		Category:     en.Category,
		Location:     en.Location,
	}, nil
}

func clockTime(day time.Time, s string) (time.Time, error) {
	t, err := time.ParseInLocation("15:04", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad clock time %q: %w", s, err)
	}
	return day.Add(time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute), nil
}
