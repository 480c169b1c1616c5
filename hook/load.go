package hook

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/pkg/errors"
)

// Load reads and validates a hook document from a JSON file
func Load(path string) (*HookDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read hook document")
	}
	return Decode(data)
}

// Decode parses a hook document from JSON and validates it
func Decode(data []byte) (*HookDocument, error) {
	var doc HookDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "decode hook document")
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Validate checks structural invariants and normalizes what it can.
// An empty beat grid is tolerated (beat modifiers stay at rest); overlapping
// or unordered lines are not.
func (d *HookDocument) Validate() error {
	if d.HookEnd < d.HookStart {
		return errors.Errorf("hook window inverted: [%f, %f)", d.HookStart, d.HookEnd)
	}

	// Lines must be ordered and non-overlapping
	if !sort.SliceIsSorted(d.Lines, func(i, j int) bool {
		return d.Lines[i].Start < d.Lines[j].Start
	}) {
		return errors.New("lyric lines out of order")
	}
	for i := 1; i < len(d.Lines); i++ {
		if d.Lines[i].Start < d.Lines[i-1].End {
			return errors.Errorf("lyric lines %d and %d overlap", i-1, i)
		}
	}
	for i := range d.Lines {
		if d.Lines[i].End < d.Lines[i].Start {
			return errors.Errorf("lyric line %d window inverted", i)
		}
	}

	// Beat timestamps must be non-decreasing when present
	beats := d.BeatGrid.Beats
	for i := 1; i < len(beats); i++ {
		if beats[i] < beats[i-1] {
			return errors.Errorf("beat grid out of order at index %d", i)
		}
	}

	return nil
}
