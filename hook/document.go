package hook

import (
	"fmt"
	"strings"
)

// HookDocument is the full declarative description of one animated hook:
// identity, physics spec, beat grid, lyric lines, audio reference and palette.
// Immutable once loaded; owned by one engine for the playback session.
type HookDocument struct {
	ArtistSlug string `json:"artist_slug"`
	SongSlug   string `json:"song_slug"`
	HookSlug   string `json:"hook_slug"`
	SongName   string `json:"song_name"`

	Physics  PhysicsSpec `json:"physics_spec"`
	BeatGrid BeatGrid    `json:"beat_grid"`

	HookStart float64 `json:"hook_start"`
	HookEnd   float64 `json:"hook_end"`

	Lines []LyricLine `json:"lines"`

	AudioRef string `json:"audio_ref"`

	// Palette is primary, secondary, accent as hex strings
	Palette [3]string `json:"palette"`

	// TypographyOverride, when set, replaces the physics spec typography for
	// this hook only
	TypographyOverride *Typography `json:"typography_override,omitempty"`
}

// PhysicsSpec drives deterministic motion: the seed, the ordered effect pool,
// typography and the particle field configuration
type PhysicsSpec struct {
	LogicSeed  int            `json:"logic_seed"`
	EffectPool []string       `json:"effect_pool"`
	System     string         `json:"system"` // "linear" or "orbital"
	Typography Typography     `json:"typography"`
	Particles  ParticleConfig `json:"particles"`
}

// Typography is the declarative type profile for lyric text
type Typography struct {
	BaseSize int  `json:"base_size"`
	Bold     bool `json:"bold"`
}

// ParticleConfig shapes the background particle field
type ParticleConfig struct {
	Count  int     `json:"count"`
	Glyphs string  `json:"glyphs"`
	Speed  float64 `json:"speed"`
}

// BeatGrid is tempo plus ordered beat timestamps with a confidence score
type BeatGrid struct {
	BPM        float64   `json:"bpm"`
	Beats      []float64 `json:"beats"`
	Confidence float64   `json:"confidence"`
}

// LyricLine is one line of the hook with its time window and optional
// per-word sub-timings
type LyricLine struct {
	Text  string       `json:"text"`
	Start float64      `json:"start"`
	End   float64      `json:"end"`
	Words []WordTiming `json:"words,omitempty"`
}

// WordTiming is one word's text and time window inside its line.
// End may be zero, meaning "until the next word starts".
type WordTiming struct {
	Text  string  `json:"text"`
	Start float64 `json:"start"`
	End   float64 `json:"end,omitempty"`
}

// SimKey returns the stable key seeding the simulator: song name plus hook
// start to 3-decimal precision
func (d *HookDocument) SimKey() string {
	return fmt.Sprintf("%s|%.3f", d.SongName, d.HookStart)
}

// Duration returns the hook window length in seconds
func (d *HookDocument) Duration() float64 {
	return d.HookEnd - d.HookStart
}

// LineAt returns the active line and its index at playback time t, or nil
// when no line's window contains t
func (d *HookDocument) LineAt(t float64) (*LyricLine, int) {
	for i := range d.Lines {
		ln := &d.Lines[i]
		if t >= ln.Start && t < ln.End {
			return ln, i
		}
	}
	return nil, -1
}

// IsFinalLine reports whether index addresses the hook's last line
func (d *HookDocument) IsFinalLine(index int) bool {
	return len(d.Lines) > 0 && index == len(d.Lines)-1
}

// Identity keys the frame-to-frame smoothing history: switching lines must
// reset smoothing rather than slide from stale positions
func (l *LyricLine) Identity() string {
	return fmt.Sprintf("%s|%.3f|%.3f", l.Text, l.Start, l.End)
}

// TimedWords returns the line's word timings, synthesizing them by dividing
// the line window evenly across tokens when explicit timings are absent
func (l *LyricLine) TimedWords() []WordTiming {
	if len(l.Words) > 0 {
		return l.Words
	}
	tokens := strings.Fields(l.Text)
	if len(tokens) == 0 {
		return nil
	}
	span := (l.End - l.Start) / float64(len(tokens))
	words := make([]WordTiming, len(tokens))
	for i, tok := range tokens {
		words[i] = WordTiming{
			Text:  tok,
			Start: l.Start + float64(i)*span,
			End:   l.Start + float64(i+1)*span,
		}
	}
	return words
}

// ActiveWordIndex returns the index of the word whose window contains t,
// clamped to the last word once the line is past its final word start
func (l *LyricLine) ActiveWordIndex(t float64) int {
	words := l.TimedWords()
	if len(words) == 0 {
		return 0
	}
	active := 0
	for i, w := range words {
		if t >= w.Start {
			active = i
		}
	}
	return active
}
