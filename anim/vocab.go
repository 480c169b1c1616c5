package anim

// LineMod is a line-wide visual modifier, one of a small closed set chosen
// by the document's declared style
type LineMod int

const (
	ModNone LineMod = iota
	ModPulseSlow
	ModPulseStrong
	ModShimmerFast
	ModWaveDistort
	ModStaticGlitch
	ModHeatSpike
	ModBlurOut
	ModFadeOutFast
)

// lineModKeys maps the manifest's effect identifiers onto the vocabulary.
// Unknown identifiers resolve to ModNone rather than failing the document.
var lineModKeys = map[string]LineMod{
	"pulse-slow":    ModPulseSlow,
	"pulse-strong":  ModPulseStrong,
	"shimmer-fast":  ModShimmerFast,
	"wave-distort":  ModWaveDistort,
	"static-glitch": ModStaticGlitch,
	"heat-spike":    ModHeatSpike,
	"blur-out":      ModBlurOut,
	"fade-out-fast": ModFadeOutFast,
}

// ParseLineMod resolves an effect pool identifier
func ParseLineMod(key string) LineMod {
	return lineModKeys[key]
}

func (m LineMod) String() string {
	switch m {
	case ModPulseSlow:
		return "pulse-slow"
	case ModPulseStrong:
		return "pulse-strong"
	case ModShimmerFast:
		return "shimmer-fast"
	case ModWaveDistort:
		return "wave-distort"
	case ModStaticGlitch:
		return "static-glitch"
	case ModHeatSpike:
		return "heat-spike"
	case ModBlurOut:
		return "blur-out"
	case ModFadeOutFast:
		return "fade-out-fast"
	default:
		return "none"
	}
}

// Entrance is how a line's words arrive
type Entrance int

const (
	EntranceFade Entrance = iota // plain alpha ramp fallback
	EntranceMaterialize
	EntranceSlam
	EntranceRise
	EntranceFracture
	EntranceCut
)

// Exit is how a line's words leave
type Exit int

const (
	ExitFade Exit = iota // plain fade fallback
	ExitDissolveUp
	ExitShatter
	ExitDrop
	ExitBurnOut
	ExitSnapOff
)

// Mark is a discrete per-word visual accent
type Mark int

const (
	MarkShatter Mark = iota
	MarkGlow
	MarkFade
	MarkPulse
	MarkShimmer
	MarkGlitch
)

func (m Mark) String() string {
	switch m {
	case MarkShatter:
		return "SHATTER"
	case MarkGlow:
		return "GLOW"
	case MarkFade:
		return "FADE"
	case MarkPulse:
		return "PULSE"
	case MarkShimmer:
		return "SHIMMER"
	case MarkGlitch:
		return "GLITCH"
	default:
		return "UNKNOWN"
	}
}

// entrances and exits list the non-fallback vocabulary for seeded selection
var entrances = []Entrance{EntranceMaterialize, EntranceSlam, EntranceRise, EntranceFracture, EntranceCut}
var exits = []Exit{ExitDissolveUp, ExitShatter, ExitDrop, ExitBurnOut, ExitSnapOff}
var marks = []Mark{MarkShatter, MarkGlow, MarkFade, MarkPulse, MarkShimmer, MarkGlitch}
