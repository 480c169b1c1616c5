package audio

import (
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(48000)

var speakerOnce sync.Once
var speakerErr error

func initSpeaker() error {
	speakerOnce.Do(func() {
		speakerErr = speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100))
	})
	return speakerErr
}

// Clock is the playback timing source: a looping track whose position
// drives every frame. The track plays muted in this context; it exists to
// keep time, not to be heard.
type Clock interface {
	// Pos returns seconds into the track's loop
	Pos() float64
	// Seek jumps to the given track time
	Seek(sec float64)
	Pause()
	Resume()
	SetMuted(muted bool)
	Close() error
}

// trackClock wraps a decoded track: loop -> ctrl -> analyser -> volume.
// The analyser taps the stream before the volume gate, so the level keeps
// reporting even while muted.
type trackClock struct {
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	volume   *effects.Volume
}

// OpenTrack decodes a WAV file and starts it looping, muted, through the
// shared speaker. The returned analyser reports the stream's live level.
func OpenTrack(path string, analyser *Analyser) (Clock, error) {
	if err := initSpeaker(); err != nil {
		return nil, errors.Wrap(err, "init speaker")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open audio track")
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, errors.Wrap(err, "decode audio track")
	}

	c := &trackClock{
		streamer: streamer,
		format:   format,
	}
	loop, err := beep.Loop2(streamer)
	if err != nil {
		streamer.Close()
		return nil, errors.Wrap(err, "loop audio track")
	}
	c.ctrl = &beep.Ctrl{Streamer: loop}

	var tap beep.Streamer = c.ctrl
	if analyser != nil {
		analyser.source = c.ctrl
		tap = analyser
	}
	c.volume = &effects.Volume{Streamer: tap, Base: 2, Silent: true}

	resampled := beep.Resample(4, format.SampleRate, sampleRate, c.volume)
	speaker.Play(resampled)
	return c, nil
}

func (c *trackClock) Pos() float64 {
	speaker.Lock()
	defer speaker.Unlock()
	return c.format.SampleRate.D(c.streamer.Position()).Seconds()
}

func (c *trackClock) Seek(sec float64) {
	speaker.Lock()
	defer speaker.Unlock()
	n := c.format.SampleRate.N(time.Duration(sec * float64(time.Second)))
	if n < 0 {
		n = 0
	}
	if n >= c.streamer.Len() {
		n = c.streamer.Len() - 1
	}
	// Seek errors leave the position unchanged; the frame loop carries on
	_ = c.streamer.Seek(n)
}

func (c *trackClock) Pause() {
	speaker.Lock()
	c.ctrl.Paused = true
	speaker.Unlock()
}

func (c *trackClock) Resume() {
	speaker.Lock()
	c.ctrl.Paused = false
	speaker.Unlock()
}

func (c *trackClock) SetMuted(muted bool) {
	speaker.Lock()
	c.volume.Silent = muted
	speaker.Unlock()
}

func (c *trackClock) Close() error {
	speaker.Lock()
	c.ctrl.Paused = true
	c.ctrl.Streamer = nil
	speaker.Unlock()
	return c.streamer.Close()
}
