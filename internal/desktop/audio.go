package desktop

import (
	"io"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"carousel/internal/events"
	"carousel/internal/sound"
)

const sfxVolume = 0.5

// Audio plays the procedural cues through oto.
type Audio struct {
	ctx   *oto.Context
	ready chan struct{}

	// variant rotates noise seeds between repeated cues.
	variant atomic.Uint64
	// active caps simultaneous players so a burst of slides does not clip.
	active atomic.Int32
}

const maxVoices = 4

func NewAudio() (*Audio, error) {
	ctx, ready, err := oto.NewContext(sound.SampleRate, sound.ChannelCount, oto.FormatFloat32LE)
	if err != nil {
		return nil, err
	}
	return &Audio{ctx: ctx, ready: ready}, nil
}

// Attach plays a cue for every carousel and theme event on bus.
func (a *Audio) Attach(bus *events.Bus) {
	play := func(e events.Event) {
		cue, gain := sound.CueFor(e)
		a.Play(cue, gain)
	}
	for _, t := range []events.Type{
		events.SlideIn,
		events.SlideOut,
		events.Thrown,
		events.PullInCommitted,
		events.PullInAbandoned,
		events.ThemeChanged,
	} {
		bus.Subscribe(t, play)
	}
}

// Play starts cue in the background. Cues requested before the device is
// ready, or beyond the voice limit, are dropped.
func (a *Audio) Play(cue sound.Cue, gain float64) {
	if a == nil || cue == sound.CueNone || gain <= 0 {
		return
	}
	select {
	case <-a.ready:
	default:
		return
	}
	if a.active.Add(1) > maxVoices {
		a.active.Add(-1)
		return
	}
	samples := sound.Synth(cue, a.variant.Add(1))
	if len(samples) == 0 {
		a.active.Add(-1)
		return
	}
	go func() {
		defer a.active.Add(-1)
		reader := &soundReader{data: samples}
		player := a.ctx.NewPlayer(reader)
		player.SetVolume(sfxVolume * min(gain, 1))
		player.Play()
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		player.Close()
	}()
}

type soundReader struct {
	data []byte
	pos  int
}

func (r *soundReader) Read(p []byte) (int, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	n := copy(p, r.data[r.pos:])
	r.pos += n
	return n, nil
}
