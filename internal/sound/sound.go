// Package sound synthesises the carousel's short procedural cues as
// interleaved stereo float32 PCM.
package sound

import (
	"math"

	"carousel/internal/events"
)

const (
	SampleRate   = 44100
	ChannelCount = 2
	// FrameBytes is one stereo float32 frame.
	FrameBytes = 8
)

type Cue int

const (
	CueNone Cue = iota
	CueWhoosh
	CueFlick
	CueClick
	CueRetract
	CueChime
)

func (c Cue) String() string {
	switch c {
	case CueWhoosh:
		return "whoosh"
	case CueFlick:
		return "flick"
	case CueClick:
		return "click"
	case CueRetract:
		return "retract"
	case CueChime:
		return "chime"
	}
	return "none"
}

// CueFor maps a bus event to the cue played for it and its gain.
func CueFor(e events.Event) (Cue, float64) {
	switch e.Type {
	case events.SlideIn:
		return CueWhoosh, 0.6
	case events.SlideOut:
		return CueWhoosh, 0.4
	case events.Thrown:
		return CueFlick, 0.9
	case events.PullInCommitted:
		return CueClick, 0.8
	case events.PullInAbandoned:
		return CueRetract, 0.6
	case events.ThemeChanged:
		return CueChime, 0.7
	}
	return CueNone, 0
}

// Synth renders cue. variant picks between noise seeds so repeated cues do
// not sound identical.
func Synth(cue Cue, variant uint64) []byte {
	switch cue {
	case CueWhoosh:
		return genWhoosh(variant)
	case CueFlick:
		return genFlick(variant)
	case CueClick:
		return genClick()
	case CueRetract:
		return genRetract()
	case CueChime:
		return genChime()
	}
	return nil
}

// frames converts seconds to stereo frames.
func frames(seconds float64) int { return int(seconds * SampleRate) }

// putStereoF32 writes a [-1,1] sample as float32 LE to both stereo channels at frame i.
func putStereoF32(buf []byte, i int, sample float64) {
	v := math.Float32bits(float32(sample))
	buf[i*8] = byte(v)
	buf[i*8+1] = byte(v >> 8)
	buf[i*8+2] = byte(v >> 16)
	buf[i*8+3] = byte(v >> 24)
	buf[i*8+4] = byte(v)
	buf[i*8+5] = byte(v >> 8)
	buf[i*8+6] = byte(v >> 16)
	buf[i*8+7] = byte(v >> 24)
}

// softSat applies gentle tanh-like saturation.
func softSat(x float64) float64 {
	if x > 1.0 {
		return 1.0 - 0.5/(x)
	}
	if x < -1.0 {
		return -1.0 + 0.5/(-x)
	}
	return x - x*x*x/3.0
}

// adsr returns an envelope at normalized progress [0,1].
// attack/decay/release are fractions of the total duration.
func adsr(progress, attack, decay, sustain, release float64) float64 {
	switch {
	case progress < attack:
		return progress / attack
	case progress < attack+decay:
		return 1.0 - (progress-attack)/decay*(1.0-sustain)
	case progress < 1.0-release:
		return sustain
	default:
		return sustain * (1.0 - (progress-(1.0-release))/release)
	}
}

// fm returns an FM-synthesized sample.
func fm(t, carrier, modRatio, modIdx float64) float64 {
	mod := math.Sin(2 * math.Pi * carrier * modRatio * t)
	return math.Sin(2*math.Pi*carrier*t + modIdx*mod)
}

// lcg advances an LCG seed and returns a noise sample in [-1,1].
func lcg(seed *uint64) float64 {
	*seed = *seed*6364136223846793005 + 1442695040888963407
	return float64(int64(*seed>>33)-int64(1<<30)) / float64(1<<30)
}

func makeBuf(n int) []byte { return make([]byte, n*FrameBytes) }

// genWhoosh: band-limited noise swelling and fading, cutoff sweeping down.
func genWhoosh(variant uint64) []byte {
	n := frames(0.36)
	buf := makeBuf(n)
	seed := variant*0x9E3779B97F4A7C15 + 1
	lp := 0.0
	for i := 0; i < n; i++ {
		p := float64(i) / float64(n)
		env := math.Sin(math.Pi * p)
		env *= env
		// One-pole lowpass, opening early and closing toward the tail.
		alpha := 0.04 + 0.22*(1-p)
		lp += alpha * (lcg(&seed) - lp)
		putStereoF32(buf, i, softSat(lp*env*1.6))
	}
	return buf
}

// genFlick: short noise snap followed by a falling tone.
func genFlick(variant uint64) []byte {
	n := frames(0.18)
	buf := makeBuf(n)
	seed := variant*0xBF58476D1CE4E5B9 + 7
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		snap := lcg(&seed) * math.Exp(-p*30) * 0.5
		freq := 900 - 600*p
		tone := fm(t, freq, 2.0, 1.2) * adsr(p, 0.02, 0.4, 0.2, 0.3) * 0.35
		putStereoF32(buf, i, softSat(snap+tone))
	}
	return buf
}

// genClick: crisp click + brief high tone.
func genClick() []byte {
	n := frames(0.065)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		env := adsr(p, 0.004, 0.55, 0.0, 0.1)
		freq := 1400 - 700*p
		s := fm(t, freq, 1.0, 0.6) * env * 0.38
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}

// genRetract: soft rising-then-falling blip for a card that slips back.
func genRetract() []byte {
	n := frames(0.22)
	buf := makeBuf(n)
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		freq := 520 + 180*math.Sin(math.Pi*p) - 260*p
		env := adsr(p, 0.05, 0.3, 0.4, 0.35)
		putStereoF32(buf, i, softSat(fm(t, freq, 0.5, 0.8)*env*0.3))
	}
	return buf
}

// genChime: two-note FM bell.
func genChime() []byte {
	n := frames(0.5)
	buf := makeBuf(n)
	split := n / 3
	for i := 0; i < n; i++ {
		t := float64(i) / SampleRate
		p := float64(i) / float64(n)
		s := fm(t, 880, 3.5, 2.0*math.Exp(-p*6)) * math.Exp(-p*5) * 0.25
		if i >= split {
			t2 := float64(i-split) / SampleRate
			p2 := float64(i-split) / float64(n-split)
			s += fm(t2, 1318.5, 3.5, 2.0*math.Exp(-p2*6)) * math.Exp(-p2*5) * 0.22
		}
		putStereoF32(buf, i, softSat(s))
	}
	return buf
}
