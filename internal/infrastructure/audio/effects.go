package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Sound timings
const (
	kickDuration = 90 * time.Millisecond
	kickAttack   = 2 * time.Millisecond
	kickRelease  = 70 * time.Millisecond

	whistleShort   = 250 * time.Millisecond
	whistleLong    = 700 * time.Millisecond
	whistleAttack  = 10 * time.Millisecond
	whistleRelease = 60 * time.Millisecond
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer     beep.Streamer
	position     int
	attack       int
	release      int
	releaseStart int
	total        int
}

// NewEnvelope shapes s over duration with the given attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	start := total - rel
	if start < att {
		start = att
	}

	return &envelope{
		streamer:     s,
		attack:       att,
		release:      rel,
		releaseStart: start,
		total:        total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.position >= e.releaseStart && e.release > 0 {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear gain. Zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateKickSound is a short thump with a noise click on top.
// strength in [0, 1] scales loudness and pitch.
func CreateKickSound(rate beep.SampleRate, volume, strength float64) beep.Streamer {
	strength = math.Max(0.2, math.Min(1, strength))

	thump := NewOscillator(70+60*strength, kickDuration, WaveSine, rate)
	click := NewOscillator(0, kickDuration/3, WaveNoise, rate)

	mixed := beep.Mix(
		newVolume(NewEnvelope(thump, kickDuration, kickAttack, kickRelease, rate), 0.8),
		newVolume(NewEnvelope(click, kickDuration/3, kickAttack, kickDuration/4, rate), 0.25),
	)
	return newVolume(mixed, volume*strength)
}

// CreateWhistleSound is the referee's whistle, a square tone with a second
// slightly detuned voice for the trill
func CreateWhistleSound(rate beep.SampleRate, volume float64, long bool) beep.Streamer {
	d := whistleShort
	if long {
		d = whistleLong
	}

	mixed := beep.Mix(
		newVolume(NewEnvelope(NewOscillator(2900, d, WaveSquare, rate), d, whistleAttack, whistleRelease, rate), 0.5),
		newVolume(NewEnvelope(NewOscillator(3050, d, WaveSine, rate), d, whistleAttack, whistleRelease, rate), 0.3),
	)
	return newVolume(mixed, volume*0.5)
}
