package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveTriangle
	WaveSquare
	WaveSaw
	WaveNoise
)

// segment moves a value to To over a duration, linearly or exponentially.
type segment struct {
	To   float64
	Over time.Duration
	Exp  bool
}

// curve is a value that starts at Start and follows its segments in order,
// holding the last value afterwards.
type curve struct {
	Start float64
	Segs  []segment
}

func constant(v float64) curve {
	return curve{Start: v}
}

func (c curve) at(t time.Duration) float64 {
	from := c.Start
	for _, s := range c.Segs {
		if t < s.Over {
			p := float64(t) / float64(s.Over)
			if s.Exp && from > 0 && s.To > 0 {
				return from * math.Pow(s.To/from, p)
			}
			return from + (s.To-from)*p
		}
		t -= s.Over
		from = s.To
	}
	return from
}

// voice is one oscillator with pitch and gain curves.
type voice struct {
	wave   Wave
	freq   curve
	gain   curve
	length time.Duration
	delay  time.Duration
}

// oscillator streams a voice sample by sample.
type oscillator struct {
	v        voice
	rate     beep.SampleRate
	phase    float64
	position int
	duration int
	rng      *rand.Rand
}

func newOscillator(v voice, rate beep.SampleRate, seed int64) beep.Streamer {
	return &oscillator{
		v:        v,
		rate:     rate,
		duration: rate.N(v.length),
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		t := o.rate.D(o.position)

		var val float64
		switch o.v.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveTriangle:
			val = 1 - 4*math.Abs(o.phase-0.5)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		val *= o.v.gain.at(t)

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.v.freq.at(t) / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// cues are the voices of every sound.
var cues = map[Sound][]voice{
	SoundHover: {{
		wave:   WaveTriangle,
		freq:   curve{400, []segment{{600, 20 * time.Millisecond, true}}},
		gain:   curve{0.05, []segment{{0.001, 40 * time.Millisecond, true}}},
		length: 50 * time.Millisecond,
	}},
	SoundSelect: {{
		wave:   WaveSine,
		freq:   curve{600, []segment{{1200, 100 * time.Millisecond, true}}},
		gain:   curve{0.1, []segment{{0, 150 * time.Millisecond, false}}},
		length: 200 * time.Millisecond,
	}},
	SoundStart: {
		startNote(440, 0),
		startNote(554.37, 50*time.Millisecond),
		startNote(659.25, 100*time.Millisecond),
	},
	SoundPause: {{
		wave:   WaveSine,
		freq:   constant(400),
		gain:   curve{0.1, []segment{{0, 100 * time.Millisecond, false}}},
		length: 150 * time.Millisecond,
	}},
	SoundLifeLost: {{
		wave:   WaveSaw,
		freq:   curve{150, []segment{{100, 200 * time.Millisecond, false}}},
		gain:   curve{0.1, []segment{{0, 200 * time.Millisecond, false}}},
		length: 250 * time.Millisecond,
	}},
	SoundCrash: {{
		wave:   WaveNoise,
		freq:   constant(0),
		gain:   curve{0.2, []segment{{0.001, 400 * time.Millisecond, true}}},
		length: 500 * time.Millisecond,
	}},
	SoundSmash: {{
		wave:   WaveSquare,
		freq:   curve{100, []segment{{20, 100 * time.Millisecond, true}}},
		gain:   curve{0.15, []segment{{0.001, 150 * time.Millisecond, true}}},
		length: 200 * time.Millisecond,
	}},
	SoundCoin: {
		{
			wave:   WaveSine,
			freq:   curve{1200, []segment{{1800, 50 * time.Millisecond, true}}},
			gain:   curve{0.1, []segment{{0.001, 300 * time.Millisecond, true}}},
			length: 350 * time.Millisecond,
		},
		{
			wave:   WaveTriangle,
			freq:   constant(2400),
			gain:   curve{0.05, []segment{{0, 100 * time.Millisecond, false}}},
			length: 100 * time.Millisecond,
		},
	},
}

// startNote is one note of the start arpeggio.
func startNote(freq float64, delay time.Duration) voice {
	return voice{
		wave: WaveSine,
		freq: constant(freq),
		gain: curve{0, []segment{
			{0.1, 50 * time.Millisecond, false},
			{0.001, 450 * time.Millisecond, true},
		}},
		length: 600 * time.Millisecond,
		delay:  delay,
	}
}

// Length returns how long a cue plays, including delayed voices.
func Length(s Sound) time.Duration {
	var longest time.Duration
	for _, v := range cues[s] {
		if d := v.delay + v.length; d > longest {
			longest = d
		}
	}
	return longest
}

// Synthesize builds a finite streamer for a cue. Unknown cues yield nil.
func Synthesize(s Sound, rate beep.SampleRate) beep.Streamer {
	voices, ok := cues[s]
	if !ok {
		return nil
	}

	streams := make([]beep.Streamer, 0, len(voices))
	for i, v := range voices {
		osc := newOscillator(v, rate, int64(s)*16+int64(i))
		if v.delay > 0 {
			osc = beep.Seq(beep.Silence(rate.N(v.delay)), osc)
		}
		streams = append(streams, osc)
	}
	if len(streams) == 1 {
		return streams[0]
	}
	return beep.Mix(streams...)
}

// newVolume applies a relative volume in base-2 steps; 0 leaves it unchanged.
func newVolume(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume, Silent: false}
}
