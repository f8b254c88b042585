package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// newVolume scales a streamer by a linear gain. Zero gain is rendered as
// silence since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ChirpGenerator sweeps a sine from one frequency to another with a linear
// fade out. Used for the jump effect.
type ChirpGenerator struct {
	sr       beep.SampleRate
	from, to float64
	total    int
	pos      int
	phase    float64
}

// NewChirpGenerator creates a chirp lasting d.
func NewChirpGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ChirpGenerator {
	return &ChirpGenerator{sr: sr, from: from, to: to, total: sr.N(d)}
}

func (g *ChirpGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		sample := 0.4 * math.Sin(g.phase) * (1 - progress)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChirpGenerator) Err() error {
	return nil
}

// CrashGenerator mixes decaying noise with a falling square tone.
// Used for the collision effect.
type CrashGenerator struct {
	sr    beep.SampleRate
	total int
	pos   int
	phase float64
	rng   *rand.Rand
}

// NewCrashGenerator creates a crash lasting d.
func NewCrashGenerator(sr beep.SampleRate, d time.Duration) *CrashGenerator {
	return &CrashGenerator{sr: sr, total: sr.N(d), rng: rand.New(rand.NewSource(1))}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.total {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.total {
			return i, true
		}
		progress := float64(g.pos) / float64(g.total)
		decay := math.Exp(-4 * progress)

		freq := 220 - 160*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)
		square := 1.0
		if math.Sin(g.phase) < 0 {
			square = -1.0
		}

		noise := g.rng.Float64()*2 - 1
		sample := decay * (0.25*noise + 0.15*square)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}

// AmbienceGenerator is an endless soft pad: two detuned sines under a slow
// tremolo, with a quiet pulse on every beat.
type AmbienceGenerator struct {
	sr   beep.SampleRate
	beat int
	pos  int
}

// NewAmbienceGenerator creates the background loop at the given tempo.
func NewAmbienceGenerator(sr beep.SampleRate, bpm float64) *AmbienceGenerator {
	return &AmbienceGenerator{
		sr:   sr,
		beat: sr.N(time.Duration(float64(time.Minute) / bpm)),
	}
}

func (g *AmbienceGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		tremolo := 0.75 + 0.25*math.Sin(2*math.Pi*0.25*t)
		pad := 0.12*math.Sin(2*math.Pi*110*t) + 0.08*math.Sin(2*math.Pi*165.5*t)

		beatPos := g.pos % g.beat
		pulse := 0.0
		if beatPos < g.sr.N(60*time.Millisecond) {
			env := 1 - float64(beatPos)/float64(g.sr.N(60*time.Millisecond))
			pulse = 0.15 * env * math.Sin(2*math.Pi*55*float64(beatPos)/float64(g.sr))
		}

		sample := pad*tremolo + pulse
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *AmbienceGenerator) Err() error {
	return nil
}
