package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// Waveform selects the oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator is a finite streamer generating a single waveform with a
// linear attack/release envelope.
type oscillator struct {
	wave    Waveform
	freq    float64
	phase   float64
	pos     int
	length  int
	attack  int
	release int
	volume  float64
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.pos >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.pos >= o.length {
			return i, true
		}

		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case WaveSaw:
			v = 2*o.phase - 1
		case WaveNoise:
			v = rand.Float64()*2 - 1
		}

		env := 1.0
		if o.pos < o.attack {
			env = float64(o.pos) / float64(o.attack)
		} else if rem := o.length - o.pos; rem < o.release {
			env = float64(rem) / float64(o.release)
		}

		v *= env * o.volume
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(sampleRate)
		if o.phase >= 1 {
			o.phase -= 1
		}
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// Tone builds a tone streamer with a short envelope to avoid clicks.
func Tone(wave Waveform, freq float64, dur time.Duration, volume float64) beep.Streamer {
	length := sampleRate.N(dur)
	a := sampleRate.N(5 * time.Millisecond)
	r := sampleRate.N(20 * time.Millisecond)
	if a+r > length {
		a = length / 4
		r = length / 4
	}
	return &oscillator{
		wave:    wave,
		freq:    freq,
		length:  length,
		attack:  a,
		release: r,
		volume:  volume,
	}
}

// Chomp is a quick downward two-tone bite.
func Chomp() beep.Streamer {
	return beep.Seq(
		Tone(WaveSquare, 320, 40*time.Millisecond, 0.25),
		Tone(WaveSquare, 180, 60*time.Millisecond, 0.25),
	)
}
