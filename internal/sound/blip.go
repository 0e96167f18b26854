package sound

import (
	"math"
	"time"
)

// blip is a finite sine tone with a linear attack and release envelope,
// streamed in the beep.Streamer format.
type blip struct {
	freq    float64
	volume  float64
	pos     int
	total   int
	attack  int
	release int
}

func newBlip(freq float64, d time.Duration, volume float64) *blip {
	total := sampleRate.N(d)
	return &blip{
		freq:    freq,
		volume:  volume,
		total:   total,
		attack:  sampleRate.N(time.Millisecond * 5),
		release: total / 2,
	}
}

// Stream fills samples with the tone; it reports false once the blip has
// played out, which removes it from the mixer.
func (b *blip) Stream(samples [][2]float64) (n int, ok bool) {
	if b.pos >= b.total {
		return 0, false
	}
	for i := range samples {
		if b.pos >= b.total {
			return i, true
		}
		v := math.Sin(2 * math.Pi * b.freq * float64(b.pos) / float64(sampleRate)) * b.volume
		v *= b.envelope()
		samples[i][0] = v
		samples[i][1] = v
		b.pos++
	}
	return len(samples), true
}

func (b *blip) envelope() float64 {
	if b.pos < b.attack && b.attack > 0 {
		return float64(b.pos) / float64(b.attack)
	}
	if remaining := b.total - b.pos; remaining < b.release && b.release > 0 {
		return float64(remaining) / float64(b.release)
	}
	return 1
}

// Err implements beep.Streamer; tone generation cannot fail.
func (b *blip) Err() error {
	return nil
}
