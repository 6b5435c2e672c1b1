package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/monkey-runner/parameter"
)

// bassLine is one bar of the background loop, Hz per beat
var bassLine = []float64{110.00, 110.00, 130.81, 98.00, 110.00, 146.83, 130.81, 98.00}

// backgroundLoop streams the bass line forever, one beat at a time
type backgroundLoop struct {
	rate beep.SampleRate
	beat int
	cur  beep.Streamer
}

func newBackgroundLoop(rate beep.SampleRate) *backgroundLoop {
	return &backgroundLoop{rate: rate}
}

func (l *backgroundLoop) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if l.cur == nil {
			l.cur = l.nextBeat()
		}
		m, ok := l.cur.Stream(samples[n:])
		n += m
		if !ok || m == 0 {
			l.cur = nil
		}
	}
	return n, true
}

func (l *backgroundLoop) Err() error { return nil }

// nextBeat builds a kick plus a bass note, padded to exactly one beat
func (l *backgroundLoop) nextBeat() beep.Streamer {
	freq := bassLine[l.beat%len(bassLine)]
	l.beat++

	beat := l.rate.N(parameter.MusicBeat)
	kick := shaped(WaveSine, 120, 45, parameter.MusicKickLength, time.Millisecond, parameter.MusicKickLength-time.Millisecond, l.rate)

	var bass beep.Streamer
	if tone, err := generators.SineTone(l.rate, freq); err == nil {
		note := parameter.MusicBeat * 3 / 4
		bass = NewEnvelope(beep.Take(l.rate.N(note), tone), note, 20*time.Millisecond, note/2, l.rate)
	} else {
		bass = beep.Silence(0)
	}

	return beep.Take(beat, beep.Seq(
		beep.Mix(newVolume(kick, 0.8), newVolume(bass, 0.5)),
		beep.Silence(-1),
	))
}
