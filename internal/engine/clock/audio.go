package clock

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Audio derives time from an audio stream: the number of samples the
// speaker has pulled divided by the sample rate. Driving evaluation from
// the same counter the audio hardware drains keeps playback synchronized
// to what is actually audible, independent of frame pacing.
type Audio struct {
	rate beep.SampleRate
	pos  atomic.Int64
}

// NewAudio initializes the speaker for the stream's format and starts
// playing it through the position counter.
func NewAudio(stream beep.Streamer, format beep.Format) (*Audio, error) {
	a := &Audio{rate: format.SampleRate}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("clock: initializing speaker: %w", err)
	}
	speaker.Play(&countingStreamer{inner: stream, pos: &a.pos})

	return a, nil
}

// Now returns seconds of audio streamed so far.
func (a *Audio) Now() float64 {
	return float64(a.pos.Load()) / float64(a.rate)
}

// countingStreamer forwards samples from the wrapped streamer while
// counting how many have been pulled. Stream is called from the speaker
// goroutine, Now from the frame loop, hence the atomic counter.
type countingStreamer struct {
	inner beep.Streamer
	pos   *atomic.Int64
}

func (c *countingStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = c.inner.Stream(samples)
	c.pos.Add(int64(n))
	return n, ok
}

func (c *countingStreamer) Err() error {
	return c.inner.Err()
}
