// Package clock maps wall time to song playback time on an audio sample grid.
package clock

import (
	"time"

	"github.com/faiface/beep"
)

// Clock reports playback time. It starts at -delay and crosses 0 when the
// song starts, advancing in whole samples at the given rate.
type Clock struct {
	rate  beep.SampleRate
	delay time.Duration
	start time.Time
	now   func() time.Time
}

func New(rate beep.SampleRate, delay time.Duration) *Clock {
	return NewWithTime(rate, delay, time.Now)
}

// NewWithTime uses now as the wall clock, for tests and replays.
func NewWithTime(rate beep.SampleRate, delay time.Duration, now func() time.Time) *Clock {
	return &Clock{rate: rate, delay: delay, start: now(), now: now}
}

// Samples played since the clock started, pre-roll included.
func (c *Clock) Samples() int {
	return c.rate.N(c.now().Sub(c.start))
}

func (c *Clock) Position() time.Duration {
	return c.rate.D(c.Samples()) - c.delay
}

func (c *Clock) Rate() beep.SampleRate {
	return c.rate
}
