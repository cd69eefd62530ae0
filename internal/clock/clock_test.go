package clock

import (
	"testing"
	"time"

	"github.com/faiface/beep"
)

type fakeTime struct {
	t time.Time
}

func (f *fakeTime) Now() time.Time {
	return f.t
}

func TestPosition(t *testing.T) {
	ft := &fakeTime{t: time.Unix(1000, 0)}
	c := NewWithTime(beep.SampleRate(1000), 3*time.Second, ft.Now)

	if p := c.Position(); p != -3*time.Second {
		t.Fatal("unexpected start position", p)
	}

	ft.t = ft.t.Add(2500 * time.Millisecond)
	if p := c.Position(); p != -500*time.Millisecond {
		t.Fatal("unexpected position", p)
	}

	// Positions fall on whole samples
	ft.t = ft.t.Add(1500*time.Millisecond + 400*time.Microsecond)
	if p := c.Position(); p != time.Second {
		t.Fatal("unexpected position", p)
	}
	if c.Samples() != 4000 {
		t.Fatal("unexpected sample count", c.Samples())
	}
}
