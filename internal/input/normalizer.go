package input

import (
	"time"

	"git.lost.host/meutraa/fretwork/internal/engine"
	"git.lost.host/meutraa/fretwork/internal/game"
)

// PickAxis is the strum bar axis of Guitar Hero controllers.
const PickAxis = 5

// Device button to fret slot
var layouts = map[Vendor][game.FretCount]int{
	GuitarHero: {2, 0, 1, 3, 4},
	RockBand:   {3, 0, 1, 2, 4},
	Keyboard:   {0, 1, 2, 3, 4},
}

// Normalizer turns raw events into pressed frets and a pick edge.
type Normalizer struct {
	frets  game.Frets
	picked bool
}

func (n *Normalizer) Process(ev Event) {
	switch ev.Type {
	case HatMotion:
		// Rock Band strum
		if ev.Hat != Centered {
			n.picked = true
		}
	case AxisMotion:
		// Guitar Hero strum
		if ev.ID == PickAxis && ev.Value != 0 {
			n.picked = true
		}
	case ButtonDown, ButtonUp:
		if ev.ID < 0 || ev.ID >= game.FretCount {
			return
		}
		layout, ok := layouts[ev.Vendor]
		if !ok {
			layout = layouts[GuitarHero]
		}
		n.frets[layout[ev.ID]] = ev.Type == ButtonDown
	}
}

// Drain processes every queued event of every queue.
func (n *Normalizer) Drain(queues ...Queue) {
	for _, q := range queues {
		for ev, ok := q.TryPoll(); ok; ev, ok = q.TryPoll() {
			n.Process(ev)
		}
	}
}

func (n *Normalizer) Frets() game.Frets {
	return n.frets
}

// Picked reports the pick edge without consuming it.
func (n *Normalizer) Picked() bool {
	return n.picked
}

// ConsumePick returns and clears the pick edge.
func (n *Normalizer) ConsumePick() bool {
	picked := n.picked
	n.picked = false
	return picked
}

// Tick consumes the pick edge into an engine tick at playback time t.
func (n *Normalizer) Tick(t time.Duration) engine.Tick {
	return engine.Tick{Time: t, Frets: n.frets, Picked: n.ConsumePick()}
}
