package input

import (
	"testing"
	"time"

	"git.lost.host/meutraa/fretwork/internal/game"
)

func frets(pressed ...int) game.Frets {
	var f game.Frets
	for _, i := range pressed {
		f[i] = true
	}
	return f
}

var layoutTests = []struct {
	Vendor Vendor
	Button int
	Fret   int
}{
	{GuitarHero, 0, 2},
	{GuitarHero, 1, 0},
	{GuitarHero, 2, 1},
	{GuitarHero, 3, 3},
	{GuitarHero, 4, 4},
	{RockBand, 0, 3},
	{RockBand, 1, 0},
	{RockBand, 2, 1},
	{RockBand, 3, 2},
	{RockBand, 4, 4},
	{Keyboard, 2, 2},
}

func TestButtonLayouts(t *testing.T) {
	for _, test := range layoutTests {
		var n Normalizer
		n.Process(Event{Type: ButtonDown, Vendor: test.Vendor, ID: test.Button})
		if n.Frets() != frets(test.Fret) {
			t.Errorf("vendor %v button %v pressed %v, expected fret %v", test.Vendor, test.Button, n.Frets(), test.Fret)
		}
		n.Process(Event{Type: ButtonUp, Vendor: test.Vendor, ID: test.Button})
		if n.Frets().Count() != 0 {
			t.Errorf("vendor %v button %v not released", test.Vendor, test.Button)
		}
	}
}

func TestOutOfRangeButtonsAreIgnored(t *testing.T) {
	var n Normalizer
	for _, id := range []int{5, 6, 12, -1} {
		n.Process(Event{Type: ButtonDown, Vendor: GuitarHero, ID: id})
	}
	if n.Frets().Count() != 0 || n.Picked() {
		t.Fatal("out of range button changed state", n.Frets())
	}
}

func TestPickEdges(t *testing.T) {
	tests := []struct {
		Event  Event
		Picked bool
	}{
		{Event{Type: HatMotion, Hat: HatUp}, true},
		{Event{Type: HatMotion, Hat: HatLeft}, true},
		{Event{Type: HatMotion, Hat: Centered}, false},
		{Event{Type: AxisMotion, ID: PickAxis, Value: -32767}, true},
		{Event{Type: AxisMotion, ID: PickAxis, Value: 0}, false},
		{Event{Type: AxisMotion, ID: 2, Value: 1200}, false},
		{Event{Type: ButtonDown, ID: 1}, false},
		{Event{Type: 99, ID: 1}, false},
	}
	for i, test := range tests {
		var n Normalizer
		n.Process(test.Event)
		if n.Picked() != test.Picked {
			t.Errorf("test %v: picked %v, expected %v", i, n.Picked(), test.Picked)
		}
	}
}

func TestPicksCollapse(t *testing.T) {
	q := make(ChanQueue, 8)
	q <- Event{Type: HatMotion, Hat: HatDown}
	q <- Event{Type: AxisMotion, ID: PickAxis, Value: 1}
	q <- Event{Type: ButtonDown, Vendor: RockBand, ID: 0}
	q <- Event{Type: HatMotion, Hat: HatUp}

	var n Normalizer
	n.Drain(q)
	if len(q) != 0 {
		t.Fatal("queue not drained")
	}

	tick := n.Tick(time.Second)
	if !tick.Picked || tick.Time != time.Second || tick.Frets != frets(3) {
		t.Fatal("unexpected tick", tick)
	}
	if n.Tick(time.Second).Picked {
		t.Fatal("pick edge survived consumption")
	}
	if n.Frets() != frets(3) {
		t.Fatal("frets lost on consumption")
	}
}

func TestDrainEmptyQueue(t *testing.T) {
	var n Normalizer
	n.Drain(make(ChanQueue), make(ChanQueue, 1))
	if n.Picked() || n.Frets().Count() != 0 {
		t.Fatal("empty queues changed state")
	}
}

func TestParseVendor(t *testing.T) {
	if v, ok := ParseVendor("rockband"); !ok || v != RockBand {
		t.Fatal("unable to parse rockband")
	}
	if v, ok := ParseVendor("gh"); !ok || v != GuitarHero {
		t.Fatal("unable to parse gh")
	}
	if _, ok := ParseVendor("drums"); ok {
		t.Fatal("parsed an unknown vendor")
	}
}
