package input

type EventType uint8

const (
	HatMotion EventType = iota + 1
	AxisMotion
	ButtonDown
	ButtonUp
)

// Vendor selects the button layout of the device an event came from.
type Vendor uint8

const (
	GuitarHero Vendor = iota
	RockBand
	Keyboard
)

func ParseVendor(name string) (Vendor, bool) {
	switch name {
	case "guitarhero", "gh":
		return GuitarHero, true
	case "rockband", "rb":
		return RockBand, true
	case "keyboard":
		return Keyboard, true
	}
	return GuitarHero, false
}

type HatDirection uint8

const (
	Centered HatDirection = iota
	HatUp
	HatDown
	HatLeft
	HatRight
)

// Event is a raw device event. ID is the button, axis or hat number.
type Event struct {
	Type   EventType
	Vendor Vendor
	ID     int
	Value  int          // Axis position
	Hat    HatDirection // Hat position
}

// Queue is polled without blocking, ok is false once it is empty.
type Queue interface {
	TryPoll() (ev Event, ok bool)
}

type ChanQueue chan Event

func (q ChanQueue) TryPoll() (Event, bool) {
	select {
	case ev, ok := <-q:
		return ev, ok
	default:
		return Event{}, false
	}
}
