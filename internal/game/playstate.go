package game

type PlayState uint8

const (
	Unplayed PlayState = iota
	HitPending
	Consumed
)

func (s PlayState) String() string {
	switch s {
	case Unplayed:
		return "unplayed"
	case HitPending:
		return "hit"
	case Consumed:
		return "consumed"
	}
	return "invalid"
}

// Ledger records the play state of every note that has left Unplayed.
// Notes absent from the ledger are Unplayed.
type Ledger struct {
	states  map[NoteID]PlayState
	pending []NoteID
}

func NewLedger() *Ledger {
	return &Ledger{states: map[NoteID]PlayState{}}
}

func (l *Ledger) State(id NoteID) PlayState {
	return l.states[id]
}

// Hit moves an Unplayed note to HitPending. Any other state is left alone.
func (l *Ledger) Hit(id NoteID) bool {
	if l.states[id] != Unplayed {
		return false
	}
	l.states[id] = HitPending
	l.pending = append(l.pending, id)
	return true
}

// Settle turns every HitPending note into Consumed.
func (l *Ledger) Settle() {
	for _, id := range l.pending {
		l.states[id] = Consumed
	}
	l.pending = l.pending[:0]
}

// Pending lists the notes hit by the latest match.
func (l *Ledger) Pending() []NoteID {
	return append([]NoteID(nil), l.pending...)
}

func (l *Ledger) Len() int {
	return len(l.states)
}

// Copy returns a map of every played note, for comparison and replays.
func (l *Ledger) Copy() map[NoteID]PlayState {
	states := make(map[NoteID]PlayState, len(l.states))
	for id, s := range l.states {
		states[id] = s
	}
	return states
}
