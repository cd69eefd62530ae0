package game

import (
	"time"
)

type Note struct {
	Begin time.Duration // The time the note should be picked
	End   time.Duration // The time a sustain ends, equal to Begin for plain notes
}

// NoteID is a stable handle for a note, valid for the lifetime of the chart.
type NoteID struct {
	Track int // Index into Chart.Tracks
	Pitch int // NoteMap key, base pitch + fret
	Index int // Position within the NoteSequence
}

func (note Note) Sustained() bool {
	return note.End > note.Begin
}
