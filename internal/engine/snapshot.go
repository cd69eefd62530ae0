package engine

import (
	"time"

	"git.lost.host/meutraa/fretwork/internal/game"
)

type NoteView struct {
	ID    game.NoteID
	Begin time.Duration
	End   time.Duration
	State game.PlayState
}

// Snapshot is a copy of the session at one time, safe to hand to a
// renderer on another goroutine.
type Snapshot struct {
	Time      time.Duration
	PreRoll   bool
	Track     int
	TrackName string
	Level     game.Level
	Score     int
	Frets     game.Frets
	Lanes     [game.FretCount][]NoteView
	Beats     []time.Duration
}

// Snapshot collects the notes that end no earlier than past before at and
// begin no later than future after it.
func (s *Session) Snapshot(at, past, future time.Duration) Snapshot {
	snap := Snapshot{
		Time:      at,
		PreRoll:   !s.live,
		Track:     s.track,
		TrackName: s.chart.Tracks[s.track].Name,
		Level:     s.level,
		Score:     s.score,
		Frets:     s.frets,
		Beats:     append([]time.Duration(nil), s.chart.BeatsBetween(at-past, at+future)...),
	}
	for fret := 0; fret < game.FretCount; fret++ {
		pitch := s.level.Pitch(fret)
		seq, ok := s.chart.Sequence(s.track, pitch)
		if !ok {
			continue
		}
		for i, note := range seq {
			if note.End < at-past {
				continue
			}
			if note.Begin > at+future {
				break
			}
			id := game.NoteID{Track: s.track, Pitch: pitch, Index: i}
			snap.Lanes[fret] = append(snap.Lanes[fret], NoteView{
				ID:    id,
				Begin: note.Begin,
				End:   note.End,
				State: s.ledger.State(id),
			})
		}
	}
	return snap
}
