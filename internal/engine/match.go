package engine

import (
	"time"

	"git.lost.host/meutraa/fretwork/internal/game"
)

type candidate struct {
	id       game.NoteID
	begin    time.Duration
	distance time.Duration
	ok       bool
}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}

// nearest finds the unplayed note on a fret closest to at. The window
// starts at Tolerance and shrinks to the best distance found, so a later
// note has to be strictly closer to win and ties go to the earlier note.
func (s *Session) nearest(fret int, at time.Duration) candidate {
	pitch := s.level.Pitch(fret)
	seq, ok := s.chart.Sequence(s.track, pitch)
	if !ok {
		return candidate{}
	}

	best := candidate{distance: Tolerance}
	for i := seq.From(at - Tolerance); i < len(seq); i++ {
		note := seq[i]
		if note.Begin > at+Tolerance {
			break
		}
		id := game.NoteID{Track: s.track, Pitch: pitch, Index: i}
		if s.ledger.State(id) != game.Unplayed {
			continue
		}
		d := abs(note.Begin - at)
		if d < best.distance || (!best.ok && d == best.distance) {
			best = candidate{id: id, begin: note.Begin, distance: d, ok: true}
		}
	}
	return best
}

// match scores a strum at time at. Either the whole chord is hit or
// nothing changes.
func (s *Session) match(at time.Duration, pressed game.Frets) {
	var found [game.FretCount]candidate
	var begin time.Duration
	matched := false
	for fret := 0; fret < game.FretCount; fret++ {
		c := s.nearest(fret, at)
		found[fret] = c
		if c.ok && (!matched || c.begin < begin) {
			begin = c.begin
			matched = true
		}
	}
	if !matched {
		s.miss()
		return
	}

	var need game.Frets
	count := 0
	tolerance := Tolerance
	for fret, c := range found {
		if !c.ok || c.begin != begin {
			continue
		}
		need[fret] = true
		count++
		if c.distance < tolerance {
			tolerance = c.distance
		}
	}

	// A single note lets the frets below it rest pressed
	shadowed := count == 1
	for fret := 0; fret < game.FretCount; fret++ {
		if need[fret] && !pressed[fret] {
			s.miss()
			return
		}
		if need[fret] {
			shadowed = false
		}
		if !shadowed && pressed[fret] && !need[fret] {
			s.miss()
			return
		}
	}

	points := game.Points(tolerance)
	for fret, c := range found {
		if !need[fret] {
			continue
		}
		s.ledger.Hit(c.id)
		s.score += points
	}
	s.hit(count, tolerance)
}
