package engine

import (
	"time"

	"git.lost.host/meutraa/fretwork/internal/game"
)

type Stats struct {
	Notes      int // Notes hit
	Chords     int // Successful strums
	Misses     int // Strums that matched nothing
	Streak     int
	BestStreak int
	// Chord counts per judgement, index 0 for plain hits, then game.Judgements
	Judgements []int
}

func (s *Session) hit(notes int, tolerance time.Duration) {
	s.stats.Notes += notes
	s.stats.Chords++
	s.stats.Streak++
	if s.stats.Streak > s.stats.BestStreak {
		s.stats.BestStreak = s.stats.Streak
	}
	s.stats.Judgements[game.Judge(tolerance)+1]++
}

func (s *Session) miss() {
	s.stats.Misses++
	s.stats.Streak = 0
}
