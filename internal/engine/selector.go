package engine

import (
	"git.lost.host/meutraa/fretwork/internal/game"
)

// SelectDifficulty switches to level if the active track has any notes in
// its pitch band. It does nothing once the session is live.
func (s *Session) SelectDifficulty(level game.Level) bool {
	if s.live {
		return false
	}
	return s.difficulty(level)
}

// AutoSelect picks the easiest level with notes on the active track.
func (s *Session) AutoSelect() error {
	for level := game.Level(0); level < game.LevelCount; level++ {
		if s.difficulty(level) {
			return nil
		}
	}
	return ErrNoPlayableLevel
}

// CycleTrack moves to the next track, keeping the level if the new track
// has it.
func (s *Session) CycleTrack() error {
	if s.live {
		return nil
	}
	s.track = (s.track + 1) % len(s.chart.Tracks)
	if !s.difficulty(s.level) {
		return s.AutoSelect()
	}
	return nil
}

func (s *Session) difficulty(level game.Level) bool {
	if !level.Valid() {
		return false
	}
	fail := 0
	for fret := 0; fret < game.FretCount; fret++ {
		if _, ok := s.chart.Sequence(s.track, level.Pitch(fret)); !ok {
			fail++
		}
	}
	if fail == game.FretCount {
		return false
	}
	s.level = level
	return true
}
