// Package engine is the guitar mode game state: track and difficulty
// selection during the pre-roll, and strum matching with scoring once live.
//
// A Session is owned by a single thread of control. Update advances it one
// tick, Snapshot copies out everything a renderer needs.
package engine

import (
	"errors"
	"time"

	"git.lost.host/meutraa/fretwork/internal/game"
)

var (
	ErrNoTracks        = errors.New("no tracks")
	ErrNoPlayableLevel = errors.New("no difficulty levels found")
)

const (
	// PreRollCutoff is the playback time at which selection freezes and
	// scoring starts.
	PreRollCutoff = -500 * time.Millisecond

	// Tolerance is the widest distance between a strum and a note.
	Tolerance = 200 * time.Millisecond

	// CycleFret changes track when strummed during the pre-roll.
	CycleFret = 4
)

// Tick is the input for a single frame. Picked is the pick edge, true for at
// most one tick per strum.
type Tick struct {
	Time   time.Duration
	Frets  game.Frets
	Picked bool
}

type Session struct {
	chart  *game.Chart
	track  int
	level  game.Level
	ledger *game.Ledger
	score  int
	live   bool
	frets  game.Frets
	stats  Stats
}

// New starts a session on the first track at the easiest playable level.
func New(chart *game.Chart) (*Session, error) {
	if nil == chart || len(chart.Tracks) == 0 {
		return nil, ErrNoTracks
	}
	s := &Session{
		chart:  chart,
		ledger: game.NewLedger(),
		stats:  Stats{Judgements: make([]int, len(game.Judgements)+1)},
	}
	if err := s.AutoSelect(); nil != err {
		return nil, err
	}
	return s, nil
}

// Update applies one tick. The only error is ErrNoPlayableLevel, raised when
// cycling to a track that has no notes at any level.
func (s *Session) Update(tick Tick) error {
	s.frets = tick.Frets
	if tick.Time >= PreRollCutoff {
		s.live = true
	}

	// Holding frets never scores, a strum is required
	if !tick.Picked {
		return nil
	}

	if !s.live {
		return s.preRoll(tick.Frets)
	}

	s.ledger.Settle()
	s.match(tick.Time, tick.Frets)
	return nil
}

func (s *Session) preRoll(frets game.Frets) error {
	if frets[CycleFret] {
		if err := s.CycleTrack(); nil != err {
			return err
		}
	}
	for fret := 0; fret < int(game.LevelCount); fret++ {
		if frets[fret] {
			s.SelectDifficulty(game.Level(fret))
			break
		}
	}
	return nil
}

func (s *Session) Live() bool {
	return s.live
}

func (s *Session) Score() int {
	return s.score
}

func (s *Session) Track() int {
	return s.track
}

func (s *Session) Level() game.Level {
	return s.level
}

func (s *Session) State(id game.NoteID) game.PlayState {
	return s.ledger.State(id)
}

// PlayStates copies the ledger.
func (s *Session) PlayStates() map[game.NoteID]game.PlayState {
	return s.ledger.Copy()
}

func (s *Session) Stats() Stats {
	st := s.stats
	st.Judgements = append([]int(nil), s.stats.Judgements...)
	return st
}
