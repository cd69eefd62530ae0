// Package replay records the strums of a run and plays them back against a
// fresh session. Only inputs are stored, scores are always recomputed.
package replay

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"time"

	"git.lost.host/meutraa/fretwork/internal/engine"
	"git.lost.host/meutraa/fretwork/internal/game"
	"github.com/google/uuid"
)

var ErrChartMismatch = errors.New("run was recorded against a different chart")

type Run struct {
	Session string
	Sum     string
	Ticks   []engine.Tick
}

// Recorder keeps the picked ticks of a run. Ticks without a pick do not
// change a session apart from going live, which the next pick repeats.
type Recorder struct {
	session string
	sum     string
	ticks   []engine.Tick
}

func NewRecorder(chart *game.Chart) *Recorder {
	return &Recorder{session: uuid.New().String(), sum: Sum(chart)}
}

func (r *Recorder) Session() string {
	return r.session
}

func (r *Recorder) Record(tick engine.Tick) {
	if tick.Picked {
		r.ticks = append(r.ticks, tick)
	}
}

func (r *Recorder) Run() *Run {
	return &Run{
		Session: r.session,
		Sum:     r.sum,
		Ticks:   append([]engine.Tick(nil), r.ticks...),
	}
}

// Sum identifies a chart by its content.
func Sum(chart *game.Chart) string {
	data, err := json.Marshal(chart)
	if nil != err {
		return ""
	}
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

type Result struct {
	Score  int
	States map[game.NoteID]game.PlayState
	Stats  engine.Stats
}

// Replay applies the ticks of a run to a new session on chart.
func Replay(chart *game.Chart, run *Run) (*Result, error) {
	if run.Sum != Sum(chart) {
		return nil, ErrChartMismatch
	}
	s, err := engine.New(chart)
	if nil != err {
		return nil, err
	}
	for _, tick := range run.Ticks {
		if err := s.Update(tick); nil != err {
			return nil, err
		}
	}
	return &Result{Score: s.Score(), States: s.PlayStates(), Stats: s.Stats()}, nil
}

type compactTick struct {
	Time  int64 `json:"t"` // Nanoseconds
	Frets uint8 `json:"f"`
}

func compactTicks(ticks []engine.Tick) []compactTick {
	compact := make([]compactTick, 0, len(ticks))
	for _, tick := range ticks {
		if !tick.Picked {
			continue
		}
		compact = append(compact, compactTick{
			Time:  tick.Time.Nanoseconds(),
			Frets: tick.Frets.Mask(),
		})
	}
	return compact
}

func uncompactTicks(compact []compactTick) []engine.Tick {
	ticks := make([]engine.Tick, 0, len(compact))
	for _, c := range compact {
		ticks = append(ticks, engine.Tick{
			Time:   time.Duration(c.Time),
			Frets:  game.FretsFromMask(c.Frets),
			Picked: true,
		})
	}
	return ticks
}
