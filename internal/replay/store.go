package replay

import (
	"git.lost.host/meutraa/fretwork/internal/game"
)

type Store interface {
	Init() error
	Deinit()

	// Save the inputs of a run
	Save(run *Run) error

	// Load every run recorded against a chart
	Load(chart *game.Chart) ([]Run, error)

	// Get a single run by session id
	Get(session string) (*Run, error)
}
