package parser

import "git.lost.host/meutraa/fretwork/internal/game"

type Parser interface {
	Parse(file string) (*game.Chart, error)
}
