package parser

import (
	"git.lost.host/meutraa/fretwork/internal/game"
	"golang.org/x/exp/slices"
)

// sortNotes orders by begin time. Only the unterminated notes appended last
// can be out of order.
func sortNotes(seq game.NoteSequence) game.NoteSequence {
	slices.SortStableFunc(seq, func(a, b game.Note) int {
		switch {
		case a.Begin < b.Begin:
			return -1
		case a.Begin > b.Begin:
			return 1
		}
		return 0
	})
	return seq
}
