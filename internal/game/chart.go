package game

import (
	"time"

	"golang.org/x/exp/slices"
)

// NoteSequence is ordered by Begin, no two notes overlap.
type NoteSequence []Note

// NoteMap is keyed by pitch, which is a difficulty base pitch plus a fret.
type NoteMap map[int]NoteSequence

type Track struct {
	Name  string
	Notes NoteMap
}

type Chart struct {
	Tracks []Track
	Beats  []time.Duration
}

// Append adds a note to the end of a pitch sequence. Only used while loading.
func (nm NoteMap) Append(pitch int, note Note) {
	nm[pitch] = append(nm[pitch], note)
}

func (t *Track) NoteCount() int {
	count := 0
	for _, seq := range t.Notes {
		count += len(seq)
	}
	return count
}

// Sequence returns the notes of one track at one pitch key.
func (c *Chart) Sequence(track, pitch int) (NoteSequence, bool) {
	if track < 0 || track >= len(c.Tracks) {
		return nil, false
	}
	seq, ok := c.Tracks[track].Notes[pitch]
	return seq, ok
}

// End is the latest note end across all tracks.
func (c *Chart) End() time.Duration {
	var end time.Duration
	for _, track := range c.Tracks {
		for _, seq := range track.Notes {
			if len(seq) == 0 {
				continue
			}
			if last := seq[len(seq)-1].End; last > end {
				end = last
			}
		}
	}
	return end
}

// From returns the index of the first note beginning at or after t.
func (s NoteSequence) From(t time.Duration) int {
	i, _ := slices.BinarySearchFunc(s, t, func(n Note, t time.Duration) int {
		switch {
		case n.Begin < t:
			return -1
		case n.Begin > t:
			return 1
		}
		return 0
	})
	return i
}

// BeatsBetween returns the beats in [from, to].
func (c *Chart) BeatsBetween(from, to time.Duration) []time.Duration {
	start, _ := slices.BinarySearch(c.Beats, from)
	end := start
	for end < len(c.Beats) && c.Beats[end] <= to {
		end++
	}
	return c.Beats[start:end]
}
