package testdata

import (
	"encoding/json"
	"time"

	"git.lost.host/meutraa/fretwork/internal/game"
)

// GetChart decodes the fixture chart: a Guitar track with Easy and Amazing
// notes and a Bass track with Amazing notes only.
func GetChart() (*game.Chart, error) {
	var chart game.Chart
	if err := json.Unmarshal([]byte(data), &chart); nil != err {
		return nil, err
	}
	return &chart, nil
}

// Notes maps a pitch key to note begin times in milliseconds.
type Notes map[int][]int

func Track(name string, notes Notes) game.Track {
	nm := game.NoteMap{}
	for pitch, begins := range notes {
		for _, ms := range begins {
			t := time.Duration(ms) * time.Millisecond
			nm.Append(pitch, game.Note{Begin: t, End: t})
		}
	}
	return game.Track{Name: name, Notes: nm}
}

// Chart builds a chart with a beat every 500ms over the first ten seconds.
func Chart(tracks ...game.Track) *game.Chart {
	beats := []time.Duration{}
	for t := time.Duration(0); t <= 10*time.Second; t += 500 * time.Millisecond {
		beats = append(beats, t)
	}
	return &game.Chart{Tracks: tracks, Beats: beats}
}
