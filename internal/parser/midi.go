package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"git.lost.host/meutraa/fretwork/internal/game"
	"gitlab.com/gomidi/midi/v2/smf"
)

// DefaultParser reads Frets on Fire / Rock Band style notes.mid charts.
type DefaultParser struct{}

// MIDI track names and the instrument they hold, in display order.
// T1 GEMS is the pre-Rock Band name of the guitar part.
var parts = []struct {
	names []string
	name  string
}{
	{[]string{"PART GUITAR", "T1 GEMS"}, "Guitar"},
	{[]string{"PART BASS"}, "Bass"},
	{[]string{"PART RHYTHM"}, "Rhythm"},
	{[]string{"PART DRUMS"}, "Drums"},
}

func (p *DefaultParser) Parse(file string) (*game.Chart, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, fmt.Errorf("unable to read chart: %w", err)
	}
	return p.Read(bytes.NewReader(data))
}

func (p *DefaultParser) Read(r io.Reader) (chart *game.Chart, err error) {
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); nil != rec {
			chart, err = nil, fmt.Errorf("unable to parse midi: %v", rec)
		}
	}()

	s, err := smf.ReadFrom(r)
	if nil != err {
		return nil, fmt.Errorf("unable to parse midi: %w", err)
	}

	byName := map[string]smf.Track{}
	var lastTick int64
	for _, track := range s.Tracks {
		var ticks int64
		for _, ev := range track {
			ticks += int64(ev.Delta)
		}
		if ticks > lastTick {
			lastTick = ticks
		}
		name := trackName(track)
		if _, ok := byName[name]; !ok {
			byName[name] = track
		}
	}

	chart = &game.Chart{Beats: beats(s, lastTick)}
	for _, part := range parts {
		for _, name := range part.names {
			track, ok := byName[name]
			if !ok {
				continue
			}
			chart.Tracks = append(chart.Tracks, game.Track{
				Name:  part.name,
				Notes: notes(s, track),
			})
			break
		}
	}
	return chart, nil
}

func trackName(track smf.Track) string {
	for _, ev := range track {
		var name string
		if ev.Message.GetMetaTrackName(&name) {
			return name
		}
	}
	return ""
}

func microseconds(us int64) time.Duration {
	return time.Duration(us) * time.Microsecond
}

// notes pairs every note start with the next end of the same key. A start
// while the key is still held ends the held note.
func notes(s *smf.SMF, track smf.Track) game.NoteMap {
	nm := game.NoteMap{}
	held := map[uint8]time.Duration{}
	var ticks int64
	for _, ev := range track {
		ticks += int64(ev.Delta)
		var channel, key, velocity uint8
		switch {
		case ev.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0:
			at := microseconds(s.TimeAt(ticks))
			if begin, ok := held[key]; ok {
				nm.Append(int(key), game.Note{Begin: begin, End: at})
			}
			held[key] = at
		case ev.Message.GetNoteOn(&channel, &key, &velocity),
			ev.Message.GetNoteOff(&channel, &key, &velocity):
			begin, ok := held[key]
			if !ok {
				continue
			}
			nm.Append(int(key), game.Note{Begin: begin, End: microseconds(s.TimeAt(ticks))})
			delete(held, key)
		}
	}
	// Unterminated notes have no length
	for key, begin := range held {
		nm.Append(int(key), game.Note{Begin: begin, End: begin})
	}
	for key, seq := range nm {
		nm[key] = sortNotes(seq)
	}
	return nm
}

// beats has one entry per quarter note up to the last tick.
func beats(s *smf.SMF, lastTick int64) []time.Duration {
	mt, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok || mt == 0 {
		return nil
	}
	beats := []time.Duration{}
	for tick := int64(0); tick <= lastTick; tick += int64(mt) {
		beats = append(beats, microseconds(s.TimeAt(tick)))
	}
	return beats
}
