package config

import (
	"errors"
	"fmt"

	"git.lost.host/meutraa/fretwork/internal/game"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app = kingpin.New("fretwork", "Guitar mode rhythm game for the terminal")

	Chart       = app.Arg("chart", "notes.mid chart file").Required().ExistingFile()
	Delay       = app.Flag("delay", "Pre-roll before the song starts").Default("3s").Short('d').Duration()
	FramePeriod = app.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
	SampleRate  = app.Flag("sample-rate", "Playback clock sample rate").Default("44100").Int()
	Future      = app.Flag("future", "Time shown above the cursor").Default("3s").Duration()
	Past        = app.Flag("past", "Time shown below the cursor").Default("300ms").Duration()
	Keys        = app.Flag("keys", "Fret keys, lowest fret first").Default("asdfg").Short('k').String()
	Joystick    = app.Flag("joystick", "Joystick device, such as /dev/input/js0").Short('j').String()
	Vendor      = app.Flag("vendor", "Joystick button layout").Default("guitarhero").Enum("guitarhero", "rockband")
	Database    = app.Flag("db", "Replay database").Default("./replays.db").String()
	Record      = app.Flag("record", "Save the inputs of this run").Short('r').Bool()
	Replay      = app.Flag("replay", "Play back a recorded session id").String()
	LogFile     = app.Flag("log", "Log file").Default("fretwork.log").String()
)

// Parse reads args, without the program name, into the flag variables.
func Parse(args []string) error {
	app.Version("0.1.0")
	if _, err := app.Parse(args); nil != err {
		return err
	}
	return validate()
}

func validate() error {
	if n := len([]rune(*Keys)); n != game.FretCount {
		return fmt.Errorf("expected %v fret keys, got %v", game.FretCount, n)
	}
	if *Delay < 0 {
		return fmt.Errorf("negative delay %v", *Delay)
	}
	if *SampleRate <= 0 {
		return fmt.Errorf("invalid sample rate %v", *SampleRate)
	}
	if *FramePeriod <= 0 {
		return fmt.Errorf("invalid frame period %v", *FramePeriod)
	}
	if *Future <= 0 || *Past < 0 {
		return fmt.Errorf("invalid visible window %v to %v", -*Past, *Future)
	}
	if *Record && *Replay != "" {
		return errors.New("unable to record while replaying")
	}
	return nil
}
