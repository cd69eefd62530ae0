package main

import (
	"fmt"
	"log"
	"time"

	"git.lost.host/meutraa/fretwork/internal/clock"
	"git.lost.host/meutraa/fretwork/internal/config"
	"git.lost.host/meutraa/fretwork/internal/engine"
	"git.lost.host/meutraa/fretwork/internal/game"
	"git.lost.host/meutraa/fretwork/internal/input"
	"git.lost.host/meutraa/fretwork/internal/parser"
	"git.lost.host/meutraa/fretwork/internal/render"
	"git.lost.host/meutraa/fretwork/internal/replay"
	"git.lost.host/meutraa/fretwork/internal/theme"
	"github.com/faiface/beep"
)

// Time to keep playing after the last note ends
const outro = 2 * time.Second

type Program struct {
	Parser   parser.Parser
	Renderer render.Renderer
	Theme    theme.Theme
	Store    replay.Store

	chart   *game.Chart
	session *engine.Session
	clock   *clock.Clock
	end     time.Duration

	input    input.Normalizer
	keyboard *input.KeyboardSource
	queues   []input.Queue

	recorder *replay.Recorder
	run      *replay.Run
	next     int // Next tick of run
	frets    game.Frets
}

func (p *Program) Init() error {
	// Ensure our Default implementations are used as interfaces
	p.Parser = &parser.DefaultParser{}
	p.Theme = &theme.DefaultTheme{}
	p.Renderer = &render.DefaultRenderer{
		Theme:  p.Theme,
		Past:   *config.Past,
		Future: *config.Future,
	}

	var err error
	p.chart, err = p.Parser.Parse(*config.Chart)
	if nil != err {
		return err
	}
	p.session, err = engine.New(p.chart)
	if nil != err {
		return fmt.Errorf("unable to start guitar mode: %w", err)
	}
	p.end = p.chart.End() + outro
	log.Printf("Loaded %v (%v tracks, %v beats)\n", *config.Chart, len(p.chart.Tracks), len(p.chart.Beats))

	if *config.Record || *config.Replay != "" {
		p.Store = &replay.DefaultStore{Path: *config.Database}
		if err := p.Store.Init(); nil != err {
			return fmt.Errorf("unable to open replay database: %w", err)
		}
	}
	if *config.Record {
		p.recorder = replay.NewRecorder(p.chart)
		log.Println("Recording session", p.recorder.Session())
	}
	if *config.Replay != "" {
		p.run, err = p.Store.Get(*config.Replay)
		if nil != err {
			return err
		}
		if p.run.Sum != replay.Sum(p.chart) {
			return replay.ErrChartMismatch
		}
	}

	p.keyboard, err = input.OpenKeyboard(*config.Keys)
	if nil != err {
		return err
	}
	p.queues = append(p.queues, p.keyboard)
	if *config.Joystick != "" {
		vendor, _ := input.ParseVendor(*config.Vendor)
		events := make(input.ChanQueue, 128)
		if err := input.ReadJoystick(*config.Joystick, vendor, events); nil != err {
			return fmt.Errorf("unable to open joystick: %w", err)
		}
		p.queues = append(p.queues, events)
	}

	if err := p.Renderer.Init(); nil != err {
		return err
	}

	p.clock = clock.New(beep.SampleRate(*config.SampleRate), *config.Delay)
	return nil
}

// replayTick hands out the next recorded strum once playback reaches it.
func (p *Program) replayTick(now time.Duration) engine.Tick {
	if p.next < len(p.run.Ticks) && p.run.Ticks[p.next].Time <= now {
		tick := p.run.Ticks[p.next]
		p.next++
		p.frets = tick.Frets
		return tick
	}
	return engine.Tick{Time: now, Frets: p.frets}
}

// Update advances the game to now and reports whether to keep going.
func (p *Program) Update(now time.Duration) (bool, error) {
	p.input.Drain(p.queues...)
	if p.keyboard.Quit() {
		return false, nil
	}

	var tick engine.Tick
	if nil != p.run {
		tick = p.replayTick(now)
	} else {
		tick = p.input.Tick(now)
	}
	if nil != p.recorder {
		p.recorder.Record(tick)
	}

	if err := p.session.Update(tick); nil != err {
		return false, err
	}
	return now < p.end, nil
}

func (p *Program) Render(now time.Duration) error {
	snap := p.session.Snapshot(now, *config.Past, *config.Future)
	return p.Renderer.Render(&snap)
}

func (p *Program) Deinit() {
	if nil != p.Renderer {
		if err := p.Renderer.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}
	if nil != p.keyboard {
		if err := p.keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}
	if nil != p.recorder {
		if run := p.recorder.Run(); len(run.Ticks) > 0 {
			if err := p.Store.Save(run); nil != err {
				log.Println(err)
			}
		}
	}
	if nil != p.Store {
		p.Store.Deinit()
	}
}

func (p *Program) PrintStats() {
	st := p.session.Stats()
	fmt.Printf("%10v: %6v\n", "Track", p.chart.Tracks[p.session.Track()].Name)
	fmt.Printf("%10v: %6v\n", "Level", p.session.Level())
	fmt.Printf("%10v: %6v\n", "Score", p.session.Score())
	fmt.Printf("%10v: %6v\n", "Notes", st.Notes)
	fmt.Printf("%10v: %6v\n", "Chords", st.Chords)
	fmt.Printf("%10v: %6v\n", "Misses", st.Misses)
	fmt.Printf("%10v: %6v\n", "Streak", st.BestStreak)
	fmt.Printf("%10v: %6v\n", "Hit", st.Judgements[0])
	for i, j := range game.Judgements {
		fmt.Printf("%10v: %6v\n", j.Name, st.Judgements[i+1])
	}
	if nil != p.recorder {
		fmt.Printf("%10v: %v\n", "Session", p.recorder.Session())
	}
}
