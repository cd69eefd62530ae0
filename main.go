package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"git.lost.host/meutraa/fretwork/internal/config"
)

func main() {
	if err := run(); nil != err {
		log.SetOutput(os.Stderr)
		log.Fatalln(err)
	}
}

func run() error {
	if err := config.Parse(os.Args[1:]); nil != err {
		return err
	}

	// The terminal belongs to the renderer
	logFile, err := os.OpenFile(*config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	p := &Program{}
	if err := p.Init(); nil != err {
		p.Deinit()
		return err
	}

	var loopErr error
	p.Renderer.RenderLoop(*config.FramePeriod, func(time.Time) bool {
		now := p.clock.Position()
		cont, err := p.Update(now)
		if nil != err {
			loopErr = err
			return false
		}
		if err := p.Render(now); nil != err {
			loopErr = err
			return false
		}
		return cont
	})
	p.Deinit()
	if nil != loopErr {
		return loopErr
	}

	p.PrintStats()
	return nil
}
