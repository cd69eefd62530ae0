package render

import (
	"time"

	"git.lost.host/meutraa/fretwork/internal/engine"
	"git.lost.host/meutraa/fretwork/internal/theme"
)

type Renderer interface {
	Init() error
	Deinit() error
	RenderLoop(framePeriod time.Duration, frame func(now time.Time) bool)
	Render(snap *engine.Snapshot) error
	Fill(row, column int, message string)
	FillColor(row, column int, color theme.Color, message string)
}
