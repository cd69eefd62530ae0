package render

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"git.lost.host/meutraa/fretwork/internal/engine"
	"git.lost.host/meutraa/fretwork/internal/game"
	"git.lost.host/meutraa/fretwork/internal/theme"
	"golang.org/x/term"
)

const (
	laneSpacing = 4
	topRow      = 3

	// Neck width plus a column of margin on each side
	minColumns = (game.FretCount-1)*laneSpacing + 7
)

var ErrTerminalTooSmall = errors.New("terminal too small")

// DefaultRenderer draws the note highway with ANSI escapes. Time runs up
// the screen, from Past below the cursor to Future at the top.
type DefaultRenderer struct {
	Out    io.Writer
	Theme  theme.Theme
	Past   time.Duration
	Future time.Duration

	// Terminal size, queried on Init when zero
	Rows, Columns int

	buffer strings.Builder
}

func (r *DefaultRenderer) Init() error {
	if nil == r.Out {
		r.Out = os.Stdout
	}
	if r.Rows == 0 || r.Columns == 0 {
		columns, rows, err := term.GetSize(int(os.Stdout.Fd()))
		if nil != err {
			return fmt.Errorf("unable to get terminal size: %w", err)
		}
		r.Rows, r.Columns = rows, columns
	}
	if r.Columns < minColumns || r.Rows <= topRow {
		return fmt.Errorf("%w: %vx%v", ErrTerminalTooSmall, r.Columns, r.Rows)
	}

	_, err := fmt.Fprintf(r.Out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[J",      // Clear the screen
	)
	return err
}

func (r *DefaultRenderer) Deinit() error {
	if nil == r.Out {
		return nil
	}
	_, err := fmt.Fprintf(r.Out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return err
}

// RenderLoop calls frame once per period until it returns false.
func (r *DefaultRenderer) RenderLoop(framePeriod time.Duration, frame func(now time.Time) bool) {
	for cont := true; cont; {
		now := time.Now()
		deadline := now.Add(framePeriod)

		cont = frame(now)

		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) bottomRow() int {
	return r.Rows - 1
}

// row is the screen row of a time relative to the cursor.
func (r *DefaultRenderer) row(t time.Duration) int {
	span := float64(r.Future + r.Past)
	if span <= 0 {
		return r.bottomRow()
	}
	fraction := float64(t+r.Past) / span
	return r.bottomRow() - int(math.Round(fraction*float64(r.bottomRow()-topRow)))
}

func (r *DefaultRenderer) column(fret int) int {
	return max(r.Columns, minColumns)/2 + (fret-game.FretCount/2)*laneSpacing
}

// Render draws a whole frame and writes it out.
func (r *DefaultRenderer) Render(snap *engine.Snapshot) error {
	neckName := "guitarneck"
	if snap.Track > 0 {
		neckName = "bassneck"
	}
	neck, err := r.Theme.Texture(neckName)
	if nil != err {
		return fmt.Errorf("unable to load %v: %w", neckName, err)
	}
	button, err := r.Theme.Texture("button")
	if nil != err {
		return fmt.Errorf("unable to load button: %w", err)
	}
	sustain, err := r.Theme.Texture("sustain")
	if nil != err {
		return fmt.Errorf("unable to load sustain: %w", err)
	}
	cursor, err := r.Theme.Texture("cursor")
	if nil != err {
		return fmt.Errorf("unable to load cursor: %w", err)
	}

	left, right := r.column(0)-2, r.column(game.FretCount-1)+2

	// Neck
	for row := 1; row <= r.bottomRow(); row++ {
		r.buffer.WriteString("\033[")
		r.buffer.WriteString(strconv.Itoa(row))
		r.buffer.WriteString(";1H\033[2K")
		if row < topRow {
			continue
		}
		for fret := 0; fret < game.FretCount; fret++ {
			r.FillColor(row, r.column(fret), theme.Gray, neck.Glyph)
		}
	}
	for _, beat := range snap.Beats {
		row := r.row(beat - snap.Time)
		if row < topRow || row > r.bottomRow() {
			continue
		}
		r.FillColor(row, left, theme.Gray, strings.Repeat(neck.Alt, right-left+1))
	}

	// Notes
	for fret, lane := range snap.Lanes {
		col := r.column(fret)
		for _, note := range lane {
			color := r.Theme.StateColor(fret, note.State == game.HitPending, note.State == game.Consumed)
			head := r.row(note.Begin - snap.Time)
			if note.End > note.Begin {
				tail := r.row(note.End - snap.Time)
				if tail < topRow {
					tail = topRow
				}
				for row := head - 1; row >= tail; row-- {
					if row <= r.bottomRow() {
						r.FillColor(row, col, color, sustain.Glyph)
					}
				}
			}
			if head >= topRow && head <= r.bottomRow() {
				r.FillColor(head, col, color, button.Glyph)
			}
		}
	}

	// Cursor with the fret buttons on it
	cr := r.row(0)
	r.FillColor(cr, left, theme.White, strings.Repeat(cursor.Glyph, right-left+1))
	for fret := 0; fret < game.FretCount; fret++ {
		color := r.Theme.FretColor(fret)
		if snap.Frets[fret] {
			color = theme.White
		}
		r.FillColor(cr, r.column(fret), color, button.Glyph)
	}

	// Text
	if snap.PreRoll {
		r.Fill(1, left, "Play a fret to change:")
		r.Fill(2, left, snap.TrackName+"/"+snap.Level.String())
	} else {
		r.Fill(1, left, strconv.Itoa(snap.Score))
	}

	return r.flush()
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) FillColor(row, column int, c theme.Color, message string) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

func (r *DefaultRenderer) flush() error {
	_, err := io.WriteString(r.Out, r.buffer.String())
	r.buffer.Reset()
	return err
}
