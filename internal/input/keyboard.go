package input

import (
	"fmt"
	"log"

	"git.lost.host/meutraa/fretwork/internal/game"
	"github.com/eiannone/keyboard"
)

// KeyboardSource reads fret and pick keys from the terminal. The keyboard
// only reports presses, so a fret key toggles its fret and space strums.
type KeyboardSource struct {
	keys    <-chan keyboard.KeyEvent
	frets   []rune
	pressed game.Frets
	quit    bool
	opened  bool
}

func NewKeyboardSource(keys <-chan keyboard.KeyEvent, frets string) (*KeyboardSource, error) {
	runes := []rune(frets)
	if len(runes) != game.FretCount {
		return nil, fmt.Errorf("expected %v fret keys, got %q", game.FretCount, frets)
	}
	return &KeyboardSource{keys: keys, frets: runes}, nil
}

// OpenKeyboard puts the terminal in raw mode and reads keys from it.
func OpenKeyboard(frets string) (*KeyboardSource, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	k, err := NewKeyboardSource(keys, frets)
	if nil != err {
		keyboard.Close()
		return nil, err
	}
	k.opened = true
	return k, nil
}

func (k *KeyboardSource) Close() error {
	if !k.opened {
		return nil
	}
	k.opened = false
	return keyboard.Close()
}

// Quit reports whether escape was pressed.
func (k *KeyboardSource) Quit() bool {
	return k.quit
}

func (k *KeyboardSource) TryPoll() (Event, bool) {
	for {
		select {
		case key, ok := <-k.keys:
			if !ok {
				return Event{}, false
			}
			if ev, ok := k.translate(key); ok {
				return ev, true
			}
		default:
			return Event{}, false
		}
	}
}

func (k *KeyboardSource) translate(key keyboard.KeyEvent) (Event, bool) {
	if nil != key.Err {
		log.Println("unable to read key", key.Err)
		return Event{}, false
	}
	switch key.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		k.quit = true
		return Event{}, false
	case keyboard.KeySpace:
		return Event{Type: HatMotion, Vendor: Keyboard, Hat: HatDown}, true
	}
	for i, r := range k.frets {
		if r != key.Rune {
			continue
		}
		k.pressed[i] = !k.pressed[i]
		t := ButtonUp
		if k.pressed[i] {
			t = ButtonDown
		}
		return Event{Type: t, Vendor: Keyboard, ID: i}, true
	}
	log.Println("not a fret key", key.Rune)
	return Event{}, false
}
