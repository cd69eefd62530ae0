package input

import (
	"encoding/binary"
	"log"
	"os"
)

// Linux joystick API, see include/uapi/linux/joystick.h
type jsEvent struct {
	Time   uint32
	Value  int16
	Type   uint8
	Number uint8
}

const (
	jsButton = 0x01
	jsAxis   = 0x02
	jsInit   = 0x80

	hatAxisX = 6
	hatAxisY = 7
)

// ReadJoystick streams events from a joystick device such as
// /dev/input/js0 until the device fails or is unplugged.
func ReadJoystick(device string, vendor Vendor, events chan<- Event) error {
	file, err := os.Open(device)
	if nil != err {
		return err
	}
	go func() {
		defer file.Close()

		var ev jsEvent
		for {
			if err := binary.Read(file, binary.LittleEndian, &ev); nil != err {
				log.Println(err, "unable to read joystick input")
				return
			}
			if e, ok := translateJoystick(ev, vendor); ok {
				events <- e
			}
		}
	}()
	return nil
}

func translateJoystick(ev jsEvent, vendor Vendor) (Event, bool) {
	// Initial state reports are not motion
	if ev.Type&jsInit != 0 {
		return Event{}, false
	}
	switch ev.Type {
	case jsButton:
		t := ButtonUp
		if ev.Value != 0 {
			t = ButtonDown
		}
		return Event{Type: t, Vendor: vendor, ID: int(ev.Number)}, true
	case jsAxis:
		switch ev.Number {
		case hatAxisX, hatAxisY:
			return Event{Type: HatMotion, Vendor: vendor, ID: int(ev.Number), Hat: hatDirection(ev)}, true
		}
		return Event{Type: AxisMotion, Vendor: vendor, ID: int(ev.Number), Value: int(ev.Value)}, true
	}
	return Event{}, false
}

func hatDirection(ev jsEvent) HatDirection {
	switch {
	case ev.Value == 0:
		return Centered
	case ev.Number == hatAxisX && ev.Value < 0:
		return HatLeft
	case ev.Number == hatAxisX:
		return HatRight
	case ev.Value < 0:
		return HatUp
	}
	return HatDown
}
