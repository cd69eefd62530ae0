package game

// Frets is the pressed state of every fret lane.
type Frets [FretCount]bool

func (f Frets) Count() int {
	count := 0
	for _, pressed := range f {
		if pressed {
			count++
		}
	}
	return count
}

// Mask packs the frets into the low bits, fret 0 first.
func (f Frets) Mask() uint8 {
	var m uint8
	for i, pressed := range f {
		if pressed {
			m |= 1 << i
		}
	}
	return m
}

func FretsFromMask(m uint8) Frets {
	var f Frets
	for i := range f {
		f[i] = m&(1<<i) != 0
	}
	return f
}
