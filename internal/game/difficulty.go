package game

// FretCount is the number of fret lanes in every difficulty band.
const FretCount = 5

type Level int

const (
	Supaeasy Level = iota
	Easy
	Medium
	Amazing
	LevelCount
)

type difficulty struct {
	name      string
	basePitch int
}

var difficulties = [LevelCount]difficulty{
	Supaeasy: {"Supaeasy", 0x3C},
	Easy:     {"Easy", 0x48},
	Medium:   {"Medium", 0x54},
	Amazing:  {"Amazing", 0x60},
}

func (l Level) Valid() bool {
	return l >= 0 && l < LevelCount
}

func (l Level) String() string {
	if !l.Valid() {
		return "Unknown"
	}
	return difficulties[l].name
}

// BasePitch is the NoteMap key of fret 0 for this level.
func (l Level) BasePitch() int {
	return difficulties[l].basePitch
}

func (l Level) Pitch(fret int) int {
	return l.BasePitch() + fret
}
