package game

import (
	"time"
)

// BasePoints is awarded for every note of a matched chord.
const BasePoints = 15

// Judgement is a timing tier. Tiers are cumulative, a note within a tighter
// tier also collects every looser tier's bonus.
type Judgement struct {
	Time  time.Duration // Error must be strictly below this
	Bonus int
	Name  string
}

var Judgements = []Judgement{
	{Time: 100 * time.Millisecond, Bonus: 15, Name: "Good"},
	{Time: 50 * time.Millisecond, Bonus: 15, Name: "Great"},
	{Time: 30 * time.Millisecond, Bonus: 5, Name: "Perfect"},
}

// Judge returns the index of the tightest tier reached, -1 for a plain hit.
func Judge(err time.Duration) int {
	idx := -1
	for i, j := range Judgements {
		if err < j.Time {
			idx = i
		}
	}
	return idx
}

// Points for one note hit with the given timing error.
func Points(err time.Duration) int {
	points := BasePoints
	for _, j := range Judgements {
		if err < j.Time {
			points += j.Bonus
		}
	}
	return points
}
