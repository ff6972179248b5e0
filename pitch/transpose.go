package pitch

import (
	"strconv"
	"strings"
)

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// Name formats a note pitch. Intervals format as "<number><quality>".
func (p Pitch) Name() string {
	if p.Interval {
		return p.intervalName()
	}
	var sb strings.Builder
	sb.WriteByte(letters[p.Step])
	if p.Alt > 0 {
		sb.WriteString(strings.Repeat("#", p.Alt))
	} else if p.Alt < 0 {
		sb.WriteString(strings.Repeat("b", -p.Alt))
	}
	if p.HasOct {
		sb.WriteString(strconv.Itoa(p.Oct))
	}
	return sb.String()
}

func (p Pitch) intervalName() string {
	var q string
	switch {
	case isPerfectStep(p.Step) && p.Alt == 0:
		q = "P"
	case !isPerfectStep(p.Step) && p.Alt == 0:
		q = "M"
	case !isPerfectStep(p.Step) && p.Alt == -1:
		q = "m"
	case p.Alt > 0:
		q = strings.Repeat("A", p.Alt)
	case isPerfectStep(p.Step):
		q = strings.Repeat("d", -p.Alt)
	default:
		q = strings.Repeat("d", -p.Alt-1)
	}
	num := p.Step + 1 + 7*p.Oct
	if p.Dir < 0 {
		num = -num
	}
	return strconv.Itoa(num) + q
}

// Transpose moves a note by an interval, keeping letter spelling: C + 3m is
// Eb, not D#. The octave is carried only when the note has one.
func Transpose(note, interval string) (string, bool) {
	n, ok := Note(note)
	if !ok {
		return "", false
	}
	i, ok := Interval(interval)
	if !ok {
		return "", false
	}

	dir := i.Dir
	steps := i.Step + 7*i.Oct
	semis := naturals[i.Step] + i.Alt + 12*i.Oct

	absStep := n.Step + dir*steps
	step := mod(absStep, 7)
	target := naturals[n.Step] + n.Alt + dir*semis

	octShift := floorDiv(absStep, 7)
	alt := target - naturals[step] - 12*octShift

	res := Pitch{Step: step, Alt: alt}
	if n.HasOct {
		res.Oct = n.Oct + octShift
		res.HasOct = true
	}
	return res.Name(), true
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// FromMidi names a MIDI key with sharps, middle C (60) being C4.
func FromMidi(key uint8) string {
	return sharpNames[key%12] + strconv.Itoa(int(key)/12-1)
}

// IntervalFromFifths names the ascending simple interval reached by stacking
// n perfect fifths (negative n stacks fourths): 1 is 5P, 2 is 2M, -1 is 4P.
func IntervalFromFifths(n int) string {
	step := mod(4*n, 7)
	alt := mod(7*n, 12) - naturals[step]
	if alt > 6 {
		alt -= 12
	} else if alt < -6 {
		alt += 12
	}
	return Pitch{Step: step, Alt: alt, Dir: 1, Interval: true}.Name()
}
