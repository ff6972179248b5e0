// Package pitch parses note and interval names and maps them to semitone
// positions.
//
// Notes are scientific pitch names ("C", "f#4", "Bbb", "cx2"). Intervals use
// either "<number><quality>" ("3M", "-5P") or "<quality><number>" ("M3",
// "P-5") with qualities d, m, M, P and A.
package pitch

import (
	"regexp"
	"strconv"
	"strings"
)

const letters = "CDEFGAB"

// semitones of the natural notes / major-scale steps
var naturals = [7]int{0, 2, 4, 5, 7, 9, 11}

// indexed by semitone distance; 6 is spelled as a diminished fifth
var intervalNames = [12]string{"1P", "2m", "2M", "3m", "3M", "4P", "5d", "5P", "6m", "6M", "7m", "7M"}

var (
	noteRegex        = regexp.MustCompile(`^([a-gA-G])(#+|b+|x+)?(-?\d+)?$`)
	intervalNumFirst = regexp.MustCompile(`^([-+]?\d+)(d{1,4}|m|M|P|A{1,4})$`)
	intervalQualFst  = regexp.MustCompile(`^(AA|A|P|M|m|d|dd)([-+]?\d+)$`)
)

// Pitch is a parsed note or interval.
//
// For notes Step is the letter (0 = C ... 6 = B). For intervals Step is the
// simple interval step (0 = unison ... 6 = seventh) and Oct counts the extra
// octaves of compound intervals.
type Pitch struct {
	Step     int
	Alt      int
	Oct      int
	HasOct   bool
	Dir      int
	Interval bool
}

func mod(n, m int) int {
	return ((n % m) + m) % m
}

// Chroma is the semitone position of the pitch, 0-11.
func (p Pitch) Chroma() int {
	semis := naturals[p.Step] + p.Alt
	if p.Interval && p.Dir < 0 {
		semis = -semis
	}
	return mod(semis, 12)
}

func Note(name string) (Pitch, bool) {
	m := noteRegex.FindStringSubmatch(name)
	if m == nil {
		return Pitch{}, false
	}
	p := Pitch{Step: strings.IndexByte(letters, strings.ToUpper(m[1])[0])}
	acc := strings.ReplaceAll(m[2], "x", "##")
	if strings.HasPrefix(acc, "#") {
		p.Alt = len(acc)
	} else {
		p.Alt = -len(acc)
	}
	if m[3] != "" {
		oct, err := strconv.Atoi(m[3])
		if err != nil {
			return Pitch{}, false
		}
		p.Oct = oct
		p.HasOct = true
	}
	return p, true
}

func isPerfectStep(step int) bool {
	return step == 0 || step == 3 || step == 4
}

func qualityToAlt(step int, q string) (int, bool) {
	switch {
	case q == "P":
		return 0, isPerfectStep(step)
	case q == "M":
		return 0, !isPerfectStep(step)
	case q == "m":
		return -1, !isPerfectStep(step)
	case strings.Trim(q, "A") == "":
		return len(q), true
	case strings.Trim(q, "d") == "":
		if isPerfectStep(step) {
			return -len(q), true
		}
		return -len(q) - 1, true
	}
	return 0, false
}

func Interval(name string) (Pitch, bool) {
	var num, quality string
	if m := intervalNumFirst.FindStringSubmatch(name); m != nil {
		num, quality = m[1], m[2]
	} else if m := intervalQualFst.FindStringSubmatch(name); m != nil {
		quality, num = m[1], m[2]
	} else {
		return Pitch{}, false
	}

	n, err := strconv.Atoi(num)
	if err != nil || n == 0 {
		return Pitch{}, false
	}
	dir := 1
	if n < 0 {
		dir = -1
		n = -n
	}
	step := (n - 1) % 7
	alt, ok := qualityToAlt(step, quality)
	if !ok {
		return Pitch{}, false
	}
	return Pitch{
		Step:     step,
		Alt:      alt,
		Oct:      (n - 1) / 7,
		HasOct:   true,
		Dir:      dir,
		Interval: true,
	}, true
}

// Chroma resolves a note or interval name to its semitone position.
func Chroma(name string) (int, bool) {
	if p, ok := Note(name); ok {
		return p.Chroma(), true
	}
	if p, ok := Interval(name); ok {
		return p.Chroma(), true
	}
	return 0, false
}

// IntervalName names an ascending simple interval by its size in semitones.
// Distances outside 0-11 are reduced modulo 12.
func IntervalName(semitones int) string {
	return intervalNames[mod(semitones, 12)]
}
