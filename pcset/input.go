package pcset

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/jsphweid/pcset/chroma"
	"github.com/jsphweid/pcset/pitch"
)

// Input is anything that can be turned into a chroma: Binary, SetNum or
// Notes. It is resolved once by Encode and every other function works on the
// resulting chroma.
type Input interface {
	encode() chroma.Chroma
}

// Binary is a 12 character chroma string such as "101010000000".
type Binary string

// SetNum is a chroma's integer value, 0-4095.
type SetNum int

// Notes is a list of note or interval names. Names that cannot be parsed are
// ignored.
type Notes []string

func (b Binary) encode() chroma.Chroma {
	c, _ := chroma.Parse(string(b))
	return c
}

func (n SetNum) encode() chroma.Chroma {
	c, err := chroma.FromSetNum(int(n))
	if err != nil {
		return chroma.Empty
	}
	return c
}

func (n Notes) encode() chroma.Chroma {
	var c chroma.Chroma
	for _, name := range n {
		if pc, ok := pitch.Chroma(name); ok {
			c |= chroma.FromPitchClasses(pc)
		}
	}
	return c
}

// Encode resolves an input to its chroma. Invalid input of any kind, and a
// nil input, give chroma.Empty.
func Encode(in Input) chroma.Chroma {
	if in == nil {
		return chroma.Empty
	}
	return in.encode()
}

var (
	binaryText = regexp.MustCompile(`^[01]+$`)
	digitText  = regexp.MustCompile(`^\d+$`)
	separators = regexp.MustCompile(`[\s,]+`)
)

// ParseInput picks an Input for free text: a run of 0s and 1s is a Binary
// (invalid unless it has 12 digits), any other number is a SetNum and
// everything else is split on spaces and commas into Notes.
func ParseInput(s string) Input {
	s = strings.TrimSpace(s)
	switch {
	case binaryText.MatchString(s):
		return Binary(s)
	case digitText.MatchString(s):
		n, err := strconv.Atoi(s)
		if err != nil {
			return SetNum(-1)
		}
		return SetNum(n)
	}
	var notes Notes
	for _, f := range separators.Split(s, -1) {
		if f != "" {
			notes = append(notes, f)
		}
	}
	return notes
}
