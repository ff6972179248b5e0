// Package pcset computes with pitch-class sets: their chroma, set number,
// normalized form, intervals, modes and set relations.
//
// Nothing here returns an error. Input that yields no pitch class gives an
// empty set, and the Empty flag is the only way to tell.
package pcset

import (
	"github.com/jsphweid/pcset/chroma"
	"github.com/jsphweid/pcset/pitch"
)

type PcSet struct {
	Empty      bool          `json:"empty"`
	Name       string        `json:"name"`
	SetNum     int           `json:"setNum"`
	Chroma     chroma.Chroma `json:"chroma"`
	Normalized chroma.Chroma `json:"normalized"`
	Intervals  []string      `json:"intervals"`
}

var EmptyPcSet = FromChroma(chroma.Empty)

func FromChroma(c chroma.Chroma) PcSet {
	return PcSet{
		Empty:      c.IsEmpty(),
		SetNum:     c.SetNum(),
		Chroma:     c,
		Normalized: chroma.Normalize(c),
		Intervals:  chromaToIntervals(c),
	}
}

func Get(in Input) PcSet {
	return FromChroma(Encode(in))
}

// ChromaOf returns the 12 character chroma string of the input.
func ChromaOf(in Input) string {
	return Encode(in).String()
}

// Chromas lists the 2048 chroma strings that contain pitch class 0.
func Chromas() []string {
	all := chroma.Chromas()
	res := make([]string, len(all))
	for i, c := range all {
		res[i] = c.String()
	}
	return res
}

func Intervals(in Input) []string {
	return chromaToIntervals(Encode(in))
}

// chromaToIntervals names the distance from the lowest pitch class of c to
// each of its pitch classes, lowest first.
func chromaToIntervals(c chroma.Chroma) []string {
	pcs := c.PitchClasses()
	res := make([]string, 0, len(pcs))
	if len(pcs) == 0 {
		return res
	}
	root := pcs[0]
	for _, pc := range pcs {
		res = append(res, pitch.IntervalName(pc-root))
	}
	return res
}
