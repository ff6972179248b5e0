// Package mode holds the seven diatonic modes as pitch-class sets.
package mode

import (
	"strings"

	"github.com/jsphweid/pcset/chroma"
	"github.com/jsphweid/pcset/pcset"
	"github.com/jsphweid/pcset/pitch"
)

type Mode struct {
	pcset.PcSet
	ModeNum int `json:"modeNum"`
	// number of alterations, counted in fifths from ionian
	Alt     int      `json:"alt"`
	Triad   string   `json:"triad"`
	Seventh string   `json:"seventh"`
	Ninth   string   `json:"ninth"`
	Aliases []string `json:"aliases"`
}

type record struct {
	modeNum int
	setNum  int
	alt     int
	name    string
	triad   string
	seventh string
	ninth   string
	alias   string
}

var records = []record{
	{modeNum: 0, setNum: 2773, alt: 0, name: "ionian", triad: "", seventh: "Maj7", ninth: "Maj9", alias: "major"},
	{modeNum: 1, setNum: 2902, alt: 2, name: "dorian", triad: "m", seventh: "m7", ninth: "m9"},
	{modeNum: 2, setNum: 3418, alt: 4, name: "phrygian", triad: "m", seventh: "m7", ninth: "m9"},
	{modeNum: 3, setNum: 2741, alt: -1, name: "lydian", triad: "", seventh: "Maj7", ninth: "Maj9"},
	{modeNum: 4, setNum: 2774, alt: 1, name: "mixolydian", triad: "", seventh: "7", ninth: "9"},
	{modeNum: 5, setNum: 2906, alt: 3, name: "aeolian", triad: "m", seventh: "m7", ninth: "m9", alias: "minor"},
	{modeNum: 6, setNum: 3434, alt: 5, name: "locrian", triad: "dim", seventh: "m7b5", ninth: "M6#11"},
}

var NoMode = Mode{
	PcSet:   pcset.EmptyPcSet,
	ModeNum: -1,
	Aliases: []string{},
}

var modes, index = build(records)

func build(recs []record) ([]Mode, map[string]Mode) {
	all := make([]Mode, 0, len(recs))
	idx := make(map[string]Mode)
	for _, r := range recs {
		c, err := chroma.FromSetNum(r.setNum)
		if err != nil {
			panic("bad mode table entry " + r.name + ": " + err.Error())
		}
		m := Mode{
			PcSet:   pcset.FromChroma(c),
			ModeNum: r.modeNum,
			Alt:     r.alt,
			Triad:   r.triad,
			Seventh: r.seventh,
			Ninth:   r.ninth,
			Aliases: []string{},
		}
		m.Name = r.name
		if r.alias != "" {
			m.Aliases = append(m.Aliases, r.alias)
		}
		all = append(all, m)
		idx[strings.ToLower(m.Name)] = m
		for _, alias := range m.Aliases {
			idx[strings.ToLower(alias)] = m
		}
	}
	return all, idx
}

// Get looks a mode up by name or alias, ignoring case. Unknown names give
// NoMode.
func Get(name string) Mode {
	if m, ok := index[strings.ToLower(strings.TrimSpace(name))]; ok {
		return m
	}
	return NoMode
}

func All() []Mode {
	res := make([]Mode, len(modes))
	copy(res, modes)
	return res
}

func Names() []string {
	res := make([]string, len(modes))
	for i, m := range modes {
		res[i] = m.Name
	}
	return res
}

// Notes spells the mode from tonic. An unknown mode or tonic gives no notes.
func Notes(name, tonic string) []string {
	m := Get(name)
	res := []string{}
	if m.Empty {
		return res
	}
	for _, ivl := range m.Intervals {
		n, ok := pitch.Transpose(tonic, ivl)
		if !ok {
			return []string{}
		}
		res = append(res, n)
	}
	return res
}

func chords(quality func(record) string) func(name, tonic string) []string {
	qualities := make([]string, len(records))
	for i, r := range records {
		qualities[i] = quality(r)
	}
	return func(name, tonic string) []string {
		m := Get(name)
		tonics := Notes(name, tonic)
		res := make([]string, len(tonics))
		for i, t := range tonics {
			res[i] = t + qualities[(i+m.ModeNum)%len(qualities)]
		}
		return res
	}
}

var (
	Triads        = chords(func(r record) string { return r.triad })
	SeventhChords = chords(func(r record) string { return r.seventh })
	NinthChords   = chords(func(r record) string { return r.ninth })
)

// Distance is the interval from the tonic of source to the tonic of
// destination when both share a key signature, e.g. major to minor is 6M.
func Distance(destination, source string) string {
	from, to := Get(source), Get(destination)
	if from.Empty || to.Empty {
		return ""
	}
	return pitch.IntervalFromFifths(to.Alt - from.Alt)
}

// RelativeTonic transposes tonic from source to the relative destination
// mode: RelativeTonic("minor", "major", "C") is "A".
func RelativeTonic(destination, source, tonic string) string {
	d := Distance(destination, source)
	if d == "" {
		return ""
	}
	res, ok := pitch.Transpose(tonic, d)
	if !ok {
		return ""
	}
	return res
}
