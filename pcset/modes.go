package pcset

import "github.com/jsphweid/pcset/chroma"

// Modes rotates the set onto each of its own pitch classes, lowest first.
// With normalize set to false it returns all 12 rotations instead, including
// those that start on a pitch class outside the set. An empty set has no
// modes.
func Modes(in Input, normalize bool) []chroma.Chroma {
	c := Encode(in)
	res := []chroma.Chroma{}
	if c.IsEmpty() {
		return res
	}
	for k := 0; k < chroma.Size; k++ {
		if normalize && !c.Has(k) {
			continue
		}
		res = append(res, c.Rotate(k))
	}
	return res
}

// ModeStrings is Modes with each chroma formatted as a string.
func ModeStrings(in Input, normalize bool) []string {
	modes := Modes(in, normalize)
	res := make([]string, len(modes))
	for i, m := range modes {
		res[i] = m.String()
	}
	return res
}
