package pcset

import (
	"github.com/jsphweid/pcset/chroma"
	"github.com/jsphweid/pcset/pitch"
)

func IsEqual(a, b Input) bool {
	return Encode(a) == Encode(b)
}

// IsSubsetOf returns a test for proper subsets of ref. A set is never a
// subset of itself, and nothing is a subset of an empty ref.
func IsSubsetOf(ref Input) func(Input) bool {
	s := Encode(ref)
	return func(candidate Input) bool {
		return !s.IsEmpty() && Encode(candidate).IsSubsetOf(s)
	}
}

// IsSupersetOf returns a test for proper supersets of ref. A set is never a
// superset of itself, and nothing is a superset of an empty ref.
func IsSupersetOf(ref Input) func(Input) bool {
	s := Encode(ref)
	return func(candidate Input) bool {
		return !s.IsEmpty() && Encode(candidate).IsSupersetOf(s)
	}
}

// IsNoteIncludedInSet returns a test for whether a single note's pitch class
// belongs to ref. Unlike the subset tests this is not strict.
func IsNoteIncludedInSet(ref Input) func(string) bool {
	s := Encode(ref)
	return func(note string) bool {
		return includes(s, note)
	}
}

// Filter returns a function keeping, in order, the notes whose pitch class
// belongs to ref.
func Filter(ref Input) func([]string) []string {
	s := Encode(ref)
	return func(notes []string) []string {
		res := []string{}
		for _, n := range notes {
			if includes(s, n) {
				res = append(res, n)
			}
		}
		return res
	}
}

func includes(s chroma.Chroma, note string) bool {
	pc, ok := pitch.Chroma(note)
	return ok && s.Has(pc)
}
