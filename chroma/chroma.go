// Package chroma encodes pitch-class sets as 12-bit masks.
//
// Pitch class 0 (C) is the most significant bit, so the mask value of a
// Chroma is also its set number and its binary string reads left to right
// from C to B.
package chroma

import (
	"math/bits"
	"strings"

	"github.com/pkg/errors"
)

const (
	Size = 12

	// MaxSetNum is the set number of the full chromatic set.
	MaxSetNum = 1<<Size - 1

	mask = MaxSetNum
)

var ErrInvalidSetNumber = errors.New("invalid set number")

type Chroma uint16

const Empty Chroma = 0

// 2048 chromas with pitch class 0 set, ascending
var withRoot = func() []Chroma {
	res := make([]Chroma, 0, 1<<(Size-1))
	for n := 1 << (Size - 1); n <= MaxSetNum; n++ {
		res = append(res, Chroma(n))
	}
	return res
}()

func bit(pc int) Chroma {
	return 1 << (Size - 1 - pc)
}

func FromSetNum(n int) (Chroma, error) {
	if n < 0 || n > MaxSetNum {
		return Empty, errors.Wrapf(ErrInvalidSetNumber, "%d is outside [0, %d]", n, MaxSetNum)
	}
	return Chroma(n), nil
}

// FromPitchClasses sets one bit per pitch class. Values are taken modulo 12.
func FromPitchClasses(pcs ...int) Chroma {
	var c Chroma
	for _, pc := range pcs {
		c |= bit(((pc % Size) + Size) % Size)
	}
	return c
}

func IsValid(s string) bool {
	if len(s) != Size {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

func Parse(s string) (Chroma, bool) {
	if !IsValid(s) {
		return Empty, false
	}
	var c Chroma
	for i := 0; i < Size; i++ {
		if s[i] == '1' {
			c |= bit(i)
		}
	}
	return c, true
}

// Chromas returns every chroma that contains pitch class 0, in ascending set
// number order. The slice is a copy and may be modified by the caller.
func Chromas() []Chroma {
	res := make([]Chroma, len(withRoot))
	copy(res, withRoot)
	return res
}

func (c Chroma) SetNum() int {
	return int(c & mask)
}

func (c Chroma) IsEmpty() bool {
	return c&mask == 0
}

func (c Chroma) Has(pc int) bool {
	if pc < 0 || pc >= Size {
		return false
	}
	return c&bit(pc) != 0
}

func (c Chroma) Count() int {
	return bits.OnesCount16(uint16(c & mask))
}

// PitchClasses lists the active pitch classes in ascending order.
func (c Chroma) PitchClasses() []int {
	res := make([]int, 0, c.Count())
	for pc := 0; pc < Size; pc++ {
		if c.Has(pc) {
			res = append(res, pc)
		}
	}
	return res
}

// Rotate moves pitch class k to index 0, the same as rotating the binary
// string k places to the left.
func (c Chroma) Rotate(k int) Chroma {
	k = ((k % Size) + Size) % Size
	c &= mask
	return (c<<k | c>>(Size-k)) & mask
}

// Rotations returns the 12 rotations of c ordered by rotation amount.
func (c Chroma) Rotations() []Chroma {
	res := make([]Chroma, Size)
	for k := range res {
		res[k] = c.Rotate(k)
	}
	return res
}

func (c Chroma) Contains(other Chroma) bool {
	return c&other&mask == other&mask
}

// IsSubsetOf reports a proper subset: equal chromas are not subsets.
func (c Chroma) IsSubsetOf(other Chroma) bool {
	return c != other && other.Contains(c)
}

// IsSupersetOf reports a proper superset: equal chromas are not supersets.
func (c Chroma) IsSupersetOf(other Chroma) bool {
	return c != other && c.Contains(other)
}

func (c Chroma) String() string {
	var sb strings.Builder
	sb.Grow(Size)
	for pc := 0; pc < Size; pc++ {
		if c.Has(pc) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (c Chroma) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Chroma) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return errors.Errorf("invalid chroma %q", string(text))
	}
	*c = parsed
	return nil
}
