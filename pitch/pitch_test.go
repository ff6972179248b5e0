package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteChroma(t *testing.T) {
	cases := map[string]int{
		"C":    0,
		"c":    0,
		"c2":   0,
		"B#":   0,
		"Cb":   11,
		"B":    11,
		"bb5":  10,
		"g#4":  8,
		"Dbb":  0,
		"cx":   2,
		"Fx3":  7,
		"a-1":  9,
		"E##":  6,
		"Gbbb": 4,
	}
	for name, want := range cases {
		t.Run(fmt.Sprintf("note %v", name), func(t *testing.T) {
			p, ok := Note(name)
			assert.True(t, ok)
			assert.Equal(t, want, p.Chroma())
		})
	}
}

func TestNoteRejects(t *testing.T) {
	for _, name := range []string{"", "H", "not a note", "c#b", "Cmaj7", "c d e", "#"} {
		_, ok := Note(name)
		assert.False(t, ok, name)
	}
}

func TestNoteOctave(t *testing.T) {
	assert := assert.New(t)
	p, _ := Note("C4")
	assert.True(p.HasOct)
	assert.Equal(4, p.Oct)

	p, _ = Note("D")
	assert.False(p.HasOct)
}

func TestIntervalChroma(t *testing.T) {
	cases := map[string]int{
		"1P":  0,
		"P1":  0,
		"2m":  1,
		"M2":  2,
		"3m":  3,
		"3M":  4,
		"4P":  5,
		"4A":  6,
		"5d":  6,
		"5P":  7,
		"6m":  8,
		"M6":  9,
		"7m":  10,
		"7M":  11,
		"8P":  0,
		"9M":  2,
		"-2M": 10,
		"P-5": 5,
		"3d":  2,
		"5AA": 9,
	}
	for name, want := range cases {
		t.Run(fmt.Sprintf("interval %v", name), func(t *testing.T) {
			p, ok := Interval(name)
			assert.True(t, ok)
			assert.Equal(t, want, p.Chroma())
		})
	}
}

func TestIntervalRejects(t *testing.T) {
	for _, name := range []string{"", "0P", "4M", "3P", "M4", "P3", "one", "two", "5X"} {
		_, ok := Interval(name)
		assert.False(t, ok, name)
	}
}

func TestChromaTriesNotesThenIntervals(t *testing.T) {
	assert := assert.New(t)
	c, ok := Chroma("E")
	assert.True(ok)
	assert.Equal(4, c)

	c, ok = Chroma("6M")
	assert.True(ok)
	assert.Equal(9, c)

	_, ok = Chroma("blah")
	assert.False(ok)
}

func TestIntervalName(t *testing.T) {
	assert := assert.New(t)
	var names []string
	for i := 0; i < 12; i++ {
		names = append(names, IntervalName(i))
	}
	assert.Equal([]string{"1P", "2m", "2M", "3m", "3M", "4P", "5d", "5P", "6m", "6M", "7m", "7M"}, names)
	assert.Equal("5d", IntervalName(6))
	assert.Equal("2M", IntervalName(14))
}
