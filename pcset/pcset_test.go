package pcset

import (
	"strings"
	"testing"

	"github.com/jsphweid/pcset/chroma"
	"github.com/stretchr/testify/assert"
)

func split(s string) Notes {
	return Notes(strings.Split(s, " "))
}

func TestGetFromNoteList(t *testing.T) {
	assert := assert.New(t)
	want := PcSet{
		Empty:      false,
		Name:       "",
		SetNum:     2688,
		Chroma:     chroma.FromPitchClasses(0, 2, 4),
		Normalized: chroma.FromPitchClasses(7, 9, 11),
		Intervals:  []string{"1P", "2M", "3M"},
	}
	assert.Equal(want, Get(Notes{"c", "d", "e"}))
	assert.Equal(Get(Notes{"c", "d", "e"}), Get(Notes{"d", "e", "c"}))
	assert.Equal(Get(Notes{"c", "d", "e"}), Get(Notes{"c2", "d3", "e7"}))
	assert.Equal(Get(Notes{"c", "d", "e"}), Get(Notes{"e", "c4", "d", "C", "e1"}))
	assert.True(Get(Notes{"not a note or interval"}).Empty)
	assert.True(Get(Notes{}).Empty)
	assert.True(Get(nil).Empty)
}

func TestGetFromSetNum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Get(Notes{"C"}), Get(SetNum(2048)))
	assert.True(Get(SetNum(4096)).Empty)
	assert.True(Get(SetNum(-1)).Empty)
	assert.True(Get(SetNum(0)).Empty)
}

func TestSetNum(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(1, Get(Binary("000000000001")).SetNum)
	assert.Equal(1, Get(Notes{"B"}).SetNum)
	assert.Equal(1, Get(Notes{"Cb"}).SetNum)
	assert.Equal(2048, Get(Notes{"C"}).SetNum)
	assert.Equal(2048, Get(Binary("100000000000")).SetNum)
	assert.Equal(4095, Get(Binary("111111111111")).SetNum)
}

func TestNormalized(t *testing.T) {
	assert := assert.New(t)
	likeC := Get(Notes{"C"}).Normalized
	for _, pc := range strings.Split("cdefgab", "") {
		assert.Equal(likeC, Get(Notes{pc}).Normalized, pc)
	}
	assert.Equal(Get(Notes{"C", "D"}).Normalized, Get(Notes{"E", "F#"}).Normalized)
	assert.NotEqual(Get(split("c e g")).Normalized, Get(split("c eb g")).Normalized)
}

func TestChroma(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("100000000000", ChromaOf(Notes{"C"}))
	assert.Equal("001000000000", ChromaOf(Notes{"D"}))
	assert.Equal("101010000000", ChromaOf(split("c d e")))
	assert.Equal("000000011110", ChromaOf(split("g g#4 a bb5")))
	assert.Equal(ChromaOf(split("c d e f g a b")), ChromaOf(split("P1 M2 M3 P4 P5 M6 M7")))
	assert.Equal("101010101010", ChromaOf(Binary("101010101010")))
	assert.Equal("000000000000", ChromaOf(Notes{"one", "two"}))
	assert.Equal("000000000000", ChromaOf(Binary("A B C")))
}

func TestInvalidChroma(t *testing.T) {
	assert := assert.New(t)
	assert.Equal("000000000000", ChromaOf(Binary("1010101")))
	assert.Equal("000000000000", ChromaOf(Binary("blah")))
	assert.Equal("000000000000", ChromaOf(Binary("c d e")))
	assert.True(Get(Binary("1010")).Empty)
}

func TestChromas(t *testing.T) {
	assert := assert.New(t)
	all := Chromas()
	assert.Len(all, 2048)
	assert.Equal("100000000000", all[0])
	assert.Equal("111111111111", all[2047])
}

func TestIntervals(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(split("1P 2M 3M 5d 6m 7m"), Notes(Intervals(Binary("101010101010"))))
	assert.Equal([]string{}, Intervals(Binary("1010")))
	assert.Equal([]string{"1P"}, Intervals(Notes{"G"}))
	assert.Equal([]string{"1P", "3m", "5P"}, Intervals(split("D F A")))
	// measured from the lowest pitch class (D), not the first note given
	assert.Equal([]string{"1P", "3m", "4P", "6M"}, Intervals(split("g b d f")))
	assert.Equal([]string{"1P", "7M"}, Intervals(split("c b")))
}

func TestEmptyPcSet(t *testing.T) {
	assert := assert.New(t)
	assert.True(EmptyPcSet.Empty)
	assert.Equal(chroma.Empty, EmptyPcSet.Normalized)
	assert.NotNil(EmptyPcSet.Intervals)
	assert.Empty(EmptyPcSet.Intervals)
}

func TestParseInput(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Binary("101010000000"), ParseInput("101010000000"))
	assert.Equal(Binary("1010"), ParseInput(" 1010 "))
	assert.Equal(SetNum(2688), ParseInput("2688"))
	assert.Equal(Notes{"c", "d", "e"}, ParseInput("c d e"))
	assert.Equal(Notes{"c4", "e", "g"}, ParseInput("c4, e,g"))
	assert.Equal(Get(Notes{"c", "d", "e"}), Get(ParseInput("2688")))
	assert.True(Get(ParseInput("")).Empty)
	assert.True(Get(ParseInput("99999999999999999999999")).Empty)
}
