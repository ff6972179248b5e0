package pcset

import (
	"testing"

	"github.com/jsphweid/pcset/chroma"
	"github.com/stretchr/testify/assert"
)

func TestIsSubsetOf(t *testing.T) {
	assert := assert.New(t)
	isInCMajor := IsSubsetOf(split("c4 e6 g"))
	assert.True(isInCMajor(split("c2 g7")))
	assert.True(isInCMajor(split("c2 e")))
	assert.False(isInCMajor(split("c2 e3 g4")))
	assert.False(isInCMajor(split("c2 e3 b5")))
	assert.True(IsSubsetOf(split("c d e"))(Notes{"C", "D"}))
	assert.True(IsSubsetOf(Notes{"c", "e", "g"})(Notes{"c", "g"}))
	assert.False(IsSubsetOf(Notes{"c", "e", "g"})(Notes{"c", "e", "g"}))
}

func TestIsSubsetOfWithChroma(t *testing.T) {
	assert := assert.New(t)
	isSubset := IsSubsetOf(Binary("101010101010"))
	assert.True(isSubset(Binary("101000000000")))
	assert.False(isSubset(Binary("111000000000")))
	assert.True(isSubset(split("c d")))
	assert.True(IsSubsetOf(split("c d e f#"))(Binary("101000000000")))
}

func TestIsSupersetOf(t *testing.T) {
	assert := assert.New(t)
	extendsCMajor := IsSupersetOf(Notes{"c", "e", "g"})
	assert.True(extendsCMajor(split("c2 g3 e4 f5")))
	assert.False(extendsCMajor(split("e c g")))
	assert.False(extendsCMajor(split("c e f")))
	assert.True(IsSupersetOf(Notes{"c", "d"})(Notes{"c", "d", "e"}))
}

func TestIsSupersetOfWithChroma(t *testing.T) {
	assert := assert.New(t)
	isSuperset := IsSupersetOf(Binary("101000000000"))
	assert.True(isSuperset(Binary("101010101010")))
	assert.False(isSuperset(Binary("110010101010")))
}

func TestStrictRelationsAreIrreflexive(t *testing.T) {
	for n := 1; n <= chroma.MaxSetNum; n++ {
		s := SetNum(n)
		if IsSubsetOf(s)(s) || IsSupersetOf(s)(s) {
			t.Fatalf("%d is related to itself", n)
		}
	}
}

func TestEmptyReference(t *testing.T) {
	assert := assert.New(t)
	assert.False(IsSubsetOf(Notes{})(Notes{}))
	assert.False(IsSubsetOf(Binary("blah"))(Notes{"c"}))
	assert.False(IsSupersetOf(Notes{})(Notes{"c"}))
	assert.True(IsSubsetOf(Notes{"c"})(Notes{}))
}

func TestIsEqual(t *testing.T) {
	assert := assert.New(t)
	assert.True(IsEqual(split("c2 d3 e7 f5"), split("c4 c d5 e6 f1")))
	assert.True(IsEqual(split("c f"), split("c4 c f1")))
	assert.True(IsEqual(split("c e g"), Binary("100010010000")))
	assert.True(IsEqual(SetNum(2048), Notes{"B#"}))
	assert.False(IsEqual(split("c e g"), split("c eb g")))
}

func TestIsNoteIncludedInSet(t *testing.T) {
	assert := assert.New(t)
	isIncludedInC := IsNoteIncludedInSet(Notes{"c", "d", "e"})
	assert.True(isIncludedInC("C4"))
	assert.True(isIncludedInC("c"))
	assert.False(isIncludedInC("C#4"))
	assert.False(isIncludedInC("blah"))
	assert.False(IsNoteIncludedInSet(Notes{})("C"))
}

func TestFilter(t *testing.T) {
	assert := assert.New(t)
	inCMajor := Filter(split("c d e"))
	assert.Equal([]string{"c2", "d2", "c3", "d3"}, inCMajor(split("c2 c#2 d2 c3 c#3 d3")))
	assert.Equal([]string{"c2", "c3"}, Filter(split("c"))(split("c2 c#2 d2 c3 c#3 d3")))
	assert.Equal([]string{}, Filter(Notes{})(split("c d")))
	assert.Equal([]string{}, inCMajor(nil))
}
