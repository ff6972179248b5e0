package chroma

// Normalize returns the rotation of c with the smallest set number. Two
// chromas normalize to the same value iff one is a transposition of the
// other. Inversions are not identified.
//
// Symmetric chromas (whole tone, diminished, augmented...) reach the minimum
// at several rotations; the scan keeps the first, i.e. the smallest rotation
// amount.
func Normalize(c Chroma) Chroma {
	best := c & mask
	for k := 1; k < Size; k++ {
		if r := c.Rotate(k); r < best {
			best = r
		}
	}
	return best
}

func (c Chroma) Normalized() Chroma {
	return Normalize(c)
}
