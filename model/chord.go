package model

import "github.com/jsphweid/pcset/chroma"

type Notes = []uint8

// ReducedEvent is a note on/off with an absolute offset in microseconds.
type ReducedEvent struct {
	Offset    int64
	Ticks     uint64
	IsNoteOff bool
	Note      uint8
}

// Chord is the set of keys sounding at one moment of a MIDI file.
type Chord struct {
	// millis from the start of the file
	Offset      uint32 `json:"offset"`
	TicksOffset uint64 `json:"ticksOffset"`
	Notes       Notes  `json:"notes"`
	FileNum     uint32 `json:"fileNum"`

	FormedByNoteOn bool          `json:"formedByNoteOn"`
	Chroma         chroma.Chroma `json:"chroma"`
}

type FileNumToMidiPath = map[uint32]string
