package chord

import (
	"fmt"
	"sort"

	"github.com/jsphweid/pcset/chroma"
	"github.com/jsphweid/pcset/constants"
	"github.com/jsphweid/pcset/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

type OnNotes = map[uint8]bool

func CreateChordKey(notes []uint8) string {
	sorted := append([]uint8(nil), notes...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	var res string
	for i, note := range sorted {
		res += fmt.Sprintf("%v", note)
		if i < len(sorted)-1 {
			res += "-"
		}
	}
	return res
}

// Chroma folds MIDI keys into pitch classes.
func Chroma(keys []uint8) chroma.Chroma {
	pcs := make([]int, len(keys))
	for i, k := range keys {
		pcs[i] = int(k)
	}
	return chroma.FromPitchClasses(pcs...)
}

func OnNotesChroma(on OnNotes) chroma.Chroma {
	keys := make([]uint8, 0, len(on))
	for k, pressed := range on {
		if pressed {
			keys = append(keys, k)
		}
	}
	return Chroma(keys)
}

func getChord(pressed map[uint8]int64, evt model.ReducedEvent) model.Chord {
	notes := make(model.Notes, 0, len(pressed))
	for note := range pressed {
		notes = append(notes, note)
	}
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})

	return model.Chord{
		// millis is plenty and keeps offsets in 32 bits
		Offset:         uint32(evt.Offset / 1000),
		TicksOffset:    evt.Ticks,
		Notes:          notes,
		FormedByNoteOn: !evt.IsNoteOff,
		Chroma:         Chroma(notes),
	}
}

// ReduceEvents flattens every track into note on/off events with absolute
// offsets, sorted by time with note offs first.
func ReduceEvents(s *smf.SMF) []model.ReducedEvent {
	var reducedEvents []model.ReducedEvent

	for _, events := range s.Tracks {
		var absTicks int64
		for _, event := range events {
			absTicks += int64(event.Delta)
			msg := midi.Message(event.Message)
			var channel, key, velocity uint8
			switch {
			case msg.GetNoteStart(&channel, &key, &velocity):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset: s.TimeAt(absTicks),
					Ticks:  uint64(absTicks),
					Note:   key,
				})
			case msg.GetNoteEnd(&channel, &key):
				reducedEvents = append(reducedEvents, model.ReducedEvent{
					Offset:    s.TimeAt(absTicks),
					Ticks:     uint64(absTicks),
					IsNoteOff: true,
					Note:      key,
				})
			}
		}
	}

	// prioritize smaller offset values then note off
	sort.SliceStable(reducedEvents, func(i, j int) bool {
		if reducedEvents[i].Offset != reducedEvents[j].Offset {
			return reducedEvents[i].Offset < reducedEvents[j].Offset
		}
		return reducedEvents[i].IsNoteOff && !reducedEvents[j].IsNoteOff
	})
	return reducedEvents
}

// Snapshots replays sorted events and returns the keys held after the last
// event of every distinct offset, in time order. Silent moments and chords
// outside the configured size bounds are dropped.
func Snapshots(events []model.ReducedEvent) []model.Chord {
	var chords []model.Chord
	pressed := make(map[uint8]int64)

	for i, evt := range events {
		if evt.IsNoteOff {
			delete(pressed, evt.Note)
		} else {
			pressed[evt.Note] = evt.Offset
		}

		isLastAtOffset := i == len(events)-1 || events[i+1].Offset != evt.Offset
		if !isLastAtOffset {
			continue
		}
		if len(pressed) < constants.MinChordSize || len(pressed) > constants.MaxChordSize {
			continue
		}
		chords = append(chords, getChord(pressed, evt))
	}
	return chords
}

func GetChords(s *smf.SMF) ([]model.Chord, error) {
	if s == nil {
		return nil, errors.New("no midi data")
	}
	return Snapshots(ReduceEvents(s)), nil
}

// Group buckets chords by the normalized form of their chroma, so that
// transpositions of the same shape land together.
func Group(chords []model.Chord) map[chroma.Chroma][]model.Chord {
	res := make(map[chroma.Chroma][]model.Chord)
	for _, c := range chords {
		key := chroma.Normalize(c.Chroma)
		res[key] = append(res[key], c)
	}
	return res
}
