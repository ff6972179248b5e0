package sample

import (
	"os"

	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

// MaxNoteEvents bounds how many note on/off messages each excerpt track keeps.
const MaxNoteEvents = 10

// Create cuts an excerpt of mf that starts at ticksOffset. Non-note events
// before the offset are kept and moved to the start so tempo and program
// changes still apply.
func Create(mf *smf.SMF, ticksOffset uint64) *smf.SMF {
	res := smf.New()
	res.TimeFormat = mf.TimeFormat

	for _, track := range mf.Tracks {
		var newTrack smf.Track
		var absTicks, lastTicks uint64
		var numNoteOnOff int
	TrackEventLoop:
		for _, evt := range track {
			absTicks += uint64(evt.Delta)
			msg := midi.Message(evt.Message)
			isNote := msg.Is(midi.NoteOnMsg) || msg.Is(midi.NoteOffMsg)
			if isEndOfTrack(evt.Message) || (isNote && absTicks < ticksOffset) {
				continue
			}

			var at uint64
			if absTicks > ticksOffset {
				at = absTicks - ticksOffset
			}
			newTrack.Add(uint32(at-lastTicks), evt.Message)
			lastTicks = at

			if isNote {
				numNoteOnOff++
				if numNoteOnOff >= MaxNoteEvents {
					break TrackEventLoop
				}
			}
		}
		newTrack.Close(0)
		res.Tracks = append(res.Tracks, newTrack)
	}

	return res
}

func isEndOfTrack(msg smf.Message) bool {
	return len(msg) >= 2 && msg[0] == 0xFF && msg[1] == 0x2F
}

func Write(mf *smf.SMF, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "could not create excerpt file")
	}
	defer f.Close()
	if _, err := mf.WriteTo(f); err != nil {
		return errors.Wrapf(err, "could not write excerpt %v", path)
	}
	return nil
}
