package cmd

import (
	"os"
	"os/signal"
	"sync"

	"github.com/bep/debounce"
	"github.com/jsphweid/pcset/chord"
	"github.com/jsphweid/pcset/constants"
	"github.com/jsphweid/pcset/pcset"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver
)

var midiPort int

func init() {
	rootCmd.AddCommand(listenCmd)
	listenCmd.Flags().IntVar(&midiPort, "port", constants.GetMidiPort(), "MIDI input port number")
}

// heldNotes tracks the keys currently down. MIDI callbacks and the debounced
// reporter run on different goroutines.
type heldNotes struct {
	mu sync.Mutex
	on chord.OnNotes
}

func newHeldNotes() *heldNotes {
	return &heldNotes{on: make(chord.OnNotes)}
}

func (h *heldNotes) press(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.on[key] = true
}

func (h *heldNotes) release(key uint8) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.on, key)
}

func (h *heldNotes) set() pcset.PcSet {
	h.mu.Lock()
	defer h.mu.Unlock()
	return pcset.FromChroma(chord.OnNotesChroma(h.on))
}

func listen(port int) error {
	defer midi.CloseDriver()
	in, err := midi.InPort(port)
	if err != nil {
		return errors.Wrapf(err, "can't find MIDI input port %d", port)
	}

	held := newHeldNotes()
	debounced := debounce.New(constants.GetDebounce())
	report := func() {
		set := held.set()
		logrus.WithFields(logrus.Fields{
			"chroma":     set.Chroma.String(),
			"normalized": set.Normalized.String(),
			"intervals":  set.Intervals,
		}).Info("held notes")
	}

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			held.press(key)
			debounced(report)
		case msg.GetNoteEnd(&ch, &key):
			held.release(key)
			debounced(report)
		default:
			// ignore
		}
	})
	if err != nil {
		return errors.Wrap(err, "could not listen to MIDI input")
	}
	defer stop()

	logrus.WithField("port", in.String()).Info("listening, ctrl-c to stop")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt)
	<-sig
	return nil
}

var listenCmd = &cobra.Command{
	Use:   "listen",
	Short: "Prints the pitch-class set of the keys held on a MIDI input",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listen(midiPort)
	},
}
