package cmd

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/jsphweid/pcset/chord"
	"github.com/jsphweid/pcset/file"
	"github.com/jsphweid/pcset/midi"
	"github.com/jsphweid/pcset/model"
	"github.com/jsphweid/pcset/pcset"
	"github.com/jsphweid/pcset/pitch"
	"github.com/jsphweid/pcset/sample"
	"github.com/jsphweid/pcset/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	groupChords bool
	scanLimit   int
	maxFiles    int
	excerptDir  string
)

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().BoolVar(&groupChords, "group", false, "group chords by normalized chroma instead of listing them in time order")
	scanCmd.Flags().IntVar(&scanLimit, "limit", 0, "print at most this many entries (0 prints all)")
	scanCmd.Flags().IntVar(&maxFiles, "max-files", 0, "read at most this many midi files (0 reads all)")
	scanCmd.Flags().StringVar(&excerptDir, "excerpts", "", "write a short midi excerpt of the first occurrence of every normalized set to this directory")
}

type scannedChord struct {
	File         string      `json:"file"`
	Offset       uint32      `json:"offset"`
	Key          string      `json:"key"`
	Notes        []string    `json:"notes"`
	PitchClasses []string    `json:"pitchClasses"`
	Set          pcset.PcSet `json:"set"`
}

type chordGroup struct {
	Normalized string   `json:"normalized"`
	Intervals  []string `json:"intervals"`
	Count      int      `json:"count"`
	Files      []string `json:"files"`
}

func describeChord(c model.Chord, files model.FileNumToMidiPath) scannedChord {
	names := make([]string, len(c.Notes))
	classes := make([]string, len(c.Notes))
	for i, n := range c.Notes {
		names[i] = pitch.FromMidi(n)
		classes[i] = strings.TrimRight(names[i], "-0123456789")
	}
	return scannedChord{
		File:         files[c.FileNum],
		Offset:       c.Offset,
		Key:          chord.CreateChordKey(c.Notes),
		Notes:        names,
		PitchClasses: util.Dedupe(classes),
		Set:          pcset.FromChroma(c.Chroma),
	}
}

func groupScanned(chords []model.Chord, files model.FileNumToMidiPath) []chordGroup {
	groups := chord.Group(chords)
	var res []chordGroup
	for _, key := range util.SortedKeys(groups) {
		members := groups[key]
		g := chordGroup{
			Normalized: key.String(),
			Intervals:  pcset.FromChroma(key).Intervals,
			Count:      len(members),
		}
		var names []string
		for _, m := range members {
			names = append(names, files[m.FileNum])
		}
		g.Files = util.Dedupe(names)
		res = append(res, g)
	}
	return res
}

func limit[A any](vals []A, n int) []A {
	if n <= 0 {
		return vals
	}
	return vals[:util.Min(n, len(vals))]
}

// scanFiles reads every file, skipping the ones that fail to parse. It only
// fails when nothing could be read.
func scanFiles(files model.FileNumToMidiPath) ([]model.Chord, error) {
	var res []model.Chord
	var lastErr error
	read := 0
	for _, num := range util.SortedKeys(files) {
		path := files[num]
		parsed, err := midi.ReadMidiFile(path)
		if err == nil {
			var chords []model.Chord
			chords, err = chord.GetChords(parsed)
			for _, c := range chords {
				c.FileNum = num
				res = append(res, c)
			}
		}
		if err != nil {
			logrus.WithError(err).Warnf("Skipping %v", path)
			lastErr = err
			continue
		}
		read++

		sizes := make([]int, 0, len(res))
		for _, c := range res {
			if c.FileNum == num {
				sizes = append(sizes, len(c.Notes))
			}
		}
		logrus.WithFields(logrus.Fields{
			"file":   path,
			"chords": len(sizes),
			"keys":   util.Sum(sizes),
		}).Debugf("Processed %v of %v midi files", num+1, len(files))
	}
	if read == 0 && lastErr != nil {
		return nil, errors.Wrap(lastErr, "no midi file could be read")
	}
	return res, nil
}

// writeExcerpts writes <normalized chroma>.mid for every group, cut from the
// file of the group's first chord.
func writeExcerpts(dir string, chords []model.Chord, files model.FileNumToMidiPath) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, "could not create excerpt directory")
	}
	groups := chord.Group(chords)
	for _, key := range util.SortedKeys(groups) {
		first := groups[key][0]
		mf, err := midi.ReadMidiFile(files[first.FileNum])
		if err != nil {
			return err
		}
		path := filepath.Join(dir, key.String()+".mid")
		if err := sample.Write(sample.Create(mf, first.TicksOffset), path); err != nil {
			return err
		}
		logrus.WithField("path", path).Debug("wrote excerpt")
	}
	return nil
}

var scanCmd = &cobra.Command{
	Use:   "scan <file.mid | dir>...",
	Short: "Lists the pitch-class sets sounding in MIDI files",
	Long: `Lists the pitch-class sets sounding in MIDI files. Directories are searched
for .mid and .midi files.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := file.GatherAllMidiPaths(args, maxFiles)
		if err != nil {
			return err
		}
		if len(paths) == 0 {
			return errors.New("no midi files found")
		}
		files := file.CreateFileNumMap(paths)
		chords, err := scanFiles(files)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"files":  len(files),
			"chords": len(chords),
		}).Info("scanned midi files")

		if excerptDir != "" {
			if err := writeExcerpts(excerptDir, chords, files); err != nil {
				return err
			}
		}

		if groupChords {
			return printJSON(cmd.OutOrStdout(), limit(groupScanned(chords, files), scanLimit))
		}
		res := make([]scannedChord, 0, len(chords))
		for _, c := range limit(chords, scanLimit) {
			res = append(res, describeChord(c, files))
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}
