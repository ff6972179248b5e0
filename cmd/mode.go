package cmd

import (
	"github.com/jsphweid/pcset/mode"
	"github.com/jsphweid/pcset/model"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var ErrUnknownMode = errors.New("unknown mode")

func init() {
	rootCmd.AddCommand(modeCmd)
}

func describeMode(name, tonic string) (model.ModeResponse, error) {
	m := mode.Get(name)
	if m.Empty {
		return model.ModeResponse{}, errors.Wrapf(ErrUnknownMode, "%q, expected one of %v", name, mode.Names())
	}
	res := model.ModeResponse{Mode: m}
	if tonic != "" {
		res.Notes = mode.Notes(name, tonic)
		res.Triads = mode.Triads(name, tonic)
		res.SeventhChords = mode.SeventhChords(name, tonic)
	}
	return res, nil
}

var modeCmd = &cobra.Command{
	Use:   "mode <name> [tonic]",
	Short: "Describes a diatonic mode, spelled from tonic if given",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var tonic string
		if len(args) == 2 {
			tonic = args[1]
		}
		res, err := describeMode(args[0], tonic)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), res)
	},
}
