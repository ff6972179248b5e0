package cmd

import (
	"strings"

	"github.com/jsphweid/pcset/model"
	"github.com/jsphweid/pcset/pcset"
	"github.com/spf13/cobra"
)

var allRotations bool

func init() {
	rootCmd.AddCommand(getCmd, chromasCmd, intervalsCmd, modesCmd)
	modesCmd.Flags().BoolVar(&allRotations, "all", false, "list all 12 rotations, not only those starting on a note of the set")
}

// argsInput joins the args so `pcset get c e g` and `pcset get "c e g"` agree.
func argsInput(args []string) pcset.Input {
	return pcset.ParseInput(strings.Join(args, " "))
}

var getCmd = &cobra.Command{
	Use:   "get <notes | chroma | set number>",
	Short: "Describes a pitch-class set",
	Long: `Describes a pitch-class set given as note or interval names ("c e g",
"1P 3M 5P"), a 12 digit chroma ("100010010000") or a set number (2192).`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(cmd.OutOrStdout(), pcset.Get(argsInput(args)))
	},
}

var chromasCmd = &cobra.Command{
	Use:   "chromas",
	Short: "Lists the 2048 chromas that contain C",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		for _, c := range pcset.Chromas() {
			if _, err := w.Write([]byte(c + "\n")); err != nil {
				return err
			}
		}
		return nil
	},
}

var intervalsCmd = &cobra.Command{
	Use:   "intervals <notes | chroma | set number>",
	Short: "Lists the intervals of a set from its lowest pitch class",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printJSON(cmd.OutOrStdout(), pcset.Intervals(argsInput(args)))
	},
}

var modesCmd = &cobra.Command{
	Use:   "modes <notes | chroma | set number>",
	Short: "Lists the modes (rotations) of a set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		in := argsInput(args)
		return printJSON(cmd.OutOrStdout(), model.ModesResponse{
			Input: pcset.Get(in),
			Modes: pcset.ModeStrings(in, !allRotations),
		})
	},
}
