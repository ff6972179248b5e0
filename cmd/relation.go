package cmd

import (
	"fmt"
	"strings"

	"github.com/jsphweid/pcset/model"
	"github.com/jsphweid/pcset/pcset"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var ErrUnknownRelation = errors.New("unknown relation")

func init() {
	rootCmd.AddCommand(relationCmd, filterCmd)
}

// relate applies a named relation. For "includes" the candidate is a single
// note name.
func relate(op, reference, candidate string) (bool, error) {
	ref := pcset.ParseInput(reference)
	switch op {
	case "subset":
		return pcset.IsSubsetOf(ref)(pcset.ParseInput(candidate)), nil
	case "superset":
		return pcset.IsSupersetOf(ref)(pcset.ParseInput(candidate)), nil
	case "equal":
		return pcset.IsEqual(ref, pcset.ParseInput(candidate)), nil
	case "includes":
		return pcset.IsNoteIncludedInSet(ref)(candidate), nil
	}
	return false, errors.Wrapf(ErrUnknownRelation, "%q", op)
}

var relationCmd = &cobra.Command{
	Use:   "relation <subset|superset|equal|includes> <reference> <candidate>",
	Short: "Tests how a candidate set relates to a reference set",
	Long: `Tests how a candidate set relates to a reference set. subset and superset
are strict: a set is neither a subset nor a superset of itself. Sets with
several notes need quoting or commas: pcset relation subset "c e g" c,g`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := relate(args[0], args[1], args[2])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), model.RelationResponse{Op: args[0], Result: res})
	},
}

var filterCmd = &cobra.Command{
	Use:   "filter <reference> <notes...>",
	Short: "Keeps the notes that belong to the reference set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kept := pcset.Filter(pcset.ParseInput(args[0]))(args[1:])
		_, err := fmt.Fprintln(cmd.OutOrStdout(), strings.Join(kept, " "))
		return err
	},
}
