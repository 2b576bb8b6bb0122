package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcelolooser/HyperCells/adjacency"
	"github.com/marcelolooser/HyperCells/sequence"
	"github.com/marcelolooser/HyperCells/triangle"
)

var extendCmd = &cobra.Command{
	Use:   "extend <library-file>",
	Short: "Extend a quotient sequence by subgroup intersection",
	Long: `Grow a quotient sequence past the library by intersecting translation
subgroups. The sequence starts at the quotient named by --start and is
extended with the library's quotients, either greedily left to right or,
with --minimal-index, one minimal-index step at a time.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetString("start")
		bound, _ := cmd.Flags().GetInt("bound")
		minimal, _ := cmd.Flags().GetBool("minimal-index")
		steps, _ := cmd.Flags().GetInt("steps")

		lib, err := triangle.LoadLibrary(args[0])
		if err != nil {
			return err
		}
		candidates, err := lib.ListQuotients(lib.Signature(), bound)
		if err != nil {
			return err
		}

		id, err := parseQuotientID(start)
		if err != nil {
			return err
		}
		var seed sequence.Sequence
		for _, q := range candidates {
			if q.ID() == id {
				seed = sequence.Sequence{q}

				break
			}
		}
		if seed == nil {
			return fmt.Errorf("quotient %s not in library", id)
		}

		oracle := triangle.ZOracle{}
		var out sequence.Sequence
		if minimal {
			out, err = sequence.ExtendMinimalIndex(oracle, candidates, seed, steps)
		} else {
			out, err = sequence.Extend(oracle, candidates, seed)
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), formatIDs(out.IDs()))

		return nil
	},
}

func init() {
	extendCmd.Flags().String("start", "", "seed quotient of the sequence (genus,number)")
	extendCmd.Flags().Int("bound", adjacency.DefaultGenusBound, "genus bound on the candidate quotients")
	extendCmd.Flags().Bool("minimal-index", false, "take minimal intersection-index steps")
	extendCmd.Flags().Int("steps", 0, "stop after this many appends (0 means until stalled)")
	_ = extendCmd.MarkFlagRequired("start")
	rootCmd.AddCommand(extendCmd)
}
