package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcelolooser/HyperCells/adjacency"
	"github.com/marcelolooser/HyperCells/search"
)

var longestCmd = &cobra.Command{
	Use:   "longest <structure-file>",
	Short: "Find a longest quotient sequence in an adjacency structure",
	Long: `Search an exported adjacency structure for a maximum-length quotient
sequence. By default only mirror-symmetric quotients participate and the
sequence may start anywhere; both can be overridden.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start, _ := cmd.Flags().GetString("start")
		nonMirror, _ := cmd.Flags().GetBool("non-mirror-symmetric")

		st, err := adjacency.ImportFile(args[0])
		if err != nil {
			return err
		}

		var opts []search.Option
		if nonMirror {
			opts = append(opts, search.WithNonMirrorSymmetric())
		}
		if start != "" {
			id, err := parseQuotientID(start)
			if err != nil {
				return err
			}
			opts = append(opts, search.WithStartQuotient(id.Genus, id.Number))
		}

		path, err := search.Longest(st, opts...)
		if err != nil {
			return err
		}
		if len(path) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no sequence found")

			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatIDs(path))

		return nil
	},
}

func init() {
	longestCmd.Flags().String("start", "", "anchor the sequence at this quotient (genus,number)")
	longestCmd.Flags().Bool("non-mirror-symmetric", false, "include non-mirror-symmetric quotients")
	rootCmd.AddCommand(longestCmd)
}
