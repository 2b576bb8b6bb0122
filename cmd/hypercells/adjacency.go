package main

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/marcelolooser/HyperCells/adjacency"
	"github.com/marcelolooser/HyperCells/catalog"
	"github.com/marcelolooser/HyperCells/triangle"
)

var adjacencyCmd = &cobra.Command{
	Use:   "adjacency <library-file>",
	Short: "Build the adjacency structure of a quotient library",
	Long: `Build the quotient-sequences adjacency structure of the library:
the full normal-containment matrix, its nearest-neighbor (covering)
reduction, and the mirror-symmetry flags. The structure is written in
the canonical text encoding to stdout, a file, or the catalog.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bound, _ := cmd.Flags().GetInt("bound")
		sparse, _ := cmd.Flags().GetBool("sparse")
		output, _ := cmd.Flags().GetString("output")
		catalogDir, _ := cmd.Flags().GetString("catalog")

		lib, err := triangle.LoadLibrary(args[0])
		if err != nil {
			return err
		}

		opts := []adjacency.Option{adjacency.WithGenusBound(bound)}
		if sparse {
			opts = append(opts, adjacency.WithSparse())
		}
		st, err := adjacency.Build(lib, triangle.ZOracle{}, lib.Signature(), opts...)
		if err != nil {
			return err
		}
		log.Debugf("built structure: %d quotients of %s", st.Len(), st.Signature())

		if catalogDir != "" {
			store, err := catalog.Open(catalogDir)
			if err != nil {
				return err
			}
			defer store.Close()
			if err := store.Put(st); err != nil {
				return err
			}
		}
		if output != "" {
			return st.ExportFile(output)
		}
		if catalogDir != "" {
			return nil
		}

		return st.ExportTo(cmd.OutOrStdout())
	},
}

func init() {
	adjacencyCmd.Flags().Int("bound", adjacency.DefaultGenusBound, "genus bound of the structure")
	adjacencyCmd.Flags().Bool("sparse", false, "serialize matrices in sparse encoding")
	adjacencyCmd.Flags().StringP("output", "o", "", "write the structure to a file instead of stdout")
	adjacencyCmd.Flags().String("catalog", "", "store the structure in the catalog at this directory")
	rootCmd.AddCommand(adjacencyCmd)
}
