package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/marcelolooser/HyperCells/adjacency"
	"github.com/marcelolooser/HyperCells/catalog"
	"github.com/marcelolooser/HyperCells/triangle"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the adjacency-structure catalog",
}

var catalogPutCmd = &cobra.Command{
	Use:   "put <structure-file>",
	Short: "Store an exported structure in the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := adjacency.ImportFile(args[0])
		if err != nil {
			return err
		}

		store, err := openCatalog(cmd, false)
		if err != nil {
			return err
		}
		defer store.Close()

		return store.Put(st)
	},
}

var catalogGetCmd = &cobra.Command{
	Use:   "get <p> <q> <r> <bound>",
	Short: "Print a stored structure in the canonical text encoding",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		sig, err := parseSignature(args[:3])
		if err != nil {
			return err
		}
		bound, err := strconv.Atoi(args[3])
		if err != nil {
			return fmt.Errorf("bad bound %q", args[3])
		}

		store, err := openCatalog(cmd, true)
		if err != nil {
			return err
		}
		defer store.Close()

		st, ok, err := store.Get(sig, bound)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no structure for %s bound %d", sig, bound)
		}

		return st.ExportTo(cmd.OutOrStdout())
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list <p> <q> <r>",
	Short: "List the stored genus bounds of a signature",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		sig, err := parseSignature(args)
		if err != nil {
			return err
		}

		store, err := openCatalog(cmd, true)
		if err != nil {
			return err
		}
		defer store.Close()

		bounds, err := store.Bounds(sig)
		if err != nil {
			return err
		}
		for _, b := range bounds {
			fmt.Fprintf(cmd.OutOrStdout(), "%s bound %d\n", sig, b)
		}

		return nil
	},
}

// openCatalog opens the store named by the persistent --path flag.
func openCatalog(cmd *cobra.Command, readOnly bool) (*catalog.Store, error) {
	path, _ := cmd.Flags().GetString("path")

	var opts []catalog.Option
	if readOnly {
		opts = append(opts, catalog.WithReadOnly())
	}

	return catalog.Open(path, opts...)
}

// parseSignature reads three integer arguments as a signature.
func parseSignature(args []string) (triangle.Signature, error) {
	vals := make([]int, 3)
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return triangle.Signature{}, fmt.Errorf("bad signature component %q", a)
		}
		vals[i] = v
	}

	return triangle.Signature{P: vals[0], Q: vals[1], R: vals[2]}, nil
}

func init() {
	catalogCmd.PersistentFlags().String("path", "", "catalog directory (empty means in-memory)")
	catalogCmd.AddCommand(catalogPutCmd, catalogGetCmd, catalogListCmd)
	rootCmd.AddCommand(catalogCmd)
}
