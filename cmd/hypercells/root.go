package main

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/marcelolooser/HyperCells/triangle"
)

var rootCmd = &cobra.Command{
	Use:          "hypercells",
	Short:        "Quotient sequences of hyperbolic triangle groups",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// parseQuotientID reads a "genus,number" flag value.
func parseQuotientID(s string) (triangle.QuotientID, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return triangle.QuotientID{}, fmt.Errorf("bad quotient %q (want genus,number)", s)
	}
	genus, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
	number, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err1 != nil || err2 != nil {
		return triangle.QuotientID{}, fmt.Errorf("bad quotient %q (want genus,number)", s)
	}

	return triangle.QuotientID{Genus: genus, Number: number}, nil
}

// formatIDs renders a sequence of identifiers on one line.
func formatIDs(ids []triangle.QuotientID) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id.String()
	}

	return strings.Join(parts, " ")
}
