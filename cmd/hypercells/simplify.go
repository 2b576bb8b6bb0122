package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcelolooser/HyperCells/simplify"
	"github.com/marcelolooser/HyperCells/word"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify <word>",
	Short: "Simplify a word over a finitely presented group",
	Long: `Shorten a word in generator notation (x1*x2^-1) over the group given
by --generators and the --relator flags. Brute force enumerates every
shorter word; knuth-bendix rewrites to a normal form under a completed
rewrite system.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		generators, _ := cmd.Flags().GetInt("generators")
		relators, _ := cmd.Flags().GetStringArray("relator")
		methodName, _ := cmd.Flags().GetString("method")
		maxLength, _ := cmd.Flags().GetInt("max-length")

		method, err := simplify.ParseMethod(methodName)
		if err != nil {
			return err
		}

		p := word.Presentation{Generators: generators}
		for _, r := range relators {
			rel, err := word.Parse(r)
			if err != nil {
				return err
			}
			p.Relators = append(p.Relators, rel)
		}
		if err := p.Validate(); err != nil {
			return err
		}

		w, err := word.Parse(args[0])
		if err != nil {
			return err
		}

		got := simplify.Simplify(p, w,
			simplify.WithMethod(method),
			simplify.WithMaxLength(maxLength))
		fmt.Fprintln(cmd.OutOrStdout(), got)

		return nil
	},
}

func init() {
	simplifyCmd.Flags().Int("generators", 1, "generator count of the presentation")
	simplifyCmd.Flags().StringArray("relator", nil, "relator in generator notation (repeatable)")
	simplifyCmd.Flags().String("method", simplify.BruteForce.String(), "simplification method: brute-force or knuth-bendix")
	simplifyCmd.Flags().Int("max-length", simplify.DefaultMaxLength, "effort bound (0 disables, negative tracks the word length)")
	rootCmd.AddCommand(simplifyCmd)
}
