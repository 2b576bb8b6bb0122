// hypercells is the command-line front end of the quotient-sequence
// toolkit: building adjacency structures from quotient libraries,
// searching them for longest sequences, extending sequences by
// intersection, simplifying words, and managing the structure catalog.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
