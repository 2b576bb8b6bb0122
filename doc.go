// Package hypercells is a toolkit for quotient sequences of hyperbolic
// triangle groups: enumerated quotients, their normal-containment
// structure, longest-sequence search, intersection-based extension, and
// word simplification over the group presentations.
//
// What lives where:
//
//	triangle/  - signatures, quotients, translation-subgroup handles, the
//	             Oracle and Library interfaces, the text library format
//	sequence/  - quotient-sequence validation and extension by subgroup
//	             intersection (greedy and minimal-index walks)
//	adjacency/ - the quotient-sequences structure: full and nearest-
//	             neighbor matrices, mirror flags, dense/sparse codec
//	search/    - longest-sequence search over a structure
//	word/      - free-group words, generator notation, presentations
//	simplify/  - word simplification: brute force and Knuth-Bendix
//	catalog/   - embedded key-value catalog of exported structures
//	cmd/       - the hypercells command-line front end
//
// The typical pipeline:
//
//	library --build--> structure --search--> sequence --extend--> longer
//	                       |
//	                       +--export--> text encoding, catalog store
//
// Subgroup handles are opaque and engine-bound: the reference ZOracle in
// triangle/ interprets integer-lattice handles exactly, and any external
// engine can stand in behind the same two interfaces.
package hypercells
