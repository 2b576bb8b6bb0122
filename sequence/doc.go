// Package sequence manages quotient sequences: strictly decreasing chains
// Γ(0) ⊳ Γ(1) ⊳ … of translation subgroups of one proper triangle group,
// used to approximate the infinite hyperbolic lattice by ever larger
// periodic supercells.
//
// Key features:
//
//   - IsQuotientSequence: validates a candidate chain (uniform signature,
//     proper normal containment at every consecutive step)
//   - Extend: greedy left-to-right growth of a chain by intersecting the
//     current last translation subgroup with library candidates
//   - NextOptions: index-annotated extension candidates, unfiltered
//   - ExtendMinimalIndex: repeated extension picking the candidate of
//     minimal intersection index at every step (greedy local search)
//
// All subgroup arithmetic is delegated to a triangle.Oracle. Intersections
// of normal subgroups of the ambient group are normal in the ambient group
// by closure, but not necessarily proper refinements of the previous chain
// element; the extension entry points check equality to avoid stalling.
//
// Extend consumes its candidate list greedily from left to right. It does
// NOT search over candidate orders, so it may miss a longer extension that
// a different order would reach. This cheap cost profile is intentional and
// relied upon by callers; use ExtendMinimalIndex for the index-driven
// variant.
//
// Errors:
//
//   - ErrOracleNil:     nil oracle passed to an extension entry point
//   - ErrEmptySequence: extension of an empty sequence requested
//
// Validation failures are reported as a boolean false, never as an error,
// so search loops can probe candidates without aborting.
package sequence
