// Package triangle defines the data model shared by every HyperCells
// component: triangle-group signatures, quotients of the proper triangle
// group Δ⁺ indexed by (genus, number), and opaque handles to their
// translation subgroups.
//
// The actual group arithmetic (normal-subgroup testing, subgroup
// intersection, index computation) is delegated to an external engine
// behind two small interfaces:
//
//   - Library: lists the known quotients of a signature up to a genus bound
//   - Oracle:  answers normality, intersection, index and equality queries
//     on translation-subgroup handles
//
// The package also ships a self-contained reference implementation of both
// interfaces (ZLattice, ZOracle, StaticLibrary) in which translation
// subgroups are finite-index sublattices of ℤ², kept in Hermite normal
// form. In that model every subgroup is normal, so the normality query
// reduces to exact lattice containment; intersection and index are computed
// with small-integer arithmetic. It backs the package tests and the CLI and
// stands in for a full group-theory engine.
//
// Errors:
//
//   - ErrUnknownSubgroup:   a handle was produced by a different engine
//   - ErrSignatureMismatch: operands belong to different ambient groups
//   - ErrNotSubgroup:       index requested for a non-inclusion
//   - ErrDegenerateLattice: a lattice basis does not have finite index
package triangle
