// Package adjacency builds and serializes the quotient-sequences structure:
// the normal-subgroup relation between all pairs of quotients of one
// triangle group, up to a genus bound, encoded as adjacency matrices.
//
// Key features:
//
//   - Build(lib, oracle, sig, opts...): resolves the genus-bounded quotient
//     list and fills two square matrices: the full relation (entry (i,j)
//     positive iff quotient j's translation subgroup is a normal subgroup
//     of quotient i's) and the nearest-neighbor relation (covering pairs of
//     the partial order, i.e. no intermediate library quotient between them)
//   - Dense and sparse matrix encodings, losslessly interconvertible
//   - A translation-construction cache, explicitly owned and flushable,
//     so identical subgroup representations are not rebuilt across builds
//   - Text export/import of the full attribute set (signature, bound,
//     quotient list, mirror-symmetry bit vector, sparse flag, matrices)
//     that round-trips byte-identically through strings, streams and files
//
// Options:
//
//   - WithGenusBound(b)  genus bound, valid range 1–101; out-of-range values
//     silently fall back to DefaultGenusBound (66)
//   - WithSparse()       request the sparse matrix encoding on export
//   - WithCache(c)       use an explicit translation cache instead of the
//     shared process-wide one
//
// Errors:
//
//   - ErrLibraryNil / ErrOracleNil: nil collaborator passed to Build
//   - ErrOutOfRange:    matrix index outside bounds
//   - ErrBadDimension:  non-positive matrix dimension
//   - ErrSparseEntry:   malformed sparse triple
//   - ErrCodecFormat:   malformed import text
//
// Complexity: Build issues one oracle query per ordered quotient pair,
// O(n²) queries for n quotients; the nearest-neighbor restriction is an
// O(n³) scan over the full matrix.
package adjacency
