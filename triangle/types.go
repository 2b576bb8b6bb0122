// Package triangle: core types and collaborator interfaces.
// This file defines the signature/quotient data model and the two external
// interfaces (Library, Oracle) consumed by the sequence, adjacency and
// search packages. Quotients are immutable once constructed.
package triangle

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownSubgroup is returned when a Subgroup handle was not produced
	// by the engine answering the query.
	ErrUnknownSubgroup = errors.New("triangle: unknown subgroup handle")

	// ErrSignatureMismatch is returned when two handles belong to different
	// ambient triangle groups.
	ErrSignatureMismatch = errors.New("triangle: signature mismatch")

	// ErrNotSubgroup is returned by Oracle.Index when the first operand is
	// not contained in the second.
	ErrNotSubgroup = errors.New("triangle: not a subgroup")

	// ErrDegenerateLattice is returned when a lattice basis does not span a
	// finite-index sublattice of Z^2.
	ErrDegenerateLattice = errors.New("triangle: degenerate lattice basis")

	// ErrUnknownSignature is returned by a Library when it holds no quotients
	// for the requested signature.
	ErrUnknownSignature = errors.New("triangle: unknown signature")
)

// Signature identifies a proper triangle group Δ⁺(p,q,r). All quotients in
// one sequence or adjacency structure share a single signature.
type Signature struct {
	P, Q, R int
}

// String renders the signature in the conventional {p,q,r} form.
func (s Signature) String() string {
	return fmt.Sprintf("{%d,%d,%d}", s.P, s.Q, s.R)
}

// QuotientID identifies a quotient by its (genus, number) pair per the
// reference enumeration (Conder's list).
type QuotientID struct {
	Genus, Number int
}

// String renders the identifier as [genus, number].
func (id QuotientID) String() string {
	return fmt.Sprintf("[%d, %d]", id.Genus, id.Number)
}

// Less orders identifiers by genus, then number.
func (id QuotientID) Less(other QuotientID) bool {
	if id.Genus != other.Genus {
		return id.Genus < other.Genus
	}

	return id.Number < other.Number
}

// Subgroup is an opaque handle to a translation subgroup: a normal,
// finite-index, torsion-free subgroup of the ambient proper triangle group.
// Handles are engine-specific; only the Oracle that produced a handle can
// interpret it.
type Subgroup interface {
	// Signature reports the ambient triangle group of the subgroup.
	Signature() Signature

	// Index reports the index of the subgroup in the ambient group.
	Index() int

	// Key returns a stable identity string, used as a cache key.
	Key() string
}

// Quotient is one entry of a quotient library: Δ⁺ modulo a translation
// subgroup, indexed by (genus, number), with its mirror-symmetry flag.
// Quotients are library-provided and read-only.
type Quotient struct {
	// Genus and Number identify the quotient in the reference enumeration.
	Genus, Number int

	// Mirror reports whether the quotient is mirror-symmetric.
	Mirror bool

	// Subgroup is the handle to the quotient's translation subgroup.
	Subgroup Subgroup
}

// ID returns the (genus, number) identifier of the quotient.
func (q Quotient) ID() QuotientID {
	return QuotientID{Genus: q.Genus, Number: q.Number}
}

// Oracle answers subgroup-relation queries on translation-subgroup handles.
// Implementations are expected to be deterministic; HyperCells never calls
// an Oracle concurrently.
type Oracle interface {
	// IsNormalSubgroup reports whether h is a normal subgroup of k.
	IsNormalSubgroup(h, k Subgroup) (bool, error)

	// Intersect computes h ∩ k. The intersection of two normal subgroups of
	// the ambient group is again normal in the ambient group.
	Intersect(h, k Subgroup) (Subgroup, error)

	// Index computes the index [k : h] of h inside k.
	// Returns ErrNotSubgroup when h is not contained in k.
	Index(h, k Subgroup) (int, error)

	// Equal reports whether h and k denote the same subgroup.
	Equal(h, k Subgroup) bool
}

// Library provides ordered access to a pre-enumerated quotient library.
type Library interface {
	// ListQuotients returns all known quotients of the given signature with
	// genus at most genusBound, ordered by (genus, number).
	ListQuotients(sig Signature, genusBound int) ([]Quotient, error)
}

// StaticLibrary is an in-memory Library backed by a fixed quotient slice.
// It backs tests and the CLI; the production library (Conder's on-disk
// enumeration) lives behind the same interface in the external engine.
type StaticLibrary struct {
	sig       Signature
	quotients []Quotient // sorted by (genus, number)
}

// NewStaticLibrary builds a StaticLibrary over the given quotients, sorting
// them by (genus, number). All quotients must share sig.
func NewStaticLibrary(sig Signature, quotients []Quotient) (*StaticLibrary, error) {
	// 1. Validate uniform signature across subgroup handles.
	for _, q := range quotients {
		if q.Subgroup != nil && q.Subgroup.Signature() != sig {
			return nil, ErrSignatureMismatch
		}
	}

	// 2. Copy and sort into the canonical (genus, number) order.
	sorted := make([]Quotient, len(quotients))
	copy(sorted, quotients)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].ID().Less(sorted[j].ID())
	})

	return &StaticLibrary{sig: sig, quotients: sorted}, nil
}

// Signature reports the signature the library was built for.
func (l *StaticLibrary) Signature() Signature { return l.sig }

// Len reports the total number of quotients held.
func (l *StaticLibrary) Len() int { return len(l.quotients) }

// ListQuotients implements Library. The genus bound is inclusive.
func (l *StaticLibrary) ListQuotients(sig Signature, genusBound int) ([]Quotient, error) {
	if sig != l.sig {
		return nil, ErrUnknownSignature
	}

	out := make([]Quotient, 0, len(l.quotients))
	for _, q := range l.quotients {
		if q.Genus <= genusBound {
			out = append(out, q)
		}
	}

	return out, nil
}
