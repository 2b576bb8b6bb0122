// Package sequence: the Sequence type and chain validation.
package sequence

import (
	"errors"

	"github.com/marcelolooser/HyperCells/triangle"
)

var (
	// ErrOracleNil is returned when a nil subgroup-relation oracle is passed
	// to an extension entry point.
	ErrOracleNil = errors.New("sequence: oracle is nil")

	// ErrEmptySequence is returned when extension of an empty sequence is
	// requested; extension needs a last element to intersect against.
	ErrEmptySequence = errors.New("sequence: empty sequence")
)

// Sequence is an ordered chain of quotients Γ(0), Γ(1), …, Γ(n) in which
// each entry's translation subgroup is meant to be a proper normal subgroup
// of the previous one. Sequences are never mutated in place; extension
// returns a new, longer sequence.
type Sequence []triangle.Quotient

// IDs returns the (genus, number) identifiers of the chain in order.
func (s Sequence) IDs() []triangle.QuotientID {
	out := make([]triangle.QuotientID, len(s))
	for i, q := range s {
		out[i] = q.ID()
	}

	return out
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// IsQuotientSequence reports whether s is a valid quotient sequence:
// non-empty, every entry carrying a translation subgroup of one shared
// ambient signature, and every consecutive pair a proper normal-subgroup
// step (Γ(i+1) ⊴ Γ(i) with Γ(i+1) ≠ Γ(i)).
//
// Any violation (including a nil oracle, a missing subgroup handle, or an
// oracle failure) yields false, never an error. The check is pure and does
// not touch any cache.
//
// Complexity: n-1 oracle queries for a chain of length n.
func IsQuotientSequence(o triangle.Oracle, s Sequence) bool {
	// 1. Structural checks: non-empty, all handles present.
	if o == nil || len(s) == 0 {
		return false
	}
	for _, q := range s {
		if q.Subgroup == nil {
			return false
		}
	}

	// 2. Uniform ambient signature.
	sig := s[0].Subgroup.Signature()
	for _, q := range s[1:] {
		if q.Subgroup.Signature() != sig {
			return false
		}
	}

	// 3. Proper normal containment at every consecutive step.
	for i := 0; i+1 < len(s); i++ {
		cur, next := s[i].Subgroup, s[i+1].Subgroup

		normal, err := o.IsNormalSubgroup(next, cur)
		if err != nil || !normal {
			return false
		}
		if o.Equal(next, cur) {
			return false // strict containment required
		}
	}

	return true
}
