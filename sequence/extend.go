// Package sequence: extension of a chain by subgroup intersection.
// Used when the library's exhaustive low-index search is too expensive to
// find longer chains directly: intersecting the current last translation
// subgroup with a library candidate always yields a normal subgroup of the
// ambient group, so a chain can be grown past the library's genus horizon.
package sequence

import (
	"github.com/emirpasic/gods/trees/binaryheap"
	log "github.com/sirupsen/logrus"

	"github.com/marcelolooser/HyperCells/triangle"
)

// ExtensionOption is one candidate continuation of a chain: the candidate
// quotient, the intersection of its translation subgroup with the chain's
// last subgroup, and the index of that intersection inside the last
// subgroup. Callers typically pick the option of minimal Index.
type ExtensionOption struct {
	Candidate    triangle.Quotient
	Intersection triangle.Subgroup
	Index        int
}

// Extend grows s by intersecting its last translation subgroup with each
// candidate in turn, left to right. A candidate is appended, as a new
// quotient carrying the candidate's (genus, number) identity and the
// intersection subgroup, only when the intersection differs from the
// current last subgroup; otherwise the candidate is skipped and the run
// continues. Oracle failures on a single candidate are skipped the same
// way, preserving composability.
//
// The result of each append is guaranteed normal in the ambient group by
// closure of normal subgroups under intersection, but the final link may be
// non-strict with respect to the candidate itself; only equality with the
// previous last element is rejected.
//
// Extend is greedy: it returns the longest sequence reachable by this
// left-to-right consumption, NOT the longest over all candidate orders.
// The input sequence is not modified.
func Extend(o triangle.Oracle, candidates []triangle.Quotient, s Sequence) (Sequence, error) {
	if o == nil {
		return nil, ErrOracleNil
	}
	if len(s) == 0 {
		return nil, ErrEmptySequence
	}

	out := s.Clone()
	for _, c := range candidates {
		if c.Subgroup == nil {
			continue
		}
		last := out[len(out)-1]

		// 1. Intersect the current last translation subgroup with the
		//    candidate's. Failures skip the candidate, never abort the run.
		inter, err := o.Intersect(last.Subgroup, c.Subgroup)
		if err != nil {
			log.Debugf("sequence: skipping candidate %s: %v", c.ID(), err)
			continue
		}

		// 2. Reject a stalled step: the chain must strictly descend.
		if o.Equal(inter, last.Subgroup) {
			continue
		}

		// 3. Append the intersection quotient. Mirror symmetry survives
		//    intersection only when both operands have it.
		out = append(out, triangle.Quotient{
			Genus:    c.Genus,
			Number:   c.Number,
			Mirror:   last.Mirror && c.Mirror,
			Subgroup: inter,
		})
	}

	return out, nil
}

// NextOptions pairs every candidate with the index of the intersection of
// its translation subgroup inside q0's. No filtering is applied: stalled
// options (index 1) are included so callers can make their own choice.
// Candidates the oracle cannot process are skipped.
func NextOptions(o triangle.Oracle, candidates []triangle.Quotient, q0 triangle.Quotient) ([]ExtensionOption, error) {
	if o == nil {
		return nil, ErrOracleNil
	}

	out := make([]ExtensionOption, 0, len(candidates))
	for _, c := range candidates {
		if c.Subgroup == nil {
			continue
		}
		inter, err := o.Intersect(q0.Subgroup, c.Subgroup)
		if err != nil {
			log.Debugf("sequence: skipping candidate %s: %v", c.ID(), err)
			continue
		}
		idx, err := o.Index(inter, q0.Subgroup)
		if err != nil {
			log.Debugf("sequence: skipping candidate %s: %v", c.ID(), err)
			continue
		}
		out = append(out, ExtensionOption{Candidate: c, Intersection: inter, Index: idx})
	}

	return out, nil
}

// ExtendMinimalIndex grows s one step at a time, at each step appending the
// extension option of minimal intersection index (ties broken by ascending
// (genus, number) of the candidate). Options with index 1 are stalled and
// never taken. The walk stops after steps appends, or earlier when no
// candidate strictly descends; steps <= 0 means "until stalled".
//
// This is a greedy local search over indices, not a global optimization.
func ExtendMinimalIndex(o triangle.Oracle, candidates []triangle.Quotient, s Sequence, steps int) (Sequence, error) {
	if o == nil {
		return nil, ErrOracleNil
	}
	if len(s) == 0 {
		return nil, ErrEmptySequence
	}

	out := s.Clone()
	for taken := 0; steps <= 0 || taken < steps; taken++ {
		last := out[len(out)-1]

		options, err := NextOptions(o, candidates, last)
		if err != nil {
			return nil, err
		}

		// Rank all descending options by (index, genus, number).
		heap := binaryheap.NewWith(compareOptions)
		for _, opt := range options {
			if opt.Index > 1 { // index 1 means the step stalls
				heap.Push(opt)
			}
		}

		best, ok := heap.Pop()
		if !ok {
			break // no strictly descending continuation exists
		}
		opt := best.(ExtensionOption)

		out = append(out, triangle.Quotient{
			Genus:    opt.Candidate.Genus,
			Number:   opt.Candidate.Number,
			Mirror:   last.Mirror && opt.Candidate.Mirror,
			Subgroup: opt.Intersection,
		})
	}

	return out, nil
}

// compareOptions orders extension options by intersection index, then by
// the candidate's (genus, number).
func compareOptions(a, b interface{}) int {
	oa, ob := a.(ExtensionOption), b.(ExtensionOption)

	switch {
	case oa.Index != ob.Index:
		return oa.Index - ob.Index
	case oa.Candidate.Genus != ob.Candidate.Genus:
		return oa.Candidate.Genus - ob.Candidate.Genus
	default:
		return oa.Candidate.Number - ob.Candidate.Number
	}
}
