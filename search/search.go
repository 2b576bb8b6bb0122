// Package search finds longest quotient sequences in a quotient-sequences
// structure. The nearest-neighbor adjacency matrix is read as a directed
// acyclic graph whose edges point from larger to smaller translation
// subgroup, restricted to the allowed quotient subset (mirror-symmetric
// only, unless overridden), and a maximum-length path is extracted by
// memoized depth-first search.
//
// The result is one longest sequence, not necessarily a unique one:
// equal-length maximal chains are a fact of the partial order. Ties are
// broken deterministically by preferring the smallest quotient index at
// every step (and the smallest start index when unanchored), so repeated
// runs on one structure return the same path; no other significance
// attaches to the choice.
//
// Failure semantics follow the composability rule of the repository: a
// missing or disallowed start anchor yields an empty sequence, not an
// error. Only a nil structure is a hard error.
//
// Complexity: O(V + E) over the allowed subgraph, plus O(V) memoization.
package search

import (
	"errors"

	"github.com/bits-and-blooms/bitset"

	"github.com/marcelolooser/HyperCells/adjacency"
	"github.com/marcelolooser/HyperCells/triangle"
)

// ErrStructureNil is returned when a nil structure is passed to Longest.
var ErrStructureNil = errors.New("search: structure is nil")

// Longest returns a maximum-length quotient sequence through st as an
// ordered list of (genus, number) identifiers. See the package
// documentation for subset restriction, anchoring and tie-breaking.
func Longest(st *adjacency.Structure, opts ...Option) ([]triangle.QuotientID, error) {
	// 1. Validate input and resolve options.
	if st == nil {
		return nil, ErrStructureNil
	}
	options := gatherOptions(opts...)
	n := st.Len()

	// 2. Determine the allowed quotient subset.
	allowed := bitset.New(uint(n))
	for i := 0; i < n; i++ {
		if options.nonMirror || st.Mirror(i) {
			allowed.Set(uint(i))
		}
	}

	// 3. Resolve the optional start anchor; absent or disallowed anchors
	//    degrade to an empty result.
	start := -1
	switch {
	case options.startIndex != nil:
		start = *options.startIndex
		if start < 0 || start >= n || !allowed.Test(uint(start)) {
			return nil, nil
		}
	case options.startID != nil:
		i, ok := st.IndexOf(*options.startID)
		if !ok || !allowed.Test(uint(i)) {
			return nil, nil
		}
		start = i
	}

	// 4. Longest-path DFS with memoization over the covering relation.
	w := &walker{
		st:      st,
		allowed: allowed,
		bestLen: make([]int, n),
		nextHop: make([]int, n),
		state:   make([]byte, n),
	}

	// 5. Pick the path head: the anchor, or the best allowed node
	//    (ties to the smallest index).
	head := start
	if head < 0 {
		best := 0
		for i := 0; i < n; i++ {
			if !allowed.Test(uint(i)) {
				continue
			}
			if l := w.longestFrom(i); l > best {
				best = l
				head = i
			}
		}
		if head < 0 {
			return nil, nil // no allowed quotients at all
		}
	} else {
		w.longestFrom(head)
	}

	// 6. Materialize the identifier path.
	path := make([]triangle.QuotientID, 0, w.bestLen[head])
	for i := head; i >= 0; i = w.nextHop[i] {
		q, err := st.Quotient(i)
		if err != nil {
			return nil, err
		}
		path = append(path, q.ID())
	}

	return path, nil
}

// walker carries the memoized longest-path state.
type walker struct {
	st      *adjacency.Structure
	allowed *bitset.BitSet
	bestLen []int  // longest path length (node count) starting at i
	nextHop []int  // successor on that path, -1 at a sink
	state   []byte // 0 unvisited, 1 on stack, 2 done
}

// longestFrom computes the longest allowed path starting at node i.
// The covering relation of a partial order is acyclic; should an imported
// structure be corrupted into a cycle, back edges are ignored rather than
// recursed into.
func (w *walker) longestFrom(i int) int {
	if w.state[i] == 2 {
		return w.bestLen[i]
	}
	if w.state[i] == 1 {
		return 0 // back edge: skip
	}
	w.state[i] = 1

	w.bestLen[i] = 1
	w.nextHop[i] = -1
	n := w.st.Len()
	for j := 0; j < n; j++ {
		if !w.allowed.Test(uint(j)) || !w.st.Nearest().Positive(i, j) {
			continue
		}
		// Strict improvement only: scanning j in ascending order makes the
		// smallest successor index win ties.
		if l := w.longestFrom(j) + 1; l > w.bestLen[i] {
			w.bestLen[i] = l
			w.nextHop[i] = j
		}
	}

	w.state[i] = 2

	return w.bestLen[i]
}
