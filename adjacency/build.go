// Package adjacency: the quotient-sequences structure and its builder.
package adjacency

import (
	"errors"

	"github.com/bits-and-blooms/bitset"
	pkgerrors "github.com/pkg/errors"

	"github.com/marcelolooser/HyperCells/triangle"
)

var (
	// ErrLibraryNil is returned by Build for a nil quotient library.
	ErrLibraryNil = errors.New("adjacency: library is nil")

	// ErrOracleNil is returned by Build for a nil subgroup-relation oracle.
	ErrOracleNil = errors.New("adjacency: oracle is nil")
)

// Structure aggregates everything the search and extension components
// consume: the signature, the effective genus bound, the resolved quotient
// list, the parallel mirror-symmetry bit vector, the requested encoding
// flag, and the two relation matrices. A Structure is exclusively owned by
// its caller and never mutated after Build.
//
// Matrix invariant: both matrices are len(quotients)² and entry (i, j) is
// positive iff quotient j's translation subgroup is a normal subgroup of
// quotient i's: for the full matrix the whole relation, for the
// nearest-neighbor matrix only covering pairs (no intermediate quotient k
// in the list with both i→k and k→j).
type Structure struct {
	sig       triangle.Signature
	bound     int
	quotients []triangle.Quotient
	mirror    *bitset.BitSet
	sparse    bool
	full      *Matrix
	nearest   *Matrix
}

// Signature reports the ambient triangle-group signature.
func (st *Structure) Signature() triangle.Signature { return st.sig }

// GenusBound reports the effective (clamped) genus bound used by Build.
func (st *Structure) GenusBound() int { return st.bound }

// Len reports the number of quotients in the structure.
func (st *Structure) Len() int { return len(st.quotients) }

// Quotients returns the resolved quotient list. Callers must treat the
// slice as read-only.
func (st *Structure) Quotients() []triangle.Quotient { return st.quotients }

// Quotient returns the quotient at position i.
func (st *Structure) Quotient(i int) (triangle.Quotient, error) {
	if i < 0 || i >= len(st.quotients) {
		return triangle.Quotient{}, ErrOutOfRange
	}

	return st.quotients[i], nil
}

// IndexOf locates a quotient by identifier; the second result is false when
// the identifier is not in the structure.
func (st *Structure) IndexOf(id triangle.QuotientID) (int, bool) {
	for i, q := range st.quotients {
		if q.ID() == id {
			return i, true
		}
	}

	return 0, false
}

// Mirror reports the mirror-symmetry flag of quotient i; out-of-range
// indices report false.
func (st *Structure) Mirror(i int) bool {
	if i < 0 || i >= len(st.quotients) {
		return false
	}

	return st.mirror.Test(uint(i))
}

// MirrorBits returns a copy of the mirror-symmetry bit vector.
func (st *Structure) MirrorBits() *bitset.BitSet { return st.mirror.Clone() }

// Sparse reports the requested export encoding.
func (st *Structure) Sparse() bool { return st.sparse }

// Full returns the full relation matrix. Read-only.
func (st *Structure) Full() *Matrix { return st.full }

// Nearest returns the nearest-neighbor (covering) relation matrix.
// Read-only.
func (st *Structure) Nearest() *Matrix { return st.nearest }

// Build resolves the genus-bounded quotient list for sig from lib and fills
// the full and nearest-neighbor relation matrices with one oracle normality
// query per ordered pair. Subgroup handles pass through the translation
// cache, so repeated builds over the same library reuse constructions.
//
// The genus bound follows the clamping policy of WithGenusBound. Oracle or
// library failures abort the build with a wrapped error; unlike the
// best-effort search components, an inconsistent relation matrix is never
// returned.
func Build(lib triangle.Library, o triangle.Oracle, sig triangle.Signature, opts ...Option) (*Structure, error) {
	// 1. Validate collaborators and resolve options.
	if lib == nil {
		return nil, ErrLibraryNil
	}
	if o == nil {
		return nil, ErrOracleNil
	}
	options := gatherOptions(opts...)

	// 2. Retrieve the genus-bounded quotient list.
	quotients, err := lib.ListQuotients(sig, options.bound)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "adjacency: listing quotients")
	}
	n := len(quotients)

	// 3. Canonicalize translation handles through the cache and record the
	//    mirror-symmetry bit vector.
	mirror := bitset.New(uint(n))
	resolved := make([]triangle.Quotient, n)
	for i, q := range quotients {
		q.Subgroup = options.cache.Canonical(q.Subgroup)
		resolved[i] = q
		if q.Mirror {
			mirror.Set(uint(i))
		}
	}

	// 4. Full relation: one normality query per ordered pair.
	full, err := NewMatrix(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			normal, err := o.IsNormalSubgroup(resolved[j].Subgroup, resolved[i].Subgroup)
			if err != nil {
				return nil, pkgerrors.Wrapf(err, "adjacency: relation %s vs %s",
					resolved[j].ID(), resolved[i].ID())
			}
			if normal {
				full.cells[i*n+j] = 1
			}
		}
	}

	// 5. Nearest-neighbor restriction: keep (i,j) only when no intermediate
	//    k satisfies both i→k and k→j (covering relation of the partial
	//    order). Derived from the full matrix, no further oracle queries.
	nearest := full.Clone()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if nearest.cells[i*n+j] == 0 {
				continue
			}
			for k := 0; k < n; k++ {
				if k != i && k != j && full.cells[i*n+k] > 0 && full.cells[k*n+j] > 0 {
					nearest.cells[i*n+j] = 0
					break
				}
			}
		}
	}

	return &Structure{
		sig:       sig,
		bound:     options.bound,
		quotients: resolved,
		mirror:    mirror,
		sparse:    options.sparse,
		full:      full,
		nearest:   nearest,
	}, nil
}

// Equal reports whether two structures agree on the full serialized
// attribute set: signature, bound, quotient identifiers and mirror flags,
// sparse flag and both matrices. Subgroup handles are engine-bound and
// deliberately excluded (an imported structure carries none).
func Equal(a, b *Structure) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.sig != b.sig || a.bound != b.bound || a.sparse != b.sparse || len(a.quotients) != len(b.quotients) {
		return false
	}
	for i := range a.quotients {
		if a.quotients[i].ID() != b.quotients[i].ID() || a.Mirror(i) != b.Mirror(i) {
			return false
		}
	}

	return a.full.Equal(b.full) && a.nearest.Equal(b.nearest)
}
