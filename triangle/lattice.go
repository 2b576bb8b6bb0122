// Package triangle: reference translation-subgroup engine over ℤ².
// A ZLattice is a finite-index sublattice of ℤ² kept in Hermite normal form
// [[a,b],[0,d]] with a,d > 0 and 0 ≤ b < d, which makes equality, membership,
// containment, intersection and index all exact small-integer computations.
// The model corresponds to translation groups of toroidal supercells; since
// ℤ² is abelian, every subgroup is normal and the normality query reduces to
// containment.
package triangle

import "fmt"

// ZLattice is a finite-index sublattice of ℤ² in Hermite normal form.
// The zero value is not valid; use NewZLattice.
type ZLattice struct {
	sig     Signature
	a, b, d int // basis rows (a,b) and (0,d); a,d > 0, 0 <= b < d
}

// NewZLattice constructs the sublattice of ℤ² spanned by the given integer
// row vectors, normalized to Hermite form. Returns ErrDegenerateLattice when
// the rows do not span a finite-index sublattice.
func NewZLattice(sig Signature, rows ...[2]int) (ZLattice, error) {
	a, b, d, ok := hermite(rows)
	if !ok {
		return ZLattice{}, ErrDegenerateLattice
	}

	return ZLattice{sig: sig, a: a, b: b, d: d}, nil
}

// MustZLattice is NewZLattice that panics on a degenerate basis.
// Intended for fixtures and package tests.
func MustZLattice(sig Signature, rows ...[2]int) ZLattice {
	l, err := NewZLattice(sig, rows...)
	if err != nil {
		panic(err)
	}

	return l
}

// Signature implements Subgroup.
func (l ZLattice) Signature() Signature { return l.sig }

// Index implements Subgroup: the index of the lattice in ℤ² is the
// determinant of its Hermite basis.
func (l ZLattice) Index() int { return l.a * l.d }

// Key implements Subgroup. Hermite form is unique per lattice, so the key is
// a faithful identity.
func (l ZLattice) Key() string {
	return fmt.Sprintf("%s|[[%d,%d],[0,%d]]", l.sig, l.a, l.b, l.d)
}

// Basis returns the Hermite basis rows (a,b) and (0,d).
func (l ZLattice) Basis() (a, b, d int) { return l.a, l.b, l.d }

// contains reports whether the vector (x,y) lies in the lattice.
func (l ZLattice) contains(x, y int) bool {
	// (x,y) = m*(a,b) + n*(0,d) forces m = x/a and n = (y-m*b)/d.
	if x%l.a != 0 {
		return false
	}
	m := x / l.a

	return (y-m*l.b)%l.d == 0
}

// containsLattice reports whether every element of m lies in l.
func (l ZLattice) containsLattice(m ZLattice) bool {
	return l.contains(m.a, m.b) && l.contains(0, m.d)
}

// ZOracle is the subgroup-relation Oracle for ZLattice handles. It is
// stateless; all answers are exact.
type ZOracle struct{}

// assert narrows a Subgroup handle to a ZLattice.
func (ZOracle) assert(s Subgroup) (ZLattice, error) {
	l, ok := s.(ZLattice)
	if !ok {
		return ZLattice{}, ErrUnknownSubgroup
	}

	return l, nil
}

// pair narrows both operands and checks they share an ambient group.
func (o ZOracle) pair(h, k Subgroup) (ZLattice, ZLattice, error) {
	lh, err := o.assert(h)
	if err != nil {
		return ZLattice{}, ZLattice{}, err
	}
	lk, err := o.assert(k)
	if err != nil {
		return ZLattice{}, ZLattice{}, err
	}
	if lh.sig != lk.sig {
		return ZLattice{}, ZLattice{}, ErrSignatureMismatch
	}

	return lh, lk, nil
}

// IsNormalSubgroup implements Oracle. In the abelian reference model every
// subgroup is normal, so the query is exact containment h ⊆ k.
func (o ZOracle) IsNormalSubgroup(h, k Subgroup) (bool, error) {
	lh, lk, err := o.pair(h, k)
	if err != nil {
		return false, err
	}

	return lk.containsLattice(lh), nil
}

// Intersect implements Oracle: the intersection of two finite-index
// sublattices of ℤ², again in Hermite form.
//
// Complexity: O(D²) vector membership tests for D = lcm(index(h), index(k)),
// acceptable for the small indices a reference engine is used with.
func (o ZOracle) Intersect(h, k Subgroup) (Subgroup, error) {
	lh, lk, err := o.pair(h, k)
	if err != nil {
		return nil, err
	}

	// 1. D·ℤ² is contained in both lattices for D = lcm of their indices,
	//    so the intersection is determined by its residues modulo D.
	D := lcm(lh.Index(), lk.Index())

	// 2. Collect one representative per residue class that lies in both,
	//    together with the generators (D,0), (0,D) of D·ℤ².
	rows := [][2]int{{D, 0}, {0, D}}
	for x := 0; x < D; x++ {
		for y := 0; y < D; y++ {
			if (x != 0 || y != 0) && lh.contains(x, y) && lk.contains(x, y) {
				rows = append(rows, [2]int{x, y})
			}
		}
	}

	// 3. Reduce the generating set back to Hermite form.
	return NewZLattice(lh.sig, rows...)
}

// Index implements Oracle: [k : h] = index(h) / index(k), defined only when
// h ⊆ k.
func (o ZOracle) Index(h, k Subgroup) (int, error) {
	lh, lk, err := o.pair(h, k)
	if err != nil {
		return 0, err
	}
	if !lk.containsLattice(lh) {
		return 0, ErrNotSubgroup
	}

	return lh.Index() / lk.Index(), nil
}

// Equal implements Oracle. Hermite form is canonical, so equality is a
// field comparison; foreign handles are never equal to a ZLattice.
func (o ZOracle) Equal(h, k Subgroup) bool {
	lh, err := o.assert(h)
	if err != nil {
		return false
	}
	lk, err := o.assert(k)
	if err != nil {
		return false
	}

	return lh == lk
}

// hermite reduces integer row vectors to the unique Hermite basis
// [[a,b],[0,d]] of the lattice they span. ok is false when the span does not
// have finite index in ℤ².
func hermite(rows [][2]int) (a, b, d int, ok bool) {
	work := make([][2]int, 0, len(rows))
	for _, r := range rows {
		if r[0] != 0 || r[1] != 0 {
			work = append(work, r)
		}
	}
	if len(work) < 2 {
		return 0, 0, 0, false
	}

	// 1. Euclidean elimination on the first column: shrink until exactly one
	//    row has a nonzero first entry.
	for {
		pivot := -1
		for i, r := range work {
			if r[0] == 0 {
				continue
			}
			if pivot < 0 || abs(r[0]) < abs(work[pivot][0]) {
				pivot = i
			}
		}
		if pivot < 0 {
			return 0, 0, 0, false // no row spans the first coordinate
		}

		reduced := false
		for i, r := range work {
			if i == pivot || r[0] == 0 {
				continue
			}
			q := r[0] / work[pivot][0]
			work[i][0] -= q * work[pivot][0]
			work[i][1] -= q * work[pivot][1]
			reduced = true
		}
		if !reduced {
			// Exactly one nonzero first entry remains; move it to the front.
			work[0], work[pivot] = work[pivot], work[0]
			break
		}
	}

	if work[0][0] < 0 {
		work[0][0], work[0][1] = -work[0][0], -work[0][1]
	}
	a, b = work[0][0], work[0][1]

	// 2. The remaining rows have first entry zero; d is the gcd of their
	//    second entries.
	d = 0
	for _, r := range work[1:] {
		d = gcd(d, abs(r[1]))
	}
	if d == 0 {
		return 0, 0, 0, false
	}

	// 3. Normalize the off-diagonal entry into [0, d).
	b = ((b % d) + d) % d

	return a, b, d, true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func gcd(x, y int) int {
	for y != 0 {
		x, y = y, x%y
	}

	return x
}

func lcm(x, y int) int {
	return x / gcd(x, y) * y
}
