package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelolooser/HyperCells/adjacency"
	"github.com/marcelolooser/HyperCells/search"
	"github.com/marcelolooser/HyperCells/triangle"
)

var (
	sig832 = triangle.Signature{P: 8, Q: 3, R: 2}
	oracle = triangle.ZOracle{}
)

func id(genus, number int) triangle.QuotientID {
	return triangle.QuotientID{Genus: genus, Number: number}
}

func quotient(g, n int, mirror bool, rows ...[2]int) triangle.Quotient {
	return triangle.Quotient{
		Genus:    g,
		Number:   n,
		Mirror:   mirror,
		Subgroup: triangle.MustZLattice(sig832, rows...),
	}
}

// chainStructure builds a five-quotient structure with one known chain of
// three, coarse ⊂ mid ⊂ top, plus two quotients incomparable to everything:
//
//	top    (2,1)  2Z×2Z
//	loose1 (2,2)  3Z×Z      (incomparable)
//	mid    (3,1)  4Z×4Z
//	loose2 (3,2)  Z×3Z      (incomparable)
//	coarse (5,1)  8Z×8Z
//
// coarseMirror toggles the mirror flag of the chain's last element.
func chainStructure(t *testing.T, coarseMirror bool) *adjacency.Structure {
	t.Helper()
	lib, err := triangle.NewStaticLibrary(sig832, []triangle.Quotient{
		quotient(2, 1, true, [2]int{2, 0}, [2]int{0, 2}),
		quotient(2, 2, true, [2]int{3, 0}, [2]int{0, 1}),
		quotient(3, 1, true, [2]int{4, 0}, [2]int{0, 4}),
		quotient(3, 2, true, [2]int{1, 0}, [2]int{0, 3}),
		quotient(5, 1, coarseMirror, [2]int{8, 0}, [2]int{0, 8}),
	})
	require.NoError(t, err)

	st, err := adjacency.Build(lib, oracle, sig832)
	require.NoError(t, err)

	return st
}

func TestLongest_FindsKnownChainOfThree(t *testing.T) {
	st := chainStructure(t, true)

	// Exactly the chain links survive in the full relation.
	require.Len(t, st.Full().ToSparse(), 3)

	path, err := search.Longest(st)
	require.NoError(t, err)
	assert.Equal(t, []triangle.QuotientID{id(2, 1), id(3, 1), id(5, 1)}, path)
}

func TestLongest_MirrorFilterShortensChain(t *testing.T) {
	st := chainStructure(t, false)

	path, err := search.Longest(st)
	require.NoError(t, err)
	assert.Equal(t, []triangle.QuotientID{id(2, 1), id(3, 1)}, path,
		"non-mirror quotients are excluded by default")

	path, err = search.Longest(st, search.WithNonMirrorSymmetric())
	require.NoError(t, err)
	assert.Equal(t, []triangle.QuotientID{id(2, 1), id(3, 1), id(5, 1)}, path)
}

func TestLongest_Anchors(t *testing.T) {
	st := chainStructure(t, true)

	path, err := search.Longest(st, search.WithStartQuotient(3, 1))
	require.NoError(t, err)
	assert.Equal(t, []triangle.QuotientID{id(3, 1), id(5, 1)}, path)

	path, err = search.Longest(st, search.WithStartIndex(2))
	require.NoError(t, err)
	assert.Equal(t, []triangle.QuotientID{id(3, 1), id(5, 1)}, path)

	// An isolated anchor is a valid length-one sequence.
	path, err = search.Longest(st, search.WithStartQuotient(2, 2))
	require.NoError(t, err)
	assert.Equal(t, []triangle.QuotientID{id(2, 2)}, path)
}

func TestLongest_AbsentAnchorYieldsEmptyResult(t *testing.T) {
	st := chainStructure(t, true)

	path, err := search.Longest(st, search.WithStartQuotient(9, 9))
	require.NoError(t, err)
	assert.Empty(t, path)

	for _, i := range []int{-1, 5, 99} {
		path, err = search.Longest(st, search.WithStartIndex(i))
		require.NoError(t, err)
		assert.Empty(t, path, "index %d", i)
	}
}

func TestLongest_DisallowedAnchorYieldsEmptyResult(t *testing.T) {
	st := chainStructure(t, false)

	path, err := search.Longest(st, search.WithStartQuotient(5, 1))
	require.NoError(t, err)
	assert.Empty(t, path, "non-mirror anchor under the default filter")
}

func TestLongest_TieBreakIsDeterministic(t *testing.T) {
	// Two equal-length branches below the full lattice: 2Z×4Z and 4Z×2Z
	// are incomparable, so both extend the path by one. The smaller
	// structure index wins.
	lib, err := triangle.NewStaticLibrary(sig832, []triangle.Quotient{
		quotient(2, 1, true, [2]int{1, 0}, [2]int{0, 1}),
		quotient(3, 1, true, [2]int{2, 0}, [2]int{0, 4}),
		quotient(3, 2, true, [2]int{4, 0}, [2]int{0, 2}),
	})
	require.NoError(t, err)
	st, err := adjacency.Build(lib, oracle, sig832)
	require.NoError(t, err)

	first, err := search.Longest(st)
	require.NoError(t, err)
	assert.Equal(t, []triangle.QuotientID{id(2, 1), id(3, 1)}, first)

	second, err := search.Longest(st)
	require.NoError(t, err)
	assert.Equal(t, first, second, "repeated runs return the same path")
}

func TestLongest_NilStructure(t *testing.T) {
	_, err := search.Longest(nil)
	assert.ErrorIs(t, err, search.ErrStructureNil)
}

func TestLongest_WorksOnImportedStructure(t *testing.T) {
	// Imported structures carry no subgroup handles; the search only reads
	// the matrices and mirror bits, so it must not care.
	text, err := chainStructure(t, true).ExportString()
	require.NoError(t, err)

	st, err := adjacency.ImportString(text)
	require.NoError(t, err)

	path, err := search.Longest(st)
	require.NoError(t, err)
	assert.Equal(t, []triangle.QuotientID{id(2, 1), id(3, 1), id(5, 1)}, path)
}
