package adjacency_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelolooser/HyperCells/adjacency"
	"github.com/marcelolooser/HyperCells/triangle"
)

var (
	sig832 = triangle.Signature{P: 8, Q: 3, R: 2}
	oracle = triangle.ZOracle{}
)

// testLibrary holds four quotients with hand-computed containments:
// whole ⊃ rows ⊃ even ⊃ coarse is a chain, and additionally whole ⊃ even,
// whole ⊃ coarse, rows ⊃ coarse (transitive closure).
func testLibrary(t *testing.T) *triangle.StaticLibrary {
	t.Helper()
	q := func(g, n int, mirror bool, rows ...[2]int) triangle.Quotient {
		return triangle.Quotient{
			Genus:    g,
			Number:   n,
			Mirror:   mirror,
			Subgroup: triangle.MustZLattice(sig832, rows...),
		}
	}
	lib, err := triangle.NewStaticLibrary(sig832, []triangle.Quotient{
		q(2, 1, true, [2]int{1, 0}, [2]int{0, 1}),  // whole Z²
		q(2, 2, false, [2]int{2, 0}, [2]int{0, 1}), // rows 2Z×Z
		q(3, 1, true, [2]int{2, 0}, [2]int{0, 2}),  // even 2Z×2Z
		q(5, 1, true, [2]int{4, 0}, [2]int{0, 4}),  // coarse 4Z×4Z
	})
	require.NoError(t, err)

	return lib
}

func TestBuild_FullMatrixAgainstHandComputed(t *testing.T) {
	st, err := adjacency.Build(testLibrary(t), oracle, sig832)
	require.NoError(t, err)
	require.Equal(t, 4, st.Len())

	// Positive entries of the full relation: (i,j) iff Q[j] ⊴ Q[i].
	want := map[[2]int]bool{
		{0, 1}: true, {0, 2}: true, {0, 3}: true,
		{1, 2}: true, {1, 3}: true,
		{2, 3}: true,
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			v, err := st.Full().At(i, j)
			require.NoError(t, err)
			if want[[2]int{i, j}] {
				assert.Equal(t, 1, v, "full(%d,%d)", i, j)
			} else {
				assert.Equal(t, 0, v, "full(%d,%d)", i, j)
			}
		}
	}
}

func TestBuild_NearestNeighborIsCoveringRelation(t *testing.T) {
	st, err := adjacency.Build(testLibrary(t), oracle, sig832)
	require.NoError(t, err)

	// Only the three chain links survive; transitive edges are dropped.
	assert.Equal(t, []adjacency.SparseEntry{
		{Row: 0, Col: 1, Val: 1},
		{Row: 1, Col: 2, Val: 1},
		{Row: 2, Col: 3, Val: 1},
	}, st.Nearest().ToSparse())
}

func TestBuild_MirrorBitsAndLookups(t *testing.T) {
	st, err := adjacency.Build(testLibrary(t), oracle, sig832)
	require.NoError(t, err)

	assert.True(t, st.Mirror(0))
	assert.False(t, st.Mirror(1))
	assert.True(t, st.Mirror(2))
	assert.False(t, st.Mirror(99), "out of range reads as non-mirror")

	i, ok := st.IndexOf(triangle.QuotientID{Genus: 3, Number: 1})
	require.True(t, ok)
	assert.Equal(t, 2, i)

	_, ok = st.IndexOf(triangle.QuotientID{Genus: 9, Number: 9})
	assert.False(t, ok)

	q, err := st.Quotient(1)
	require.NoError(t, err)
	assert.Equal(t, triangle.QuotientID{Genus: 2, Number: 2}, q.ID())

	_, err = st.Quotient(4)
	assert.ErrorIs(t, err, adjacency.ErrOutOfRange)
}

func TestBuild_GenusBoundFiltersLibrary(t *testing.T) {
	st, err := adjacency.Build(testLibrary(t), oracle, sig832, adjacency.WithGenusBound(2))
	require.NoError(t, err)
	assert.Equal(t, 2, st.Len())
	assert.Equal(t, 2, st.GenusBound())
}

func TestBuild_BoundClampedToDefault(t *testing.T) {
	for _, bad := range []int{0, -5, 102, 1000} {
		st, err := adjacency.Build(testLibrary(t), oracle, sig832, adjacency.WithGenusBound(bad))
		require.NoError(t, err)
		assert.Equal(t, adjacency.DefaultGenusBound, st.GenusBound(), "bound %d clamps to default", bad)
	}

	// Boundary values are accepted as-is.
	st, err := adjacency.Build(testLibrary(t), oracle, sig832, adjacency.WithGenusBound(101))
	require.NoError(t, err)
	assert.Equal(t, 101, st.GenusBound())
}

func TestBuild_NilCollaborators(t *testing.T) {
	_, err := adjacency.Build(nil, oracle, sig832)
	assert.ErrorIs(t, err, adjacency.ErrLibraryNil)

	_, err = adjacency.Build(testLibrary(t), nil, sig832)
	assert.ErrorIs(t, err, adjacency.ErrOracleNil)
}

func TestBuild_UnknownSignaturePropagates(t *testing.T) {
	_, err := adjacency.Build(testLibrary(t), oracle, triangle.Signature{P: 7, Q: 3, R: 2})
	assert.ErrorIs(t, err, triangle.ErrUnknownSignature)
}

func TestBuild_TranslationCache(t *testing.T) {
	cache := adjacency.NewCache()

	_, err := adjacency.Build(testLibrary(t), oracle, sig832, adjacency.WithCache(cache))
	require.NoError(t, err)
	assert.Equal(t, 4, cache.Len())

	// A second build over the same library reuses the constructions.
	_, err = adjacency.Build(testLibrary(t), oracle, sig832, adjacency.WithCache(cache))
	require.NoError(t, err)
	assert.Equal(t, 4, cache.Len())

	cache.Flush()
	assert.Equal(t, 0, cache.Len())
}

func TestStructure_Equal(t *testing.T) {
	a, err := adjacency.Build(testLibrary(t), oracle, sig832)
	require.NoError(t, err)
	b, err := adjacency.Build(testLibrary(t), oracle, sig832)
	require.NoError(t, err)
	assert.True(t, adjacency.Equal(a, b))

	c, err := adjacency.Build(testLibrary(t), oracle, sig832, adjacency.WithGenusBound(2))
	require.NoError(t, err)
	assert.False(t, adjacency.Equal(a, c))

	d, err := adjacency.Build(testLibrary(t), oracle, sig832, adjacency.WithSparse())
	require.NoError(t, err)
	assert.False(t, adjacency.Equal(a, d), "sparse flag is part of the attribute set")
}
