package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelolooser/HyperCells/adjacency"
	"github.com/marcelolooser/HyperCells/catalog"
	"github.com/marcelolooser/HyperCells/triangle"
)

var (
	sig832 = triangle.Signature{P: 8, Q: 3, R: 2}
	oracle = triangle.ZOracle{}
)

func testStructure(t *testing.T, opts ...adjacency.Option) *adjacency.Structure {
	t.Helper()
	lib, err := triangle.NewStaticLibrary(sig832, []triangle.Quotient{
		{Genus: 2, Number: 1, Mirror: true,
			Subgroup: triangle.MustZLattice(sig832, [2]int{1, 0}, [2]int{0, 1})},
		{Genus: 3, Number: 1, Mirror: true,
			Subgroup: triangle.MustZLattice(sig832, [2]int{2, 0}, [2]int{0, 2})},
	})
	require.NoError(t, err)

	st, err := adjacency.Build(lib, oracle, sig832, opts...)
	require.NoError(t, err)

	return st
}

func openStore(t *testing.T) *catalog.Store {
	t.Helper()
	s, err := catalog.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, s.Close()) })

	return s
}

func TestStore_PutGetRoundTrip(t *testing.T) {
	s := openStore(t)
	st := testStructure(t)

	require.NoError(t, s.Put(st))

	back, ok, err := s.Get(sig832, st.GenusBound())
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, adjacency.Equal(st, back))
}

func TestStore_GetMissing(t *testing.T) {
	s := openStore(t)

	_, ok, err := s.Get(sig832, 66)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_PutReplaces(t *testing.T) {
	s := openStore(t)

	dense := testStructure(t)
	sparse := testStructure(t, adjacency.WithSparse())
	require.Equal(t, dense.GenusBound(), sparse.GenusBound())

	require.NoError(t, s.Put(dense))
	require.NoError(t, s.Put(sparse))

	back, ok, err := s.Get(sig832, dense.GenusBound())
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, adjacency.Equal(sparse, back))
	assert.False(t, adjacency.Equal(dense, back))
}

func TestStore_Delete(t *testing.T) {
	s := openStore(t)
	st := testStructure(t)

	require.NoError(t, s.Put(st))
	require.NoError(t, s.Delete(sig832, st.GenusBound()))

	_, ok, err := s.Get(sig832, st.GenusBound())
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting an absent entry is not an error.
	assert.NoError(t, s.Delete(sig832, 7))
}

func TestStore_BoundsPerSignature(t *testing.T) {
	s := openStore(t)

	require.NoError(t, s.Put(testStructure(t)))
	require.NoError(t, s.Put(testStructure(t, adjacency.WithGenusBound(2))))
	require.NoError(t, s.Put(testStructure(t, adjacency.WithGenusBound(10))))

	bounds, err := s.Bounds(sig832)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 10, adjacency.DefaultGenusBound}, bounds)

	other, err := s.Bounds(triangle.Signature{P: 7, Q: 3, R: 2})
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestStore_PutNil(t *testing.T) {
	s := openStore(t)
	assert.ErrorIs(t, s.Put(nil), catalog.ErrStructureNil)
}

func TestStore_DurableAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := catalog.Open(dir)
	require.NoError(t, err)
	st := testStructure(t)
	require.NoError(t, s.Put(st))
	require.NoError(t, s.Close())

	s, err = catalog.Open(dir)
	require.NoError(t, err)
	defer s.Close()

	back, ok, err := s.Get(sig832, st.GenusBound())
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, adjacency.Equal(st, back))
}
