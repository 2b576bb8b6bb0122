package word_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelolooser/HyperCells/word"
)

func TestReduce(t *testing.T) {
	cases := []struct {
		name string
		in   word.Word
		want word.Word
	}{
		{"identity", word.Word{}, word.Word{}},
		{"no cancellation", word.Word{1, 2, 1}, word.Word{1, 2, 1}},
		{"adjacent pair", word.Word{1, -1}, word.Word{}},
		{"cascade", word.Word{1, 2, -2, -1, 3}, word.Word{3}},
		{"interior", word.Word{2, 1, -1, 2}, word.Word{2, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.True(t, tc.in.Reduce().Equal(tc.want))
		})
	}
}

func TestInverseConcat(t *testing.T) {
	w := word.Word{1, 2, -3}
	assert.True(t, w.Inverse().Equal(word.Word{3, -2, -1}))
	assert.True(t, w.Concat(w.Inverse()).IsIdentity())
	assert.True(t, w.Inverse().Concat(w).IsIdentity())
}

func TestString(t *testing.T) {
	cases := []struct {
		in   word.Word
		want string
	}{
		{word.Word{}, "e"},
		{word.Word{1}, "x1"},
		{word.Word{-2}, "x2^-1"},
		{word.Word{1, 1, 1}, "x1^3"},
		{word.Word{1, -2, -2, 1}, "x1*x2^-2*x1"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.in.String())
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want word.Word
	}{
		{"e", word.Word{}},
		{"", word.Word{}},
		{"x1", word.Word{1}},
		{"x2^-1", word.Word{-2}},
		{"x1^3", word.Word{1, 1, 1}},
		{"x1*x2^-2*x1", word.Word{1, -2, -2, 1}},
		{"x1^0", word.Word{}},
		{"x1*x1^-1", word.Word{}},
		{" x1 * x2 ", word.Word{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := word.Parse(tc.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tc.want), "got %s want %s", got, tc.want)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, w := range []word.Word{{}, {1}, {1, 1, -2, 3, 3, 3}, {-1, -1, 2}} {
		got, err := word.Parse(w.String())
		require.NoError(t, err)
		assert.True(t, got.Equal(w))
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"y1", "x0", "x", "x1**x2", "x1^", "1x", "x1^x2"} {
		t.Run(in, func(t *testing.T) {
			_, err := word.Parse(in)
			assert.ErrorIs(t, err, word.ErrWordSyntax)
		})
	}
}

func TestPresentationHash(t *testing.T) {
	p1 := word.Presentation{Generators: 2, Relators: []word.Word{{1, 1, 1}, {2, 2}}}
	p2 := word.Presentation{Generators: 2, Relators: []word.Word{{1, 1, 1}, {2, 2}}}
	p3 := word.Presentation{Generators: 2, Relators: []word.Word{{2, 2}, {1, 1, 1}}}
	p4 := word.Presentation{Generators: 3, Relators: []word.Word{{1, 1, 1}, {2, 2}}}

	assert.Equal(t, p1.Hash(), p2.Hash(), "structurally identical presentations share a hash")
	assert.NotEqual(t, p1.Hash(), p3.Hash(), "relator order is part of the identity")
	assert.NotEqual(t, p1.Hash(), p4.Hash(), "generator count is part of the identity")
}

func TestPresentationValidate(t *testing.T) {
	ok := word.Presentation{Generators: 2, Relators: []word.Word{{1, -2}}}
	assert.NoError(t, ok.Validate())

	bad := word.Presentation{Generators: 1, Relators: []word.Word{{1, 2}}}
	assert.ErrorIs(t, bad.Validate(), word.ErrBadGenerator)
}
