package simplify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcelolooser/HyperCells/simplify"
	"github.com/marcelolooser/HyperCells/word"
)

// cyclic5 presents the cyclic group of order five, ⟨x | x^5⟩.
var cyclic5 = word.Presentation{
	Generators: 1,
	Relators:   []word.Word{{1, 1, 1, 1, 1}},
}

// exponentEqualer decides equality in a cyclic group of order n by the
// exponent sum, an exact stand-in for an external solver.
type exponentEqualer struct{ n int }

func (e exponentEqualer) Equal(_ word.Presentation, a, b word.Word) (bool, error) {
	sum := func(w word.Word) int {
		s := 0
		for _, l := range w {
			if l > 0 {
				s++
			} else {
				s--
			}
		}

		return ((s % e.n) + e.n) % e.n
	}

	return sum(a) == sum(b), nil
}

func TestMethod_ParseAndString(t *testing.T) {
	for _, m := range []simplify.Method{simplify.BruteForce, simplify.KnuthBendix} {
		back, err := simplify.ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, back)
	}

	_, err := simplify.ParseMethod("magic")
	assert.ErrorIs(t, err, simplify.ErrUnknownMethod)
}

func TestSimplify_ShortInputsPassThrough(t *testing.T) {
	assert.True(t, simplify.Simplify(cyclic5, word.Identity()).IsIdentity())
	assert.Equal(t, word.Word{1}, simplify.Simplify(cyclic5, word.Word{1}))

	// Free reduction alone may shorten below the threshold.
	assert.Equal(t, word.Word{2},
		simplify.Simplify(word.Presentation{Generators: 2}, word.Word{1, -1, 2}))
}

func TestSimplify_ZeroMaxLengthDisables(t *testing.T) {
	w := word.Word{1, 1, 1, 1, 1, 1, 1}
	got := simplify.Simplify(cyclic5, w, simplify.WithMaxLength(0))
	assert.Equal(t, w, got)
}

func TestSimplify_BruteForceWithCustomEqualer(t *testing.T) {
	// x^7 = x^2 in C5; the enumeration finds the two-letter form.
	got := simplify.Simplify(cyclic5, word.Word{1, 1, 1, 1, 1, 1, 1},
		simplify.WithEqualer(exponentEqualer{n: 5}))
	assert.Equal(t, word.Word{1, 1}, got)

	// x^4 = x^-1, and the inverse letter is shortlex-reachable.
	got = simplify.Simplify(cyclic5, word.Word{1, 1, 1, 1},
		simplify.WithEqualer(exponentEqualer{n: 5}))
	assert.Equal(t, word.Word{-1}, got)

	// x^5 is the identity.
	got = simplify.Simplify(cyclic5, word.Word{1, 1, 1, 1, 1},
		simplify.WithEqualer(exponentEqualer{n: 5}))
	assert.True(t, got.IsIdentity())
}

func TestSimplify_BruteForceHonorsMaxLength(t *testing.T) {
	// The bound stops the search before the two-letter answer.
	got := simplify.Simplify(cyclic5, word.Word{1, 1, 1, 1, 1, 1, 1},
		simplify.WithEqualer(exponentEqualer{n: 5}),
		simplify.WithMaxLength(1))
	assert.Equal(t, word.Word{1, 1, 1, 1, 1, 1, 1}, got)
}

func TestSimplify_KnuthBendixNormalForm(t *testing.T) {
	cache := simplify.NewCache()

	got := simplify.Simplify(cyclic5, word.Word{1, 1, 1, 1, 1, 1, 1},
		simplify.WithMethod(simplify.KnuthBendix), simplify.WithCache(cache))
	assert.Equal(t, word.Word{1, 1}, got)

	got = simplify.Simplify(cyclic5, word.Word{1, 1, 1, 1},
		simplify.WithMethod(simplify.KnuthBendix), simplify.WithCache(cache))
	assert.Equal(t, word.Word{-1}, got)

	got = simplify.Simplify(cyclic5, word.Word{1, 1, 1, 1, 1},
		simplify.WithMethod(simplify.KnuthBendix), simplify.WithCache(cache))
	assert.True(t, got.IsIdentity())
}

func TestSimplify_MethodsAgree(t *testing.T) {
	cache := simplify.NewCache()
	for _, w := range []word.Word{
		{1, 1, 1, 1, 1, 1, 1},
		{1, 1, 1, 1},
		{-1, -1, -1},
	} {
		brute := simplify.Simplify(cyclic5, w, simplify.WithCache(cache))
		kb := simplify.Simplify(cyclic5, w,
			simplify.WithMethod(simplify.KnuthBendix), simplify.WithCache(cache))
		assert.Equal(t, brute, kb, "word %s", w)
	}
}

func TestSimplify_FreeGroupOnlyReduces(t *testing.T) {
	free := word.Presentation{Generators: 2}
	cache := simplify.NewCache()

	got := simplify.Simplify(free, word.Word{1, 2, -2, 1},
		simplify.WithMethod(simplify.KnuthBendix), simplify.WithCache(cache))
	assert.Equal(t, word.Word{1, 1}, got)

	got = simplify.Simplify(free, word.Word{1, 1}, simplify.WithCache(cache))
	assert.Equal(t, word.Word{1, 1}, got, "nothing shorter exists in the free group")
}

func TestSimplify_IncompleteSystemFallsBackToInput(t *testing.T) {
	// Effort bound 1 derives the stored-rule pair [1, 4], too tight for the
	// five-letter relator; the system stays non-confluent and the word
	// survives unchanged.
	w := word.Word{1, 1, 1, 1, 1, 1, 1}

	got := simplify.Simplify(cyclic5, w,
		simplify.WithMethod(simplify.KnuthBendix),
		simplify.WithMaxLength(1),
		simplify.WithCache(simplify.NewCache()))
	assert.Equal(t, w, got, "the word survives an incomplete completion")

	// Brute force with the default equaler hits the same wall.
	got = simplify.Simplify(cyclic5, w,
		simplify.WithMaxLength(1),
		simplify.WithCache(simplify.NewCache()))
	assert.Equal(t, w, got)
}

func TestSimplify_InvalidPresentationKeepsWord(t *testing.T) {
	bad := word.Presentation{Generators: 1, Relators: []word.Word{{2}}}
	w := word.Word{1, 1}
	assert.Equal(t, w, simplify.Simplify(bad, w))
}

func TestKBCompleter_CyclicGroup(t *testing.T) {
	rs, err := simplify.KBCompleter{}.Complete(cyclic5, [2]int{7, 16})
	require.NoError(t, err)
	assert.True(t, rs.Confluent())
	assert.Equal(t, 1, rs.Generators())

	// Normal forms of C5 under shortlex: e, x, x^-1, x^2, x^-2.
	cases := map[string]word.Word{
		"e":     {},
		"x1":    {1},
		"x1^-1": {1, 1, 1, 1},
		"x1^2":  {1, 1, 1, 1, 1, 1, 1},
		"x1^-2": {1, 1, 1},
	}
	for want, input := range cases {
		nf := rs.NormalForm(input)
		assert.Equal(t, want, nf.String(), "normal form of %s", input)
	}

	eq, err := rs.Equal(word.Word{1, 1, 1, 1, 1, 1, 1}, word.Word{1, 1})
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = rs.Equal(word.Word{1}, word.Word{1, 1})
	require.NoError(t, err)
	assert.False(t, eq)
}

func TestKBCompleter_Divergence(t *testing.T) {
	rs, err := simplify.KBCompleter{MaxRules: 2}.Complete(cyclic5, [2]int{7, 16})
	assert.ErrorIs(t, err, simplify.ErrCompletionDiverged)
	require.NotNil(t, rs, "the partial system is returned alongside the error")
	assert.False(t, rs.Confluent())

	_, err = rs.Equal(word.Word{1}, word.Word{1})
	assert.ErrorIs(t, err, simplify.ErrNotConfluent)
}

func TestKBCompleter_TightLengthBoundDropsRules(t *testing.T) {
	// The pair [1, 4] cannot store the five-letter relator; completion
	// succeeds but the result is not confluent.
	rs, err := simplify.KBCompleter{}.Complete(cyclic5, [2]int{1, 4})
	require.NoError(t, err)
	assert.False(t, rs.Confluent())
	assert.Equal(t, 2, rs.MaxRuleLen(), "only the free-cancellation rules survive")
}

func TestCache_CompletionRunsOnce(t *testing.T) {
	cache := simplify.NewCache()
	w := word.Word{1, 1, 1, 1, 1, 1, 1}

	simplify.Simplify(cyclic5, w,
		simplify.WithMethod(simplify.KnuthBendix), simplify.WithCache(cache))
	assert.Equal(t, 1, cache.Len())

	simplify.Simplify(cyclic5, w,
		simplify.WithMethod(simplify.KnuthBendix), simplify.WithCache(cache))
	assert.Equal(t, 1, cache.Len(), "the second call reuses the cached system")

	cache.Flush()
	assert.Equal(t, 0, cache.Len())
}

func TestDefaultCache_Flush(t *testing.T) {
	simplify.FlushCache()
	simplify.Simplify(cyclic5, word.Word{1, 1, 1, 1},
		simplify.WithMethod(simplify.KnuthBendix))
	assert.Equal(t, 1, simplify.DefaultCache.Len())

	simplify.FlushCache()
	assert.Equal(t, 0, simplify.DefaultCache.Len())
}
