// Package word implements free-group words over a finite generator set and
// finitely presented groups, as consumed by the simplification engine.
//
// A Word is a sequence of nonzero letters: letter +i denotes the generator
// xi (one-based), letter -i its inverse. Words are kept freely reduced by
// the constructors in this package (no xi·xi⁻¹ factor survives), but the
// type itself does not enforce reduction: callers producing letters by
// hand should finish with Reduce.
//
// Key features:
//
//   - Reduce, Inverse, Concat: elementary free-group operations
//   - String / Parse: the x1*x2^-1 generator notation (round-trips)
//   - Presentation: generator count + relator list with a stable content
//     hash used as a cache key by the simplification engine
//
// Errors:
//
//   - ErrWordSyntax:   unparseable word text
//   - ErrBadGenerator: a generator index outside 1..Generators
package word

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrWordSyntax is returned by Parse for text that is not a word in
	// generator notation.
	ErrWordSyntax = errors.New("word: invalid word syntax")

	// ErrBadGenerator is returned when a letter references a generator
	// outside the presentation's range.
	ErrBadGenerator = errors.New("word: generator index out of range")
)

// Word is a free-group word: letter +i is generator xi, -i its inverse.
// The empty word is the group identity.
type Word []int

// Identity returns the empty word.
func Identity() Word { return Word{} }

// IsIdentity reports whether w is the empty word.
func (w Word) IsIdentity() bool { return len(w) == 0 }

// Len reports the letter count of w.
func (w Word) Len() int { return len(w) }

// Equal reports letter-wise equality.
func (w Word) Equal(v Word) bool {
	if len(w) != len(v) {
		return false
	}
	for i, l := range w {
		if v[i] != l {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of w.
func (w Word) Clone() Word {
	out := make(Word, len(w))
	copy(out, w)

	return out
}

// Reduce returns the free reduction of w: all adjacent xi·xi⁻¹ pairs are
// cancelled, transitively. The receiver is not modified.
func (w Word) Reduce() Word {
	out := make(Word, 0, len(w))
	for _, l := range w {
		if n := len(out); n > 0 && out[n-1] == -l {
			out = out[:n-1]
			continue
		}
		out = append(out, l)
	}

	return out
}

// Inverse returns w⁻¹ (letters reversed and negated).
func (w Word) Inverse() Word {
	out := make(Word, len(w))
	for i, l := range w {
		out[len(w)-1-i] = -l
	}

	return out
}

// Concat returns the free reduction of w·v.
func (w Word) Concat(v Word) Word {
	joined := make(Word, 0, len(w)+len(v))
	joined = append(joined, w...)
	joined = append(joined, v...)

	return joined.Reduce()
}

// MaxGenerator returns the largest generator index referenced by w
// (0 for the identity).
func (w Word) MaxGenerator() int {
	max := 0
	for _, l := range w {
		if l < 0 {
			l = -l
		}
		if l > max {
			max = l
		}
	}

	return max
}

// String renders w in generator notation, collapsing runs of equal letters
// into powers: x1*x2^-2. The identity renders as "e". The output parses
// back to an equal word.
func (w Word) String() string {
	if len(w) == 0 {
		return "e"
	}

	var sb strings.Builder
	for i := 0; i < len(w); {
		// 1. Measure the run of the current letter.
		j := i
		for j < len(w) && w[j] == w[i] {
			j++
		}
		run := j - i

		// 2. Render the factor.
		if i > 0 {
			sb.WriteByte('*')
		}
		gen := w[i]
		exp := run
		if gen < 0 {
			gen = -gen
			exp = -run
		}
		if exp == 1 {
			fmt.Fprintf(&sb, "x%d", gen)
		} else {
			fmt.Fprintf(&sb, "x%d^%d", gen, exp)
		}

		i = j
	}

	return sb.String()
}
