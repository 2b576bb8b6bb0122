package simplify

import (
	"errors"

	"github.com/marcelolooser/HyperCells/word"
)

// ErrNotConfluent is returned when a rewrite system that did not reach
// confluence is asked to decide word equality.
var ErrNotConfluent = errors.New("simplify: rewrite system is not confluent")

// rule rewrites an occurrence of lhs into rhs, with rhs shortlex-smaller
// than lhs.
type rule struct {
	lhs, rhs word.Word
}

// RewriteSystem is a set of shortlex-reducing rewrite rules over the free
// monoid on the generators and their formal inverses. A confluent system
// assigns every group element a unique normal form; a non-confluent one
// still rewrites, but normal forms of equal elements may differ.
type RewriteSystem struct {
	generators int
	rules      []rule
	confluent  bool
}

// Generators returns the generator count of the source presentation.
func (rs *RewriteSystem) Generators() int { return rs.generators }

// Rules returns the number of rewrite rules.
func (rs *RewriteSystem) Rules() int { return len(rs.rules) }

// Confluent reports whether completion reached a confluent system.
func (rs *RewriteSystem) Confluent() bool { return rs.confluent }

// MaxRuleLen returns the length of the longest stored left-hand side.
func (rs *RewriteSystem) MaxRuleLen() int {
	max := 0
	for _, r := range rs.rules {
		if len(r.lhs) > max {
			max = len(r.lhs)
		}
	}

	return max
}

// NormalForm rewrites w with the leftmost applicable rule until no rule
// applies. Every rule is shortlex-reducing, so the loop terminates.
func (rs *RewriteSystem) NormalForm(w word.Word) word.Word {
	return normalForm(rs.rules, w.Reduce())
}

// Equal reports whether a and b name the same group element, by comparing
// normal forms. Only a confluent system can decide this.
func (rs *RewriteSystem) Equal(a, b word.Word) (bool, error) {
	if !rs.confluent {
		return false, ErrNotConfluent
	}

	return rs.NormalForm(a).Equal(rs.NormalForm(b)), nil
}

// normalForm is the rewriting core shared with the completer, which needs
// it on rule sets still under construction.
func normalForm(rules []rule, w word.Word) word.Word {
	cur := w
	for {
		i, r := leftmostRedex(rules, cur)
		if r == nil {
			return cur
		}
		next := make(word.Word, 0, len(cur)-len(r.lhs)+len(r.rhs))
		next = append(next, cur[:i]...)
		next = append(next, r.rhs...)
		next = append(next, cur[i+len(r.lhs):]...)
		cur = next
	}
}

// leftmostRedex finds the leftmost position where any rule applies.
func leftmostRedex(rules []rule, w word.Word) (int, *rule) {
	for i := 0; i < len(w); i++ {
		for k := range rules {
			if hasPrefix(w[i:], rules[k].lhs) {
				return i, &rules[k]
			}
		}
	}

	return 0, nil
}

// hasPrefix reports whether w starts with p.
func hasPrefix(w, p word.Word) bool {
	if len(p) > len(w) {
		return false
	}
	for i := range p {
		if w[i] != p[i] {
			return false
		}
	}

	return true
}

// symbolRank orders the monoid symbols x1 < x1^-1 < x2 < x2^-1 < ...
func symbolRank(letter int) int {
	if letter > 0 {
		return 2 * (letter - 1)
	}

	return 2*(-letter-1) + 1
}

// lessShortlex reports whether a precedes b in shortlex order.
func lessShortlex(a, b word.Word) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	for i := range a {
		if ra, rb := symbolRank(a[i]), symbolRank(b[i]); ra != rb {
			return ra < rb
		}
	}

	return false
}
