package simplify

import (
	"errors"

	pkgerrors "github.com/pkg/errors"

	"github.com/marcelolooser/HyperCells/word"
)

// ErrCompletionDiverged is returned when completion generates more rules
// than the safety cap allows.
var ErrCompletionDiverged = errors.New("simplify: completion diverged")

// Completer turns a presentation into a rewrite system. The maxRuleLen
// pair bounds the stored rules to force termination: rules whose
// left-hand side exceeds maxRuleLen[1] are discarded, which leaves the
// system usable but not confluent.
type Completer interface {
	Complete(p word.Presentation, maxRuleLen [2]int) (*RewriteSystem, error)
}

// DefaultMaxRules is the safety cap on the rule count. Triangle-group
// presentations complete within a handful of short rules; anything
// approaching this is diverging.
const DefaultMaxRules = 512

// lengthBounds derives the stored-rule length pair from an effort bound.
func lengthBounds(lmax int) [2]int {
	return [2]int{lmax, 2 * (1 + lmax)}
}

// KBCompleter runs bounded Knuth-Bendix completion over the free monoid
// on the generators and their formal inverses, under shortlex order.
// Free cancellation is seeded as explicit rules, each relator as a rule
// rewriting it to the identity; critical pairs are then resolved until
// none remain.
//
// Completion is undecidable in general, so two bounds apply. Rules longer
// than the length pair are dropped and the result is marked
// non-confluent; NormalForm still rewrites, but Equal refuses to decide.
// Exceeding the rule-count cap returns the partial system together with
// ErrCompletionDiverged.
type KBCompleter struct {
	// MaxRules caps the rule count. Zero means DefaultMaxRules.
	MaxRules int
}

// Complete implements Completer.
func (c KBCompleter) Complete(p word.Presentation, maxRuleLen [2]int) (*RewriteSystem, error) {
	if err := p.Validate(); err != nil {
		return nil, pkgerrors.Wrap(err, "simplify: completing presentation")
	}

	maxLen := maxRuleLen[1]
	if maxLen <= 0 {
		maxLen = 64 // permissive fallback for direct callers
	}
	maxRules := c.MaxRules
	if maxRules <= 0 {
		maxRules = DefaultMaxRules
	}

	// 1. Seed free cancellation and the relators.
	complete := true
	rules := make([]rule, 0, 2*p.Generators+len(p.Relators))
	for g := 1; g <= p.Generators; g++ {
		rules = append(rules,
			rule{lhs: word.Word{g, -g}, rhs: word.Identity()},
			rule{lhs: word.Word{-g, g}, rhs: word.Identity()},
		)
	}
	for _, r := range p.Relators {
		reduced := r.Reduce()
		if reduced.IsIdentity() {
			continue
		}
		if len(reduced) > maxLen {
			complete = false // relator rule dropped

			continue
		}
		if len(rules) >= maxRules {
			return &RewriteSystem{generators: p.Generators, rules: rules}, ErrCompletionDiverged
		}
		rules = append(rules, rule{lhs: reduced, rhs: word.Identity()})
	}

	// 2. Resolve critical pairs until a full pass adds nothing.
	for {
		added := false
		for i := 0; i < len(rules); i++ {
			for j := 0; j < len(rules); j++ {
				pairs := criticalPairs(rules[i], rules[j], i == j)
				for _, cp := range pairs {
					a := normalForm(rules, cp[0])
					b := normalForm(rules, cp[1])
					if a.Equal(b) {
						continue
					}
					if lessShortlex(a, b) {
						a, b = b, a
					}
					if len(a) > maxLen {
						complete = false // unresolvable pair dropped

						continue
					}
					if len(rules) >= maxRules {
						return &RewriteSystem{generators: p.Generators, rules: rules}, ErrCompletionDiverged
					}
					rules = append(rules, rule{lhs: a, rhs: b})
					added = true
				}
			}
		}
		if !added {
			break
		}
	}

	return &RewriteSystem{generators: p.Generators, rules: rules, confluent: complete}, nil
}

// criticalPairs returns the superposition reductions of two rules: proper
// overlaps (a suffix of a.lhs is a prefix of b.lhs) and inclusions (b.lhs
// occurs inside a.lhs). Each pair holds the two one-step reductions of the
// same superposition word. The self flag skips the trivial whole-word
// overlap of a rule with itself.
func criticalPairs(a, b rule, self bool) [][2]word.Word {
	var out [][2]word.Word

	// Proper overlaps: a.lhs = u·v, b.lhs = v·w with 0 < |v| < min.
	max := len(a.lhs)
	if len(b.lhs) < max {
		max = len(b.lhs)
	}
	for k := 1; k < max; k++ {
		if !hasPrefix(b.lhs, a.lhs[len(a.lhs)-k:]) {
			continue
		}
		// Superposition u·v·w, reduced via a (rhs_a·w) and via b (u·rhs_b).
		left := append(a.rhs.Clone(), b.lhs[k:]...)
		right := append(word.Word{}, a.lhs[:len(a.lhs)-k]...)
		right = append(right, b.rhs...)
		out = append(out, [2]word.Word{left, right})
	}

	// Inclusions: b.lhs inside a.lhs.
	if len(b.lhs) < len(a.lhs) || (!self && len(b.lhs) == len(a.lhs)) {
		for t := 0; t+len(b.lhs) <= len(a.lhs); t++ {
			if !hasPrefix(a.lhs[t:], b.lhs) {
				continue
			}
			inner := append(word.Word{}, a.lhs[:t]...)
			inner = append(inner, b.rhs...)
			inner = append(inner, a.lhs[t+len(b.lhs):]...)
			out = append(out, [2]word.Word{a.rhs.Clone(), inner})
		}
	}

	return out
}
