package simplify

import (
	log "github.com/sirupsen/logrus"

	"github.com/marcelolooser/HyperCells/word"
)

// DefaultMaxLength lets the effort bound follow the input word length.
const DefaultMaxLength = -1

// Equaler decides whether two words name the same element of the group
// given by p.
type Equaler interface {
	Equal(p word.Presentation, a, b word.Word) (bool, error)
}

// Options configures a Simplify call.
//
// Defaults:
//   - method BruteForce;
//   - max length DefaultMaxLength (the input word length);
//   - word equality via a Knuth-Bendix completed rewrite system;
//   - completion via KBCompleter with the default rule cap;
//   - the package DefaultCache.
type Options struct {
	method    Method
	maxLength int
	equaler   Equaler
	completer Completer
	cache     *Cache
}

// Option adjusts one simplification knob.
type Option func(*Options)

// WithMethod selects the simplification strategy.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithMaxLength bounds the simplification effort. Zero disables
// simplification entirely, a negative value tracks the input word length.
// Brute force never proposes words longer than the bound; Knuth-Bendix
// derives its stored-rule length pair from it.
func WithMaxLength(n int) Option {
	return func(o *Options) { o.maxLength = n }
}

// WithEqualer replaces the word-equality decision used by brute force.
func WithEqualer(e Equaler) Option {
	return func(o *Options) { o.equaler = e }
}

// WithCompleter replaces the completion strategy used by Knuth-Bendix
// (and by the default Equaler).
func WithCompleter(c Completer) Option {
	return func(o *Options) { o.completer = c }
}

// WithCache routes rewrite-system lookups through a private cache.
// A nil cache keeps the package default.
func WithCache(c *Cache) Option {
	return func(o *Options) {
		if c != nil {
			o.cache = c
		}
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	options := Options{
		method:    BruteForce,
		maxLength: DefaultMaxLength,
		completer: KBCompleter{},
		cache:     DefaultCache,
	}
	for _, opt := range opts {
		opt(&options)
	}

	return options
}

// Simplify returns a word equal to w in the group presented by p and no
// longer than w. It never fails: whenever the selected strategy cannot
// produce an answer (diverging completion, failing equality checks, an
// invalid presentation), the event is logged at warning level and the
// freely reduced input is returned unchanged.
//
// Already-short inputs pass through: the identity and single letters have
// nothing to simplify.
func Simplify(p word.Presentation, w word.Word, opts ...Option) word.Word {
	options := gatherOptions(opts...)

	// 1. Free reduction is always sound and often sufficient.
	reduced := w.Reduce()
	if len(reduced) <= 1 {
		return reduced
	}

	if err := p.Validate(); err != nil {
		log.Warnf("simplify: invalid presentation, word %s kept: %v", reduced, err)

		return reduced
	}

	// 2. Resolve the effort bound.
	bound := options.maxLength
	if bound == 0 {
		return reduced
	}
	if bound < 0 {
		bound = len(reduced)
	}

	// 3. Dispatch.
	switch options.method {
	case KnuthBendix:
		return simplifyRewrite(p, reduced, bound, options)
	default:
		return simplifyBrute(p, reduced, bound, options)
	}
}

// simplifyBrute enumerates candidate words in shortlex order, shortest
// first, and returns the first one equal to w. Enumeration stops at
// min(len(w)-1, bound) letters, so the result is strictly shorter than w
// or w itself.
func simplifyBrute(p word.Presentation, w word.Word, bound int, options Options) word.Word {
	equaler := options.equaler
	if equaler == nil {
		equaler = rewriteEqualer{
			completer: options.completer,
			cache:     options.cache,
			bounds:    lengthBounds(bound),
		}
	}

	budget := len(w) - 1
	if bound < budget {
		budget = bound
	}

	// The identity is the shortest candidate of all.
	ok, err := equaler.Equal(p, word.Identity(), w)
	if err != nil {
		log.Warnf("simplify: equality check failed, word %s kept: %v", w, err)

		return w
	}
	if ok {
		return word.Identity()
	}

	symbols := 2 * p.Generators
	digits := make([]int, 0, budget)
	for length := 1; length <= budget; length++ {
		digits = digits[:0]
		for i := 0; i < length; i++ {
			digits = append(digits, 0)
		}
		for {
			if c := candidateWord(digits); c != nil {
				ok, err := equaler.Equal(p, c, w)
				if err != nil {
					log.Warnf("simplify: equality check failed, word %s kept: %v", w, err)

					return w
				}
				if ok {
					return c
				}
			}
			if !nextDigits(digits, symbols) {
				break
			}
		}
	}

	return w
}

// candidateWord maps enumeration digits to letters in symbol-rank order
// (x1, x1^-1, x2, ...), returning nil for words that are not freely
// reduced; those repeat a shorter candidate.
func candidateWord(digits []int) word.Word {
	out := make(word.Word, len(digits))
	for i, d := range digits {
		letter := d/2 + 1
		if d%2 == 1 {
			letter = -letter
		}
		if i > 0 && out[i-1] == -letter {
			return nil
		}
		out[i] = letter
	}

	return out
}

// nextDigits advances a base-n odometer, most significant digit first.
func nextDigits(digits []int, n int) bool {
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i]++
		if digits[i] < n {
			return true
		}
		digits[i] = 0
	}

	return false
}

// simplifyRewrite rewrites w to its normal form under the completed
// system for p, completing (and caching) on first use. The stored-rule
// length pair [bound, 2*(1+bound)] forces completion to terminate; when
// the system is not confluent, or a cached system carries rules longer
// than the pair admits, the input survives unchanged.
func simplifyRewrite(p word.Presentation, w word.Word, bound int, options Options) word.Word {
	bounds := lengthBounds(bound)

	rs, err := completedSystem(p, bounds, options.completer, options.cache)
	if err != nil {
		log.Warnf("simplify: completion failed, word %s kept: %v", w, err)

		return w
	}
	if !rs.Confluent() || rs.MaxRuleLen() > bounds[1] {
		log.Warnf("simplify: rewrite system incomplete within bound %v, word %s kept", bounds, w)

		return w
	}

	return rs.NormalForm(w)
}

// completedSystem returns the cached system for p, running completion on
// a miss. Only confluent systems are cached; partial ones depend on the
// bounds of the call that produced them.
func completedSystem(p word.Presentation, bounds [2]int, completer Completer, cache *Cache) (*RewriteSystem, error) {
	if rs, ok := cache.get(p); ok {
		return rs, nil
	}

	rs, err := completer.Complete(p, bounds)
	if err != nil {
		return nil, err
	}
	if rs.Confluent() {
		cache.put(p, rs)
	}

	return rs, nil
}

// rewriteEqualer decides word equality through the completed rewrite
// system, the default when no Equaler is supplied.
type rewriteEqualer struct {
	completer Completer
	cache     *Cache
	bounds    [2]int
}

// Equal implements Equaler.
func (e rewriteEqualer) Equal(p word.Presentation, a, b word.Word) (bool, error) {
	rs, err := completedSystem(p, e.bounds, e.completer, e.cache)
	if err != nil {
		return false, err
	}

	return rs.Equal(a, b)
}
