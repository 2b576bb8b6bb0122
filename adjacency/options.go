// Package adjacency: functional configuration for Build.
// Defaults are constants (single source of truth); With* constructors never
// fail: per the bound-out-of-range policy, a genus bound outside the valid
// range silently falls back to the default rather than erroring.
package adjacency

// Genus-bound policy.
const (
	// MinGenusBound is the smallest accepted genus bound.
	MinGenusBound = 1

	// MaxGenusBound is the largest accepted genus bound; Conder's reference
	// enumeration stops at genus 101.
	MaxGenusBound = 101

	// DefaultGenusBound is the effective bound when none is given or the
	// given one is outside [MinGenusBound, MaxGenusBound].
	DefaultGenusBound = 66
)

// DefaultSparse is the default matrix encoding flag (dense).
const DefaultSparse = false

// Option configures Build.
type Option func(*Options)

// Options holds the effective Build configuration. Fields are unexported;
// public entry points accept ...Option and resolve them via gatherOptions.
type Options struct {
	bound  int
	sparse bool
	cache  *Cache
}

// WithGenusBound sets the genus bound for the quotient list. Values outside
// [MinGenusBound, MaxGenusBound] are silently replaced by DefaultGenusBound;
// this clamping is the documented contract, not an error.
func WithGenusBound(b int) Option {
	return func(o *Options) { o.bound = b }
}

// WithSparse requests the sparse ((row, col), value) matrix encoding for
// export. The in-memory relation is identical either way.
func WithSparse() Option {
	return func(o *Options) { o.sparse = true }
}

// WithCache makes Build use the given translation-construction cache
// instead of the shared process-wide one. Passing nil has no effect.
func WithCache(c *Cache) Option {
	return func(o *Options) {
		if c != nil {
			o.cache = c
		}
	}
}

// gatherOptions applies setters over the defaults and enforces the
// bound-clamping invariant in exactly one place.
func gatherOptions(user ...Option) Options {
	o := Options{
		bound:  DefaultGenusBound,
		sparse: DefaultSparse,
		cache:  DefaultCache,
	}
	for _, set := range user {
		set(&o)
	}

	// Out-of-range bounds fall back to the default, silently.
	if o.bound < MinGenusBound || o.bound > MaxGenusBound {
		o.bound = DefaultGenusBound
	}

	return o
}
