package search

import "github.com/marcelolooser/HyperCells/triangle"

// Options configures a longest-sequence search.
//
// Defaults:
//   - the search ranges over mirror-symmetric quotients only;
//   - no anchor: the path may start at any allowed quotient.
type Options struct {
	nonMirror  bool
	startIndex *int
	startID    *triangle.QuotientID
}

// Option adjusts one search knob.
type Option func(*Options)

// WithNonMirrorSymmetric widens the search to the full quotient set,
// mirror-symmetric or not.
func WithNonMirrorSymmetric() Option {
	return func(o *Options) { o.nonMirror = true }
}

// WithStartIndex anchors the path at the quotient with structure index i.
// An out-of-range or disallowed index yields an empty result.
func WithStartIndex(i int) Option {
	return func(o *Options) { o.startIndex = &i }
}

// WithStartQuotient anchors the path at the quotient identified by
// (genus, number). An absent or disallowed identifier yields an empty
// result. WithStartIndex takes precedence when both anchors are set.
func WithStartQuotient(genus, number int) Option {
	return func(o *Options) {
		o.startID = &triangle.QuotientID{Genus: genus, Number: number}
	}
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	var options Options
	for _, opt := range opts {
		opt(&options)
	}

	return options
}
