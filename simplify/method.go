package simplify

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// ErrUnknownMethod is returned by ParseMethod for an unrecognized name.
var ErrUnknownMethod = errors.New("simplify: unknown method")

// Method selects the simplification strategy.
type Method int

const (
	// BruteForce enumerates every shorter word in shortlex order and
	// returns the first one equal to the input. Exact but exponential.
	BruteForce Method = iota

	// KnuthBendix rewrites the word to its normal form under a completed
	// rewrite system derived from the presentation.
	KnuthBendix
)

// String returns the canonical method name.
func (m Method) String() string {
	switch m {
	case BruteForce:
		return "brute-force"
	case KnuthBendix:
		return "knuth-bendix"
	default:
		return "unknown"
	}
}

// ParseMethod maps a method name to its Method value.
func ParseMethod(s string) (Method, error) {
	switch s {
	case "brute-force":
		return BruteForce, nil
	case "knuth-bendix":
		return KnuthBendix, nil
	default:
		return 0, pkgerrors.Wrapf(ErrUnknownMethod, "%q", s)
	}
}
