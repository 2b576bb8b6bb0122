// Package simplify shortens words over a finitely presented triangle
// (proper) group. Given a presentation and a word, Simplify returns an
// equivalent word that is no longer than the input.
//
// Key features:
//   - two strategies, selectable per call: exhaustive brute force over
//     all shorter words, and rewriting to a normal form under a
//     Knuth-Bendix completed system;
//   - shortlex ordering throughout, so rewriting never grows a word;
//   - completed rewrite systems are cached per presentation content
//     hash and reused across calls (package DefaultCache, or a private
//     cache via WithCache).
//
// Options:
//   - WithMethod:    BruteForce (default) or KnuthBendix;
//   - WithMaxLength: bound on the simplification effort, see Simplify;
//   - WithEqualer:   custom word-equality decision for brute force;
//   - WithCompleter: custom completion strategy for Knuth-Bendix;
//   - WithCache:     private rewrite-system cache.
//
// Errors:
//   - ErrUnknownMethod:      ParseMethod received an unknown name;
//   - ErrCompletionDiverged: completion exceeded its rule-count cap;
//   - ErrNotConfluent:       a non-confluent system was asked to decide
//     equality.
//
// Simplify itself never fails: when completion diverges, stays incomplete
// within the stored-rule length pair derived from the effort bound, or an
// equality check errors, the event is logged and the original word is
// returned unchanged. Brute force is exponential in the length bound and
// meant for short words; Knuth-Bendix fronts a potentially expensive
// one-off completion with cheap cached rewriting.
package simplify
