package query

import (
	"github.com/udoprog/jpv-go/pkg/index"
	"github.com/udoprog/jpv-go/pkg/jmdict"
)

// phraseWeight computes a phrase's relevance against input, delegating
// to jmdict.Entry.Weight (spec.md §4.5.1's full formula) rather than
// re-deriving it: sources only needs to answer "did this match come
// from a generated conjugated form", the one piece of §4.5.1 the entry
// itself doesn't carry.
//
// Larger is a stronger match; original_source/crates/lib/src/elements/
// entry.rs's Weight wraps this same f32 in a reversed Ord so that a
// plain ascending sort over the wrapper yields highest-weight-first —
// this package gets the same externally-visible ordering by sorting
// the raw float descending instead of reimplementing the wrapper.
func phraseWeight(e jmdict.Entry, input string, sources map[index.SourceKind]struct{}) float64 {
	_, fromInflection := sources[index.SourceInflection]
	return float64(e.Weight(input, fromInflection))
}
