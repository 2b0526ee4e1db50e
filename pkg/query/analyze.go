package query

import (
	"sort"

	"github.com/udoprog/jpv-go/pkg/index"
)

// AnalyzeEntry is one (substring, weight) pair in Analyze's output,
// ordered highest-weight-first (spec.md §4.5, "return a map ordered
// by weight ... highest-weight-first iteration is natural").
type AnalyzeEntry struct {
	Substring string
	Weight    float64
}

// Analyze implements spec.md §4.5's analyze(q, start): starting from
// q[start:], it tries every shrinking prefix of that suffix as an
// exact trie key across every sub-index, recording the best weight
// seen for each surviving substring.
func (d *Database) Analyze(q string, start int) ([]AnalyzeEntry, error) {
	runes := []rune(q)
	if start >= len(runes) {
		return nil, nil
	}
	suffix := runes[start:]

	best := map[string]float64{}
	var order []string

	for end := len(suffix); end > 0; end-- {
		substr := string(suffix[:end])
		for _, s := range d.subs {
			ids, err := s.ExactLookup(substr)
			if err != nil {
				return nil, err
			}
			for _, id := range ids {
				entry, err := s.EntryAt(id)
				if err != nil {
					return nil, err
				}

				w := weighAnalyzeEntry(entry, substr, id)

				cur, seen := best[substr]
				if !seen {
					order = append(order, substr)
				}
				if !seen || w > cur {
					best[substr] = w
				}
			}
		}
	}

	out := make([]AnalyzeEntry, 0, len(order))
	for _, sub := range order {
		out = append(out, AnalyzeEntry{Substring: sub, Weight: best[sub]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })
	return out, nil
}

// weighAnalyzeEntry computes the weight Analyze records for one
// payload id matching substr: the full phrase formula for phrase
// entries (§4.5.1), and the same name/kanji Weight used by Search but
// with the "0.5 boost factor" Analyze step 3 calls for applied on top
// (jmdict's Character.Weight/NameEntry.Weight already model the
// un-boosted "simpler weight"; Boost is the one piece Analyze adds).
func weighAnalyzeEntry(entry Entry, substr string, id index.Id) float64 {
	switch entry.Category {
	case index.CategoryPhrase:
		return phraseWeight(*entry.Phrase, substr, map[index.SourceKind]struct{}{id.Source: {}})
	case index.CategoryName:
		return float64(entry.Name.Weight(substr).Boost(0.5))
	default:
		return float64(entry.Kanji.Weight(substr).Boost(0.5))
	}
}
