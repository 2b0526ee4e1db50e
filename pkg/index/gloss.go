package index

import "strings"

// glossStopPrefixes are dropped when they are the entire candidate
// phrase (spec.md §4.4.1, "drop a small stop-list of common prefix
// words").
var glossStopPrefixes = map[string]struct{}{
	"to": {}, "a": {}, "in": {}, "of": {}, "for": {}, "so": {}, "if": {},
	"by": {}, "but": {}, "not": {}, "any": {}, "way": {}, "into": {},
}

const glossMaxPhraseLen = 24

// analyzeGloss turns one gloss string into candidate indexable
// phrases. It returns at most one phrase: the whole trimmed, lowercased
// gloss (after an "e.g." prefix is stripped), or nothing if that is
// empty, longer than glossMaxPhraseLen runes, or a stop word. The text
// is not split into words or sub-phrases. Input is expected to already
// be a single gloss's text; callers are responsible for excluding
// `expl`-type glosses before calling this.
func analyzeGloss(text string) []string {
	var out []string
	analyzeGlossInto(text, &out)
	return out
}

func analyzeGlossInto(text string, out *[]string) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return
	}

	if rest, ok := stripEgPrefix(text); ok {
		if rest == "" {
			return
		}
		analyzeGlossInto(rest, out)
		return
	}

	if len([]rune(text)) > glossMaxPhraseLen {
		return
	}
	if _, stop := glossStopPrefixes[text]; stop {
		return
	}

	*out = append(*out, text)
}

// stripEgPrefix recognizes a leading "e.g." or "e.g. X" and returns
// whatever follows it, so the caller can recurse on the remainder
// (spec.md §4.4.1, `handle "e.g." and "e.g. X" specially`).
func stripEgPrefix(text string) (string, bool) {
	const prefix = "e.g."
	if !strings.HasPrefix(text, prefix) {
		return "", false
	}
	rest := strings.TrimSpace(text[len(prefix):])
	return rest, true
}
