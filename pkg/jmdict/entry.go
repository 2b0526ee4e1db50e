package jmdict

import (
	"unicode/utf8"

	"github.com/udoprog/jpv-go/pkg/entity"
	"github.com/udoprog/jpv-go/pkg/inflect"
)

// Entry is one JMdict phrase-dictionary entry: a sequence id plus its
// reading elements, kanji elements and senses (spec.md §3, "Entry
// (phrase)").
type Entry struct {
	Sequence       uint64
	ReadingElements []ReadingElement
	KanjiElements   []KanjiElement
	Senses          []Sense
}

// KanjiElement is one orthographic (kanji) spelling of an entry.
type KanjiElement struct {
	Text     string
	Priority []Priority
	Info     []entity.KanjiInfo
}

func (k KanjiElement) hasInfo(want entity.KanjiInfo) bool {
	for _, i := range k.Info {
		if i == want {
			return true
		}
	}
	return false
}

// IsRare reports whether this kanji spelling is tagged rare or
// search-only, matching elements.rs's KanjiElement::is_rare.
func (k KanjiElement) IsRare() bool {
	return k.hasInfo(entity.RareKanji) || k.hasInfo(entity.SearchOnlyKanji)
}

// IsSearchOnly reports whether this kanji spelling exists only to
// make an entry reachable by search, and should not be conjugated or
// displayed as a headword.
func (k KanjiElement) IsSearchOnly() bool {
	return k.hasInfo(entity.SearchOnlyKanji)
}

// ReadingElement is one kana reading of an entry.
type ReadingElement struct {
	Text string
	// NoKanji marks a reading that stands alone, with no kanji form.
	NoKanji bool
	// RestrictedToKanji is the re_restr set: the kanji spellings this
	// reading applies to. Empty means it applies to every kanji
	// element on the entry.
	RestrictedToKanji []string
	Priority          []Priority
	Info              []entity.ReadingInfo
}

func (r ReadingElement) hasInfo(want entity.ReadingInfo) bool {
	for _, i := range r.Info {
		if i == want {
			return true
		}
	}
	return false
}

// IsSearchOnly reports whether this kana reading exists only to make
// an entry reachable by search.
func (r ReadingElement) IsSearchOnly() bool {
	return r.hasInfo(entity.SearchOnlyKana)
}

// AppliesTo reports whether this reading applies to the given kanji
// spelling, honoring re_restr and search-only/no-kanji exclusions.
func (r ReadingElement) AppliesTo(kanjiText string) bool {
	if r.NoKanji || r.IsSearchOnly() {
		return false
	}
	if len(r.RestrictedToKanji) == 0 {
		return true
	}
	for _, k := range r.RestrictedToKanji {
		if k == kanjiText {
			return true
		}
	}
	return false
}

// SourceLanguage is a sense's lsource: the term a loanword was
// borrowed from, in its original language.
type SourceLanguage struct {
	Text    string
	Lang    string // ISO 639-2 code, "eng" if absent in the XML
	Partial bool   // true if only part of the word derives from this source
	Waseigo bool   // true if this is a Japanese-made pseudo-loanword
}

// Glossary is one gloss line within a sense.
type Glossary struct {
	Text string
	Type string // "lit", "fig", "expl", or "" if untyped
	Lang string // ISO 639-2 code, "eng" if absent
}

// ExampleSource identifies where an example sentence pair was sourced
// from (typically the Tanaka Corpus).
type ExampleSource struct {
	Text string
	Kind string
}

// ExampleSentence is one half (source or target language) of an
// example sentence pair.
type ExampleSentence struct {
	Text string
	Lang string
}

// Example is one example sentence attached to a sense.
type Example struct {
	Source    ExampleSource
	Sentences []ExampleSentence
	Text      string
}

// Sense is one meaning/usage group within an entry.
type Sense struct {
	XRef   []string
	Gloss  []Glossary
	Info   string
	StagK  []string
	StagR  []string
	Source []SourceLanguage
	Antonym []string
	Examples []Example
	POS       []entity.PartOfSpeech
	Misc      []entity.Miscellaneous
	Dialect   []entity.Dialect
	Field     []entity.Field
}

// IsLang reports whether any gloss in this sense is tagged with the
// given ISO 639-2 language code (an empty Lang on a Glossary means
// "eng").
func (s Sense) IsLang(lang string) bool {
	for _, g := range s.Gloss {
		gl := g.Lang
		if gl == "" {
			gl = "eng"
		}
		if gl == lang {
			return true
		}
	}
	return false
}

// Weight computes this entry's relevance score against input,
// following spec.md §4.5.1 exactly: a query multiplier boosted by
// exact reading/kanji/gloss matches (readings with no kanji, or whose
// entry's kanji are all rare, get the strongest reading boost), a
// priority multiplier taken as the maximum weight of any priority tag
// on any reading or kanji element, a sense-count multiplier capped at
// 10 senses, an inflection multiplier applied only when the match came
// from a generated conjugated form, and a length multiplier that
// favors longer exact matches.
func (e Entry) Weight(input string, fromInflection bool) inflect.Weight {
	query := 1.0
	priority := 1.0
	senseCount := 1.0 + float64(minInt(len(e.Senses), 10))/10.0
	conjugation := 1.0
	if fromInflection {
		conjugation = 1.2
	}
	length := (float64(minInt(utf8.RuneCountInString(input), 10)) / 10.0) * 1.2

	allRare := true
	for _, k := range e.KanjiElements {
		if !k.IsRare() {
			allRare = false
			break
		}
	}
	if len(e.KanjiElements) == 0 {
		allRare = true
	}

	for _, r := range e.ReadingElements {
		if r.Text == input {
			if r.NoKanji || allRare {
				query = maxFloat(query, 3.0)
			} else {
				query = maxFloat(query, 2.0)
			}
		}
		for _, p := range r.Priority {
			priority = maxFloat(priority, p.Weight())
		}
	}

	for _, k := range e.KanjiElements {
		if k.Text == input {
			query = maxFloat(query, 3.0)
		}
		for _, p := range k.Priority {
			priority = maxFloat(priority, p.Weight())
		}
	}

	for _, s := range e.Senses {
		for _, g := range s.Gloss {
			if g.Text == input {
				query = maxFloat(query, 1.5)
			}
		}
	}

	return inflect.Weight(query * priority * senseCount * conjugation * length)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxFloat(a, b float64) float64 {
	if b > a {
		return b
	}
	return a
}
