package jmdict

import (
	"unicode/utf8"

	"github.com/udoprog/jpv-go/pkg/inflect"
)

// Character is one kanjidic2 character entry (spec.md §3's supplemented
// kanji-dictionary data model, grounded on kanjidic2/elements.rs's
// Character, CodePoint, Radical, Misc, Variant, Reading and Meaning).
type Character struct {
	Literal             string
	CodePoints          []CodePoint
	Radicals            []Radical
	Misc                Misc
	DictionaryReferences []DictionaryReference
	QueryCodes          []QueryCode
	Readings            []Reading
	Meanings            []Meaning
	Nanori              []string
}

// CodePoint is one encoding's code point for a character (e.g.
// ucs, jis208).
type CodePoint struct {
	Text string
	Type string
}

// Radical is one classification's radical number for a character.
type Radical struct {
	Text string
	Type string
}

// DictionaryReference is one cross-reference into a print dictionary.
type DictionaryReference struct {
	Text   string
	Type   string
	Volume string
	Page   string
}

// QueryCode is one code usable to look the character up (e.g.
// skip, sh_desc, four_corner).
type QueryCode struct {
	Text         string
	Type         string
	SkipMisclass string
}

// Variant names an alternate code-point a character is also
// registered under.
type Variant struct {
	Text string
	Type string
}

// Misc holds the non-reading, non-meaning descriptive fields of a
// character.
type Misc struct {
	Grade         int
	HasGrade      bool
	StrokeCounts  []int
	Variant       *Variant
	Freq          int
	HasFreq       bool
	JLPT          int
	HasJLPT       bool
	RadicalNames  []string
}

// Reading is one pronunciation of a character in a given reading
// system (e.g. ja_on, ja_kun, pinyin, korean_r).
type Reading struct {
	Text string
	Type string
}

// Meaning is one gloss of a character, optionally in a non-English
// language.
type Meaning struct {
	Text string
	Lang string // "" means English
}

// Weight computes this character's relevance score against input,
// following spec.md §4.5.1's simplified kanji-entry formula: a query
// multiplier boosted to 3.0 on an exact literal match, times the same
// length multiplier used for phrase entries.
func (c Character) Weight(input string) inflect.Weight {
	query := 1.0
	length := (float64(minInt(utf8.RuneCountInString(input), 10)) / 10.0) * 1.2

	if c.Literal == input {
		query = maxFloat(query, 3.0)
	}

	return inflect.Weight(query * length)
}
