package kana

import "strings"

// Full is a kana pair made of complete text fragments: a verb/word
// stem, its reading, and a shared suffix. Mirrors
// original_source/crates/jpv-lib/src/kana.rs's Full<'a>.
type Full struct {
	Text    string
	Reading string
	Suffix  string
}

func (f Full) String() string {
	if f.Text != f.Reading {
		return f.Text + f.Suffix + " (" + f.Reading + f.Suffix + ")"
	}
	return f.Text + f.Suffix
}

// Furigana renders this pair as a single furigana-annotated string.
func (f Full) Furigana() string {
	if f.Text == f.Reading {
		return f.Text + f.Suffix
	}
	return f.Text + f.Suffix + "(" + f.Reading + f.Suffix + ")"
}

// Fragments is the multi-piece counterpart (spec.md §3 "Surface
// fragment"): up to a handful of borrowed text/reading pieces sharing
// one kana-only suffix. Grounded on kana.rs's Fragments<'a>.
type Fragments struct {
	TextPieces    []string
	ReadingPieces []string
	SuffixPieces  []string
}

// NewFragments builds a Fragments from a single (prefix, suffix)
// stem/reading pair, the common shape produced by the paradigm tables
// in pkg/inflect.
func NewFragments(textPrefix, readingPrefix, suffix string) Fragments {
	return Fragments{
		TextPieces:    []string{textPrefix},
		ReadingPieces: []string{readingPrefix},
		SuffixPieces:  []string{suffix},
	}
}

func (f Fragments) IsEmpty() bool {
	return joined(f.TextPieces) == "" && joined(f.SuffixPieces) == ""
}

func (f Fragments) Text() string    { return joined(f.TextPieces) }
func (f Fragments) Reading() string { return joined(f.ReadingPieces) }
func (f Fragments) Suffix() string  { return joined(f.SuffixPieces) }

// Concat appends additional kana-only suffix pieces, used when layering
// derived forms (te-iru, chau, ...) atop a base Stem/Te fragment.
func (f Fragments) Concat(suffixes ...string) Fragments {
	out := Fragments{
		TextPieces:    f.TextPieces,
		ReadingPieces: f.ReadingPieces,
		SuffixPieces:  append(append([]string{}, f.SuffixPieces...), suffixes...),
	}
	return out
}

func (f Fragments) String() string {
	text := f.Text() + f.Suffix()
	reading := f.Reading() + f.Suffix()
	return text + " [" + reading + "]"
}

func joined(pieces []string) string {
	if len(pieces) == 1 {
		return pieces[0]
	}
	return strings.Join(pieces, "")
}
