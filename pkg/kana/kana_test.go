package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	assert.True(t, IsHiragana('あ'))
	assert.False(t, IsHiragana('ア'))
	assert.True(t, IsKatakana('ア'))
	assert.False(t, IsKatakana('あ'))
	assert.True(t, IsKana('あ'))
	assert.True(t, IsKana('ア'))
	assert.False(t, IsKana('食'))
	assert.False(t, IsKana('a'))
}

func TestHiraganaKatakanaConversion(t *testing.T) {
	assert.Equal(t, "たべる", ToHiragana("タベル"))
	assert.Equal(t, "タベル", ToKatakana("たべる"))
	// Non-kana runs pass through untouched.
	assert.Equal(t, "食べるabc", ToHiragana("食べるabc"))
}

func TestOppositeKana(t *testing.T) {
	assert.Equal(t, "タベル", OppositeKana("たべる"))
	assert.Equal(t, "たべる", OppositeKana("タベル"))
	// Mixed or non-kana input is returned unchanged.
	assert.Equal(t, "食べる", OppositeKana("食べる"))
}

func TestFoldFullWidth(t *testing.T) {
	folded, changed := FoldFullWidth("ＡＢＣ123")
	assert.True(t, changed)
	assert.Equal(t, "ABC123", folded)

	folded, changed = FoldFullWidth("abc")
	assert.False(t, changed)
	assert.Equal(t, "abc", folded)
}

func TestFoldFullWidthChar(t *testing.T) {
	r, ok := FoldFullWidthChar('Ａ')
	require.True(t, ok)
	assert.Equal(t, 'A', r)

	_, ok = FoldFullWidthChar('a')
	assert.False(t, ok)
}

func TestRomanizeStringBasic(t *testing.T) {
	assert.Equal(t, "tabemashita", RomanizeString("たべました"))
	assert.Equal(t, "kyou", RomanizeString("きょう"))
}

func TestRomanizeHandlesSokuonGemination(t *testing.T) {
	// 買った -> katta: small tsu doubles the following consonant.
	assert.Equal(t, "katta", RomanizeString("かった"))
}

func TestRomanizeHandlesLongVowelMark(t *testing.T) {
	out := RomanizeString("らーめん")
	assert.Contains(t, out, "ra")
}

func TestAnalyzeConsumesEveryCharacter(t *testing.T) {
	// spec.md §9: "the analyze segment routine never leaves characters
	// unconsumed" — every input rune must end up represented in some
	// segment's Romanize() output (not necessarily its raw text, since
	// gemination/long-vowel marks fold into a neighboring segment).
	for _, input := range []string{"たべました", "かった", "らーめん", "きょう", "こんにちは123abc"} {
		segs := Analyze(input)
		require.NotEmpty(t, segs)
		for _, s := range segs {
			assert.NotEmpty(t, s.Romanize())
		}
	}
}

func TestFullFurigana(t *testing.T) {
	f := Full{Text: "食べ", Reading: "たべ", Suffix: "ました"}
	assert.Equal(t, "食べました(たべました)", f.Furigana())

	same := Full{Text: "ました", Reading: "ました", Suffix: ""}
	assert.Equal(t, "ました", same.Furigana())
}

func TestFragments(t *testing.T) {
	f := NewFragments("食べ", "たべ", "ました")
	assert.Equal(t, "食べました", f.Text())
	assert.Equal(t, "たべました", f.Reading())
	assert.False(t, f.IsEmpty())

	extended := f.Concat("よ")
	assert.Equal(t, "食べましたよ", extended.Text())
	// Concat must not mutate the original's suffix slice.
	assert.Equal(t, "ました", f.Suffix())
}

func TestFragmentsIsEmpty(t *testing.T) {
	assert.True(t, Fragments{}.IsEmpty())
}
