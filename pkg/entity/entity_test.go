package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every closed enumeration must round-trip through its own Ident() /
// Parse*Keyword pair, and every value must carry a non-empty Ident
// and Help string (spec.md §4.1).
func TestPartOfSpeechRoundTrip(t *testing.T) {
	for _, p := range AllPartsOfSpeech() {
		require.NotEmpty(t, p.Ident())
		require.NotEmpty(t, p.Help())
		got, ok := ParsePartOfSpeechKeyword(p.Ident())
		require.True(t, ok, "ident %q should parse", p.Ident())
		assert.Equal(t, p, got)
	}
}

func TestFieldRoundTrip(t *testing.T) {
	for _, f := range AllFields() {
		require.NotEmpty(t, f.Ident())
		got, ok := ParseFieldKeyword(f.Ident())
		require.True(t, ok)
		assert.Equal(t, f, got)
	}
}

func TestDialectRoundTrip(t *testing.T) {
	for _, d := range AllDialects() {
		got, ok := ParseDialectKeyword(d.Ident())
		require.True(t, ok)
		assert.Equal(t, d, got)
	}
}

func TestMiscellaneousRoundTrip(t *testing.T) {
	for _, m := range AllMiscellaneous() {
		got, ok := ParseMiscellaneousKeyword(m.Ident())
		require.True(t, ok)
		assert.Equal(t, m, got)
	}
}

func TestKanjiInfoRoundTrip(t *testing.T) {
	for _, k := range AllKanjiInfo() {
		got, ok := ParseKanjiInfoKeyword(k.Ident())
		require.True(t, ok)
		assert.Equal(t, k, got)
	}
	assert.True(t, SearchOnlyKanji.IsSearchOnly())
}

func TestReadingInfoRoundTrip(t *testing.T) {
	for _, r := range AllReadingInfo() {
		got, ok := ParseReadingInfoKeyword(r.Ident())
		require.True(t, ok)
		assert.Equal(t, r, got)
	}
	assert.True(t, SearchOnlyKana.IsSearchOnly())
}

func TestNameTypeRoundTrip(t *testing.T) {
	for _, n := range AllNameTypes() {
		got, ok := ParseNameTypeKeyword(n.Ident())
		require.True(t, ok)
		assert.Equal(t, n, got)
	}
}

func TestParseKeywordUnknown(t *testing.T) {
	_, ok := ParseKeyword("not-a-real-entity-ident")
	assert.False(t, ok)
}

// The umbrella Entity dispatch must reach every tag family: pick one
// known-good ident per family and confirm it sets only that family's
// flag.
func TestParseKeywordDispatchesEveryFamily(t *testing.T) {
	e, ok := ParseKeyword(VerbIchidan.Ident())
	require.True(t, ok)
	assert.True(t, e.HasPOS)
	assert.Equal(t, VerbIchidan, e.POS)
	assert.False(t, e.HasMisc)
	assert.False(t, e.HasField)

	e, ok = ParseKeyword(AllFields()[0].Ident())
	require.True(t, ok)
	assert.True(t, e.HasField)
	assert.False(t, e.HasPOS)

	e, ok = ParseKeyword(Abbreviation.Ident())
	require.True(t, ok)
	assert.True(t, e.HasMisc)
	assert.False(t, e.HasPOS)

	e, ok = ParseKeyword(Ateji.Ident())
	require.True(t, ok)
	assert.True(t, e.HasKanji)
	assert.False(t, e.HasReading)

	e, ok = ParseKeyword(Gikun.Ident())
	require.True(t, ok)
	assert.True(t, e.HasReading)
	assert.False(t, e.HasKanji)

	e, ok = ParseKeyword(KansaiBen.Ident())
	require.True(t, ok)
	assert.True(t, e.HasDialect)
	assert.False(t, e.HasField)
}

func TestParseNameEntityKeyword(t *testing.T) {
	for _, n := range AllNameTypes() {
		got, ok := ParseNameEntityKeyword(n.Ident())
		require.True(t, ok)
		assert.Equal(t, n, got)
	}
}
