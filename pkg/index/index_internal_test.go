package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udoprog/jpv-go/pkg/entity"
	"github.com/udoprog/jpv-go/pkg/intern"
	"github.com/udoprog/jpv-go/pkg/jmdict"
	"github.com/udoprog/jpv-go/pkg/jpverrors"
)

func TestWriterReaderPrimitivesRoundTrip(t *testing.T) {
	w := newWriter(0)
	w.putU8(7)
	w.putBool(true)
	w.putU16(1234)
	w.putU32(987654)
	w.putU64(1 << 40)
	w.putFloat32(3.5)
	w.putUvarint(300)
	w.putBytes([]byte("hello"))
	w.putStrings([]string{"a", "いぬ", ""})

	r := newReader(w.buf, 0)
	u8, err := r.u8()
	require.NoError(t, err)
	assert.Equal(t, uint8(7), u8)

	b, err := r.boolean()
	require.NoError(t, err)
	assert.True(t, b)

	u16, err := r.u16()
	require.NoError(t, err)
	assert.Equal(t, uint16(1234), u16)

	u32, err := r.u32()
	require.NoError(t, err)
	assert.Equal(t, uint32(987654), u32)

	u64, err := r.u64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), u64)

	f32, err := r.float32()
	require.NoError(t, err)
	assert.Equal(t, float32(3.5), f32)

	uv, err := r.uvarint()
	require.NoError(t, err)
	assert.Equal(t, uint64(300), uv)

	bs, err := r.bytes()
	require.NoError(t, err)
	assert.Equal(t, "hello", string(bs))

	ss, err := r.strings()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "いぬ", ""}, ss)
}

func TestReaderTruncatedInputsError(t *testing.T) {
	r := newReader([]byte{1, 2}, 0)
	_, err := r.u32()
	assert.Error(t, err)

	r2 := newReader([]byte{}, 0)
	_, err = r2.u8()
	assert.Error(t, err)

	r3 := newReader([]byte{5}, 0)
	_, err = r3.bytes()
	assert.Error(t, err)
}

func TestWriterPatchU32(t *testing.T) {
	w := newWriter(0)
	pos := w.reserve(4)
	w.putU32(11)
	w.patchU32(int(pos), 42)
	r := newReader(w.buf, int(pos))
	v, err := r.u32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v)
}

func TestHeaderEncodeDecodeRoundTrip(t *testing.T) {
	h := Header{Magic: Magic, Version: Version, IndexRef: 99}
	buf := h.encode()
	got, err := decodeHeader(buf)
	require.NoError(t, err)
	assert.Equal(t, h, got)
}

func TestHeaderDecodeRejectsBadMagicAndVersion(t *testing.T) {
	h := Header{Magic: 0xdeadbeef, Version: Version}
	_, err := decodeHeader(h.encode())
	require.Error(t, err)
	assert.True(t, jpverrors.Is(err, jpverrors.MagicMismatch))

	h2 := Header{Magic: Magic, Version: Version + 1}
	_, err = decodeHeader(h2.encode())
	require.Error(t, err)
	assert.True(t, jpverrors.Is(err, jpverrors.Outdated))
}

func TestHeaderDecodeRejectsTooSmallBuffer(t *testing.T) {
	_, err := decodeHeader([]byte{1, 2, 3})
	assert.Error(t, err)
}

func TestTrieInsertEncodeWalkAndCollect(t *testing.T) {
	tb := newTrieBuilder()
	idFor := func(off uint32) Id { return Id{Offset: off, Source: SourcePhrase} }

	tb.Insert("たべる", idFor(1))
	tb.Insert("たべもの", idFor(2))
	tb.Insert("たべ", idFor(3))
	tb.Insert("かう", idFor(4))

	in := intern.New(0)
	tb.preIntern(in)

	// Mirrors builder.finalize: one continuous writer, interner bytes
	// appended directly at internBase, trie encoded right after.
	w := newWriter(0)
	internBase := w.offset()
	w.buf = append(w.buf, in.Buffer()...)
	root := tb.encode(w, in, internBase)

	node, ok, err := walkTrie(w.buf, root, []byte("たべる"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, node.values, 1)
	assert.Equal(t, uint32(1), node.values[0].Offset)

	_, ok, err = walkTrie(w.buf, root, []byte("たべも"))
	require.NoError(t, err)
	assert.False(t, ok, "partial prefix with no exact value must not match")

	prefixNode, ok, err := walkTrie(w.buf, root, []byte("たべ"))
	require.NoError(t, err)
	require.True(t, ok)

	var all []Id
	require.NoError(t, collect(w.buf, prefixNode, &all))
	var offs []uint32
	for _, id := range all {
		offs = append(offs, id.Offset)
	}
	assert.ElementsMatch(t, []uint32{1, 2, 3}, offs)

	_, ok, err = walkTrie(w.buf, root, []byte("存在しない"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEncodeIDRoundTrip(t *testing.T) {
	w := newWriter(0)
	id := Id{Offset: 555, Source: SourceInflection, ReadingIndex: 2, KanjiIndex: 3, Forms: 0xABCD}
	encodeID(w, id)
	r := newReader(w.buf, 0)
	got, err := decodeID(r)
	require.NoError(t, err)
	assert.Equal(t, id, got)
}

func TestSourceKindCategory(t *testing.T) {
	assert.Equal(t, CategoryPhrase, SourcePhrase.Category())
	assert.Equal(t, CategoryPhrase, SourceInflection.Category())
	assert.Equal(t, CategoryKanji, SourceKanjiLiteral.Category())
	assert.Equal(t, CategoryKanji, SourceKanjiMeaning.Category())
	assert.Equal(t, CategoryName, SourceNameLiteral.Category())
}

func TestEntrycodecPhraseRoundTrip(t *testing.T) {
	e := jmdict.Entry{
		Sequence: 42,
		KanjiElements: []jmdict.KanjiElement{
			{Text: "食べる", Priority: []jmdict.Priority{{Corpus: "ichi", Rank: 1}}, Info: []entity.KanjiInfo{entity.RareKanji}},
		},
		ReadingElements: []jmdict.ReadingElement{
			{Text: "たべる", RestrictedToKanji: []string{"食べる"}},
		},
		Senses: []jmdict.Sense{
			{
				XRef:  []string{"食う"},
				Gloss: []jmdict.Glossary{{Text: "to eat", Lang: "eng"}},
				Info:  "common",
				POS:   []entity.PartOfSpeech{entity.VerbIchidan},
				Examples: []jmdict.Example{
					{
						Source:    jmdict.ExampleSource{Text: "123", Kind: "tat"},
						Text:      "食べる",
						Sentences: []jmdict.ExampleSentence{{Text: "I eat.", Lang: "eng"}},
					},
				},
			},
		},
	}

	w := newWriter(0)
	off := encodeEntry(w, e)
	got, err := decodeEntry(w.buf, off)
	require.NoError(t, err)
	assert.Equal(t, e, got)
}

func TestEntrycodecNameEntryRoundTrip(t *testing.T) {
	n := jmdict.NameEntry{
		Sequence:  7,
		Kanji:     []string{"田中"},
		Readings:  []jmdict.NameReading{{Text: "たなか"}},
		NameTypes: []entity.NameType{entity.NTSurname},
		Translations: []jmdict.Translation{
			{Text: "Tanaka", Lang: "eng"},
		},
	}
	w := newWriter(0)
	off := encodeNameEntry(w, n)
	got, err := decodeNameEntry(w.buf, off)
	require.NoError(t, err)
	assert.Equal(t, n, got)
}

func TestSequenceMapRoundTrip(t *testing.T) {
	w := newWriter(0)
	m := encodeSequenceMap(w, map[uint64]uint32{5: 50, 1: 10, 9: 90})

	off, ok := lookupSequenceMap(w.buf, m, 1)
	require.True(t, ok)
	assert.Equal(t, uint32(10), off)

	_, ok = lookupSequenceMap(w.buf, m, 2)
	assert.False(t, ok)
}

func TestKanjiLiteralMapRoundTrip(t *testing.T) {
	entries := []kanjiLiteralEntry{
		{literal: "食", offset: 100},
		{literal: "愛", offset: 200},
	}

	in := intern.New(0)
	// Mirrors builder.finalize: every literal is pre-interned before the
	// interner's buffer is embedded, so encodeKanjiLiteralMap's own
	// Store calls below are guaranteed cache hits that grow nothing.
	for _, e := range entries {
		in.StoreString(e.literal)
	}

	w := newWriter(0)
	internBase := w.offset()
	w.buf = append(w.buf, in.Buffer()...)
	m := encodeKanjiLiteralMap(w, in, internBase, entries)

	off, ok := lookupKanjiLiteralMap(w.buf, m, "食")
	require.True(t, ok)
	assert.Equal(t, uint32(100), off)

	_, ok = lookupKanjiLiteralMap(w.buf, m, "無")
	assert.False(t, ok)
}

func TestPOSMapRoundTrip(t *testing.T) {
	w := newWriter(0)
	set := posSet{}
	set.add(entity.VerbIchidan, 1)
	set.add(entity.VerbIchidan, 2)
	set.add(entity.Noun, 3)
	m := encodePOSMap(w, set)

	offsets, ok := lookupPOSMap(w.buf, m, entity.VerbIchidan)
	require.True(t, ok)
	assert.ElementsMatch(t, []uint32{1, 2}, offsets)

	offsets, ok = lookupPOSMap(w.buf, m, entity.Noun)
	require.True(t, ok)
	assert.Equal(t, []uint32{3}, offsets)

	_, ok = lookupPOSMap(w.buf, m, entity.AdjectiveI)
	assert.False(t, ok)
}

func TestAnalyzeGlossKeepsPhraseStripsEgAndDropsStopwords(t *testing.T) {
	assert.Equal(t, []string{"to eat"}, analyzeGloss("to eat"))
	assert.Empty(t, analyzeGloss("to"))
	assert.Empty(t, analyzeGloss("  "))
	assert.Equal(t, []string{"a long book"}, analyzeGloss("e.g. a long book"))
	assert.Empty(t, analyzeGloss("e.g."))
}

func TestAnalyzeGlossDropsOverlongPhrases(t *testing.T) {
	long := ""
	for i := 0; i < 30; i++ {
		long += "x"
	}
	assert.Empty(t, analyzeGloss(long))
}
