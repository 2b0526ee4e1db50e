package jmdict

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udoprog/jpv-go/pkg/entity"
)

func TestParserRoundTrip(t *testing.T) {
	const doc = `<JMdict><entry>
		<ent_seq>1000</ent_seq>
		<k_ele><keb>食べる</keb><ke_pri>ichi1</ke_pri></k_ele>
		<r_ele><reb>たべる</reb><re_pri>ichi1</re_pri></r_ele>
		<sense>
			<pos>v1</pos>
			<pos>vt</pos>
			<misc>uk</misc>
			<gloss>to eat</gloss>
			<gloss xml:lang="fre">manger</gloss>
			<xref>食う</xref>
			<s_inf>common verb</s_inf>
			<example>
				<ex_srce exsrc_type="tat">12345</ex_srce>
				<ex_text>食べる</ex_text>
				<ex_sent>I eat.</ex_sent>
				<ex_sent xml:lang="jpn">食べます。</ex_sent>
			</example>
		</sense>
	</entry></JMdict>`

	p := NewParser(strings.NewReader(doc))
	e, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, e)

	assert.Equal(t, uint64(1000), e.Sequence)
	require.Len(t, e.KanjiElements, 1)
	assert.Equal(t, "食べる", e.KanjiElements[0].Text)
	require.Len(t, e.KanjiElements[0].Priority, 1)
	assert.Equal(t, "ichi", e.KanjiElements[0].Priority[0].Corpus)
	assert.EqualValues(t, 1, e.KanjiElements[0].Priority[0].Rank)

	require.Len(t, e.ReadingElements, 1)
	assert.Equal(t, "たべる", e.ReadingElements[0].Text)

	require.Len(t, e.Senses, 1)
	s := e.Senses[0]
	assert.Equal(t, []entity.PartOfSpeech{entity.VerbIchidan, entity.VerbTransitive}, s.POS)
	require.Len(t, s.Gloss, 2)
	assert.Equal(t, "to eat", s.Gloss[0].Text)
	assert.Equal(t, "eng", s.Gloss[0].Lang)
	assert.Equal(t, "manger", s.Gloss[1].Text)
	assert.Equal(t, "fre", s.Gloss[1].Lang)
	assert.Equal(t, []string{"食う"}, s.XRef)
	assert.Equal(t, "common verb", s.Info)

	require.Len(t, s.Examples, 1)
	ex := s.Examples[0]
	assert.Equal(t, "tat", ex.Source.Kind)
	assert.Equal(t, "12345", ex.Source.Text)
	assert.Equal(t, "食べる", ex.Text)
	require.Len(t, ex.Sentences, 2)
	assert.Equal(t, "eng", ex.Sentences[0].Lang)
	assert.Equal(t, "I eat.", ex.Sentences[0].Text)
	assert.Equal(t, "jpn", ex.Sentences[1].Lang)

	// The document is exhausted: a second call returns (nil, nil).
	next, err := p.Next()
	require.NoError(t, err)
	assert.Nil(t, next)
}

func TestParserMultipleEntriesAndUnknownElementsSkipped(t *testing.T) {
	const doc = `<JMdict>
		<entry>
			<ent_seq>1</ent_seq>
			<some_future_tag>ignored</some_future_tag>
			<k_ele><keb>犬</keb></k_ele>
			<r_ele><reb>いぬ</reb></r_ele>
			<sense><pos>n</pos><gloss>dog</gloss></sense>
		</entry>
		<entry>
			<ent_seq>2</ent_seq>
			<r_ele><reb>ねこ</reb></r_ele>
			<sense><pos>n</pos><gloss>cat</gloss></sense>
		</entry>
	</JMdict>`

	p := NewParser(strings.NewReader(doc))

	e1, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, e1)
	assert.Equal(t, uint64(1), e1.Sequence)
	assert.Equal(t, "犬", e1.KanjiElements[0].Text)

	e2, err := p.Next()
	require.NoError(t, err)
	require.NotNil(t, e2)
	assert.Equal(t, uint64(2), e2.Sequence)
	assert.Empty(t, e2.KanjiElements)
	assert.True(t, e2.ReadingElements[0].AppliesTo("anything"))

	e3, err := p.Next()
	require.NoError(t, err)
	assert.Nil(t, e3)
}

func TestParserRejectsUnknownPOS(t *testing.T) {
	const doc = `<JMdict><entry>
		<ent_seq>1</ent_seq>
		<r_ele><reb>いぬ</reb></r_ele>
		<sense><pos>zzz-not-a-real-tag</pos><gloss>dog</gloss></sense>
	</entry></JMdict>`

	p := NewParser(strings.NewReader(doc))
	_, err := p.Next()
	assert.Error(t, err)
}

func TestReadingElementAppliesTo(t *testing.T) {
	r := ReadingElement{Text: "たべる"}
	assert.True(t, r.AppliesTo("食べる"))
	assert.True(t, r.AppliesTo("喰べる"))

	restricted := ReadingElement{Text: "くう", RestrictedToKanji: []string{"喰べる"}}
	assert.True(t, restricted.AppliesTo("喰べる"))
	assert.False(t, restricted.AppliesTo("食べる"))

	noKanji := ReadingElement{Text: "たべる", NoKanji: true}
	assert.False(t, noKanji.AppliesTo("食べる"))

	searchOnly := ReadingElement{Text: "たべる", Info: []entity.ReadingInfo{entity.SearchOnlyKana}}
	assert.False(t, searchOnly.AppliesTo("食べる"))
}

func TestKanjiElementIsRareAndSearchOnly(t *testing.T) {
	plain := KanjiElement{Text: "食べる"}
	assert.False(t, plain.IsRare())
	assert.False(t, plain.IsSearchOnly())

	rare := KanjiElement{Text: "喰べる", Info: []entity.KanjiInfo{entity.RareKanji}}
	assert.True(t, rare.IsRare())
	assert.False(t, rare.IsSearchOnly())

	searchOnly := KanjiElement{Text: "喰べる", Info: []entity.KanjiInfo{entity.SearchOnlyKanji}}
	assert.True(t, searchOnly.IsRare())
	assert.True(t, searchOnly.IsSearchOnly())
}

func TestSenseIsLangDefaultsToEng(t *testing.T) {
	s := Sense{Gloss: []Glossary{{Text: "to eat"}, {Text: "manger", Lang: "fre"}}}
	assert.True(t, s.IsLang("eng"))
	assert.True(t, s.IsLang("fre"))
	assert.False(t, s.IsLang("ger"))
}

func TestParsePriorityValid(t *testing.T) {
	cases := []struct {
		in         string
		wantCorpus string
		wantRank   uint8
		wantNF     bool
	}{
		{"news1", "news", 1, false},
		{"news2", "news", 2, false},
		{"ichi1", "ichi", 1, false},
		{"spec2", "spec", 2, false},
		{"gai1", "gai", 1, false},
		{"nf01", "", 1, true},
		{"nf48", "", 48, true},
	}
	for _, c := range cases {
		p, err := ParsePriority(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.wantCorpus, p.Corpus, c.in)
		assert.Equal(t, c.wantRank, p.Rank, c.in)
		assert.Equal(t, c.wantNF, p.NF, c.in)
	}
}

func TestParsePriorityInvalid(t *testing.T) {
	cases := []string{"news3", "ichi0", "nf00", "nf49", "bogus", "nfzz"}
	for _, c := range cases {
		_, err := ParsePriority(c)
		assert.Error(t, err, c)
	}
}

func TestPriorityWeight(t *testing.T) {
	news1, _ := ParsePriority("news1")
	news2, _ := ParsePriority("news2")
	nf01, _ := ParsePriority("nf01")
	nf48, _ := ParsePriority("nf48")

	assert.Equal(t, 2.0, news1.Weight())
	assert.Equal(t, 1.3, news2.Weight())
	assert.Equal(t, 2.0, nf01.Weight())
	assert.InDelta(t, 1.0208, nf48.Weight(), 0.001)
}

func TestEntryWeightExactKanjiMatchBeatsDefault(t *testing.T) {
	e := Entry{
		KanjiElements:   []KanjiElement{{Text: "食べる"}},
		ReadingElements: []ReadingElement{{Text: "たべる"}},
		Senses:          []Sense{{Gloss: []Glossary{{Text: "to eat"}}}},
	}

	matched := e.Weight("食べる", false)
	unmatched := e.Weight("xyz", false)
	assert.Greater(t, float64(matched), float64(unmatched))
}

func TestEntryWeightNoKanjiReadingGetsStrongerBoostThanPlainReading(t *testing.T) {
	plain := Entry{
		KanjiElements:   []KanjiElement{{Text: "食べる"}},
		ReadingElements: []ReadingElement{{Text: "たべる"}},
	}
	noKanji := Entry{
		ReadingElements: []ReadingElement{{Text: "たべる", NoKanji: true}},
	}

	assert.Greater(t, float64(noKanji.Weight("たべる", false)), float64(plain.Weight("たべる", false)))
}

func TestEntryWeightAllRareKanjiBoostsReadingMatchLikeNoKanji(t *testing.T) {
	allRare := Entry{
		KanjiElements:   []KanjiElement{{Text: "喰べる", Info: []entity.KanjiInfo{entity.RareKanji}}},
		ReadingElements: []ReadingElement{{Text: "たべる"}},
	}
	notAllRare := Entry{
		KanjiElements:   []KanjiElement{{Text: "食べる"}},
		ReadingElements: []ReadingElement{{Text: "たべる"}},
	}

	assert.Greater(t, float64(allRare.Weight("たべる", false)), float64(notAllRare.Weight("たべる", false)))
}

func TestEntryWeightFromInflectionAppliesConjugationMultiplier(t *testing.T) {
	e := Entry{
		ReadingElements: []ReadingElement{{Text: "たべる"}},
	}
	plain := e.Weight("たべる", false)
	inflected := e.Weight("たべる", true)
	assert.InDelta(t, float64(plain)*1.2, float64(inflected), 0.0001)
}

func TestEntryWeightSenseCountCapsAtTen(t *testing.T) {
	var manySenses []Sense
	for i := 0; i < 20; i++ {
		manySenses = append(manySenses, Sense{})
	}
	e := Entry{Senses: manySenses}
	// 10 senses and 20 senses both hit the min(., 10) cap and must
	// produce an identical senseCount multiplier.
	tenSenses := Entry{Senses: manySenses[:10]}
	assert.Equal(t, e.Weight("zzz", false), tenSenses.Weight("zzz", false))
}

func TestEntryWeightGlossExactMatchBoostsQuery(t *testing.T) {
	e := Entry{Senses: []Sense{{Gloss: []Glossary{{Text: "to eat"}}}}}
	matched := e.Weight("to eat", false)
	unmatched := e.Weight("xyz", false)
	assert.Greater(t, float64(matched), float64(unmatched))
}
