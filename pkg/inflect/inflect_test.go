package inflect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udoprog/jpv-go/pkg/entity"
)

func TestAllFormsDeclaredOrder(t *testing.T) {
	forms := AllForms()
	require.Len(t, forms, int(formCount))
	assert.Equal(t, Stem, forms[0])
	assert.Equal(t, Conversation, forms[len(forms)-1])
	for i, f := range forms {
		assert.Equal(t, Form(i), f)
	}
}

func TestFormDescribeAndTitleNonEmpty(t *testing.T) {
	for _, f := range AllForms() {
		assert.NotEmpty(t, f.Describe(), "form %d", f)
		assert.NotEmpty(t, f.Title(), "form %d", f)
	}
}

func TestInflectionToggleIsSelfInverse(t *testing.T) {
	var in Inflection
	in.Toggle(Past)
	assert.True(t, in.Contains(Past))
	in.Toggle(Past)
	assert.True(t, in.IsEmpty())
}

func TestInflectionContainsAndIter(t *testing.T) {
	in := NewInflection(Past, Honorific)
	assert.True(t, in.Contains(Past))
	assert.True(t, in.Contains(Honorific))
	assert.False(t, in.Contains(Negative))
	assert.Equal(t, []Form{Honorific, Past}, in.Iter())
}

func TestInflectionAllContainsEveryForm(t *testing.T) {
	all := All()
	for _, f := range AllForms() {
		assert.True(t, all.Contains(f), "All() missing form %d", f)
	}
}

func TestInflectionUnionAndSymmetricDifference(t *testing.T) {
	a := NewInflection(Past, Negative)
	b := NewInflection(Negative, Honorific)

	u := a.Union(b)
	assert.True(t, u.Contains(Past))
	assert.True(t, u.Contains(Negative))
	assert.True(t, u.Contains(Honorific))

	sd := a.SymmetricDifference(b)
	assert.True(t, sd.Contains(Past))
	assert.True(t, sd.Contains(Honorific))
	assert.False(t, sd.Contains(Negative), "shared member must cancel out")
}

func TestInflectionIntersectAssign(t *testing.T) {
	a := NewInflection(Past, Negative, Honorific)
	b := NewInflection(Negative, Honorific)
	a.IntersectAssign(b)
	assert.False(t, a.Contains(Past))
	assert.True(t, a.Contains(Negative))
	assert.True(t, a.Contains(Honorific))
}

func conjugateOnePOS(t *testing.T, kanji, reading string, pos entity.PartOfSpeech) Inflections {
	t.Helper()
	src := Source{
		KanjiForms:   []KanjiForm{{Text: kanji}},
		ReadingForms: []ReadingForm{{Text: reading}},
		Senses:       []SenseTags{{POS: []entity.PartOfSpeech{pos}}},
	}
	conjs := Conjugate(src)
	require.Len(t, conjs, 1)
	return conjs[0].Forms
}

func fragmentFor(t *testing.T, forms Inflections, markers ...Form) Fragment {
	t.Helper()
	fr, ok := forms[NewInflection(markers...)]
	require.True(t, ok, "missing fragment for %v", markers)
	return fr
}

func TestConjugateIchidan(t *testing.T) {
	forms := conjugateOnePOS(t, "食べる", "たべる", entity.VerbIchidan)

	assert.Equal(t, "食べました", fragmentFor(t, forms, Past, Honorific).Text())
	assert.Equal(t, "たべました", fragmentFor(t, forms, Past, Honorific).Reading())
	assert.Equal(t, "食べない", fragmentFor(t, forms, Negative).Text())
	assert.Equal(t, "食べて", fragmentFor(t, forms, Te).Text())
}

func TestConjugateGodanU(t *testing.T) {
	forms := conjugateOnePOS(t, "買う", "かう", entity.VerbGodanU)

	assert.Equal(t, "買った", fragmentFor(t, forms, Past).Text())
	assert.Equal(t, "買って", fragmentFor(t, forms, Te).Text())
	assert.Equal(t, "買わない", fragmentFor(t, forms, Negative).Text())
	assert.Equal(t, "買います", fragmentFor(t, forms, Honorific).Text())
}

func TestConjugateGodanClasses(t *testing.T) {
	cases := []struct {
		pos            entity.PartOfSpeech
		kanji, reading string
		wantTe         string
		wantPast       string
	}{
		{entity.VerbGodanK, "書く", "かく", "書いて", "書いた"},
		{entity.VerbGodanG, "泳ぐ", "およぐ", "泳いで", "泳いだ"},
		{entity.VerbGodanS, "話す", "はなす", "話して", "話した"},
		{entity.VerbGodanT, "勝つ", "かつ", "勝って", "勝った"},
		{entity.VerbGodanN, "死ぬ", "しぬ", "死んで", "死んだ"},
		{entity.VerbGodanB, "遊ぶ", "あそぶ", "遊んで", "遊んだ"},
		{entity.VerbGodanM, "読む", "よむ", "読んで", "読んだ"},
		{entity.VerbGodanR, "走る", "はしる", "走って", "走った"},
	}
	for _, c := range cases {
		forms := conjugateOnePOS(t, c.kanji, c.reading, c.pos)
		assert.Equal(t, c.wantTe, fragmentFor(t, forms, Te).Text(), c.kanji)
		assert.Equal(t, c.wantPast, fragmentFor(t, forms, Past).Text(), c.kanji)
	}
}

func TestConjugateKuruIrregular(t *testing.T) {
	forms := conjugateOnePOS(t, "来る", "くる", entity.VerbKuru)

	assert.Equal(t, "来ます", fragmentFor(t, forms, Honorific).Text())
	assert.Equal(t, "来た", fragmentFor(t, forms, Past).Text())
	// Kanji stays 来 regardless of く/き/こ (excludeKanjiPrefix): only
	// the kana reading actually swaps to the こ- stem for Negative.
	assert.Equal(t, "来ない", fragmentFor(t, forms, Negative).Text())
	assert.Equal(t, "こない", fragmentFor(t, forms, Negative).Reading())
}

func TestConjugateSuruIrregular(t *testing.T) {
	forms := conjugateOnePOS(t, "勉強する", "べんきょうする", entity.VerbSuruIncluded)

	assert.Equal(t, "勉強します", fragmentFor(t, forms, Honorific).Text())
	assert.Equal(t, "勉強した", fragmentFor(t, forms, Past).Text())
	assert.Equal(t, "勉強できる", fragmentFor(t, forms, Potential).Text())
}

func TestConjugateAdjectiveI(t *testing.T) {
	forms := conjugateOnePOS(t, "高い", "たかい", entity.AdjectiveI)

	assert.Equal(t, "高かった", fragmentFor(t, forms, Past).Text())
	assert.Equal(t, "高くない", fragmentFor(t, forms, Negative).Text())
}

func TestConjugateYoiIiIrregularAdjective(t *testing.T) {
	forms := conjugateOnePOS(t, "良い", "いい", entity.AdjectiveIx)

	assert.Equal(t, "良かった", fragmentFor(t, forms, Past).Text())
	assert.Equal(t, "よかった", fragmentFor(t, forms, Past).Reading())
	assert.Equal(t, "良くない", fragmentFor(t, forms, Negative).Text())
	assert.Equal(t, "よくない", fragmentFor(t, forms, Negative).Reading())
	assert.Equal(t, "いい", fragmentFor(t, forms).Reading())
}

func TestConjugateAdjectiveNa(t *testing.T) {
	forms := conjugateOnePOS(t, "静か", "しずか", entity.AdjectiveNa)

	assert.Equal(t, "静かだった", fragmentFor(t, forms, Past).Text())
	assert.Equal(t, "静かではない", fragmentFor(t, forms, Negative).Text())
}

// spec.md §4.2 point 5: Stem-rooted derived forms (Tai/EasyTo/HardTo/
// TaGaRu) and Te-rooted derived forms (TeIru/TeAru/TeIku/TeShimau/
// TeOku/TeKuru) must be layered onto every conjugatable verb.
func TestDeriveCompoundFormsFromStemAndTe(t *testing.T) {
	forms := conjugateOnePOS(t, "食べる", "たべる", entity.VerbIchidan)

	assert.Equal(t, "食べたい", fragmentFor(t, forms, Tai).Text())
	assert.Equal(t, "食べやすい", fragmentFor(t, forms, EasyTo).Text())
	assert.Equal(t, "食べにくい", fragmentFor(t, forms, HardTo).Text())
	assert.Equal(t, "食べたがる", fragmentFor(t, forms, TaGaRu).Text())

	assert.Equal(t, "食べている", fragmentFor(t, forms, TeIru, Te).Text())
	assert.Equal(t, "食べてある", fragmentFor(t, forms, TeAru, Te).Text())
	assert.Equal(t, "食べてしまう", fragmentFor(t, forms, TeShimau, Te).Text())
	assert.Equal(t, "食べておく", fragmentFor(t, forms, TeOku, Te).Text())
	assert.Equal(t, "食べてくる", fragmentFor(t, forms, TeKuru, Te).Text())

	assert.Equal(t, "食べてる", fragmentFor(t, forms, TeIru, Te, Short).Text())
}

// The TeIku auxiliary conjugates on the 行く class, whose past takes
// っ-gemination (ていった) rather than the い-onbin of the plain く class.
func TestDeriveCompoundFormsGodanTeFamily(t *testing.T) {
	forms := conjugateOnePOS(t, "書く", "かく", entity.VerbGodanK)

	assert.Equal(t, "書いている", fragmentFor(t, forms, TeIru, Te).Text())
	assert.Equal(t, "書いていく", fragmentFor(t, forms, TeIku, Te).Text())
	assert.Equal(t, "書いていった", fragmentFor(t, forms, TeIku, Te, Past).Text())
}

// Chau is a derived form attached directly in runVerbParadigm (not
// deriveCompoundForms), keyed off each class's ChauStem.
func TestChauFamily(t *testing.T) {
	forms := conjugateOnePOS(t, "買う", "かう", entity.VerbGodanU)
	assert.Equal(t, "買っちゃう", fragmentFor(t, forms, Chau).Text())

	forms = conjugateOnePOS(t, "食べる", "たべる", entity.VerbIchidan)
	assert.Equal(t, "食べちゃう", fragmentFor(t, forms, Chau).Text())
}

// spec.md §4.2 point 1: re_restr / stagk / stagr restrictions prune
// permutations, and search-only kanji/reading elements never conjugate.
func TestConjugateRespectsRestrictions(t *testing.T) {
	src := Source{
		KanjiForms: []KanjiForm{{Text: "食べる"}, {Text: "喰べる", SearchOnly: true}},
		ReadingForms: []ReadingForm{
			{Text: "たべる"},
			{Text: "くう", RestrictedToKanji: []string{"喰べる"}},
		},
		Senses: []SenseTags{{POS: []entity.PartOfSpeech{entity.VerbIchidan}}},
	}
	conjs := Conjugate(src)
	// "くう" is restricted to the search-only "喰べる" kanji, which
	// never participates in permutations, so only one survives.
	require.Len(t, conjs, 1)
	assert.Equal(t, "たべる", conjs[0].Reading.Reading)
}

func TestConjugateUnknownPOSSkippedSilently(t *testing.T) {
	src := Source{
		KanjiForms:   []KanjiForm{{Text: "犬"}},
		ReadingForms: []ReadingForm{{Text: "いぬ"}},
		Senses:       []SenseTags{{POS: []entity.PartOfSpeech{entity.Noun}}},
	}
	assert.Empty(t, Conjugate(src))
}

func TestConjugateNoKanjiReading(t *testing.T) {
	src := Source{
		ReadingForms: []ReadingForm{{Text: "たべる", NoKanji: true}},
		Senses:       []SenseTags{{POS: []entity.PartOfSpeech{entity.VerbIchidan}}},
	}
	conjs := Conjugate(src)
	require.Len(t, conjs, 1)
	assert.Equal(t, NoKanji, conjs[0].Reading.KanjiIndex)
}
