package entity

// KanjiInfo is the closed enumeration of kanji-element info tags.
type KanjiInfo uint8

const (
	Ateji KanjiInfo = iota
	IrregularKana
	IrregularKanji
	IrregularOkurigana
	OutdatedKanji
	RareKanji
	SearchOnlyKanji

	kanjiInfoCount
)

var kanjiInfoTable = [kanjiInfoCount]def{
	Ateji:              {"Ateji", "ateji", "ateji (phonetic) reading"},
	IrregularKana:      {"IrregularKana", "ik", "word containing irregular kana usage"},
	IrregularKanji:     {"IrregularKanji", "iK", "word containing irregular kanji usage"},
	IrregularOkurigana: {"IrregularOkurigana", "io", "irregular okurigana usage"},
	OutdatedKanji:      {"OutdatedKanji", "oK", "word containing out-dated kanji or kanji usage"},
	RareKanji:          {"RareKanji", "rK", "rarely-used kanji form"},
	SearchOnlyKanji:    {"SearchOnlyKanji", "sK", "search-only kanji form"},
}

func AllKanjiInfo() []KanjiInfo {
	out := make([]KanjiInfo, kanjiInfoCount)
	for i := range out {
		out[i] = KanjiInfo(i)
	}
	return out
}

func (k KanjiInfo) Variant() string { return kanjiInfoTable[k].variant }
func (k KanjiInfo) Ident() string   { return kanjiInfoTable[k].ident }
func (k KanjiInfo) Help() string    { return kanjiInfoTable[k].help }

// IsSearchOnly reports whether this tag marks a kanji form as
// search-only (excluded from conjugation and from display).
func (k KanjiInfo) IsSearchOnly() bool { return k == SearchOnlyKanji }

func ParseKanjiInfoKeyword(s string) (KanjiInfo, bool) {
	for i := range kanjiInfoTable {
		if kanjiInfoTable[i].ident == s {
			return KanjiInfo(i), true
		}
	}
	return 0, false
}
