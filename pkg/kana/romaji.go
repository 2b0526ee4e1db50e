package kana

import "strings"

// moraTable maps every hiragana mora (plain, diacritic, and yoon
// combinations) to its romaji and katakana equivalents. The donor's
// own `romaji_table!` macro (table.rs / chars.rs) was not present in
// the retrieval pack — only the consumer (romaji.rs) was — so this
// table is reconstructed from standard Hepburn romanization rather
// than translated from source; see DESIGN.md.
var moraTable = []struct {
	hira, kata, romaji string
}{
	{"あ", "ア", "a"}, {"い", "イ", "i"}, {"う", "ウ", "u"}, {"え", "エ", "e"}, {"お", "オ", "o"},
	{"か", "カ", "ka"}, {"き", "キ", "ki"}, {"く", "ク", "ku"}, {"け", "ケ", "ke"}, {"こ", "コ", "ko"},
	{"が", "ガ", "ga"}, {"ぎ", "ギ", "gi"}, {"ぐ", "グ", "gu"}, {"げ", "ゲ", "ge"}, {"ご", "ゴ", "go"},
	{"さ", "サ", "sa"}, {"し", "シ", "shi"}, {"す", "ス", "su"}, {"せ", "セ", "se"}, {"そ", "ソ", "so"},
	{"ざ", "ザ", "za"}, {"じ", "ジ", "ji"}, {"ず", "ズ", "zu"}, {"ぜ", "ゼ", "ze"}, {"ぞ", "ゾ", "zo"},
	{"た", "タ", "ta"}, {"ち", "チ", "chi"}, {"つ", "ツ", "tsu"}, {"て", "テ", "te"}, {"と", "ト", "to"},
	{"だ", "ダ", "da"}, {"ぢ", "ヂ", "ji"}, {"づ", "ヅ", "zu"}, {"で", "デ", "de"}, {"ど", "ド", "do"},
	{"な", "ナ", "na"}, {"に", "ニ", "ni"}, {"ぬ", "ヌ", "nu"}, {"ね", "ネ", "ne"}, {"の", "ノ", "no"},
	{"は", "ハ", "ha"}, {"ひ", "ヒ", "hi"}, {"ふ", "フ", "fu"}, {"へ", "ヘ", "he"}, {"ほ", "ホ", "ho"},
	{"ば", "バ", "ba"}, {"び", "ビ", "bi"}, {"ぶ", "ブ", "bu"}, {"べ", "ベ", "be"}, {"ぼ", "ボ", "bo"},
	{"ぱ", "パ", "pa"}, {"ぴ", "ピ", "pi"}, {"ぷ", "プ", "pu"}, {"ぺ", "ペ", "pe"}, {"ぽ", "ポ", "po"},
	{"ま", "マ", "ma"}, {"み", "ミ", "mi"}, {"む", "ム", "mu"}, {"め", "メ", "me"}, {"も", "モ", "mo"},
	{"や", "ヤ", "ya"}, {"ゆ", "ユ", "yu"}, {"よ", "ヨ", "yo"},
	{"ら", "ラ", "ra"}, {"り", "リ", "ri"}, {"る", "ル", "ru"}, {"れ", "レ", "re"}, {"ろ", "ロ", "ro"},
	{"わ", "ワ", "wa"}, {"を", "ヲ", "wo"}, {"ん", "ン", "n"},
	// yoon (palatalized) combinations
	{"きゃ", "キャ", "kya"}, {"きゅ", "キュ", "kyu"}, {"きょ", "キョ", "kyo"},
	{"ぎゃ", "ギャ", "gya"}, {"ぎゅ", "ギュ", "gyu"}, {"ぎょ", "ギョ", "gyo"},
	{"しゃ", "シャ", "sha"}, {"しゅ", "シュ", "shu"}, {"しょ", "ショ", "sho"},
	{"じゃ", "ジャ", "ja"}, {"じゅ", "ジュ", "ju"}, {"じょ", "ジョ", "jo"},
	{"ちゃ", "チャ", "cha"}, {"ちゅ", "チュ", "chu"}, {"ちょ", "チョ", "cho"},
	{"ぢゃ", "ヂャ", "ja"}, {"ぢゅ", "ヂュ", "ju"}, {"ぢょ", "ヂョ", "jo"},
	{"にゃ", "ニャ", "nya"}, {"にゅ", "ニュ", "nyu"}, {"にょ", "ニョ", "nyo"},
	{"ひゃ", "ヒャ", "hya"}, {"ひゅ", "ヒュ", "hyu"}, {"ひょ", "ヒョ", "hyo"},
	{"びゃ", "ビャ", "bya"}, {"びゅ", "ビュ", "byu"}, {"びょ", "ビョ", "byo"},
	{"ぴゃ", "ピャ", "pya"}, {"ぴゅ", "ピュ", "pyu"}, {"ぴょ", "ピョ", "pyo"},
	{"みゃ", "ミャ", "mya"}, {"みゅ", "ミュ", "myu"}, {"みょ", "ミョ", "myo"},
	{"りゃ", "リャ", "rya"}, {"りゅ", "リュ", "ryu"}, {"りょ", "リョ", "ryo"},
	// small vowel / consonant markers used standalone (rare, but must not block consumption)
	{"ぁ", "ァ", "a"}, {"ぃ", "ィ", "i"}, {"ぅ", "ゥ", "u"}, {"ぇ", "ェ", "e"}, {"ぉ", "ォ", "o"},
	{"ゃ", "ャ", "ya"}, {"ゅ", "ュ", "yu"}, {"ょ", "ョ", "yo"},
}

type moraEntry struct {
	hira, kata, romaji string
}

var byHiragana = map[string]moraEntry{}
var byKatakana = map[string]moraEntry{}

func init() {
	for _, m := range moraTable {
		e := moraEntry{m.hira, m.kata, m.romaji}
		byHiragana[m.hira] = e
		byKatakana[m.kata] = e
	}
}

// Segment is a single consumed chunk of a kana analysis, able to
// render itself as hiragana, katakana, or romaji.
type Segment struct {
	raw    string
	entry  moraEntry
	sokuon bool // preceded by a small tsu (gemination): romaji doubles the leading consonant
}

func (s Segment) String() string { return s.raw }

// Hiragana renders this segment in hiragana.
func (s Segment) Hiragana() string {
	if s.entry.hira == "" {
		return s.raw
	}
	return s.entry.hira
}

// Katakana renders this segment in katakana.
func (s Segment) Katakana() string {
	if s.entry.kata == "" {
		return s.raw
	}
	return s.entry.kata
}

// Romanize renders this segment as romaji.
func (s Segment) Romanize() string {
	r := s.entry.romaji
	if r == "" {
		r = s.raw
	}
	if s.sokuon && r != "" {
		r = string(r[0]) + r
	}
	return r
}

// Analyze walks input, greedily consuming the longest matching kana
// chunk (up to 2 characters for yoon digraphs, else 1), at each step
// producing a Segment. Non-kana runs are emitted as single-rune,
// passthrough segments. The small tsu っ/ッ is folded into the
// following segment as a gemination marker rather than emitted on its
// own, and the long vowel mark ー extends the prior segment's romaji
// with its final vowel.
func Analyze(input string) []Segment {
	runes := []rune(input)
	var out []Segment

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == 'っ' || r == 'ッ' {
			if i+1 < len(runes) {
				seg, n := nextSegment(runes[i+1:])
				seg.sokuon = true
				out = append(out, seg)
				i += 1 + n
				continue
			}
			out = append(out, Segment{raw: string(r)})
			i++
			continue
		}

		if r == 'ー' {
			if len(out) > 0 {
				last := &out[len(out)-1]
				last.raw += "ー"
				if rom := last.entry.romaji; rom != "" {
					last.entry.romaji = rom + rom[len(rom)-1:]
				}
			} else {
				out = append(out, Segment{raw: string(r)})
			}
			i++
			continue
		}

		seg, n := nextSegment(runes[i:])
		out = append(out, seg)
		i += n
	}

	return out
}

func nextSegment(runes []rune) (Segment, int) {
	if len(runes) >= 2 {
		chunk := string(runes[:2])
		if e, ok := byHiragana[chunk]; ok {
			return Segment{raw: chunk, entry: e}, 2
		}
		if e, ok := byKatakana[chunk]; ok {
			return Segment{raw: chunk, entry: e}, 2
		}
	}
	chunk := string(runes[0])
	if e, ok := byHiragana[chunk]; ok {
		return Segment{raw: chunk, entry: e}, 1
	}
	if e, ok := byKatakana[chunk]; ok {
		return Segment{raw: chunk, entry: e}, 1
	}
	return Segment{raw: chunk}, 1
}

// RomanizeString romanizes an entire kana string in one pass.
func RomanizeString(input string) string {
	var b strings.Builder
	for _, seg := range Analyze(input) {
		b.WriteString(seg.Romanize())
	}
	return b.String()
}

// OppositeKana converts a kana string to its opposite kana script
// (hiragana<->katakana), used by C4 (§4.4.3) to emit a second index
// key alongside the romanized form.
func OppositeKana(input string) string {
	runes := []rune(input)
	allHira, allKata := true, true
	for _, r := range runes {
		if IsKatakana(r) {
			allHira = false
		} else if IsHiragana(r) {
			allKata = false
		} else {
			allHira, allKata = false, false
		}
	}
	switch {
	case allHira && !allKata:
		return ToKatakana(input)
	case allKata && !allHira:
		return ToHiragana(input)
	default:
		return input
	}
}
