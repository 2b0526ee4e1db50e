package inflect

// Godan holds the five vowel-row stems plus the te/past/conditional
// euphonic shapes and the optional conversational hypothetical
// contractions for one godan consonant class. Field names mirror the
// original's `Godan` struct referenced by macros.rs::godan(), which
// was not itself present in the retrieval pack (see DESIGN.md): the
// nine per-class row values below are reconstructed from standard
// Hepburn-documented godan morphology rather than translated from
// source.
type Godan struct {
	A, I, U, E, O  string
	Te, Past, Tara string
	Kya, NakeKya   string
	HasKya         bool

	// ChauStem is the euphonic stem the Chau (～ちゃう) derived form
	// attaches to, e.g. "っちゃ" for most classes, "いちゃ" for 〜く,
	// "いじゃ" for 〜ぐ, "んじゃ" for nasal stems, "しちゃ" for 〜す.
	ChauStem string
}

func newGodan(a, i, u, e, o, te, past, chauStem string) Godan {
	g := Godan{
		A: a, I: i, U: u, E: e, O: o,
		Te: te, Past: past, Tara: past + "ら",
		Kya:      i + "ゃ",
		NakeKya:  a + "なけりゃ",
		HasKya:   true,
		ChauStem: chauStem,
	}
	return g
}

// GodanU is the う-terminal class (e.g. 買う).
var GodanU = newGodan("わ", "い", "う", "え", "お", "って", "った", "っちゃ")

// GodanKu is the く-terminal class (e.g. 書く).
var GodanKu = newGodan("か", "き", "く", "け", "こ", "いて", "いた", "いちゃ")

// GodanGu is the ぐ-terminal class (e.g. 泳ぐ).
var GodanGu = newGodan("が", "ぎ", "ぐ", "げ", "ご", "いで", "いだ", "いじゃ")

// GodanSu is the す-terminal class (e.g. 話す).
var GodanSu = newGodan("さ", "し", "す", "せ", "そ", "して", "した", "しちゃ")

// GodanTsu is the つ-terminal class (e.g. 勝つ).
var GodanTsu = newGodan("た", "ち", "つ", "て", "と", "って", "った", "っちゃ")

// GodanNu is the ぬ-terminal class (e.g. 死ぬ).
var GodanNu = newGodan("な", "に", "ぬ", "ね", "の", "んで", "んだ", "んじゃ")

// GodanBu is the ぶ-terminal class (e.g. 遊ぶ).
var GodanBu = newGodan("ば", "び", "ぶ", "べ", "ぼ", "んで", "んだ", "んじゃ")

// GodanMu is the む-terminal class (e.g. 読む).
var GodanMu = newGodan("ま", "み", "む", "め", "も", "んで", "んだ", "んじゃ")

// GodanRu is the godan (non-ichidan) る-terminal class (e.g. 走る).
var GodanRu = newGodan("ら", "り", "る", "れ", "ろ", "って", "った", "っちゃ")

// GodanIku is the 行く/行く special class: unlike the regular く class
// it takes っ-gemination in the te/past/tara forms instead of い-onbin.
var GodanIku = newGodan("か", "き", "く", "け", "こ", "って", "った", "っちゃ")
