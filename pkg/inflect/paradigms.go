package inflect

// Row is one callback invocation from a paradigm: a (prefix, suffix)
// pair observed to follow a verb/adjective stem, tagged with the set
// of forms it represents. Paradigms with no extra stem mora set
// Prefix to "".
type Row struct {
	Prefix, Suffix string
	Forms          []Form
}

// RowFunc receives each row a paradigm emits.
type RowFunc func(prefix, suffix string, forms []Form)

func f(forms ...Form) []Form { return forms }

// Ichidan emits the base ichidan (一段) paradigm rows, grounded on
// macros.rs::ichidan.
func Ichidan(r RowFunc) {
	r("", "る", nil)
	r("", "ます", f(Honorific))
	r("", "ない", f(Negative))
	r("", "ません", f(Negative, Honorific))
	r("", "た", f(Past))
	r("", "ました", f(Past, Honorific))
	r("", "なかった", f(Past, Negative))
	r("", "ませんでした", f(Past, Negative, Honorific))
	r("", "ろ", f(Command))
	r("", "なさい", f(Command, Honorific))
	r("", "てください", f(Command, Honorific, CommandTeKudasai))
	r("", "よ", f(Command, CommandYo))
	r("", "るな", f(Command, Negative))
	r("", "ないでください", f(Command, Negative, Honorific))
	r("", "りゃ", f(Hypothetical, Conversation))
	r("", "なけりゃ", f(Hypothetical, Conversation, Negative))
	r("", "ば", f(Hypothetical))
	r("", "なければ", f(Hypothetical, Negative))
	r("", "なきゃ", f(Hypothetical, Negative, Kya))
	r("", "たら", f(Conditional))
	r("", "ましたら", f(Conditional, Honorific))
	r("", "なかったら", f(Conditional, Negative))
	r("", "ませんでしたら", f(Conditional, Negative, Honorific))
	r("", "れる", f(Passive, Conversation))
	r("", "られる", f(Passive))
	r("", "られます", f(Passive, Honorific))
	r("", "られない", f(Passive, Negative))
	r("", "られません", f(Passive, Negative, Honorific))
	r("", "られた", f(Passive, Past))
	r("", "られました", f(Passive, Past, Honorific))
	r("", "られる", f(Potential))
	r("", "られます", f(Potential, Honorific))
	r("", "られない", f(Potential, Negative))
	r("", "られません", f(Potential, Negative, Honorific))
	r("", "られた", f(Potential, Past))
	r("", "られました", f(Potential, Past, Honorific))
	r("", "られなかった", f(Potential, Past, Negative))
	r("", "られませんでした", f(Potential, Past, Negative, Honorific))
	r("", "よう", f(Volitional))
	r("", "ましょう", f(Volitional, Honorific))
	r("", "るだろう", f(Volitional, Darou))
	r("", "るでしょう", f(Volitional, Darou, Honorific))
	r("", "ないだろう", f(Volitional, Negative))
	r("", "ないでしょう", f(Volitional, Negative, Honorific))
	r("", "させる", f(Causative))
	r("", "ながら", f(Simultaneous))
	r("", "そう", f(LooksLike))
}

// IchidanTe emits the stem and te-form before delegating to Ichidan,
// grounded on macros.rs::ichidan_te.
func IchidanTe(r RowFunc) {
	r("", "", f(Stem))
	r("", "て", f(Te))
	Ichidan(r)
}

// GodanRows emits the full godan paradigm for one consonant class,
// grounded on macros.rs::godan.
func GodanRows(g Godan, r RowFunc) {
	r("", g.U, nil)
	r("", g.Past, f(Past))
	r("", g.Tara, f(Conditional))
	r("", g.E, f(Command))
	r(g.I, "ます", f(Honorific))
	r(g.A, "ない", f(Negative))
	r(g.I, "ません", f(Negative, Honorific))
	r(g.I, "ました", f(Past, Honorific))
	r(g.A, "なかった", f(Past, Negative))
	r(g.I, "ませんでした", f(Past, Negative, Honorific))
	r(g.I, "なさい", f(Command, Honorific))
	r(g.Te, "ください", f(Command, Honorific, CommandTeKudasai))
	r(g.E, "よ", f(Command, CommandYo))
	r(g.U, "な", f(Command, Negative))
	r(g.A, "ないでください", f(Command, Negative, Honorific))

	if g.HasKya {
		r("", g.Kya, f(Hypothetical, Conversation))
		r("", g.NakeKya, f(Hypothetical, Negative, Conversation))
	}

	r(g.E, "ば", f(Hypothetical))
	r(g.A, "なければ", f(Hypothetical, Negative))
	r(g.A, "なきゃ", f(Hypothetical, Negative, Kya))
	r(g.I, "ましたら", f(Conditional, Honorific))
	r(g.A, "なかったら", f(Conditional, Negative))
	r(g.I, "ませんでしたら", f(Conditional, Negative, Honorific))
	r(g.A, "れる", f(Passive))
	r(g.A, "れます", f(Passive, Honorific))
	r(g.A, "れない", f(Passive, Negative))
	r(g.A, "れません", f(Passive, Negative, Honorific))
	r(g.A, "れた", f(Passive, Past))
	r(g.A, "れました", f(Passive, Past, Honorific))
	r(g.E, "る", f(Potential))
	r(g.E, "ます", f(Potential, Honorific))
	r(g.E, "ない", f(Potential, Negative))
	r(g.E, "ません", f(Potential, Negative, Honorific))
	r(g.E, "た", f(Potential, Past))
	r(g.E, "ました", f(Potential, Past, Honorific))
	r(g.E, "なかった", f(Potential, Past, Negative))
	r(g.E, "ませんでした", f(Potential, Past, Negative, Honorific))
	r(g.O, "う", f(Volitional))
	r(g.I, "ましょう", f(Volitional, Honorific))
	r(g.U, "だろう", f(Volitional, Darou))
	r(g.U, "でしょう", f(Volitional, Darou, Honorific))
	r(g.A, "ないだろう", f(Volitional, Negative))
	r(g.A, "ないでしょう", f(Volitional, Negative, Honorific))
	r(g.A, "せる", f(Causative))
	r(g.I, "ながら", f(Simultaneous))
	r(g.I, "そう", f(LooksLike))
}

// GodanBase emits the stem and te-form before delegating to GodanRows,
// grounded on macros.rs::godan_base.
func GodanBase(g Godan, r RowFunc) {
	r("", g.I, f(Stem))
	r("", g.Te, f(Te))
	GodanRows(g, r)
}

// Kuru emits the 来る/くる irregular paradigm, grounded on
// macros.rs::kuru.
func Kuru(r RowFunc) {
	r("く", "る", nil)
	r("き", "ます", f(Honorific))
	r("こ", "ない", f(Negative))
	r("き", "ません", f(Negative, Honorific))
	r("き", "た", f(Past))
	r("き", "ました", f(Past, Honorific))
	r("こ", "なかった", f(Past, Negative))
	r("き", "ませんでした", f(Past, Negative, Honorific))
	r("こ", "い", f(Command))
	r("き", "なさい", f(Command, Honorific))
	r("き", "てください", f(Command, Honorific, CommandTeKudasai))
	r("く", "るな", f(Command, Negative))
	r("こ", "ないでください", f(Command, Negative, Honorific))
	r("く", "りゃ", f(Hypothetical, Conversation))
	r("こ", "なけりゃ", f(Hypothetical, Conversation, Negative))
	r("く", "れば", f(Hypothetical))
	r("こ", "なければ", f(Hypothetical, Negative))
	r("こ", "なきゃ", f(Hypothetical, Negative, Kya))
	r("き", "たら", f(Conditional))
	r("き", "ましたら", f(Conditional, Honorific))
	r("こ", "なかったら", f(Conditional, Negative))
	r("き", "ませんでしたら", f(Conditional, Negative, Honorific))
	r("こ", "られる", f(Passive))
	r("こ", "られます", f(Passive, Honorific))
	r("こ", "られない", f(Passive, Negative))
	r("こ", "られません", f(Passive, Negative, Honorific))
	r("こ", "られた", f(Passive, Past))
	r("こ", "られました", f(Passive, Past, Honorific))
	r("こ", "られる", f(Potential))
	r("こ", "よう", f(Volitional))
	r("き", "ましょう", f(Volitional, Honorific))
	r("く", "るだろう", f(Volitional, Darou))
	r("く", "るでしょう", f(Volitional, Darou, Honorific))
	r("こ", "ないだろう", f(Volitional, Negative))
	r("こ", "ないでしょう", f(Volitional, Negative, Honorific))
	r("こ", "させる", f(Causative))
	r("こ", "させます", f(Causative, Honorific))
	r("こ", "させない", f(Causative, Negative))
	r("こ", "させません", f(Causative, Negative, Honorific))
	r("き", "ながら", f(Simultaneous))
	r("き", "そう", f(LooksLike))
}

// KuruBase emits the stem and te-form before delegating to Kuru,
// grounded on macros.rs::kuru_base.
func KuruBase(r RowFunc) {
	r("き", "", f(Stem))
	r("き", "て", f(Te))
	Kuru(r)
}

// Suru emits the する irregular paradigm, grounded on macros.rs::suru.
func Suru(r RowFunc) {
	r("す", "る", nil)
	r("し", "ます", f(Honorific))
	r("し", "ない", f(Negative))
	r("し", "ません", f(Negative, Honorific))
	r("し", "た", f(Past))
	r("し", "ました", f(Past, Honorific))
	r("し", "なかった", f(Past, Negative))
	r("し", "ませんでした", f(Past, Negative, Honorific))
	r("し", "ろ", f(Command))
	r("し", "なさい", f(Command, Honorific))
	r("し", "てください", f(Command, Honorific, CommandTeKudasai))
	r("し", "よ", f(Command, CommandYo))
	r("す", "るな", f(Command, Negative))
	r("し", "ないでください", f(Command, Negative, Honorific))
	r("す", "りゃ", f(Hypothetical, Conversation))
	r("し", "なけりゃ", f(Hypothetical, Conversation, Negative))
	r("す", "れば", f(Hypothetical))
	r("し", "なければ", f(Hypothetical, Negative))
	r("し", "なきゃ", f(Hypothetical, Negative, Kya))
	r("し", "たら", f(Conditional))
	r("し", "ましたら", f(Conditional, Honorific))
	r("し", "なかったら", f(Conditional, Negative))
	r("し", "ませんでしたら", f(Conditional, Negative, Honorific))
	r("さ", "れる", f(Passive))
	r("さ", "れます", f(Passive, Honorific))
	r("さ", "れない", f(Passive, Negative))
	r("さ", "れません", f(Passive, Negative, Honorific))
	r("さ", "れた", f(Passive, Past))
	r("さ", "れました", f(Passive, Past, Honorific))
	r("で", "きる", f(Potential))
	r("で", "きます", f(Potential, Honorific))
	r("で", "きない", f(Potential, Negative))
	r("で", "きません", f(Potential, Negative, Honorific))
	r("で", "きた", f(Potential, Past))
	r("で", "きました", f(Potential, Past, Honorific))
	r("で", "きなかった", f(Potential, Past, Negative))
	r("で", "きませんでした", f(Potential, Past, Negative, Honorific))
	r("し", "よう", f(Volitional))
	r("し", "ましょう", f(Volitional, Honorific))
	r("す", "るだろう", f(Volitional, Darou))
	r("す", "るでしょう", f(Volitional, Darou, Honorific))
	r("し", "ないだろう", f(Volitional, Negative))
	r("し", "ないでしょう", f(Volitional, Negative, Honorific))
	r("し", "たろう", f(Volitional, Past))
	r("し", "ましたろう", f(Volitional, Past, Honorific))
	r("し", "ただろう", f(Volitional, Past, Darou))
	r("し", "なかっただろう", f(Volitional, Past, Negative))
	r("し", "なかったでしょう", f(Volitional, Past, Negative, Honorific))
	r("さ", "せる", f(Causative))
	r("し", "ながら", f(Simultaneous))
	r("し", "そう", f(LooksLike))
}

// SuruBase emits the stem and te-form before delegating to Suru,
// grounded on macros.rs::suru_base.
func SuruBase(r RowFunc) {
	r("し", "", f(Stem))
	r("し", "て", f(Te))
	Suru(r)
}

// AdjectiveI emits the i-adjective paradigm, grounded on
// macros.rs::adjective_i. Two-arg rows (no stem prefix).
func AdjectiveI(r RowFunc) {
	r("", "い", nil)
	r("", "いです", f(Honorific))
	r("", "かった", f(Past))
	r("", "かったです", f(Past, Honorific))
	r("", "くない", f(Negative))
	r("", "くないです", f(Negative, Honorific))
	r("", "なかった", f(Past, Negative))
	r("", "なかったです", f(Past, Negative, Honorific))
	r("", "いよう", f(Volitional))
}

// AdjectiveIi emits the yoi/ii irregular adjective paradigm (distinct
// past-tense よ-stem), grounded on macros.rs::adjective_ii.
func AdjectiveIi(r RowFunc) {
	r("い", "い", nil)
	r("い", "いです", f(Honorific))
	r("よ", "かった", f(Past))
	r("よ", "かったです", f(Past, Honorific))
	r("よ", "くない", f(Negative))
	r("よ", "くないです", f(Negative, Honorific))
	r("よ", "なかった", f(Past, Negative))
	r("よ", "なかったです", f(Past, Negative, Honorific))
	r("い", "いよう", f(Volitional))
}

// AdjectiveNa emits the na-adjective copula paradigm, grounded on
// macros.rs::adjective_na.
func AdjectiveNa(r RowFunc) {
	r("", "だ", nil)
	r("", "です", f(Honorific))
	r("", "だった", f(Past))
	r("", "でした", f(Past, Honorific))
	r("", "ではない", f(Negative))
	r("", "ではありません", f(Negative, Honorific))
	r("", "ではなかった", f(Past, Negative))
	r("", "ではありませんでした", f(Past, Negative, Honorific))
}
