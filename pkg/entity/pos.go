package entity

// PartOfSpeech is the closed enumeration of JMdict part-of-speech tags.
type PartOfSpeech uint8

const (
	AdjectiveF PartOfSpeech = iota
	AdjectiveI
	AdjectiveIx
	AdjectiveKari
	AdjectiveKu
	AdjectiveNa
	AdjectiveNari
	AdjectiveNo
	AdjectivePn
	AdjectiveShiku
	AdjectiveT
	Adverb
	AdverbTo
	Auxiliary
	AuxiliaryAdjective
	AuxiliaryVerb
	Conjunction
	Copular
	Counter
	Expression
	Interjection
	Noun
	NounAdverbial
	NounProper
	NounPrefix
	NounSuffix
	NounTemporal
	Numeric
	Pronoun
	Prefix
	Particle
	Suffix
	POSUnclassified
	VerbUnspecified
	VerbIchidan
	VerbIchidanS
	VerbNidanAS
	VerbNidanBK
	VerbNidanBS
	VerbNidanDK
	VerbNidanDS
	VerbNidanGK
	VerbNidanGS
	VerbNidanHK
	VerbNidanHS
	VerbNidanKK
	VerbNidanKS
	VerbNidanMK
	VerbNidanMS
	VerbNidanNS
	VerbNidanRK
	VerbNidanRS
	VerbNidanSS
	VerbNidanTK
	VerbNidanTS
	VerbNidanWS
	VerbNidanYK
	VerbNidanYS
	VerbNidanZS
	VerbYodanB
	VerbYodanG
	VerbYodanH
	VerbYodanK
	VerbYodanM
	VerbYodanN
	VerbYodanR
	VerbYodanS
	VerbYodanT
	VerbGodanAru
	VerbGodanB
	VerbGodanG
	VerbGodanK
	VerbGodanKS
	VerbGodanM
	VerbGodanN
	VerbGodanR
	VerbGodanRI
	VerbGodanS
	VerbGodanT
	VerbGodanU
	VerbGodanUS
	VerbGodanUru
	VerbIntransitive
	VerbKuru
	VerbNu
	VerbRu
	VerbSuru
	VerbSuC
	VerbSuruIncluded
	VerbSuruSpecial
	VerbTransitive
	VerbZuru

	posCount
)

var posTable = [posCount]def{
	AdjectiveF:         {"AdjectiveF", "adj-f", "noun or verb acting prenominally"},
	AdjectiveI:         {"AdjectiveI", "adj-i", "adjective (keiyoushi)"},
	AdjectiveIx:        {"AdjectiveIx", "adj-ix", "adjective (keiyoushi) - yoi/ii class"},
	AdjectiveKari:      {"AdjectiveKari", "adj-kari", "'kari' adjective (archaic)"},
	AdjectiveKu:        {"AdjectiveKu", "adj-ku", "'ku' adjective (archaic)"},
	AdjectiveNa:        {"AdjectiveNa", "adj-na", "adjectival nouns or quasi-adjectives (keiyodoshi)"},
	AdjectiveNari:      {"AdjectiveNari", "adj-nari", "archaic/formal form of na-adjective"},
	AdjectiveNo:        {"AdjectiveNo", "adj-no", "nouns which may take the genitive case particle 'no'"},
	AdjectivePn:        {"AdjectivePn", "adj-pn", "pre-noun adjectival (rentaishi)"},
	AdjectiveShiku:     {"AdjectiveShiku", "adj-shiku", "'shiku' adjective (archaic)"},
	AdjectiveT:         {"AdjectiveT", "adj-t", "'taru' adjective"},
	Adverb:             {"Adverb", "adv", "adverb (fukushi)"},
	AdverbTo:           {"AdverbTo", "adv-to", "adverb taking the 'to' particle"},
	Auxiliary:          {"Auxiliary", "aux", "auxiliary"},
	AuxiliaryAdjective: {"AuxiliaryAdjective", "aux-adj", "auxiliary adjective"},
	AuxiliaryVerb:      {"AuxiliaryVerb", "aux-v", "auxiliary verb"},
	Conjunction:        {"Conjunction", "conj", "conjunction"},
	Copular:            {"Copular", "cop", "copula"},
	Counter:            {"Counter", "ctr", "counter"},
	Expression:         {"Expression", "exp", "expressions (phrases, clauses, etc.)"},
	Interjection:       {"Interjection", "int", "interjection (kandoushi)"},
	Noun:               {"Noun", "n", "noun (common) (futsuumeishi)"},
	NounAdverbial:      {"NounAdverbial", "n-adv", "adverbial noun (fukushitekimeishi)"},
	NounProper:         {"NounProper", "n-pr", "proper noun"},
	NounPrefix:         {"NounPrefix", "n-pref", "noun, used as a prefix"},
	NounSuffix:         {"NounSuffix", "n-suf", "noun, used as a suffix"},
	NounTemporal:       {"NounTemporal", "n-t", "noun (temporal) (jisoumeishi)"},
	Numeric:            {"Numeric", "num", "numeric"},
	Pronoun:            {"Pronoun", "pn", "pronoun"},
	Prefix:             {"Prefix", "pref", "prefix"},
	Particle:           {"Particle", "prt", "particle"},
	Suffix:             {"Suffix", "suf", "suffix"},
	POSUnclassified:    {"Unclassified", "unc", "unclassified"},
	VerbUnspecified:    {"VerbUnspecified", "v-unspec", "verb unspecified"},
	VerbIchidan:        {"VerbIchidan", "v1", "Ichidan verb"},
	VerbIchidanS:       {"VerbIchidanS", "v1-s", "Ichidan verb - kureru special class"},
	VerbNidanAS:        {"VerbNidanAS", "v2a-s", "Nidan verb with 'u' ending (archaic)"},
	VerbNidanBK:        {"VerbNidanBK", "v2b-k", "Nidan verb (upper class) with 'bu' ending (archaic)"},
	VerbNidanBS:        {"VerbNidanBS", "v2b-s", "Nidan verb (lower class) with 'bu' ending (archaic)"},
	VerbNidanDK:        {"VerbNidanDK", "v2d-k", "Nidan verb (upper class) with 'dzu' ending (archaic)"},
	VerbNidanDS:        {"VerbNidanDS", "v2d-s", "Nidan verb (lower class) with 'dzu' ending (archaic)"},
	VerbNidanGK:        {"VerbNidanGK", "v2g-k", "Nidan verb (upper class) with 'gu' ending (archaic)"},
	VerbNidanGS:        {"VerbNidanGS", "v2g-s", "Nidan verb (lower class) with 'gu' ending (archaic)"},
	VerbNidanHK:        {"VerbNidanHK", "v2h-k", "Nidan verb (upper class) with 'hu/fu' ending (archaic)"},
	VerbNidanHS:        {"VerbNidanHS", "v2h-s", "Nidan verb (lower class) with 'hu/fu' ending (archaic)"},
	VerbNidanKK:        {"VerbNidanKK", "v2k-k", "Nidan verb (upper class) with 'ku' ending (archaic)"},
	VerbNidanKS:        {"VerbNidanKS", "v2k-s", "Nidan verb (lower class) with 'ku' ending (archaic)"},
	VerbNidanMK:        {"VerbNidanMK", "v2m-k", "Nidan verb (upper class) with 'mu' ending (archaic)"},
	VerbNidanMS:        {"VerbNidanMS", "v2m-s", "Nidan verb (lower class) with 'mu' ending (archaic)"},
	VerbNidanNS:        {"VerbNidanNS", "v2n-s", "Nidan verb (lower class) with 'nu' ending (archaic)"},
	VerbNidanRK:        {"VerbNidanRK", "v2r-k", "Nidan verb (upper class) with 'ru' ending (archaic)"},
	VerbNidanRS:        {"VerbNidanRS", "v2r-s", "Nidan verb (lower class) with 'ru' ending (archaic)"},
	VerbNidanSS:        {"VerbNidanSS", "v2s-s", "Nidan verb (lower class) with 'su' ending (archaic)"},
	VerbNidanTK:        {"VerbNidanTK", "v2t-k", "Nidan verb (upper class) with 'tsu' ending (archaic)"},
	VerbNidanTS:        {"VerbNidanTS", "v2t-s", "Nidan verb (lower class) with 'tsu' ending (archaic)"},
	VerbNidanWS:        {"VerbNidanWS", "v2w-s", "Nidan verb (lower class) with 'u' ending and 'we' conjugation (archaic)"},
	VerbNidanYK:        {"VerbNidanYK", "v2y-k", "Nidan verb (upper class) with 'yu' ending (archaic)"},
	VerbNidanYS:        {"VerbNidanYS", "v2y-s", "Nidan verb (lower class) with 'yu' ending (archaic)"},
	VerbNidanZS:        {"VerbNidanZS", "v2z-s", "Nidan verb (lower class) with 'zu' ending (archaic)"},
	VerbYodanB:         {"VerbYodanB", "v4b", "Yodan verb with 'bu' ending (archaic)"},
	VerbYodanG:         {"VerbYodanG", "v4g", "Yodan verb with 'gu' ending (archaic)"},
	VerbYodanH:         {"VerbYodanH", "v4h", "Yodan verb with 'hu/fu' ending (archaic)"},
	VerbYodanK:         {"VerbYodanK", "v4k", "Yodan verb with 'ku' ending (archaic)"},
	VerbYodanM:         {"VerbYodanM", "v4m", "Yodan verb with 'mu' ending (archaic)"},
	VerbYodanN:         {"VerbYodanN", "v4n", "Yodan verb with 'nu' ending (archaic)"},
	VerbYodanR:         {"VerbYodanR", "v4r", "Yodan verb with 'ru' ending (archaic)"},
	VerbYodanS:         {"VerbYodanS", "v4s", "Yodan verb with 'su' ending (archaic)"},
	VerbYodanT:         {"VerbYodanT", "v4t", "Yodan verb with 'tsu' ending (archaic)"},
	VerbGodanAru:       {"VerbGodanAru", "v5aru", "Godan verb - -aru special class"},
	VerbGodanB:         {"VerbGodanB", "v5b", "Godan verb with 'bu' ending"},
	VerbGodanG:         {"VerbGodanG", "v5g", "Godan verb with 'gu' ending"},
	VerbGodanK:         {"VerbGodanK", "v5k", "Godan verb with 'ku' ending"},
	VerbGodanKS:        {"VerbGodanKS", "v5k-s", "Godan verb - Iku/Yuku special class"},
	VerbGodanM:         {"VerbGodanM", "v5m", "Godan verb with 'mu' ending"},
	VerbGodanN:         {"VerbGodanN", "v5n", "Godan verb with 'nu' ending"},
	VerbGodanR:         {"VerbGodanR", "v5r", "Godan verb with 'ru' ending"},
	VerbGodanRI:        {"VerbGodanRI", "v5r-i", "Godan verb with 'ru' ending (irregular verb)"},
	VerbGodanS:         {"VerbGodanS", "v5s", "Godan verb with 'su' ending"},
	VerbGodanT:         {"VerbGodanT", "v5t", "Godan verb with 'tsu' ending"},
	VerbGodanU:         {"VerbGodanU", "v5u", "Godan verb with 'u' ending"},
	VerbGodanUS:        {"VerbGodanUS", "v5u-s", "Godan verb with 'u' ending (special class)"},
	VerbGodanUru:       {"VerbGodanUru", "v5uru", "Godan verb - Uru old class verb (old form of Eru)"},
	VerbIntransitive:   {"VerbIntransitive", "vi", "intransitive verb"},
	VerbKuru:           {"VerbKuru", "vk", "Kuru verb - special class"},
	VerbNu:             {"VerbNu", "vn", "irregular nu verb"},
	VerbRu:             {"VerbRu", "vr", "irregular ru verb, plain form ends with -ri"},
	VerbSuru:           {"VerbSuru", "vs", "noun or participle which takes the aux. verb suru"},
	VerbSuC:            {"VerbSuC", "vs-c", "su verb - precursor to the modern suru"},
	VerbSuruIncluded:   {"VerbSuruIncluded", "vs-i", "suru verb - included"},
	VerbSuruSpecial:    {"VerbSuruSpecial", "vs-s", "suru verb - special class"},
	VerbTransitive:     {"VerbTransitive", "vt", "transitive verb"},
	VerbZuru:           {"VerbZuru", "vz", "Ichidan verb - zuru verb (alternative form of -jiru verbs)"},
}

// AllPartsOfSpeech lists every value in declared order.
func AllPartsOfSpeech() []PartOfSpeech {
	out := make([]PartOfSpeech, posCount)
	for i := range out {
		out[i] = PartOfSpeech(i)
	}
	return out
}

func (p PartOfSpeech) Variant() string { return posTable[p].variant }
func (p PartOfSpeech) Ident() string   { return posTable[p].ident }
func (p PartOfSpeech) Help() string    { return posTable[p].help }

// ParsePartOfSpeechKeyword parses the bare entity identifier (e.g. "v5u").
func ParsePartOfSpeechKeyword(s string) (PartOfSpeech, bool) {
	for i := range posTable {
		if posTable[i].ident == s {
			return PartOfSpeech(i), true
		}
	}
	return 0, false
}
