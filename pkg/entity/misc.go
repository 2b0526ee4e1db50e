package entity

// Miscellaneous is the closed enumeration of JMdict "misc" sense tags.
type Miscellaneous uint8

const (
	Abbreviation Miscellaneous = iota
	Archaic
	Character
	Children
	Colloquial
	Company
	Creature
	Dated
	Deity
	Derogatory
	Document
	Euphemistic
	Event
	Familiar
	Feminine
	Fict
	Form
	Given
	Group
	Historical
	Honorific
	Humble
	Idiomatic
	Jocular
	Legend
	MangaSlang
	Male
	Mythology
	NetSlang
	Object
	Obsolete
	OnMim
	Organization
	MiscOther
	Person
	Place
	Poetic
	Polite
	Product
	Proverb
	Quote
	Rare
	Relig
	Sens
	Service
	Ship
	Slang
	Station
	Surname
	UsuallyKana
	MiscUnclassified
	Vulgar
	Work
	X
	Yojijukugo

	miscCount
)

var miscTable = [miscCount]def{
	Abbreviation:     {"Abbreviation", "abbr", "abbreviation"},
	Archaic:          {"Archaic", "arch", "archaic"},
	Character:        {"Character", "char", "character"},
	Children:         {"Children", "chn", "children's language"},
	Colloquial:       {"Colloquial", "col", "colloquial"},
	Company:          {"Company", "company", "company name"},
	Creature:         {"Creature", "creat", "creature"},
	Dated:            {"Dated", "dated", "dated term"},
	Deity:            {"Deity", "dei", "deity"},
	Derogatory:       {"Derogatory", "derog", "derogatory"},
	Document:         {"Document", "doc", "document"},
	Euphemistic:      {"Euphemistic", "euph", "euphemistic"},
	Event:            {"Event", "ev", "event"},
	Familiar:         {"Familiar", "fam", "familiar language"},
	Feminine:         {"Feminine", "fem", "female term or language"},
	Fict:             {"Fict", "fict", "fiction"},
	Form:             {"Form", "form", "formal or literary term"},
	Given:            {"Given", "given", "given name or forename, gender not specified"},
	Group:            {"Group", "group", "group"},
	Historical:       {"Historical", "hist", "historical term"},
	Honorific:        {"Honorific", "hon", "honorific or respectful (sonkeigo) language"},
	Humble:           {"Humble", "hum", "humble (kenjougo) language"},
	Idiomatic:        {"Idiomatic", "id", "idiomatic expression"},
	Jocular:          {"Jocular", "joc", "jocular, humorous term"},
	Legend:           {"Legend", "leg", "legend"},
	MangaSlang:       {"MangaSlang", "m-sl", "manga slang"},
	Male:             {"Male", "male", "male term or language"},
	Mythology:        {"Mythology", "myth", "mythology"},
	NetSlang:         {"NetSlang", "net-sl", "Internet slang"},
	Object:           {"Object", "obj", "object"},
	Obsolete:         {"Obsolete", "obs", "obsolete term"},
	OnMim:            {"OnMim", "on-mim", "onomatopoeic or mimetic word"},
	Organization:     {"Organization", "organization", "organization name"},
	MiscOther:        {"Other", "oth", "other"},
	Person:           {"Person", "person", "full name of a particular person"},
	Place:            {"Place", "place", "place name"},
	Poetic:           {"Poetic", "poet", "poetical term"},
	Polite:           {"Polite", "pol", "polite (teineigo) language"},
	Product:          {"Product", "product", "product name"},
	Proverb:          {"Proverb", "proverb", "proverb"},
	Quote:            {"Quote", "quote", "quotation"},
	Rare:             {"Rare", "rare", "rare term"},
	Relig:            {"Relig", "relig", "religion"},
	Sens:             {"Sens", "sens", "sensitive"},
	Service:          {"Service", "serv", "service"},
	Ship:             {"Ship", "ship", "ship name"},
	Slang:            {"Slang", "sl", "slang"},
	Station:          {"Station", "station", "railway station"},
	Surname:          {"Surname", "surname", "family or surname"},
	UsuallyKana:      {"UsuallyKana", "uk", "word usually written using kana alone"},
	MiscUnclassified: {"Unclassified", "unclass", "unclassified name"},
	Vulgar:           {"Vulgar", "vulg", "vulgar expression or word"},
	Work:             {"Work", "work", "work of art, literature, music, etc. name"},
	X:                {"X", "X", "rude or X-rated term (not displayed in educational software)"},
	Yojijukugo:       {"Yojijukugo", "yoji", "yojijukugo"},
}

func AllMiscellaneous() []Miscellaneous {
	out := make([]Miscellaneous, miscCount)
	for i := range out {
		out[i] = Miscellaneous(i)
	}
	return out
}

func (m Miscellaneous) Variant() string { return miscTable[m].variant }
func (m Miscellaneous) Ident() string   { return miscTable[m].ident }
func (m Miscellaneous) Help() string    { return miscTable[m].help }

func ParseMiscellaneousKeyword(s string) (Miscellaneous, bool) {
	for i := range miscTable {
		if miscTable[i].ident == s {
			return Miscellaneous(i), true
		}
	}
	return 0, false
}
