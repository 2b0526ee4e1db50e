package entity

// Field is the closed enumeration of subject-field tags (domains of use).
type Field uint8

const (
	Agriculture Field = iota
	Anatomy
	Archeology
	Architecture
	Art
	Astronomy
	AudioVisual
	Aviatation
	Baseball
	Biochemistry
	Biology
	Botany
	Boxing
	Buddh
	Business
	Cards
	Chemistry
	Christianity
	CivilEngineering
	ChineseMythology
	Clothing
	Computing
	Crystallography
	Dentistry
	Ecology
	Economy
	Electricity
	Electronics
	Embryology
	Engineering
	Entomology
	Film
	Finc
	Fish
	Food
	Gardening
	Genetics
	Geography
	Geology
	Geometry
	Go
	Golf
	Grammar
	GreekMythology
	Hanafuda
	Horse
	Internet
	JapaneseMythology
	Kabuki
	Law
	Ling
	Logic
	MartialArts
	Mahjong
	Manga
	Mathematics
	MechanicalEnginering
	Medicine
	Meteorology
	Military
	Mining
	Motorsport
	Music
	Noh
	Ornithology
	Paleontology
	Pathology
	Pharmacology
	Philosophy
	Photo
	Physics
	Physiol
	Politics
	Print
	ProwRes
	Psychatry
	Psyanal
	Psychology
	Railway
	RomanMythology
	Shinto
	Shogi
	Skiing
	Sports
	Statistics
	StockMarket
	Sumo
	Surgery
	Telecommunications
	Trademark
	Tv
	VideoGames
	Zoology

	fieldCount
)

var fieldTable = [fieldCount]def{
	Agriculture:          {"Agriculture", "agric", "agriculture"},
	Anatomy:              {"Anatomy", "anat", "anatomy"},
	Archeology:           {"Archeology", "archeol", "archeology"},
	Architecture:         {"Architecture", "archit", "architecture"},
	Art:                  {"Art", "art", "art, aesthetics"},
	Astronomy:            {"Astronomy", "astron", "astronomy"},
	AudioVisual:          {"AudioVisual", "audvid", "audiovisual"},
	Aviatation:           {"Aviatation", "aviat", "aviation"},
	Baseball:             {"Baseball", "baseb", "baseball"},
	Biochemistry:         {"Biochemistry", "biochem", "biochemistry"},
	Biology:              {"Biology", "biol", "biology"},
	Botany:               {"Botany", "bot", "botany"},
	Boxing:               {"Boxing", "boxing", "boxing"},
	Buddh:                {"Buddh", "Buddh", "Buddhism"},
	Business:             {"Business", "bus", "business"},
	Cards:                {"Cards", "cards", "card games"},
	Chemistry:            {"Chemistry", "chem", "chemistry"},
	Christianity:         {"Christianity", "Christn", "Christianity"},
	CivilEngineering:     {"CivilEngineering", "civeng", "civil engineering"},
	ChineseMythology:     {"ChineseMythology", "chmyth", "Chinese mythology"},
	Clothing:             {"Clothing", "cloth", "clothing"},
	Computing:            {"Computing", "comp", "computing"},
	Crystallography:      {"Crystallography", "cryst", "crystallography"},
	Dentistry:            {"Dentistry", "dent", "dentistry"},
	Ecology:              {"Ecology", "ecol", "ecology"},
	Economy:              {"Economy", "econ", "economics"},
	Electricity:          {"Electricity", "elec", "electricity, elec. eng."},
	Electronics:          {"Electronics", "electr", "electronics"},
	Embryology:           {"Embryology", "embryo", "embryology"},
	Engineering:          {"Engineering", "engr", "engineering"},
	Entomology:           {"Entomology", "ent", "entomology"},
	Film:                 {"Film", "film", "film"},
	Finc:                 {"Finc", "finc", "finance"},
	Fish:                 {"Fish", "fish", "fishing"},
	Food:                 {"Food", "food", "food, cooking"},
	Gardening:            {"Gardening", "gardn", "gardening, horticulture"},
	Genetics:             {"Genetics", "genet", "genetics"},
	Geography:            {"Geography", "geogr", "geography"},
	Geology:              {"Geology", "geol", "geology"},
	Geometry:             {"Geometry", "geom", "geometry"},
	Go:                   {"Go", "go", "go (game)"},
	Golf:                 {"Golf", "golf", "golf"},
	Grammar:              {"Grammar", "gramm", "grammar"},
	GreekMythology:       {"GreekMythology", "grmyth", "Greek mythology"},
	Hanafuda:             {"Hanafuda", "hanaf", "hanafuda"},
	Horse:                {"Horse", "horse", "horse racing"},
	Internet:             {"Internet", "internet", "internet"},
	JapaneseMythology:    {"JapaneseMythology", "jpmyth", "Japanese mythology"},
	Kabuki:               {"Kabuki", "kabuki", "kabuki"},
	Law:                  {"Law", "law", "law"},
	Ling:                 {"Ling", "ling", "linguistics"},
	Logic:                {"Logic", "logic", "logic"},
	MartialArts:          {"MartialArts", "MA", "martial arts"},
	Mahjong:              {"Mahjong", "mahj", "mahjong"},
	Manga:                {"Manga", "manga", "manga"},
	Mathematics:          {"Mathematics", "math", "mathematics"},
	MechanicalEnginering: {"MechanicalEnginering", "mech", "mechanical engineering"},
	Medicine:             {"Medicine", "med", "medicine"},
	Meteorology:          {"Meteorology", "met", "meteorology"},
	Military:             {"Military", "mil", "military"},
	Mining:               {"Mining", "mining", "mining"},
	Motorsport:           {"Motorsport", "motor", "motorsport"},
	Music:                {"Music", "music", "music"},
	Noh:                  {"Noh", "noh", "noh"},
	Ornithology:          {"Ornithology", "ornith", "ornithology"},
	Paleontology:         {"Paleontology", "paleo", "paleontology"},
	Pathology:            {"Pathology", "pathol", "pathology"},
	Pharmacology:         {"Pharmacology", "pharm", "pharmacology"},
	Philosophy:           {"Philosophy", "phil", "philosophy"},
	Photo:                {"Photo", "photo", "photography"},
	Physics:              {"Physics", "physics", "physics"},
	Physiol:              {"Physiol", "physiol", "physiology"},
	Politics:             {"Politics", "politics", "politics"},
	Print:                {"Print", "print", "printing"},
	ProwRes:              {"ProwRes", "prowres", "professional wrestling"},
	Psychatry:            {"Psychatry", "psy", "psychiatry"},
	Psyanal:              {"Psyanal", "psyanal", "psychoanalysis"},
	Psychology:           {"Psychology", "psych", "psychology"},
	Railway:              {"Railway", "rail", "railway"},
	RomanMythology:       {"RomanMythology", "rommyth", "Roman mythology"},
	Shinto:               {"Shinto", "Shinto", "Shinto"},
	Shogi:                {"Shogi", "shogi", "shogi"},
	Skiing:               {"Skiing", "ski", "skiing"},
	Sports:               {"Sports", "sports", "sports"},
	Statistics:           {"Statistics", "stat", "statistics"},
	StockMarket:          {"StockMarket", "stockm", "stock market"},
	Sumo:                 {"Sumo", "sumo", "sumo"},
	Surgery:              {"Surgery", "surg", "surgery"},
	Telecommunications:   {"Telecommunications", "telec", "telecommunications"},
	Trademark:            {"Trademark", "tradem", "trademark"},
	Tv:                   {"Tv", "tv", "television"},
	VideoGames:           {"VideoGames", "vidg", "video games"},
	Zoology:              {"Zoology", "zool", "zoology"},
}

func AllFields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

func (f Field) Variant() string { return fieldTable[f].variant }
func (f Field) Ident() string   { return fieldTable[f].ident }
func (f Field) Help() string    { return fieldTable[f].help }

func ParseFieldKeyword(s string) (Field, bool) {
	for i := range fieldTable {
		if fieldTable[i].ident == s {
			return Field(i), true
		}
	}
	return 0, false
}
