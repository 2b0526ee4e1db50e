package entity

// NameType is the closed enumeration of JMnedict name-type tags. It
// uses its own umbrella (NameEntity in the original) separate from
// Entity because JMnedict's tag vocabulary is parsed independently of
// JMdict's.
type NameType uint8

const (
	NTCharacter NameType = iota
	NTCompany
	NTCreature
	NTDeity
	NTDocument
	NTEvent
	NTFeminine
	NTFiction
	NTGiven
	NTGroup
	NTLegend
	NTMasculine
	NTMythology
	NTObject
	NTOrganization
	NTOther
	NTPerson
	NTPlace
	NTProduct
	NTReligion
	NTService
	NTShip
	NTStation
	NTSurname
	NTUnclassified
	NTWork

	nameTypeCount
)

var nameTypeTable = [nameTypeCount]def{
	NTCharacter:    {"Character", "char", "character"},
	NTCompany:      {"Company", "company", "company name"},
	NTCreature:     {"Creature", "creat", "creature"},
	NTDeity:        {"Deity", "dei", "deity"},
	NTDocument:     {"Document", "doc", "document"},
	NTEvent:        {"Event", "ev", "event"},
	NTFeminine:     {"Feminine", "fem", "female given name or forename"},
	NTFiction:      {"Fiction", "fict", "fiction"},
	NTGiven:        {"Given", "given", "given name or forename, gender not specified"},
	NTGroup:        {"Group", "group", "group"},
	NTLegend:       {"Legend", "leg", "legend"},
	NTMasculine:    {"Masculine", "masc", "male given name or forename"},
	NTMythology:    {"Mythology", "myth", "mythology"},
	NTObject:       {"Object", "obj", "object"},
	NTOrganization: {"Organization", "organization", "organization name"},
	NTOther:        {"Other", "oth", "other"},
	NTPerson:       {"Person", "person", "full name of a particular person"},
	NTPlace:        {"Place", "place", "place name"},
	NTProduct:      {"Product", "product", "product name"},
	NTReligion:     {"Religion", "relig", "religion"},
	NTService:      {"Service", "serv", "service"},
	NTShip:         {"Ship", "ship", "ship name"},
	NTStation:      {"Station", "station", "railway station"},
	NTSurname:      {"Surname", "surname", "family or surname"},
	NTUnclassified: {"Unclassified", "unclass", "unclassified name"},
	NTWork:         {"Work", "work", "work of art, literature, music, etc. name"},
}

func AllNameTypes() []NameType {
	out := make([]NameType, nameTypeCount)
	for i := range out {
		out[i] = NameType(i)
	}
	return out
}

func (n NameType) Variant() string { return nameTypeTable[n].variant }
func (n NameType) Ident() string   { return nameTypeTable[n].ident }
func (n NameType) Help() string    { return nameTypeTable[n].help }

func ParseNameTypeKeyword(s string) (NameType, bool) {
	for i := range nameTypeTable {
		if nameTypeTable[i].ident == s {
			return NameType(i), true
		}
	}
	return 0, false
}
