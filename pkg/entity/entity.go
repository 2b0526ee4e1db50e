// Package entity holds the closed tag enumerations used throughout a
// dictionary entry: part-of-speech, kanji/reading info, dialect, field,
// miscellaneous and name-type tags. Every enumeration is a closed set
// backed by a uint8; part-of-speech (92 members) and field (93 members)
// have more than 64 values, the other families fewer.
package entity

// Tag is the common shape shared by every closed enumeration in this
// package: a stable identifier (the XML entity name, also usable as a
// CLI flag value), a short display variant name, and a help string.
type Tag interface {
	Ident() string
	Variant() string
	Help() string
}

// Entity is the umbrella union of every tag kind, mirroring the
// original's single dispatch point for XML entity-reference parsing.
type Entity struct {
	Misc       Miscellaneous
	HasMisc    bool
	POS        PartOfSpeech
	HasPOS     bool
	KanjiInfo  KanjiInfo
	HasKanji   bool
	ReadInfo   ReadingInfo
	HasReading bool
	Dialect    Dialect
	HasDialect bool
	Field      Field
	HasField   bool
}

// ParseKeyword dispatches an XML entity identifier (without the
// surrounding "&...;") across every tag family in declared order,
// mirroring the Rust `Entity::parse_keyword` umbrella dispatch.
func ParseKeyword(s string) (Entity, bool) {
	if v, ok := ParseMiscellaneousKeyword(s); ok {
		return Entity{Misc: v, HasMisc: true}, true
	}
	if v, ok := ParsePartOfSpeechKeyword(s); ok {
		return Entity{POS: v, HasPOS: true}, true
	}
	if v, ok := ParseKanjiInfoKeyword(s); ok {
		return Entity{KanjiInfo: v, HasKanji: true}, true
	}
	if v, ok := parseReadingInfoUmbrellaKeyword(s); ok {
		return Entity{ReadInfo: v, HasReading: true}, true
	}
	if v, ok := ParseDialectKeyword(s); ok {
		return Entity{Dialect: v, HasDialect: true}, true
	}
	if v, ok := ParseFieldKeyword(s); ok {
		return Entity{Field: v, HasField: true}, true
	}
	return Entity{}, false
}

// ParseNameEntityKeyword is the separate umbrella used for the jmnedict name-type
// tag family (kept distinct from Entity, matching the original's
// second `entity!` invocation with its own parse dispatch).
func ParseNameEntityKeyword(s string) (NameType, bool) {
	return ParseNameTypeKeyword(s)
}

// def is the shared metadata row backing every generated enum below.
type def struct {
	variant string
	ident   string
	help    string
}
