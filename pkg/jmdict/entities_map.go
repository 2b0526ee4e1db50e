package jmdict

import "github.com/udoprog/jpv-go/pkg/entity"

// DictionaryEntityMap builds the identity entity map for JMdict and
// kanjidic2: every closed tag family's XML entity identifier (e.g.
// "v5k", "uk", "obsc") maps to itself, so that encoding/xml resolves
// an entity reference like &v5k; found inside element text down to
// the bare identifier "v5k" instead of erroring on an entity it has
// no DOCTYPE-declared definition for. Callers then run that string
// through the matching entity.ParseXxxKeyword function.
func DictionaryEntityMap() map[string]string {
	m := make(map[string]string)
	for _, p := range entity.AllPartsOfSpeech() {
		m[p.Ident()] = p.Ident()
	}
	for _, v := range entity.AllMiscellaneous() {
		m[v.Ident()] = v.Ident()
	}
	for _, v := range entity.AllDialects() {
		m[v.Ident()] = v.Ident()
	}
	for _, v := range entity.AllFields() {
		m[v.Ident()] = v.Ident()
	}
	for _, v := range entity.AllKanjiInfo() {
		m[v.Ident()] = v.Ident()
	}
	for _, v := range entity.AllReadingInfo() {
		m[v.Ident()] = v.Ident()
	}
	m["rik"] = "rik"
	return m
}

// NameEntityMap builds the identity entity map for JMnedict's
// name-type tag family, kept separate from DictionaryEntityMap because
// JMnedict's DOCTYPE declares its own disjoint entity vocabulary.
func NameEntityMap() map[string]string {
	m := make(map[string]string)
	for _, v := range entity.AllNameTypes() {
		m[v.Ident()] = v.Ident()
	}
	return m
}
