package index

import (
	"github.com/udoprog/jpv-go/pkg/entity"
	"github.com/udoprog/jpv-go/pkg/jmdict"
)

// EntryCategory is which of the three decoded shapes an offset holds,
// derived from a SourceKind (spec.md §4.5, "entry_at(sub-index, id) ->
// Entry: load from offset, decode as phrase, kanji, or name per the
// id's source tag").
type EntryCategory uint8

const (
	CategoryPhrase EntryCategory = iota
	CategoryKanji
	CategoryName
)

// Category maps a SourceKind to the decoded shape stored at its offset.
func (s SourceKind) Category() EntryCategory {
	switch s {
	case SourcePhrase, SourceInflection:
		return CategoryPhrase
	case SourceKanjiLiteral, SourceKanjiKunyomi, SourceKanjiKunyomiFull, SourceKanjiOnyomi, SourceKanjiOther, SourceKanjiMeaning:
		return CategoryKanji
	case SourceNameLiteral, SourceNameKunyomiFull:
		return CategoryName
	default:
		return CategoryPhrase
	}
}

// encodeEntry appends a phrase Entry's packed body to w, returning its
// offset.
func encodeEntry(w *writer, e jmdict.Entry) uint32 {
	offset := w.offset()
	w.putU64(e.Sequence)

	w.putUvarint(uint64(len(e.KanjiElements)))
	for _, k := range e.KanjiElements {
		w.putString(k.Text)
		w.putUvarint(uint64(len(k.Priority)))
		for _, p := range k.Priority {
			encodePriority(w, p)
		}
		putU8Slice(w, k.Info)
	}

	w.putUvarint(uint64(len(e.ReadingElements)))
	for _, r := range e.ReadingElements {
		w.putString(r.Text)
		w.putBool(r.NoKanji)
		w.putStrings(r.RestrictedToKanji)
		w.putUvarint(uint64(len(r.Priority)))
		for _, p := range r.Priority {
			encodePriority(w, p)
		}
		putU8Slice(w, r.Info)
	}

	w.putUvarint(uint64(len(e.Senses)))
	for _, s := range e.Senses {
		w.putStrings(s.XRef)
		w.putUvarint(uint64(len(s.Gloss)))
		for _, g := range s.Gloss {
			w.putString(g.Text)
			w.putString(g.Type)
			w.putString(g.Lang)
		}
		w.putString(s.Info)
		w.putStrings(s.StagK)
		w.putStrings(s.StagR)
		w.putUvarint(uint64(len(s.Source)))
		for _, src := range s.Source {
			w.putString(src.Text)
			w.putString(src.Lang)
			w.putBool(src.Partial)
			w.putBool(src.Waseigo)
		}
		w.putStrings(s.Antonym)
		w.putUvarint(uint64(len(s.Examples)))
		for _, ex := range s.Examples {
			w.putString(ex.Source.Text)
			w.putString(ex.Source.Kind)
			w.putString(ex.Text)
			w.putUvarint(uint64(len(ex.Sentences)))
			for _, sent := range ex.Sentences {
				w.putString(sent.Text)
				w.putString(sent.Lang)
			}
		}
		putU8Slice(w, s.POS)
		putU8Slice(w, s.Misc)
		putU8Slice(w, s.Dialect)
		putU8Slice(w, s.Field)
	}

	return offset
}

func decodeEntry(buf []byte, offset uint32) (jmdict.Entry, error) {
	r := newReader(buf, int(offset))
	var e jmdict.Entry

	seq, err := r.u64()
	if err != nil {
		return e, err
	}
	e.Sequence = seq

	kCount, err := r.uvarint()
	if err != nil {
		return e, err
	}
	e.KanjiElements = make([]jmdict.KanjiElement, kCount)
	for i := range e.KanjiElements {
		text, err := r.string()
		if err != nil {
			return e, err
		}
		pCount, err := r.uvarint()
		if err != nil {
			return e, err
		}
		priorities := make([]jmdict.Priority, pCount)
		for j := range priorities {
			p, err := decodePriority(r)
			if err != nil {
				return e, err
			}
			priorities[j] = p
		}
		info, err := getU8SliceKanjiInfo(r)
		if err != nil {
			return e, err
		}
		e.KanjiElements[i] = jmdict.KanjiElement{Text: text, Priority: priorities, Info: info}
	}

	rCount, err := r.uvarint()
	if err != nil {
		return e, err
	}
	e.ReadingElements = make([]jmdict.ReadingElement, rCount)
	for i := range e.ReadingElements {
		text, err := r.string()
		if err != nil {
			return e, err
		}
		noKanji, err := r.boolean()
		if err != nil {
			return e, err
		}
		restr, err := r.strings()
		if err != nil {
			return e, err
		}
		pCount, err := r.uvarint()
		if err != nil {
			return e, err
		}
		priorities := make([]jmdict.Priority, pCount)
		for j := range priorities {
			p, err := decodePriority(r)
			if err != nil {
				return e, err
			}
			priorities[j] = p
		}
		info, err := getU8SliceReadingInfo(r)
		if err != nil {
			return e, err
		}
		e.ReadingElements[i] = jmdict.ReadingElement{
			Text: text, NoKanji: noKanji, RestrictedToKanji: restr,
			Priority: priorities, Info: info,
		}
	}

	sCount, err := r.uvarint()
	if err != nil {
		return e, err
	}
	e.Senses = make([]jmdict.Sense, sCount)
	for i := range e.Senses {
		s, err := decodeSense(r)
		if err != nil {
			return e, err
		}
		e.Senses[i] = s
	}

	return e, nil
}

func decodeSense(r *reader) (jmdict.Sense, error) {
	var s jmdict.Sense

	xref, err := r.strings()
	if err != nil {
		return s, err
	}
	s.XRef = xref

	gCount, err := r.uvarint()
	if err != nil {
		return s, err
	}
	s.Gloss = make([]jmdict.Glossary, gCount)
	for i := range s.Gloss {
		text, err := r.string()
		if err != nil {
			return s, err
		}
		typ, err := r.string()
		if err != nil {
			return s, err
		}
		lang, err := r.string()
		if err != nil {
			return s, err
		}
		s.Gloss[i] = jmdict.Glossary{Text: text, Type: typ, Lang: lang}
	}

	info, err := r.string()
	if err != nil {
		return s, err
	}
	s.Info = info

	stagK, err := r.strings()
	if err != nil {
		return s, err
	}
	s.StagK = stagK

	stagR, err := r.strings()
	if err != nil {
		return s, err
	}
	s.StagR = stagR

	srcCount, err := r.uvarint()
	if err != nil {
		return s, err
	}
	s.Source = make([]jmdict.SourceLanguage, srcCount)
	for i := range s.Source {
		text, err := r.string()
		if err != nil {
			return s, err
		}
		lang, err := r.string()
		if err != nil {
			return s, err
		}
		partial, err := r.boolean()
		if err != nil {
			return s, err
		}
		waseigo, err := r.boolean()
		if err != nil {
			return s, err
		}
		s.Source[i] = jmdict.SourceLanguage{Text: text, Lang: lang, Partial: partial, Waseigo: waseigo}
	}

	antonym, err := r.strings()
	if err != nil {
		return s, err
	}
	s.Antonym = antonym

	exCount, err := r.uvarint()
	if err != nil {
		return s, err
	}
	s.Examples = make([]jmdict.Example, exCount)
	for i := range s.Examples {
		srcText, err := r.string()
		if err != nil {
			return s, err
		}
		srcKind, err := r.string()
		if err != nil {
			return s, err
		}
		text, err := r.string()
		if err != nil {
			return s, err
		}
		sentCount, err := r.uvarint()
		if err != nil {
			return s, err
		}
		sentences := make([]jmdict.ExampleSentence, sentCount)
		for j := range sentences {
			t, err := r.string()
			if err != nil {
				return s, err
			}
			lang, err := r.string()
			if err != nil {
				return s, err
			}
			sentences[j] = jmdict.ExampleSentence{Text: t, Lang: lang}
		}
		s.Examples[i] = jmdict.Example{
			Source:    jmdict.ExampleSource{Text: srcText, Kind: srcKind},
			Text:      text,
			Sentences: sentences,
		}
	}

	pos, err := getU8SlicePOS(r)
	if err != nil {
		return s, err
	}
	s.POS = pos

	misc, err := getU8SliceMisc(r)
	if err != nil {
		return s, err
	}
	s.Misc = misc

	dialect, err := getU8SliceDialect(r)
	if err != nil {
		return s, err
	}
	s.Dialect = dialect

	field, err := getU8SliceField(r)
	if err != nil {
		return s, err
	}
	s.Field = field

	return s, nil
}

func encodePriority(w *writer, p jmdict.Priority) {
	w.putString(p.Corpus)
	w.putU8(p.Rank)
	w.putBool(p.NF)
}

func decodePriority(r *reader) (jmdict.Priority, error) {
	corpus, err := r.string()
	if err != nil {
		return jmdict.Priority{}, err
	}
	rank, err := r.u8()
	if err != nil {
		return jmdict.Priority{}, err
	}
	nf, err := r.boolean()
	if err != nil {
		return jmdict.Priority{}, err
	}
	return jmdict.Priority{Corpus: corpus, Rank: rank, NF: nf}, nil
}

// putU8Slice writes any uint8-backed enum slice as a small bitset-like
// length-prefixed byte sequence (spec.md §6, "small bitsets").
func putU8Slice[T ~uint8](w *writer, vs []T) {
	w.putUvarint(uint64(len(vs)))
	for _, v := range vs {
		w.putU8(uint8(v))
	}
}

func getU8Slice[T ~uint8](r *reader) ([]T, error) {
	n, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	out := make([]T, n)
	for i := range out {
		v, err := r.u8()
		if err != nil {
			return nil, err
		}
		out[i] = T(v)
	}
	return out, nil
}

func getU8SlicePOS(r *reader) ([]entity.PartOfSpeech, error) { return getU8Slice[entity.PartOfSpeech](r) }
func getU8SliceMisc(r *reader) ([]entity.Miscellaneous, error) {
	return getU8Slice[entity.Miscellaneous](r)
}
func getU8SliceDialect(r *reader) ([]entity.Dialect, error) { return getU8Slice[entity.Dialect](r) }
func getU8SliceField(r *reader) ([]entity.Field, error)     { return getU8Slice[entity.Field](r) }
func getU8SliceKanjiInfo(r *reader) ([]entity.KanjiInfo, error) {
	return getU8Slice[entity.KanjiInfo](r)
}
func getU8SliceReadingInfo(r *reader) ([]entity.ReadingInfo, error) {
	return getU8Slice[entity.ReadingInfo](r)
}

// encodeCharacter appends a kanjidic2 Character's packed body to w.
func encodeCharacter(w *writer, c jmdict.Character) uint32 {
	offset := w.offset()
	w.putString(c.Literal)

	w.putUvarint(uint64(len(c.CodePoints)))
	for _, cp := range c.CodePoints {
		w.putString(cp.Text)
		w.putString(cp.Type)
	}

	w.putUvarint(uint64(len(c.Radicals)))
	for _, rad := range c.Radicals {
		w.putString(rad.Text)
		w.putString(rad.Type)
	}

	w.putBool(c.Misc.HasGrade)
	w.putUvarint(uint64(c.Misc.Grade))
	w.putUvarint(uint64(len(c.Misc.StrokeCounts)))
	for _, sc := range c.Misc.StrokeCounts {
		w.putUvarint(uint64(sc))
	}
	w.putBool(c.Misc.Variant != nil)
	if c.Misc.Variant != nil {
		w.putString(c.Misc.Variant.Text)
		w.putString(c.Misc.Variant.Type)
	}
	w.putBool(c.Misc.HasFreq)
	w.putUvarint(uint64(c.Misc.Freq))
	w.putBool(c.Misc.HasJLPT)
	w.putUvarint(uint64(c.Misc.JLPT))
	w.putStrings(c.Misc.RadicalNames)

	w.putUvarint(uint64(len(c.DictionaryReferences)))
	for _, d := range c.DictionaryReferences {
		w.putString(d.Text)
		w.putString(d.Type)
		w.putString(d.Volume)
		w.putString(d.Page)
	}

	w.putUvarint(uint64(len(c.QueryCodes)))
	for _, q := range c.QueryCodes {
		w.putString(q.Text)
		w.putString(q.Type)
		w.putString(q.SkipMisclass)
	}

	w.putUvarint(uint64(len(c.Readings)))
	for _, rd := range c.Readings {
		w.putString(rd.Text)
		w.putString(rd.Type)
	}

	w.putUvarint(uint64(len(c.Meanings)))
	for _, m := range c.Meanings {
		w.putString(m.Text)
		w.putString(m.Lang)
	}

	w.putStrings(c.Nanori)

	return offset
}

func decodeCharacter(buf []byte, offset uint32) (jmdict.Character, error) {
	r := newReader(buf, int(offset))
	var c jmdict.Character

	literal, err := r.string()
	if err != nil {
		return c, err
	}
	c.Literal = literal

	cpCount, err := r.uvarint()
	if err != nil {
		return c, err
	}
	c.CodePoints = make([]jmdict.CodePoint, cpCount)
	for i := range c.CodePoints {
		text, err := r.string()
		if err != nil {
			return c, err
		}
		typ, err := r.string()
		if err != nil {
			return c, err
		}
		c.CodePoints[i] = jmdict.CodePoint{Text: text, Type: typ}
	}

	radCount, err := r.uvarint()
	if err != nil {
		return c, err
	}
	c.Radicals = make([]jmdict.Radical, radCount)
	for i := range c.Radicals {
		text, err := r.string()
		if err != nil {
			return c, err
		}
		typ, err := r.string()
		if err != nil {
			return c, err
		}
		c.Radicals[i] = jmdict.Radical{Text: text, Type: typ}
	}

	hasGrade, err := r.boolean()
	if err != nil {
		return c, err
	}
	grade, err := r.uvarint()
	if err != nil {
		return c, err
	}
	scCount, err := r.uvarint()
	if err != nil {
		return c, err
	}
	strokeCounts := make([]int, scCount)
	for i := range strokeCounts {
		sc, err := r.uvarint()
		if err != nil {
			return c, err
		}
		strokeCounts[i] = int(sc)
	}
	hasVariant, err := r.boolean()
	if err != nil {
		return c, err
	}
	var variant *jmdict.Variant
	if hasVariant {
		text, err := r.string()
		if err != nil {
			return c, err
		}
		typ, err := r.string()
		if err != nil {
			return c, err
		}
		variant = &jmdict.Variant{Text: text, Type: typ}
	}
	hasFreq, err := r.boolean()
	if err != nil {
		return c, err
	}
	freq, err := r.uvarint()
	if err != nil {
		return c, err
	}
	hasJLPT, err := r.boolean()
	if err != nil {
		return c, err
	}
	jlpt, err := r.uvarint()
	if err != nil {
		return c, err
	}
	radicalNames, err := r.strings()
	if err != nil {
		return c, err
	}
	c.Misc = jmdict.Misc{
		Grade: int(grade), HasGrade: hasGrade,
		StrokeCounts: strokeCounts, Variant: variant,
		Freq: int(freq), HasFreq: hasFreq,
		JLPT: int(jlpt), HasJLPT: hasJLPT,
		RadicalNames: radicalNames,
	}

	drCount, err := r.uvarint()
	if err != nil {
		return c, err
	}
	c.DictionaryReferences = make([]jmdict.DictionaryReference, drCount)
	for i := range c.DictionaryReferences {
		text, err := r.string()
		if err != nil {
			return c, err
		}
		typ, err := r.string()
		if err != nil {
			return c, err
		}
		volume, err := r.string()
		if err != nil {
			return c, err
		}
		page, err := r.string()
		if err != nil {
			return c, err
		}
		c.DictionaryReferences[i] = jmdict.DictionaryReference{Text: text, Type: typ, Volume: volume, Page: page}
	}

	qcCount, err := r.uvarint()
	if err != nil {
		return c, err
	}
	c.QueryCodes = make([]jmdict.QueryCode, qcCount)
	for i := range c.QueryCodes {
		text, err := r.string()
		if err != nil {
			return c, err
		}
		typ, err := r.string()
		if err != nil {
			return c, err
		}
		misclass, err := r.string()
		if err != nil {
			return c, err
		}
		c.QueryCodes[i] = jmdict.QueryCode{Text: text, Type: typ, SkipMisclass: misclass}
	}

	rdCount, err := r.uvarint()
	if err != nil {
		return c, err
	}
	c.Readings = make([]jmdict.Reading, rdCount)
	for i := range c.Readings {
		text, err := r.string()
		if err != nil {
			return c, err
		}
		typ, err := r.string()
		if err != nil {
			return c, err
		}
		c.Readings[i] = jmdict.Reading{Text: text, Type: typ}
	}

	mCount, err := r.uvarint()
	if err != nil {
		return c, err
	}
	c.Meanings = make([]jmdict.Meaning, mCount)
	for i := range c.Meanings {
		text, err := r.string()
		if err != nil {
			return c, err
		}
		lang, err := r.string()
		if err != nil {
			return c, err
		}
		c.Meanings[i] = jmdict.Meaning{Text: text, Lang: lang}
	}

	nanori, err := r.strings()
	if err != nil {
		return c, err
	}
	c.Nanori = nanori

	return c, nil
}

// encodeNameEntry appends a JMnedict NameEntry's packed body to w.
func encodeNameEntry(w *writer, n jmdict.NameEntry) uint32 {
	offset := w.offset()
	w.putU64(n.Sequence)
	w.putStrings(n.Kanji)

	w.putUvarint(uint64(len(n.Readings)))
	for _, rd := range n.Readings {
		w.putString(rd.Text)
		w.putString(rd.Priority)
	}

	putU8Slice(w, n.NameTypes)

	w.putUvarint(uint64(len(n.Translations)))
	for _, t := range n.Translations {
		w.putString(t.Text)
		w.putString(t.Lang)
	}

	return offset
}

func decodeNameEntry(buf []byte, offset uint32) (jmdict.NameEntry, error) {
	r := newReader(buf, int(offset))
	var n jmdict.NameEntry

	seq, err := r.u64()
	if err != nil {
		return n, err
	}
	n.Sequence = seq

	kanji, err := r.strings()
	if err != nil {
		return n, err
	}
	n.Kanji = kanji

	rdCount, err := r.uvarint()
	if err != nil {
		return n, err
	}
	n.Readings = make([]jmdict.NameReading, rdCount)
	for i := range n.Readings {
		text, err := r.string()
		if err != nil {
			return n, err
		}
		prio, err := r.string()
		if err != nil {
			return n, err
		}
		n.Readings[i] = jmdict.NameReading{Text: text, Priority: prio}
	}

	nameTypes, err := getU8Slice[entity.NameType](r)
	if err != nil {
		return n, err
	}
	n.NameTypes = nameTypes

	tCount, err := r.uvarint()
	if err != nil {
		return n, err
	}
	n.Translations = make([]jmdict.Translation, tCount)
	for i := range n.Translations {
		text, err := r.string()
		if err != nil {
			return n, err
		}
		lang, err := r.string()
		if err != nil {
			return n, err
		}
		n.Translations[i] = jmdict.Translation{Text: text, Lang: lang}
	}

	return n, nil
}
