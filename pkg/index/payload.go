// Package index implements C4, the index builder: it drives the
// pkg/jmdict XML parsers, invokes pkg/inflect on conjugable entries,
// and assembles a single packed byte buffer (header + interned
// strings + encoded entry bodies + trie + auxiliary maps) that
// pkg/query opens read-only via mmap.
package index

import "github.com/udoprog/jpv-go/pkg/entity"

// SourceKind discriminates the tag half of an Id (spec.md §6, "Id is a
// packed record of (u32 offset, 1-byte tag, tag-dependent payload)").
type SourceKind uint8

const (
	// SourcePhrase: the id's offset points at an encoded phrase Entry.
	SourcePhrase SourceKind = iota
	// SourceKanjiLiteral: offset points at an encoded Character, the
	// key was its literal.
	SourceKanjiLiteral
	// SourceKanjiKunyomi / SourceKanjiKunyomiFull / SourceKanjiOnyomi /
	// SourceKanjiOther: offset points at an encoded Character, the key
	// was one of its readings.
	SourceKanjiKunyomi
	SourceKanjiKunyomiFull
	SourceKanjiOnyomi
	SourceKanjiOther
	// SourceKanjiMeaning: offset points at an encoded Character, the
	// key came from gloss analysis of one of its meanings.
	SourceKanjiMeaning
	// SourceNameLiteral / SourceNameKunyomiFull: offset points at an
	// encoded NameEntry.
	SourceNameLiteral
	SourceNameKunyomiFull
	// SourceInflection: offset points at an encoded phrase Entry; the
	// key was a generated inflected surface form.
	SourceInflection
)

// Id is the payload value stored alongside every trie key (the
// by_pos/by_sequence/by_kanji_literal maps store bare u32 offsets
// instead): a byte offset into the packed buffer plus a source tag,
// with inflection ids additionally
// carrying the (reading-index, kanji-index, form-set) descriptor that
// produced the surface form.
type Id struct {
	Offset uint32
	Source SourceKind

	// Only meaningful when Source == SourceInflection.
	ReadingIndex uint8
	KanjiIndex   uint8 // 255 (inflect.NoKanji) means "no kanji form"
	Forms        uint64
}

// IsInflection reports whether this id's match came from a generated
// conjugated surface form rather than a dictionary-authored key
// (spec.md §4.5.1, "inflection multiplier").
func (id Id) IsInflection() bool { return id.Source == SourceInflection }

// pendingEntry is one (key, id) pair queued before the final
// descending sort (spec.md §4.4 step 4).
type pendingEntry struct {
	key string
	id  Id
}

// posSet is the accumulator for by_pos: part-of-speech -> set of
// distinct offsets (unordered; encodePOSMap sorts them).
type posSet map[entity.PartOfSpeech]map[uint32]struct{}

func (p posSet) add(pos entity.PartOfSpeech, offset uint32) {
	set, ok := p[pos]
	if !ok {
		set = make(map[uint32]struct{})
		p[pos] = set
	}
	set[offset] = struct{}{}
}
