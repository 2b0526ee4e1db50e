package index

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/udoprog/jpv-go/pkg/inflect"
	"github.com/udoprog/jpv-go/pkg/intern"
	"github.com/udoprog/jpv-go/pkg/jmdict"
	"github.com/udoprog/jpv-go/pkg/jpverrors"
	"github.com/udoprog/jpv-go/pkg/kana"
)

// Kind selects which of the three XML schemas a build reads (spec.md
// §4.4, "Input is one of the three dictionary kinds").
type Kind uint8

const (
	KindPhrase Kind = iota
	KindKanji
	KindName
)

// progressEvery is how often (in entries) the build checks its cancel
// token while streaming entries: once every 1000 entries, not before
// every single entry. No progress is reported while streaming; the
// reporter sees only InstrumentStart before and InstrumentEnd after.
const progressEvery = 1000

// stringPollEvery / triePollEvery poll the cancel token once per
// 100k units during the string-interning and trie-insertion phases
// (spec.md §5, "one poll per 100k strings during the string-insertion
// phase and one per 100k during trie insertion").
const stringPollEvery = 100_000
const triePollEvery = 100_000

// Build implements the public contract of C4 (spec.md §4.4):
// build(reporter, cancel_token, name, input) -> packed_buffer. ctx
// plays the role of the cancel token, checked once every progressEvery
// entries and during the string/trie bulk-insertion phases; cancel it
// to abort, matching pkg/ingest's context.WithCancel pattern.
func Build(ctx context.Context, reporter Reporter, name string, kind Kind, r io.Reader) ([]byte, error) {
	if reporter == nil {
		reporter = NoopReporter{}
	}

	w := newWriter(1 << 20)
	headerOffset := w.reserve(headerSize)
	indexHeaderOffset := w.reserve(indexHeaderSize)

	b := &builder{
		w:       w,
		bySeq:   make(map[uint64]uint32),
		byPOS:   make(posSet),
		trie:    newTrieBuilder(),
		in:      intern.New(1 << 16),
	}

	reporter.InstrumentStart("index", "streaming entries", -1)
	count, err := b.stream(ctx, kind, r)
	if err != nil {
		return nil, err
	}
	reporter.InstrumentEnd(count)

	if err := b.finalize(ctx, name, headerOffset, indexHeaderOffset); err != nil {
		return nil, err
	}

	return w.buf, nil
}

const indexHeaderSize = 8 + 4 + 8 + 8 + 8 // Name ref + lookup root + three MapRefs

type builder struct {
	w            *writer
	bySeq        map[uint64]uint32
	byPOS        posSet
	kanjiLiteral []kanjiLiteralEntry
	pending      []pendingEntry
	trie         *trieBuilder
	in           *intern.Interner
}

func (b *builder) stream(ctx context.Context, kind Kind, r io.Reader) (int, error) {
	switch kind {
	case KindPhrase:
		return b.streamPhrases(ctx, r)
	case KindKanji:
		return b.streamKanji(ctx, r)
	case KindName:
		return b.streamNames(ctx, r)
	default:
		return 0, jpverrors.New(jpverrors.Parse, "unknown dictionary kind")
	}
}

func (b *builder) checkCancel(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return jpverrors.ErrCancelled
	default:
		return nil
	}
}

func (b *builder) streamPhrases(ctx context.Context, r io.Reader) (int, error) {
	p := jmdict.NewParser(r)
	count := 0
	for {
		if count%progressEvery == 0 {
			if err := b.checkCancel(ctx); err != nil {
				return count, err
			}
		}

		entry, err := p.Next()
		if err != nil {
			return count, jpverrors.Wrap(jpverrors.Parse, "reading phrase entry", err)
		}
		if entry == nil {
			return count, nil
		}

		b.addPhraseEntry(*entry)
		count++
	}
}

func (b *builder) addPhraseEntry(e jmdict.Entry) {
	offset := encodeEntry(b.w, e)
	b.bySeq[e.Sequence] = offset

	for _, s := range e.Senses {
		for _, pos := range s.POS {
			b.byPOS.add(pos, offset)
		}
		for _, g := range s.Gloss {
			if g.Type == "expl" {
				continue
			}
			for _, phrase := range analyzeGloss(g.Text) {
				b.push(phrase, Id{Offset: offset, Source: SourcePhrase})
			}
		}
	}

	for _, rd := range e.ReadingElements {
		b.push(rd.Text, Id{Offset: offset, Source: SourcePhrase})
		if folded, changed := kana.FoldFullWidth(rd.Text); changed {
			b.push(folded, Id{Offset: offset, Source: SourcePhrase})
		}
	}
	for _, k := range e.KanjiElements {
		b.push(k.Text, Id{Offset: offset, Source: SourcePhrase})
		if folded, changed := kana.FoldFullWidth(k.Text); changed {
			b.push(folded, Id{Offset: offset, Source: SourcePhrase})
		}
	}

	src := e.ToInflectSource()
	for _, conj := range inflect.Conjugate(src) {
		for forms, fragment := range conj.Forms {
			id := Id{
				Offset:       offset,
				Source:       SourceInflection,
				ReadingIndex: conj.Reading.ReadingIndex,
				KanjiIndex:   conj.Reading.KanjiIndex,
				Forms:        uint64(forms),
			}
			text := fragment.Text()
			reading := fragment.Reading()
			b.push(text, id)
			if reading != text {
				b.push(reading, id)
			}
		}
	}
}

func (b *builder) streamKanji(ctx context.Context, r io.Reader) (int, error) {
	p := jmdict.NewKanjiParser(r)
	count := 0
	for {
		if count%progressEvery == 0 {
			if err := b.checkCancel(ctx); err != nil {
				return count, err
			}
		}

		c, err := p.Next()
		if err != nil {
			return count, jpverrors.Wrap(jpverrors.Parse, "reading kanji entry", err)
		}
		if c == nil {
			return count, nil
		}

		b.addCharacter(*c)
		count++
	}
}

func (b *builder) addCharacter(c jmdict.Character) {
	offset := encodeCharacter(b.w, c)
	b.kanjiLiteral = append(b.kanjiLiteral, kanjiLiteralEntry{literal: c.Literal, offset: offset})
	b.push(c.Literal, Id{Offset: offset, Source: SourceKanjiLiteral})

	for _, rd := range c.Readings {
		switch rd.Type {
		case "ja_kun":
			b.pushKunyomi(rd.Text, offset)
		case "ja_on":
			b.pushOnyomi(rd.Text, offset)
		default:
			b.push(rd.Text, Id{Offset: offset, Source: SourceKanjiOther})
		}
	}

	for _, m := range c.Meanings {
		if m.Lang != "" {
			continue
		}
		for _, phrase := range analyzeGloss(m.Text) {
			b.push(phrase, Id{Offset: offset, Source: SourceKanjiMeaning})
		}
	}
}

// pushKunyomi splits a ja_kun reading on its okurigana dot (e.g.
// "おく.る") into the bare-stem Kunyomi key and the dot-joined
// KunyomiFull key, and adds the romanized / opposite-kana variants of
// the full form (spec.md §4.4 step 3, kanji input; §4.4.3).
func (b *builder) pushKunyomi(text string, offset uint32) {
	stem := text
	if idx := strings.IndexByte(text, '.'); idx >= 0 {
		stem = text[:idx]
	}
	full := strings.ReplaceAll(text, ".", "")

	b.push(stem, Id{Offset: offset, Source: SourceKanjiKunyomi})
	b.push(full, Id{Offset: offset, Source: SourceKanjiKunyomiFull})
	b.push(kana.RomanizeString(full), Id{Offset: offset, Source: SourceKanjiKunyomiFull})
	b.push(kana.OppositeKana(full), Id{Offset: offset, Source: SourceKanjiKunyomiFull})
}

func (b *builder) pushOnyomi(text string, offset uint32) {
	b.push(text, Id{Offset: offset, Source: SourceKanjiOnyomi})
	b.push(kana.RomanizeString(text), Id{Offset: offset, Source: SourceKanjiOnyomi})
	b.push(kana.OppositeKana(text), Id{Offset: offset, Source: SourceKanjiOnyomi})
}

func (b *builder) streamNames(ctx context.Context, r io.Reader) (int, error) {
	p := jmdict.NewNameParser(r)
	count := 0
	for {
		if count%progressEvery == 0 {
			if err := b.checkCancel(ctx); err != nil {
				return count, err
			}
		}

		n, err := p.Next()
		if err != nil {
			return count, jpverrors.Wrap(jpverrors.Parse, "reading name entry", err)
		}
		if n == nil {
			return count, nil
		}

		b.addNameEntry(*n)
		count++
	}
}

func (b *builder) addNameEntry(n jmdict.NameEntry) {
	offset := encodeNameEntry(b.w, n)

	for _, k := range n.Kanji {
		b.push(k, Id{Offset: offset, Source: SourceNameLiteral})
	}
	for _, rd := range n.Readings {
		b.push(rd.Text, Id{Offset: offset, Source: SourceNameKunyomiFull})
		b.push(kana.RomanizeString(rd.Text), Id{Offset: offset, Source: SourceNameKunyomiFull})
		b.push(kana.OppositeKana(rd.Text), Id{Offset: offset, Source: SourceNameKunyomiFull})
	}
}

func (b *builder) push(key string, id Id) {
	if key == "" {
		return
	}
	b.pending = append(b.pending, pendingEntry{key: key, id: id})
}

// finalize performs steps 4-11 of the build algorithm: sort the
// pending vector, intern keys, build the trie in reverse-insertion
// order, embed the shared string buffer, write the auxiliary maps, and
// patch the reserved header slots.
func (b *builder) finalize(ctx context.Context, name string, headerOffset, indexHeaderOffset uint32) error {
	// Step 4: descending lexicographic sort.
	sort.SliceStable(b.pending, func(i, j int) bool {
		return b.pending[i].key > b.pending[j].key
	})

	// Step 5: intern every key up front; the trie's own fragments
	// (post radix-compression substrings of these same keys) land in
	// the same interner during preIntern below and dedupe against it.
	for i, pe := range b.pending {
		if i%stringPollEvery == 0 {
			if err := b.checkCancel(ctx); err != nil {
				return err
			}
		}
		b.in.StoreString(pe.key)
	}

	// Step 7: reverse and insert into the trie builder.
	for i := len(b.pending) - 1; i >= 0; i-- {
		if (len(b.pending)-1-i)%triePollEvery == 0 {
			if err := b.checkCancel(ctx); err != nil {
				return err
			}
		}
		b.trie.Insert(b.pending[i].key, b.pending[i].id)
	}

	// Step 8: finalize the trie — pre-intern every fragment so the
	// later encode pass never grows the interner after it's embedded.
	b.trie.preIntern(b.in)
	b.in.StoreString(name)
	for _, e := range b.kanjiLiteral {
		b.in.StoreString(e.literal)
	}

	internBase := b.w.offset()
	b.w.buf = append(b.w.buf, b.in.Buffer()...)

	trieRoot := b.trie.encode(b.w, b.in, internBase)

	// Step 9: auxiliary maps.
	byPOS := encodePOSMap(b.w, b.byPOS)
	byKanjiLiteral := encodeKanjiLiteralMap(b.w, b.in, internBase, b.kanjiLiteral)
	bySequence := encodeSequenceMap(b.w, b.bySeq)

	nameRef := b.in.StoreString(name)

	// Step 10: write the index header and file header into their
	// reserved slots.
	ih := IndexHeader{
		Name:           intern.Ref{Offset: internBase + nameRef.Offset, Length: nameRef.Length},
		LookupRoot:     trieRoot,
		ByPOS:          byPOS,
		ByKanjiLiteral: byKanjiLiteral,
		BySequence:     bySequence,
	}
	ihBuf := newWriter(indexHeaderSize)
	ih.encode(ihBuf)
	copy(b.w.buf[indexHeaderOffset:indexHeaderOffset+uint32(indexHeaderSize)], ihBuf.buf)

	hdr := Header{Magic: Magic, Version: Version, IndexRef: indexHeaderOffset}
	copy(b.w.buf[headerOffset:headerOffset+headerSize], hdr.encode())

	stored, reused := b.in.Stats()
	log.Info().Int("stored", stored).Int("reused", reused).Str("name", name).Msg("index: string interning complete")

	return nil
}
