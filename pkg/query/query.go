// Package query implements C5, the query engine: it opens a packed
// buffer produced by pkg/index (directly, or zero-copy over a
// memory-mapped file) and exposes the lookup, search and analyze
// operations over it. Grounded on
// original_source/crates/jpv-lib/src/database/mod.rs's Database, whose
// read side is kept deliberately thin: every decode concern lives in
// pkg/index, this package only walks refs and accumulates results.
package query

import (
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	mmap "github.com/edsrzf/mmap-go"

	"github.com/udoprog/jpv-go/pkg/entity"
	"github.com/udoprog/jpv-go/pkg/index"
	"github.com/udoprog/jpv-go/pkg/jmdict"
	"github.com/udoprog/jpv-go/pkg/jpverrors"
)

const (
	wildcardASCII     = '*'
	wildcardFullWidth = '＊'
)

// SubIndex is one opened, named packed buffer (spec.md §4.5, "open").
// The zero value is not usable; construct via OpenBuffer or OpenFile.
type SubIndex struct {
	Name string

	data   []byte
	mm     mmap.MMap
	file   *os.File
	header index.IndexHeader
}

// OpenBuffer opens a sub-index directly over an already-loaded byte
// slice (tests, or buffers assembled in-process by pkg/index.Build).
func OpenBuffer(name string, data []byte) (*SubIndex, error) {
	hdr, err := index.DecodeHeader(data)
	if err != nil {
		return nil, err
	}
	ih, err := index.DecodeIndexHeader(data, hdr.IndexRef)
	if err != nil {
		return nil, err
	}
	return &SubIndex{Name: name, data: data, header: ih}, nil
}

// OpenFile memory-maps the packed buffer at path read-only (spec.md
// §9, "ensure the on-disk layout permits zero-copy reads from a
// memory-mapped buffer").
func OpenFile(name, path string) (*SubIndex, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	si, err := OpenBuffer(name, []byte(m))
	if err != nil {
		m.Unmap()
		f.Close()
		return nil, err
	}
	si.mm = m
	si.file = f
	return si, nil
}

// Close releases the mapping and underlying file, if any (a SubIndex
// opened via OpenBuffer has nothing to release).
func (s *SubIndex) Close() error {
	if s.mm != nil {
		if err := s.mm.Unmap(); err != nil {
			return err
		}
	}
	if s.file != nil {
		return s.file.Close()
	}
	return nil
}

// Entry is the decoded, tagged-union payload at one id (spec.md §9,
// "Polymorphic entry payloads ... represent as a tagged variant at the
// query API boundary").
type Entry struct {
	Category index.EntryCategory
	Phrase   *jmdict.Entry
	Kanji    *jmdict.Character
	Name     *jmdict.NameEntry
}

// EntryAt decodes the entry id's offset refers to, dispatching on its
// source tag's category (spec.md §4.5, "entry_at").
func (s *SubIndex) EntryAt(id index.Id) (Entry, error) {
	if id.Offset >= uint32(len(s.data)) {
		return Entry{}, jpverrors.New(jpverrors.MissingEntry, "payload offset outside buffer")
	}
	switch id.Source.Category() {
	case index.CategoryKanji:
		c, err := index.DecodeCharacter(s.data, id.Offset)
		if err != nil {
			return Entry{}, jpverrors.Wrap(jpverrors.Buffer, "decode kanji entry", err)
		}
		return Entry{Category: index.CategoryKanji, Kanji: &c}, nil
	case index.CategoryName:
		n, err := index.DecodeNameEntry(s.data, id.Offset)
		if err != nil {
			return Entry{}, jpverrors.Wrap(jpverrors.Buffer, "decode name entry", err)
		}
		return Entry{Category: index.CategoryName, Name: &n}, nil
	default:
		e, err := index.DecodeEntry(s.data, id.Offset)
		if err != nil {
			return Entry{}, jpverrors.Wrap(jpverrors.Buffer, "decode phrase entry", err)
		}
		return Entry{Category: index.CategoryPhrase, Phrase: &e}, nil
	}
}

// ExactLookup walks the trie for key and returns exactly the values
// stored at that node (no prefix/wildcard expansion), used both by
// Lookup's non-wildcard branch and by Analyze, which needs an exact
// match on each shrinking substring (spec.md §4.5, Analyze step 3).
func (s *SubIndex) ExactLookup(key string) ([]index.Id, error) {
	if key == "" {
		return nil, nil
	}
	node, found, err := index.WalkTrie(s.data, s.header.LookupRoot, []byte(key))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return node.Values(), nil
}

// Prefix returns every id stored under the trie subtree reached by
// prefix (spec.md §4.5, "prefix(prefix) -> list of ids").
func (s *SubIndex) Prefix(prefix string) ([]index.Id, error) {
	node, found, err := index.WalkTrie(s.data, s.header.LookupRoot, []byte(prefix))
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return index.CollectValues(s.data, node)
}

// Lookup implements spec.md §4.5's lookup(query): wildcard-aware exact
// or prefix/suffix trie search.
func (s *SubIndex) Lookup(query string) ([]index.Id, error) {
	if query == "" {
		return nil, nil
	}
	if prefix, suffix, ok := splitWildcard(query); ok {
		if suffix == "" {
			return s.Prefix(prefix)
		}
		node, found, err := index.WalkTrie(s.data, s.header.LookupRoot, []byte(prefix))
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, nil
		}
		var out []index.Id
		if err := collectWithSuffix(s.data, node, nil, suffix, &out); err != nil {
			return nil, err
		}
		return out, nil
	}
	return s.ExactLookup(query)
}

// ByPOS intersects the offset sets of every requested part of speech
// (AND semantics); an empty posSet produces no results (spec.md §4.5,
// "by_pos").
func (s *SubIndex) ByPOS(posSet []entity.PartOfSpeech) []index.Id {
	if len(posSet) == 0 {
		return nil
	}
	sets := make([][]uint32, 0, len(posSet))
	for _, p := range posSet {
		offs, ok := index.LookupPOSMap(s.data, s.header.ByPOS, p)
		if !ok {
			return nil
		}
		sets = append(sets, offs)
	}
	sort.Slice(sets, func(i, j int) bool { return len(sets[i]) < len(sets[j]) })

	present := make(map[uint32]struct{}, len(sets[0]))
	for _, o := range sets[0] {
		present[o] = struct{}{}
	}
	for _, set := range sets[1:] {
		next := make(map[uint32]struct{})
		for _, o := range set {
			if _, ok := present[o]; ok {
				next[o] = struct{}{}
			}
		}
		present = next
	}

	out := make([]index.Id, 0, len(present))
	for off := range present {
		out = append(out, index.Id{Offset: off, Source: index.SourcePhrase})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

// LiteralToKanji consults by_kanji_literal (spec.md §4.5).
func (s *SubIndex) LiteralToKanji(literal string) (*jmdict.Character, bool, error) {
	off, ok := index.LookupKanjiLiteralMap(s.data, s.header.ByKanjiLiteral, literal)
	if !ok {
		return nil, false, nil
	}
	c, err := index.DecodeCharacter(s.data, off)
	if err != nil {
		return nil, false, err
	}
	return &c, true, nil
}

// BySequence consults by_sequence (spec.md §4.5, "lookup_sequence").
func (s *SubIndex) BySequence(seq uint64) (index.Id, bool) {
	off, ok := index.LookupSequenceMap(s.data, s.header.BySequence, seq)
	if !ok {
		return index.Id{}, false
	}
	return index.Id{Offset: off, Source: index.SourcePhrase}, true
}

// collectWithSuffix is collect, but descends tracking the accumulated
// key so it can reject branches whose full key doesn't end with
// suffix (spec.md §4.5, lookup's wildcard case: "iterate trie entries
// under the prefix and accept only keys ending with the suffix").
func collectWithSuffix(buf []byte, node index.TrieNode, acc []byte, suffix string, out *[]index.Id) error {
	frag := node.Fragment()
	next := make([]byte, 0, len(acc)+len(frag))
	next = append(next, acc...)
	next = append(next, frag...)

	if len(node.Values()) > 0 && strings.HasSuffix(string(next), suffix) {
		*out = append(*out, node.Values()...)
	}
	for i := 0; i < node.NumChildren(); i++ {
		_, childOffset := node.ChildAt(i)
		child, err := index.ReadTrieNode(buf, childOffset)
		if err != nil {
			return err
		}
		if err := collectWithSuffix(buf, child, next, suffix, out); err != nil {
			return err
		}
	}
	return nil
}

// splitWildcard finds the first wildcard character (spec.md §4.5,
// "'*' or full-width '＊'") and splits the query around it.
func splitWildcard(q string) (prefix, suffix string, ok bool) {
	idx := strings.IndexFunc(q, func(r rune) bool {
		return r == wildcardASCII || r == wildcardFullWidth
	})
	if idx < 0 {
		return "", "", false
	}
	_, size := utf8.DecodeRuneInString(q[idx:])
	return q[:idx], q[idx+size:], true
}

// Database aggregates every enabled sub-index a Config selected, and
// is the handle every lookup/search/analyze operation above the
// per-sub-index level is called on (spec.md §6, "Configuration...
// the database opener skips disabled sub-indices and records their
// names in a 'disabled' list returned to the caller").
type Database struct {
	subs     []*SubIndex
	Disabled []string
}

// NewDatabase wraps already-opened sub-indices into a Database.
func NewDatabase(subs []*SubIndex, disabled []string) *Database {
	return &Database{subs: subs, Disabled: disabled}
}

// SubIndices returns the underlying sub-indices, in load order.
func (d *Database) SubIndices() []*SubIndex { return d.subs }

// Close closes every sub-index, returning the first error seen.
func (d *Database) Close() error {
	var first error
	for _, s := range d.subs {
		if err := s.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ResultID pairs a payload id with the sub-index it was found in.
type ResultID struct {
	Sub *SubIndex
	ID  index.Id
}

// LookupSequence consults by_sequence in every loaded sub-index
// (spec.md §4.5, "lookup_sequence").
func (d *Database) LookupSequence(seq uint64) []ResultID {
	var out []ResultID
	for _, s := range d.subs {
		if id, ok := s.BySequence(seq); ok {
			out = append(out, ResultID{Sub: s, ID: id})
		}
	}
	return out
}

// SequenceToEntry returns the first phrase entry across sub-indices
// whose sequence matches seq (spec.md §4.5, "sequence_to_entry").
func (d *Database) SequenceToEntry(seq uint64) (*jmdict.Entry, error) {
	for _, s := range d.subs {
		off, ok := index.LookupSequenceMap(s.data, s.header.BySequence, seq)
		if !ok {
			continue
		}
		e, err := index.DecodeEntry(s.data, off)
		if err != nil {
			return nil, jpverrors.Wrap(jpverrors.Buffer, "decode phrase entry", err)
		}
		return &e, nil
	}
	return nil, nil
}

// LiteralToKanji returns the first matching character entry across
// sub-indices (spec.md §4.5, "literal_to_kanji").
func (d *Database) LiteralToKanji(literal string) (*jmdict.Character, error) {
	for _, s := range d.subs {
		c, ok, err := s.LiteralToKanji(literal)
		if err != nil {
			return nil, err
		}
		if ok {
			return c, nil
		}
	}
	return nil, nil
}

// ByPOS fans ByPOS out across every sub-index.
func (d *Database) ByPOS(posSet []entity.PartOfSpeech) []ResultID {
	var out []ResultID
	for _, s := range d.subs {
		for _, id := range s.ByPOS(posSet) {
			out = append(out, ResultID{Sub: s, ID: id})
		}
	}
	return out
}

// Prefix fans Prefix out across every sub-index.
func (d *Database) Prefix(prefix string) ([]ResultID, error) {
	var out []ResultID
	for _, s := range d.subs {
		ids, err := s.Prefix(prefix)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			out = append(out, ResultID{Sub: s, ID: id})
		}
	}
	return out, nil
}

// Lookup fans Lookup out across every sub-index.
func (d *Database) Lookup(query string) ([]ResultID, error) {
	var out []ResultID
	for _, s := range d.subs {
		ids, err := s.Lookup(query)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			out = append(out, ResultID{Sub: s, ID: id})
		}
	}
	return out, nil
}

// EntryAt decodes a ResultID's payload.
func (d *Database) EntryAt(r ResultID) (Entry, error) { return r.Sub.EntryAt(r.ID) }
