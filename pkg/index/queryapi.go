package index

import (
	"github.com/udoprog/jpv-go/pkg/entity"
	"github.com/udoprog/jpv-go/pkg/jmdict"
)

// This file is the read-side facade pkg/query is built against. The
// packed-buffer grammar (spec.md §6, "a private contract between
// builder and query engine") stays unexported within this package;
// only the handful of operations a zero-copy reader actually needs are
// exposed here, so the wire format itself can still change without
// widening the public surface.

// DecodeHeader reads and validates the fixed file header at offset 0
// (spec.md §4.5, "open... reject on magic mismatch or version
// mismatch").
func DecodeHeader(buf []byte) (Header, error) { return decodeHeader(buf) }

// DecodeIndexHeader reads the IndexHeader record at offset.
func DecodeIndexHeader(buf []byte, offset uint32) (IndexHeader, error) {
	return decodeIndexHeader(buf, offset)
}

// StringAt reads an interned string directly out of buf
// at the given absolute offset/length (the query-time counterpart of
// intern.Interner.Bytes, over a buffer the interner never owned).
func StringAt(buf []byte, offset, length uint32) string {
	return string(buf[offset : offset+length])
}

// TrieNode is a read-only, lazily-decoded view of one compact-trie
// node (spec.md §6, the trie's on-disk node layout).
type TrieNode = trieNodeView

// ReadTrieNode decodes the node starting at offset.
func ReadTrieNode(buf []byte, offset uint32) (TrieNode, error) { return readTrieNode(buf, offset) }

// Fragment is this node's shared key fragment.
func (v trieNodeView) Fragment() []byte { return v.fragment }

// Values is the list of ids stored directly at this node.
func (v trieNodeView) Values() []Id { return v.values }

// ChildAt returns the i'th child's first byte and node offset.
func (v trieNodeView) ChildAt(i int) (byte, uint32) {
	c := v.children[i]
	return c.first, c.offset
}

// NumChildren is the number of children this node has.
func (v trieNodeView) NumChildren() int { return len(v.children) }

// Child looks up the child whose fragment starts with b, if any.
func (v trieNodeView) Child(b byte) (uint32, bool) { return v.child(b) }

// WalkTrie descends the trie rooted at root along key, returning the
// node reached after consuming the whole key.
func WalkTrie(buf []byte, root uint32, key []byte) (TrieNode, bool, error) {
	return walkTrie(buf, root, key)
}

// CollectValues gathers every value reachable under node, depth-first
// (spec.md §4.5, "prefix(prefix) -> list of ids: trie values under
// prefix").
func CollectValues(buf []byte, node TrieNode) ([]Id, error) {
	var out []Id
	if err := collect(buf, node, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LookupSequenceMap looks seq up in the by_sequence auxiliary map.
func LookupSequenceMap(buf []byte, m MapRef, seq uint64) (uint32, bool) {
	return lookupSequenceMap(buf, m, seq)
}

// LookupKanjiLiteralMap looks literal up in the by_kanji_literal map.
func LookupKanjiLiteralMap(buf []byte, m MapRef, literal string) (uint32, bool) {
	return lookupKanjiLiteralMap(buf, m, literal)
}

// LookupPOSMap looks pos up in the by_pos map, returning its sorted
// offset list.
func LookupPOSMap(buf []byte, m MapRef, pos entity.PartOfSpeech) ([]uint32, bool) {
	return lookupPOSMap(buf, m, pos)
}

// DecodeEntry decodes a phrase Entry body at offset.
func DecodeEntry(buf []byte, offset uint32) (jmdict.Entry, error) {
	return decodeEntry(buf, offset)
}

// DecodeCharacter decodes a kanjidic2 Character body at offset.
func DecodeCharacter(buf []byte, offset uint32) (jmdict.Character, error) {
	return decodeCharacter(buf, offset)
}

// DecodeNameEntry decodes a JMnedict NameEntry body at offset.
func DecodeNameEntry(buf []byte, offset uint32) (jmdict.NameEntry, error) {
	return decodeNameEntry(buf, offset)
}
