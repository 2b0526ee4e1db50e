package index

import (
	"sort"

	"github.com/udoprog/jpv-go/pkg/intern"
	"github.com/udoprog/jpv-go/pkg/jpverrors"
)

// trieNode is the build-time, in-memory representation of one node of
// the compact multi-valued radix trie (spec.md §6, "a byte-oriented
// compact trie ... each node holds a shared key fragment, zero or more
// values, and a sorted array of children"), grounded on
// original_source/crates/jpv-lib/src/database/mod.rs's CompactTrie.
// Multi-valued because more than one dictionary entry can share a
// surface form (okurigana variants, homographs).
type trieNode struct {
	fragment []byte
	values   []Id
	children []*trieNode
}

// trieBuilder accumulates (key, id) pairs and compiles them into a
// packed, read-only buffer once Keys have all been inserted.
type trieBuilder struct {
	root *trieNode
}

func newTrieBuilder() *trieBuilder {
	return &trieBuilder{root: &trieNode{}}
}

// Insert adds one key/id pair. Keys are inserted in the order the
// builder hands them over (spec.md §4.4 step 7, "entries are pushed in
// reverse of the descending-weight sort, so that within a shared key
// the highest-weight id ends up first in that key's value list").
func (t *trieBuilder) Insert(key string, id Id) {
	insertInto(t.root, []byte(key), id)
}

func insertInto(n *trieNode, key []byte, id Id) {
	if len(key) == 0 {
		n.values = append(n.values, id)
		return
	}

	for i, child := range n.children {
		common := commonPrefixLen(child.fragment, key)
		switch {
		case common == 0:
			continue
		case common == len(child.fragment) && common == len(key):
			child.values = append(child.values, id)
			return
		case common == len(child.fragment):
			insertInto(child, key[common:], id)
			return
		default:
			// Split child at the common prefix.
			split := &trieNode{fragment: child.fragment[:common]}
			child.fragment = child.fragment[common:]
			split.children = []*trieNode{child}
			if common == len(key) {
				split.values = append(split.values, id)
			} else {
				leaf := &trieNode{fragment: key[common:], values: []Id{id}}
				split.children = append(split.children, leaf)
			}
			sortChildren(split.children)
			n.children[i] = split
			return
		}
	}

	n.children = append(n.children, &trieNode{fragment: key, values: []Id{id}})
	sortChildren(n.children)
}

func sortChildren(children []*trieNode) {
	sort.Slice(children, func(i, j int) bool {
		return firstByte(children[i].fragment) < firstByte(children[j].fragment)
	})
}

func firstByte(b []byte) byte {
	if len(b) == 0 {
		return 0
	}
	return b[0]
}

func commonPrefixLen(a, b []byte) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	i := 0
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// preIntern stores every node fragment in in ahead of time, so that by
// the time encode runs (after in's buffer has already been embedded in
// the packed buffer at internBase) every Store call is a guaranteed
// cache hit and appends no further bytes.
func (t *trieBuilder) preIntern(in *intern.Interner) {
	preInternNode(t.root, in)
}

func preInternNode(n *trieNode, in *intern.Interner) {
	in.Store(n.fragment)
	for _, c := range n.children {
		preInternNode(c, in)
	}
}

// encode serializes the trie into w, returning the root node's offset.
// Node layout (spec.md §6, "strings as (u32 offset, u8 length),
// per-node value and child slices as (u32 offset, u16 length)"):
// fragment ref (u32 offset into the shared string interner's buffer,
// u8 length), values ref (u32 offset, u16 count) pointing at a run of
// encoded Ids, children ref (u32 offset, u16 count) pointing at a run
// of (first-byte u8, child-node-offset u32) pairs. Children are
// encoded before their parent so the parent's refs are already known.
func (t *trieBuilder) encode(w *writer, in *intern.Interner, internBase uint32) uint32 {
	return encodeTrieNode(t.root, w, in, internBase)
}

func encodeTrieNode(n *trieNode, w *writer, in *intern.Interner, internBase uint32) uint32 {
	childOffsets := make([]uint32, len(n.children))
	for i, c := range n.children {
		childOffsets[i] = encodeTrieNode(c, w, in, internBase)
	}

	valuesOffset := w.offset()
	for _, id := range n.values {
		encodeID(w, id)
	}

	childrenOffset := w.offset()
	for i, c := range n.children {
		w.putU8(firstByte(c.fragment))
		w.putU32(childOffsets[i])
	}

	fragRef := in.Store(n.fragment)

	offset := w.offset()
	w.putU32(internBase + fragRef.Offset)
	w.putU8(uint8(len(n.fragment)))
	w.putU32(valuesOffset)
	w.putU16(uint16(len(n.values)))
	w.putU32(childrenOffset)
	w.putU16(uint16(len(n.children)))
	return offset
}

func encodeID(w *writer, id Id) {
	w.putU32(id.Offset)
	w.putU8(uint8(id.Source))
	w.putU8(id.ReadingIndex)
	w.putU8(id.KanjiIndex)
	w.putU64(id.Forms)
}

func decodeID(r *reader) (Id, error) {
	off, err := r.u32()
	if err != nil {
		return Id{}, err
	}
	src, err := r.u8()
	if err != nil {
		return Id{}, err
	}
	ri, err := r.u8()
	if err != nil {
		return Id{}, err
	}
	ki, err := r.u8()
	if err != nil {
		return Id{}, err
	}
	forms, err := r.u64()
	if err != nil {
		return Id{}, err
	}
	return Id{Offset: off, Source: SourceKind(src), ReadingIndex: ri, KanjiIndex: ki, Forms: forms}, nil
}

// trieNodeView is a read-only, lazily-decoded view of an encoded node,
// used by pkg/query to walk the trie without materializing it.
type trieNodeView struct {
	buf      []byte
	fragment []byte
	values   []Id
	children []trieChildEntry
}

type trieChildEntry struct {
	first  byte
	offset uint32
}

func readTrieNode(buf []byte, offset uint32) (trieNodeView, error) {
	r := newReader(buf, int(offset))
	fragOffset, err := r.u32()
	if err != nil {
		return trieNodeView{}, err
	}
	fragLen, err := r.u8()
	if err != nil {
		return trieNodeView{}, err
	}
	if int(fragOffset)+int(fragLen) > len(buf) {
		return trieNodeView{}, jpverrors.New(jpverrors.Buffer, "trie node fragment out of bounds")
	}
	fragment := buf[fragOffset : fragOffset+uint32(fragLen)]

	valuesOffset, err := r.u32()
	if err != nil {
		return trieNodeView{}, err
	}
	valueCount, err := r.u16()
	if err != nil {
		return trieNodeView{}, err
	}
	values := make([]Id, valueCount)
	vr := newReader(buf, int(valuesOffset))
	for i := range values {
		id, err := decodeID(vr)
		if err != nil {
			return trieNodeView{}, err
		}
		values[i] = id
	}

	childrenOffset, err := r.u32()
	if err != nil {
		return trieNodeView{}, err
	}
	childCount, err := r.u16()
	if err != nil {
		return trieNodeView{}, err
	}
	children := make([]trieChildEntry, childCount)
	cr := newReader(buf, int(childrenOffset))
	for i := range children {
		first, err := cr.u8()
		if err != nil {
			return trieNodeView{}, err
		}
		off, err := cr.u32()
		if err != nil {
			return trieNodeView{}, err
		}
		children[i] = trieChildEntry{first: first, offset: off}
	}
	return trieNodeView{buf: buf, fragment: fragment, values: values, children: children}, nil
}

// child looks up the child whose fragment starts with b, if any.
func (v trieNodeView) child(b byte) (uint32, bool) {
	for _, c := range v.children {
		if c.first == b {
			return c.offset, true
		}
	}
	return 0, false
}

// walkTrie descends the trie along key, returning the node reached after
// consuming the whole key, or ok=false if no such path exists (an error
// is returned only for a malformed buffer).
func walkTrie(buf []byte, root uint32, key []byte) (trieNodeView, bool, error) {
	offset := root
	for {
		node, err := readTrieNode(buf, offset)
		if err != nil {
			return trieNodeView{}, false, err
		}
		n := commonPrefixLen(node.fragment, key)
		if n != len(node.fragment) {
			return trieNodeView{}, false, nil
		}
		key = key[n:]
		if len(key) == 0 {
			return node, true, nil
		}
		next, ok := node.child(key[0])
		if !ok {
			return trieNodeView{}, false, nil
		}
		offset = next
	}
}

// collect gathers every value reachable under this node, depth-first,
// used for prefix/wildcard search expansion.
func collect(buf []byte, node trieNodeView, out *[]Id) error {
	*out = append(*out, node.values...)
	for _, c := range node.children {
		child, err := readTrieNode(buf, c.offset)
		if err != nil {
			return err
		}
		if err := collect(buf, child, out); err != nil {
			return err
		}
	}
	return nil
}
