package index

import (
	"encoding/binary"

	"github.com/udoprog/jpv-go/pkg/intern"
	"github.com/udoprog/jpv-go/pkg/jpverrors"
)

// Magic identifies a packed dictionary buffer opened by pkg/query
// (spec.md §7, jpverrors.MagicMismatch: "the buffer does not start
// with the expected magic number").
const Magic uint32 = 0x6a_70_76_31 // "jpv1"

// Version is bumped whenever the packed layout changes incompatibly
// (spec.md §7, jpverrors.Outdated: "the buffer's version does not
// match the version this build of the library expects").
const Version uint32 = 1

// headerSize is the fixed, always-at-offset-zero prefix every packed
// buffer starts with, checked before anything else is trusted.
const headerSize = 12

// Header is the fixed 12-byte prefix of every packed buffer: magic,
// version, and the offset of the single IndexHeader that follows
// (spec.md §6, "Header{magic, version, index_ref: u32}").
type Header struct {
	Magic    uint32
	Version  uint32
	IndexRef uint32
}

func (h Header) encode() []byte {
	var buf [headerSize]byte
	binary.LittleEndian.PutUint32(buf[0:4], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:8], h.Version)
	binary.LittleEndian.PutUint32(buf[8:12], h.IndexRef)
	return buf[:]
}

func decodeHeader(buf []byte) (Header, error) {
	if len(buf) < headerSize {
		return Header{}, jpverrors.New(jpverrors.Buffer, "buffer too small for header")
	}
	h := Header{
		Magic:    binary.LittleEndian.Uint32(buf[0:4]),
		Version:  binary.LittleEndian.Uint32(buf[4:8]),
		IndexRef: binary.LittleEndian.Uint32(buf[8:12]),
	}
	if h.Magic != Magic {
		return Header{}, jpverrors.New(jpverrors.MagicMismatch, "packed buffer magic mismatch")
	}
	if h.Version != Version {
		return Header{}, jpverrors.New(jpverrors.Outdated, "packed buffer version mismatch")
	}
	return h, nil
}

// MapRef points at a sorted array of Count fixed-width records, queried
// by binary search; the record layout (key plus u32 offset or offset
// list) is per map, see auxmaps.go (by_pos / by_sequence /
// by_kanji_literal).
type MapRef struct {
	Offset uint32
	Count  uint32
}

func (m MapRef) encode(w *writer) {
	w.putU32(m.Offset)
	w.putU32(m.Count)
}

func decodeMapRef(r *reader) (MapRef, error) {
	off, err := r.u32()
	if err != nil {
		return MapRef{}, err
	}
	count, err := r.u32()
	if err != nil {
		return MapRef{}, err
	}
	return MapRef{Offset: off, Count: count}, nil
}

// IndexHeader is the single sub-index descriptor a Header.IndexRef
// points at: the interned sub-index name, the trie root, and the three
// auxiliary lookup maps (spec.md §6, "IndexHeader{name: Ref<str>,
// lookup: TrieRef<Id>, by_pos: MapRef, by_kanji_literal: MapRef,
// by_sequence: MapRef}").
type IndexHeader struct {
	Name            intern.Ref
	LookupRoot      uint32 // offset of the trie's root node
	ByPOS           MapRef
	ByKanjiLiteral  MapRef
	BySequence      MapRef
}

func (ih IndexHeader) encode(w *writer) {
	w.putU32(ih.Name.Offset)
	w.putU32(ih.Name.Length)
	w.putU32(ih.LookupRoot)
	ih.ByPOS.encode(w)
	ih.ByKanjiLiteral.encode(w)
	ih.BySequence.encode(w)
}

func decodeIndexHeader(buf []byte, offset uint32) (IndexHeader, error) {
	r := newReader(buf, int(offset))
	nameOff, err := r.u32()
	if err != nil {
		return IndexHeader{}, err
	}
	nameLen, err := r.u32()
	if err != nil {
		return IndexHeader{}, err
	}
	root, err := r.u32()
	if err != nil {
		return IndexHeader{}, err
	}
	byPOS, err := decodeMapRef(r)
	if err != nil {
		return IndexHeader{}, err
	}
	byKanji, err := decodeMapRef(r)
	if err != nil {
		return IndexHeader{}, err
	}
	bySeq, err := decodeMapRef(r)
	if err != nil {
		return IndexHeader{}, err
	}
	return IndexHeader{
		Name:           intern.Ref{Offset: nameOff, Length: nameLen},
		LookupRoot:     root,
		ByPOS:          byPOS,
		ByKanjiLiteral: byKanji,
		BySequence:     bySeq,
	}, nil
}
