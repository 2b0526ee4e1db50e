package index

import (
	"bytes"
	"sort"

	"github.com/udoprog/jpv-go/pkg/entity"
	"github.com/udoprog/jpv-go/pkg/intern"
)

// The three auxiliary maps (spec.md §6, IndexHeader's by_pos /
// by_kanji_literal / by_sequence) are each encoded as a sorted array of
// fixed-width records following a MapRef{Offset,Count}, queried by
// binary search. This is the Go stand-in for "a static perfect-hash-
// style map embedded in the buffer" (spec.md §4.4 step 9): simpler to
// get right without a hashing library in the retrieval pack, and
// lookup stays O(log n) either way.

// --- by_sequence: u64 -> u32, record width 12 bytes ---

func encodeSequenceMap(w *writer, m map[uint64]uint32) MapRef {
	type kv struct {
		key   uint64
		value uint32
	}
	entries := make([]kv, 0, len(m))
	for k, v := range m {
		entries = append(entries, kv{k, v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })

	offset := w.offset()
	for _, e := range entries {
		w.putU64(e.key)
		w.putU32(e.value)
	}
	return MapRef{Offset: offset, Count: uint32(len(entries))}
}

const sequenceRecordSize = 12

func lookupSequenceMap(buf []byte, m MapRef, seq uint64) (uint32, bool) {
	lo, hi := 0, int(m.Count)
	for lo < hi {
		mid := (lo + hi) / 2
		pos := int(m.Offset) + mid*sequenceRecordSize
		r := newReader(buf, pos)
		key, _ := r.u64()
		switch {
		case key == seq:
			off, _ := r.u32()
			return off, true
		case key < seq:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

// --- by_kanji_literal: Ref<str> -> u32, sorted by the literal's bytes ---

type kanjiLiteralEntry struct {
	literal string
	offset  uint32
}

func encodeKanjiLiteralMap(w *writer, in *intern.Interner, internBase uint32, entries []kanjiLiteralEntry) MapRef {
	sorted := append([]kanjiLiteralEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].literal < sorted[j].literal })

	base := w.offset()
	for _, e := range sorted {
		ref := in.StoreString(e.literal)
		w.putU32(internBase + ref.Offset)
		w.putU32(ref.Length)
		w.putU32(e.offset)
	}
	return MapRef{Offset: base, Count: uint32(len(sorted))}
}

const kanjiLiteralRecordSize = 12

func lookupKanjiLiteralMap(buf []byte, m MapRef, literal string) (uint32, bool) {
	lo, hi := 0, int(m.Count)
	target := []byte(literal)
	for lo < hi {
		mid := (lo + hi) / 2
		pos := int(m.Offset) + mid*kanjiLiteralRecordSize
		r := newReader(buf, pos)
		keyOff, _ := r.u32()
		keyLen, _ := r.u32()
		key := buf[keyOff : keyOff+keyLen]
		switch bytes.Compare(key, target) {
		case 0:
			off, _ := r.u32()
			return off, true
		case -1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

// --- by_pos: PartOfSpeech -> sorted []u32 offsets ---

func encodePOSMap(w *writer, p posSet) MapRef {
	type kv struct {
		pos     entity.PartOfSpeech
		offsets []uint32
	}
	entries := make([]kv, 0, len(p))
	for pos, set := range p {
		offsets := make([]uint32, 0, len(set))
		for off := range set {
			offsets = append(offsets, off)
		}
		sort.Slice(offsets, func(i, j int) bool { return offsets[i] < offsets[j] })
		entries = append(entries, kv{pos, offsets})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].pos < entries[j].pos })

	// List bodies first so each header record can point at an
	// already-known offset.
	listOffsets := make([]uint32, len(entries))
	listCounts := make([]uint32, len(entries))
	for i, e := range entries {
		listOffsets[i] = w.offset()
		listCounts[i] = uint32(len(e.offsets))
		for _, off := range e.offsets {
			w.putU32(off)
		}
	}

	base := w.offset()
	for i, e := range entries {
		w.putU32(uint32(e.pos))
		w.putU32(listOffsets[i])
		w.putU32(listCounts[i])
	}
	return MapRef{Offset: base, Count: uint32(len(entries))}
}

const posRecordSize = 12

func lookupPOSMap(buf []byte, m MapRef, pos entity.PartOfSpeech) ([]uint32, bool) {
	lo, hi := 0, int(m.Count)
	key := uint32(pos)
	for lo < hi {
		mid := (lo + hi) / 2
		recPos := int(m.Offset) + mid*posRecordSize
		r := newReader(buf, recPos)
		k, _ := r.u32()
		switch {
		case k == key:
			listOffset, _ := r.u32()
			listCount, _ := r.u32()
			out := make([]uint32, listCount)
			lr := newReader(buf, int(listOffset))
			for i := range out {
				v, _ := lr.u32()
				out[i] = v
			}
			return out, true
		case k < key:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return nil, false
}
