// Package intern implements C3: deduplicating byte strings as they are
// appended to a growable output buffer, returning a stable (offset,
// length) handle per unique string. Grounded on the `string_indexer`
// usage pattern in original_source/crates/jpv-lib/src/database/mod.rs
// (entries interned once, referenced by offset throughout the packed
// buffer) and on the donor's preference for small, single-purpose
// types.
package intern

import "github.com/cespare/xxhash/v2"

// Ref is a stable handle to an interned byte string: a byte offset
// into the owning Interner's buffer plus a length. It is the Go
// analogue of the original's zero-copy `Ref<str>`.
type Ref struct {
	Offset uint32
	Length uint32
}

// Interner deduplicates byte strings into a single growable buffer.
// Not safe for concurrent use; build-time only (spec.md §5, "the
// string interner is build-time only and not shared").
type Interner struct {
	buf     []byte
	index   map[uint64][]Ref
	stored  int
	reused  int
}

// New creates an empty interner with the given initial buffer capacity.
func New(capacityHint int) *Interner {
	return &Interner{
		buf:   make([]byte, 0, capacityHint),
		index: make(map[uint64][]Ref),
	}
}

// Store interns bytes, returning its stable Ref. If an identical
// string was already stored, the existing Ref is returned and no bytes
// are appended.
func (in *Interner) Store(data []byte) Ref {
	h := xxhash.Sum64(data)
	if candidates, ok := in.index[h]; ok {
		for _, ref := range candidates {
			if in.bytesAt(ref) == nil {
				continue
			}
			if bytesEqual(in.bytesAt(ref), data) {
				in.reused++
				return ref
			}
		}
	}

	ref := Ref{Offset: uint32(len(in.buf)), Length: uint32(len(data))}
	in.buf = append(in.buf, data...)
	in.index[h] = append(in.index[h], ref)
	in.stored++
	return ref
}

// StoreString is a convenience wrapper over Store for string input.
func (in *Interner) StoreString(s string) Ref {
	return in.Store([]byte(s))
}

func (in *Interner) bytesAt(ref Ref) []byte {
	if uint64(ref.Offset)+uint64(ref.Length) > uint64(len(in.buf)) {
		return nil
	}
	return in.buf[ref.Offset : ref.Offset+ref.Length]
}

// Bytes returns the string previously stored at ref.
func (in *Interner) Bytes(ref Ref) []byte {
	return in.bytesAt(ref)
}

// Buffer returns the accumulated byte buffer, suitable for appending
// into the final packed buffer at a fixed base offset.
func (in *Interner) Buffer() []byte { return in.buf }

// Len is the current buffer length in bytes.
func (in *Interner) Len() int { return len(in.buf) }

// Stats reports total-strings-stored and reused counts for logging
// (spec.md §4.3, "Reports total-strings-stored and reused counts").
func (in *Interner) Stats() (stored, reused int) { return in.stored, in.reused }

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
