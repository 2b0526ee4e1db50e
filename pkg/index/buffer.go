package index

import (
	"encoding/binary"
	"math"

	"github.com/udoprog/jpv-go/pkg/jpverrors"
)

// writer is an append-only byte sink used while assembling the packed
// buffer (spec.md §6, "Entry body encoding ... a self-describing
// packed variable-length format supporting unsigned integers
// (variable-length), byte strings (length-prefixed), optional fields,
// ordered sequences, and small bitsets"). The specific grammar here is
// private to this builder/query pair, as the spec allows.
type writer struct {
	buf []byte
}

func newWriter(capacityHint int) *writer {
	return &writer{buf: make([]byte, 0, capacityHint)}
}

// offset returns the position the next write will land at.
func (w *writer) offset() uint32 { return uint32(len(w.buf)) }

// reserve appends n zero bytes, returning the offset they start at, so
// a fixed-size record (the file header, the index header) can be
// patched in place once the rest of the buffer is known.
func (w *writer) reserve(n int) uint32 {
	offset := w.offset()
	w.buf = append(w.buf, make([]byte, n)...)
	return offset
}

// patchU32 overwrites 4 bytes already written at pos, used to fill in
// a reserved header field once its real value is known.
func (w *writer) patchU32(pos int, v uint32) {
	binary.LittleEndian.PutUint32(w.buf[pos:pos+4], v)
}

func (w *writer) putUvarint(v uint64) {
	var tmp [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(tmp[:], v)
	w.buf = append(w.buf, tmp[:n]...)
}

func (w *writer) putU8(v uint8)   { w.buf = append(w.buf, v) }
func (w *writer) putBool(v bool) {
	if v {
		w.putU8(1)
	} else {
		w.putU8(0)
	}
}

func (w *writer) putU16(v uint16) {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *writer) putU32(v uint32) {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *writer) putU64(v uint64) {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	w.buf = append(w.buf, tmp[:]...)
}

func (w *writer) putFloat32(v float32) {
	w.putU32(math.Float32bits(v))
}

// putBytes writes a varint length prefix followed by the raw bytes.
func (w *writer) putBytes(b []byte) {
	w.putUvarint(uint64(len(b)))
	w.buf = append(w.buf, b...)
}

func (w *writer) putString(s string) { w.putBytes([]byte(s)) }

// putStrings writes a varint count followed by each length-prefixed
// string (spec.md §6, "ordered sequences").
func (w *writer) putStrings(ss []string) {
	w.putUvarint(uint64(len(ss)))
	for _, s := range ss {
		w.putString(s)
	}
}

// reader decodes values written by writer, at query time over an
// mmap-backed byte slice (pkg/query owns the slice; this type is
// shared so the grammar stays in one place).
type reader struct {
	buf []byte
	pos int
}

func newReader(buf []byte, pos int) *reader {
	return &reader{buf: buf, pos: pos}
}

func (r *reader) Pos() int { return r.pos }

func (r *reader) uvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		return 0, jpverrors.New(jpverrors.Buffer, "truncated varint")
	}
	r.pos += n
	return v, nil
}

func (r *reader) u8() (uint8, error) {
	if r.pos >= len(r.buf) {
		return 0, jpverrors.New(jpverrors.Buffer, "truncated u8")
	}
	v := r.buf[r.pos]
	r.pos++
	return v, nil
}

func (r *reader) boolean() (bool, error) {
	v, err := r.u8()
	return v != 0, err
}

func (r *reader) u16() (uint16, error) {
	if r.pos+2 > len(r.buf) {
		return 0, jpverrors.New(jpverrors.Buffer, "truncated u16")
	}
	v := binary.LittleEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v, nil
}

func (r *reader) u32() (uint32, error) {
	if r.pos+4 > len(r.buf) {
		return 0, jpverrors.New(jpverrors.Buffer, "truncated u32")
	}
	v := binary.LittleEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v, nil
}

func (r *reader) u64() (uint64, error) {
	if r.pos+8 > len(r.buf) {
		return 0, jpverrors.New(jpverrors.Buffer, "truncated u64")
	}
	v := binary.LittleEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v, nil
}

func (r *reader) float32() (float32, error) {
	v, err := r.u32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

func (r *reader) bytes() ([]byte, error) {
	n, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	if r.pos+int(n) > len(r.buf) {
		return nil, jpverrors.New(jpverrors.Buffer, "truncated bytes")
	}
	out := r.buf[r.pos : r.pos+int(n)]
	r.pos += int(n)
	return out, nil
}

func (r *reader) string() (string, error) {
	b, err := r.bytes()
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *reader) strings() ([]string, error) {
	n, err := r.uvarint()
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := range out {
		s, err := r.string()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
