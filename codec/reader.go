package codec

import (
	"encoding/binary"

	"github.com/gear-tech/scale/errors"
)

// Reader is a cursor over an input buffer. Every read advances the cursor;
// a read past the end returns unexpected_eof and leaves the cursor where
// the shortfall was discovered.
type Reader struct {
	data []byte
	off  int
}

// NewReader returns a Reader positioned at the start of data. The Reader
// does not copy data; the caller must not mutate it during the decode.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.data) - r.off
}

// Offset returns the current cursor position.
func (r *Reader) Offset() int {
	return r.off
}

// take returns the next n bytes without copying and advances the cursor.
func (r *Reader) take(n int) ([]byte, error) {
	if rem := len(r.data) - r.off; rem < n {
		return nil, errors.UnexpectedEOF(r.off, n, rem)
	}
	p := r.data[r.off : r.off+n]
	r.off += n
	return p, nil
}

// ReadU8 reads one byte.
func (r *Reader) ReadU8() (uint8, error) {
	p, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// ReadU16 reads 2 little-endian bytes.
func (r *Reader) ReadU16() (uint16, error) {
	p, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(p), nil
}

// ReadU32 reads 4 little-endian bytes.
func (r *Reader) ReadU32() (uint32, error) {
	p, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(p), nil
}

// ReadU64 reads 8 little-endian bytes.
func (r *Reader) ReadU64() (uint64, error) {
	p, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(p), nil
}

// ReadU128 reads 16 little-endian bytes, low word first.
func (r *Reader) ReadU128() (U128, error) {
	p, err := r.take(16)
	if err != nil {
		return U128{}, err
	}
	return U128{
		Lo: binary.LittleEndian.Uint64(p[:8]),
		Hi: binary.LittleEndian.Uint64(p[8:]),
	}, nil
}

// ReadBool reads one byte and requires it to be exactly 0x00 or 0x01.
// Any other value is invalid_tag; there is no truthy coercion.
func (r *Reader) ReadBool() (bool, error) {
	off := r.off
	b, err := r.ReadU8()
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, errors.InvalidTag(off, b, "bool byte 0x00 or 0x01")
	}
}

// ReadRaw reads exactly n bytes with no length prefix. The returned slice
// aliases the input buffer.
func (r *Reader) ReadRaw(n int) ([]byte, error) {
	return r.take(n)
}

// ReadByteSlice reads a compact length prefix followed by that many bytes,
// returning a copy. This is the Vec<u8> decoding.
func (r *Reader) ReadByteSlice() ([]byte, error) {
	n, err := r.ReadCompact()
	if err != nil {
		return nil, err
	}
	if n > uint64(r.Remaining()) {
		return nil, errors.UnexpectedEOF(r.off, int(n), r.Remaining())
	}
	p, err := r.take(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(p))
	copy(out, p)
	return out, nil
}

// ReadString reads a Vec<u8> and returns it as a string.
func (r *Reader) ReadString() (string, error) {
	p, err := r.ReadByteSlice()
	if err != nil {
		return "", err
	}
	return string(p), nil
}
