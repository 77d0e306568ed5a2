package codec

import "encoding/binary"

// Encodable is implemented by every type that can write itself to the wire.
// Encoding into an in-memory buffer cannot fail, so Encode returns nothing.
type Encodable interface {
	Encode(w *Writer)
}

// Decodable is implemented by every type that can reconstruct itself from
// the wire. Implementations read exactly the bytes their shape requires.
type Decodable interface {
	Decode(r *Reader) error
}

// Writer is an append-only encode buffer. The zero value is ready to use.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the encoded buffer. The slice is owned by the Writer until
// the encode call that produced it hands it off.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteU8 appends one byte.
func (w *Writer) WriteU8(v uint8) {
	w.buf = append(w.buf, v)
}

// WriteU16 appends v as 2 little-endian bytes.
func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

// WriteU32 appends v as 4 little-endian bytes.
func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// WriteU64 appends v as 8 little-endian bytes.
func (w *Writer) WriteU64(v uint64) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// WriteU128 appends v as 16 little-endian bytes, low word first.
func (w *Writer) WriteU128(v U128) {
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v.Lo)
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v.Hi)
}

// WriteBool appends 0x01 for true, 0x00 for false.
func (w *Writer) WriteBool(v bool) {
	if v {
		w.buf = append(w.buf, 1)
	} else {
		w.buf = append(w.buf, 0)
	}
}

// WriteRaw appends p verbatim, with no length prefix. Used for fixed-size
// byte arrays whose length is part of the static shape.
func (w *Writer) WriteRaw(p []byte) {
	w.buf = append(w.buf, p...)
}

// WriteByteSlice appends a compact length prefix followed by p. This is the
// Vec<u8> encoding.
func (w *Writer) WriteByteSlice(p []byte) {
	w.WriteCompact(uint64(len(p)))
	w.buf = append(w.buf, p...)
}

// WriteString appends s as Vec<u8>.
func (w *Writer) WriteString(s string) {
	w.WriteCompact(uint64(len(s)))
	w.buf = append(w.buf, s...)
}
