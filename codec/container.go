package codec

import "github.com/gear-tech/scale/errors"

// Ptr constrains PT to be *T and decodable, letting container decoders
// construct elements in place. Call sites name only the element type;
// constraint inference fills in the pointer.
type Ptr[T any] interface {
	*T
	Decodable
}

// EncodeSeq appends a compact element count followed by each element's
// encoding. This is the Vec<T> layout; bound limits on bounded wrapper
// types are the caller's concern, not the wire's.
func EncodeSeq[T Encodable](w *Writer, xs []T) {
	w.WriteCompact(uint64(len(xs)))
	for i := range xs {
		xs[i].Encode(w)
	}
}

// DecodeSeq reads a compact element count and that many elements.
//
// The count is untrusted, so preallocation is capped by the bytes actually
// present. Zero-width elements may legitimately outnumber the remaining
// bytes; a short buffer surfaces from the element decoder itself.
func DecodeSeq[T any, PT Ptr[T]](r *Reader) ([]T, error) {
	n, err := r.ReadCompact()
	if err != nil {
		return nil, err
	}
	xs := make([]T, 0, int(min(n, uint64(r.Remaining()))))
	for i := uint64(0); i < n; i++ {
		var x T
		if err := PT(&x).Decode(r); err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, nil
}

// EncodeSeqFunc is EncodeSeq for element types without methods, such as
// plain integers.
func EncodeSeqFunc[T any](w *Writer, xs []T, enc func(*Writer, T)) {
	w.WriteCompact(uint64(len(xs)))
	for i := range xs {
		enc(w, xs[i])
	}
}

// DecodeSeqFunc is DecodeSeq for element types without methods.
func DecodeSeqFunc[T any](r *Reader, dec func(*Reader) (T, error)) ([]T, error) {
	n, err := r.ReadCompact()
	if err != nil {
		return nil, err
	}
	xs := make([]T, 0, int(min(n, uint64(r.Remaining()))))
	for i := uint64(0); i < n; i++ {
		x, err := dec(r)
		if err != nil {
			return nil, err
		}
		xs = append(xs, x)
	}
	return xs, nil
}

// EncodeArray appends each element's encoding with no length prefix; the
// length is part of the static shape.
func EncodeArray[T Encodable](w *Writer, xs []T) {
	for i := range xs {
		xs[i].Encode(w)
	}
}

// DecodeArray reads exactly n elements with no length prefix.
func DecodeArray[T any, PT Ptr[T]](r *Reader, n int) ([]T, error) {
	xs := make([]T, n)
	for i := range xs {
		if err := PT(&xs[i]).Decode(r); err != nil {
			return nil, err
		}
	}
	return xs, nil
}

// EncodeOption appends 0x00 for nil, or 0x01 followed by the value.
func EncodeOption[T Encodable](w *Writer, v *T) {
	if v == nil {
		w.WriteU8(0)
		return
	}
	w.WriteU8(1)
	(*v).Encode(w)
}

// DecodeOption reads an Option tag byte and, when present, the value.
// Tags other than 0x00 and 0x01 are invalid_tag.
func DecodeOption[T any, PT Ptr[T]](r *Reader) (*T, error) {
	off := r.Offset()
	tag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		return nil, nil
	case 1:
		v := new(T)
		if err := PT(v).Decode(r); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, errors.InvalidTag(off, tag, "Option tag 0x00 or 0x01")
	}
}

// Result holds exactly one of OK or Err, mirroring Result<T, E>.
type Result[T, E any] struct {
	OK  *T
	Err *E
}

// EncodeResult appends 0x00 followed by the OK payload or 0x01 followed by
// the Err payload. A Result with neither or both arms set is a programming
// error and panics.
func EncodeResult[T Encodable, E Encodable](w *Writer, v Result[T, E]) {
	switch {
	case v.OK != nil && v.Err == nil:
		w.WriteU8(0)
		(*v.OK).Encode(w)
	case v.Err != nil && v.OK == nil:
		w.WriteU8(1)
		(*v.Err).Encode(w)
	default:
		panic("codec: Result must hold exactly one of OK or Err")
	}
}

// DecodeResult reads a Result tag byte and the corresponding payload.
func DecodeResult[T any, PT Ptr[T], E any, PE Ptr[E]](r *Reader) (Result[T, E], error) {
	off := r.Offset()
	tag, err := r.ReadU8()
	if err != nil {
		return Result[T, E]{}, err
	}
	switch tag {
	case 0:
		v := new(T)
		if err := PT(v).Decode(r); err != nil {
			return Result[T, E]{}, err
		}
		return Result[T, E]{OK: v}, nil
	case 1:
		e := new(E)
		if err := PE(e).Decode(r); err != nil {
			return Result[T, E]{}, err
		}
		return Result[T, E]{Err: e}, nil
	default:
		return Result[T, E]{}, errors.InvalidTag(off, tag, "Result tag 0x00 or 0x01")
	}
}

// Pair is one entry of a KeyedVec.
type Pair[K, V any] struct {
	Key   K
	Value V
}

// EncodeKeyedVec encodes an ordered map as a sequence of (key, value)
// tuples. Insertion order in the source mapping is the wire order.
func EncodeKeyedVec[K Encodable, V Encodable](w *Writer, kvs []Pair[K, V]) {
	w.WriteCompact(uint64(len(kvs)))
	for i := range kvs {
		kvs[i].Key.Encode(w)
		kvs[i].Value.Encode(w)
	}
}

// DecodeKeyedVec decodes a sequence of (key, value) tuples, preserving
// wire order.
func DecodeKeyedVec[K any, PK Ptr[K], V any, PV Ptr[V]](r *Reader) ([]Pair[K, V], error) {
	n, err := r.ReadCompact()
	if err != nil {
		return nil, err
	}
	kvs := make([]Pair[K, V], 0, int(min(n, uint64(r.Remaining()))))
	for i := uint64(0); i < n; i++ {
		var kv Pair[K, V]
		if err := PK(&kv.Key).Decode(r); err != nil {
			return nil, err
		}
		if err := PV(&kv.Value).Decode(r); err != nil {
			return nil, err
		}
		kvs = append(kvs, kv)
	}
	return kvs, nil
}
