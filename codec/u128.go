package codec

import "math/big"

// U128 is an unsigned 128-bit integer, used for balance and gas amounts.
// On the wire it is 16 little-endian bytes, low word first.
type U128 struct {
	Lo uint64
	Hi uint64
}

// U128From returns a U128 holding lo.
func U128From(lo uint64) U128 {
	return U128{Lo: lo}
}

// U128FromBig converts v to a U128. ok is false when v is negative or
// wider than 128 bits.
func U128FromBig(v *big.Int) (u U128, ok bool) {
	if v.Sign() < 0 || v.BitLen() > 128 {
		return U128{}, false
	}
	var lo, hi big.Int
	lo.And(v, maxUint64)
	hi.Rsh(v, 64)
	return U128{Lo: lo.Uint64(), Hi: hi.Uint64()}, true
}

var maxUint64 = new(big.Int).SetUint64(^uint64(0))

// IsZero reports whether u is zero.
func (u U128) IsZero() bool {
	return u.Lo == 0 && u.Hi == 0
}

// FitsUint64 reports whether u can be represented as a uint64.
func (u U128) FitsUint64() bool {
	return u.Hi == 0
}

// Cmp compares u and v, returning -1, 0, or 1.
func (u U128) Cmp(v U128) int {
	switch {
	case u.Hi < v.Hi:
		return -1
	case u.Hi > v.Hi:
		return 1
	case u.Lo < v.Lo:
		return -1
	case u.Lo > v.Lo:
		return 1
	default:
		return 0
	}
}

// Big returns u as a big.Int.
func (u U128) Big() *big.Int {
	v := new(big.Int).SetUint64(u.Hi)
	v.Lsh(v, 64)
	return v.Or(v, new(big.Int).SetUint64(u.Lo))
}

// String returns the decimal representation of u.
func (u U128) String() string {
	if u.Hi == 0 {
		return new(big.Int).SetUint64(u.Lo).String()
	}
	return u.Big().String()
}

// Encode writes u as 16 little-endian bytes.
func (u U128) Encode(w *Writer) {
	w.WriteU128(u)
}

// Decode reads 16 little-endian bytes into u.
func (u *U128) Decode(r *Reader) error {
	v, err := r.ReadU128()
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// byteLen returns the number of bytes in the minimal little-endian
// representation of u, at least 1.
func (u U128) byteLen() int {
	switch {
	case u.Hi != 0:
		return 8 + uint64ByteLen(u.Hi)
	case u.Lo != 0:
		return uint64ByteLen(u.Lo)
	default:
		return 1
	}
}

func uint64ByteLen(v uint64) int {
	n := 1
	for v > 0xff {
		v >>= 8
		n++
	}
	return n
}
