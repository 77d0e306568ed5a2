package codec

import "github.com/gear-tech/scale/errors"

// Compact integer encoding. The low 2 bits of the first byte select one of
// four modes:
//
//	0b00  single byte            value < 2^6
//	0b01  two bytes, LE          value < 2^14
//	0b10  four bytes, LE         value < 2^30
//	0b11  (len-4) in the high 6 bits, then len little-endian bytes
//
// Encode always chooses the smallest mode that fits. Decode accepts any
// syntactically valid mode, including non-minimal ones.

// WriteCompact appends v in the smallest compact mode.
func (w *Writer) WriteCompact(v uint64) {
	switch {
	case v < 1<<6:
		w.WriteU8(uint8(v) << 2)
	case v < 1<<14:
		w.WriteU16(uint16(v)<<2 | 0b01)
	case v < 1<<30:
		w.WriteU32(uint32(v)<<2 | 0b10)
	default:
		n := uint64ByteLen(v)
		w.WriteU8(uint8(n-4)<<2 | 0b11)
		for i := 0; i < n; i++ {
			w.WriteU8(uint8(v))
			v >>= 8
		}
	}
}

// WriteCompactU128 appends v in the smallest compact mode. Values beyond
// 64 bits always use big-integer mode.
func (w *Writer) WriteCompactU128(v U128) {
	if v.Hi == 0 {
		w.WriteCompact(v.Lo)
		return
	}
	n := v.byteLen()
	w.WriteU8(uint8(n-4)<<2 | 0b11)
	lo := v.Lo
	for i := 0; i < 8; i++ {
		w.WriteU8(uint8(lo))
		lo >>= 8
	}
	hi := v.Hi
	for i := 8; i < n; i++ {
		w.WriteU8(uint8(hi))
		hi >>= 8
	}
}

// ReadCompact reads a compact integer that must fit in 64 bits.
func (r *Reader) ReadCompact() (uint64, error) {
	off := r.off
	v, err := r.ReadCompactU128()
	if err != nil {
		return 0, err
	}
	if v.Hi != 0 {
		return 0, errors.InvalidCompact(off, "value wider than 64 bits")
	}
	return v.Lo, nil
}

// ReadCompactU128 reads a compact integer of up to 128 bits.
func (r *Reader) ReadCompactU128() (U128, error) {
	off := r.off
	b, err := r.ReadU8()
	if err != nil {
		return U128{}, err
	}

	switch b & 0b11 {
	case 0b00:
		return U128{Lo: uint64(b >> 2)}, nil

	case 0b01:
		b2, err := r.ReadU8()
		if err != nil {
			return U128{}, err
		}
		return U128{Lo: (uint64(b) | uint64(b2)<<8) >> 2}, nil

	case 0b10:
		p, err := r.take(3)
		if err != nil {
			return U128{}, err
		}
		v := uint64(b) | uint64(p[0])<<8 | uint64(p[1])<<16 | uint64(p[2])<<24
		return U128{Lo: v >> 2}, nil

	default:
		n := int(b>>2) + 4
		p, err := r.take(n)
		if err != nil {
			return U128{}, err
		}
		var u U128
		for i, bb := range p {
			switch {
			case i < 8:
				u.Lo |= uint64(bb) << (8 * i)
			case i < 16:
				u.Hi |= uint64(bb) << (8 * (i - 8))
			case bb != 0:
				return U128{}, errors.InvalidCompact(off, "value wider than 128 bits")
			}
		}
		return u, nil
	}
}
