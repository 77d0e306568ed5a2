package dynamic

import (
	"strconv"

	"github.com/gear-tech/scale/codec"
	"github.com/gear-tech/scale/errors"
	"github.com/gear-tech/scale/shape"
)

// Encode checks v against a concrete shape and writes it back to bytes.
// It is the exact inverse of Decode: Encode(Decode(b, s), s) == b for any
// b produced by a minimal encoder.
func Encode(v Value, s *shape.Shape) ([]byte, error) {
	if s.HasParams() {
		return nil, errors.New(errors.PhaseBuild, errors.KindUnboundParam).
			Detail("shape %s has unresolved type parameters; instantiate it first", s.String()).
			Build()
	}
	w := codec.NewWriter()
	if err := encodeValue(w, v, s, nil); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

func encodeValue(w *codec.Writer, v Value, s *shape.Shape, path []string) error {
	switch s.Kind {
	case shape.KindBool:
		b, ok := v.(Bool)
		if !ok {
			return mismatch(v, s, path)
		}
		w.WriteBool(bool(b))
		return nil

	case shape.KindU8:
		return encodeUint(w, v, s, path, 1<<8-1, func(u uint64) { w.WriteU8(uint8(u)) })

	case shape.KindU16:
		return encodeUint(w, v, s, path, 1<<16-1, func(u uint64) { w.WriteU16(uint16(u)) })

	case shape.KindU32:
		return encodeUint(w, v, s, path, 1<<32-1, func(u uint64) { w.WriteU32(uint32(u)) })

	case shape.KindU64:
		return encodeUint(w, v, s, path, 1<<64-1, func(u uint64) { w.WriteU64(u) })

	case shape.KindU128:
		switch n := v.(type) {
		case Uint128:
			w.WriteU128(codec.U128(n))
		case Uint:
			w.WriteU128(codec.U128From(uint64(n)))
		default:
			return mismatch(v, s, path)
		}
		return nil

	case shape.KindCompact:
		switch n := v.(type) {
		case Uint:
			w.WriteCompact(uint64(n))
		case Uint128:
			w.WriteCompactU128(codec.U128(n))
		default:
			return mismatch(v, s, path)
		}
		return nil

	case shape.KindBytes:
		b, ok := v.(Bytes)
		if !ok {
			return mismatch(v, s, path)
		}
		if len(b) != s.Len {
			return errors.ValueMismatch(path, "[u8; "+strconv.Itoa(len(b))+"]", s.String())
		}
		w.WriteRaw(b)
		return nil

	case shape.KindArray:
		seq, ok := v.(Sequence)
		if !ok {
			return mismatch(v, s, path)
		}
		if len(seq) != s.Len {
			return errors.ValueMismatch(path, "sequence of "+strconv.Itoa(len(seq)), s.String())
		}
		for i, elem := range seq {
			if err := encodeValue(w, elem, s.Elem, appendPath(path, "["+strconv.Itoa(i)+"]")); err != nil {
				return err
			}
		}
		return nil

	case shape.KindSequence:
		seq, ok := v.(Sequence)
		if !ok {
			return mismatch(v, s, path)
		}
		w.WriteCompact(uint64(len(seq)))
		for i, elem := range seq {
			if err := encodeValue(w, elem, s.Elem, appendPath(path, "["+strconv.Itoa(i)+"]")); err != nil {
				return err
			}
		}
		return nil

	case shape.KindTuple:
		tup, ok := v.(Tuple)
		if !ok {
			return mismatch(v, s, path)
		}
		if len(tup) != len(s.Fields) {
			return errors.ValueMismatch(path, "tuple of "+strconv.Itoa(len(tup)), s.String())
		}
		for i, elem := range tup {
			if err := encodeValue(w, elem, s.Fields[i].Shape, appendPath(path, "["+strconv.Itoa(i)+"]")); err != nil {
				return err
			}
		}
		return nil

	case shape.KindOption:
		opt, ok := v.(Option)
		if !ok {
			return mismatch(v, s, path)
		}
		if opt.Some == nil {
			w.WriteU8(0)
			return nil
		}
		w.WriteU8(1)
		return encodeValue(w, opt.Some, s.Elem, appendPath(path, "[some]"))

	case shape.KindResult:
		res, ok := v.(Result)
		if !ok {
			return mismatch(v, s, path)
		}
		arm, seg := s.OK, "[ok]"
		if res.IsErr {
			w.WriteU8(1)
			arm, seg = s.Err, "[err]"
		} else {
			w.WriteU8(0)
		}
		if arm == nil {
			if res.Payload != nil {
				return errors.ValueMismatch(appendPath(path, seg), "payload", "()")
			}
			return nil
		}
		if res.Payload == nil {
			return errors.ValueMismatch(appendPath(path, seg), "()", arm.String())
		}
		return encodeValue(w, res.Payload, arm, appendPath(path, seg))

	case shape.KindStruct:
		st, ok := v.(Struct)
		if !ok {
			return mismatch(v, s, path)
		}
		if len(st.Fields) != len(s.Fields) {
			return errors.ValueMismatch(path, strconv.Itoa(len(st.Fields))+" field(s)", s.String()+" with "+strconv.Itoa(len(s.Fields)))
		}
		for i, f := range s.Fields {
			if f.Skip {
				continue
			}
			if err := encodeValue(w, st.Fields[i].Value, f.Shape, appendPath(path, structPath(s, f))); err != nil {
				return err
			}
		}
		return nil

	case shape.KindEnum:
		vr, ok := v.(Variant)
		if !ok {
			return mismatch(v, s, path)
		}
		decl, found := s.VariantByTag(vr.Tag)
		if !found {
			return errors.New(errors.PhaseEncode, errors.KindUnknownVariant).
				Path(appendPath(path, s.Name)...).
				Byte(vr.Tag).
				Detail("no variant declared for discriminant").
				Build()
		}
		w.WriteU8(vr.Tag)
		if decl.Payload == nil {
			if vr.Payload != nil {
				return errors.ValueMismatch(appendPath(path, s.Name+"::"+decl.Name), "payload", "()")
			}
			return nil
		}
		if vr.Payload == nil {
			return errors.ValueMismatch(appendPath(path, s.Name+"::"+decl.Name), "()", decl.Payload.String())
		}
		return encodeValue(w, vr.Payload, decl.Payload, appendPath(path, s.Name+"::"+decl.Name))

	default:
		return errors.New(errors.PhaseEncode, errors.KindUnboundParam).
			Path(path...).
			Detail("cannot encode against unresolved parameter _%d", s.Param).
			Build()
	}
}

func encodeUint(w *codec.Writer, v Value, s *shape.Shape, path []string, max uint64, emit func(uint64)) error {
	n, ok := v.(Uint)
	if !ok {
		return mismatch(v, s, path)
	}
	if uint64(n) > max {
		return errors.ValueMismatch(path, "value "+n.String(), s.String())
	}
	emit(uint64(n))
	return nil
}

func mismatch(v Value, s *shape.Shape, path []string) error {
	return errors.ValueMismatch(path, valueKind(v), s.String())
}

func valueKind(v Value) string {
	switch v.(type) {
	case Bool:
		return "bool"
	case Uint:
		return "uint"
	case Uint128:
		return "u128"
	case Bytes:
		return "bytes"
	case Sequence:
		return "sequence"
	case Tuple:
		return "tuple"
	case Struct:
		return "struct"
	case Option:
		return "option"
	case Result:
		return "result"
	case Variant:
		return "variant"
	default:
		return "nil"
	}
}
