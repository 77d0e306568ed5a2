package dynamic

import (
	"strconv"

	"github.com/gear-tech/scale/codec"
	"github.com/gear-tech/scale/errors"
	"github.com/gear-tech/scale/shape"
)

// Decode decodes data against a concrete shape and requires the buffer to
// be fully consumed.
func Decode(data []byte, s *shape.Shape) (Value, error) {
	r := codec.NewReader(data)
	v, err := DecodeFrom(r, s)
	if err != nil {
		return nil, err
	}
	if r.Remaining() > 0 {
		return nil, errors.TrailingBytes(r.Offset(), r.Remaining())
	}
	return v, nil
}

// DecodeFrom decodes one value from r, leaving any trailing bytes for the
// caller. Used when a value is embedded in a larger stream.
func DecodeFrom(r *codec.Reader, s *shape.Shape) (Value, error) {
	if s.HasParams() {
		return nil, errors.New(errors.PhaseBuild, errors.KindUnboundParam).
			Detail("shape %s has unresolved type parameters; instantiate it first", s.String()).
			Build()
	}
	return decodeValue(r, s, nil)
}

func decodeValue(r *codec.Reader, s *shape.Shape, path []string) (Value, error) {
	switch s.Kind {
	case shape.KindBool:
		v, err := r.ReadBool()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		return Bool(v), nil

	case shape.KindU8:
		v, err := r.ReadU8()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		return Uint(v), nil

	case shape.KindU16:
		v, err := r.ReadU16()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		return Uint(v), nil

	case shape.KindU32:
		v, err := r.ReadU32()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		return Uint(v), nil

	case shape.KindU64:
		v, err := r.ReadU64()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		return Uint(v), nil

	case shape.KindU128:
		v, err := r.ReadU128()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		return Uint128(v), nil

	case shape.KindCompact:
		v, err := r.ReadCompactU128()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		if v.FitsUint64() {
			return Uint(v.Lo), nil
		}
		return Uint128(v), nil

	case shape.KindBytes:
		p, err := r.ReadRaw(s.Len)
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		out := make(Bytes, len(p))
		copy(out, p)
		return out, nil

	case shape.KindArray:
		out := make(Sequence, s.Len)
		for i := range out {
			elemPath := appendPath(path, "["+strconv.Itoa(i)+"]")
			v, err := decodeValue(r, s.Elem, elemPath)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case shape.KindSequence:
		n, err := r.ReadCompact()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		// Preallocation is capped by the remaining bytes; zero-width
		// elements may outnumber them.
		out := make(Sequence, 0, int(min(n, uint64(r.Remaining()))))
		for i := uint64(0); i < n; i++ {
			elemPath := appendPath(path, "["+strconv.FormatUint(i, 10)+"]")
			v, err := decodeValue(r, s.Elem, elemPath)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil

	case shape.KindTuple:
		out := make(Tuple, len(s.Fields))
		for i, f := range s.Fields {
			elemPath := appendPath(path, "["+strconv.Itoa(i)+"]")
			v, err := decodeValue(r, f.Shape, elemPath)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil

	case shape.KindOption:
		off := r.Offset()
		tag, err := r.ReadU8()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		switch tag {
		case 0:
			return Option{}, nil
		case 1:
			v, err := decodeValue(r, s.Elem, appendPath(path, "[some]"))
			if err != nil {
				return nil, err
			}
			return Option{Some: v}, nil
		default:
			return nil, errors.WithPath(errors.InvalidTag(off, tag, "Option tag 0x00 or 0x01"), path...)
		}

	case shape.KindResult:
		off := r.Offset()
		tag, err := r.ReadU8()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		switch tag {
		case 0:
			var payload Value
			if s.OK != nil {
				if payload, err = decodeValue(r, s.OK, appendPath(path, "[ok]")); err != nil {
					return nil, err
				}
			}
			return Result{Payload: payload}, nil
		case 1:
			var payload Value
			if s.Err != nil {
				if payload, err = decodeValue(r, s.Err, appendPath(path, "[err]")); err != nil {
					return nil, err
				}
			}
			return Result{IsErr: true, Payload: payload}, nil
		default:
			return nil, errors.WithPath(errors.InvalidTag(off, tag, "Result tag 0x00 or 0x01"), path...)
		}

	case shape.KindStruct:
		fields := make([]FieldValue, len(s.Fields))
		for i, f := range s.Fields {
			if f.Skip {
				// Absent from the wire: fabricate, consume nothing.
				fields[i] = FieldValue{Name: f.Name, Value: defaultValue(f.Shape)}
				continue
			}
			v, err := decodeValue(r, f.Shape, appendPath(path, structPath(s, f)))
			if err != nil {
				return nil, err
			}
			fields[i] = FieldValue{Name: f.Name, Value: v}
		}
		return Struct{Name: s.Name, Fields: fields}, nil

	case shape.KindEnum:
		tag, err := r.ReadU8()
		if err != nil {
			return nil, errors.WithPath(err, path...)
		}
		v, ok := s.VariantByTag(tag)
		if !ok {
			return nil, errors.UnknownVariant(appendPath(path, s.Name), tag)
		}
		var payload Value
		if v.Payload != nil {
			vp := appendPath(path, s.Name+"::"+v.Name)
			if payload, err = decodeValue(r, v.Payload, vp); err != nil {
				return nil, err
			}
		}
		return Variant{Enum: s.Name, Name: v.Name, Tag: v.Tag, Payload: payload}, nil

	default:
		return nil, errors.New(errors.PhaseDecode, errors.KindUnboundParam).
			Path(path...).
			Detail("cannot decode unresolved parameter _%d", s.Param).
			Build()
	}
}

// structPath qualifies a field with its struct's type name when it has one.
func structPath(s *shape.Shape, f shape.Field) string {
	if s.Name != "" {
		return s.Name + "." + f.Name
	}
	return f.Name
}

func appendPath(path []string, seg string) []string {
	return append(append([]string{}, path...), seg)
}
