package dynamic

import (
	"fmt"
	"strings"

	"github.com/gear-tech/scale/codec"
	"github.com/gear-tech/scale/shape"
)

// Value is one node of a dynamically-tagged decode tree.
type Value interface {
	fmt.Stringer
	value()
}

// Bool is a decoded boolean.
type Bool bool

// Uint is a decoded unsigned integer of up to 64 bits, fixed-width or
// compact.
type Uint uint64

// Uint128 is a decoded 128-bit integer.
type Uint128 codec.U128

// Bytes is a decoded fixed-size byte array.
type Bytes []byte

// Sequence is a decoded Vec or fixed array.
type Sequence []Value

// Tuple is a decoded tuple.
type Tuple []Value

// FieldValue is one named field of a Struct.
type FieldValue struct {
	Value Value
	Name  string
}

// Struct is a decoded composite. Fields appear in declaration order,
// including skip fields, which hold fabricated defaults.
type Struct struct {
	Name   string
	Fields []FieldValue
}

// Option is a decoded Option. A nil Some is None.
type Option struct {
	Some Value
}

// Result is a decoded Result. Payload is nil for a unit arm.
type Result struct {
	Payload Value
	IsErr   bool
}

// Variant is a decoded tagged-union case.
type Variant struct {
	Payload Value // nil for unit variants
	Enum    string
	Name    string
	Tag     byte
}

func (Bool) value()     {}
func (Uint) value()     {}
func (Uint128) value()  {}
func (Bytes) value()    {}
func (Sequence) value() {}
func (Tuple) value()    {}
func (Struct) value()   {}
func (Option) value()   {}
func (Result) value()   {}
func (Variant) value()  {}

func (v Bool) String() string {
	return fmt.Sprintf("%t", bool(v))
}

func (v Uint) String() string {
	return fmt.Sprintf("%d", uint64(v))
}

func (v Uint128) String() string {
	return codec.U128(v).String()
}

func (v Bytes) String() string {
	return fmt.Sprintf("0x%x", []byte(v))
}

func (v Sequence) String() string {
	return "[" + joinValues([]Value(v)) + "]"
}

func (v Tuple) String() string {
	return "(" + joinValues([]Value(v)) + ")"
}

func (v Struct) String() string {
	parts := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		parts[i] = f.Name + ": " + f.Value.String()
	}
	return v.Name + " { " + strings.Join(parts, ", ") + " }"
}

func (v Option) String() string {
	if v.Some == nil {
		return "None"
	}
	return "Some(" + v.Some.String() + ")"
}

func (v Result) String() string {
	arm := "Ok"
	if v.IsErr {
		arm = "Err"
	}
	if v.Payload == nil {
		return arm
	}
	return arm + "(" + v.Payload.String() + ")"
}

func (v Variant) String() string {
	name := v.Name
	if v.Enum != "" {
		name = v.Enum + "::" + v.Name
	}
	if v.Payload == nil {
		return name
	}
	return name + "(" + v.Payload.String() + ")"
}

func joinValues(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// defaultValue fabricates the zero value for a shape. It backs skip
// fields, which are never read from the buffer.
func defaultValue(s *shape.Shape) Value {
	switch s.Kind {
	case shape.KindBool:
		return Bool(false)
	case shape.KindU8, shape.KindU16, shape.KindU32, shape.KindU64, shape.KindCompact:
		return Uint(0)
	case shape.KindU128:
		return Uint128{}
	case shape.KindBytes:
		return Bytes(make([]byte, s.Len))
	case shape.KindArray:
		out := make(Sequence, s.Len)
		for i := range out {
			out[i] = defaultValue(s.Elem)
		}
		return out
	case shape.KindSequence:
		return Sequence{}
	case shape.KindTuple:
		out := make(Tuple, len(s.Fields))
		for i, f := range s.Fields {
			out[i] = defaultValue(f.Shape)
		}
		return out
	case shape.KindOption:
		return Option{}
	case shape.KindResult:
		var payload Value
		if s.OK != nil {
			payload = defaultValue(s.OK)
		}
		return Result{Payload: payload}
	case shape.KindStruct:
		fields := make([]FieldValue, len(s.Fields))
		for i, f := range s.Fields {
			fields[i] = FieldValue{Name: f.Name, Value: defaultValue(f.Shape)}
		}
		return Struct{Name: s.Name, Fields: fields}
	case shape.KindEnum:
		// First declared variant, defaulted payload.
		v := s.Variants[0]
		var payload Value
		if v.Payload != nil {
			payload = defaultValue(v.Payload)
		}
		return Variant{Enum: s.Name, Name: v.Name, Tag: v.Tag, Payload: payload}
	default:
		return Tuple{}
	}
}
