package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// Shape is one type's layout description. Shapes are immutable after
// construction; the same *Shape may be referenced from many definitions.
type Shape struct {
	Elem     *Shape // Array, Sequence, Option element
	OK       *Shape // Result ok arm, nil when the arm is unit
	Err      *Shape // Result err arm, nil when the arm is unit
	Name     string // Struct/Enum type name, empty for anonymous shapes
	Fields   []Field
	Variants []Variant
	Len      int // Bytes, Array
	Param    int // KindParam: parameter position
	Kind     Kind
}

// Field is one struct field. A Skip field never reaches the wire: encode
// omits it and decode fabricates the type's default without consuming
// input.
type Field struct {
	Shape *Shape
	Name  string
	Skip  bool
}

// Variant is one tagged-union case. Tag is the explicitly declared
// discriminant byte; it is never derived from declaration position and
// the table may be sparse. A nil Payload is a unit variant.
type Variant struct {
	Payload *Shape
	Name    string
	Tag     byte
}

var (
	boolShape    = &Shape{Kind: KindBool}
	u8Shape      = &Shape{Kind: KindU8}
	u16Shape     = &Shape{Kind: KindU16}
	u32Shape     = &Shape{Kind: KindU32}
	u64Shape     = &Shape{Kind: KindU64}
	u128Shape    = &Shape{Kind: KindU128}
	compactShape = &Shape{Kind: KindCompact}
)

// Bool returns the one-byte strict boolean shape.
func Bool() *Shape { return boolShape }

// U8 returns the fixed-width u8 shape.
func U8() *Shape { return u8Shape }

// U16 returns the fixed-width little-endian u16 shape.
func U16() *Shape { return u16Shape }

// U32 returns the fixed-width little-endian u32 shape.
func U32() *Shape { return u32Shape }

// U64 returns the fixed-width little-endian u64 shape.
func U64() *Shape { return u64Shape }

// U128 returns the fixed-width little-endian u128 shape.
func U128() *Shape { return u128Shape }

// Compact returns the variable-length compact integer shape.
func Compact() *Shape { return compactShape }

// Bytes returns the [u8; n] shape: n raw bytes, no prefix.
func Bytes(n int) *Shape {
	return &Shape{Kind: KindBytes, Len: n}
}

// Array returns the [T; n] shape: n element encodings, no prefix.
func Array(elem *Shape, n int) *Shape {
	return &Shape{Kind: KindArray, Elem: elem, Len: n}
}

// Sequence returns the Vec<T> shape: compact count then elements.
// Bounded and weak-bounded wrappers share this shape; the bound is not
// part of the wire format.
func Sequence(elem *Shape) *Shape {
	return &Shape{Kind: KindSequence, Elem: elem}
}

// Tuple returns the concatenation shape of elems in order.
func Tuple(elems ...*Shape) *Shape {
	fields := make([]Field, len(elems))
	for i, e := range elems {
		fields[i] = Field{Shape: e}
	}
	return &Shape{Kind: KindTuple, Fields: fields}
}

// Option returns the Option<T> shape.
func Option(elem *Shape) *Shape {
	return &Shape{Kind: KindOption, Elem: elem}
}

// ResultOf returns the Result<T, E> shape. A nil arm is unit.
func ResultOf(ok, err *Shape) *Shape {
	return &Shape{Kind: KindResult, OK: ok, Err: err}
}

// Struct returns a named composite shape. Field encoding order is
// declaration order and is never reordered.
func Struct(name string, fields ...Field) *Shape {
	return &Shape{Kind: KindStruct, Name: name, Fields: fields}
}

// NewField declares one struct field.
func NewField(name string, s *Shape) Field {
	return Field{Name: name, Shape: s}
}

// SkipField declares a field that is absent from the wire in both
// directions, such as a PhantomData slot for an unused type parameter.
func SkipField(name string, s *Shape) Field {
	return Field{Name: name, Shape: s, Skip: true}
}

// Enum returns a tagged-union shape. Discriminants must be unique;
// a duplicate is a programming error in the type definition and panics.
// Reserved "ignore" variants carrying only phantom data have no wire
// representation and must simply be left out of the table.
func Enum(name string, variants ...Variant) *Shape {
	seen := make(map[byte]string, len(variants))
	for _, v := range variants {
		if prev, dup := seen[v.Tag]; dup {
			panic(fmt.Sprintf("shape: enum %s declares discriminant %d twice (%s, %s)", name, v.Tag, prev, v.Name))
		}
		seen[v.Tag] = v.Name
	}
	return &Shape{Kind: KindEnum, Name: name, Variants: variants}
}

// Case declares one enum variant with a payload.
func Case(tag byte, name string, payload *Shape) Variant {
	return Variant{Tag: tag, Name: name, Payload: payload}
}

// Unit declares one enum variant with no payload.
func Unit(tag byte, name string) Variant {
	return Variant{Tag: tag, Name: name}
}

// ParamAt returns a placeholder for type parameter i of a generic
// definition. It must be resolved through Instantiate before the shape
// can touch any bytes.
func ParamAt(i int) *Shape {
	return &Shape{Kind: KindParam, Param: i}
}

// VariantByTag returns the variant declared for tag, if any. Tables are
// small, so a linear scan beats a map.
func (s *Shape) VariantByTag(tag byte) (Variant, bool) {
	for _, v := range s.Variants {
		if v.Tag == tag {
			return v, true
		}
	}
	return Variant{}, false
}

// HasParams reports whether any unresolved type parameter remains in s.
func (s *Shape) HasParams() bool {
	if s.Kind.IsPrimitive() {
		return false
	}
	switch s.Kind {
	case KindParam:
		return true
	case KindArray, KindSequence, KindOption:
		return s.Elem.HasParams()
	case KindResult:
		return (s.OK != nil && s.OK.HasParams()) || (s.Err != nil && s.Err.HasParams())
	case KindStruct, KindTuple:
		for _, f := range s.Fields {
			if f.Shape.HasParams() {
				return true
			}
		}
		return false
	case KindEnum:
		for _, v := range s.Variants {
			if v.Payload != nil && v.Payload.HasParams() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// String renders the shape as a type expression, e.g. "Option<[u8; 32]>".
func (s *Shape) String() string {
	switch s.Kind {
	case KindBytes:
		return "[u8; " + strconv.Itoa(s.Len) + "]"
	case KindArray:
		return "[" + s.Elem.String() + "; " + strconv.Itoa(s.Len) + "]"
	case KindSequence:
		return "Vec<" + s.Elem.String() + ">"
	case KindTuple:
		parts := make([]string, len(s.Fields))
		for i, f := range s.Fields {
			parts[i] = f.Shape.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case KindOption:
		return "Option<" + s.Elem.String() + ">"
	case KindResult:
		return "Result<" + armString(s.OK) + ", " + armString(s.Err) + ">"
	case KindStruct, KindEnum:
		if s.Name != "" {
			return s.Name
		}
		return s.Kind.String()
	case KindParam:
		return "_" + strconv.Itoa(s.Param)
	default:
		return s.Kind.String()
	}
}

func armString(s *Shape) string {
	if s == nil {
		return "()"
	}
	return s.String()
}
