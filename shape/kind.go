package shape

// Kind discriminates the layout classes a Shape can describe.
type Kind uint8

const (
	KindBool Kind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindU128
	KindCompact
	KindBytes // fixed-size raw byte array
	KindArray
	KindSequence
	KindTuple
	KindOption
	KindResult
	KindStruct
	KindEnum
	KindParam // unresolved type parameter
)

var kindNames = [...]string{
	KindBool:     "bool",
	KindU8:       "u8",
	KindU16:      "u16",
	KindU32:      "u32",
	KindU64:      "u64",
	KindU128:     "u128",
	KindCompact:  "compact",
	KindBytes:    "bytes",
	KindArray:    "array",
	KindSequence: "sequence",
	KindTuple:    "tuple",
	KindOption:   "option",
	KindResult:   "result",
	KindStruct:   "struct",
	KindEnum:     "enum",
	KindParam:    "param",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsPrimitive reports whether the kind carries no nested shapes.
func (k Kind) IsPrimitive() bool {
	return k <= KindBytes
}
