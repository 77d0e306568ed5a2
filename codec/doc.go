// Package codec implements the SCALE wire format primitives.
//
// SCALE (Simple Concatenated Aggregate Little-Endian) is the binary
// encoding exchanged with the remote runtime: values embedded in signed
// transactions, storage query results, and event logs. Byte-exactness is
// mandatory; there is no framing, padding, or self-description on the wire
// beyond Option/Result tags and enum discriminants.
//
// # Key Types
//
//	Writer    - append-only encode buffer
//	Reader    - cursor over an input buffer with EOF accounting
//	U128      - 128-bit unsigned integer (balances, gas)
//
// # Wire Rules
//
//	Type            Encoding
//	────────────────────────────────────────────────
//	u8..u128        fixed width, little-endian
//	bool            one byte, 0x00 or 0x01 (strict)
//	[N]u8           N raw bytes, no prefix
//	compact         1/2/4-byte or big-integer mode
//	Option<T>       0x00 | 0x01 ++ T
//	Result<T,E>     0x00 ++ T | 0x01 ++ E
//	Vec<T>          compact(len) ++ T...
//	[T; N], tuple   concatenation, no prefix
//	struct          field concatenation in declared order
//	enum            discriminant byte ++ payload
//
// Encode always emits the minimal compact mode; decode accepts any
// syntactically valid mode, minimal or not.
//
// # Contract With Generated Types
//
// Each generated type implements Encodable and Decodable by calling the
// Writer/Reader primitives in field declaration order. Container helpers
// (EncodeSeq, DecodeOption, ...) are generic over those interfaces so one
// definition serves every concrete instantiation.
//
// # Thread Safety
//
// Writer and Reader are single-call cursors and are NOT safe for
// concurrent use. Distinct encode/decode calls share no state and may run
// concurrently.
//
// # Error Handling
//
// Encoding into an in-memory buffer cannot fail; Writer methods return
// nothing. Decoding malformed input from an untrusted peer is expected:
// Reader methods return structured errors from the errors package
// (unexpected_eof, invalid_tag, invalid_compact) and never panic.
package codec
