package scale

import (
	"github.com/gear-tech/scale/codec"
	"github.com/gear-tech/scale/errors"
)

// Encodable is implemented by every type that can write itself to the wire.
type Encodable = codec.Encodable

// Decodable is implemented by every type that can reconstruct itself from
// the wire.
type Decodable = codec.Decodable

// Marshal encodes v into a fresh buffer.
func Marshal(v Encodable) []byte {
	w := codec.NewWriter()
	v.Encode(w)
	return w.Bytes()
}

// Unmarshal decodes data into v and requires the buffer to be fully
// consumed. Leftover input is trailing_bytes, not silently ignored.
func Unmarshal(data []byte, v Decodable) error {
	r := codec.NewReader(data)
	if err := v.Decode(r); err != nil {
		return err
	}
	if r.Remaining() > 0 {
		return errors.TrailingBytes(r.Offset(), r.Remaining())
	}
	return nil
}
