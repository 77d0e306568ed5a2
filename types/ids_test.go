package types

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/gear-tech/scale/codec"
	"github.com/gear-tech/scale/errors"
)

func TestIDRoundTrip(t *testing.T) {
	var id ActorID
	for i := range id {
		id[i] = byte(i)
	}

	w := codec.NewWriter()
	id.Encode(w)
	if w.Len() != 32 {
		t.Fatalf("encoded %d bytes, want 32", w.Len())
	}

	var got ActorID
	if err := got.Decode(codec.NewReader(w.Bytes())); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != id {
		t.Errorf("round trip = %s, want %s", got, id)
	}
}

func TestIDTruncated(t *testing.T) {
	var h H256
	err := h.Decode(codec.NewReader(make([]byte, 31)))
	if !stderrors.Is(err, errors.New(errors.PhaseDecode, errors.KindUnexpectedEOF).Build()) {
		t.Errorf("err = %v, want unexpected_eof", err)
	}
}

func TestIDString(t *testing.T) {
	var id MessageID
	id[0], id[31] = 0xde, 0xad
	want := "0xde" + string(bytes.Repeat([]byte("00"), 30)) + "ad"
	if got := id.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
