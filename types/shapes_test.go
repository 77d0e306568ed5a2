package types

import (
	"bytes"
	"testing"

	"github.com/gear-tech/scale/codec"
	"github.com/gear-tech/scale/dynamic"
)

func TestRegisterAll(t *testing.T) {
	reg := dynamic.NewRegistry()
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	names := reg.Names()
	have := make(map[string]bool, len(names))
	for _, n := range names {
		have[n] = true
	}
	for _, want := range []string{"ActorId", "GasNode", "GasNodeId", "Header", "Phase", "ReplyCode"} {
		if !have[want] {
			t.Errorf("Names() missing %q", want)
		}
	}
}

// The static codec and the registered shapes must agree byte for byte.

func TestShapeAgreesWithStaticGasNode(t *testing.T) {
	reg := dynamic.NewRegistry()
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	w := codec.NewWriter()
	externalFixture().Encode(w)

	v, err := reg.DecodeAs(w.Bytes(), "GasNode")
	if err != nil {
		t.Fatalf("DecodeAs: %v", err)
	}
	variant := v.(dynamic.Variant)
	if variant.Name != "External" || variant.Tag != 0 {
		t.Fatalf("variant = %s", variant)
	}

	st := variant.Payload.(dynamic.Struct)
	id := st.Fields[0].Value.(dynamic.Bytes)
	if len(id) != 32 || id[0] != 0xaa {
		t.Errorf("id = %s", id)
	}
	mult := st.Fields[1].Value.(dynamic.Variant)
	if mult.Name != "ValuePerGas" || codec.U128(mult.Payload.(dynamic.Uint128)).Lo != 6 {
		t.Errorf("multiplier = %s", mult)
	}
	if st.Fields[2].Value.(dynamic.Uint) != 1_000_000 {
		t.Errorf("value = %s", st.Fields[2].Value)
	}
	if lock := st.Fields[3].Value.(dynamic.Sequence); len(lock) != 4 || lock[3].(dynamic.Uint) != 4 {
		t.Errorf("lock = %s", st.Fields[3].Value)
	}
	if st.Fields[7].Value.(dynamic.Bool) != true {
		t.Errorf("deposit = %s", st.Fields[7].Value)
	}

	// Re-encoding the tree reproduces the static bytes.
	s, _ := reg.Lookup("GasNode")
	out, err := dynamic.Encode(v, s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(out, w.Bytes()) {
		t.Errorf("re-encoded = %x, want %x", out, w.Bytes())
	}
}

func TestShapeAgreesWithStaticHeader(t *testing.T) {
	reg := dynamic.NewRegistry()
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	in := Header{Number: 300}
	in.ParentHash[0] = 0x11
	w := codec.NewWriter()
	in.Encode(w)

	v, err := reg.DecodeAs(w.Bytes(), "Header")
	if err != nil {
		t.Fatalf("DecodeAs: %v", err)
	}
	st := v.(dynamic.Struct)
	if st.Fields[1].Value.(dynamic.Uint) != 300 {
		t.Errorf("number = %s", st.Fields[1].Value)
	}

	s, _ := reg.Lookup("Header")
	out, err := dynamic.Encode(v, s)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(out, w.Bytes()) {
		t.Errorf("re-encoded = %x, want %x", out, w.Bytes())
	}
}

func TestShapeAgreesWithStaticReplyCode(t *testing.T) {
	reg := dynamic.NewRegistry()
	if err := RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}

	w := codec.NewWriter()
	ReplyCodeError{Reason: ErrorReplyExecution(ExecutionRanOutOfGas)}.Encode(w)

	v, err := reg.DecodeAs(w.Bytes(), "ReplyCode")
	if err != nil {
		t.Fatalf("DecodeAs: %v", err)
	}
	outer := v.(dynamic.Variant)
	inner := outer.Payload.(dynamic.Variant)
	trap := inner.Payload.(dynamic.Variant)
	if outer.Name != "Error" || inner.Name != "Execution" || trap.Name != "RanOutOfGas" {
		t.Errorf("decoded %s", v)
	}
}
