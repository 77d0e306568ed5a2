package types

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/gear-tech/scale/codec"
	"github.com/gear-tech/scale/errors"
)

// The instantiation the runtime stores: GasNode<ActorId, GasNodeId<
// MessageId, ReservationId>, u128, u64>.
type standardGasNode = GasNode[ActorID, GasNodeKey, Balance, Gas]

func decodeStandardGasNode(r *codec.Reader) (standardGasNode, error) {
	return DecodeGasNode[ActorID, GasNodeKey, Balance, Gas](r)
}

func externalFixture() GasNodeExternal[ActorID, GasNodeKey, Balance, Gas] {
	var id ActorID
	id[0] = 0xaa
	return GasNodeExternal[ActorID, GasNodeKey, Balance, Gas]{
		ID:            id,
		Multiplier:    ValuePerGas[Balance, Gas]{Value: codec.U128From(6)},
		Value:         1_000_000,
		Lock:          NodeLock[Gas]{1, 2, 3, 4},
		SystemReserve: 0,
		Refs:          ChildrenRefs{SpecRefs: 1, UnspecRefs: 2},
		Consumed:      false,
		Deposit:       true,
	}
}

func TestGasNodeExternalRoundTrip(t *testing.T) {
	in := externalFixture()

	w := codec.NewWriter()
	in.Encode(w)
	// tag + id + multiplier + value + lock + system_reserve + refs +
	// consumed + deposit.
	if want := 1 + 32 + 17 + 8 + 32 + 8 + 8 + 2; w.Len() != want {
		t.Fatalf("encoded %d bytes, want %d", w.Len(), want)
	}
	if w.Bytes()[0] != 0x00 {
		t.Fatalf("discriminant = %#x, want 0x00", w.Bytes()[0])
	}

	got, err := decodeStandardGasNode(codec.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip = %#v, want %#v", got, in)
	}
}

func TestGasNodeSpecifiedLocalRoundTrip(t *testing.T) {
	var parent MessageID
	parent[0] = 0x01
	var root ReservationID
	root[0] = 0x02

	in := GasNodeSpecifiedLocal[ActorID, GasNodeKey, Balance, Gas]{
		Parent:   NodeKey(parent),
		Root:     ReservationKey(root),
		Value:    500,
		Lock:     NodeLock[Gas]{},
		Refs:     ChildrenRefs{UnspecRefs: 1},
		Consumed: true,
	}

	w := codec.NewWriter()
	in.Encode(w)
	if w.Bytes()[0] != 0x03 {
		t.Fatalf("discriminant = %#x, want 0x03", w.Bytes()[0])
	}
	// The node key arms carry their own tags.
	if w.Bytes()[1] != 0x00 || w.Bytes()[34] != 0x01 {
		t.Fatalf("key tags = %#x, %#x", w.Bytes()[1], w.Bytes()[34])
	}

	got, err := decodeStandardGasNode(codec.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip = %#v, want %#v", got, in)
	}
}

func TestGasNodeUnspecifiedLocalRoundTrip(t *testing.T) {
	var parent MessageID
	in := GasNodeUnspecifiedLocal[ActorID, GasNodeKey, Balance, Gas]{
		Parent:        NodeKey(parent),
		Root:          NodeKey(parent),
		Lock:          NodeLock[Gas]{0, 0, 7, 0},
		SystemReserve: 9,
	}

	w := codec.NewWriter()
	in.Encode(w)
	if w.Bytes()[0] != 0x04 {
		t.Fatalf("discriminant = %#x, want 0x04", w.Bytes()[0])
	}

	got, err := decodeStandardGasNode(codec.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(got, in) {
		t.Errorf("round trip = %#v, want %#v", got, in)
	}
}

func TestGasNodeUnknownDiscriminant(t *testing.T) {
	_, err := decodeStandardGasNode(codec.NewReader([]byte{0x05}))
	if !stderrors.Is(err, errors.New(errors.PhaseDecode, errors.KindUnknownVariant).Build()) {
		t.Fatalf("err = %v, want unknown_variant", err)
	}
	var decErr *errors.Error
	stderrors.As(err, &decErr)
	if decErr.Tag != 0x05 {
		t.Errorf("Tag = %#x, want 0x05", decErr.Tag)
	}
}

func TestGasNodeTruncated(t *testing.T) {
	w := codec.NewWriter()
	externalFixture().Encode(w)
	_, err := decodeStandardGasNode(codec.NewReader(w.Bytes()[:40]))
	if !stderrors.Is(err, errors.New(errors.PhaseDecode, errors.KindUnexpectedEOF).Build()) {
		t.Errorf("err = %v, want unexpected_eof", err)
	}
}

func TestGasNodeKey(t *testing.T) {
	var res ReservationID
	res[31] = 0xff
	in := ReservationKey(res)

	w := codec.NewWriter()
	in.Encode(w)
	if w.Bytes()[0] != 0x01 {
		t.Fatalf("discriminant = %#x, want 0x01", w.Bytes()[0])
	}

	var got GasNodeKey
	if err := got.Decode(codec.NewReader(w.Bytes())); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Node != nil || got.Reservation == nil || *got.Reservation != res {
		t.Errorf("round trip = %#v", got)
	}
}

func TestGasNodeKeyEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for key with no arm set")
		}
	}()
	GasNodeKey{}.Encode(codec.NewWriter())
}

func TestGasMultiplierUnknownDiscriminant(t *testing.T) {
	_, err := DecodeGasMultiplier[Balance, Gas](codec.NewReader([]byte{0x02}))
	if !stderrors.Is(err, errors.New(errors.PhaseDecode, errors.KindUnknownVariant).Build()) {
		t.Errorf("err = %v, want unknown_variant", err)
	}
}

func TestNodeLockRoundTrip(t *testing.T) {
	in := NodeLock[Gas]{10, 20, 30, 40}
	w := codec.NewWriter()
	in.Encode(w)
	if w.Len() != 32 {
		t.Fatalf("encoded %d bytes, want 32", w.Len())
	}

	got, err := DecodeNodeLock[Gas](codec.NewReader(w.Bytes()))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got != in {
		t.Errorf("round trip = %v, want %v", got, in)
	}
}
