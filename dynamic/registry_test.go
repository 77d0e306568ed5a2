package dynamic

import (
	stderrors "errors"
	"reflect"
	"testing"

	"github.com/gear-tech/scale/errors"
	"github.com/gear-tech/scale/shape"
)

func TestRegistryRegisterAndDecodeAs(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("Phase", shape.Enum("Phase",
		shape.Case(0, "ApplyExtrinsic", shape.U32()),
		shape.Unit(1, "Finalization"),
		shape.Unit(2, "Initialization"),
	)); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, err := reg.DecodeAs([]byte{0x00, 0x07, 0x00, 0x00, 0x00}, "Phase")
	if err != nil {
		t.Fatalf("DecodeAs: %v", err)
	}
	v := got.(Variant)
	if v.Name != "ApplyExtrinsic" || v.Payload.(Uint) != 7 {
		t.Errorf("DecodeAs = %s", v)
	}
}

func TestRegistryUnknownType(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.DecodeAs([]byte{0x00}, "Nope")
	if !stderrors.Is(err, errors.New(errors.PhaseDecode, errors.KindNotFound).Build()) {
		t.Errorf("err = %v, want not_found", err)
	}
}

func TestRegistryDuplicate(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register("H256", shape.Bytes(32)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	err := reg.Register("H256", shape.Bytes(32))
	if !stderrors.Is(err, errors.New(errors.PhaseBuild, errors.KindRegistration).Build()) {
		t.Errorf("err = %v, want registration error", err)
	}
}

func TestRegistryRejectsGenericDefinition(t *testing.T) {
	reg := NewRegistry()
	err := reg.Register("Open", shape.Sequence(shape.ParamAt(0)))
	if !stderrors.Is(err, errors.New(errors.PhaseBuild, errors.KindRegistration).Build()) {
		t.Errorf("err = %v, want registration error", err)
	}
}

func TestRegistryNamesSorted(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"Zebra", "Alpha", "Mid"} {
		if err := reg.Register(name, shape.U8()); err != nil {
			t.Fatalf("Register(%s): %v", name, err)
		}
	}
	want := []string{"Alpha", "Mid", "Zebra"}
	if got := reg.Names(); !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}
