package shape

import (
	stderrors "errors"
	"sync"
	"testing"

	scaleerrors "github.com/gear-tech/scale/errors"
)

// gasNodeID mirrors GasNodeId<_0, _1> from the catalog.
func gasNodeIDDef() *Shape {
	return Enum("GasNodeId",
		Case(0, "Node", ParamAt(0)),
		Case(1, "Reservation", ParamAt(1)),
	)
}

func TestInstantiateResolvesParams(t *testing.T) {
	def := gasNodeIDDef()

	concrete, err := Instantiate(def, Bytes(32), Bytes(32))
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if concrete.HasParams() {
		t.Error("instantiated shape still has parameters")
	}
	v, ok := concrete.VariantByTag(0)
	if !ok || v.Payload.Kind != KindBytes || v.Payload.Len != 32 {
		t.Errorf("variant 0 payload = %v, want [u8; 32]", v.Payload)
	}
}

func TestInstantiateMemoized(t *testing.T) {
	def := gasNodeIDDef()

	a, err := Instantiate(def, Bytes(32), U64())
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	b, err := Instantiate(def, Bytes(32), U64())
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if a != b {
		t.Error("same (definition, bindings) pair produced distinct shapes")
	}

	// Different bindings produce a different instantiation.
	c, err := Instantiate(def, Bytes(32), U32())
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if a == c {
		t.Error("distinct bindings shared one instantiation")
	}
}

func TestInstantiateConcreteDefinitionSharesShape(t *testing.T) {
	def := Struct("ChildrenRefs", NewField("spec_refs", U32()), NewField("unspec_refs", U32()))

	out, err := Instantiate(def)
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	if out != def {
		t.Error("parameter-free definition should pass through unchanged")
	}
}

func TestInstantiateNestedSubstitution(t *testing.T) {
	// Two levels: Vec<Option<_0>> inside a struct.
	def := Struct("Holder", NewField("items", Sequence(Option(ParamAt(0)))))

	out, err := Instantiate(def, U128())
	if err != nil {
		t.Fatalf("Instantiate: %v", err)
	}
	inner := out.Fields[0].Shape.Elem.Elem
	if inner.Kind != KindU128 {
		t.Errorf("inner kind = %s, want u128", inner.Kind)
	}
}

func TestInstantiateMissingBinding(t *testing.T) {
	def := gasNodeIDDef()

	_, err := Instantiate(def, Bytes(32))
	if !stderrors.Is(err, scaleerrors.New(scaleerrors.PhaseBuild, scaleerrors.KindUnboundParam).Build()) {
		t.Errorf("err = %v, want unbound_param", err)
	}
}

func TestInstantiateNilBinding(t *testing.T) {
	def := gasNodeIDDef()

	_, err := Instantiate(def, nil, U32())
	if !stderrors.Is(err, scaleerrors.New(scaleerrors.PhaseBuild, scaleerrors.KindUnboundParam).Build()) {
		t.Errorf("err = %v, want unbound_param", err)
	}
}

func TestInstantiateNonConcreteBinding(t *testing.T) {
	def := gasNodeIDDef()

	_, err := Instantiate(def, Sequence(ParamAt(0)), U32())
	if !stderrors.Is(err, scaleerrors.New(scaleerrors.PhaseBuild, scaleerrors.KindUnboundParam).Build()) {
		t.Errorf("err = %v, want unbound_param", err)
	}
}

func TestInstantiateConcurrent(t *testing.T) {
	for iter := 0; iter < 8; iter++ {
		// A fresh definition each round so every goroutine races past the
		// cache miss together.
		def := gasNodeIDDef()
		start := make(chan struct{})

		var wg sync.WaitGroup
		results := make([]*Shape, 16)
		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				s, err := Instantiate(def, Bytes(32), U64())
				if err != nil {
					t.Errorf("Instantiate: %v", err)
					return
				}
				results[i] = s
			}(i)
		}
		close(start)
		wg.Wait()

		for i := 1; i < len(results); i++ {
			if results[i] != results[0] {
				t.Fatalf("round %d: concurrent instantiations returned distinct shapes", iter)
			}
		}
	}
}
