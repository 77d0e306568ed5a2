package types

import (
	"github.com/gear-tech/scale/codec"
	"github.com/gear-tech/scale/errors"
)

// Balance is a u128 value amount.
type Balance = codec.U128

// Gas is a u64 gas amount.
type Gas uint64

func (g Gas) Encode(w *codec.Writer) { w.WriteU64(uint64(g)) }

func (g *Gas) Decode(r *codec.Reader) error {
	v, err := r.ReadU64()
	if err != nil {
		return err
	}
	*g = Gas(v)
	return nil
}

// ChildrenRefs counts a gas node's children, split by whether the child
// carries its own gas amount.
type ChildrenRefs struct {
	SpecRefs   uint32
	UnspecRefs uint32
}

func (c ChildrenRefs) Encode(w *codec.Writer) {
	w.WriteU32(c.SpecRefs)
	w.WriteU32(c.UnspecRefs)
}

func (c *ChildrenRefs) Decode(r *codec.Reader) error {
	var err error
	if c.SpecRefs, err = r.ReadU32(); err != nil {
		return err
	}
	c.UnspecRefs, err = r.ReadU32()
	return err
}

// NodeLock splits a node's locked balance across the four lock kinds.
// It is a newtype over [B; 4]: the wire carries the four amounts back to
// back with no prefix.
type NodeLock[B codec.Encodable] [4]B

func (l NodeLock[B]) Encode(w *codec.Writer) {
	for i := range l {
		l[i].Encode(w)
	}
}

// DecodeNodeLock reads the four lock amounts in declaration order.
func DecodeNodeLock[B codec.Encodable, PB codec.Ptr[B]](r *codec.Reader) (NodeLock[B], error) {
	var l NodeLock[B]
	for i := range l {
		if err := PB(&l[i]).Decode(r); err != nil {
			return l, err
		}
	}
	return l, nil
}

// GasMultiplier fixes the conversion rate between value and gas units.
// Discriminants: ValuePerGas = 0, GasPerValue = 1.
type GasMultiplier[V, G codec.Encodable] interface {
	codec.Encodable
	isGasMultiplier(V, G)
}

// ValuePerGas prices one unit of gas in value units.
type ValuePerGas[V, G codec.Encodable] struct {
	Value V
}

func (m ValuePerGas[V, G]) Encode(w *codec.Writer) {
	w.WriteU8(0)
	m.Value.Encode(w)
}

func (ValuePerGas[V, G]) isGasMultiplier(V, G) {}

// GasPerValue prices one unit of value in gas units.
type GasPerValue[V, G codec.Encodable] struct {
	Gas G
}

func (m GasPerValue[V, G]) Encode(w *codec.Writer) {
	w.WriteU8(1)
	m.Gas.Encode(w)
}

func (GasPerValue[V, G]) isGasMultiplier(V, G) {}

// DecodeGasMultiplier reads a discriminant byte and the selected payload.
func DecodeGasMultiplier[V, G codec.Encodable, PV codec.Ptr[V], PG codec.Ptr[G]](r *codec.Reader) (GasMultiplier[V, G], error) {
	tag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		var m ValuePerGas[V, G]
		if err := PV(&m.Value).Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case 1:
		var m GasPerValue[V, G]
		if err := PG(&m.Gas).Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	default:
		return nil, errors.UnknownVariant([]string{"GasMultiplier"}, tag)
	}
}

// GasNodeKey is GasNodeId<MessageId, ReservationId>, the key type of the
// gas tree. Exactly one arm is set. Discriminants: Node = 0,
// Reservation = 1.
type GasNodeKey struct {
	Node        *MessageID
	Reservation *ReservationID
}

// NodeKey wraps a message id as a gas tree key.
func NodeKey(id MessageID) GasNodeKey { return GasNodeKey{Node: &id} }

// ReservationKey wraps a reservation id as a gas tree key.
func ReservationKey(id ReservationID) GasNodeKey { return GasNodeKey{Reservation: &id} }

// Encode writes the set arm. A key with neither or both arms set is a
// programming error and panics.
func (k GasNodeKey) Encode(w *codec.Writer) {
	switch {
	case k.Node != nil && k.Reservation == nil:
		w.WriteU8(0)
		k.Node.Encode(w)
	case k.Reservation != nil && k.Node == nil:
		w.WriteU8(1)
		k.Reservation.Encode(w)
	default:
		panic("types: GasNodeKey must hold exactly one of Node or Reservation")
	}
}

func (k *GasNodeKey) Decode(r *codec.Reader) error {
	tag, err := r.ReadU8()
	if err != nil {
		return err
	}
	switch tag {
	case 0:
		k.Node, k.Reservation = new(MessageID), nil
		return k.Node.Decode(r)
	case 1:
		k.Reservation, k.Node = new(ReservationID), nil
		return k.Reservation.Decode(r)
	default:
		return errors.UnknownVariant([]string{"GasNodeId"}, tag)
	}
}

// GasNode is one node of the gas tree, generic over the external actor id
// E, the node key ID, the balance B, and the gas amount G. Discriminants:
// External = 0, Cut = 1, Reserved = 2, SpecifiedLocal = 3,
// UnspecifiedLocal = 4.
type GasNode[E, ID, B, G codec.Encodable] interface {
	codec.Encodable
	isGasNode(E, ID, B, G)
}

// GasNodeExternal is the root node owned by an external actor.
type GasNodeExternal[E, ID, B, G codec.Encodable] struct {
	ID            E
	Multiplier    GasMultiplier[B, G]
	Value         G
	Lock          NodeLock[G]
	SystemReserve G
	Refs          ChildrenRefs
	Consumed      bool
	Deposit       bool
}

func (n GasNodeExternal[E, ID, B, G]) Encode(w *codec.Writer) {
	w.WriteU8(0)
	n.ID.Encode(w)
	n.Multiplier.Encode(w)
	n.Value.Encode(w)
	n.Lock.Encode(w)
	n.SystemReserve.Encode(w)
	n.Refs.Encode(w)
	w.WriteBool(n.Consumed)
	w.WriteBool(n.Deposit)
}

func (GasNodeExternal[E, ID, B, G]) isGasNode(E, ID, B, G) {}

// GasNodeCut holds gas split off from its ancestor and no longer part of
// the tree's accounting.
type GasNodeCut[E, ID, B, G codec.Encodable] struct {
	ID         E
	Multiplier GasMultiplier[B, G]
	Value      G
	Lock       NodeLock[G]
}

func (n GasNodeCut[E, ID, B, G]) Encode(w *codec.Writer) {
	w.WriteU8(1)
	n.ID.Encode(w)
	n.Multiplier.Encode(w)
	n.Value.Encode(w)
	n.Lock.Encode(w)
}

func (GasNodeCut[E, ID, B, G]) isGasNode(E, ID, B, G) {}

// GasNodeReserved holds gas reserved for deferred use.
type GasNodeReserved[E, ID, B, G codec.Encodable] struct {
	ID         E
	Multiplier GasMultiplier[B, G]
	Value      G
	Lock       NodeLock[G]
	Refs       ChildrenRefs
	Consumed   bool
}

func (n GasNodeReserved[E, ID, B, G]) Encode(w *codec.Writer) {
	w.WriteU8(2)
	n.ID.Encode(w)
	n.Multiplier.Encode(w)
	n.Value.Encode(w)
	n.Lock.Encode(w)
	n.Refs.Encode(w)
	w.WriteBool(n.Consumed)
}

func (GasNodeReserved[E, ID, B, G]) isGasNode(E, ID, B, G) {}

// GasNodeSpecifiedLocal is an inner node carrying its own gas amount.
type GasNodeSpecifiedLocal[E, ID, B, G codec.Encodable] struct {
	Parent        ID
	Root          ID
	Value         G
	Lock          NodeLock[G]
	SystemReserve G
	Refs          ChildrenRefs
	Consumed      bool
}

func (n GasNodeSpecifiedLocal[E, ID, B, G]) Encode(w *codec.Writer) {
	w.WriteU8(3)
	n.Parent.Encode(w)
	n.Root.Encode(w)
	n.Value.Encode(w)
	n.Lock.Encode(w)
	n.SystemReserve.Encode(w)
	n.Refs.Encode(w)
	w.WriteBool(n.Consumed)
}

func (GasNodeSpecifiedLocal[E, ID, B, G]) isGasNode(E, ID, B, G) {}

// GasNodeUnspecifiedLocal is an inner node drawing gas from its root.
type GasNodeUnspecifiedLocal[E, ID, B, G codec.Encodable] struct {
	Parent        ID
	Root          ID
	Lock          NodeLock[G]
	SystemReserve G
}

func (n GasNodeUnspecifiedLocal[E, ID, B, G]) Encode(w *codec.Writer) {
	w.WriteU8(4)
	n.Parent.Encode(w)
	n.Root.Encode(w)
	n.Lock.Encode(w)
	n.SystemReserve.Encode(w)
}

func (GasNodeUnspecifiedLocal[E, ID, B, G]) isGasNode(E, ID, B, G) {}

// DecodeGasNode reads a discriminant byte and the selected variant's
// fields in declaration order. Pointer parameters are inferred; call
// sites name only E, ID, B and G.
func DecodeGasNode[E, ID, B, G codec.Encodable, PE codec.Ptr[E], PID codec.Ptr[ID], PB codec.Ptr[B], PG codec.Ptr[G]](r *codec.Reader) (GasNode[E, ID, B, G], error) {
	tag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		var n GasNodeExternal[E, ID, B, G]
		if err := PE(&n.ID).Decode(r); err != nil {
			return nil, err
		}
		if n.Multiplier, err = DecodeGasMultiplier[B, G, PB, PG](r); err != nil {
			return nil, err
		}
		if err := PG(&n.Value).Decode(r); err != nil {
			return nil, err
		}
		if n.Lock, err = DecodeNodeLock[G, PG](r); err != nil {
			return nil, err
		}
		if err := PG(&n.SystemReserve).Decode(r); err != nil {
			return nil, err
		}
		if err := n.Refs.Decode(r); err != nil {
			return nil, err
		}
		if n.Consumed, err = r.ReadBool(); err != nil {
			return nil, err
		}
		if n.Deposit, err = r.ReadBool(); err != nil {
			return nil, err
		}
		return n, nil
	case 1:
		var n GasNodeCut[E, ID, B, G]
		if err := PE(&n.ID).Decode(r); err != nil {
			return nil, err
		}
		if n.Multiplier, err = DecodeGasMultiplier[B, G, PB, PG](r); err != nil {
			return nil, err
		}
		if err := PG(&n.Value).Decode(r); err != nil {
			return nil, err
		}
		if n.Lock, err = DecodeNodeLock[G, PG](r); err != nil {
			return nil, err
		}
		return n, nil
	case 2:
		var n GasNodeReserved[E, ID, B, G]
		if err := PE(&n.ID).Decode(r); err != nil {
			return nil, err
		}
		if n.Multiplier, err = DecodeGasMultiplier[B, G, PB, PG](r); err != nil {
			return nil, err
		}
		if err := PG(&n.Value).Decode(r); err != nil {
			return nil, err
		}
		if n.Lock, err = DecodeNodeLock[G, PG](r); err != nil {
			return nil, err
		}
		if err := n.Refs.Decode(r); err != nil {
			return nil, err
		}
		if n.Consumed, err = r.ReadBool(); err != nil {
			return nil, err
		}
		return n, nil
	case 3:
		var n GasNodeSpecifiedLocal[E, ID, B, G]
		if err := PID(&n.Parent).Decode(r); err != nil {
			return nil, err
		}
		if err := PID(&n.Root).Decode(r); err != nil {
			return nil, err
		}
		if err := PG(&n.Value).Decode(r); err != nil {
			return nil, err
		}
		if n.Lock, err = DecodeNodeLock[G, PG](r); err != nil {
			return nil, err
		}
		if err := PG(&n.SystemReserve).Decode(r); err != nil {
			return nil, err
		}
		if err := n.Refs.Decode(r); err != nil {
			return nil, err
		}
		if n.Consumed, err = r.ReadBool(); err != nil {
			return nil, err
		}
		return n, nil
	case 4:
		var n GasNodeUnspecifiedLocal[E, ID, B, G]
		if err := PID(&n.Parent).Decode(r); err != nil {
			return nil, err
		}
		if err := PID(&n.Root).Decode(r); err != nil {
			return nil, err
		}
		if n.Lock, err = DecodeNodeLock[G, PG](r); err != nil {
			return nil, err
		}
		if err := PG(&n.SystemReserve).Decode(r); err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, errors.UnknownVariant([]string{"GasNode"}, tag)
	}
}
