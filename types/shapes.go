package types

import (
	"github.com/gear-tech/scale/dynamic"
	"github.com/gear-tech/scale/shape"
)

// Shape descriptors for the self-describing decode path. Generic
// definitions carry positional parameters; RegisterAll installs the
// instantiations the runtime actually stores.

// H256Shape describes any 32-byte identifier.
func H256Shape() *shape.Shape { return shape.Bytes(32) }

// ChildrenRefsShape describes ChildrenRefs.
func ChildrenRefsShape() *shape.Shape {
	return shape.Struct("ChildrenRefs",
		shape.NewField("spec_refs", shape.U32()),
		shape.NewField("unspec_refs", shape.U32()),
	)
}

// NodeLockShape is the generic NodeLock<_0> definition.
func NodeLockShape() *shape.Shape {
	return shape.Array(shape.ParamAt(0), 4)
}

// GasMultiplierShape is the generic GasMultiplier<_0, _1> definition.
func GasMultiplierShape() *shape.Shape {
	return shape.Enum("GasMultiplier",
		shape.Case(0, "ValuePerGas", shape.ParamAt(0)),
		shape.Case(1, "GasPerValue", shape.ParamAt(1)),
	)
}

// GasNodeIDShape is the generic GasNodeId<_0, _1> definition.
func GasNodeIDShape() *shape.Shape {
	return shape.Enum("GasNodeId",
		shape.Case(0, "Node", shape.ParamAt(0)),
		shape.Case(1, "Reservation", shape.ParamAt(1)),
	)
}

// GasNodeShape is the generic GasNode<_0, _1, _2, _3> definition, where
// _0 is the external actor id, _1 the node key, _2 the balance and _3 the
// gas amount.
func GasNodeShape() *shape.Shape {
	multiplier := shape.Enum("GasMultiplier",
		shape.Case(0, "ValuePerGas", shape.ParamAt(2)),
		shape.Case(1, "GasPerValue", shape.ParamAt(3)),
	)
	lock := shape.Array(shape.ParamAt(3), 4)

	return shape.Enum("GasNode",
		shape.Case(0, "External", shape.Struct("",
			shape.NewField("id", shape.ParamAt(0)),
			shape.NewField("multiplier", multiplier),
			shape.NewField("value", shape.ParamAt(3)),
			shape.NewField("lock", lock),
			shape.NewField("system_reserve", shape.ParamAt(3)),
			shape.NewField("refs", ChildrenRefsShape()),
			shape.NewField("consumed", shape.Bool()),
			shape.NewField("deposit", shape.Bool()),
		)),
		shape.Case(1, "Cut", shape.Struct("",
			shape.NewField("id", shape.ParamAt(0)),
			shape.NewField("multiplier", multiplier),
			shape.NewField("value", shape.ParamAt(3)),
			shape.NewField("lock", lock),
		)),
		shape.Case(2, "Reserved", shape.Struct("",
			shape.NewField("id", shape.ParamAt(0)),
			shape.NewField("multiplier", multiplier),
			shape.NewField("value", shape.ParamAt(3)),
			shape.NewField("lock", lock),
			shape.NewField("refs", ChildrenRefsShape()),
			shape.NewField("consumed", shape.Bool()),
		)),
		shape.Case(3, "SpecifiedLocal", shape.Struct("",
			shape.NewField("parent", shape.ParamAt(1)),
			shape.NewField("root", shape.ParamAt(1)),
			shape.NewField("value", shape.ParamAt(3)),
			shape.NewField("lock", lock),
			shape.NewField("system_reserve", shape.ParamAt(3)),
			shape.NewField("refs", ChildrenRefsShape()),
			shape.NewField("consumed", shape.Bool()),
		)),
		shape.Case(4, "UnspecifiedLocal", shape.Struct("",
			shape.NewField("parent", shape.ParamAt(1)),
			shape.NewField("root", shape.ParamAt(1)),
			shape.NewField("lock", lock),
			shape.NewField("system_reserve", shape.ParamAt(3)),
		)),
	)
}

// PhaseShape describes Phase.
func PhaseShape() *shape.Shape {
	return shape.Enum("Phase",
		shape.Case(0, "ApplyExtrinsic", shape.U32()),
		shape.Unit(1, "Finalization"),
		shape.Unit(2, "Initialization"),
	)
}

// SuccessReplyReasonShape describes SuccessReplyReason.
func SuccessReplyReasonShape() *shape.Shape {
	return shape.Enum("SuccessReplyReason",
		shape.Unit(0, "Auto"),
		shape.Unit(1, "Manual"),
		shape.Unit(255, "Unsupported"),
	)
}

// SimpleExecutionErrorShape describes SimpleExecutionError.
func SimpleExecutionErrorShape() *shape.Shape {
	return shape.Enum("SimpleExecutionError",
		shape.Unit(0, "RanOutOfGas"),
		shape.Unit(1, "MemoryOverflow"),
		shape.Unit(2, "BackendError"),
		shape.Unit(3, "UserspacePanic"),
		shape.Unit(4, "UnreachableInstruction"),
		shape.Unit(255, "Unsupported"),
	)
}

// SimpleProgramCreationErrorShape describes SimpleProgramCreationError.
func SimpleProgramCreationErrorShape() *shape.Shape {
	return shape.Enum("SimpleProgramCreationError",
		shape.Unit(0, "CodeNotExists"),
		shape.Unit(255, "Unsupported"),
	)
}

// ErrorReplyReasonShape describes ErrorReplyReason.
func ErrorReplyReasonShape() *shape.Shape {
	return shape.Enum("ErrorReplyReason",
		shape.Case(0, "Execution", SimpleExecutionErrorShape()),
		shape.Case(1, "FailedToCreateProgram", SimpleProgramCreationErrorShape()),
		shape.Unit(2, "InactiveActor"),
		shape.Unit(3, "RemovedFromWaitlist"),
		shape.Unit(255, "Unsupported"),
	)
}

// ReplyCodeShape describes ReplyCode.
func ReplyCodeShape() *shape.Shape {
	return shape.Enum("ReplyCode",
		shape.Case(0, "Success", SuccessReplyReasonShape()),
		shape.Case(1, "Error", ErrorReplyReasonShape()),
		shape.Unit(255, "Unsupported"),
	)
}

// HeaderShape describes Header, including the metadata's skipped phantom
// marker.
func HeaderShape() *shape.Shape {
	return shape.Struct("Header",
		shape.NewField("parent_hash", H256Shape()),
		shape.NewField("number", shape.Compact()),
		shape.NewField("state_root", H256Shape()),
		shape.NewField("extrinsics_root", H256Shape()),
		shape.SkipField("__ignore", shape.Tuple()),
	)
}

// RegisterAll installs the catalog's concrete shapes into reg. Generic
// definitions are registered at the instantiations the runtime stores:
// GasNodeId<MessageId, ReservationId> and
// GasNode<ActorId, GasNodeId<MessageId, ReservationId>, u128, u64>.
func RegisterAll(reg *dynamic.Registry) error {
	nodeID, err := shape.Instantiate(GasNodeIDShape(), H256Shape(), H256Shape())
	if err != nil {
		return err
	}
	gasNode, err := shape.Instantiate(GasNodeShape(), H256Shape(), nodeID, shape.U128(), shape.U64())
	if err != nil {
		return err
	}
	multiplier, err := shape.Instantiate(GasMultiplierShape(), shape.U128(), shape.U64())
	if err != nil {
		return err
	}
	lock, err := shape.Instantiate(NodeLockShape(), shape.U64())
	if err != nil {
		return err
	}

	for _, entry := range []struct {
		name string
		s    *shape.Shape
	}{
		{"H256", H256Shape()},
		{"ActorId", H256Shape()},
		{"MessageId", H256Shape()},
		{"CodeId", H256Shape()},
		{"ReservationId", H256Shape()},
		{"ChildrenRefs", ChildrenRefsShape()},
		{"NodeLock", lock},
		{"GasMultiplier", multiplier},
		{"GasNodeId", nodeID},
		{"GasNode", gasNode},
		{"Phase", PhaseShape()},
		{"SuccessReplyReason", SuccessReplyReasonShape()},
		{"SimpleExecutionError", SimpleExecutionErrorShape()},
		{"SimpleProgramCreationError", SimpleProgramCreationErrorShape()},
		{"ErrorReplyReason", ErrorReplyReasonShape()},
		{"ReplyCode", ReplyCodeShape()},
		{"Header", HeaderShape()},
	} {
		if err := reg.Register(entry.name, entry.s); err != nil {
			return err
		}
	}
	return nil
}
