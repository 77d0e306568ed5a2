package types

import (
	"github.com/gear-tech/scale/codec"
	"github.com/gear-tech/scale/errors"
)

// SuccessReplyReason says why a successful reply was produced.
// Discriminant 255 is the cross-version fallback, not a fourth slot.
type SuccessReplyReason uint8

const (
	SuccessReplyAuto        SuccessReplyReason = 0
	SuccessReplyManual      SuccessReplyReason = 1
	SuccessReplyUnsupported SuccessReplyReason = 255
)

func (v SuccessReplyReason) Encode(w *codec.Writer) { w.WriteU8(byte(v)) }

func (v *SuccessReplyReason) Decode(r *codec.Reader) error {
	b, err := r.ReadU8()
	if err != nil {
		return err
	}
	switch SuccessReplyReason(b) {
	case SuccessReplyAuto, SuccessReplyManual, SuccessReplyUnsupported:
		*v = SuccessReplyReason(b)
		return nil
	default:
		return errors.UnknownVariant([]string{"SuccessReplyReason"}, b)
	}
}

func (v SuccessReplyReason) String() string {
	switch v {
	case SuccessReplyAuto:
		return "Auto"
	case SuccessReplyManual:
		return "Manual"
	case SuccessReplyUnsupported:
		return "Unsupported"
	}
	return "SuccessReplyReason(?)"
}

// SimpleExecutionError is the trap reason carried by an error reply.
type SimpleExecutionError uint8

const (
	ExecutionRanOutOfGas            SimpleExecutionError = 0
	ExecutionMemoryOverflow         SimpleExecutionError = 1
	ExecutionBackendError           SimpleExecutionError = 2
	ExecutionUserspacePanic         SimpleExecutionError = 3
	ExecutionUnreachableInstruction SimpleExecutionError = 4
	ExecutionUnsupported            SimpleExecutionError = 255
)

func (v SimpleExecutionError) Encode(w *codec.Writer) { w.WriteU8(byte(v)) }

func (v *SimpleExecutionError) Decode(r *codec.Reader) error {
	b, err := r.ReadU8()
	if err != nil {
		return err
	}
	switch SimpleExecutionError(b) {
	case ExecutionRanOutOfGas, ExecutionMemoryOverflow, ExecutionBackendError,
		ExecutionUserspacePanic, ExecutionUnreachableInstruction, ExecutionUnsupported:
		*v = SimpleExecutionError(b)
		return nil
	default:
		return errors.UnknownVariant([]string{"SimpleExecutionError"}, b)
	}
}

func (v SimpleExecutionError) String() string {
	switch v {
	case ExecutionRanOutOfGas:
		return "RanOutOfGas"
	case ExecutionMemoryOverflow:
		return "MemoryOverflow"
	case ExecutionBackendError:
		return "BackendError"
	case ExecutionUserspacePanic:
		return "UserspacePanic"
	case ExecutionUnreachableInstruction:
		return "UnreachableInstruction"
	case ExecutionUnsupported:
		return "Unsupported"
	}
	return "SimpleExecutionError(?)"
}

// SimpleProgramCreationError says why on-the-fly program creation failed.
type SimpleProgramCreationError uint8

const (
	ProgramCreationCodeNotExists SimpleProgramCreationError = 0
	ProgramCreationUnsupported   SimpleProgramCreationError = 255
)

func (v SimpleProgramCreationError) Encode(w *codec.Writer) { w.WriteU8(byte(v)) }

func (v *SimpleProgramCreationError) Decode(r *codec.Reader) error {
	b, err := r.ReadU8()
	if err != nil {
		return err
	}
	switch SimpleProgramCreationError(b) {
	case ProgramCreationCodeNotExists, ProgramCreationUnsupported:
		*v = SimpleProgramCreationError(b)
		return nil
	default:
		return errors.UnknownVariant([]string{"SimpleProgramCreationError"}, b)
	}
}

func (v SimpleProgramCreationError) String() string {
	switch v {
	case ProgramCreationCodeNotExists:
		return "CodeNotExists"
	case ProgramCreationUnsupported:
		return "Unsupported"
	}
	return "SimpleProgramCreationError(?)"
}

// ErrorReplyReason says why an error reply was produced. Discriminants:
// Execution = 0, FailedToCreateProgram = 1, InactiveActor = 2,
// RemovedFromWaitlist = 3, Unsupported = 255.
type ErrorReplyReason interface {
	codec.Encodable
	isErrorReplyReason()
}

// ErrorReplyExecution wraps the trap reason of a failed execution.
type ErrorReplyExecution SimpleExecutionError

func (v ErrorReplyExecution) Encode(w *codec.Writer) {
	w.WriteU8(0)
	SimpleExecutionError(v).Encode(w)
}

func (ErrorReplyExecution) isErrorReplyReason() {}

// ErrorReplyFailedToCreateProgram wraps the program-creation failure.
type ErrorReplyFailedToCreateProgram SimpleProgramCreationError

func (v ErrorReplyFailedToCreateProgram) Encode(w *codec.Writer) {
	w.WriteU8(1)
	SimpleProgramCreationError(v).Encode(w)
}

func (ErrorReplyFailedToCreateProgram) isErrorReplyReason() {}

// ErrorReplyInactiveActor marks a message sent to a non-active program.
type ErrorReplyInactiveActor struct{}

func (ErrorReplyInactiveActor) Encode(w *codec.Writer) { w.WriteU8(2) }

func (ErrorReplyInactiveActor) isErrorReplyReason() {}

// ErrorReplyRemovedFromWaitlist marks a message evicted from the waitlist.
type ErrorReplyRemovedFromWaitlist struct{}

func (ErrorReplyRemovedFromWaitlist) Encode(w *codec.Writer) { w.WriteU8(3) }

func (ErrorReplyRemovedFromWaitlist) isErrorReplyReason() {}

// ErrorReplyUnsupported is the cross-version fallback arm.
type ErrorReplyUnsupported struct{}

func (ErrorReplyUnsupported) Encode(w *codec.Writer) { w.WriteU8(255) }

func (ErrorReplyUnsupported) isErrorReplyReason() {}

// DecodeErrorReplyReason reads a discriminant byte and the selected
// payload.
func DecodeErrorReplyReason(r *codec.Reader) (ErrorReplyReason, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		var e SimpleExecutionError
		if err := e.Decode(r); err != nil {
			return nil, err
		}
		return ErrorReplyExecution(e), nil
	case 1:
		var e SimpleProgramCreationError
		if err := e.Decode(r); err != nil {
			return nil, err
		}
		return ErrorReplyFailedToCreateProgram(e), nil
	case 2:
		return ErrorReplyInactiveActor{}, nil
	case 3:
		return ErrorReplyRemovedFromWaitlist{}, nil
	case 255:
		return ErrorReplyUnsupported{}, nil
	default:
		return nil, errors.UnknownVariant([]string{"ErrorReplyReason"}, tag)
	}
}

// ReplyCode classifies a reply message. Discriminants: Success = 0,
// Error = 1, Unsupported = 255.
type ReplyCode interface {
	codec.Encodable
	isReplyCode()
}

// ReplyCodeSuccess carries the reason a reply succeeded.
type ReplyCodeSuccess SuccessReplyReason

func (v ReplyCodeSuccess) Encode(w *codec.Writer) {
	w.WriteU8(0)
	SuccessReplyReason(v).Encode(w)
}

func (ReplyCodeSuccess) isReplyCode() {}

// ReplyCodeError carries the reason a reply failed.
type ReplyCodeError struct {
	Reason ErrorReplyReason
}

func (v ReplyCodeError) Encode(w *codec.Writer) {
	w.WriteU8(1)
	v.Reason.Encode(w)
}

func (ReplyCodeError) isReplyCode() {}

// ReplyCodeUnsupported is the cross-version fallback arm.
type ReplyCodeUnsupported struct{}

func (ReplyCodeUnsupported) Encode(w *codec.Writer) { w.WriteU8(255) }

func (ReplyCodeUnsupported) isReplyCode() {}

// DecodeReplyCode reads a discriminant byte and the selected payload.
func DecodeReplyCode(r *codec.Reader) (ReplyCode, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		var reason SuccessReplyReason
		if err := reason.Decode(r); err != nil {
			return nil, err
		}
		return ReplyCodeSuccess(reason), nil
	case 1:
		reason, err := DecodeErrorReplyReason(r)
		if err != nil {
			return nil, err
		}
		return ReplyCodeError{Reason: reason}, nil
	case 255:
		return ReplyCodeUnsupported{}, nil
	default:
		return nil, errors.UnknownVariant([]string{"ReplyCode"}, tag)
	}
}
