package types

import (
	"math"

	"github.com/gear-tech/scale/codec"
	"github.com/gear-tech/scale/errors"
)

// BlockNumber is a u32 block height, compact-encoded in headers and event
// records.
type BlockNumber uint32

func (n BlockNumber) Encode(w *codec.Writer) { w.WriteCompact(uint64(n)) }

func (n *BlockNumber) Decode(r *codec.Reader) error {
	v, err := r.ReadCompact()
	if err != nil {
		return err
	}
	if v > math.MaxUint32 {
		return errors.InvalidCompact(r.Offset(), "value wider than 32 bits")
	}
	*n = BlockNumber(v)
	return nil
}

// Phase says where in block execution an event was emitted. Discriminants:
// ApplyExtrinsic = 0, Finalization = 1, Initialization = 2.
type Phase interface {
	codec.Encodable
	isPhase()
}

// PhaseApplyExtrinsic carries the index of the extrinsic being applied.
type PhaseApplyExtrinsic uint32

func (v PhaseApplyExtrinsic) Encode(w *codec.Writer) {
	w.WriteU8(0)
	w.WriteU32(uint32(v))
}

func (PhaseApplyExtrinsic) isPhase() {}

// PhaseFinalization marks events emitted while finalizing the block.
type PhaseFinalization struct{}

func (PhaseFinalization) Encode(w *codec.Writer) { w.WriteU8(1) }

func (PhaseFinalization) isPhase() {}

// PhaseInitialization marks events emitted while initializing the block.
type PhaseInitialization struct{}

func (PhaseInitialization) Encode(w *codec.Writer) { w.WriteU8(2) }

func (PhaseInitialization) isPhase() {}

// DecodePhase reads a discriminant byte and the selected payload.
func DecodePhase(r *codec.Reader) (Phase, error) {
	tag, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	switch tag {
	case 0:
		idx, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		return PhaseApplyExtrinsic(idx), nil
	case 1:
		return PhaseFinalization{}, nil
	case 2:
		return PhaseInitialization{}, nil
	default:
		return nil, errors.UnknownVariant([]string{"Phase"}, tag)
	}
}

// Header is a block header. The number field is compact on the wire; the
// metadata's phantom marker field is skipped and contributes nothing.
type Header struct {
	ParentHash     H256
	Number         BlockNumber
	StateRoot      H256
	ExtrinsicsRoot H256
}

func (h Header) Encode(w *codec.Writer) {
	h.ParentHash.Encode(w)
	h.Number.Encode(w)
	h.StateRoot.Encode(w)
	h.ExtrinsicsRoot.Encode(w)
}

func (h *Header) Decode(r *codec.Reader) error {
	if err := h.ParentHash.Decode(r); err != nil {
		return err
	}
	if err := h.Number.Decode(r); err != nil {
		return err
	}
	if err := h.StateRoot.Decode(r); err != nil {
		return err
	}
	return h.ExtrinsicsRoot.Decode(r)
}
