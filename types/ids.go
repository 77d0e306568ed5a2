package types

import (
	"encoding/hex"

	"github.com/gear-tech/scale/codec"
)

// H256 is a 256-bit hash. All runtime identifiers share its wire form:
// 32 raw bytes, no length prefix.
type H256 [32]byte

func (h H256) Encode(w *codec.Writer) { w.WriteRaw(h[:]) }

func (h *H256) Decode(r *codec.Reader) error {
	p, err := r.ReadRaw(32)
	if err != nil {
		return err
	}
	copy(h[:], p)
	return nil
}

func (h H256) String() string { return "0x" + hex.EncodeToString(h[:]) }

// ActorID identifies a program or user account.
type ActorID [32]byte

func (id ActorID) Encode(w *codec.Writer) { w.WriteRaw(id[:]) }

func (id *ActorID) Decode(r *codec.Reader) error {
	p, err := r.ReadRaw(32)
	if err != nil {
		return err
	}
	copy(id[:], p)
	return nil
}

func (id ActorID) String() string { return "0x" + hex.EncodeToString(id[:]) }

// MessageID identifies a message in the queue or mailbox.
type MessageID [32]byte

func (id MessageID) Encode(w *codec.Writer) { w.WriteRaw(id[:]) }

func (id *MessageID) Decode(r *codec.Reader) error {
	p, err := r.ReadRaw(32)
	if err != nil {
		return err
	}
	copy(id[:], p)
	return nil
}

func (id MessageID) String() string { return "0x" + hex.EncodeToString(id[:]) }

// CodeID identifies an uploaded code blob.
type CodeID [32]byte

func (id CodeID) Encode(w *codec.Writer) { w.WriteRaw(id[:]) }

func (id *CodeID) Decode(r *codec.Reader) error {
	p, err := r.ReadRaw(32)
	if err != nil {
		return err
	}
	copy(id[:], p)
	return nil
}

func (id CodeID) String() string { return "0x" + hex.EncodeToString(id[:]) }

// ReservationID identifies a gas reservation.
type ReservationID [32]byte

func (id ReservationID) Encode(w *codec.Writer) { w.WriteRaw(id[:]) }

func (id *ReservationID) Decode(r *codec.Reader) error {
	p, err := r.ReadRaw(32)
	if err != nil {
		return err
	}
	copy(id[:], p)
	return nil
}

func (id ReservationID) String() string { return "0x" + hex.EncodeToString(id[:]) }
