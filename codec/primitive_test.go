package codec

import (
	"bytes"
	stderrors "errors"
	"testing"

	scaleerrors "github.com/gear-tech/scale/errors"
)

func TestWriterFixedWidth(t *testing.T) {
	w := NewWriter()
	w.WriteU8(0xab)
	w.WriteU16(0x0102)
	w.WriteU32(0x01020304)
	w.WriteU64(0x0102030405060708)

	want := []byte{
		0xab,
		0x02, 0x01,
		0x04, 0x03, 0x02, 0x01,
		0x08, 0x07, 0x06, 0x05, 0x04, 0x03, 0x02, 0x01,
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Bytes() = %x, want %x", w.Bytes(), want)
	}
}

func TestFixedWidthRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteU8(0)
	w.WriteU8(255)
	w.WriteU16(0)
	w.WriteU16(65535)
	w.WriteU32(0)
	w.WriteU32(1<<32 - 1)
	w.WriteU64(0)
	w.WriteU64(1<<64 - 1)
	w.WriteU128(U128{Lo: 7, Hi: 9})

	r := NewReader(w.Bytes())
	if v, _ := r.ReadU8(); v != 0 {
		t.Errorf("ReadU8 = %d, want 0", v)
	}
	if v, _ := r.ReadU8(); v != 255 {
		t.Errorf("ReadU8 = %d, want 255", v)
	}
	if v, _ := r.ReadU16(); v != 0 {
		t.Errorf("ReadU16 = %d, want 0", v)
	}
	if v, _ := r.ReadU16(); v != 65535 {
		t.Errorf("ReadU16 = %d, want 65535", v)
	}
	if v, _ := r.ReadU32(); v != 0 {
		t.Errorf("ReadU32 = %d, want 0", v)
	}
	if v, _ := r.ReadU32(); v != 1<<32-1 {
		t.Errorf("ReadU32 = %d, want max", v)
	}
	if v, _ := r.ReadU64(); v != 0 {
		t.Errorf("ReadU64 = %d, want 0", v)
	}
	if v, _ := r.ReadU64(); v != 1<<64-1 {
		t.Errorf("ReadU64 = %d, want max", v)
	}
	if v, _ := r.ReadU128(); v != (U128{Lo: 7, Hi: 9}) {
		t.Errorf("ReadU128 = %+v, want {7 9}", v)
	}
	if r.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", r.Remaining())
	}
}

func TestBoolStrict(t *testing.T) {
	tests := []struct {
		name    string
		input   []byte
		want    bool
		wantErr bool
	}{
		{"false", []byte{0x00}, false, false},
		{"true", []byte{0x01}, true, false},
		{"two is invalid", []byte{0x02}, false, true},
		{"255 is invalid", []byte{0xff}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewReader(tt.input).ReadBool()
			if tt.wantErr {
				if !stderrors.Is(err, scaleerrors.New(scaleerrors.PhaseDecode, scaleerrors.KindInvalidTag).Build()) {
					t.Errorf("ReadBool(%x) err = %v, want invalid_tag", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadBool(%x) err = %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ReadBool(%x) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestReadPastEnd(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.ReadU32(); !stderrors.Is(err, scaleerrors.UnexpectedEOF(0, 0, 0)) {
		t.Errorf("ReadU32 on short buffer = %v, want unexpected_eof", err)
	}
}

func TestRawBytesNoPrefix(t *testing.T) {
	payload := bytes.Repeat([]byte{0x01}, 32)

	w := NewWriter()
	w.WriteRaw(payload)
	if w.Len() != 32 {
		t.Fatalf("Len() = %d, want 32", w.Len())
	}

	r := NewReader(w.Bytes())
	got, err := r.ReadRaw(32)
	if err != nil {
		t.Fatalf("ReadRaw: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("ReadRaw = %x, want %x", got, payload)
	}
}

func TestByteSliceRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
	}{
		{"empty", nil},
		{"singleton", []byte{0x2a}},
		{"large", bytes.Repeat([]byte{0xee}, 1000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter()
			w.WriteByteSlice(tt.in)

			r := NewReader(w.Bytes())
			got, err := r.ReadByteSlice()
			if err != nil {
				t.Fatalf("ReadByteSlice: %v", err)
			}
			if !bytes.Equal(got, tt.in) {
				t.Errorf("round trip = %x, want %x", got, tt.in)
			}
			if r.Remaining() != 0 {
				t.Errorf("Remaining() = %d, want 0", r.Remaining())
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteString("gear")

	want := []byte{0x10, 'g', 'e', 'a', 'r'}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("encoded = %x, want %x", w.Bytes(), want)
	}

	got, err := NewReader(w.Bytes()).ReadString()
	if err != nil {
		t.Fatalf("ReadString: %v", err)
	}
	if got != "gear" {
		t.Errorf("ReadString = %q, want %q", got, "gear")
	}
}
